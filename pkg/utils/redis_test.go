package utils

import "testing"

func TestRateWindowScriptCompiles(t *testing.T) {
	// Compile-time smoke test: the script should be initialized.
	if rateWindowScript == nil {
		t.Fatalf("expected script to be initialized")
	}
}
