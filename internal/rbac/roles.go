package rbac

// Role names. Keep these stable; they are part of auth/RBAC contracts.
const (
	RoleEditor      = "editor"
	RoleReviewer    = "reviewer"
	RoleModerator   = "moderator"
	RoleSuperAdmin  = "super_admin"
	RoleImporterBot = "importer_bot" // hidden role for automated bulk imports
)

func IsSuperAdmin(role string) bool { return role == RoleSuperAdmin }

func IsHiddenRole(role string) bool { return role == RoleImporterBot }
