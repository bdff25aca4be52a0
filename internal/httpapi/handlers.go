package httpapi

import (
	"errors"
	"net/http"
	"time"

	"candidate-platform/internal/account"
	"candidate-platform/internal/actionlog"
	"candidate-platform/internal/auth"
	"candidate-platform/internal/person"
	"candidate-platform/internal/rbac"
	"candidate-platform/internal/review"

	"github.com/gin-gonic/gin"
)

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call internal services, return JSON.

type Handlers struct {
	Auth     *auth.Manager
	Actions  *actionlog.Service
	Review   *review.Service
	Persons  *person.Service
	Accounts *account.Service
}

// --- Auth ---

type loginRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Login issues a JWT token pair.
//
// NOTE: This is a skeleton-only endpoint. Real systems must validate credentials.
func (h Handlers) Login(c *gin.Context) {
	if h.Auth == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "auth not configured"})
		return
	}
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.UserID == "" || req.Role == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "user_id, role required"})
		return
	}
	pair, err := h.Auth.IssuePair(time.Now(), req.UserID, req.Role)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "token issuance failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": pair.AccessToken, "refresh_token": pair.RefreshToken})
}

// --- Action log ---

type recordActionRequest struct {
	Type         string `json:"type"`
	PersonID     string `json:"person_id,omitempty"`
	PostID       string `json:"post_id,omitempty"`
	NewVersionID string `json:"new_version_id,omitempty"`
	Source       string `json:"source,omitempty"`
	Note         string `json:"note,omitempty"`
}

// RecordAction appends one action to the log. The acting user and client IP
// come from the request, never from the body.
func (h Handlers) RecordAction(c *gin.Context) {
	if h.Actions == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "actionlog not configured"})
		return
	}
	userID, err := auth.UserID(c.Request.Context())
	if err != nil || userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_id required"})
		return
	}
	var req recordActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	a, err := h.Actions.Record(c.Request.Context(), actionlog.Action{
		Type:         actionlog.ActionType(req.Type),
		UserID:       userID,
		PersonID:     req.PersonID,
		PostID:       req.PostID,
		NewVersionID: req.NewVersionID,
		Source:       req.Source,
		Note:         req.Note,
		IPAddress:    c.ClientIP(),
	})
	if err != nil {
		if errors.Is(err, actionlog.ErrInvalidAction) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "type required"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "record failed"})
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h Handlers) ListRecentActions(c *gin.Context) {
	if h.Actions == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "actionlog not configured"})
		return
	}
	actions, err := h.Actions.ListRecent(c.Request.Context(), 0)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "listing failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

func (h Handlers) ListMyActions(c *gin.Context) {
	if h.Actions == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "actionlog not configured"})
		return
	}
	userID, err := auth.UserID(c.Request.Context())
	if err != nil || userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_id required"})
		return
	}
	actions, err := h.Actions.ListByUser(c.Request.Context(), userID, 0)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "listing failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

type annotateNoteRequest struct {
	Note string `json:"note"`
}

// AnnotateAction updates a logged action's note. Nothing else on an action is
// editable after the fact.
func (h Handlers) AnnotateAction(c *gin.Context) {
	if h.Actions == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "actionlog not configured"})
		return
	}
	actionID := c.Param("action_id")
	if actionID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "action_id required"})
		return
	}
	var req annotateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := h.Actions.AnnotateNote(c.Request.Context(), actionID, req.Note); err != nil {
		if errors.Is(err, actionlog.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "action not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "annotate failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --- Review ---

// NeedsReview returns the raw reason map: action ID -> accumulated reasons.
func (h Handlers) NeedsReview(c *gin.Context) {
	if h.Review == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "review not configured"})
		return
	}
	reasons, err := h.Review.NeedsReview(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "review aggregation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reasons": reasons})
}

// ReviewReport returns flagged actions joined with their reasons, in window order.
func (h Handlers) ReviewReport(c *gin.Context) {
	if h.Review == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "review not configured"})
		return
	}
	entries, err := h.Review.Report(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "review aggregation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// --- Persons ---

type mergePersonsRequest struct {
	OldPersonID string `json:"old_person_id"`
	NewPersonID string `json:"new_person_id"`
	Source      string `json:"source,omitempty"`
}

// MergePersons records the redirect left behind by a person merge, and logs
// the merge as an action attributed to the caller.
func (h Handlers) MergePersons(c *gin.Context) {
	if h.Persons == nil || h.Actions == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "persons not configured"})
		return
	}
	userID, err := auth.UserID(c.Request.Context())
	if err != nil || userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_id required"})
		return
	}
	var req mergePersonsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	r, err := h.Persons.RecordMerge(c.Request.Context(), req.OldPersonID, req.NewPersonID)
	if err != nil {
		if errors.Is(err, person.ErrInvalidRedirect) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "old_person_id and new_person_id must differ and be set"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "merge failed"})
		return
	}

	if _, err := h.Actions.Record(c.Request.Context(), actionlog.Action{
		Type:      actionlog.ActionTypePersonMerge,
		UserID:    userID,
		PersonID:  req.NewPersonID,
		Source:    req.Source,
		Note:      "merged from " + req.OldPersonID,
		IPAddress: c.ClientIP(),
	}); err != nil {
		// The redirect is already durable; surface the logging failure.
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "merge logged partially"})
		return
	}
	c.JSON(http.StatusCreated, r)
}

// ResolvePerson follows redirect chains to the surviving person ID.
func (h Handlers) ResolvePerson(c *gin.Context) {
	if h.Persons == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "persons not configured"})
		return
	}
	personID := c.Param("person_id")
	if personID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "person_id required"})
		return
	}
	resolved, err := h.Persons.Resolve(c.Request.Context(), personID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "resolve failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"person_id": personID, "resolved_person_id": resolved})
}

// --- Accounts ---

// Register creates a new account. Its terms-agreement record is provisioned
// in the same step, unagreed.
func (h Handlers) Register(c *gin.Context) {
	if h.Accounts == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "accounts not configured"})
		return
	}
	var req account.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	u, ta, err := h.Accounts.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidArgument):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "username required"})
		case errors.Is(err, account.ErrAlreadyExists):
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "username taken"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u, "terms_agreement": ta})
}

func (h Handlers) AcceptTerms(c *gin.Context) {
	if h.Accounts == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "accounts not configured"})
		return
	}
	userID, err := auth.UserID(c.Request.Context())
	if err != nil || userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_id required"})
		return
	}
	if err := h.Accounts.AcceptTerms(c.Request.Context(), userID); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "agreement not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "accept failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h Handlers) GetTermsAgreement(c *gin.Context) {
	if h.Accounts == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "accounts not configured"})
		return
	}
	userID, err := auth.UserID(c.Request.Context())
	if err != nil || userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_id required"})
		return
	}
	ta, err := h.Accounts.TermsAgreement(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "agreement not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, ta)
}

// Convenience middleware bundles.

func RequireUserAndAnyRole(roles ...string) []gin.HandlerFunc {
	return []gin.HandlerFunc{rbac.RequireUser(), rbac.RequireAnyRole(roles...)}
}
