package main

import (
	"candidate-platform/internal/auth"
	"candidate-platform/internal/httpapi"
	"candidate-platform/internal/rbac"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to internal modules.
func registerRoutes(r *gin.Engine, h httpapi.Handlers, authMW, editMW gin.HandlerFunc) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Registration is public; everything else requires a token.
	r.POST("/v1/accounts", h.Register)
	r.POST("/v1/auth/login", h.Login)

	// protected API group
	v1 := r.Group("/v1")
	v1.Use(authMW)
	{
		v1.GET("/me", func(c *gin.Context) {
			uid, _ := auth.UserID(c.Request.Context())
			role, _ := auth.Role(c.Request.Context())
			c.JSON(200, gin.H{"user_id": uid, "role": role})
		})

		// ACCOUNT routes (terms agreement lives with the account).
		accounts := v1.Group("/accounts/me")
		accounts.Use(rbac.RequireUser())
		{
			accounts.GET("/terms", h.GetTermsAgreement)
			accounts.POST("/terms", h.AcceptTerms)
		}

		// ACTION LOG routes.
		// Appends count against the caller's edit rate window; reads do not.
		actions := v1.Group("/actions")
		actions.Use(rbac.RequireUser())
		{
			actions.GET("/recent", h.ListRecentActions)
			actions.GET("/mine", h.ListMyActions)
			actions.POST("", editMW, h.RecordAction)
		}

		// REVIEW routes (moderation queue).
		reviewGroup := v1.Group("/review")
		reviewGroup.Use(httpapi.RequireUserAndAnyRole(rbac.RoleReviewer, rbac.RoleModerator)...)
		{
			reviewGroup.GET("/needs-review", h.NeedsReview)
			reviewGroup.GET("/report", h.ReviewReport)
		}

		// PERSON routes.
		// Merging is destructive and reserved for moderators; the importer bot
		// is explicitly allowed because bulk dedup runs through it.
		persons := v1.Group("/persons")
		persons.Use(rbac.RequireUser())
		{
			persons.GET("/:person_id/resolve", h.ResolvePerson)
			persons.POST("/merge",
				append(httpapi.RequireUserAndAnyRole(rbac.RoleModerator, rbac.RoleImporterBot), editMW, h.MergePersons)...)
		}

		// ANNOTATION routes. Note edits are moderator actions and skip the
		// edit rate window.
		moderation := v1.Group("/moderation")
		moderation.Use(httpapi.RequireUserAndAnyRole(rbac.RoleModerator)...)
		{
			moderation.PATCH("/actions/:action_id/note", h.AnnotateAction)
		}
	}
}
