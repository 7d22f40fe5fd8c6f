package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	config "github.com/udyambridge/business-platform-go/config"
	guard "github.com/udyambridge/business-platform-go/guard"
	models "github.com/udyambridge/business-platform-go/models"
	session "github.com/udyambridge/business-platform-go/session"
	utils "github.com/udyambridge/business-platform-go/utils"
)

const snapshotKey = "session_snapshot"

// ResolveSession attaches the current session view to the request. The
// manager's restored session is the source of truth; a bearer token, when
// sent, must match it or the request is rejected outright.
func ResolveSession(cfg *config.Config, mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := mgr.Snapshot()

		if auth := c.GetHeader("Authorization"); auth != "" {
			tokenString := strings.TrimPrefix(auth, "Bearer ")
			claims, err := utils.ParseToken(cfg.JWTSecret, tokenString)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				c.Abort()
				return
			}
			if snap.Session == nil ||
				claims.Username != snap.Session.Username() ||
				claims.Role != string(snap.Session.AppRole) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "token does not match active session"})
				c.Abort()
				return
			}
			c.Set("username", claims.Username)
			c.Set("role", claims.Role)
		}

		c.Set(snapshotKey, snap)
		c.Next()
	}
}

// RequireRole gates a route group on the guard's decision for the given role.
func RequireRole(g guard.Guard, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := g.Decide(role, CurrentSnapshot(c))
		switch d.Outcome {
		case guard.Defer:
			// Restore has not finished; never evict a login that is about to
			// be restored.
			c.Header("Retry-After", "1")
			c.AbortWithStatus(http.StatusServiceUnavailable)
		case guard.Redirect:
			c.Redirect(http.StatusFound, d.Location)
			c.Abort()
		}
	}
}

// CurrentSnapshot returns the session view resolved for this request. A
// request that skipped ResolveSession reads as still loading, which the guard
// defers rather than admits.
func CurrentSnapshot(c *gin.Context) session.Snapshot {
	if v, ok := c.Get(snapshotKey); ok {
		if snap, ok := v.(session.Snapshot); ok {
			return snap
		}
	}
	return session.Snapshot{State: session.StateLoading}
}

// CurrentSession returns the authenticated session for this request, if any.
func CurrentSession(c *gin.Context) *models.Session {
	return CurrentSnapshot(c).Session
}
