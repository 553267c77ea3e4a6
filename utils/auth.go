// utils/auth.go
package utils

import (
	"net/http"

	"driveschool-backend/store"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the admin routes behind the store's login flag.
// The site is single-tenant with one operator, so there is no per-request
// credential: a successful login flips the flag for the whole process and
// logout (or a restart) clears it.
func AuthMiddleware(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !st.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}
