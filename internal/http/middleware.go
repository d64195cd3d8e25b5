package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sams-backend/internal/domain"
	"sams-backend/internal/service"
)

const ctxUserKey = "currentUser"

var (
	errNoToken      = errors.New("missing bearer token")
	errUserInactive = errors.New("inactive user")
)

// resolveUser turns the request's bearer token into a live user record.
// Token failures and vanished users come back as errNoToken-class errors;
// a valid token for a disabled account comes back as errUserInactive.
func (h *Handler) resolveUser(c *gin.Context) (*domain.User, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, errNoToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, errNoToken
	}

	claims, err := h.tokens.Validate(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, errNoToken
	}

	// The token carries a snapshot of the user; the record may have been
	// deleted or disabled since issuance, so always reload it.
	user, err := h.auth.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return nil, errNoToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, errUserInactive
	}
	return user, nil
}

// authRequired rejects requests without a valid token (401) or with a
// valid token for a disabled account (403), and stores the resolved user
// in the context otherwise.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := h.resolveUser(c)
		if err != nil {
			switch {
			case errors.Is(err, errUserInactive):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "inactive user"})
			case errors.Is(err, errNoToken):
				c.Header("WWW-Authenticate", "Bearer")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			default:
				h.logger.Warnf("resolve user: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
			return
		}
		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// adminRequired layers a role check on top of authRequired.
func (h *Handler) adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || user.Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin privileges required"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}
