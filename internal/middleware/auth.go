package middleware

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/0001fella/abundant-life-sub000/internal/model"
	"github.com/0001fella/abundant-life-sub000/internal/pkg"
	"github.com/0001fella/abundant-life-sub000/internal/repository/mysql"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserKey  = "current_user"
	ContextTokenKey = "bearer_token"
)

// TokenStore answers whether a presented token has been logged out.
// Backed by redis in production; MemoryTokenStore covers tests and
// redis-less development.
type TokenStore interface {
	Revoke(token string, ttl time.Duration) error
	IsRevoked(token string) (bool, error)
}

type MemoryTokenStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{revoked: make(map[string]time.Time)}
}

func (s *MemoryTokenStore) Revoke(token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = time.Now().Add(ttl)
	return nil
}

func (s *MemoryTokenStore) IsRevoked(token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.revoked[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(exp) {
		delete(s.revoked, token)
		return false, nil
	}
	return true, nil
}

// AuthRequired verifies the bearer token and resolves it to a live user,
// which downstream handlers read from the context. Each failure mode gets
// its own 401 message.
func AuthRequired(users *mysql.UserRepository, tokens TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token missing"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		tokenStr := parts[1]

		claims, err := pkg.ParseToken(tokenStr)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, pkg.ErrTokenExpired) {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if revoked, err := tokens.IsRevoked(tokenStr); err == nil && revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked"})
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user no longer exists"})
			return
		}
		user.Password = ""

		c.Set(ContextUserKey, user)
		c.Set(ContextTokenKey, tokenStr)
		c.Next()
	}
}

// AdminRequired runs after AuthRequired and only checks the resolved role.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token missing"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}

func BearerToken(c *gin.Context) string {
	v, ok := c.Get(ContextTokenKey)
	if !ok {
		return ""
	}
	token, _ := v.(string)
	return token
}
