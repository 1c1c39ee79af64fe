package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/0001fella/abundant-life-sub000/internal/middleware"
	"github.com/0001fella/abundant-life-sub000/internal/model"
	"github.com/0001fella/abundant-life-sub000/internal/repository/mysql"
	"github.com/0001fella/abundant-life-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthRouter(db *gorm.DB) (*gin.Engine, middleware.TokenStore) {
	users := mysql.NewUserRepository(db)
	tokens := middleware.NewMemoryTokenStore()
	svc := service.NewUserService(users, tokens)

	auth := NewAuthHandler(svc)
	user := NewUserHandler(svc)
	sermon := NewSermonHandler(mysql.NewSermonRepository(db))

	authRequired := middleware.AuthRequired(users, tokens)
	adminRequired := middleware.AdminRequired()

	r := gin.New()
	r.POST("/api/auth/register", auth.Register)
	r.POST("/api/auth/login", auth.Login)
	r.POST("/api/auth/logout", authRequired, auth.Logout)
	r.GET("/api/auth/profile", authRequired, auth.Profile)
	r.PUT("/api/users/me/profile", authRequired, user.UpdateProfile)
	r.POST("/api/sermons", authRequired, adminRequired, sermon.Create)
	return r, tokens
}

func registerUser(t *testing.T, r *gin.Engine, name, email, password string) map[string]any {
	t.Helper()
	w := performJSON(t, r, "POST", "/api/auth/register", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	return decodeBody[map[string]any](t, w)
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupDB(t)
	r, _ := setupAuthRouter(db)

	body := registerUser(t, r, "Mary", "mary@example.com", "secret123")
	assert.Equal(t, "Mary", body["name"])
	assert.Equal(t, "mary@example.com", body["email"])
	assert.Equal(t, model.RoleMember, body["role"])
	assert.NotEmpty(t, body["token"])
	assert.NotContains(t, body, "password")

	// Duplicate email rejected.
	w := performJSON(t, r, "POST", "/api/auth/register", gin.H{
		"name": "Mary2", "email": "mary@example.com", "password": "other",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(t, r, "POST", "/api/auth/login", gin.H{
		"email": "mary@example.com", "password": "secret123",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, r, "POST", "/api/auth/login", gin.H{
		"email": "mary@example.com", "password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthGateLadder(t *testing.T) {
	db := setupDB(t)
	r, _ := setupAuthRouter(db)

	// No Authorization header.
	w := performJSON(t, r, "GET", "/api/auth/profile", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token missing")

	// Token signed with a different secret.
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	forgedStr, _ := forged.SignedString([]byte("some-other-secret"))
	w = performJSON(t, r, "GET", "/api/auth/profile", nil, forgedStr)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")

	// Valid token, non-admin role, admin-only route.
	body := registerUser(t, r, "Paul", "paul@example.com", "secret123")
	token := body["token"].(string)
	w = performJSON(t, r, "POST", "/api/sermons", gin.H{
		"title": "Grace", "preacher": "Jane", "date": "2025-01-01",
	}, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin access required")
}

func TestAdminCanCreateSermon(t *testing.T) {
	db := setupDB(t)
	r, _ := setupAuthRouter(db)

	hash, _ := bcrypt.GenerateFromPassword([]byte("adminpass"), bcrypt.DefaultCost)
	db.Create(&model.User{
		Name: "Pastor", Email: "admin@example.com",
		Password: string(hash), Role: model.RoleAdmin,
	})

	w := performJSON(t, r, "POST", "/api/auth/login", gin.H{
		"email": "admin@example.com", "password": "adminpass",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	token := decodeBody[map[string]any](t, w)["token"].(string)

	w = performJSON(t, r, "POST", "/api/sermons", gin.H{
		"title": "Grace", "preacher": "Jane", "date": "2025-01-01",
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	db := setupDB(t)
	r, _ := setupAuthRouter(db)

	body := registerUser(t, r, "Ruth", "ruth@example.com", "secret123")
	token := body["token"].(string)

	w := performJSON(t, r, "GET", "/api/auth/profile", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, r, "POST", "/api/auth/logout", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, r, "GET", "/api/auth/profile", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token revoked")
}

func TestUpdateOwnProfile(t *testing.T) {
	db := setupDB(t)
	r, _ := setupAuthRouter(db)

	body := registerUser(t, r, "Esther", "esther@example.com", "secret123")
	token := body["token"].(string)

	w := performJSON(t, r, "PUT", "/api/users/me/profile", gin.H{
		"name":  "Esther N.",
		"phone": "0712345678",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	updated := decodeBody[model.User](t, w)
	assert.Equal(t, "Esther N.", updated.Name)
	assert.Equal(t, "0712345678", updated.Phone)
	assert.Equal(t, "esther@example.com", updated.Email)

	// Password change takes effect on next login.
	w = performJSON(t, r, "PUT", "/api/users/me/profile", gin.H{
		"password": "newpass456",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, r, "POST", "/api/auth/login", gin.H{
		"email": "esther@example.com", "password": "newpass456",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeletedUserTokenRejected(t *testing.T) {
	db := setupDB(t)
	r, _ := setupAuthRouter(db)

	body := registerUser(t, r, "Gone", "gone@example.com", "secret123")
	token := body["token"].(string)

	db.Delete(&model.User{}, uint64(body["id"].(float64)))

	w := performJSON(t, r, "GET", "/api/auth/profile", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "user no longer exists")
}
