package handler

import (
	"errors"
	"net/http"

	"github.com/0001fella/abundant-life-sub000/internal/middleware"
	"github.com/0001fella/abundant-life-sub000/internal/model"
	"github.com/0001fella/abundant-life-sub000/internal/pkg"
	"github.com/0001fella/abundant-life-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.UserService
}

type RegisterReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(svc *service.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func authResponse(user *model.User, token string) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"token": token,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	missing := pkg.TrimRequired(map[string]*string{
		"name":     &req.Name,
		"email":    &req.Email,
		"password": &req.Password,
	}, []string{"name", "email", "password"})
	if len(missing) > 0 {
		respondMissingFields(c, missing, req)
		return
	}

	user, token, err := h.svc.Register(req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondStoreError(c)
		return
	}

	c.JSON(http.StatusCreated, authResponse(user, token))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	user, token, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		respondStoreError(c)
		return
	}

	c.JSON(http.StatusOK, authResponse(user, token))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(middleware.BearerToken(c)); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token missing"})
		return
	}
	c.JSON(http.StatusOK, user.Sanitized())
}
