package handler

import (
	"errors"
	"net/http"

	"github.com/0001fella/abundant-life-sub000/internal/middleware"
	"github.com/0001fella/abundant-life-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

type UpdateProfileReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
	Password string `json:"password"`
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UpdateProfile lets the authenticated user change their own record.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token missing"})
		return
	}

	var req UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	updated, err := h.svc.UpdateProfile(user.ID, req.Name, req.Email, req.Phone, req.Avatar, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondStoreError(c)
		return
	}

	c.JSON(http.StatusOK, updated.Sanitized())
}
