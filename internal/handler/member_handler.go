package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/0001fella/abundant-life-sub000/internal/model"
	"github.com/0001fella/abundant-life-sub000/internal/pkg"
	"github.com/0001fella/abundant-life-sub000/internal/repository/mysql"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MemberHandler struct {
	repo *mysql.MemberRepository
}

type MemberReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Ministry string `json:"ministry"`
	JoinedAt string `json:"joinedAt"`
}

func NewMemberHandler(repo *mysql.MemberRepository) *MemberHandler {
	return &MemberHandler{repo: repo}
}

func (h *MemberHandler) List(c *gin.Context) {
	list, err := h.repo.List()
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *MemberHandler) Create(c *gin.Context) {
	var req MemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	missing := pkg.TrimRequired(map[string]*string{
		"name": &req.Name,
	}, []string{"name"})
	if len(missing) > 0 {
		respondMissingFields(c, missing, req)
		return
	}

	joined := time.Now()
	if s := strings.TrimSpace(req.JoinedAt); s != "" {
		t, err := pkg.ParseDate(s)
		if err != nil {
			respondInvalidDate(c, "joinedAt")
			return
		}
		joined = t
	}

	member := &model.Member{
		Name:     req.Name,
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Ministry: strings.TrimSpace(req.Ministry),
		JoinedAt: joined,
	}
	if err := h.repo.Create(member); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondNotFound(c, "member")
		return
	}
	member, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "member")
			return
		}
		respondStoreError(c)
		return
	}

	var req MemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	if v := strings.TrimSpace(req.Name); v != "" {
		member.Name = v
	}
	if v := strings.TrimSpace(req.Email); v != "" {
		member.Email = v
	}
	if v := strings.TrimSpace(req.Phone); v != "" {
		member.Phone = v
	}
	if v := strings.TrimSpace(req.Ministry); v != "" {
		member.Ministry = v
	}
	if s := strings.TrimSpace(req.JoinedAt); s != "" {
		t, err := pkg.ParseDate(s)
		if err != nil {
			respondInvalidDate(c, "joinedAt")
			return
		}
		member.JoinedAt = t
	}

	if err := h.repo.Save(member); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondNotFound(c, "member")
		return
	}
	if _, err := h.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "member")
			return
		}
		respondStoreError(c)
		return
	}
	if err := h.repo.Delete(id); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "member deleted"})
}
