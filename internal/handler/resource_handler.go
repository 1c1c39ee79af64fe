package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/0001fella/abundant-life-sub000/internal/model"
	"github.com/0001fella/abundant-life-sub000/internal/pkg"
	"github.com/0001fella/abundant-life-sub000/internal/repository/mysql"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ResourceHandler struct {
	repo *mysql.ResourceRepository
}

type ResourceReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	FileURL     string `json:"fileUrl"`
}

func NewResourceHandler(repo *mysql.ResourceRepository) *ResourceHandler {
	return &ResourceHandler{repo: repo}
}

func (h *ResourceHandler) List(c *gin.Context) {
	list, err := h.repo.List()
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ResourceHandler) Create(c *gin.Context) {
	var req ResourceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	missing := pkg.TrimRequired(map[string]*string{
		"title": &req.Title,
	}, []string{"title"})
	if len(missing) > 0 {
		respondMissingFields(c, missing, req)
		return
	}

	resource := &model.Resource{
		Title:       req.Title,
		Description: req.Description,
		Category:    strings.TrimSpace(req.Category),
		FileURL:     strings.TrimSpace(req.FileURL),
	}
	if err := h.repo.Create(resource); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusCreated, resource)
}

func (h *ResourceHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondNotFound(c, "resource")
		return
	}
	resource, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "resource")
			return
		}
		respondStoreError(c)
		return
	}

	var req ResourceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	if v := strings.TrimSpace(req.Title); v != "" {
		resource.Title = v
	}
	if v := strings.TrimSpace(req.Description); v != "" {
		resource.Description = v
	}
	if v := strings.TrimSpace(req.Category); v != "" {
		resource.Category = v
	}
	if v := strings.TrimSpace(req.FileURL); v != "" {
		resource.FileURL = v
	}

	if err := h.repo.Save(resource); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, resource)
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondNotFound(c, "resource")
		return
	}
	if _, err := h.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "resource")
			return
		}
		respondStoreError(c)
		return
	}
	if err := h.repo.Delete(id); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "resource deleted"})
}
