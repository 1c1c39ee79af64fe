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

type DevotionalHandler struct {
	repo *mysql.DevotionalRepository
}

type CreateDevotionalReq struct {
	Title     string `json:"title"`
	Snippet   string `json:"snippet"`
	Scripture string `json:"scripture"`
	Image     string `json:"image"`
	Date      string `json:"date"`
}

type UpdateDevotionalReq struct {
	Title     *string `json:"title"`
	Snippet   *string `json:"snippet"`
	Scripture *string `json:"scripture"`
	Image     *string `json:"image"`
	Date      *string `json:"date"`
}

func NewDevotionalHandler(repo *mysql.DevotionalRepository) *DevotionalHandler {
	return &DevotionalHandler{repo: repo}
}

func (h *DevotionalHandler) List(c *gin.Context) {
	list, err := h.repo.List()
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *DevotionalHandler) Create(c *gin.Context) {
	var req CreateDevotionalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	missing := pkg.TrimRequired(map[string]*string{
		"title":     &req.Title,
		"snippet":   &req.Snippet,
		"scripture": &req.Scripture,
		"image":     &req.Image,
		"date":      &req.Date,
	}, []string{"title", "snippet", "scripture", "image", "date"})
	if len(missing) > 0 {
		respondMissingFields(c, missing, req)
		return
	}

	date, err := pkg.ParseDate(req.Date)
	if err != nil {
		respondInvalidDate(c, "date")
		return
	}

	devotional := &model.Devotional{
		Title:     req.Title,
		Snippet:   req.Snippet,
		Scripture: req.Scripture,
		Image:     req.Image,
		Date:      date,
	}
	if err := h.repo.Create(devotional); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusCreated, devotional)
}

func (h *DevotionalHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondNotFound(c, "devotional")
		return
	}
	devotional, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "devotional")
			return
		}
		respondStoreError(c)
		return
	}

	var req UpdateDevotionalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	for field, pair := range map[string]struct {
		in  *string
		out *string
	}{
		"title":     {req.Title, &devotional.Title},
		"snippet":   {req.Snippet, &devotional.Snippet},
		"scripture": {req.Scripture, &devotional.Scripture},
		"image":     {req.Image, &devotional.Image},
	} {
		if pair.in == nil {
			continue
		}
		v := strings.TrimSpace(*pair.in)
		if v == "" {
			respondMissingFields(c, []string{field}, req)
			return
		}
		*pair.out = v
	}
	if req.Date != nil {
		date, err := pkg.ParseDate(*req.Date)
		if err != nil {
			respondInvalidDate(c, "date")
			return
		}
		devotional.Date = date
	}

	if err := h.repo.Save(devotional); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, devotional)
}

func (h *DevotionalHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondNotFound(c, "devotional")
		return
	}
	if _, err := h.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "devotional")
			return
		}
		respondStoreError(c)
		return
	}
	if err := h.repo.Delete(id); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "devotional deleted"})
}
