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

type SermonHandler struct {
	repo *mysql.SermonRepository
}

type CreateSermonReq struct {
	Title       string `json:"title"`
	Preacher    string `json:"preacher"`
	Scripture   string `json:"scripture"`
	Date        string `json:"date"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl"`
	AudioURL    string `json:"audioUrl"`
	Image       string `json:"image"`
}

// UpdateSermonReq uses pointers so omitted fields stay untouched.
type UpdateSermonReq struct {
	Title       *string `json:"title"`
	Preacher    *string `json:"preacher"`
	Scripture   *string `json:"scripture"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
	VideoURL    *string `json:"videoUrl"`
	AudioURL    *string `json:"audioUrl"`
	Image       *string `json:"image"`
}

func NewSermonHandler(repo *mysql.SermonRepository) *SermonHandler {
	return &SermonHandler{repo: repo}
}

func (h *SermonHandler) List(c *gin.Context) {
	list, err := h.repo.List()
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *SermonHandler) Create(c *gin.Context) {
	var req CreateSermonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	missing := pkg.TrimRequired(map[string]*string{
		"title":    &req.Title,
		"preacher": &req.Preacher,
		"date":     &req.Date,
	}, []string{"title", "preacher", "date"})
	if len(missing) > 0 {
		respondMissingFields(c, missing, req)
		return
	}

	date, err := pkg.ParseDate(req.Date)
	if err != nil {
		respondInvalidDate(c, "date")
		return
	}

	sermon := &model.Sermon{
		Title:       req.Title,
		Preacher:    req.Preacher,
		Scripture:   strings.TrimSpace(req.Scripture),
		Date:        date,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		AudioURL:    req.AudioURL,
		Image:       req.Image,
	}
	if err := h.repo.Create(sermon); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusCreated, sermon)
}

func (h *SermonHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondNotFound(c, "sermon")
		return
	}
	sermon, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "sermon")
			return
		}
		respondStoreError(c)
		return
	}

	var req UpdateSermonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	if req.Title != nil {
		if *req.Title = strings.TrimSpace(*req.Title); *req.Title == "" {
			respondMissingFields(c, []string{"title"}, req)
			return
		}
		sermon.Title = *req.Title
	}
	if req.Preacher != nil {
		if *req.Preacher = strings.TrimSpace(*req.Preacher); *req.Preacher == "" {
			respondMissingFields(c, []string{"preacher"}, req)
			return
		}
		sermon.Preacher = *req.Preacher
	}
	if req.Date != nil {
		date, err := pkg.ParseDate(*req.Date)
		if err != nil {
			respondInvalidDate(c, "date")
			return
		}
		sermon.Date = date
	}
	if req.Scripture != nil {
		sermon.Scripture = strings.TrimSpace(*req.Scripture)
	}
	if req.Description != nil {
		sermon.Description = *req.Description
	}
	if req.VideoURL != nil {
		sermon.VideoURL = *req.VideoURL
	}
	if req.AudioURL != nil {
		sermon.AudioURL = *req.AudioURL
	}
	if req.Image != nil {
		sermon.Image = *req.Image
	}

	if err := h.repo.Save(sermon); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, sermon)
}

func (h *SermonHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondNotFound(c, "sermon")
		return
	}
	if _, err := h.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "sermon")
			return
		}
		respondStoreError(c)
		return
	}
	if err := h.repo.Delete(id); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sermon deleted"})
}

func (h *SermonHandler) Like(c *gin.Context) {
	h.increment(c, "likes")
}

func (h *SermonHandler) View(c *gin.Context) {
	h.increment(c, "views")
}

func (h *SermonHandler) increment(c *gin.Context, column string) {
	id, ok := paramID(c)
	if !ok {
		respondNotFound(c, "sermon")
		return
	}
	sermon, err := h.repo.IncrementCounter(id, column)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "sermon")
			return
		}
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, sermon)
}
