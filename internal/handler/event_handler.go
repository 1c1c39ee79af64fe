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

type EventHandler struct {
	repo      *mysql.EventRepository
	uploadDir string
}

type EventForm struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Date        string `json:"date" form:"date"`
	Location    string `json:"location" form:"location"`
	Category    string `json:"category" form:"category"`
}

func NewEventHandler(repo *mysql.EventRepository, uploadDir string) *EventHandler {
	return &EventHandler{repo: repo, uploadDir: uploadDir}
}

func (h *EventHandler) List(c *gin.Context) {
	list, err := h.repo.List()
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create accepts either JSON or a multipart form with an optional image
// field; the image is absent on most submissions and that is not an error.
func (h *EventHandler) Create(c *gin.Context) {
	var req EventForm
	if err := c.ShouldBind(&req); err != nil {
		respondBadBody(c)
		return
	}

	missing := pkg.TrimRequired(map[string]*string{
		"title":       &req.Title,
		"description": &req.Description,
		"date":        &req.Date,
		"location":    &req.Location,
	}, []string{"title", "description", "date", "location"})
	if len(missing) > 0 {
		respondMissingFields(c, missing, req)
		return
	}

	date, err := pkg.ParseDate(req.Date)
	if err != nil {
		respondInvalidDate(c, "date")
		return
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "General"
	}
	if !model.ValidEventCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category", "allowed": model.EventCategories})
		return
	}

	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
		Category:    category,
	}

	// Validate and store the image only after the fields pass, so a 400
	// never leaves an orphaned file behind.
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		name, err := pkg.SaveImage(fh, h.uploadDir)
		if err != nil {
			h.respondUploadError(c, err)
			return
		}
		event.Image = "/uploads/" + name
	}

	if err := h.repo.Create(event); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondNotFound(c, "event")
		return
	}
	event, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "event")
			return
		}
		respondStoreError(c)
		return
	}

	var req EventForm
	if err := c.ShouldBind(&req); err != nil {
		respondBadBody(c)
		return
	}

	if v := strings.TrimSpace(req.Title); v != "" {
		event.Title = v
	}
	if v := strings.TrimSpace(req.Description); v != "" {
		event.Description = v
	}
	if v := strings.TrimSpace(req.Location); v != "" {
		event.Location = v
	}
	if v := strings.TrimSpace(req.Date); v != "" {
		date, err := pkg.ParseDate(v)
		if err != nil {
			respondInvalidDate(c, "date")
			return
		}
		event.Date = date
	}
	if v := strings.TrimSpace(req.Category); v != "" {
		if !model.ValidEventCategory(v) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category", "allowed": model.EventCategories})
			return
		}
		event.Category = v
	}

	// A new file replaces the stored path; omitting it preserves the old one.
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		name, err := pkg.SaveImage(fh, h.uploadDir)
		if err != nil {
			h.respondUploadError(c, err)
			return
		}
		event.Image = "/uploads/" + name
	}

	if err := h.repo.Save(event); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondNotFound(c, "event")
		return
	}
	if _, err := h.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "event")
			return
		}
		respondStoreError(c)
		return
	}
	if err := h.repo.Delete(id); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

func (h *EventHandler) respondUploadError(c *gin.Context, err error) {
	if errors.Is(err, pkg.ErrBadFileType) || errors.Is(err, pkg.ErrFileTooLarge) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	respondStoreError(c)
}
