package handler

import (
	"net/http"
	"strings"

	"github.com/0001fella/abundant-life-sub000/internal/model"
	"github.com/0001fella/abundant-life-sub000/internal/pkg"
	"github.com/0001fella/abundant-life-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type PrayerHandler struct {
	svc *service.PrayerService
}

type CreatePrayerReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Request string `json:"request"`
}

func NewPrayerHandler(svc *service.PrayerService) *PrayerHandler {
	return &PrayerHandler{svc: svc}
}

func (h *PrayerHandler) List(c *gin.Context) {
	list, err := h.svc.List()
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create is public and rate limited like testimonials.
func (h *PrayerHandler) Create(c *gin.Context) {
	var req CreatePrayerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	missing := pkg.TrimRequired(map[string]*string{
		"request": &req.Request,
	}, []string{"request"})
	if len(missing) > 0 {
		respondMissingFields(c, missing, req)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Anonymous"
	}

	prayer := &model.PrayerRequest{
		Name:    name,
		Email:   strings.TrimSpace(req.Email),
		Request: req.Request,
	}
	if err := h.svc.Create(prayer); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusCreated, prayer)
}
