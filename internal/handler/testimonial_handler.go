package handler

import (
	"net/http"
	"strings"

	"github.com/0001fella/abundant-life-sub000/internal/model"
	"github.com/0001fella/abundant-life-sub000/internal/pkg"
	"github.com/0001fella/abundant-life-sub000/internal/repository/mysql"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	repo *mysql.TestimonialRepository
}

type CreateTestimonialReq struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Emoji   string `json:"emoji"`
	Date    string `json:"date"` // free text, shown as typed
}

func NewTestimonialHandler(repo *mysql.TestimonialRepository) *TestimonialHandler {
	return &TestimonialHandler{repo: repo}
}

func (h *TestimonialHandler) List(c *gin.Context) {
	list, err := h.repo.List()
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create is public but sits behind the rate limiter in the router.
// Testimonials are auto-approved; there is no moderation path.
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req CreateTestimonialReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	missing := pkg.TrimRequired(map[string]*string{
		"name":    &req.Name,
		"message": &req.Message,
	}, []string{"name", "message"})
	if len(missing) > 0 {
		respondMissingFields(c, missing, req)
		return
	}

	testimonial := &model.Testimonial{
		Name:     req.Name,
		Message:  req.Message,
		Emoji:    strings.TrimSpace(req.Emoji),
		Date:     strings.TrimSpace(req.Date),
		Approved: true,
	}
	if err := h.repo.Create(testimonial); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}
