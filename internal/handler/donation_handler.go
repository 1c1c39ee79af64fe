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

type DonationHandler struct {
	repo *mysql.DonationRepository
}

type CreateDonationReq struct {
	Name      string   `json:"name"`
	Amount    *float64 `json:"amount"`
	Type      string   `json:"type"`
	Intent    string   `json:"intent"`
	Message   string   `json:"message"`
	DonatedAt string   `json:"donatedAt"`
}

type UpdateDonationReq struct {
	Name      *string  `json:"name"`
	Amount    *float64 `json:"amount"`
	Type      *string  `json:"type"`
	Intent    *string  `json:"intent"`
	Message   *string  `json:"message"`
	DonatedAt *string  `json:"donatedAt"`
}

func NewDonationHandler(repo *mysql.DonationRepository) *DonationHandler {
	return &DonationHandler{repo: repo}
}

func (h *DonationHandler) List(c *gin.Context) {
	list, err := h.repo.List()
	if err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create records an intent to give; payment itself happens out of band
// through the mobile-money paybill.
func (h *DonationHandler) Create(c *gin.Context) {
	var req CreateDonationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	if req.Amount == nil {
		respondMissingFields(c, []string{"amount"}, req)
		return
	}
	if *req.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be non-negative"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Anonymous"
	}

	dtype := strings.TrimSpace(req.Type)
	if dtype == "" {
		dtype = "other"
	}
	if !model.ValidDonationType(dtype) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation type", "allowed": model.DonationTypes})
		return
	}

	donatedAt := time.Now()
	if s := strings.TrimSpace(req.DonatedAt); s != "" {
		t, err := pkg.ParseDate(s)
		if err != nil {
			respondInvalidDate(c, "donatedAt")
			return
		}
		donatedAt = t
	}

	donation := &model.Donation{
		Name:      name,
		Amount:    *req.Amount,
		Type:      dtype,
		Intent:    strings.TrimSpace(req.Intent),
		Message:   req.Message,
		DonatedAt: donatedAt,
	}
	if err := h.repo.Create(donation); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusCreated, donation)
}

func (h *DonationHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondNotFound(c, "donation")
		return
	}
	donation, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "donation")
			return
		}
		respondStoreError(c)
		return
	}

	var req UpdateDonationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	if req.Amount != nil {
		if *req.Amount < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be non-negative"})
			return
		}
		donation.Amount = *req.Amount
	}
	if req.Name != nil {
		if v := strings.TrimSpace(*req.Name); v != "" {
			donation.Name = v
		}
	}
	if req.Type != nil {
		v := strings.TrimSpace(*req.Type)
		if !model.ValidDonationType(v) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation type", "allowed": model.DonationTypes})
			return
		}
		donation.Type = v
	}
	if req.Intent != nil {
		donation.Intent = strings.TrimSpace(*req.Intent)
	}
	if req.Message != nil {
		donation.Message = *req.Message
	}
	if req.DonatedAt != nil {
		t, err := pkg.ParseDate(*req.DonatedAt)
		if err != nil {
			respondInvalidDate(c, "donatedAt")
			return
		}
		donation.DonatedAt = t
	}

	if err := h.repo.Save(donation); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, donation)
}

func (h *DonationHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondNotFound(c, "donation")
		return
	}
	if _, err := h.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "donation")
			return
		}
		respondStoreError(c)
		return
	}
	if err := h.repo.Delete(id); err != nil {
		respondStoreError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "donation deleted"})
}
