package handler

import (
	"net/http"
	"testing"

	"github.com/0001fella/abundant-life-sub000/internal/model"
	"github.com/0001fella/abundant-life-sub000/internal/repository/mysql"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupDonationRouter(db *gorm.DB) *gin.Engine {
	h := NewDonationHandler(mysql.NewDonationRepository(db))
	r := gin.New()
	r.GET("/api/donations", h.List)
	r.POST("/api/donations", h.Create)
	r.PUT("/api/donations/:id", h.Update)
	r.DELETE("/api/donations/:id", h.Delete)
	return r
}

func TestDonationCreateDefaults(t *testing.T) {
	db := setupDB(t)
	r := setupDonationRouter(db)

	w := performJSON(t, r, "POST", "/api/donations", gin.H{"amount": 500}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody[model.Donation](t, w)
	assert.Equal(t, "Anonymous", created.Name)
	assert.Equal(t, "other", created.Type)
	assert.Equal(t, float64(500), created.Amount)
	assert.False(t, created.DonatedAt.IsZero())
}

func TestDonationCreateNegativeAmount(t *testing.T) {
	db := setupDB(t)
	r := setupDonationRouter(db)

	w := performJSON(t, r, "POST", "/api/donations", gin.H{"amount": -5}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "non-negative")

	var count int64
	db.Model(&model.Donation{}).Count(&count)
	assert.Zero(t, count)
}

func TestDonationCreateMissingAmount(t *testing.T) {
	db := setupDB(t)
	r := setupDonationRouter(db)

	w := performJSON(t, r, "POST", "/api/donations", gin.H{"name": "John"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody[map[string]any](t, w)
	assert.Contains(t, body["missing"], "amount")
}

func TestDonationInvalidType(t *testing.T) {
	db := setupDB(t)
	r := setupDonationRouter(db)

	w := performJSON(t, r, "POST", "/api/donations", gin.H{
		"amount": 100, "type": "raffle",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid donation type")
}

func TestDonationListOrderedByDonatedAtDesc(t *testing.T) {
	db := setupDB(t)
	r := setupDonationRouter(db)

	for _, d := range []string{"2025-01-01", "2025-06-01", "2025-03-01"} {
		w := performJSON(t, r, "POST", "/api/donations", gin.H{
			"amount": 100, "donatedAt": d, "intent": d,
		}, "")
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := performJSON(t, r, "GET", "/api/donations", nil, "")
	list := decodeBody[[]model.Donation](t, w)
	if assert.Len(t, list, 3) {
		assert.Equal(t, "2025-06-01", list[0].Intent)
		assert.Equal(t, "2025-03-01", list[1].Intent)
		assert.Equal(t, "2025-01-01", list[2].Intent)
	}
}

func TestDonationUpdateAndDelete(t *testing.T) {
	db := setupDB(t)
	r := setupDonationRouter(db)

	performJSON(t, r, "POST", "/api/donations", gin.H{"amount": 100, "type": "tithe"}, "")

	w := performJSON(t, r, "PUT", "/api/donations/1", gin.H{"amount": 250}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[model.Donation](t, w)
	assert.Equal(t, float64(250), updated.Amount)
	assert.Equal(t, "tithe", updated.Type)

	w = performJSON(t, r, "PUT", "/api/donations/99", gin.H{"amount": 10}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "donation not found")

	w = performJSON(t, r, "DELETE", "/api/donations/1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, r, "DELETE", "/api/donations/1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
