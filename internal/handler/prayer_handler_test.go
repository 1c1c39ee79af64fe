package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/0001fella/abundant-life-sub000/internal/middleware"
	"github.com/0001fella/abundant-life-sub000/internal/model"
	"github.com/0001fella/abundant-life-sub000/internal/pkg"
	"github.com/0001fella/abundant-life-sub000/internal/repository/mysql"
	"github.com/0001fella/abundant-life-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupPrayerRouter(db *gorm.DB) *gin.Engine {
	// SMTP unconfigured: notification mail is skipped.
	svc := service.NewPrayerService(mysql.NewPrayerRepository(db), pkg.SMTPConfig{}, "")
	h := NewPrayerHandler(svc)
	r := gin.New()
	r.GET("/api/prayers", h.List)
	r.POST("/api/prayers",
		middleware.RateLimit(middleware.NewMemoryCounter(), time.Minute, "one prayer request every 15 minutes"),
		h.Create)
	return r
}

func TestPrayerCreateDefaultsToAnonymous(t *testing.T) {
	db := setupDB(t)
	r := setupPrayerRouter(db)

	w := performJSON(t, r, "POST", "/api/prayers", gin.H{
		"request": "Please pray for my family",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody[model.PrayerRequest](t, w)
	assert.Equal(t, "Anonymous", created.Name)
	assert.Equal(t, "Please pray for my family", created.Request)
}

func TestPrayerCreateRequiresRequest(t *testing.T) {
	db := setupDB(t)
	r := setupPrayerRouter(db)

	w := performJSON(t, r, "POST", "/api/prayers", gin.H{"name": "Job"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody[map[string]any](t, w)
	assert.Contains(t, body["missing"], "request")
}

func TestPrayerRateLimited(t *testing.T) {
	db := setupDB(t)
	r := setupPrayerRouter(db)

	payload := gin.H{"request": "Pray for rain"}
	w := performJSON(t, r, "POST", "/api/prayers", payload, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(t, r, "POST", "/api/prayers", payload, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
