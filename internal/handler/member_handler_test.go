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

func setupMemberRouter(db *gorm.DB) *gin.Engine {
	m := NewMemberHandler(mysql.NewMemberRepository(db))
	res := NewResourceHandler(mysql.NewResourceRepository(db))
	r := gin.New()
	r.GET("/api/members", m.List)
	r.POST("/api/members", m.Create)
	r.PUT("/api/members/:id", m.Update)
	r.DELETE("/api/members/:id", m.Delete)
	r.GET("/api/resources", res.List)
	r.POST("/api/resources", res.Create)
	r.PUT("/api/resources/:id", res.Update)
	r.DELETE("/api/resources/:id", res.Delete)
	return r
}

func TestMemberLifecycle(t *testing.T) {
	db := setupDB(t)
	r := setupMemberRouter(db)

	w := performJSON(t, r, "POST", "/api/members", gin.H{
		"name":     "  Deborah ",
		"ministry": "Choir",
		"joinedAt": "2024-05-01",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody[model.Member](t, w)
	assert.Equal(t, "Deborah", created.Name)
	assert.Equal(t, 2024, created.JoinedAt.Year())

	w = performJSON(t, r, "PUT", "/api/members/1", gin.H{"ministry": "Ushering"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[model.Member](t, w)
	assert.Equal(t, "Ushering", updated.Ministry)
	assert.Equal(t, "Deborah", updated.Name)

	w = performJSON(t, r, "DELETE", "/api/members/1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, r, "DELETE", "/api/members/1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "member not found")
}

func TestMemberCreateRequiresName(t *testing.T) {
	db := setupDB(t)
	r := setupMemberRouter(db)

	w := performJSON(t, r, "POST", "/api/members", gin.H{"ministry": "Choir"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody[map[string]any](t, w)
	assert.Contains(t, body["missing"], "name")
}

func TestMemberInvalidJoinDate(t *testing.T) {
	db := setupDB(t)
	r := setupMemberRouter(db)

	w := performJSON(t, r, "POST", "/api/members", gin.H{
		"name": "Deborah", "joinedAt": "when I was young",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid date")
}

func TestResourceLifecycle(t *testing.T) {
	db := setupDB(t)
	r := setupMemberRouter(db)

	w := performJSON(t, r, "POST", "/api/resources", gin.H{
		"title":   "Bible Study Guide",
		"fileUrl": "/resources/guide.pdf",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody[model.Resource](t, w)
	assert.Equal(t, "Bible Study Guide", created.Title)
	assert.Equal(t, "/resources/guide.pdf", created.FileURL)

	w = performJSON(t, r, "PUT", "/api/resources/1", gin.H{"category": "Study"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Study", decodeBody[model.Resource](t, w).Category)

	w = performJSON(t, r, "DELETE", "/api/resources/1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, r, "GET", "/api/resources", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody[[]model.Resource](t, w))
}

func TestResourceCreateRequiresTitle(t *testing.T) {
	db := setupDB(t)
	r := setupMemberRouter(db)

	w := performJSON(t, r, "POST", "/api/resources", gin.H{"category": "Study"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody[map[string]any](t, w)
	assert.Contains(t, body["missing"], "title")
}
