package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Shared response vocabulary for the CRUD handlers. Every resource follows
// the same contract: 400 enumerating missing fields with the body echoed
// back, a distinct 400 for unparseable dates, 404 naming the resource, and
// a generic 500 for store errors.

func respondMissingFields(c *gin.Context, missing []string, received any) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":    "missing required fields",
		"missing":  missing,
		"received": received,
	})
}

func respondInvalidDate(c *gin.Context, field string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date", "field": field})
}

func respondBadBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}

func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
}

func respondStoreError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
}

// paramID parses the :id path segment. An unparseable id can never resolve
// to a record, so callers treat ok=false as not found.
func paramID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
