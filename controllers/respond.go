package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/CongregationConsole/initializers"
	"github.com/CongregationConsole/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// paramID reads a positive integer path parameter, answering 400 otherwise.
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query value. Absent or malformed
// values read as zero, which the filters treat as "any".
func queryInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}

// queryBool parses an optional boolean query value.
func queryBool(c *gin.Context, name string) *bool {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// storeError maps a storage failure to a response.
func storeError(c *gin.Context, action string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	initializers.Log.WithFields(logrus.Fields{
		"action": action,
		"path":   c.FullPath(),
	}).WithError(err).Error("storage operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
}

func notFoundJSON(c *gin.Context, entity string) {
	c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
