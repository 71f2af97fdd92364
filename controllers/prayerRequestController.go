package controllers

import (
	"net/http"

	"github.com/CongregationConsole/initializers"
	"github.com/CongregationConsole/models"
	"github.com/gin-gonic/gin"
)

func GetPrayerRequests(c *gin.Context) {
	filter := models.PrayerRequestFilter{
		Status:   c.Query("estado"),
		Category: c.Query("categoria"),
	}

	requests, err := initializers.Store.ListPrayerRequests(c.Request.Context(), filter)
	if err != nil {
		storeError(c, "fetch prayer requests", err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func GetPrayerRequest(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	request, found, err := initializers.Store.GetPrayerRequest(c.Request.Context(), id)
	if err != nil {
		storeError(c, "fetch prayer request", err)
		return
	}
	if !found {
		notFoundJSON(c, "Prayer request")
		return
	}
	c.JSON(http.StatusOK, request)
}

func CreatePrayerRequest(c *gin.Context) {
	var body models.PrayerRequestCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Status != nil && !models.IsValidPrayerStatus(*body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	request, err := initializers.Store.CreatePrayerRequest(c.Request.Context(), body)
	if err != nil {
		storeError(c, "create prayer request", err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func UpdatePrayerRequest(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var body models.PrayerRequestUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Status != nil && !models.IsValidPrayerStatus(*body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	request, err := initializers.Store.UpdatePrayerRequest(c.Request.Context(), id, body)
	if err != nil {
		storeError(c, "update prayer request", err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func DeletePrayerRequest(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := initializers.Store.DeletePrayerRequest(c.Request.Context(), id); err != nil {
		storeError(c, "delete prayer request", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prayer request deleted successfully"})
}

// PrayForRequest records one intercession.
func PrayForRequest(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	request, err := initializers.Store.IncrementPrayerCount(c.Request.Context(), id)
	if err != nil {
		storeError(c, "record prayer", err)
		return
	}
	c.JSON(http.StatusOK, request)
}
