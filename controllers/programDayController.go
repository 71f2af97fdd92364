package controllers

import (
	"net/http"

	"github.com/CongregationConsole/initializers"
	"github.com/CongregationConsole/models"
	"github.com/gin-gonic/gin"
)

// GetProgramDays lists the days of the program in the path, in day order.
func GetProgramDays(c *gin.Context) {
	programID, ok := paramID(c, "id")
	if !ok {
		return
	}

	_, found, err := initializers.Store.GetProgram(c.Request.Context(), programID)
	if err != nil {
		storeError(c, "fetch program days", err)
		return
	}
	if !found {
		notFoundJSON(c, "Program")
		return
	}

	days, err := initializers.Store.ListProgramDays(c.Request.Context(), programID)
	if err != nil {
		storeError(c, "fetch program days", err)
		return
	}
	c.JSON(http.StatusOK, days)
}

func GetProgramDay(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	day, found, err := initializers.Store.GetProgramDay(c.Request.Context(), id)
	if err != nil {
		storeError(c, "fetch program day", err)
		return
	}
	if !found {
		notFoundJSON(c, "Program day")
		return
	}
	c.JSON(http.StatusOK, day)
}

// CreateProgramDay adds a day to the program in the path; the program's
// totalDias is recounted by the store.
func CreateProgramDay(c *gin.Context) {
	programID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var body models.ProgramDayCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body.Program_ID = programID

	_, found, err := initializers.Store.GetProgram(c.Request.Context(), programID)
	if err != nil {
		storeError(c, "create program day", err)
		return
	}
	if !found {
		notFoundJSON(c, "Program")
		return
	}

	day, err := initializers.Store.CreateProgramDay(c.Request.Context(), body)
	if err != nil {
		storeError(c, "create program day", err)
		return
	}
	c.JSON(http.StatusCreated, day)
}

func UpdateProgramDay(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var body models.ProgramDayUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := initializers.Store.UpdateProgramDay(c.Request.Context(), id, body)
	if err != nil {
		storeError(c, "update program day", err)
		return
	}
	c.JSON(http.StatusOK, day)
}

func DeleteProgramDay(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := initializers.Store.DeleteProgramDay(c.Request.Context(), id); err != nil {
		storeError(c, "delete program day", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Program day deleted successfully"})
}
