package controllers

import (
	"net/http"

	"github.com/CongregationConsole/initializers"
	"github.com/CongregationConsole/models"
	"github.com/gin-gonic/gin"
)

// GetPrograms lists programs. ?publicado and ?categoria filter the list,
// ?dias=true embeds each program's days.
func GetPrograms(c *gin.Context) {
	filter := models.ProgramFilter{
		Published: queryBool(c, "publicado"),
		Category:  c.Query("categoria"),
	}

	if withDays := queryBool(c, "dias"); withDays != nil && *withDays {
		programs, err := initializers.Store.ListProgramsWithDays(c.Request.Context(), filter)
		if err != nil {
			storeError(c, "fetch programs", err)
			return
		}
		c.JSON(http.StatusOK, programs)
		return
	}

	programs, err := initializers.Store.ListPrograms(c.Request.Context(), filter)
	if err != nil {
		storeError(c, "fetch programs", err)
		return
	}
	c.JSON(http.StatusOK, programs)
}

func GetProgram(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	program, found, err := initializers.Store.GetProgram(c.Request.Context(), id)
	if err != nil {
		storeError(c, "fetch program", err)
		return
	}
	if !found {
		notFoundJSON(c, "Program")
		return
	}
	c.JSON(http.StatusOK, program)
}

func GetProgramBySlug(c *gin.Context) {
	program, found, err := initializers.Store.GetProgramBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		storeError(c, "fetch program", err)
		return
	}
	if !found {
		notFoundJSON(c, "Program")
		return
	}
	c.JSON(http.StatusOK, program)
}

func CreateProgram(c *gin.Context) {
	var body models.ProgramCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, taken, err := initializers.Store.GetProgramBySlug(c.Request.Context(), body.Slug)
	if err != nil {
		storeError(c, "create program", err)
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "slug already exists"})
		return
	}

	program, err := initializers.Store.CreateProgram(c.Request.Context(), body)
	if err != nil {
		storeError(c, "create program", err)
		return
	}
	c.JSON(http.StatusCreated, program)
}

func UpdateProgram(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var body models.ProgramUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if body.Slug != nil {
		owner, taken, err := initializers.Store.GetProgramBySlug(c.Request.Context(), *body.Slug)
		if err != nil {
			storeError(c, "update program", err)
			return
		}
		if taken && owner.Program_ID != id {
			c.JSON(http.StatusConflict, gin.H{"error": "slug already exists"})
			return
		}
	}

	program, err := initializers.Store.UpdateProgram(c.Request.Context(), id, body)
	if err != nil {
		storeError(c, "update program", err)
		return
	}
	c.JSON(http.StatusOK, program)
}

func DeleteProgram(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := initializers.Store.DeleteProgram(c.Request.Context(), id); err != nil {
		storeError(c, "delete program", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Program deleted successfully"})
}

func ToggleProgramPublished(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	program, err := initializers.Store.ToggleProgramPublished(c.Request.Context(), id)
	if err != nil {
		storeError(c, "toggle program", err)
		return
	}
	c.JSON(http.StatusOK, program)
}
