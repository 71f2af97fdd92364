package controllers

import (
	"net/http"

	"github.com/CongregationConsole/initializers"
	"github.com/CongregationConsole/models"
	"github.com/gin-gonic/gin"
)

func GetProfessionalAreas(c *gin.Context) {
	areas, err := initializers.Store.ListProfessionalAreas(c.Request.Context())
	if err != nil {
		storeError(c, "fetch professional areas", err)
		return
	}
	c.JSON(http.StatusOK, areas)
}

func CreateProfessionalArea(c *gin.Context) {
	var body models.ProfessionalAreaCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	area, err := initializers.Store.CreateProfessionalArea(c.Request.Context(), body)
	if err != nil {
		storeError(c, "create professional area", err)
		return
	}
	c.JSON(http.StatusCreated, area)
}

// GetJobs is the public listing: only active offers unless ?isActive says
// otherwise.
func GetJobs(c *gin.Context) {
	active := queryBool(c, "isActive")
	if active == nil {
		t := true
		active = &t
	}
	listJobs(c, models.JobFilter{
		Professional_Area_ID: queryInt(c, "areaId"),
		Is_Active:            active,
		Job_Type:             c.Query("jobType"),
		Experience_Level:     c.Query("experienceLevel"),
	})
}

// GetAdminJobs lists every offer, active or not.
func GetAdminJobs(c *gin.Context) {
	listJobs(c, models.JobFilter{
		Professional_Area_ID: queryInt(c, "areaId"),
		Is_Active:            queryBool(c, "isActive"),
		Job_Type:             c.Query("jobType"),
		Experience_Level:     c.Query("experienceLevel"),
	})
}

func listJobs(c *gin.Context, filter models.JobFilter) {
	jobs, err := initializers.Store.ListJobs(c.Request.Context(), filter)
	if err != nil {
		storeError(c, "fetch jobs", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func CreateJob(c *gin.Context) {
	var body models.JobCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := initializers.Store.CreateJob(c.Request.Context(), body)
	if err != nil {
		storeError(c, "create job", err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func ToggleJobStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	job, err := initializers.Store.ToggleJobStatus(c.Request.Context(), id)
	if err != nil {
		storeError(c, "toggle job", err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func DeleteJob(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := initializers.Store.DeleteJob(c.Request.Context(), id); err != nil {
		storeError(c, "delete job", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

func GetUserProfiles(c *gin.Context) {
	filter := models.UserProfileFilter{
		Professional_Area_ID: queryInt(c, "areaId"),
		Available_For_Work:   queryBool(c, "availableForWork"),
	}

	profiles, err := initializers.Store.ListUserProfiles(c.Request.Context(), filter)
	if err != nil {
		storeError(c, "fetch user profiles", err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func CreateUserProfile(c *gin.Context) {
	var body models.UserProfileCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := initializers.Store.CreateUserProfile(c.Request.Context(), body)
	if err != nil {
		storeError(c, "create user profile", err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// GetJobApplications returns applications joined with their job and
// applicant.
func GetJobApplications(c *gin.Context) {
	applications, err := initializers.Store.ListJobApplicationDetails(c.Request.Context())
	if err != nil {
		storeError(c, "fetch job applications", err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

func CreateJobApplication(c *gin.Context) {
	var body models.JobApplicationCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application, err := initializers.Store.CreateJobApplication(c.Request.Context(), body)
	if err != nil {
		storeError(c, "create job application", err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

func ReviewJobApplication(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var body models.JobApplicationReview
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application, err := initializers.Store.ReviewJobApplication(c.Request.Context(), id, body)
	if err != nil {
		storeError(c, "review job application", err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func GetJobStats(c *gin.Context) {
	stats, err := initializers.Store.JobSystemStats(c.Request.Context())
	if err != nil {
		storeError(c, "fetch job stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
