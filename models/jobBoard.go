package models

import "time"

// Job application review states.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

type ProfessionalArea struct {
	Professional_Area_ID int       `json:"id"`
	Name                 string    `json:"name"`
	Description          *string   `json:"description"`
	Datetime_Create      time.Time `json:"createdAt"`
}

type ProfessionalAreaCreate struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type Job struct {
	Job_ID               int        `json:"id"`
	Title                string     `json:"title"`
	Company              string     `json:"company"`
	Description          string     `json:"description"`
	Requirements         []string   `json:"requirements"`
	Benefits             []string   `json:"benefits"`
	Professional_Area_ID *int       `json:"professionalAreaId"`
	Location             *string    `json:"location"`
	Job_Type             string     `json:"jobType"`
	Experience_Level     string     `json:"experienceLevel"`
	Salary_Range         *string    `json:"salaryRange"`
	Contact_Email        string     `json:"contactEmail"`
	Contact_Phone        *string    `json:"contactPhone"`
	Application_Deadline *time.Time `json:"applicationDeadline"`
	Is_Active            bool       `json:"isActive"`
	Published_By         int        `json:"publishedBy"`
	Datetime_Create      time.Time  `json:"createdAt"`
	Datetime_Update      time.Time  `json:"updatedAt"`
}

type JobCreate struct {
	Title                string     `json:"title" binding:"required"`
	Company              string     `json:"company" binding:"required"`
	Description          string     `json:"description" binding:"required"`
	Requirements         []string   `json:"requirements"`
	Benefits             []string   `json:"benefits"`
	Professional_Area_ID *int       `json:"professionalAreaId"`
	Location             *string    `json:"location"`
	Job_Type             string     `json:"jobType" binding:"required"`
	Experience_Level     string     `json:"experienceLevel" binding:"required"`
	Salary_Range         *string    `json:"salaryRange"`
	Contact_Email        string     `json:"contactEmail" binding:"required"`
	Contact_Phone        *string    `json:"contactPhone"`
	Application_Deadline *time.Time `json:"applicationDeadline"`
	Is_Active            *bool      `json:"isActive"`
	Published_By         int        `json:"publishedBy" binding:"required"`
}

type JobFilter struct {
	Professional_Area_ID int
	Is_Active            *bool
	Job_Type             string
	Experience_Level     string
}

type UserProfile struct {
	User_Profile_ID      int       `json:"id"`
	User_ID              int       `json:"userId"`
	Full_Name            string    `json:"fullName"`
	Email                string    `json:"email"`
	Phone                *string   `json:"phone"`
	Professional_Area_ID *int      `json:"professionalAreaId"`
	Experience           *string   `json:"experience"`
	Skills               []string  `json:"skills"`
	Education            *string   `json:"education"`
	Summary              *string   `json:"summary"`
	Expected_Salary      *string   `json:"expectedSalary"`
	Available_For_Work   bool      `json:"availableForWork"`
	Datetime_Create      time.Time `json:"createdAt"`
	Datetime_Update      time.Time `json:"updatedAt"`
}

type UserProfileCreate struct {
	User_ID              int      `json:"userId" binding:"required"`
	Full_Name            string   `json:"fullName" binding:"required"`
	Email                string   `json:"email" binding:"required"`
	Phone                *string  `json:"phone"`
	Professional_Area_ID *int     `json:"professionalAreaId"`
	Experience           *string  `json:"experience"`
	Skills               []string `json:"skills"`
	Education            *string  `json:"education"`
	Summary              *string  `json:"summary"`
	Expected_Salary      *string  `json:"expectedSalary"`
	Available_For_Work   *bool    `json:"availableForWork"`
}

type UserProfileFilter struct {
	Professional_Area_ID int
	Available_For_Work   *bool
}

type JobApplication struct {
	Job_Application_ID int        `json:"id"`
	Job_ID             *int       `json:"jobId"`
	User_Profile_ID    int        `json:"userProfileId"`
	Cover_Letter       string     `json:"coverLetter"`
	Status             string     `json:"status"`
	Reviewed_By        *int       `json:"reviewedBy"`
	Reviewed_At        *time.Time `json:"reviewedAt"`
	Notes              *string    `json:"notes"`
	Applied_At         time.Time  `json:"appliedAt"`
	Datetime_Create    time.Time  `json:"createdAt"`
	Datetime_Update    time.Time  `json:"updatedAt"`
}

type JobApplicationCreate struct {
	Job_ID          *int    `json:"jobId"`
	User_Profile_ID int     `json:"userProfileId" binding:"required"`
	Cover_Letter    string  `json:"coverLetter" binding:"required"`
	Status          *string `json:"status"`
	Notes           *string `json:"notes"`
}

type JobApplicationReview struct {
	Status      string  `json:"status" binding:"required,oneof=pending reviewed accepted rejected"`
	Notes       *string `json:"notes"`
	Reviewed_By *int    `json:"reviewedBy"`
}

// JobApplicationDetail joins an application with its job and applicant.
type JobApplicationDetail struct {
	JobApplication
	Job     *Job         `json:"job"`
	Profile *UserProfile `json:"profile"`
}

type JobSystemStats struct {
	Total_Jobs             int    `json:"totalJobs"`
	Jobs_This_Month        int    `json:"jobsThisMonth"`
	Total_Applications     int    `json:"totalApplications"`
	Applications_This_Week int    `json:"applicationsThisWeek"`
	Active_Profiles        int    `json:"activeProfiles"`
	Profiles_Available     int    `json:"profilesAvailable"`
	Success_Rate           string `json:"successRate"`
}
