package storage

import (
	"context"
	"strconv"

	"github.com/CongregationConsole/models"
)

func (s *MemStore) ListProfessionalAreas(ctx context.Context) ([]models.ProfessionalArea, error) {
	return s.areas.list(nil, func(a, b models.ProfessionalArea) bool {
		return a.Professional_Area_ID < b.Professional_Area_ID
	}), nil
}

func (s *MemStore) CreateProfessionalArea(ctx context.Context, body models.ProfessionalAreaCreate) (models.ProfessionalArea, error) {
	now := s.now()
	return s.areas.insert(func(id int) models.ProfessionalArea {
		return models.ProfessionalArea{
			Professional_Area_ID: id,
			Name:                 body.Name,
			Description:          body.Description,
			Datetime_Create:      now,
		}
	}), nil
}

// ListJobs returns the offers matching every set filter field, newest first.
func (s *MemStore) ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
	match := func(j models.Job) bool {
		if filter.Professional_Area_ID != 0 && (j.Professional_Area_ID == nil || *j.Professional_Area_ID != filter.Professional_Area_ID) {
			return false
		}
		if filter.Is_Active != nil && j.Is_Active != *filter.Is_Active {
			return false
		}
		if filter.Job_Type != "" && j.Job_Type != filter.Job_Type {
			return false
		}
		if filter.Experience_Level != "" && j.Experience_Level != filter.Experience_Level {
			return false
		}
		return true
	}
	return s.jobs.list(match, func(a, b models.Job) bool {
		return newerFirst(a.Datetime_Create, b.Datetime_Create, a.Job_ID, b.Job_ID)
	}), nil
}

func (s *MemStore) CreateJob(ctx context.Context, body models.JobCreate) (models.Job, error) {
	now := s.now()
	return s.jobs.insert(func(id int) models.Job {
		return models.Job{
			Job_ID:               id,
			Title:                body.Title,
			Company:              body.Company,
			Description:          body.Description,
			Requirements:         body.Requirements,
			Benefits:             body.Benefits,
			Professional_Area_ID: body.Professional_Area_ID,
			Location:             body.Location,
			Job_Type:             body.Job_Type,
			Experience_Level:     body.Experience_Level,
			Salary_Range:         body.Salary_Range,
			Contact_Email:        body.Contact_Email,
			Contact_Phone:        body.Contact_Phone,
			Application_Deadline: body.Application_Deadline,
			Is_Active:            body.Is_Active == nil || *body.Is_Active,
			Published_By:         body.Published_By,
			Datetime_Create:      now,
			Datetime_Update:      now,
		}
	}), nil
}

func (s *MemStore) ToggleJobStatus(ctx context.Context, id int) (models.Job, error) {
	now := s.now()
	job, ok := s.jobs.update(id, func(j *models.Job) {
		j.Is_Active = !j.Is_Active
		j.Datetime_Update = now
	})
	if !ok {
		return models.Job{}, notFound("job", id)
	}
	return job, nil
}

// DeleteJob removes the offer together with the applications made to it.
func (s *MemStore) DeleteJob(ctx context.Context, id int) error {
	s.applications.removeWhere(func(a models.JobApplication) bool {
		return a.Job_ID != nil && *a.Job_ID == id
	})
	s.jobs.remove(id)
	return nil
}

func (s *MemStore) ListUserProfiles(ctx context.Context, filter models.UserProfileFilter) ([]models.UserProfile, error) {
	match := func(p models.UserProfile) bool {
		if filter.Professional_Area_ID != 0 && (p.Professional_Area_ID == nil || *p.Professional_Area_ID != filter.Professional_Area_ID) {
			return false
		}
		if filter.Available_For_Work != nil && p.Available_For_Work != *filter.Available_For_Work {
			return false
		}
		return true
	}
	return s.profiles.list(match, func(a, b models.UserProfile) bool {
		return newerFirst(a.Datetime_Create, b.Datetime_Create, a.User_Profile_ID, b.User_Profile_ID)
	}), nil
}

func (s *MemStore) CreateUserProfile(ctx context.Context, body models.UserProfileCreate) (models.UserProfile, error) {
	now := s.now()
	return s.profiles.insert(func(id int) models.UserProfile {
		return models.UserProfile{
			User_Profile_ID:      id,
			User_ID:              body.User_ID,
			Full_Name:            body.Full_Name,
			Email:                body.Email,
			Phone:                body.Phone,
			Professional_Area_ID: body.Professional_Area_ID,
			Experience:           body.Experience,
			Skills:               body.Skills,
			Education:            body.Education,
			Summary:              body.Summary,
			Expected_Salary:      body.Expected_Salary,
			Available_For_Work:   body.Available_For_Work == nil || *body.Available_For_Work,
			Datetime_Create:      now,
			Datetime_Update:      now,
		}
	}), nil
}

// ListJobApplications returns every application, most recently applied first.
func (s *MemStore) ListJobApplications(ctx context.Context) ([]models.JobApplication, error) {
	return s.applications.list(nil, func(a, b models.JobApplication) bool {
		return newerFirst(a.Applied_At, b.Applied_At, a.Job_Application_ID, b.Job_Application_ID)
	}), nil
}

func (s *MemStore) ListJobApplicationDetails(ctx context.Context) ([]models.JobApplicationDetail, error) {
	applications, _ := s.ListJobApplications(ctx)
	details := make([]models.JobApplicationDetail, 0, len(applications))
	for _, app := range applications {
		detail := models.JobApplicationDetail{JobApplication: app}
		if app.Job_ID != nil {
			if job, ok := s.jobs.get(*app.Job_ID); ok {
				detail.Job = &job
			}
		}
		if profile, ok := s.profiles.get(app.User_Profile_ID); ok {
			detail.Profile = &profile
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *MemStore) CreateJobApplication(ctx context.Context, body models.JobApplicationCreate) (models.JobApplication, error) {
	now := s.now()
	status := models.ApplicationStatusPending
	if body.Status != nil && *body.Status != "" {
		status = *body.Status
	}
	return s.applications.insert(func(id int) models.JobApplication {
		return models.JobApplication{
			Job_Application_ID: id,
			Job_ID:             body.Job_ID,
			User_Profile_ID:    body.User_Profile_ID,
			Cover_Letter:       body.Cover_Letter,
			Status:             status,
			Notes:              body.Notes,
			Applied_At:         now,
			Datetime_Create:    now,
			Datetime_Update:    now,
		}
	}), nil
}

// ReviewJobApplication records a reviewer decision. Notes and reviewer are
// replaced, not merged.
func (s *MemStore) ReviewJobApplication(ctx context.Context, id int, review models.JobApplicationReview) (models.JobApplication, error) {
	now := s.now()
	app, ok := s.applications.update(id, func(a *models.JobApplication) {
		a.Status = review.Status
		a.Notes = review.Notes
		a.Reviewed_By = review.Reviewed_By
		a.Reviewed_At = &now
		a.Datetime_Update = now
	})
	if !ok {
		return models.JobApplication{}, notFound("job application", id)
	}
	return app, nil
}

func (s *MemStore) JobSystemStats(ctx context.Context) (models.JobSystemStats, error) {
	now := s.now()
	monthAgo := now.AddDate(0, -1, 0)
	weekAgo := now.AddDate(0, 0, -7)

	totalApplications := s.applications.count(nil)
	accepted := s.applications.count(func(a models.JobApplication) bool {
		return a.Status == models.ApplicationStatusAccepted
	})
	successRate := "0"
	if totalApplications > 0 {
		successRate = strconv.FormatFloat(float64(accepted)/float64(totalApplications)*100, 'f', 1, 64)
	}

	return models.JobSystemStats{
		Total_Jobs: s.jobs.count(nil),
		Jobs_This_Month: s.jobs.count(func(j models.Job) bool {
			return !j.Datetime_Create.Before(monthAgo)
		}),
		Total_Applications: totalApplications,
		Applications_This_Week: s.applications.count(func(a models.JobApplication) bool {
			return !a.Applied_At.Before(weekAgo)
		}),
		Active_Profiles: s.profiles.count(nil),
		Profiles_Available: s.profiles.count(func(p models.UserProfile) bool {
			return p.Available_For_Work
		}),
		Success_Rate: successRate,
	}, nil
}
