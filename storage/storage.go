// Package storage is the persistence layer of the admin console. Storage is
// the single contract the route layer uses; it is satisfied by a Router that
// composes one implementation per entity family. Every family has an
// in-memory implementation, and programs, program days and prayer requests
// also have PostgreSQL-backed ones.
//
// Reads never fail on a miss: lists return an empty slice and getters report
// found == false. Mutations against a missing identity return ErrNotFound.
// Failures of the backing medium are reported as *BackendError.
package storage

import (
	"context"

	"github.com/CongregationConsole/models"
)

// UserStore persists console users.
type UserStore interface {
	GetUser(ctx context.Context, id int) (models.User, bool, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, bool, error)
	CreateUser(ctx context.Context, body models.UserCreate) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// DashboardStore serves the read-only dashboard widgets.
type DashboardStore interface {
	TopSellingProducts(ctx context.Context) ([]models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	RecentOrders(ctx context.Context) ([]models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	RecentActivities(ctx context.Context) ([]models.Activity, error)
	DashboardStats(ctx context.Context) (models.DashboardStats, error)
}

// JobBoardStore persists the job board: areas, offers, applicant profiles
// and applications.
type JobBoardStore interface {
	ListProfessionalAreas(ctx context.Context) ([]models.ProfessionalArea, error)
	CreateProfessionalArea(ctx context.Context, body models.ProfessionalAreaCreate) (models.ProfessionalArea, error)

	ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error)
	CreateJob(ctx context.Context, body models.JobCreate) (models.Job, error)
	ToggleJobStatus(ctx context.Context, id int) (models.Job, error)
	DeleteJob(ctx context.Context, id int) error

	ListUserProfiles(ctx context.Context, filter models.UserProfileFilter) ([]models.UserProfile, error)
	CreateUserProfile(ctx context.Context, body models.UserProfileCreate) (models.UserProfile, error)

	ListJobApplications(ctx context.Context) ([]models.JobApplication, error)
	ListJobApplicationDetails(ctx context.Context) ([]models.JobApplicationDetail, error)
	CreateJobApplication(ctx context.Context, body models.JobApplicationCreate) (models.JobApplication, error)
	ReviewJobApplication(ctx context.Context, id int, review models.JobApplicationReview) (models.JobApplication, error)

	JobSystemStats(ctx context.Context) (models.JobSystemStats, error)
}

// ForumStore persists the community forum.
type ForumStore interface {
	ListForumCategories(ctx context.Context) ([]models.ForumCategory, error)
	GetForumCategory(ctx context.Context, id int) (models.ForumCategory, bool, error)
	CreateForumCategory(ctx context.Context, body models.ForumCategoryCreate) (models.ForumCategory, error)
	UpdateForumCategory(ctx context.Context, id int, body models.ForumCategoryUpdate) (models.ForumCategory, error)

	ListSubforums(ctx context.Context, categoryID int) ([]models.Subforum, error)
	CreateSubforum(ctx context.Context, body models.SubforumCreate) (models.Subforum, error)

	ListThreads(ctx context.Context, filter models.ThreadFilter) ([]models.Thread, error)
	GetThread(ctx context.Context, id int) (models.Thread, bool, error)
	CreateThread(ctx context.Context, body models.ThreadCreate) (models.Thread, error)
	UpdateThread(ctx context.Context, id int, body models.ThreadUpdate) (models.Thread, error)
	DeleteThread(ctx context.Context, id int) error
	IncrementThreadViews(ctx context.Context, id int) (models.Thread, error)

	ListPosts(ctx context.Context, threadID int) ([]models.Post, error)
	CreatePost(ctx context.Context, body models.PostCreate) (models.Post, error)
	UpdatePost(ctx context.Context, id int, body models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, id int) error

	ListReactions(ctx context.Context, filter models.ReactionFilter) ([]models.Reaction, error)
	CreateReaction(ctx context.Context, body models.ReactionCreate) (models.Reaction, error)
	DeleteReaction(ctx context.Context, id int) error

	ListBookmarks(ctx context.Context, userID string) ([]models.Bookmark, error)
	CreateBookmark(ctx context.Context, body models.BookmarkCreate) (models.Bookmark, error)
	DeleteBookmark(ctx context.Context, id int) error

	ListSubscriptions(ctx context.Context, userID string) ([]models.Subscription, error)
	CreateSubscription(ctx context.Context, body models.SubscriptionCreate) (models.Subscription, error)
	DeleteSubscription(ctx context.Context, id int) error

	ListPrivateMessages(ctx context.Context, userID string) ([]models.PrivateMessage, error)
	CreatePrivateMessage(ctx context.Context, body models.PrivateMessageCreate) (models.PrivateMessage, error)
	MarkMessageRead(ctx context.Context, id int) (models.PrivateMessage, error)

	ListForumNotifications(ctx context.Context, userID string) ([]models.ForumNotification, error)
	CreateForumNotification(ctx context.Context, body models.ForumNotificationCreate) (models.ForumNotification, error)
	MarkNotificationRead(ctx context.Context, id int) (models.ForumNotification, error)
	MarkAllNotificationsRead(ctx context.Context, userID string) error
}

// ProgramStore persists programs. Lists are ordered by creation time.
type ProgramStore interface {
	ListPrograms(ctx context.Context, filter models.ProgramFilter) ([]models.Program, error)
	ListProgramsWithDays(ctx context.Context, filter models.ProgramFilter) ([]models.ProgramWithDays, error)
	GetProgram(ctx context.Context, id int) (models.Program, bool, error)
	GetProgramBySlug(ctx context.Context, slug string) (models.Program, bool, error)
	CreateProgram(ctx context.Context, body models.ProgramCreate) (models.Program, error)
	UpdateProgram(ctx context.Context, id int, body models.ProgramUpdate) (models.Program, error)
	// DeleteProgram removes the program and every day that references it.
	DeleteProgram(ctx context.Context, id int) error
	// ToggleProgramPublished reads the current flag and writes its negation.
	// Two concurrent toggles may collapse into one.
	ToggleProgramPublished(ctx context.Context, id int) (models.Program, error)
}

// ProgramDayStore persists program days. Creating or deleting a day recounts
// the owning program's Total_Days.
type ProgramDayStore interface {
	ListProgramDays(ctx context.Context, programID int) ([]models.ProgramDay, error)
	GetProgramDay(ctx context.Context, id int) (models.ProgramDay, bool, error)
	CreateProgramDay(ctx context.Context, body models.ProgramDayCreate) (models.ProgramDay, error)
	UpdateProgramDay(ctx context.Context, id int, body models.ProgramDayUpdate) (models.ProgramDay, error)
	DeleteProgramDay(ctx context.Context, id int) error
}

// PrayerRequestStore persists prayer requests. Lists are newest first.
type PrayerRequestStore interface {
	ListPrayerRequests(ctx context.Context, filter models.PrayerRequestFilter) ([]models.PrayerRequest, error)
	GetPrayerRequest(ctx context.Context, id int) (models.PrayerRequest, bool, error)
	CreatePrayerRequest(ctx context.Context, body models.PrayerRequestCreate) (models.PrayerRequest, error)
	UpdatePrayerRequest(ctx context.Context, id int, body models.PrayerRequestUpdate) (models.PrayerRequest, error)
	DeletePrayerRequest(ctx context.Context, id int) error
	// IncrementPrayerCount adds exactly one to Prayer_Count atomically.
	IncrementPrayerCount(ctx context.Context, id int) (models.PrayerRequest, error)
}

// Storage is every operation the route layer may perform on persisted state.
type Storage interface {
	UserStore
	DashboardStore
	JobBoardStore
	ForumStore
	ProgramStore
	ProgramDayStore
	PrayerRequestStore
}
