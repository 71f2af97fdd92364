package main

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/CongregationConsole/controllers"
	"github.com/CongregationConsole/initializers"
	"github.com/CongregationConsole/middlewares"
)

func init() {
	initializers.LoadEnv()
	initializers.InitLogger(initializers.Cfg)
	gin.SetMode(initializers.Cfg.GinMode)
	initializers.InitStorage(initializers.Cfg)
}

func main() {
	cfg := initializers.Cfg

	router := gin.New()
	router.Use(gin.Recovery(), middlewares.Metrics())

	router.GET("/ping", middlewares.RateLimitMiddleware(2, 2, middlewares.ClientKey), controllers.Ping)
	router.GET("/metrics", middlewares.MetricsHandler())

	api := router.Group("/api")
	api.Use(middlewares.RateLimitMiddleware(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst, middlewares.ClientKey))
	{
		api.POST("/login", controllers.UserLogin)
		api.GET("/users", controllers.GetUsers)
		api.GET("/users/:id", controllers.GetUser)
		api.POST("/users", controllers.CreateUser)

		// programs
		api.GET("/programas", controllers.GetPrograms)
		api.POST("/programas", controllers.CreateProgram)
		api.GET("/programas/slug/:slug", controllers.GetProgramBySlug)
		api.GET("/programas/:id", controllers.GetProgram)
		api.PUT("/programas/:id", controllers.UpdateProgram)
		api.DELETE("/programas/:id", controllers.DeleteProgram)
		api.PATCH("/programas/:id/toggle-publicado", controllers.ToggleProgramPublished)
		api.GET("/programas/:id/dias", controllers.GetProgramDays)
		api.POST("/programas/:id/dias", controllers.CreateProgramDay)
		api.GET("/dias/:id", controllers.GetProgramDay)
		api.PUT("/dias/:id", controllers.UpdateProgramDay)
		api.DELETE("/dias/:id", controllers.DeleteProgramDay)

		// prayer requests
		api.GET("/oraciones", controllers.GetPrayerRequests)
		api.POST("/oraciones", controllers.CreatePrayerRequest)
		api.GET("/oraciones/:id", controllers.GetPrayerRequest)
		api.PUT("/oraciones/:id", controllers.UpdatePrayerRequest)
		api.DELETE("/oraciones/:id", controllers.DeletePrayerRequest)
		api.POST("/oraciones/:id/orar", controllers.PrayForRequest)

		// forum
		api.GET("/forum/categories", controllers.GetForumCategories)
		api.POST("/forum/categories", controllers.CreateForumCategory)
		api.PUT("/forum/categories/:id", controllers.UpdateForumCategory)
		api.GET("/forum/subforums", controllers.GetSubforums)
		api.POST("/forum/subforums", controllers.CreateSubforum)
		api.GET("/forum/threads", controllers.GetThreads)
		api.POST("/forum/threads", controllers.CreateThread)
		api.GET("/forum/threads/:id", controllers.GetThread)
		api.PUT("/forum/threads/:id", controllers.UpdateThread)
		api.DELETE("/forum/threads/:id", controllers.DeleteThread)
		api.GET("/forum/threads/:id/posts", controllers.GetThreadPosts)
		api.POST("/forum/threads/:id/posts", controllers.CreatePost)
		api.PUT("/forum/posts/:id", controllers.UpdatePost)
		api.DELETE("/forum/posts/:id", controllers.DeletePost)
		api.GET("/forum/reactions", controllers.GetReactions)
		api.POST("/forum/reactions", controllers.CreateReaction)
		api.DELETE("/forum/reactions/:id", controllers.DeleteReaction)
		api.GET("/forum/users/:userId/bookmarks", controllers.GetBookmarks)
		api.POST("/forum/bookmarks", controllers.CreateBookmark)
		api.DELETE("/forum/bookmarks/:id", controllers.DeleteBookmark)
		api.GET("/forum/users/:userId/subscriptions", controllers.GetSubscriptions)
		api.POST("/forum/subscriptions", controllers.CreateSubscription)
		api.DELETE("/forum/subscriptions/:id", controllers.DeleteSubscription)
		api.GET("/forum/users/:userId/messages", controllers.GetPrivateMessages)
		api.POST("/forum/messages", controllers.CreatePrivateMessage)
		api.PATCH("/forum/messages/:id/read", controllers.MarkMessageRead)
		api.GET("/forum/users/:userId/notifications", controllers.GetForumNotifications)
		api.POST("/forum/notifications", controllers.CreateForumNotification)
		api.PATCH("/forum/notifications/:id/read", controllers.MarkNotificationRead)
		api.PATCH("/forum/users/:userId/notifications/read", controllers.MarkAllNotificationsRead)

		// job board
		api.GET("/professional-areas", controllers.GetProfessionalAreas)
		api.GET("/jobs", controllers.GetJobs)
		api.GET("/user-profiles", controllers.GetUserProfiles)
		api.POST("/user-profiles", controllers.CreateUserProfile)
		api.POST("/job-applications", controllers.CreateJobApplication)

		// dashboard
		api.GET("/dashboard/stats", controllers.GetDashboardStats)
		api.GET("/products", controllers.GetProducts)
		api.GET("/products/top-selling", controllers.GetTopSellingProducts)
		api.GET("/orders", controllers.GetOrders)
		api.GET("/orders/recent", controllers.GetRecentOrders)
		api.GET("/activities/recent", controllers.GetRecentActivities)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/professional-areas", controllers.CreateProfessionalArea)
		admin.GET("/jobs", controllers.GetAdminJobs)
		admin.POST("/jobs", controllers.CreateJob)
		admin.PATCH("/jobs/:id/toggle-status", controllers.ToggleJobStatus)
		admin.DELETE("/jobs/:id", controllers.DeleteJob)
		admin.GET("/job-applications", controllers.GetJobApplications)
		admin.PUT("/job-applications/:id/review", controllers.ReviewJobApplication)
		admin.GET("/job-stats", controllers.GetJobStats)
	}

	addr := ":" + cfg.Port
	initializers.Log.WithField("addr", addr).Info("starting congregation console")
	if err := router.Run(addr); err != nil {
		initializers.Log.WithError(err).Fatal("server stopped")
	}
}
