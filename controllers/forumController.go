package controllers

import (
	"net/http"

	"github.com/CongregationConsole/initializers"
	"github.com/CongregationConsole/models"
	"github.com/gin-gonic/gin"
)

func GetForumCategories(c *gin.Context) {
	categories, err := initializers.Store.ListForumCategories(c.Request.Context())
	if err != nil {
		storeError(c, "fetch forum categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func CreateForumCategory(c *gin.Context) {
	var body models.ForumCategoryCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := initializers.Store.CreateForumCategory(c.Request.Context(), body)
	if err != nil {
		storeError(c, "create forum category", err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func UpdateForumCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var body models.ForumCategoryUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := initializers.Store.UpdateForumCategory(c.Request.Context(), id, body)
	if err != nil {
		storeError(c, "update forum category", err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// GetSubforums lists the subforums of ?categoryId, or all when absent.
func GetSubforums(c *gin.Context) {
	subforums, err := initializers.Store.ListSubforums(c.Request.Context(), queryInt(c, "categoryId"))
	if err != nil {
		storeError(c, "fetch subforums", err)
		return
	}
	c.JSON(http.StatusOK, subforums)
}

func CreateSubforum(c *gin.Context) {
	var body models.SubforumCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subforum, err := initializers.Store.CreateSubforum(c.Request.Context(), body)
	if err != nil {
		storeError(c, "create subforum", err)
		return
	}
	c.JSON(http.StatusCreated, subforum)
}

func GetThreads(c *gin.Context) {
	filter := models.ThreadFilter{
		Forum_Category_ID: queryInt(c, "categoryId"),
		Subforum_ID:       queryInt(c, "subforumId"),
		Author_ID:         c.Query("authorId"),
	}

	threads, err := initializers.Store.ListThreads(c.Request.Context(), filter)
	if err != nil {
		storeError(c, "fetch threads", err)
		return
	}
	c.JSON(http.StatusOK, threads)
}

// GetThread returns a thread and counts the visit.
func GetThread(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	thread, err := initializers.Store.IncrementThreadViews(c.Request.Context(), id)
	if err != nil {
		storeError(c, "fetch thread", err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

func CreateThread(c *gin.Context) {
	var body models.ThreadCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	thread, err := initializers.Store.CreateThread(c.Request.Context(), body)
	if err != nil {
		storeError(c, "create thread", err)
		return
	}
	c.JSON(http.StatusCreated, thread)
}

func UpdateThread(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var body models.ThreadUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	thread, err := initializers.Store.UpdateThread(c.Request.Context(), id, body)
	if err != nil {
		storeError(c, "update thread", err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

func DeleteThread(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := initializers.Store.DeleteThread(c.Request.Context(), id); err != nil {
		storeError(c, "delete thread", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Thread deleted successfully"})
}

func GetThreadPosts(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	posts, err := initializers.Store.ListPosts(c.Request.Context(), id)
	if err != nil {
		storeError(c, "fetch posts", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreatePost replies to the thread in the path.
func CreatePost(c *gin.Context) {
	threadID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var body models.PostCreate
	body.Thread_ID = threadID
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body.Thread_ID = threadID

	post, err := initializers.Store.CreatePost(c.Request.Context(), body)
	if err != nil {
		storeError(c, "create post", err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func UpdatePost(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var body models.PostUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := initializers.Store.UpdatePost(c.Request.Context(), id, body)
	if err != nil {
		storeError(c, "update post", err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func DeletePost(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := initializers.Store.DeletePost(c.Request.Context(), id); err != nil {
		storeError(c, "delete post", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func GetReactions(c *gin.Context) {
	filter := models.ReactionFilter{
		Post_ID:   queryInt(c, "postId"),
		Thread_ID: queryInt(c, "threadId"),
	}

	reactions, err := initializers.Store.ListReactions(c.Request.Context(), filter)
	if err != nil {
		storeError(c, "fetch reactions", err)
		return
	}
	c.JSON(http.StatusOK, reactions)
}

func CreateReaction(c *gin.Context) {
	var body models.ReactionCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Post_ID == nil && body.Thread_ID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "postId or threadId is required"})
		return
	}

	reaction, err := initializers.Store.CreateReaction(c.Request.Context(), body)
	if err != nil {
		storeError(c, "create reaction", err)
		return
	}
	c.JSON(http.StatusCreated, reaction)
}

func DeleteReaction(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := initializers.Store.DeleteReaction(c.Request.Context(), id); err != nil {
		storeError(c, "delete reaction", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reaction deleted successfully"})
}

func GetBookmarks(c *gin.Context) {
	bookmarks, err := initializers.Store.ListBookmarks(c.Request.Context(), c.Param("userId"))
	if err != nil {
		storeError(c, "fetch bookmarks", err)
		return
	}
	c.JSON(http.StatusOK, bookmarks)
}

func CreateBookmark(c *gin.Context) {
	var body models.BookmarkCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bookmark, err := initializers.Store.CreateBookmark(c.Request.Context(), body)
	if err != nil {
		storeError(c, "create bookmark", err)
		return
	}
	c.JSON(http.StatusCreated, bookmark)
}

func DeleteBookmark(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := initializers.Store.DeleteBookmark(c.Request.Context(), id); err != nil {
		storeError(c, "delete bookmark", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bookmark deleted successfully"})
}

func GetSubscriptions(c *gin.Context) {
	subscriptions, err := initializers.Store.ListSubscriptions(c.Request.Context(), c.Param("userId"))
	if err != nil {
		storeError(c, "fetch subscriptions", err)
		return
	}
	c.JSON(http.StatusOK, subscriptions)
}

func CreateSubscription(c *gin.Context) {
	var body models.SubscriptionCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subscription, err := initializers.Store.CreateSubscription(c.Request.Context(), body)
	if err != nil {
		storeError(c, "create subscription", err)
		return
	}
	c.JSON(http.StatusCreated, subscription)
}

func DeleteSubscription(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := initializers.Store.DeleteSubscription(c.Request.Context(), id); err != nil {
		storeError(c, "delete subscription", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription deleted successfully"})
}

func GetPrivateMessages(c *gin.Context) {
	messages, err := initializers.Store.ListPrivateMessages(c.Request.Context(), c.Param("userId"))
	if err != nil {
		storeError(c, "fetch messages", err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func CreatePrivateMessage(c *gin.Context) {
	var body models.PrivateMessageCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := initializers.Store.CreatePrivateMessage(c.Request.Context(), body)
	if err != nil {
		storeError(c, "send message", err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func MarkMessageRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	message, err := initializers.Store.MarkMessageRead(c.Request.Context(), id)
	if err != nil {
		storeError(c, "mark message read", err)
		return
	}
	c.JSON(http.StatusOK, message)
}

func GetForumNotifications(c *gin.Context) {
	notifications, err := initializers.Store.ListForumNotifications(c.Request.Context(), c.Param("userId"))
	if err != nil {
		storeError(c, "fetch notifications", err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func CreateForumNotification(c *gin.Context) {
	var body models.ForumNotificationCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notification, err := initializers.Store.CreateForumNotification(c.Request.Context(), body)
	if err != nil {
		storeError(c, "create notification", err)
		return
	}
	c.JSON(http.StatusCreated, notification)
}

func MarkNotificationRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	notification, err := initializers.Store.MarkNotificationRead(c.Request.Context(), id)
	if err != nil {
		storeError(c, "mark notification read", err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

func MarkAllNotificationsRead(c *gin.Context) {
	if err := initializers.Store.MarkAllNotificationsRead(c.Request.Context(), c.Param("userId")); err != nil {
		storeError(c, "mark notifications read", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notifications marked as read"})
}
