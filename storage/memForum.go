package storage

import (
	"context"
	"time"

	"github.com/CongregationConsole/models"
)

func byPosition[T any](pos func(T) int, id func(T) int) func(a, b T) bool {
	return func(a, b T) bool {
		if pos(a) != pos(b) {
			return pos(a) < pos(b)
		}
		return id(a) < id(b)
	}
}

var categoryOrder = byPosition(
	func(c models.ForumCategory) int { return c.Position },
	func(c models.ForumCategory) int { return c.Forum_Category_ID },
)

var subforumOrder = byPosition(
	func(s models.Subforum) int { return s.Position },
	func(s models.Subforum) int { return s.Subforum_ID },
)

func (s *MemStore) ListForumCategories(ctx context.Context) ([]models.ForumCategory, error) {
	return s.categories.list(nil, categoryOrder), nil
}

func (s *MemStore) GetForumCategory(ctx context.Context, id int) (models.ForumCategory, bool, error) {
	category, ok := s.categories.get(id)
	return category, ok, nil
}

func (s *MemStore) CreateForumCategory(ctx context.Context, body models.ForumCategoryCreate) (models.ForumCategory, error) {
	now := s.now()
	return s.categories.insert(func(id int) models.ForumCategory {
		return models.ForumCategory{
			Forum_Category_ID: id,
			Name:              body.Name,
			Description:       body.Description,
			Icon:              body.Icon,
			Color:             body.Color,
			Slug:              body.Slug,
			Position:          derefInt(body.Position),
			Schedule:          body.Schedule,
			Max_Participants:  body.Max_Participants,
			Is_Active:         body.Is_Active == nil || *body.Is_Active,
			Datetime_Create:   now,
		}
	}), nil
}

func (s *MemStore) UpdateForumCategory(ctx context.Context, id int, body models.ForumCategoryUpdate) (models.ForumCategory, error) {
	category, ok := s.categories.update(id, body.Apply)
	if !ok {
		return models.ForumCategory{}, notFound("forum category", id)
	}
	return category, nil
}

// ListSubforums returns the subforums of a category, or every subforum when
// categoryID is zero.
func (s *MemStore) ListSubforums(ctx context.Context, categoryID int) ([]models.Subforum, error) {
	var match func(models.Subforum) bool
	if categoryID != 0 {
		match = func(sf models.Subforum) bool { return sf.Forum_Category_ID == categoryID }
	}
	return s.subforums.list(match, subforumOrder), nil
}

func (s *MemStore) CreateSubforum(ctx context.Context, body models.SubforumCreate) (models.Subforum, error) {
	now := s.now()
	return s.subforums.insert(func(id int) models.Subforum {
		return models.Subforum{
			Subforum_ID:       id,
			Forum_Category_ID: body.Forum_Category_ID,
			Name:              body.Name,
			Description:       body.Description,
			Position:          derefInt(body.Position),
			Is_Active:         body.Is_Active == nil || *body.Is_Active,
			Datetime_Create:   now,
		}
	}), nil
}

// ListThreads returns sticky threads first, then by most recent activity.
func (s *MemStore) ListThreads(ctx context.Context, filter models.ThreadFilter) ([]models.Thread, error) {
	match := func(t models.Thread) bool {
		if filter.Forum_Category_ID != 0 && t.Forum_Category_ID != filter.Forum_Category_ID {
			return false
		}
		if filter.Subforum_ID != 0 && (t.Subforum_ID == nil || *t.Subforum_ID != filter.Subforum_ID) {
			return false
		}
		if filter.Author_ID != "" && t.Author_ID != filter.Author_ID {
			return false
		}
		return true
	}
	return s.threads.list(match, func(a, b models.Thread) bool {
		if a.Is_Sticky != b.Is_Sticky {
			return a.Is_Sticky
		}
		return newerFirst(lastActivity(a), lastActivity(b), a.Thread_ID, b.Thread_ID)
	}), nil
}

func (s *MemStore) GetThread(ctx context.Context, id int) (models.Thread, bool, error) {
	thread, ok := s.threads.get(id)
	return thread, ok, nil
}

func (s *MemStore) CreateThread(ctx context.Context, body models.ThreadCreate) (models.Thread, error) {
	now := s.now()
	return s.threads.insert(func(id int) models.Thread {
		return models.Thread{
			Thread_ID:         id,
			Forum_Category_ID: body.Forum_Category_ID,
			Subforum_ID:       body.Subforum_ID,
			Author_ID:         body.Author_ID,
			Title:             body.Title,
			Content:           body.Content,
			Is_Sticky:         body.Is_Sticky != nil && *body.Is_Sticky,
			Is_Locked:         body.Is_Locked != nil && *body.Is_Locked,
			Datetime_Create:   now,
			Datetime_Update:   now,
		}
	}), nil
}

func (s *MemStore) UpdateThread(ctx context.Context, id int, body models.ThreadUpdate) (models.Thread, error) {
	now := s.now()
	thread, ok := s.threads.update(id, func(t *models.Thread) {
		body.Apply(t)
		t.Datetime_Update = now
	})
	if !ok {
		return models.Thread{}, notFound("thread", id)
	}
	return thread, nil
}

// DeleteThread removes the thread with its posts, reactions and bookmarks.
func (s *MemStore) DeleteThread(ctx context.Context, id int) error {
	s.posts.removeWhere(func(p models.Post) bool { return p.Thread_ID == id })
	s.reactions.removeWhere(func(r models.Reaction) bool { return r.Thread_ID != nil && *r.Thread_ID == id })
	s.bookmarks.removeWhere(func(b models.Bookmark) bool { return b.Thread_ID == id })
	s.threads.remove(id)
	return nil
}

func (s *MemStore) IncrementThreadViews(ctx context.Context, id int) (models.Thread, error) {
	thread, ok := s.threads.update(id, func(t *models.Thread) { t.View_Count++ })
	if !ok {
		return models.Thread{}, notFound("thread", id)
	}
	return thread, nil
}

// ListPosts returns a thread's posts in conversation order.
func (s *MemStore) ListPosts(ctx context.Context, threadID int) ([]models.Post, error) {
	return s.posts.list(func(p models.Post) bool { return p.Thread_ID == threadID }, func(a, b models.Post) bool {
		return olderFirst(a.Datetime_Create, b.Datetime_Create, a.Post_ID, b.Post_ID)
	}), nil
}

// CreatePost adds a reply and bumps the thread's reply bookkeeping.
func (s *MemStore) CreatePost(ctx context.Context, body models.PostCreate) (models.Post, error) {
	if _, ok := s.threads.get(body.Thread_ID); !ok {
		return models.Post{}, notFound("thread", body.Thread_ID)
	}
	now := s.now()
	post := s.posts.insert(func(id int) models.Post {
		return models.Post{
			Post_ID:         id,
			Thread_ID:       body.Thread_ID,
			Author_ID:       body.Author_ID,
			Content:         body.Content,
			Parent_ID:       body.Parent_ID,
			Is_Moderated:    body.Is_Moderated != nil && *body.Is_Moderated,
			Datetime_Create: now,
			Datetime_Update: now,
		}
	})
	author := body.Author_ID
	s.threads.update(body.Thread_ID, func(t *models.Thread) {
		t.Reply_Count++
		t.Last_Reply_At = &now
		t.Last_Reply_By = &author
		t.Datetime_Update = now
	})
	return post, nil
}

func (s *MemStore) UpdatePost(ctx context.Context, id int, body models.PostUpdate) (models.Post, error) {
	now := s.now()
	post, ok := s.posts.update(id, func(p *models.Post) {
		body.Apply(p)
		p.Datetime_Update = now
	})
	if !ok {
		return models.Post{}, notFound("post", id)
	}
	return post, nil
}

// DeletePost removes a post, its direct replies and its reactions, and
// lowers the thread's reply count by the number of posts removed.
func (s *MemStore) DeletePost(ctx context.Context, id int) error {
	post, ok := s.posts.get(id)
	if !ok {
		return nil
	}
	removed := s.posts.removeWhere(func(p models.Post) bool { return p.Parent_ID != nil && *p.Parent_ID == id })
	s.reactions.removeWhere(func(r models.Reaction) bool { return r.Post_ID != nil && *r.Post_ID == id })
	if s.posts.remove(id) {
		removed++
	}
	s.threads.update(post.Thread_ID, func(t *models.Thread) {
		t.Reply_Count -= removed
		if t.Reply_Count < 0 {
			t.Reply_Count = 0
		}
	})
	return nil
}

func (s *MemStore) ListReactions(ctx context.Context, filter models.ReactionFilter) ([]models.Reaction, error) {
	match := func(r models.Reaction) bool {
		if filter.Post_ID != 0 && (r.Post_ID == nil || *r.Post_ID != filter.Post_ID) {
			return false
		}
		if filter.Thread_ID != 0 && (r.Thread_ID == nil || *r.Thread_ID != filter.Thread_ID) {
			return false
		}
		return true
	}
	return s.reactions.list(match, func(a, b models.Reaction) bool { return a.Reaction_ID < b.Reaction_ID }), nil
}

func (s *MemStore) CreateReaction(ctx context.Context, body models.ReactionCreate) (models.Reaction, error) {
	now := s.now()
	reactionType := models.DefaultReactionType
	if body.Type != nil {
		reactionType = *body.Type
	}
	return s.reactions.insert(func(id int) models.Reaction {
		return models.Reaction{
			Reaction_ID:     id,
			User_ID:         body.User_ID,
			Post_ID:         body.Post_ID,
			Thread_ID:       body.Thread_ID,
			Type:            reactionType,
			Datetime_Create: now,
		}
	}), nil
}

func (s *MemStore) DeleteReaction(ctx context.Context, id int) error {
	s.reactions.remove(id)
	return nil
}

func (s *MemStore) ListBookmarks(ctx context.Context, userID string) ([]models.Bookmark, error) {
	return s.bookmarks.list(func(b models.Bookmark) bool { return b.User_ID == userID }, func(a, b models.Bookmark) bool {
		return newerFirst(a.Datetime_Create, b.Datetime_Create, a.Bookmark_ID, b.Bookmark_ID)
	}), nil
}

func (s *MemStore) CreateBookmark(ctx context.Context, body models.BookmarkCreate) (models.Bookmark, error) {
	now := s.now()
	return s.bookmarks.insert(func(id int) models.Bookmark {
		return models.Bookmark{
			Bookmark_ID:     id,
			User_ID:         body.User_ID,
			Thread_ID:       body.Thread_ID,
			Datetime_Create: now,
		}
	}), nil
}

func (s *MemStore) DeleteBookmark(ctx context.Context, id int) error {
	s.bookmarks.remove(id)
	return nil
}

func (s *MemStore) ListSubscriptions(ctx context.Context, userID string) ([]models.Subscription, error) {
	return s.subscriptions.list(func(sub models.Subscription) bool { return sub.User_ID == userID }, func(a, b models.Subscription) bool {
		return a.Subscription_ID < b.Subscription_ID
	}), nil
}

func (s *MemStore) CreateSubscription(ctx context.Context, body models.SubscriptionCreate) (models.Subscription, error) {
	now := s.now()
	level := models.DefaultNotificationLevel
	if body.Notification_Level != nil {
		level = *body.Notification_Level
	}
	return s.subscriptions.insert(func(id int) models.Subscription {
		return models.Subscription{
			Subscription_ID:    id,
			User_ID:            body.User_ID,
			Forum_Category_ID:  body.Forum_Category_ID,
			Subforum_ID:        body.Subforum_ID,
			Thread_ID:          body.Thread_ID,
			Notification_Level: level,
			Datetime_Create:    now,
		}
	}), nil
}

func (s *MemStore) DeleteSubscription(ctx context.Context, id int) error {
	s.subscriptions.remove(id)
	return nil
}

// ListPrivateMessages returns the messages a user sent or received, newest first.
func (s *MemStore) ListPrivateMessages(ctx context.Context, userID string) ([]models.PrivateMessage, error) {
	match := func(m models.PrivateMessage) bool { return m.From_User_ID == userID || m.To_User_ID == userID }
	return s.messages.list(match, func(a, b models.PrivateMessage) bool {
		return newerFirst(a.Datetime_Create, b.Datetime_Create, a.Private_Message_ID, b.Private_Message_ID)
	}), nil
}

func (s *MemStore) CreatePrivateMessage(ctx context.Context, body models.PrivateMessageCreate) (models.PrivateMessage, error) {
	now := s.now()
	return s.messages.insert(func(id int) models.PrivateMessage {
		return models.PrivateMessage{
			Private_Message_ID: id,
			From_User_ID:       body.From_User_ID,
			To_User_ID:         body.To_User_ID,
			Subject:            body.Subject,
			Content:            body.Content,
			Datetime_Create:    now,
		}
	}), nil
}

func (s *MemStore) MarkMessageRead(ctx context.Context, id int) (models.PrivateMessage, error) {
	message, ok := s.messages.update(id, func(m *models.PrivateMessage) { m.Is_Read = true })
	if !ok {
		return models.PrivateMessage{}, notFound("private message", id)
	}
	return message, nil
}

func (s *MemStore) ListForumNotifications(ctx context.Context, userID string) ([]models.ForumNotification, error) {
	return s.notifications.list(func(n models.ForumNotification) bool { return n.User_ID == userID }, func(a, b models.ForumNotification) bool {
		return newerFirst(a.Datetime_Create, b.Datetime_Create, a.Forum_Notification_ID, b.Forum_Notification_ID)
	}), nil
}

func (s *MemStore) CreateForumNotification(ctx context.Context, body models.ForumNotificationCreate) (models.ForumNotification, error) {
	now := s.now()
	return s.notifications.insert(func(id int) models.ForumNotification {
		return models.ForumNotification{
			Forum_Notification_ID: id,
			User_ID:               body.User_ID,
			Type:                  body.Type,
			Title:                 body.Title,
			Content:               body.Content,
			Related_ID:            body.Related_ID,
			Related_Type:          body.Related_Type,
			Datetime_Create:       now,
		}
	}), nil
}

func (s *MemStore) MarkNotificationRead(ctx context.Context, id int) (models.ForumNotification, error) {
	notification, ok := s.notifications.update(id, func(n *models.ForumNotification) { n.Is_Read = true })
	if !ok {
		return models.ForumNotification{}, notFound("notification", id)
	}
	return notification, nil
}

func (s *MemStore) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	s.notifications.updateWhere(
		func(n models.ForumNotification) bool { return n.User_ID == userID && !n.Is_Read },
		func(n *models.ForumNotification) { n.Is_Read = true },
	)
	return nil
}

func lastActivity(t models.Thread) time.Time {
	if t.Last_Reply_At != nil {
		return *t.Last_Reply_At
	}
	return t.Datetime_Create
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
