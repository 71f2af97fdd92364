package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CongregationConsole/models"
)

func newThread(t *testing.T, s *MemStore, sticky bool) models.Thread {
	t.Helper()
	thread, err := s.CreateThread(context.Background(), models.ThreadCreate{
		Forum_Category_ID: 1,
		Author_ID:         "1",
		Title:             "Hilo",
		Content:           "Contenido",
		Is_Sticky:         boolp(sticky),
	})
	require.NoError(t, err)
	return thread
}

func TestListThreadsStickyFirst(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()
	old := newThread(t, s, false)
	sticky := newThread(t, s, true)
	recent := newThread(t, s, false)

	// A reply makes the oldest thread the most recently active one.
	_, err := s.CreatePost(ctx, models.PostCreate{Thread_ID: old.Thread_ID, Author_ID: "2", Content: "hola"})
	require.NoError(t, err)

	threads, err := s.ListThreads(ctx, models.ThreadFilter{})
	require.NoError(t, err)
	ids := []int{}
	for _, th := range threads {
		ids = append(ids, th.Thread_ID)
	}
	assert.Equal(t, []int{sticky.Thread_ID, old.Thread_ID, recent.Thread_ID}, ids)
}

func TestCreatePostBumpsThread(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()
	thread := newThread(t, s, false)

	post, err := s.CreatePost(ctx, models.PostCreate{Thread_ID: thread.Thread_ID, Author_ID: "7", Content: "Amén"})
	require.NoError(t, err)

	got, _, _ := s.GetThread(ctx, thread.Thread_ID)
	assert.Equal(t, 1, got.Reply_Count)
	require.NotNil(t, got.Last_Reply_By)
	assert.Equal(t, "7", *got.Last_Reply_By)
	assert.Equal(t, post.Datetime_Create, *got.Last_Reply_At)

	_, err = s.CreatePost(ctx, models.PostCreate{Thread_ID: 99, Content: "x"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeletePostCascades(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()
	thread := newThread(t, s, false)
	parent, _ := s.CreatePost(ctx, models.PostCreate{Thread_ID: thread.Thread_ID, Author_ID: "1", Content: "p"})
	_, _ = s.CreatePost(ctx, models.PostCreate{Thread_ID: thread.Thread_ID, Author_ID: "2", Content: "c", Parent_ID: &parent.Post_ID})
	_, _ = s.CreatePost(ctx, models.PostCreate{Thread_ID: thread.Thread_ID, Author_ID: "3", Content: "other"})
	_, _ = s.CreateReaction(ctx, models.ReactionCreate{User_ID: "1", Post_ID: &parent.Post_ID})

	require.NoError(t, s.DeletePost(ctx, parent.Post_ID))

	posts, _ := s.ListPosts(ctx, thread.Thread_ID)
	require.Len(t, posts, 1)
	assert.Equal(t, "other", posts[0].Content)
	reactions, _ := s.ListReactions(ctx, models.ReactionFilter{Post_ID: parent.Post_ID})
	assert.Empty(t, reactions)
	got, _, _ := s.GetThread(ctx, thread.Thread_ID)
	assert.Equal(t, 1, got.Reply_Count)

	assert.NoError(t, s.DeletePost(ctx, parent.Post_ID))
}

func TestDeleteThreadCascades(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()
	thread := newThread(t, s, false)
	keep := newThread(t, s, false)
	_, _ = s.CreatePost(ctx, models.PostCreate{Thread_ID: thread.Thread_ID, Author_ID: "1", Content: "p"})
	_, _ = s.CreateReaction(ctx, models.ReactionCreate{User_ID: "1", Thread_ID: &thread.Thread_ID})
	_, _ = s.CreateBookmark(ctx, models.BookmarkCreate{User_ID: "1", Thread_ID: thread.Thread_ID})
	_, _ = s.CreateBookmark(ctx, models.BookmarkCreate{User_ID: "1", Thread_ID: keep.Thread_ID})

	require.NoError(t, s.DeleteThread(ctx, thread.Thread_ID))

	_, found, _ := s.GetThread(ctx, thread.Thread_ID)
	assert.False(t, found)
	posts, _ := s.ListPosts(ctx, thread.Thread_ID)
	assert.Empty(t, posts)
	reactions, _ := s.ListReactions(ctx, models.ReactionFilter{Thread_ID: thread.Thread_ID})
	assert.Empty(t, reactions)
	bookmarks, _ := s.ListBookmarks(ctx, "1")
	require.Len(t, bookmarks, 1)
	assert.Equal(t, keep.Thread_ID, bookmarks[0].Thread_ID)
}

func TestIncrementThreadViews(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()
	thread := newThread(t, s, false)

	got, err := s.IncrementThreadViews(ctx, thread.Thread_ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.View_Count)

	_, err = s.IncrementThreadViews(ctx, 404)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestForumCategoriesAndSubforums(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()
	second, _ := s.CreateForumCategory(ctx, models.ForumCategoryCreate{Name: "B", Icon: "i", Color: "c", Slug: "b", Position: intPtr(2)})
	first, _ := s.CreateForumCategory(ctx, models.ForumCategoryCreate{Name: "A", Icon: "i", Color: "c", Slug: "a", Position: intPtr(1)})
	assert.True(t, first.Is_Active)

	categories, _ := s.ListForumCategories(ctx)
	require.Len(t, categories, 2)
	assert.Equal(t, first.Forum_Category_ID, categories[0].Forum_Category_ID)

	updated, err := s.UpdateForumCategory(ctx, second.Forum_Category_ID, models.ForumCategoryUpdate{Position: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Position)
	_, err = s.UpdateForumCategory(ctx, 99, models.ForumCategoryUpdate{})
	assert.True(t, errors.Is(err, ErrNotFound))

	_, _ = s.CreateSubforum(ctx, models.SubforumCreate{Forum_Category_ID: first.Forum_Category_ID, Name: "s2", Position: intPtr(2)})
	_, _ = s.CreateSubforum(ctx, models.SubforumCreate{Forum_Category_ID: first.Forum_Category_ID, Name: "s1", Position: intPtr(1)})
	_, _ = s.CreateSubforum(ctx, models.SubforumCreate{Forum_Category_ID: second.Forum_Category_ID, Name: "other"})

	subforums, _ := s.ListSubforums(ctx, first.Forum_Category_ID)
	require.Len(t, subforums, 2)
	assert.Equal(t, "s1", subforums[0].Name)
	all, _ := s.ListSubforums(ctx, 0)
	assert.Len(t, all, 3)
}

func TestMessagesAndNotifications(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()
	sent, _ := s.CreatePrivateMessage(ctx, models.PrivateMessageCreate{From_User_ID: "1", To_User_ID: "2", Subject: "s", Content: "c"})
	_, _ = s.CreatePrivateMessage(ctx, models.PrivateMessageCreate{From_User_ID: "3", To_User_ID: "4", Subject: "s", Content: "c"})

	inbox, _ := s.ListPrivateMessages(ctx, "2")
	require.Len(t, inbox, 1)
	read, err := s.MarkMessageRead(ctx, sent.Private_Message_ID)
	require.NoError(t, err)
	assert.True(t, read.Is_Read)

	for i := 0; i < 3; i++ {
		_, _ = s.CreateForumNotification(ctx, models.ForumNotificationCreate{User_ID: "2", Type: "reply", Title: "t"})
	}
	_, _ = s.CreateForumNotification(ctx, models.ForumNotificationCreate{User_ID: "9", Type: "reply", Title: "t"})

	require.NoError(t, s.MarkAllNotificationsRead(ctx, "2"))
	notifications, _ := s.ListForumNotifications(ctx, "2")
	require.Len(t, notifications, 3)
	for _, n := range notifications {
		assert.True(t, n.Is_Read)
	}
	others, _ := s.ListForumNotifications(ctx, "9")
	assert.False(t, others[0].Is_Read)

	_, err = s.MarkNotificationRead(ctx, 404)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestReactionAndSubscriptionDefaults(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()

	reaction, _ := s.CreateReaction(ctx, models.ReactionCreate{User_ID: "1", Thread_ID: intPtr(1)})
	assert.Equal(t, models.DefaultReactionType, reaction.Type)

	subscription, _ := s.CreateSubscription(ctx, models.SubscriptionCreate{User_ID: "1", Thread_ID: intPtr(1)})
	assert.Equal(t, models.DefaultNotificationLevel, subscription.Notification_Level)

	require.NoError(t, s.DeleteSubscription(ctx, subscription.Subscription_ID))
	subscriptions, _ := s.ListSubscriptions(ctx, "1")
	assert.Empty(t, subscriptions)
}
