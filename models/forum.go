package models

import "time"

const (
	DefaultReactionType      = "like"
	DefaultNotificationLevel = "all"
)

type ForumCategory struct {
	Forum_Category_ID int       `json:"id"`
	Name              string    `json:"name"`
	Description       *string   `json:"description"`
	Icon              string    `json:"icon"`
	Color             string    `json:"color"`
	Slug              string    `json:"slug"`
	Position          int       `json:"position"`
	Schedule          *string   `json:"schedule"`
	Max_Participants  *int      `json:"maxParticipants"`
	Is_Active         bool      `json:"isActive"`
	Datetime_Create   time.Time `json:"createdAt"`
}

type ForumCategoryCreate struct {
	Name             string  `json:"name" binding:"required"`
	Description      *string `json:"description"`
	Icon             string  `json:"icon" binding:"required"`
	Color            string  `json:"color" binding:"required"`
	Slug             string  `json:"slug" binding:"required"`
	Position         *int    `json:"position"`
	Schedule         *string `json:"schedule"`
	Max_Participants *int    `json:"maxParticipants"`
	Is_Active        *bool   `json:"isActive"`
}

type ForumCategoryUpdate struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	Icon             *string `json:"icon"`
	Color            *string `json:"color"`
	Slug             *string `json:"slug"`
	Position         *int    `json:"position"`
	Schedule         *string `json:"schedule"`
	Max_Participants *int    `json:"maxParticipants"`
	Is_Active        *bool   `json:"isActive"`
}

func (u ForumCategoryUpdate) Apply(c *ForumCategory) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Description != nil {
		c.Description = u.Description
	}
	if u.Icon != nil {
		c.Icon = *u.Icon
	}
	if u.Color != nil {
		c.Color = *u.Color
	}
	if u.Slug != nil {
		c.Slug = *u.Slug
	}
	if u.Position != nil {
		c.Position = *u.Position
	}
	if u.Schedule != nil {
		c.Schedule = u.Schedule
	}
	if u.Max_Participants != nil {
		c.Max_Participants = u.Max_Participants
	}
	if u.Is_Active != nil {
		c.Is_Active = *u.Is_Active
	}
}

type Subforum struct {
	Subforum_ID       int       `json:"id"`
	Forum_Category_ID int       `json:"categoryId"`
	Name              string    `json:"name"`
	Description       *string   `json:"description"`
	Position          int       `json:"position"`
	Is_Active         bool      `json:"isActive"`
	Datetime_Create   time.Time `json:"createdAt"`
}

type SubforumCreate struct {
	Forum_Category_ID int     `json:"categoryId" binding:"required"`
	Name              string  `json:"name" binding:"required"`
	Description       *string `json:"description"`
	Position          *int    `json:"position"`
	Is_Active         *bool   `json:"isActive"`
}

// Thread.Reply_Count and Last_Reply_* are maintained by the post operations.
type Thread struct {
	Thread_ID         int        `json:"id"`
	Forum_Category_ID int        `json:"categoryId"`
	Subforum_ID       *int       `json:"subforumId"`
	Author_ID         string     `json:"authorId"`
	Title             string     `json:"title"`
	Content           string     `json:"content"`
	Is_Sticky         bool       `json:"isSticky"`
	Is_Locked         bool       `json:"isLocked"`
	View_Count        int        `json:"viewCount"`
	Reply_Count       int        `json:"replyCount"`
	Last_Reply_At     *time.Time `json:"lastReplyAt"`
	Last_Reply_By     *string    `json:"lastReplyBy"`
	Datetime_Create   time.Time  `json:"createdAt"`
	Datetime_Update   time.Time  `json:"updatedAt"`
}

type ThreadCreate struct {
	Forum_Category_ID int    `json:"categoryId" binding:"required"`
	Subforum_ID       *int   `json:"subforumId"`
	Author_ID         string `json:"authorId" binding:"required"`
	Title             string `json:"title" binding:"required"`
	Content           string `json:"content" binding:"required"`
	Is_Sticky         *bool  `json:"isSticky"`
	Is_Locked         *bool  `json:"isLocked"`
}

type ThreadUpdate struct {
	Forum_Category_ID *int    `json:"categoryId"`
	Subforum_ID       *int    `json:"subforumId"`
	Title             *string `json:"title"`
	Content           *string `json:"content"`
	Is_Sticky         *bool   `json:"isSticky"`
	Is_Locked         *bool   `json:"isLocked"`
}

func (u ThreadUpdate) Apply(t *Thread) {
	if u.Forum_Category_ID != nil {
		t.Forum_Category_ID = *u.Forum_Category_ID
	}
	if u.Subforum_ID != nil {
		t.Subforum_ID = u.Subforum_ID
	}
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Content != nil {
		t.Content = *u.Content
	}
	if u.Is_Sticky != nil {
		t.Is_Sticky = *u.Is_Sticky
	}
	if u.Is_Locked != nil {
		t.Is_Locked = *u.Is_Locked
	}
}

type ThreadFilter struct {
	Forum_Category_ID int
	Subforum_ID       int
	Author_ID         string
}

type Post struct {
	Post_ID         int       `json:"id"`
	Thread_ID       int       `json:"threadId"`
	Author_ID       string    `json:"authorId"`
	Content         string    `json:"content"`
	Parent_ID       *int      `json:"parentId"`
	Is_Moderated    bool      `json:"isModerated"`
	Datetime_Create time.Time `json:"createdAt"`
	Datetime_Update time.Time `json:"updatedAt"`
}

type PostCreate struct {
	Thread_ID    int    `json:"threadId" binding:"required"`
	Author_ID    string `json:"authorId"`
	Content      string `json:"content" binding:"required"`
	Parent_ID    *int   `json:"parentId"`
	Is_Moderated *bool  `json:"isModerated"`
}

type PostUpdate struct {
	Content      *string `json:"content"`
	Is_Moderated *bool   `json:"isModerated"`
}

func (u PostUpdate) Apply(p *Post) {
	if u.Content != nil {
		p.Content = *u.Content
	}
	if u.Is_Moderated != nil {
		p.Is_Moderated = *u.Is_Moderated
	}
}

type Reaction struct {
	Reaction_ID     int       `json:"id"`
	User_ID         string    `json:"userId"`
	Post_ID         *int      `json:"postId"`
	Thread_ID       *int      `json:"threadId"`
	Type            string    `json:"type"`
	Datetime_Create time.Time `json:"createdAt"`
}

type ReactionCreate struct {
	User_ID   string  `json:"userId" binding:"required"`
	Post_ID   *int    `json:"postId"`
	Thread_ID *int    `json:"threadId"`
	Type      *string `json:"type"`
}

type ReactionFilter struct {
	Post_ID   int
	Thread_ID int
}

type Bookmark struct {
	Bookmark_ID     int       `json:"id"`
	User_ID         string    `json:"userId"`
	Thread_ID       int       `json:"threadId"`
	Datetime_Create time.Time `json:"createdAt"`
}

type BookmarkCreate struct {
	User_ID   string `json:"userId" binding:"required"`
	Thread_ID int    `json:"threadId" binding:"required"`
}

type Subscription struct {
	Subscription_ID    int       `json:"id"`
	User_ID            string    `json:"userId"`
	Forum_Category_ID  *int      `json:"categoryId"`
	Subforum_ID        *int      `json:"subforumId"`
	Thread_ID          *int      `json:"threadId"`
	Notification_Level string    `json:"notificationLevel"`
	Datetime_Create    time.Time `json:"createdAt"`
}

type SubscriptionCreate struct {
	User_ID            string  `json:"userId" binding:"required"`
	Forum_Category_ID  *int    `json:"categoryId"`
	Subforum_ID        *int    `json:"subforumId"`
	Thread_ID          *int    `json:"threadId"`
	Notification_Level *string `json:"notificationLevel"`
}

type PrivateMessage struct {
	Private_Message_ID int       `json:"id"`
	From_User_ID       string    `json:"fromUserId"`
	To_User_ID         string    `json:"toUserId"`
	Subject            string    `json:"subject"`
	Content            string    `json:"content"`
	Is_Read            bool      `json:"isRead"`
	Datetime_Create    time.Time `json:"createdAt"`
}

type PrivateMessageCreate struct {
	From_User_ID string `json:"fromUserId" binding:"required"`
	To_User_ID   string `json:"toUserId" binding:"required"`
	Subject      string `json:"subject" binding:"required"`
	Content      string `json:"content" binding:"required"`
}

type ForumNotification struct {
	Forum_Notification_ID int       `json:"id"`
	User_ID               string    `json:"userId"`
	Type                  string    `json:"type"`
	Title                 string    `json:"title"`
	Content               *string   `json:"content"`
	Related_ID            *int      `json:"relatedId"`
	Related_Type          *string   `json:"relatedType"`
	Is_Read               bool      `json:"isRead"`
	Datetime_Create       time.Time `json:"createdAt"`
}

type ForumNotificationCreate struct {
	User_ID      string  `json:"userId" binding:"required"`
	Type         string  `json:"type" binding:"required"`
	Title        string  `json:"title" binding:"required"`
	Content      *string `json:"content"`
	Related_ID   *int    `json:"relatedId"`
	Related_Type *string `json:"relatedType"`
}
