package models

import "time"

type User struct {
	User_ID         int       `json:"id"`
	Username        string    `json:"username"`
	Password        string    `json:"-"`
	Email           *string   `json:"email"`
	Role            *string   `json:"role"`
	Datetime_Create time.Time `json:"createdAt"`
}

type UserCreate struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}
