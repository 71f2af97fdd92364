package storage

import (
	"context"

	"github.com/CongregationConsole/models"
)

func (s *MemStore) GetUser(ctx context.Context, id int) (models.User, bool, error) {
	user, ok := s.users.get(id)
	return user, ok, nil
}

func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (models.User, bool, error) {
	matches := s.users.list(func(u models.User) bool { return u.Username == username }, byUserID)
	if len(matches) == 0 {
		return models.User{}, false, nil
	}
	return matches[0], true, nil
}

func (s *MemStore) CreateUser(ctx context.Context, body models.UserCreate) (models.User, error) {
	now := s.now()
	return s.users.insert(func(id int) models.User {
		return models.User{
			User_ID:         id,
			Username:        body.Username,
			Password:        body.Password,
			Email:           body.Email,
			Role:            body.Role,
			Datetime_Create: now,
		}
	}), nil
}

func (s *MemStore) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.list(nil, byUserID), nil
}

func byUserID(a, b models.User) bool { return a.User_ID < b.User_ID }
