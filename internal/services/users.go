package services

import (
	"context"

	"blogapi/internal/events"
	"blogapi/internal/models"
	"blogapi/internal/store"

	"github.com/sirupsen/logrus"
)

type UserService struct {
	users  store.Store[models.User]
	events events.Publisher
	log    *logrus.Logger
}

func NewUserService(users store.Store[models.User], pub events.Publisher, log *logrus.Logger) *UserService {
	return &UserService{users: users, events: pub, log: log}
}

// Create stores a new user. Usernames and emails are not checked for uniqueness.
func (s *UserService) Create(ctx context.Context, in models.UserFields) (string, error) {
	id, err := s.users.Insert(ctx, in)
	if err != nil {
		return "", err
	}
	publish(s.events, s.log, events.UserCreated, events.UserCreatedEvent{UserID: id, Username: in.Username})
	return id, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.users.Get(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id string, in models.UserFields) error {
	return s.users.Update(ctx, id, in)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
