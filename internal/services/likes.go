package services

import (
	"context"

	"blogapi/internal/events"
	"blogapi/internal/models"
	"blogapi/internal/store"

	"github.com/sirupsen/logrus"
)

type LikeService struct {
	likes  store.Store[models.Like]
	events events.Publisher
	log    *logrus.Logger
}

func NewLikeService(likes store.Store[models.Like], pub events.Publisher, log *logrus.Logger) *LikeService {
	return &LikeService{likes: likes, events: pub, log: log}
}

// Create records a like. The same user may like the same post any number of
// times, and the post's counter is left alone (see PostService.Like).
func (s *LikeService) Create(ctx context.Context, in models.LikeFields) (string, error) {
	id, err := s.likes.Insert(ctx, in)
	if err != nil {
		return "", err
	}
	publish(s.events, s.log, events.LikeCreated, events.LikeCreatedEvent{LikeID: id, UserID: in.UserID, PostID: in.PostID})
	return id, nil
}

func (s *LikeService) Get(ctx context.Context, id string) (*models.Like, error) {
	return s.likes.Get(ctx, id)
}

func (s *LikeService) Update(ctx context.Context, id string, in models.LikeFields) error {
	return s.likes.Update(ctx, id, in)
}

func (s *LikeService) Delete(ctx context.Context, id string) error {
	return s.likes.Delete(ctx, id)
}
