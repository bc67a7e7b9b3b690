package services

import (
	"context"

	"blogapi/internal/events"
	"blogapi/internal/models"
	"blogapi/internal/store"

	"github.com/sirupsen/logrus"
)

type CommentService struct {
	comments store.Store[models.Comment]
	events   events.Publisher
	log      *logrus.Logger
}

func NewCommentService(comments store.Store[models.Comment], pub events.Publisher, log *logrus.Logger) *CommentService {
	return &CommentService{comments: comments, events: pub, log: log}
}

// Create attaches postID to the comment. Whether the post exists is not checked.
func (s *CommentService) Create(ctx context.Context, postID string, in models.CommentFields) (string, error) {
	id, err := s.comments.Insert(ctx, models.Comment{CommentFields: in, PostID: postID})
	if err != nil {
		return "", err
	}
	publish(s.events, s.log, events.CommentCreated, events.CommentCreatedEvent{CommentID: id, PostID: postID, Author: in.Author})
	return id, nil
}

func (s *CommentService) Get(ctx context.Context, id string) (*models.Comment, error) {
	return s.comments.Get(ctx, id)
}

// ListForPost scans comments by their post_id. Order is whatever storage
// returns, usually insertion order.
func (s *CommentService) ListForPost(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.comments.FindBy(ctx, "post_id", postID)
}

// Update replaces content and author. post_id is kept.
func (s *CommentService) Update(ctx context.Context, id string, in models.CommentFields) error {
	return s.comments.Update(ctx, id, in)
}

func (s *CommentService) Delete(ctx context.Context, id string) error {
	return s.comments.Delete(ctx, id)
}
