package services

import (
	"context"

	"blogapi/internal/events"
	"blogapi/internal/models"
	"blogapi/internal/store"

	"github.com/sirupsen/logrus"
)

// NullPostID is what the web client sends when it has no post id yet.
const NullPostID = "null"

type PostService struct {
	posts  store.Store[models.Post]
	events events.Publisher
	log    *logrus.Logger
}

func NewPostService(posts store.Store[models.Post], pub events.Publisher, log *logrus.Logger) *PostService {
	return &PostService{posts: posts, events: pub, log: log}
}

// Create stores a post with comments defaulting to an empty list and both
// counters to zero unless the client set them.
func (s *PostService) Create(ctx context.Context, in models.PostFields) (string, error) {
	in = in.WithDefaults()
	id, err := s.posts.Insert(ctx, in)
	if err != nil {
		return "", err
	}
	publish(s.events, s.log, events.PostCreated, events.PostCreatedEvent{PostID: id, Author: in.Author, Title: in.Title})
	return id, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	post.PostFields = post.PostFields.WithDefaults()
	return post, nil
}

// ListAll returns every post in storage order.
func (s *PostService) ListAll(ctx context.Context) ([]models.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].PostFields = posts[i].PostFields.WithDefaults()
	}
	return posts, nil
}

// Update replaces every field, so omitted counters and comments are reset
// to their defaults.
func (s *PostService) Update(ctx context.Context, id string, in models.PostFields) error {
	return s.posts.Update(ctx, id, in.WithDefaults())
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	return s.posts.Delete(ctx, id)
}

// Like bumps the likes counter by one in a single storage operation and
// returns the new value.
func (s *PostService) Like(ctx context.Context, id string) (int, error) {
	post, err := s.posts.Increment(ctx, id, "likes", 1)
	if err != nil {
		return 0, err
	}
	publish(s.events, s.log, events.PostLiked, events.PostLikedEvent{PostID: id, Likes: post.Likes})
	return post.Likes, nil
}
