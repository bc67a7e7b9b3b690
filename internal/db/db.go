package db

import (
	"context"
	"fmt"

	"blogapi/internal/config"
	"blogapi/internal/models"
	"blogapi/internal/store"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names inside the blog database.
const (
	UsersCollection    = "users"
	PostsCollection    = "posts"
	CommentsCollection = "comments"
	LikesCollection    = "likes"
)

// Stores groups one repository per entity kind.
type Stores struct {
	Users    store.Store[models.User]
	Posts    store.Store[models.Post]
	Comments store.Store[models.Comment]
	Likes    store.Store[models.Like]
}

// Connect opens a pooled client and verifies the server is reachable.
func Connect(ctx context.Context, cfg config.MongoConfig, log *logrus.Logger) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.WithFields(logrus.Fields{
		"database":      cfg.Database,
		"max_pool_size": cfg.MaxPoolSize,
	}).Info("Database connection established")
	return client, nil
}

func NewMongoStores(database *mongo.Database) *Stores {
	return &Stores{
		Users:    store.NewMongoStore[models.User](database.Collection(UsersCollection)),
		Posts:    store.NewMongoStore[models.Post](database.Collection(PostsCollection)),
		Comments: store.NewMongoStore[models.Comment](database.Collection(CommentsCollection)),
		Likes:    store.NewMongoStore[models.Like](database.Collection(LikesCollection)),
	}
}

func NewMemoryStores() *Stores {
	return &Stores{
		Users:    store.NewMemoryStore[models.User](),
		Posts:    store.NewMemoryStore[models.Post](),
		Comments: store.NewMemoryStore[models.Comment](),
		Likes:    store.NewMemoryStore[models.Like](),
	}
}
