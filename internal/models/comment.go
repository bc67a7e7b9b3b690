package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type CommentFields struct {
	Content string `json:"content" bson:"content"`
	Author  string `json:"author" bson:"author"`
}

// CommentRequest is what a client may send. post_id is never read from the
// body; it comes from the route.
type CommentRequest struct {
	Content *string `json:"content" binding:"required"`
	Author  *string `json:"author" binding:"required"`
}

func (r CommentRequest) Fields() CommentFields {
	return CommentFields{Content: *r.Content, Author: *r.Author}
}

type Comment struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CommentFields `bson:",inline"`
	PostID        string `json:"post_id" bson:"post_id"` // weak reference, the post may not exist
}
