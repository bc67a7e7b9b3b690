package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type LikeFields struct {
	UserID string `json:"user_id" bson:"user_id"`
	PostID string `json:"post_id" bson:"post_id"`
}

type LikeRequest struct {
	UserID *string `json:"user_id" binding:"required"`
	PostID *string `json:"post_id" binding:"required"`
}

func (r LikeRequest) Fields() LikeFields {
	return LikeFields{UserID: *r.UserID, PostID: *r.PostID}
}

// Like records that a user liked a post. Creating one does not touch the
// post's likes counter.
type Like struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	LikeFields `bson:",inline"`
}
