package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserFields is the client-editable part of a user. Update replaces all of it.
type UserFields struct {
	Username string `json:"username" bson:"username"`
	Email    string `json:"email" bson:"email"`
}

// UserRequest is the request body. Pointers let "" through while a missing
// field still fails the required check.
type UserRequest struct {
	Username *string `json:"username" binding:"required"`
	Email    *string `json:"email" binding:"required"`
}

func (r UserRequest) Fields() UserFields {
	return UserFields{Username: *r.Username, Email: *r.Email}
}

type User struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserFields `bson:",inline"`
}
