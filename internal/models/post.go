package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type PostFields struct {
	Title    string   `json:"title" bson:"title"`
	Content  string   `json:"content" bson:"content"`
	Author   string   `json:"author" bson:"author"`
	Comments []string `json:"comments" bson:"comments"` // comment ids, not checked
	Likes    int      `json:"likes" bson:"likes"`
	Dislikes int      `json:"dislikes" bson:"dislikes"`
}

// WithDefaults fills the fields a client may omit.
func (f PostFields) WithDefaults() PostFields {
	if f.Comments == nil {
		f.Comments = []string{}
	}
	return f
}

type PostRequest struct {
	Title    *string  `json:"title" binding:"required"`
	Content  *string  `json:"content" binding:"required"`
	Author   *string  `json:"author" binding:"required"`
	Comments []string `json:"comments"`
	Likes    int      `json:"likes" binding:"min=0"`
	Dislikes int      `json:"dislikes" binding:"min=0"`
}

func (r PostRequest) Fields() PostFields {
	return PostFields{
		Title:    *r.Title,
		Content:  *r.Content,
		Author:   *r.Author,
		Comments: r.Comments,
		Likes:    r.Likes,
		Dislikes: r.Dislikes,
	}
}

type Post struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PostFields `bson:",inline"`
}
