package events

const (
	UserCreated    = "user.created"
	PostCreated    = "post.created"
	PostLiked      = "post.liked"
	CommentCreated = "comment.created"
	LikeCreated    = "like.created"
)

// Event payloads
type UserCreatedEvent struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type PostCreatedEvent struct {
	PostID string `json:"post_id"`
	Author string `json:"author"`
	Title  string `json:"title"`
}

type PostLikedEvent struct {
	PostID string `json:"post_id"`
	Likes  int    `json:"likes"`
}

type CommentCreatedEvent struct {
	CommentID string `json:"comment_id"`
	PostID    string `json:"post_id"`
	Author    string `json:"author"`
}

type LikeCreatedEvent struct {
	LikeID string `json:"like_id"`
	UserID string `json:"user_id"`
	PostID string `json:"post_id"`
}
