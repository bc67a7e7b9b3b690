package router

import (
	"blogapi/internal/db"
	"blogapi/internal/events"
	"blogapi/internal/handlers"
	"blogapi/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handlers struct {
	Users    *handlers.UserHandler
	Posts    *handlers.PostHandler
	Comments *handlers.CommentHandler
	Likes    *handlers.LikeHandler
	Pages    *handlers.PageHandler
}

// NewHandlers wires services over the given stores.
func NewHandlers(stores *db.Stores, pub events.Publisher, log *logrus.Logger) *Handlers {
	return &Handlers{
		Users:    handlers.NewUserHandler(services.NewUserService(stores.Users, pub, log), log),
		Posts:    handlers.NewPostHandler(services.NewPostService(stores.Posts, pub, log), log),
		Comments: handlers.NewCommentHandler(services.NewCommentService(stores.Comments, pub, log), log),
		Likes:    handlers.NewLikeHandler(services.NewLikeService(stores.Likes, pub, log), log),
		Pages:    handlers.NewPageHandler(stores.Posts, log),
	}
}

func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.GET("/healthz", h.Pages.Health) // 存储连通性检查

	// 用户 (Users)
	r.POST("/users/", h.Users.Create)
	r.GET("/users/:id", h.Users.Get)
	r.PUT("/users/:id", h.Users.Update)
	r.DELETE("/users/:id", h.Users.Delete)

	// 文章 (Posts)
	r.POST("/posts/", h.Posts.Create)
	r.GET("/posts/", h.Posts.List)
	r.GET("/posts/:id", h.Posts.Get)
	r.PUT("/posts/:id", h.Posts.Update)
	r.DELETE("/posts/:id", h.Posts.Delete)
	r.PUT("/posts/:id/like", h.Posts.Like)               // 点赞计数 +1
	r.GET("/posts/:id/comments", h.Comments.ListForPost) // 文章下的评论

	// 评论 (Comments)
	r.POST("/comments/:post_id", h.Comments.Create)
	r.GET("/comments/:id", h.Comments.Get)
	r.PUT("/comments/:id", h.Comments.Update)
	r.DELETE("/comments/:id", h.Comments.Delete)

	// 点赞记录 (Likes)
	r.POST("/likes/", h.Likes.Create)
	r.GET("/likes/:id", h.Likes.Get)
	r.PUT("/likes/:id", h.Likes.Update)
	r.DELETE("/likes/:id", h.Likes.Delete)
}
