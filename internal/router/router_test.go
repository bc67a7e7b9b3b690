package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"blogapi/internal/db"
	"blogapi/internal/events"
	"blogapi/internal/models"
	"blogapi/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, stores *db.Stores) http.Handler {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	r := gin.New()
	RegisterRoutes(r, NewHandlers(stores, events.NopPublisher{}, log))
	return r
}

func do(t *testing.T, h http.Handler, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(data)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec.Code, out
}

func TestPostLikeFlow(t *testing.T) {
	srv := newTestServer(t, db.NewMemoryStores())

	code, body := do(t, srv, http.MethodPost, "/posts/", map[string]string{"title": "T", "content": "C", "author": "A"})
	require.Equal(t, http.StatusOK, code)
	id, _ := body["id"].(string)
	require.Regexp(t, "^[0-9a-f]{24}$", id)

	code, body = do(t, srv, http.MethodPut, "/posts/"+id+"/like", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["likes"])

	code, body = do(t, srv, http.MethodPut, "/posts/"+id+"/like", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 2, body["likes"])

	code, body = do(t, srv, http.MethodGet, "/posts/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, id, body["_id"])
	assert.Equal(t, "T", body["title"])
	assert.EqualValues(t, 2, body["likes"])
	assert.EqualValues(t, 0, body["dislikes"])
	assert.Equal(t, []any{}, body["comments"])
}

func TestLikeMissingPost(t *testing.T) {
	srv := newTestServer(t, db.NewMemoryStores())

	code, body := do(t, srv, http.MethodPut, "/posts/"+primitive.NewObjectID().Hex()+"/like", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Post not found", body["detail"])

	code, _ = do(t, srv, http.MethodPut, "/posts/not-hex/like", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestConcurrentLikesLoseNothing(t *testing.T) {
	srv := newTestServer(t, db.NewMemoryStores())

	_, body := do(t, srv, http.MethodPost, "/posts/", map[string]string{"title": "T", "content": "C", "author": "A"})
	id := body["id"].(string)

	const n = 40
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPut, "/posts/"+id+"/like", nil)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		}()
	}
	wg.Wait()

	_, body = do(t, srv, http.MethodGet, "/posts/"+id, nil)
	assert.EqualValues(t, n, body["likes"])
}

// panicStore fails the test on any storage access.
type panicStore[T any] struct {
	store.Store[T]
	t *testing.T
}

func (p panicStore[T]) Get(context.Context, string) (*T, error) {
	p.t.Fatal("storage must not be queried")
	return nil, nil
}

func TestNullPostIDSkipsStorage(t *testing.T) {
	stores := db.NewMemoryStores()
	stores.Posts = panicStore[models.Post]{t: t}
	srv := newTestServer(t, stores)

	code, body := do(t, srv, http.MethodGet, "/posts/null", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"message": "Invalid post ID"}, body)
}

func TestCRUDPerEntity(t *testing.T) {
	cases := []struct {
		name    string
		create  string
		base    string
		kind    string
		initial map[string]any
		updated map[string]any
	}{
		{
			name:    "users",
			create:  "/users/",
			base:    "/users/",
			kind:    "User",
			initial: map[string]any{"username": "ann", "email": "ann@example.com"},
			updated: map[string]any{"username": "anne", "email": "anne@example.com"},
		},
		{
			name:    "posts",
			create:  "/posts/",
			base:    "/posts/",
			kind:    "Post",
			initial: map[string]any{"title": "T", "content": "C", "author": "A"},
			updated: map[string]any{"title": "T2", "content": "C2", "author": "A2", "comments": []any{"x"}, "likes": float64(3), "dislikes": float64(1)},
		},
		{
			name:    "comments",
			create:  "/comments/" + primitive.NewObjectID().Hex(),
			base:    "/comments/",
			kind:    "Comment",
			initial: map[string]any{"content": "hi", "author": "ann"},
			updated: map[string]any{"content": "edited", "author": "bob"},
		},
		{
			name:    "likes",
			create:  "/likes/",
			base:    "/likes/",
			kind:    "Like",
			initial: map[string]any{"user_id": "u1", "post_id": "p1"},
			updated: map[string]any{"user_id": "u2", "post_id": "p2"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(t, db.NewMemoryStores())

			code, body := do(t, srv, http.MethodPost, tc.create, tc.initial)
			require.Equal(t, http.StatusOK, code, body)
			id := body["id"].(string)

			code, body = do(t, srv, http.MethodGet, tc.base+id, nil)
			require.Equal(t, http.StatusOK, code)
			for k, v := range tc.initial {
				assert.Equal(t, v, body[k], k)
			}

			code, body = do(t, srv, http.MethodPut, tc.base+id, tc.updated)
			require.Equal(t, http.StatusOK, code, body)
			assert.Equal(t, tc.kind+" updated successfully", body["message"])

			// replacing with identical values is not a 404
			code, _ = do(t, srv, http.MethodPut, tc.base+id, tc.updated)
			assert.Equal(t, http.StatusOK, code)

			code, body = do(t, srv, http.MethodGet, tc.base+id, nil)
			require.Equal(t, http.StatusOK, code)
			for k, v := range tc.updated {
				assert.Equal(t, v, body[k], k)
			}

			code, body = do(t, srv, http.MethodDelete, tc.base+id, nil)
			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, tc.kind+" deleted successfully", body["message"])

			code, body = do(t, srv, http.MethodGet, tc.base+id, nil)
			assert.Equal(t, http.StatusNotFound, code)
			assert.Equal(t, tc.kind+" not found", body["detail"])

			code, _ = do(t, srv, http.MethodDelete, tc.base+id, nil)
			assert.Equal(t, http.StatusNotFound, code)

			code, _ = do(t, srv, http.MethodPut, tc.base+id, tc.updated)
			assert.Equal(t, http.StatusNotFound, code)

			code, _ = do(t, srv, http.MethodGet, tc.base+"xyz", nil)
			assert.Equal(t, http.StatusBadRequest, code)

			code, _ = do(t, srv, http.MethodPost, tc.create, map[string]any{})
			assert.Equal(t, http.StatusUnprocessableEntity, code)
		})
	}
}

func TestValidation(t *testing.T) {
	srv := newTestServer(t, db.NewMemoryStores())

	code, _ := do(t, srv, http.MethodPost, "/users/", map[string]string{"username": "ann"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = do(t, srv, http.MethodPost, "/posts/", `{"title":"T","content":"C","author":"A","likes":"many"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = do(t, srv, http.MethodPost, "/posts/", `{"title":"T","content":"C","author":"A","likes":-1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = do(t, srv, http.MethodPost, "/likes/", `not json`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestEmptyStringsArePresent(t *testing.T) {
	srv := newTestServer(t, db.NewMemoryStores())

	cases := []struct {
		name   string
		create string
		base   string
		body   map[string]any
	}{
		{"users", "/users/", "/users/", map[string]any{"username": "", "email": ""}},
		{"posts", "/posts/", "/posts/", map[string]any{"title": "", "content": "", "author": ""}},
		{"comments", "/comments/p1", "/comments/", map[string]any{"content": "", "author": "a"}},
		{"likes", "/likes/", "/likes/", map[string]any{"user_id": "", "post_id": ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := do(t, srv, http.MethodPost, tc.create, tc.body)
			require.Equal(t, http.StatusOK, code, body)
			id := body["id"].(string)

			code, body = do(t, srv, http.MethodGet, tc.base+id, nil)
			require.Equal(t, http.StatusOK, code)
			for k, v := range tc.body {
				assert.Equal(t, v, body[k], k)
			}

			code, body = do(t, srv, http.MethodPut, tc.base+id, tc.body)
			assert.Equal(t, http.StatusOK, code, body)
		})
	}

	// absent and null still count as missing
	code, _ := do(t, srv, http.MethodPost, "/users/", `{"username":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	code, _ = do(t, srv, http.MethodPost, "/users/", `{"username":"","email":null}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestCommentsForPost(t *testing.T) {
	srv := newTestServer(t, db.NewMemoryStores())

	var want []string
	for _, target := range []string{"abc123", "zzz", "abc123"} {
		// post_id in the body must be ignored
		code, body := do(t, srv, http.MethodPost, "/comments/"+target, map[string]string{
			"content": "c", "author": "a", "post_id": "spoofed",
		})
		require.Equal(t, http.StatusOK, code)
		if target == "abc123" {
			want = append(want, body["id"].(string))
		}
	}

	code, body := do(t, srv, http.MethodGet, "/posts/abc123/comments", nil)
	require.Equal(t, http.StatusOK, code)
	comments := body["comments"].([]any)
	require.Len(t, comments, 2)
	for i, c := range comments {
		m := c.(map[string]any)
		assert.Equal(t, want[i], m["_id"])
		assert.Equal(t, "abc123", m["post_id"])
	}

	code, body = do(t, srv, http.MethodGet, "/posts/nothing/comments", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{}, body["comments"])
}

func TestListPosts(t *testing.T) {
	srv := newTestServer(t, db.NewMemoryStores())

	code, body := do(t, srv, http.MethodGet, "/posts/", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{}, body["posts"])

	_, created := do(t, srv, http.MethodPost, "/posts/", map[string]string{"title": "T", "content": "C", "author": "A"})

	_, body = do(t, srv, http.MethodGet, "/posts/", nil)
	posts := body["posts"].([]any)
	require.Len(t, posts, 1)
	assert.Equal(t, created["id"], posts[0].(map[string]any)["_id"])
}

// failingStore reports an unexpected backend error on every call.
type failingStore[T any] struct {
	store.Store[T]
}

func (failingStore[T]) Insert(context.Context, any) (string, error) {
	return "", errors.New("connection reset")
}

func (failingStore[T]) Ping(context.Context) error {
	return errors.New("connection reset")
}

func TestUnexpectedErrorIsGeneric(t *testing.T) {
	stores := db.NewMemoryStores()
	stores.Comments = failingStore[models.Comment]{}
	stores.Posts = failingStore[models.Post]{}
	srv := newTestServer(t, stores)

	code, body := do(t, srv, http.MethodPost, "/comments/p1", map[string]string{"content": "c", "author": "a"})
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body["detail"])

	code, body = do(t, srv, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unavailable", body["status"])
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, db.NewMemoryStores())

	code, body := do(t, srv, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}
