package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostRedirectsToProfile(t *testing.T) {
	t.Parallel()

	s, db := setupTestServer(t)
	author := createUser(t, db, "anna")

	app := authedApp(author.ID)
	app.Post("/api/posts", s.CreatePost)

	body := []byte(`{"text":"my first post"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/api/profile/anna", resp.Header.Get("Location"))

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Where("user_id = ?", author.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreatePostEmptyTextRejected(t *testing.T) {
	t.Parallel()

	s, db := setupTestServer(t)
	author := createUser(t, db, "anna")

	app := authedApp(author.ID)
	app.Post("/api/posts", s.CreatePost)

	body := []byte(`{"text":"   "}`)
	req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEditPostNonAuthorSilentlyRedirects(t *testing.T) {
	t.Parallel()

	s, db := setupTestServer(t)
	author := createUser(t, db, "anna")
	intruder := createUser(t, db, "mallory")
	post := createPost(t, db, author, "original")

	app := authedApp(intruder.ID)
	app.Post("/api/posts/:id/edit", s.EditPost)

	body := []byte(`{"text":"hijacked"}`)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/posts/%d/edit", post.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	// Not an error: the request just bounces back to the detail page.
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/api/posts/%d", post.ID), resp.Header.Get("Location"))

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	assert.Equal(t, "original", reloaded.Text)
}

func TestEditPostByAuthorKeepsPublicationDate(t *testing.T) {
	t.Parallel()

	s, db := setupTestServer(t)
	author := createUser(t, db, "anna")

	published := time.Date(2023, 6, 15, 9, 30, 0, 0, time.UTC)
	post := &models.Post{Text: "original", UserID: author.ID, CreatedAt: published}
	require.NoError(t, db.Create(post).Error)

	app := authedApp(author.ID)
	app.Post("/api/posts/:id/edit", s.EditPost)

	body := []byte(`{"text":"edited"}`)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/posts/%d/edit", post.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	assert.Equal(t, "edited", reloaded.Text)
	assert.Equal(t, published.Unix(), reloaded.CreatedAt.Unix())
}

func TestGetPostDetailNotFound(t *testing.T) {
	t.Parallel()

	s, _ := setupTestServer(t)

	app := authedApp(0)
	app.Get("/api/posts/:id", s.GetPost)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/9999", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetPostsPaginatesAtPageSize(t *testing.T) {
	t.Parallel()

	s, db := setupTestServer(t)
	author := createUser(t, db, "anna")

	// page size + 3 posts: full first page, 3 on the second
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < s.config.PostsPerPage+3; i++ {
		post := &models.Post{
			Text:      fmt.Sprintf("post %d", i),
			UserID:    author.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(post).Error)
	}

	app := authedApp(0)
	app.Get("/api/posts", s.GetPosts)

	fetch := func(target string) (posts []models.Post, page map[string]any) {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Posts []models.Post  `json:"posts"`
			Page  map[string]any `json:"page"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body.Posts, body.Page
	}

	posts, page := fetch("/api/posts")
	assert.Len(t, posts, 10)
	assert.Equal(t, float64(1), page["number"])
	assert.Equal(t, float64(2), page["total_pages"])
	// newest first
	assert.Equal(t, "post 12", posts[0].Text)

	posts, page = fetch("/api/posts?page=2")
	assert.Len(t, posts, 3)
	assert.Equal(t, float64(2), page["number"])

	// A page past the end clamps to the last page instead of going empty.
	posts, page = fetch("/api/posts?page=99")
	assert.Len(t, posts, 3)
	assert.Equal(t, float64(2), page["number"])
}
