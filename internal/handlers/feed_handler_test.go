package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sable-ink/inkwell/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeed_ForwardsFilters(t *testing.T) {
	repo := newFakeStoryRepo()
	repo.published = []models.StoryWithLikes{
		{Story: models.Story{ID: "story-1", Title: "Embers", Published: true}, LikeCount: 3},
		{Story: models.Story{ID: "story-2", Title: "Tides", Published: true}, LikeCount: 1},
	}
	h := NewFeedHandler(repo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/feed?category=poem&sort=recent", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetFeed(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "poem", repo.lastCategory)
	assert.Equal(t, "recent", repo.lastSort)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Stories []models.StoryWithLikes `json:"stories"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data.Stories, 2)
	assert.Equal(t, int64(3), body.Data.Stories[0].LikeCount)
}

func TestGetFeed_NoParamsMeansDefaults(t *testing.T) {
	repo := newFakeStoryRepo()
	h := NewFeedHandler(repo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetFeed(c))
	assert.Equal(t, "", repo.lastCategory)
	assert.Equal(t, "", repo.lastSort)
}

func TestGetLikedStories(t *testing.T) {
	repo := newFakeStoryRepo()
	repo.liked = []models.StoryWithLikes{
		{Story: models.Story{ID: "story-9", Title: "Afterglow", Published: true}, LikeCount: 7},
	}
	h := NewFeedHandler(repo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/feed/liked", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &models.JwtCustomClaims{UserID: "reader-b"})

	require.NoError(t, h.GetLikedStories(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Stories []models.StoryWithLikes `json:"stories"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.Stories, 1)
	assert.Equal(t, "story-9", body.Data.Stories[0].ID)
}
