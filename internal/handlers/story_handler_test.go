package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sable-ink/inkwell/backend/internal/models"
	"github.com/sable-ink/inkwell/backend/pkg/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storyTestContext(t *testing.T, userID, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validators.NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &models.JwtCustomClaims{UserID: userID})
	return c, rec
}

func TestCreateStory(t *testing.T) {
	repo := newFakeStoryRepo()
	h := NewStoryHandler(repo)

	body := `{"title":"First Light","content":"dawn broke over the hills","category":"story"}`
	c, rec := storyTestContext(t, "author-a", http.MethodPost, body)
	require.NoError(t, h.CreateStory(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var story models.Story
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &story))
	assert.NotEmpty(t, story.ID)
	assert.Equal(t, "author-a", story.AuthorID)
	assert.Equal(t, 5, story.WordCount)
	assert.False(t, story.Published)
	assert.Nil(t, story.PublishedAt)
}

func TestCreateStory_InvalidCategory(t *testing.T) {
	h := NewStoryHandler(newFakeStoryRepo())

	body := `{"title":"Bad","content":"text","category":"memoir"}`
	c, _ := storyTestContext(t, "author-a", http.MethodPost, body)
	err := h.CreateStory(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetStory_UnpublishedHiddenFromOthers(t *testing.T) {
	repo := newFakeStoryRepo()
	repo.stories["story-1"] = &models.Story{ID: "story-1", AuthorID: "author-a", Published: false}
	h := NewStoryHandler(repo)

	// The author sees their own draft story
	c, rec := storyTestContext(t, "author-a", http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues("story-1")
	require.NoError(t, h.GetStory(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Everyone else gets a 404, not a 403
	c, _ = storyTestContext(t, "reader-b", http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues("story-1")
	err := h.GetStory(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestUpdateStory_RecountsWords(t *testing.T) {
	repo := newFakeStoryRepo()
	repo.stories["story-1"] = &models.Story{
		ID: "story-1", AuthorID: "author-a",
		Content: "one two", WordCount: 2,
	}
	h := NewStoryHandler(repo)

	body := `{"content":"one two three four"}`
	c, rec := storyTestContext(t, "author-a", http.MethodPut, body)
	c.SetParamNames("id")
	c.SetParamValues("story-1")
	require.NoError(t, h.UpdateStory(c))

	var story models.Story
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &story))
	assert.Equal(t, 4, story.WordCount)
}

func TestUpdateStory_NotOwner(t *testing.T) {
	repo := newFakeStoryRepo()
	repo.stories["story-1"] = &models.Story{ID: "story-1", AuthorID: "author-a"}
	h := NewStoryHandler(repo)

	c, _ := storyTestContext(t, "reader-b", http.MethodPut, `{"title":"Hijacked"}`)
	c.SetParamNames("id")
	c.SetParamValues("story-1")
	err := h.UpdateStory(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestPublishStory(t *testing.T) {
	repo := newFakeStoryRepo()
	repo.stories["story-1"] = &models.Story{ID: "story-1", AuthorID: "author-a"}
	h := NewStoryHandler(repo)

	c, rec := storyTestContext(t, "author-a", http.MethodPost, "")
	c.SetParamNames("id")
	c.SetParamValues("story-1")
	require.NoError(t, h.PublishStory(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var story models.Story
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &story))
	assert.True(t, story.Published)
	require.NotNil(t, story.PublishedAt)
}

func TestEnableChapters(t *testing.T) {
	repo := newFakeStoryRepo()
	repo.stories["story-1"] = &models.Story{ID: "story-1", AuthorID: "author-a"}
	h := NewStoryHandler(repo)

	c, rec := storyTestContext(t, "author-a", http.MethodPost, "")
	c.SetParamNames("id")
	c.SetParamValues("story-1")
	require.NoError(t, h.EnableChapters(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, repo.stories["story-1"].HasChapters)
}

func TestDeleteStory_NotFound(t *testing.T) {
	h := NewStoryHandler(newFakeStoryRepo())

	c, _ := storyTestContext(t, "author-a", http.MethodDelete, "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	err := h.DeleteStory(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}
