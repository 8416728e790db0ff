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

func bookmarkTestContext(t *testing.T, userID, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validators.NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &models.JwtCustomClaims{UserID: userID})
	return c, rec
}

func TestCreateBookmark_UpsertKeepsSingleRow(t *testing.T) {
	repo := newFakeBookmarkRepo()
	h := NewBookmarkHandler(repo)

	c, rec := bookmarkTestContext(t, "reader-b", `{"story_id":"story-1","note":"chapter 3, the duel"}`)
	require.NoError(t, h.CreateBookmark(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var first models.Bookmark
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	require.NotNil(t, first.Note)
	assert.Equal(t, "chapter 3, the duel", *first.Note)

	// Bookmarking the same story again replaces the note on the same row
	c, rec = bookmarkTestContext(t, "reader-b", `{"story_id":"story-1","note":"finished the duel"}`)
	require.NoError(t, h.CreateBookmark(c))

	var second models.Bookmark
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.Note)
	assert.Equal(t, "finished the duel", *second.Note)
	assert.Len(t, repo.bookmarks, 1)
}

func TestCreateBookmark_MissingStoryID(t *testing.T) {
	h := NewBookmarkHandler(newFakeBookmarkRepo())

	c, _ := bookmarkTestContext(t, "reader-b", `{"note":"no story"}`)
	err := h.CreateBookmark(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetBookmark_NotFound(t *testing.T) {
	h := NewBookmarkHandler(newFakeBookmarkRepo())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &models.JwtCustomClaims{UserID: "reader-b"})
	c.SetParamNames("story_id")
	c.SetParamValues("story-1")

	err := h.GetBookmark(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestDeleteBookmark(t *testing.T) {
	repo := newFakeBookmarkRepo()
	note := "keep"
	repo.bookmarks["reader-b|story-1"] = &models.Bookmark{
		ID: "bm-1", UserID: "reader-b", StoryID: "story-1", Note: &note,
	}
	h := NewBookmarkHandler(repo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &models.JwtCustomClaims{UserID: "reader-b"})
	c.SetParamNames("story_id")
	c.SetParamValues("story-1")

	require.NoError(t, h.DeleteBookmark(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.bookmarks)
}
