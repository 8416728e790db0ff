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

func draftTestContext(t *testing.T, userID, draftID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &models.JwtCustomClaims{UserID: userID})
	c.SetParamNames("id")
	c.SetParamValues(draftID)
	return c, rec
}

func strPtr(s string) *string { return &s }

func TestPromoteDraft(t *testing.T) {
	drafts := newFakeDraftRepo()
	stories := newFakeStoryRepo()
	drafts.drafts["draft-1"] = &models.Draft{
		ID:       "draft-1",
		AuthorID: "author-a",
		Title:    strPtr("The Crossing"),
		Content:  strPtr("they crossed at first light"),
		Category: strPtr(models.CategoryStory),
		Excerpt:  strPtr("a river story"),
	}
	h := NewDraftHandler(drafts, stories)

	c, rec := draftTestContext(t, "author-a", "draft-1")
	require.NoError(t, h.PromoteDraft(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var story models.Story
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &story))
	assert.Equal(t, "The Crossing", story.Title)
	assert.Equal(t, "author-a", story.AuthorID)
	assert.Equal(t, models.CategoryStory, story.Category)
	assert.Equal(t, 5, story.WordCount)
	assert.False(t, story.Published)

	// The story exists and the draft is gone
	_, ok := stories.stories[story.ID]
	assert.True(t, ok)
	assert.Empty(t, drafts.drafts)
}

func TestPromoteDraft_IncompleteDraft(t *testing.T) {
	drafts := newFakeDraftRepo()
	stories := newFakeStoryRepo()
	drafts.drafts["draft-1"] = &models.Draft{
		ID:       "draft-1",
		AuthorID: "author-a",
		Title:    strPtr("Untitled, Really"),
		// no content, no category
	}
	h := NewDraftHandler(drafts, stories)

	c, _ := draftTestContext(t, "author-a", "draft-1")
	err := h.PromoteDraft(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)

	// Nothing promoted, nothing deleted
	assert.Empty(t, stories.stories)
	assert.Len(t, drafts.drafts, 1)
}

func TestPromoteDraft_ForeignDraftReadsAsAbsent(t *testing.T) {
	drafts := newFakeDraftRepo()
	drafts.drafts["draft-1"] = &models.Draft{
		ID:       "draft-1",
		AuthorID: "author-a",
		Title:    strPtr("Private"),
		Content:  strPtr("words"),
		Category: strPtr(models.CategoryPoem),
	}
	h := NewDraftHandler(drafts, newFakeStoryRepo())

	c, _ := draftTestContext(t, "reader-b", "draft-1")
	err := h.PromoteDraft(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}
