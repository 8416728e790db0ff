package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sable-ink/inkwell/backend/internal/models"
	"github.com/sable-ink/inkwell/backend/internal/repositories"
	"gorm.io/gorm"
)

// ChapterHandler handles chapter-related HTTP requests
type ChapterHandler struct {
	chapterRepository repositories.ChapterRepository
	storyRepository   repositories.StoryRepository
}

// NewChapterHandler creates a new ChapterHandler
func NewChapterHandler(chapterRepo repositories.ChapterRepository, storyRepo repositories.StoryRepository) *ChapterHandler {
	return &ChapterHandler{
		chapterRepository: chapterRepo,
		storyRepository:   storyRepo,
	}
}

// RegisterChapterRoutes registers chapter-related routes
func (h *ChapterHandler) RegisterChapterRoutes(g *echo.Group) {
	g.POST("/stories/:story_id/chapters", h.CreateChapter)
	g.GET("/stories/:story_id/chapters", h.GetStoryChapters)
	g.GET("/chapters/:id", h.GetChapter)
	g.PUT("/chapters/:id", h.UpdateChapter)
	g.POST("/chapters/:id/publish", h.PublishChapter)
	g.DELETE("/chapters/:id", h.DeleteChapter)
}

// CreateChapter adds a chapter to a story the current user owns. The first
// chapter flips the story into chapter mode.
func (h *ChapterHandler) CreateChapter(c echo.Context) error {
	var req models.CreateChapterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	story, err := h.ownedStoryByID(c, c.Param("story_id"))
	if err != nil {
		return err
	}

	chapter := &models.Chapter{
		ID:        uuid.NewString(),
		StoryID:   story.ID,
		Number:    req.Number,
		Title:     req.Title,
		Content:   req.Content,
		WordCount: models.CountWords(req.Content),
	}

	if err := h.chapterRepository.CreateChapter(chapter); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict, "Chapter number already used in this story")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, chapter)
}

// GetStoryChapters returns a story's chapters in ascending number order.
// For stories the user does not own, only published chapters are included.
func (h *ChapterHandler) GetStoryChapters(c echo.Context) error {
	story, err := h.storyRepository.GetStoryByID(c.Param("story_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Story not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	isAuthor := story.AuthorID == currentUserID(c)
	if !story.Published && !isAuthor {
		return echo.NewHTTPError(http.StatusNotFound, "Story not found")
	}

	chapters, err := h.chapterRepository.GetStoryChapters(story.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if !isAuthor {
		visible := make([]models.Chapter, 0, len(chapters))
		for _, ch := range chapters {
			if ch.Published {
				visible = append(visible, ch)
			}
		}
		chapters = visible
	}

	return c.JSON(http.StatusOK, chapters)
}

// GetChapter returns a single chapter, honoring the parent story's
// visibility rules
func (h *ChapterHandler) GetChapter(c echo.Context) error {
	chapter, err := h.chapterRepository.GetChapterByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Chapter not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	story, err := h.storyRepository.GetStoryByID(chapter.StoryID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if story.AuthorID != currentUserID(c) && !chapter.Published {
		return echo.NewHTTPError(http.StatusNotFound, "Chapter not found")
	}

	return c.JSON(http.StatusOK, chapter)
}

// UpdateChapter patches a chapter's mutable fields
func (h *ChapterHandler) UpdateChapter(c echo.Context) error {
	var req models.UpdateChapterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	chapter, err := h.ownedChapter(c)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
		updates["word_count"] = models.CountWords(*req.Content)
	}
	if req.Number != nil {
		updates["number"] = *req.Number
	}

	if len(updates) == 0 {
		return c.JSON(http.StatusOK, chapter)
	}

	updated, err := h.chapterRepository.UpdateChapter(chapter.ID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict, "Chapter number already used in this story")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, updated)
}

// PublishChapter transitions a chapter to published
func (h *ChapterHandler) PublishChapter(c echo.Context) error {
	chapter, err := h.ownedChapter(c)
	if err != nil {
		return err
	}

	published, err := h.chapterRepository.PublishChapter(chapter.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, published)
}

// DeleteChapter hard-deletes a chapter; dependent highlights, bookmarks and
// quotes referencing it are cascaded away
func (h *ChapterHandler) DeleteChapter(c echo.Context) error {
	chapter, err := h.ownedChapter(c)
	if err != nil {
		return err
	}

	if err := h.chapterRepository.DeleteChapter(chapter.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// ownedChapter loads the chapter from the :id param and enforces that the
// current user owns its parent story.
func (h *ChapterHandler) ownedChapter(c echo.Context) (*models.Chapter, error) {
	chapter, err := h.chapterRepository.GetChapterByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Chapter not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if _, err := h.ownedStoryByID(c, chapter.StoryID); err != nil {
		return nil, err
	}
	return chapter, nil
}

func (h *ChapterHandler) ownedStoryByID(c echo.Context, storyID string) (*models.Story, error) {
	story, err := h.storyRepository.GetStoryByID(storyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Story not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if story.AuthorID != currentUserID(c) {
		return nil, echo.NewHTTPError(http.StatusForbidden, "Not the story's author")
	}
	return story, nil
}
