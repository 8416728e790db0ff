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

// BookmarkHandler handles bookmark-related HTTP requests
type BookmarkHandler struct {
	bookmarkRepository repositories.BookmarkRepository
}

// NewBookmarkHandler creates a new BookmarkHandler
func NewBookmarkHandler(bookmarkRepo repositories.BookmarkRepository) *BookmarkHandler {
	return &BookmarkHandler{bookmarkRepository: bookmarkRepo}
}

// RegisterBookmarkRoutes registers bookmark-related routes
func (h *BookmarkHandler) RegisterBookmarkRoutes(g *echo.Group) {
	g.POST("/bookmarks", h.CreateBookmark)
	g.GET("/bookmarks", h.GetMyBookmarks)
	g.GET("/stories/:story_id/bookmark", h.GetBookmark)
	g.DELETE("/stories/:story_id/bookmark", h.DeleteBookmark)
}

// CreateBookmark creates or refreshes the current user's bookmark on a
// story. A second call for the same story touches the existing row instead
// of inserting.
func (h *BookmarkHandler) CreateBookmark(c echo.Context) error {
	var req models.CreateBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	bookmark := &models.Bookmark{
		ID:        uuid.NewString(),
		UserID:    currentUserID(c),
		StoryID:   req.StoryID,
		ChapterID: req.ChapterID,
		Position:  req.Position,
		Note:      req.Note,
	}

	saved, err := h.bookmarkRepository.UpsertBookmark(bookmark)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, saved)
}

// GetMyBookmarks lists the current user's bookmarks with their stories
func (h *BookmarkHandler) GetMyBookmarks(c echo.Context) error {
	bookmarks, err := h.bookmarkRepository.GetUserBookmarks(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, bookmarks)
}

// GetBookmark retrieves the current user's bookmark for one story
func (h *BookmarkHandler) GetBookmark(c echo.Context) error {
	bookmark, err := h.bookmarkRepository.GetBookmark(currentUserID(c), c.Param("story_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Bookmark not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, bookmark)
}

// DeleteBookmark removes the current user's bookmark for one story
func (h *BookmarkHandler) DeleteBookmark(c echo.Context) error {
	err := h.bookmarkRepository.DeleteBookmark(currentUserID(c), c.Param("story_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Bookmark not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
