package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sable-ink/inkwell/backend/internal/repositories"
	"gorm.io/gorm"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository) *LikeHandler {
	return &LikeHandler{likeRepository: likeRepo}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/stories/:story_id/like", h.ToggleLike)
	g.GET("/stories/:story_id/likes/count", h.GetLikeCount)
	g.GET("/stories/:story_id/likes/status", h.GetLikeStatus)
}

// ToggleLike flips the current user's like on a story. Liking someone else's
// story notifies its author; unliking never does.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	result, err := h.likeRepository.ToggleLike(currentUserID(c), c.Param("story_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Story not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// GetLikeCount retrieves the total number of likes for a story
func (h *LikeHandler) GetLikeCount(c echo.Context) error {
	storyID := c.Param("story_id")
	count, err := h.likeRepository.GetLikeCount(storyID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"story_id": storyID, "likes_count": count})
}

// GetLikeStatus checks whether the current user has liked a story
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	storyID := c.Param("story_id")
	liked, err := h.likeRepository.HasUserLiked(currentUserID(c), storyID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"story_id": storyID, "liked": liked})
}
