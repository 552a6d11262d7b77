package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mchadwick/parley/internal/domain"
	"github.com/mchadwick/parley/web/src/templates/pages"
)

// TopicHandler handles the topic listing page.
type TopicHandler struct {
	topics domain.TopicRepository
}

// NewTopicHandler creates a new TopicHandler.
func NewTopicHandler(topics domain.TopicRepository) *TopicHandler {
	return &TopicHandler{topics: topics}
}

// TopicsGet renders the topic listing, filtered by the q query.
func (h *TopicHandler) TopicsGet(c echo.Context) error {
	q := c.QueryParam("q")
	topics, err := h.topics.Search(c.Request().Context(), q)
	if err != nil {
		return err
	}
	data := pages.TopicsData{Query: q, Topics: topics}
	return renderPage(c, http.StatusOK, "Topics", pages.Topics(data))
}
