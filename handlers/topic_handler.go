package handlers

import (
	"net/http"

	"news-forum-api/helper"
	"news-forum-api/models"
	"news-forum-api/services"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	topicService services.TopicService
	Helper       *helper.HTTPHelper
}

func NewTopicHandler(topicService services.TopicService, h *helper.HTTPHelper) *TopicHandler {
	return &TopicHandler{topicService: topicService, Helper: h}
}

func (h *TopicHandler) GetTopics(c *gin.Context) {
	topics, err := h.topicService.GetTopics(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, "topics", topics)
}

func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var req models.CreateTopicRequest
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	topic, err := h.topicService.CreateTopic(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, "topic", topic)
}
