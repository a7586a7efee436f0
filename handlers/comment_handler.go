package handlers

import (
	"net/http"

	"news-forum-api/helper"
	"news-forum-api/models"
	"news-forum-api/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: h}
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	articleID, err := h.Helper.ParseID(c, "article_id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendError(c, models.InvalidInput("bind query: %v", err))
		return
	}

	comments, total, err := h.commentService.GetComments(c.Request.Context(), articleID, params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendList(c, "comments", comments, total)
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	articleID, err := h.Helper.ParseID(c, "article_id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	var req models.CreateCommentRequest
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), articleID, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, "comment", comment)
}

func (h *CommentHandler) UpdateCommentVotes(c *gin.Context) {
	id, err := h.Helper.ParseID(c, "comment_id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	var req models.VotesRequest
	if err := h.Helper.BindStrictJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	comment, err := h.commentService.UpdateCommentVotes(c.Request.Context(), id, *req.IncVotes)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, "comment", comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := h.Helper.ParseID(c, "comment_id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}
