package handlers

import (
	"net/http"

	"news-forum-api/helper"
	"news-forum-api/models"
	"news-forum-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendError(c, models.InvalidInput("bind query: %v", err))
		return
	}

	articles, total, err := h.articleService.GetArticles(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendList(c, "articles", articles, total)
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, "article", article)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := h.Helper.ParseID(c, "article_id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, "article", article)
}

func (h *ArticleHandler) UpdateArticleVotes(c *gin.Context) {
	id, err := h.Helper.ParseID(c, "article_id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	var req models.VotesRequest
	if err := h.Helper.BindStrictJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	article, err := h.articleService.UpdateArticleVotes(c.Request.Context(), id, *req.IncVotes)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, "article", article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := h.Helper.ParseID(c, "article_id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}
