package handlers

import (
	"net/http"

	"news-forum-api/helper"
	"news-forum-api/services"

	"github.com/gin-gonic/gin"
)

type APIHandler struct {
	endpointService services.EndpointService
	Helper          *helper.HTTPHelper
}

func NewAPIHandler(endpointService services.EndpointService, h *helper.HTTPHelper) *APIHandler {
	return &APIHandler{endpointService: endpointService, Helper: h}
}

func (h *APIHandler) GetAPI(c *gin.Context) {
	h.Helper.SendSuccess(c, http.StatusOK, "endpoints", h.endpointService.GetEndpoints())
}
