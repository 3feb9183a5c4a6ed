package handler

import (
	"strconv"

	"marketplace-backend/internal/domains/activity"
	"marketplace-backend/internal/shared/response"
	"marketplace-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	service activity.Service
}

func NewActivityHandler(svc activity.Service) *ActivityHandler {
	return &ActivityHandler{service: svc}
}

// List handles GET /api/activity?limit=
func (h *ActivityHandler) List(c *gin.Context) {
	limit := activity.DefaultLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.ParseInt(limitStr, 10, 64); err == nil && l > 0 {
			limit = l
		}
	}

	docs, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		logger.Error("list activity failed", err)
		response.StoreUnavailable(c)
		return
	}

	response.Items(c, docs)
}
