package handler

import (
	"errors"
	"strconv"

	"marketplace-backend/internal/domains/submission"
	"marketplace-backend/internal/shared/response"
	"marketplace-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type SubmissionHandler struct {
	service submission.Service
}

func NewSubmissionHandler(svc submission.Service) *SubmissionHandler {
	return &SubmissionHandler{service: svc}
}

// List handles GET /api/submissions?limit=
func (h *SubmissionHandler) List(c *gin.Context) {
	limit := submission.DefaultLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.ParseInt(limitStr, 10, 64); err == nil && l > 0 {
			limit = l
		}
	}

	docs, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		logger.Error("list submissions failed", err)
		response.StoreUnavailable(c)
		return
	}

	response.Items(c, docs)
}

// Create handles POST /api/submissions
func (h *SubmissionHandler) Create(c *gin.Context) {
	var req submission.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ValidationFailed(c, verrs)
			return
		}
		logger.Error("create submission failed", err)
		response.StoreUnavailable(c)
		return
	}

	response.Created(c, id)
}
