package handler

import (
	"errors"
	"strconv"

	"marketplace-backend/internal/domains/listing"
	"marketplace-backend/internal/shared/response"
	"marketplace-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ListingHandler struct {
	service listing.Service
}

func NewListingHandler(svc listing.Service) *ListingHandler {
	return &ListingHandler{service: svc}
}

// List handles GET /api/listings?q=&category=&limit=
func (h *ListingHandler) List(c *gin.Context) {
	opts := listing.ListOptions{
		Term:     c.Query("q"),
		Category: c.Query("category"),
		Limit:    listing.DefaultLimit,
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.ParseInt(limitStr, 10, 64); err == nil && l > 0 {
			opts.Limit = l
		}
	}

	docs, err := h.service.List(c.Request.Context(), opts)
	if err != nil {
		logger.Error("list listings failed", err)
		response.StoreUnavailable(c)
		return
	}

	response.Items(c, docs)
}

// Create handles POST /api/listings
func (h *ListingHandler) Create(c *gin.Context) {
	var req listing.CreateListingRequest
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
		logger.Error("create listing failed", err)
		response.StoreUnavailable(c)
		return
	}

	response.Created(c, id)
}
