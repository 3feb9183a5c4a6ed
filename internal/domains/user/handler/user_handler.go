package handler

import (
	"errors"

	"marketplace-backend/internal/domains/user"
	"marketplace-backend/internal/shared/response"
	"marketplace-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// Create handles POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
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
		logger.Error("create user failed", err)
		response.StoreUnavailable(c)
		return
	}

	response.Created(c, id)
}
