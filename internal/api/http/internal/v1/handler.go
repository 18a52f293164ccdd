package v1

import (
	"github.com/vibe-gaming/profile-service/internal/service"

	"github.com/gin-gonic/gin"
)

// @title Profile Service API
// @version 1.0
// @description User profile records with unique key enforcement and invitation email.

// @BasePath /

type Handler struct {
	services *service.Services
}

func NewHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) Init(api gin.IRouter) {
	h.initUsersRoutes(api)
	h.initMailRoutes(api)
}
