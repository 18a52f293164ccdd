package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vibe-gaming/profile-service/internal/service"
	"github.com/vibe-gaming/profile-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initUsersRoutes(api gin.IRouter) {
	users := api.Group("/users")

	users.POST("/", h.createUser)
	users.GET("/:id", h.getUser)
	users.PUT("/:id", h.updateUser)
	users.DELETE("/:id", h.deleteUser)
}

type userProfileRequest struct {
	CompanyName  *string `json:"companyName" binding:"omitempty,max=100"`
	Email        *string `json:"email" binding:"omitempty,max=100"`
	Password     *string `json:"password" binding:"omitempty,max=100"`
	FirstName    *string `json:"firstName" binding:"omitempty,max=30"`
	LastName     *string `json:"lastName" binding:"omitempty,max=30"`
	MobileNumber *string `json:"mobileNumber" binding:"omitempty,max=10"`
	DateOfBirth  *string `json:"dateOfBirth" binding:"omitempty,max=20"`
	Hashtag      *string `json:"hashtag" binding:"omitempty,max=50"`
} // @name UserProfileRequest

func (r userProfileRequest) toInput() service.UserProfileInput {
	return service.UserProfileInput{
		CompanyName:  r.CompanyName,
		Email:        r.Email,
		Password:     r.Password,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		MobileNumber: r.MobileNumber,
		DateOfBirth:  r.DateOfBirth,
		Hashtag:      r.Hashtag,
	}
}

// @Summary Create user
// @Tags Users
// @Description Create a user profile unless one with the same unique key exists
// @ModuleID createUser
// @Accept  json
// @Produce  json
// @Param input body userProfileRequest true "user profile"
// @Success 200 {object} domain.UserProfile
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /users/ [post]
func (h *Handler) createUser(c *gin.Context) {
	var req userProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	profile, err := h.services.UserProfiles.Create(c.Request.Context(), req.toInput())
	if err != nil {
		userErrorResponse(c, "create user failed", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// @Summary Get user
// @Tags Users
// @Description Get a user profile by id
// @ModuleID getUser
// @Produce  json
// @Param id path int true "user id"
// @Success 200 {object} domain.UserProfile
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /users/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	profile, err := h.services.UserProfiles.GetByID(c.Request.Context(), id)
	if err != nil {
		userErrorResponse(c, "get user failed", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// @Summary Update user
// @Tags Users
// @Description Replace every attribute of a user profile except hashtag. Omitted attributes become null.
// @ModuleID updateUser
// @Accept  json
// @Produce  json
// @Param id path int true "user id"
// @Param input body userProfileRequest true "user profile"
// @Success 200 {object} domain.UserProfile
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /users/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var req userProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	profile, err := h.services.UserProfiles.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		userErrorResponse(c, "update user failed", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// @Summary Delete user
// @Tags Users
// @Description Delete a user profile and return its last state
// @ModuleID deleteUser
// @Produce  json
// @Param id path int true "user id"
// @Success 200 {object} domain.UserProfile
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	profile, err := h.services.UserProfiles.Delete(c.Request.Context(), id)
	if err != nil {
		userErrorResponse(c, "delete user failed", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func parseUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, InvalidUserIDCode)
		return 0, false
	}
	return id, true
}

func userErrorResponse(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrUserAlreadyExist):
		errorResponse(c, http.StatusBadRequest, UserAlreadyExistsCode)
	case errors.Is(err, service.ErrUserNotFound):
		errorResponse(c, http.StatusNotFound, UserNotFoundCode)
	default:
		logger.Error(msg, zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, UnknownErrorCode)
	}
}
