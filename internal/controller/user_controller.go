package controller

import (
	"errors"

	"daily_quiz_backend/internal/service"
	"daily_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService  *service.UserService
	StatsService *service.StatsService
}

func NewUserController(userService *service.UserService, statsService *service.StatsService) *UserController {
	return &UserController{
		UserService:  userService,
		StatsService: statsService,
	}
}

// SubmitFeedback godoc
// @Summary Submit feedback
// @Tags user
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.FeedbackInput true "Rating and comment"
// @Success 201 {object} util.Response{data=model.Feedback}
// @Failure 400 {object} util.Response
// @Router /api/user/feedback [post]
func (c *UserController) SubmitFeedback(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.FeedbackInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	feedback, err := c.UserService.SubmitFeedback(claims.UserID, input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, feedback)
}

// Notifications godoc
// @Summary Current user's notifications
// @Tags user
// @Produce  json
// @Security ApiKeyAuth
// @Param   limit  query int false "Page size (default 20)"
// @Param   offset query int false "Offset (default 0)"
// @Success 200 {object} util.Response{data=service.NotificationPage}
// @Router /api/user/notifications [get]
func (c *UserController) Notifications(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit := util.ParsePositiveInt(ctx.Query("limit"), 20)
	offset := util.ParsePositiveInt(ctx.Query("offset"), 0)

	page, err := c.UserService.Notifications(claims.UserID, limit, offset)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, page)
}

// MarkNotificationRead godoc
// @Summary Mark a notification read
// @Tags user
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Notification ID"
// @Success 200 {object} util.Response
// @Router /api/user/notifications/{id}/read [put]
func (c *UserController) MarkNotificationRead(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	if err := c.UserService.MarkNotificationRead(claims.UserID, id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Notification marked as read"})
}

// MarkAllNotificationsRead godoc
// @Summary Mark all notifications read
// @Tags user
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/user/notifications/read-all [put]
func (c *UserController) MarkAllNotificationsRead(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.UserService.MarkAllNotificationsRead(claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "All notifications marked as read"})
}

// Stats godoc
// @Summary Current user's quiz statistics
// @Tags user
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.UserStats}
// @Router /api/user/stats [get]
func (c *UserController) Stats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.StatsService.UserStats(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, stats)
}
