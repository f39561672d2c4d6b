package controller

import (
	"errors"

	"daily_quiz_backend/internal/service"
	"daily_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// GetToday godoc
// @Summary Today's quiz
// @Description Returns today's quiz, generating it on first request. Completed players get their result instead of the question list.
// @Tags quiz
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.TodayQuizView}
// @Failure 503 {object} util.Response "Quiz cannot be generated"
// @Router /api/quiz/today [get]
func (c *QuizController) GetToday(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.QuizService.GetTodayQuiz(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrNoCategories) || errors.Is(err, util.ErrInsufficientQuestions) {
			util.Error(ctx, 503, "Today's quiz is not available yet")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, view)
}

// Submit godoc
// @Summary Submit quiz answers
// @Description Grades the answer sheet. One submission per quiz, before the deadline.
// @Tags quiz
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.SubmitInput true "Quiz ID and ordered answers"
// @Success 200 {object} util.Response{data=service.AttemptResult}
// @Failure 400 {object} util.Response "Answer count mismatch or invalid option"
// @Failure 404 {object} util.Response "Quiz not found"
// @Failure 409 {object} util.Response "Already completed"
// @Failure 410 {object} util.Response "Deadline passed"
// @Router /api/quiz/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.SubmitInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.Submit(claims.UserID, input)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrQuizAlreadyCompleted):
			util.Conflict(ctx, "Quiz already completed")
		case errors.Is(err, util.ErrDeadlinePassed):
			util.Error(ctx, 410, "Quiz deadline has passed")
		case errors.Is(err, util.ErrAnswerCountMismatch):
			util.BadRequest(ctx, "Answers do not match quiz questions")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// GetResult godoc
// @Summary Result of a completed attempt
// @Tags quiz
// @Produce  json
// @Security ApiKeyAuth
// @Param   quizId path int true "Quiz ID"
// @Success 200 {object} util.Response{data=service.AttemptResult}
// @Failure 404 {object} util.Response "No completed attempt for this quiz"
// @Router /api/quiz/result/{quizId} [get]
func (c *QuizController) GetResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quizID := util.MustParseUint(ctx.Param("quizId"))
	result, err := c.QuizService.GetResult(claims.UserID, quizID)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) || errors.Is(err, util.ErrAttemptNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// History godoc
// @Summary Player's quiz history
// @Tags quiz
// @Produce  json
// @Security ApiKeyAuth
// @Param   page  query int false "Page (default 1)"
// @Param   limit query int false "Page size (default 20)"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/quiz/history [get]
func (c *QuizController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page := util.ParsePositiveInt(ctx.Query("page"), 1)
	limit := util.ParsePositiveInt(ctx.Query("limit"), 20)

	entries, total, err := c.QuizService.History(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  entries,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Leaderboard godoc
// @Summary Top players by total score
// @Tags quiz
// @Produce  json
// @Security ApiKeyAuth
// @Param   limit query int false "Number of rows (default 20)"
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry}
// @Router /api/quiz/leaderboard [get]
func (c *QuizController) Leaderboard(ctx *gin.Context) {
	limit := util.ParsePositiveInt(ctx.Query("limit"), 20)

	entries, err := c.QuizService.Leaderboard(ctx.Request.Context(), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}
