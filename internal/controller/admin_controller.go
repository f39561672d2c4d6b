package controller

import (
	"errors"
	"time"

	"daily_quiz_backend/internal/repository"
	"daily_quiz_backend/internal/service"
	"daily_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminController covers the admin panel surface: question and catalog
// CRUD, user management, statistics and XLSX exports.
type AdminController struct {
	QuestionService *service.QuestionService
	CatalogService  *service.CatalogService
	UserService     *service.UserService
	StatsService    *service.StatsService
	QuizService     *service.QuizService
	ReportService   *service.ReportService
}

func NewAdminController(
	questionService *service.QuestionService,
	catalogService *service.CatalogService,
	userService *service.UserService,
	statsService *service.StatsService,
	quizService *service.QuizService,
	reportService *service.ReportService,
) *AdminController {
	return &AdminController{
		QuestionService: questionService,
		CatalogService:  catalogService,
		UserService:     userService,
		StatsService:    statsService,
		QuizService:     quizService,
		ReportService:   reportService,
	}
}

// Questions

// CreateQuestion godoc
// @Summary Create a question
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.QuestionInput true "Question data"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response
// @Router /api/admin/questions [post]
func (c *AdminController) CreateQuestion(ctx *gin.Context) {
	var input service.QuestionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !input.CorrectAnswer.Valid() {
		util.BadRequest(ctx, "correctAnswer must be one of A, B, C, D")
		return
	}

	question, err := c.QuestionService.Create(input)
	if err != nil {
		if errors.Is(err, util.ErrNoCategories) {
			util.BadRequest(ctx, "Category does not exist")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, question)
}

// ListQuestions godoc
// @Summary List questions
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   categoryId query int    false "Category filter"
// @Param   search     query string false "Text search"
// @Param   page       query int    false "Page (default 1)"
// @Param   limit      query int    false "Page size (default 20)"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/questions [get]
func (c *AdminController) ListQuestions(ctx *gin.Context) {
	page := util.ParsePositiveInt(ctx.Query("page"), 1)
	limit := util.ParsePositiveInt(ctx.Query("limit"), 20)

	filter := repository.QuestionFilter{
		CategoryID: uint(util.ParsePositiveInt(ctx.Query("categoryId"), 0)),
		Difficulty: util.ParsePositiveInt(ctx.Query("difficultyLevel"), 0),
		Search:     ctx.Query("search"),
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}

	questions, total, err := c.QuestionService.List(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: questions, Total: total, Page: page, Limit: limit})
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path int                   true "Question ID"
// @Param   body body service.QuestionInput true "Question data"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /api/admin/questions/{id} [put]
func (c *AdminController) UpdateQuestion(ctx *gin.Context) {
	var input service.QuestionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !input.CorrectAnswer.Valid() {
		util.BadRequest(ctx, "correctAnswer must be one of A, B, C, D")
		return
	}

	question, err := c.QuestionService.Update(util.MustParseUint(ctx.Param("id")), input)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Question ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/questions/{id} [delete]
func (c *AdminController) DeleteQuestion(ctx *gin.Context) {
	if err := c.QuestionService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, gin.H{"message": "Question deleted"})
}

// Categories

// ListCategoriesWithCounts godoc
// @Summary List categories with question counts
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.CategoryWithCount}
// @Router /api/admin/categories [get]
func (c *AdminController) ListCategoriesWithCounts(ctx *gin.Context) {
	categories, err := c.CatalogService.CategoriesWithCounts()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.CategoryInput true "Category data"
// @Success 201 {object} util.Response{data=model.Category}
// @Router /api/admin/categories [post]
func (c *AdminController) CreateCategory(ctx *gin.Context) {
	var input service.CategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.CatalogService.CreateCategory(input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path int                   true "Category ID"
// @Param   body body service.CategoryInput true "Category data"
// @Success 200 {object} util.Response{data=model.Category}
// @Failure 404 {object} util.Response
// @Router /api/admin/categories/{id} [put]
func (c *AdminController) UpdateCategory(ctx *gin.Context) {
	var input service.CategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.CatalogService.UpdateCategory(util.MustParseUint(ctx.Param("id")), input)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Category ID"
// @Success 200 {object} util.Response
// @Router /api/admin/categories/{id} [delete]
func (c *AdminController) DeleteCategory(ctx *gin.Context) {
	if err := c.CatalogService.DeleteCategory(util.MustParseUint(ctx.Param("id"))); err != nil {
		if err == util.ErrCategoryInUse {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, gin.H{"message": "Category deleted"})
}

// Positions

// CreatePosition godoc
// @Summary Create a position
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.PositionInput true "Position data"
// @Success 201 {object} util.Response{data=model.Position}
// @Router /api/admin/positions [post]
func (c *AdminController) CreatePosition(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var input service.PositionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	position, err := c.CatalogService.CreatePosition(input, claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, position)
}

// UpdatePosition godoc
// @Summary Update a position
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path int                   true "Position ID"
// @Param   body body service.PositionInput true "Position data"
// @Success 200 {object} util.Response{data=model.Position}
// @Failure 404 {object} util.Response
// @Router /api/admin/positions/{id} [put]
func (c *AdminController) UpdatePosition(ctx *gin.Context) {
	var input service.PositionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	position, err := c.CatalogService.UpdatePosition(util.MustParseUint(ctx.Param("id")), input)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, position)
}

// DeletePosition godoc
// @Summary Delete a position
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Position ID"
// @Success 200 {object} util.Response
// @Router /api/admin/positions/{id} [delete]
func (c *AdminController) DeletePosition(ctx *gin.Context) {
	if err := c.CatalogService.DeletePosition(util.MustParseUint(ctx.Param("id"))); err != nil {
		if err == util.ErrPositionInUse {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, gin.H{"message": "Position deleted"})
}

// Cities

// CreateCity godoc
// @Summary Create a city
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.CityInput true "City data"
// @Success 201 {object} util.Response{data=model.City}
// @Router /api/admin/cities [post]
func (c *AdminController) CreateCity(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var input service.CityInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	city, err := c.CatalogService.CreateCity(input, claims.UserID)
	if err != nil {
		if err == util.ErrCityExists {
			util.Conflict(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, city)
}

// UpdateCity godoc
// @Summary Update a city
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path int               true "City ID"
// @Param   body body service.CityInput true "City data"
// @Success 200 {object} util.Response{data=model.City}
// @Failure 404 {object} util.Response
// @Router /api/admin/cities/{id} [put]
func (c *AdminController) UpdateCity(ctx *gin.Context) {
	var input service.CityInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	city, err := c.CatalogService.UpdateCity(util.MustParseUint(ctx.Param("id")), input)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, city)
}

// DeleteCity godoc
// @Summary Delete a city
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "City ID"
// @Success 200 {object} util.Response
// @Router /api/admin/cities/{id} [delete]
func (c *AdminController) DeleteCity(ctx *gin.Context) {
	if err := c.CatalogService.DeleteCity(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, gin.H{"message": "City deleted"})
}

// Institutions

// CreateInstitution godoc
// @Summary Create an institution
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.InstitutionInput true "Institution data"
// @Success 201 {object} util.Response{data=model.Institution}
// @Router /api/admin/institutions [post]
func (c *AdminController) CreateInstitution(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var input service.InstitutionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	institution, err := c.CatalogService.CreateInstitution(input, claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, institution)
}

// UpdateInstitution godoc
// @Summary Update an institution
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path int                      true "Institution ID"
// @Param   body body service.InstitutionInput true "Institution data"
// @Success 200 {object} util.Response{data=model.Institution}
// @Failure 404 {object} util.Response
// @Router /api/admin/institutions/{id} [put]
func (c *AdminController) UpdateInstitution(ctx *gin.Context) {
	var input service.InstitutionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	institution, err := c.CatalogService.UpdateInstitution(util.MustParseUint(ctx.Param("id")), input)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, institution)
}

// DeleteInstitution godoc
// @Summary Delete an institution
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Institution ID"
// @Success 200 {object} util.Response
// @Router /api/admin/institutions/{id} [delete]
func (c *AdminController) DeleteInstitution(ctx *gin.Context) {
	if err := c.CatalogService.DeleteInstitution(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, gin.H{"message": "Institution deleted"})
}

// Users

// ListUsers godoc
// @Summary List user accounts
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   search query string false "Name or username search"
// @Param   city   query string false "City filter"
// @Param   page   query int    false "Page (default 1)"
// @Param   limit  query int    false "Page size (default 20)"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	page := util.ParsePositiveInt(ctx.Query("page"), 1)
	limit := util.ParsePositiveInt(ctx.Query("limit"), 20)

	filter := repository.UserFilter{
		Search:     ctx.Query("search"),
		City:       ctx.Query("city"),
		PositionID: uint(util.ParsePositiveInt(ctx.Query("positionId"), 0)),
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}

	users, total, err := c.UserService.List(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

// swagger:model SetActiveRequest
type SetActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// SetUserActive godoc
// @Summary Activate or deactivate a user
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path int              true "User ID"
// @Param   body body SetActiveRequest true "Target state"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id}/active [put]
func (c *AdminController) SetUserActive(ctx *gin.Context) {
	var req SetActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.SetActive(util.MustParseUint(ctx.Param("id")), *req.IsActive); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, gin.H{"message": "User updated"})
}

// ListFeedback godoc
// @Summary List submitted feedback
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   page  query int false "Page (default 1)"
// @Param   limit query int false "Page size (default 20)"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/feedback [get]
func (c *AdminController) ListFeedback(ctx *gin.Context) {
	page := util.ParsePositiveInt(ctx.Query("page"), 1)
	limit := util.ParsePositiveInt(ctx.Query("limit"), 20)

	items, total, err := c.UserService.ListFeedback(limit, (page-1)*limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: items, Total: total, Page: page, Limit: limit})
}

// swagger:model AnnounceRequest
type AnnounceRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Message string `json:"message" binding:"required,max=1000"`
}

// Announce godoc
// @Summary Broadcast a notification to all active players
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body AnnounceRequest true "Announcement"
// @Success 200 {object} util.Response{data=object}
// @Router /api/admin/announce [post]
func (c *AdminController) Announce(ctx *gin.Context) {
	var req AnnounceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	count, err := c.UserService.Announce(req.Title, req.Message)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"notified": count})
}

// Stats

// Dashboard godoc
// @Summary Admin dashboard statistics
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.DashboardStats}
// @Router /api/admin/stats/dashboard [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	stats, err := c.StatsService.Dashboard()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// UserStats godoc
// @Summary Quiz statistics for one user
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "User ID"
// @Success 200 {object} util.Response{data=service.UserStats}
// @Failure 404 {object} util.Response
// @Router /api/admin/stats/users/{id} [get]
func (c *AdminController) UserStats(ctx *gin.Context) {
	stats, err := c.StatsService.UserStats(util.MustParseUint(ctx.Param("id")))
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

// PlayerStats godoc
// @Summary Ranked player statistics
// @Description Ranks active players by total score. The period filter applies to account creation date.
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   period query string false "hour, week, month or all (default all)"
// @Param   page   query int    false "Page (default 1)"
// @Param   limit  query int    false "Page size (default 20)"
// @Success 200 {object} util.Response{data=service.PlayerStatsPage}
// @Router /api/admin/stats/players [get]
func (c *AdminController) PlayerStats(ctx *gin.Context) {
	period := ctx.DefaultQuery("period", "all")
	page := util.ParsePositiveInt(ctx.Query("page"), 1)
	limit := util.ParsePositiveInt(ctx.Query("limit"), 20)

	stats, err := c.StatsService.RankPlayers(period, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// PlayerCharts godoc
// @Summary Player statistics chart data
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   period query string false "hour, week, month or all (default all)"
// @Success 200 {object} util.Response{data=service.PlayerCharts}
// @Router /api/admin/stats/players/charts [get]
func (c *AdminController) PlayerCharts(ctx *gin.Context) {
	period := ctx.DefaultQuery("period", "all")

	charts, err := c.StatsService.Charts(period)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, charts)
}

// Quiz management

// GenerateQuiz godoc
// @Summary Manually trigger today's quiz generation
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.DailyQuiz}
// @Failure 503 {object} util.Response "Not enough active questions"
// @Router /api/admin/quiz/generate [post]
func (c *AdminController) GenerateQuiz(ctx *gin.Context) {
	quiz, err := c.QuizService.GenerateDailyQuiz(time.Now())
	if err != nil {
		if errors.Is(err, util.ErrNoCategories) || errors.Is(err, util.ErrInsufficientQuestions) {
			util.Error(ctx, 503, "Not enough active questions to build a quiz")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	if err := c.QuizService.NotifyQuizAvailable(quiz); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, quiz)
}

// Reports

// UsersReport godoc
// @Summary Export users as XLSX
// @Tags admin
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Success 200 {file} binary
// @Router /api/admin/reports/users [get]
func (c *AdminController) UsersReport(ctx *gin.Context) {
	buf, err := c.ReportService.UsersReport()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename=users_report.xlsx")
	ctx.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// QuizReport godoc
// @Summary Export quiz participation as XLSX
// @Tags admin
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Param   startDate query string false "Start date (YYYY-MM-DD)"
// @Param   endDate   query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Router /api/admin/reports/quizzes [get]
func (c *AdminController) QuizReport(ctx *gin.Context) {
	var startDate, endDate *time.Time
	if s := ctx.Query("startDate"); s != "" {
		if t, err := time.ParseInLocation(util.DateFormat, s, time.Local); err == nil {
			startDate = &t
		}
	}
	if s := ctx.Query("endDate"); s != "" {
		if t, err := time.ParseInLocation(util.DateFormat, s, time.Local); err == nil {
			endDate = &t
		}
	}

	buf, err := c.ReportService.QuizReport(startDate, endDate)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename=quiz_report.xlsx")
	ctx.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
