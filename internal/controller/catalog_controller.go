package controller

import (
	"daily_quiz_backend/internal/model"
	"daily_quiz_backend/internal/repository"
	"daily_quiz_backend/internal/service"
	"daily_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the reference data endpoints players browse:
// positions (with their practice questions), cities, institutions and
// categories.
type CatalogController struct {
	CatalogService  *service.CatalogService
	QuestionService *service.QuestionService
}

func NewCatalogController(catalogService *service.CatalogService, questionService *service.QuestionService) *CatalogController {
	return &CatalogController{
		CatalogService:  catalogService,
		QuestionService: questionService,
	}
}

// ListPositions godoc
// @Summary List positions
// @Tags catalog
// @Produce  json
// @Security ApiKeyAuth
// @Param   category query string false "Filter by position category"
// @Success 200 {object} util.Response{data=[]model.Position}
// @Router /api/positions [get]
func (c *CatalogController) ListPositions(ctx *gin.Context) {
	positions, err := c.CatalogService.Positions(model.PositionCategory(ctx.Query("category")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, positions)
}

// GetPosition godoc
// @Summary Position by ID
// @Tags catalog
// @Produce  json
// @Security ApiKeyAuth
// @Param   positionId path int true "Position ID"
// @Success 200 {object} util.Response{data=model.Position}
// @Failure 404 {object} util.Response
// @Router /api/positions/{positionId} [get]
func (c *CatalogController) GetPosition(ctx *gin.Context) {
	position, err := c.CatalogService.Position(util.MustParseUint(ctx.Param("positionId")))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, position)
}

// PositionQuestions godoc
// @Summary Practice questions for a position
// @Tags catalog
// @Produce  json
// @Security ApiKeyAuth
// @Param   positionId path int true "Position ID"
// @Param   page  query int false "Page (default 1)"
// @Param   limit query int false "Page size (default 50)"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/positions/{positionId}/questions [get]
func (c *CatalogController) PositionQuestions(ctx *gin.Context) {
	positionID := util.MustParseUint(ctx.Param("positionId"))
	page := util.ParsePositiveInt(ctx.Query("page"), 1)
	limit := util.ParsePositiveInt(ctx.Query("limit"), 50)

	active := true
	questions, total, err := c.QuestionService.ForPosition(positionID, repository.QuestionFilter{
		IsActive: &active,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{List: questions, Total: total, Page: page, Limit: limit})
}

// PositionRandomQuestions godoc
// @Summary Random practice questions for a position
// @Tags catalog
// @Produce  json
// @Security ApiKeyAuth
// @Param   positionId path int true "Position ID"
// @Param   count query int false "Number of questions (default 5)"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /api/positions/{positionId}/questions/random [get]
func (c *CatalogController) PositionRandomQuestions(ctx *gin.Context) {
	positionID := util.MustParseUint(ctx.Param("positionId"))
	count := util.ParsePositiveInt(ctx.Query("count"), 5)

	questions, err := c.QuestionService.RandomForPosition(positionID, count)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// MyPositionQuestions godoc
// @Summary Practice questions for the current user's position
// @Tags catalog
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "User has no position"
// @Router /api/positions/me/questions [get]
func (c *CatalogController) MyPositionQuestions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	active := true
	position, questions, total, err := c.QuestionService.ForUser(claims.UserID, repository.QuestionFilter{
		IsActive: &active,
		Limit:    100,
	})
	if err != nil {
		util.BadRequest(ctx, "User position not found")
		return
	}

	util.Success(ctx, gin.H{
		"position":  position,
		"questions": questions,
		"total":     total,
	})
}

// ListCities godoc
// @Summary List cities
// @Tags catalog
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.City}
// @Router /api/cities [get]
func (c *CatalogController) ListCities(ctx *gin.Context) {
	cities, err := c.CatalogService.Cities()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, cities)
}

// ListInstitutions godoc
// @Summary List institutions, optionally by city
// @Tags catalog
// @Produce  json
// @Security ApiKeyAuth
// @Param   cityId query int false "City filter"
// @Success 200 {object} util.Response{data=[]model.Institution}
// @Router /api/institutions [get]
func (c *CatalogController) ListInstitutions(ctx *gin.Context) {
	cityID := uint(util.ParsePositiveInt(ctx.Query("cityId"), 0))
	institutions, err := c.CatalogService.Institutions(cityID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, institutions)
}

// ListCategories godoc
// @Summary List question categories
// @Tags catalog
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Category}
// @Router /api/categories [get]
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	categories, err := c.CatalogService.Categories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}
