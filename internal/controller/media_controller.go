package controller

import (
	"daily_quiz_backend/internal/service"
	"daily_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MediaController struct {
	MediaService *service.MediaService
}

func NewMediaController(mediaService *service.MediaService) *MediaController {
	return &MediaController{MediaService: mediaService}
}

// Upload godoc
// @Summary Upload a media file
// @Description Accepts images and videos. Videos get probed and a thumbnail extracted.
// @Tags media
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "Media file"
// @Success 201 {object} util.Response{data=service.UploadResult}
// @Failure 400 {object} util.Response "Unsupported type or too large"
// @Router /api/media/upload [post]
func (c *MediaController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	result, err := c.MediaService.Upload(ctx.Request.Context(), fileHeader)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, result)
}

// swagger:model DeleteMediaRequest
type DeleteMediaRequest struct {
	Filename string `json:"filename" binding:"required"`
}

// Delete godoc
// @Summary Delete a stored media file
// @Tags media
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body DeleteMediaRequest true "Stored filename"
// @Success 200 {object} util.Response
// @Router /api/media [delete]
func (c *MediaController) Delete(ctx *gin.Context) {
	var req DeleteMediaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.MediaService.Delete(ctx.Request.Context(), req.Filename); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "File deleted"})
}
