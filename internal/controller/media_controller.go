package controller

import (
	"errors"
	"os"
	"path/filepath"

	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaController struct {
	MediaService *service.MediaService
}

func NewMediaController(mediaService *service.MediaService) *MediaController {
	return &MediaController{MediaService: mediaService}
}

// @Summary 上传闪卡媒体图片
// @Description 非网页友好格式（webp/bmp/tiff等）会先转成JPEG再入库
// @Tags 闪卡媒体
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "图片文件"
// @Success 201 {object} util.Response
// @Router /api/anki/media [post]
func (c *MediaController) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := ctx.SaveUploadedFile(file, tmpPath); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer os.Remove(tmpPath)

	media, err := c.MediaService.UploadImage(ctx.Request.Context(), tmpPath, file.Filename)
	if err != nil {
		if errors.Is(err, util.ErrUnsupportedMediaType) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, media)
}

// @Summary 获取媒体列表
// @Tags 闪卡媒体
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/anki/media [get]
func (c *MediaController) GetMediaList(ctx *gin.Context) {
	list, err := c.MediaService.GetMediaList()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// @Summary 删除媒体
// @Tags 闪卡媒体
// @Produce json
// @Param id path string true "媒体ID"
// @Success 200 {object} util.Response
// @Router /api/anki/media/{id} [delete]
func (c *MediaController) DeleteMedia(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.MediaService.DeleteMedia(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
