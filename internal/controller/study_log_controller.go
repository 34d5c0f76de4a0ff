package controller

import (
	"errors"
	"strconv"

	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StudyLogController struct {
	StudyLogService *service.StudyLogService
}

func NewStudyLogController(studyLogService *service.StudyLogService) *StudyLogController {
	return &StudyLogController{StudyLogService: studyLogService}
}

// @Summary 获取学习记录
// @Description 可按教材筛选
// @Tags 学习记录
// @Produce json
// @Param textbookId query int false "教材ID"
// @Success 200 {object} util.Response
// @Router /api/study-logs [get]
func (c *StudyLogController) GetLogs(ctx *gin.Context) {
	var textbookID int
	if v := ctx.Query("textbookId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			util.BadRequest(ctx, "invalid textbook id")
			return
		}
		textbookID = id
	}

	logs, err := c.StudyLogService.GetLogs(uint(textbookID))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, logs)
}

// @Summary 记录当天学习量
// @Description 同一教材同一天重复提交会覆盖旧记录
// @Tags 学习记录
// @Accept json
// @Produce json
// @Param body body service.StudyLogRequest true "学习记录"
// @Success 200 {object} util.Response
// @Router /api/study-logs [post]
func (c *StudyLogController) UpsertLog(ctx *gin.Context) {
	var req service.StudyLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	log, err := c.StudyLogService.UpsertLog(&req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidDate):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrTextbookNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, log)
}

// @Summary 删除学习记录
// @Tags 学习记录
// @Produce json
// @Param id path int true "记录ID"
// @Success 200 {object} util.Response
// @Router /api/study-logs/{id} [delete]
func (c *StudyLogController) DeleteLog(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid log id")
		return
	}

	if err := c.StudyLogService.DeleteLog(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
