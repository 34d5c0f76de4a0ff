package controller

import (
	"errors"
	"strconv"
	"time"

	"exam_prep_backend/internal/engine"
	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary 获取全部教材的进度报告
// @Tags 进度
// @Produce json
// @Param today query string false "基准日 yyyy-MM-dd，默认当天"
// @Success 200 {object} util.Response
// @Router /api/progress [get]
func (c *ProgressController) GetAllProgress(ctx *gin.Context) {
	today, ok := c.parseToday(ctx)
	if !ok {
		return
	}

	reports, err := c.ProgressService.GetAllProgress(today)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, reports)
}

// @Summary 获取单本教材的进度报告
// @Description 理想进度、实际进度、偏差、剩余日均目标及进度曲线
// @Tags 进度
// @Produce json
// @Param textbookId path int true "教材ID"
// @Param today query string false "基准日 yyyy-MM-dd，默认当天"
// @Success 200 {object} util.Response
// @Router /api/progress/{textbookId} [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("textbookId"))
	if err != nil {
		util.BadRequest(ctx, "invalid textbook id")
		return
	}

	today, ok := c.parseToday(ctx)
	if !ok {
		return
	}

	report, err := c.ProgressService.GetProgress(uint(id), today)
	if errors.Is(err, util.ErrTextbookNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, report)
}

func (c *ProgressController) parseToday(ctx *gin.Context) (time.Time, bool) {
	v := ctx.Query("today")
	if v == "" {
		return time.Now(), true
	}

	today, err := engine.ParseDate(v)
	if err != nil {
		util.BadRequest(ctx, util.ErrInvalidDate.Error())
		return time.Time{}, false
	}
	return today, true
}
