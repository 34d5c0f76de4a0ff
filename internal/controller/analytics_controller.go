package controller

import (
	"strconv"
	"time"

	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// @Summary 获取年度刷题热力图
// @Description 一整年每天的刷题量，全年日期连续输出（无记录的天为0）
// @Tags 统计
// @Produce json
// @Param year query int false "年份，默认当年"
// @Param textbookId query int false "教材ID，不传则统计全部教材"
// @Success 200 {object} util.Response
// @Router /api/analytics/heatmap [get]
func (c *AnalyticsController) GetHeatmap(ctx *gin.Context) {
	year := time.Now().Year()
	if v := ctx.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			util.BadRequest(ctx, "invalid year")
			return
		}
		year = parsed
	}

	var textbookID int
	if v := ctx.Query("textbookId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			util.BadRequest(ctx, "invalid textbook id")
			return
		}
		textbookID = id
	}

	heatmap, err := c.AnalyticsService.GetYearHeatmap(year, uint(textbookID))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, heatmap)
}
