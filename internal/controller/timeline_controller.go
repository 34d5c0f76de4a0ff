package controller

import (
	"errors"

	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TimelineController struct {
	TimelineService *service.TimelineService
}

func NewTimelineController(timelineService *service.TimelineService) *TimelineController {
	return &TimelineController{TimelineService: timelineService}
}

// @Summary 获取时间轴
// @Description 学习计划、正式考试、模拟考试聚合为按开始日期排序的事件流。from/to 需成对给出
// @Tags 时间轴
// @Produce json
// @Param from query string false "窗口起始日 yyyy-MM-dd"
// @Param to query string false "窗口结束日 yyyy-MM-dd"
// @Success 200 {object} util.Response
// @Router /api/timeline [get]
func (c *TimelineController) GetTimeline(ctx *gin.Context) {
	events, err := c.TimelineService.GetTimeline(ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		if errors.Is(err, util.ErrInvalidDate) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, events)
}
