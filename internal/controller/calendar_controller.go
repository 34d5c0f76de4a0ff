package controller

import (
	"strconv"
	"time"

	"exam_prep_backend/internal/engine"
	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CalendarController struct {
	CalendarService *service.CalendarService
}

func NewCalendarController(calendarService *service.CalendarService) *CalendarController {
	return &CalendarController{CalendarService: calendarService}
}

// @Summary 获取日历布局
// @Description 把时间轴事件换算为给定容器宽度下的绘制坐标。daily 为滚动窗口，yearly 为学年窗口
// @Tags 日历
// @Produce json
// @Param resolution query string false "daily 或 yearly，默认 daily"
// @Param width query number true "容器宽度（像素）"
// @Param today query string false "基准日 yyyy-MM-dd，默认当天"
// @Success 200 {object} util.Response
// @Router /api/calendar/layout [get]
func (c *CalendarController) GetLayout(ctx *gin.Context) {
	resolution := ctx.DefaultQuery("resolution", string(engine.ResolutionDaily))
	if resolution != string(engine.ResolutionDaily) && resolution != string(engine.ResolutionYearly) {
		util.BadRequest(ctx, "resolution must be daily or yearly")
		return
	}

	width, err := strconv.ParseFloat(ctx.Query("width"), 64)
	if err != nil || width <= 0 {
		util.BadRequest(ctx, "width must be a positive number")
		return
	}

	today := time.Now()
	if v := ctx.Query("today"); v != "" {
		parsed, err := engine.ParseDate(v)
		if err != nil {
			util.BadRequest(ctx, util.ErrInvalidDate.Error())
			return
		}
		today = parsed
	}

	layout, err := c.CalendarService.GetLayout(resolution, width, today)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, layout)
}
