package controller

import (
	"errors"
	"strconv"

	"exam_prep_backend/internal/engine"
	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ScheduleController struct {
	ScheduleService *service.ScheduleService
	TimelineService *service.TimelineService
}

func NewScheduleController(scheduleService *service.ScheduleService, timelineService *service.TimelineService) *ScheduleController {
	return &ScheduleController{
		ScheduleService: scheduleService,
		TimelineService: timelineService,
	}
}

// @Summary 获取学习计划列表
// @Tags 学习计划
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/schedules [get]
func (c *ScheduleController) GetSchedules(ctx *gin.Context) {
	schedules, err := c.ScheduleService.GetSchedules()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, schedules)
}

// @Summary 获取学习计划详情
// @Tags 学习计划
// @Produce json
// @Param id path int true "计划ID"
// @Success 200 {object} util.Response
// @Router /api/schedules/{id} [get]
func (c *ScheduleController) GetSchedule(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid schedule id")
		return
	}

	schedule, err := c.ScheduleService.GetSchedule(uint(id))
	if errors.Is(err, util.ErrScheduleNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, schedule)
}

// @Summary 预览结束日
// @Description 按周配额推算结束日，不保存。配额全为0时返回400
// @Tags 学习计划
// @Accept json
// @Produce json
// @Param body body service.ScheduleRequest true "计划参数"
// @Success 200 {object} util.Response
// @Router /api/schedules/resolve [post]
func (c *ScheduleController) ResolveSchedule(ctx *gin.Context) {
	var req service.ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resolved, err := c.ScheduleService.Resolve(&req)
	if err != nil {
		c.writeResolveError(ctx, err)
		return
	}
	util.Success(ctx, resolved)
}

// @Summary 创建学习计划
// @Description 结束日由求解器按周配额自动计算
// @Tags 学习计划
// @Accept json
// @Produce json
// @Param body body service.ScheduleRequest true "计划参数"
// @Success 201 {object} util.Response
// @Router /api/schedules [post]
func (c *ScheduleController) CreateSchedule(ctx *gin.Context) {
	var req service.ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	schedule, err := c.ScheduleService.CreateSchedule(&req)
	if err != nil {
		c.writeResolveError(ctx, err)
		return
	}

	c.TimelineService.InvalidateCache()
	util.Created(ctx, schedule)
}

// @Summary 更新学习计划
// @Tags 学习计划
// @Accept json
// @Produce json
// @Param id path int true "计划ID"
// @Param body body service.ScheduleRequest true "计划参数"
// @Success 200 {object} util.Response
// @Router /api/schedules/{id} [put]
func (c *ScheduleController) UpdateSchedule(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid schedule id")
		return
	}

	var req service.ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	schedule, err := c.ScheduleService.UpdateSchedule(uint(id), &req)
	if errors.Is(err, util.ErrScheduleNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		c.writeResolveError(ctx, err)
		return
	}

	c.TimelineService.InvalidateCache()
	util.Success(ctx, schedule)
}

// @Summary 删除学习计划
// @Tags 学习计划
// @Produce json
// @Param id path int true "计划ID"
// @Success 200 {object} util.Response
// @Router /api/schedules/{id} [delete]
func (c *ScheduleController) DeleteSchedule(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid schedule id")
		return
	}

	if err := c.ScheduleService.DeleteSchedule(uint(id)); err != nil {
		if errors.Is(err, util.ErrScheduleNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	c.TimelineService.InvalidateCache()
	util.Success(ctx, gin.H{"deleted": true})
}

func (c *ScheduleController) writeResolveError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, engine.ErrZeroWeeklyQuota):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidDate):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrTextbookNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
