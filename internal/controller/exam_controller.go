package controller

import (
	"errors"
	"strconv"

	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	ExamService     *service.ExamService
	TimelineService *service.TimelineService
}

func NewExamController(examService *service.ExamService, timelineService *service.TimelineService) *ExamController {
	return &ExamController{
		ExamService:     examService,
		TimelineService: timelineService,
	}
}

// @Summary 获取考试列表
// @Description 包含正式考试和模拟考试
// @Tags 考试
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/exams [get]
func (c *ExamController) GetExams(ctx *gin.Context) {
	exams, err := c.ExamService.GetExams()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, exams)
}

// @Summary 获取考试详情
// @Tags 考试
// @Produce json
// @Param id path int true "考试ID"
// @Success 200 {object} util.Response
// @Router /api/exams/{id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid exam id")
		return
	}

	exam, err := c.ExamService.GetExam(uint(id))
	if errors.Is(err, util.ErrExamNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, exam)
}

// @Summary 创建考试
// @Tags 考试
// @Accept json
// @Produce json
// @Param body body service.ExamRequest true "考试信息"
// @Success 201 {object} util.Response
// @Router /api/exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req service.ExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.ExamService.CreateExam(&req)
	if err != nil {
		c.writeExamError(ctx, err)
		return
	}

	c.TimelineService.InvalidateCache()
	util.Created(ctx, exam)
}

// @Summary 更新考试
// @Tags 考试
// @Accept json
// @Produce json
// @Param id path int true "考试ID"
// @Param body body service.ExamRequest true "考试信息"
// @Success 200 {object} util.Response
// @Router /api/exams/{id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid exam id")
		return
	}

	var req service.ExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.ExamService.UpdateExam(uint(id), &req)
	if err != nil {
		c.writeExamError(ctx, err)
		return
	}

	c.TimelineService.InvalidateCache()
	util.Success(ctx, exam)
}

// @Summary 删除考试
// @Tags 考试
// @Produce json
// @Param id path int true "考试ID"
// @Success 200 {object} util.Response
// @Router /api/exams/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid exam id")
		return
	}

	if err := c.ExamService.DeleteExam(uint(id)); err != nil {
		if errors.Is(err, util.ErrExamNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	c.TimelineService.InvalidateCache()
	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary 获取志愿校列表
// @Tags 志愿校
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/universities [get]
func (c *ExamController) GetUniversities(ctx *gin.Context) {
	universities, err := c.ExamService.GetUniversities()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, universities)
}

// @Summary 创建志愿校
// @Tags 志愿校
// @Accept json
// @Produce json
// @Param body body model.University true "志愿校信息"
// @Success 201 {object} util.Response
// @Router /api/universities [post]
func (c *ExamController) CreateUniversity(ctx *gin.Context) {
	var university model.University
	if err := ctx.ShouldBindJSON(&university); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ExamService.CreateUniversity(&university); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, university)
}

// @Summary 更新志愿校
// @Tags 志愿校
// @Accept json
// @Produce json
// @Param id path int true "志愿校ID"
// @Param body body model.University true "志愿校信息"
// @Success 200 {object} util.Response
// @Router /api/universities/{id} [put]
func (c *ExamController) UpdateUniversity(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid university id")
		return
	}

	var university model.University
	if err := ctx.ShouldBindJSON(&university); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	university.ID = uint(id)

	if err := c.ExamService.UpdateUniversity(&university); err != nil {
		if errors.Is(err, util.ErrUniversityNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, university)
}

// @Summary 删除志愿校
// @Tags 志愿校
// @Produce json
// @Param id path int true "志愿校ID"
// @Success 200 {object} util.Response
// @Router /api/universities/{id} [delete]
func (c *ExamController) DeleteUniversity(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid university id")
		return
	}

	if err := c.ExamService.DeleteUniversity(uint(id)); err != nil {
		if errors.Is(err, util.ErrUniversityNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

func (c *ExamController) writeExamError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrInvalidDate):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrExamNotFound), errors.Is(err, util.ErrUniversityNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
