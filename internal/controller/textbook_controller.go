package controller

import (
	"errors"
	"strconv"

	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/service"
	"exam_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TextbookController struct {
	TextbookService *service.TextbookService
}

func NewTextbookController(textbookService *service.TextbookService) *TextbookController {
	return &TextbookController{TextbookService: textbookService}
}

// @Summary 获取教材列表
// @Description 可按科目筛选
// @Tags 教材
// @Produce json
// @Param subject query string false "科目"
// @Success 200 {object} util.Response
// @Router /api/textbooks [get]
func (c *TextbookController) GetTextbooks(ctx *gin.Context) {
	textbooks, err := c.TextbookService.GetTextbooks(ctx.Query("subject"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, textbooks)
}

// @Summary 获取教材详情
// @Tags 教材
// @Produce json
// @Param id path int true "教材ID"
// @Success 200 {object} util.Response
// @Router /api/textbooks/{id} [get]
func (c *TextbookController) GetTextbook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid textbook id")
		return
	}

	textbook, err := c.TextbookService.GetTextbook(uint(id))
	if errors.Is(err, util.ErrTextbookNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, textbook)
}

// @Summary 创建教材
// @Tags 教材
// @Accept json
// @Produce json
// @Param body body model.Textbook true "教材信息"
// @Success 201 {object} util.Response
// @Router /api/textbooks [post]
func (c *TextbookController) CreateTextbook(ctx *gin.Context) {
	var textbook model.Textbook
	if err := ctx.ShouldBindJSON(&textbook); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TextbookService.CreateTextbook(&textbook); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, textbook)
}

// @Summary 更新教材
// @Tags 教材
// @Accept json
// @Produce json
// @Param id path int true "教材ID"
// @Param body body model.Textbook true "教材信息"
// @Success 200 {object} util.Response
// @Router /api/textbooks/{id} [put]
func (c *TextbookController) UpdateTextbook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid textbook id")
		return
	}

	var textbook model.Textbook
	if err := ctx.ShouldBindJSON(&textbook); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	textbook.ID = uint(id)

	if err := c.TextbookService.UpdateTextbook(&textbook); err != nil {
		if errors.Is(err, util.ErrTextbookNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, textbook)
}

// @Summary 删除教材
// @Description 同时删除学习计划，学习记录保留
// @Tags 教材
// @Produce json
// @Param id path int true "教材ID"
// @Success 200 {object} util.Response
// @Router /api/textbooks/{id} [delete]
func (c *TextbookController) DeleteTextbook(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid textbook id")
		return
	}

	if err := c.TextbookService.DeleteTextbook(uint(id)); err != nil {
		if errors.Is(err, util.ErrTextbookNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary 绑定闪卡牌组
// @Description 绑定外部闪卡应用的牌组ID
// @Tags 教材
// @Accept json
// @Produce json
// @Param id path int true "教材ID"
// @Param body body object true "{deckId}"
// @Success 200 {object} util.Response
// @Router /api/textbooks/{id}/anki-deck [put]
func (c *TextbookController) LinkAnkiDeck(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid textbook id")
		return
	}

	var body struct {
		DeckID string `json:"deckId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	textbook, err := c.TextbookService.LinkAnkiDeck(uint(id), body.DeckID)
	if errors.Is(err, util.ErrTextbookNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, textbook)
}
