package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/studioflow/studio-scheduler/internal/domain/schedule"
	"github.com/studioflow/studio-scheduler/internal/httperr"
	"github.com/studioflow/studio-scheduler/internal/middleware"
	"github.com/studioflow/studio-scheduler/internal/models"
	ucSchedule "github.com/studioflow/studio-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type TimeBlockHandler struct {
	db *gorm.DB

	createBlock     *ucSchedule.CreateTimeBlock
	createRecurring *ucSchedule.CreateRecurringBlock
	updateBlock     *ucSchedule.UpdateTimeBlock
	moveBlock       *ucSchedule.MoveTimeBlock
	moveToSlot      *ucSchedule.MoveTimeBlockToSlot
	duplicateBlock  *ucSchedule.DuplicateTimeBlock
	deleteBlock     *ucSchedule.DeleteTimeBlock
	copyWeek        *ucSchedule.CopyWeek
}

func NewTimeBlockHandler(
	db *gorm.DB,
	createBlock *ucSchedule.CreateTimeBlock,
	createRecurring *ucSchedule.CreateRecurringBlock,
	updateBlock *ucSchedule.UpdateTimeBlock,
	moveBlock *ucSchedule.MoveTimeBlock,
	moveToSlot *ucSchedule.MoveTimeBlockToSlot,
	duplicateBlock *ucSchedule.DuplicateTimeBlock,
	deleteBlock *ucSchedule.DeleteTimeBlock,
	copyWeek *ucSchedule.CopyWeek,
) *TimeBlockHandler {
	return &TimeBlockHandler{
		db:              db,
		createBlock:     createBlock,
		createRecurring: createRecurring,
		updateBlock:     updateBlock,
		moveBlock:       moveBlock,
		moveToSlot:      moveToSlot,
		duplicateBlock:  duplicateBlock,
		deleteBlock:     deleteBlock,
		copyWeek:        copyWeek,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateTimeBlockRequest struct {
	StaffID    uint    `json:"staff_id" binding:"required"`
	DayOfWeek  int     `json:"day_of_week" binding:"min=0,max=6"`
	StartTime  string  `json:"start_time" binding:"required"`
	EndTime    string  `json:"end_time" binding:"required"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
	WeekStart  string  `json:"week_start"`
	ClientRef  string  `json:"client_ref"`
}

type CreateRecurringBlockRequest struct {
	StaffID    uint    `json:"staff_id" binding:"required"`
	DayOfWeek  int     `json:"day_of_week" binding:"min=0,max=6"`
	StartTime  string  `json:"start_time" binding:"required"`
	EndTime    string  `json:"end_time" binding:"required"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
	Pattern    string  `json:"pattern_type"`
	EndDate    string  `json:"end_date"`
	ClientRef  string  `json:"client_ref"`
}

type UpdateTimeBlockRequest struct {
	DayOfWeek  *int    `json:"day_of_week,omitempty"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
	ClearBreak bool    `json:"clear_break,omitempty"`
	Active     *bool   `json:"is_active,omitempty"`
}

type MoveTimeBlockRequest struct {
	DayOfWeek int `json:"day_of_week" binding:"min=0,max=6"`
}

type MoveToSlotRequest struct {
	DayOfWeek int `json:"day_of_week" binding:"min=0,max=6"`
	Hour      int `json:"hour" binding:"min=0,max=23"`
}

type DuplicateTimeBlockRequest struct {
	DayOfWeek *int   `json:"day_of_week"`
	ClientRef string `json:"client_ref"`
}

type CopyWeekRequest struct {
	SourceWeekStart string `json:"source_week_start" binding:"required"` // YYYY-MM-DD
	TargetWeekStart string `json:"target_week_start" binding:"required"` // YYYY-MM-DD
}

// ======================================================
// HELPERS
// ======================================================

func blockIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_block_id", "ID de bloco inválido.")
		return 0, false
	}
	return uint(id), true
}

func respondBusiness(c *gin.Context, err error) {
	for _, code := range []string{
		"time_block_not_found", "staff_not_found", "studio_not_found",
	} {
		if httperr.IsBusiness(err, code) {
			httperr.NotFound(c, code, "Registro não encontrado.")
			return
		}
	}

	for _, code := range []string{
		"confirmation_required", "invalid_day_of_week", "invalid_slot",
		"invalid_week_start", "invalid_client_ref", "source_and_target_week_equal",
	} {
		if httperr.IsBusiness(err, code) {
			httperr.BadRequest(c, code, "Requisição inválida.")
			return
		}
	}

	httperr.Internal(c, "internal_error", "Erro interno.")
}

// ======================================================
// LIST
// ======================================================

func (h *TimeBlockHandler) List(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	q := h.db.Where("studio_id = ?", studioID)

	if staffIDStr := strings.TrimSpace(c.Query("staff_id")); staffIDStr != "" {
		if staffID, err := strconv.ParseUint(staffIDStr, 10, 32); err == nil {
			q = q.Where("staff_id = ?", uint(staffID))
		}
	}

	if weekStr := strings.TrimSpace(c.Query("week_start")); weekStr != "" {
		week, err := time.Parse("2006-01-02", weekStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_week_start", "Data de início de semana inválida.")
			return
		}
		// Templates recorrentes aparecem em qualquer semana
		q = q.Where("week_start = ? OR is_recurring = ?", domain.WeekStartOf(week), true)
	}

	var blocks []models.TimeBlock
	if err := q.
		Order("day_of_week ASC, start_time ASC").
		Find(&blocks).Error; err != nil {

		httperr.Internal(c, "failed_to_list_time_blocks", "Erro ao listar blocos.")
		return
	}

	c.JSON(http.StatusOK, blocks)
}

// ======================================================
// CREATE
// ======================================================

func (h *TimeBlockHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var req CreateTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	block, violations, err := h.createBlock.Execute(c.Request.Context(), ucSchedule.CreateTimeBlockInput{
		StudioID:   studioID,
		ActorID:    userID,
		StaffID:    req.StaffID,
		DayOfWeek:  req.DayOfWeek,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		BreakStart: req.BreakStart,
		BreakEnd:   req.BreakEnd,
		WeekStart:  req.WeekStart,
		ClientRef:  req.ClientRef,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}
	if len(violations) > 0 {
		httperr.Unprocessable(c, violations)
		return
	}

	c.JSON(http.StatusCreated, block)
}

// ======================================================
// CREATE RECURRING (pattern expander)
// ======================================================

func (h *TimeBlockHandler) CreateRecurring(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var req CreateRecurringBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	pattern := domain.RecurringPattern{
		StaffID:    req.StaffID,
		DayOfWeek:  req.DayOfWeek,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		BreakStart: req.BreakStart,
		BreakEnd:   req.BreakEnd,
		Pattern:    domain.PatternType(req.Pattern),
	}

	if req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_end_date", "Data final inválida.")
			return
		}
		pattern.EndDate = &endDate
	}

	out, violations, err := h.createRecurring.Execute(c.Request.Context(), ucSchedule.CreateRecurringBlockInput{
		StudioID:  studioID,
		ActorID:   userID,
		Pattern:   pattern,
		ClientRef: req.ClientRef,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}
	if len(violations) > 0 {
		httperr.Unprocessable(c, violations)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"time_block": out.Block,
		"preview":    out.Preview,
	})
}

// ======================================================
// UPDATE
// ======================================================

func (h *TimeBlockHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	blockID, ok := blockIDParam(c)
	if !ok {
		return
	}

	var req UpdateTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	block, violations, err := h.updateBlock.Execute(c.Request.Context(), ucSchedule.UpdateTimeBlockInput{
		StudioID:   studioID,
		ActorID:    userID,
		BlockID:    blockID,
		DayOfWeek:  req.DayOfWeek,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		BreakStart: req.BreakStart,
		BreakEnd:   req.BreakEnd,
		ClearBreak: req.ClearBreak,
		Active:     req.Active,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}
	if len(violations) > 0 {
		httperr.Unprocessable(c, violations)
		return
	}

	c.JSON(http.StatusOK, block)
}

// ======================================================
// MOVE (grade de dias)
// ======================================================

func (h *TimeBlockHandler) Move(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	blockID, ok := blockIDParam(c)
	if !ok {
		return
	}

	var req MoveTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	block, err := h.moveBlock.Execute(c.Request.Context(), studioID, userID, blockID, req.DayOfWeek)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, block)
}

// ======================================================
// MOVE TO SLOT (grade dia x hora)
// ======================================================

func (h *TimeBlockHandler) MoveToSlot(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	blockID, ok := blockIDParam(c)
	if !ok {
		return
	}

	var req MoveToSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	block, err := h.moveToSlot.Execute(c.Request.Context(), studioID, userID, blockID, req.DayOfWeek, req.Hour)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, block)
}

// ======================================================
// DUPLICATE
// ======================================================

func (h *TimeBlockHandler) Duplicate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	blockID, ok := blockIDParam(c)
	if !ok {
		return
	}

	// Corpo é opcional: sem payload, duplica no mesmo dia
	var req DuplicateTimeBlockRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
			return
		}
	}

	block, err := h.duplicateBlock.Execute(c.Request.Context(), ucSchedule.DuplicateTimeBlockInput{
		StudioID:  studioID,
		ActorID:   userID,
		BlockID:   blockID,
		DayOfWeek: req.DayOfWeek,
		ClientRef: req.ClientRef,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, block)
}

// ======================================================
// DELETE (confirmação obrigatória)
// ======================================================

func (h *TimeBlockHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	blockID, ok := blockIDParam(c)
	if !ok {
		return
	}

	confirmed := c.Query("confirm") == "true"

	err := h.deleteBlock.Execute(c.Request.Context(), ucSchedule.DeleteTimeBlockInput{
		StudioID:  studioID,
		ActorID:   userID,
		BlockID:   blockID,
		Confirmed: confirmed,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ======================================================
// COPY WEEK
// ======================================================

func (h *TimeBlockHandler) CopyWeek(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var req CopyWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	source, err := time.Parse("2006-01-02", req.SourceWeekStart)
	if err != nil {
		httperr.BadRequest(c, "invalid_source_week", "Data de origem inválida.")
		return
	}

	target, err := time.Parse("2006-01-02", req.TargetWeekStart)
	if err != nil {
		httperr.BadRequest(c, "invalid_target_week", "Data de destino inválida.")
		return
	}

	clones, err := h.copyWeek.Execute(c.Request.Context(), ucSchedule.CopyWeekInput{
		StudioID:        studioID,
		ActorID:         userID,
		SourceWeekStart: source,
		TargetWeekStart: target,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"copied": len(clones),
		"blocks": clones,
	})
}
