package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studioflow/studio-scheduler/internal/httperr"
	"github.com/studioflow/studio-scheduler/internal/middleware"
	"github.com/studioflow/studio-scheduler/internal/models"
	"github.com/studioflow/studio-scheduler/internal/timezone"
)

type StudioHandler struct {
	db *gorm.DB
}

func NewStudioHandler(db *gorm.DB) *StudioHandler {
	return &StudioHandler{db: db}
}

type UpdateStudioConfigRequest struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	Timezone          *string `json:"timezone"`
	BrandColor        *string `json:"brand_color"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`

	OnboardingStep      *int  `json:"onboarding_step"`
	OnboardingCompleted *bool `json:"onboarding_completed"`
}

func (h *StudioHandler) GetMeStudio(c *gin.Context) {
	studioIDVal, _ := c.Get(middleware.ContextStudioID)
	studioID := studioIDVal.(uint)

	var studio models.Studio
	if err := h.db.First(&studio, studioID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "studio_not_found", "Estúdio não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_studio", "Erro ao buscar dados do estúdio.")
		return
	}

	c.JSON(http.StatusOK, studio)
}

func (h *StudioHandler) UpdateMeStudio(c *gin.Context) {
	studioIDVal, _ := c.Get(middleware.ContextStudioID)
	studioID := studioIDVal.(uint)

	var studio models.Studio
	if err := h.db.First(&studio, studioID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "studio_not_found", "Estúdio não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_studio", "Erro ao buscar dados do estúdio.")
		return
	}

	var req UpdateStudioConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		studio.Name = *req.Name
	}
	if req.Phone != nil {
		studio.Phone = *req.Phone
	}
	if req.Address != nil {
		studio.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Timezone inválido.")
			return
		}
		studio.Timezone = *req.Timezone
	}
	if req.BrandColor != nil {
		studio.BrandColor = *req.BrandColor
	}
	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Antecedência mínima deve ser zero ou positiva (em minutos).")
			return
		}
		studio.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	// Progresso do wizard de onboarding — nunca anda para trás
	if req.OnboardingStep != nil && *req.OnboardingStep > studio.OnboardingStep {
		studio.OnboardingStep = *req.OnboardingStep
	}
	if req.OnboardingCompleted != nil && *req.OnboardingCompleted {
		studio.OnboardingCompleted = true
	}

	if err := h.db.Save(&studio).Error; err != nil {
		httperr.Internal(c, "failed_to_update_studio", "Erro ao salvar as configurações do estúdio.")
		return
	}

	c.JSON(http.StatusOK, studio)
}
