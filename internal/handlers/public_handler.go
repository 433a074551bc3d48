package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/studioflow/studio-scheduler/internal/domain/schedule"
	"github.com/studioflow/studio-scheduler/internal/httperr"
	"github.com/studioflow/studio-scheduler/internal/models"
	ucSchedule "github.com/studioflow/studio-scheduler/internal/usecase/schedule"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db              *gorm.DB
	getAvailability *ucSchedule.GetStaffAvailability
}

func NewPublicHandler(db *gorm.DB, getAvailability *ucSchedule.GetStaffAvailability) *PublicHandler {
	return &PublicHandler{
		db:              db,
		getAvailability: getAvailability,
	}
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	slug := c.Param("slug")

	var studio models.Studio
	if err := h.db.Where("slug = ?", slug).First(&studio).Error; err != nil {
		httperr.NotFound(c, "studio_not_found", "Estúdio não encontrado.")
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("studio_id = ? AND active = true", studio.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"studio":   studio,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY (reuso total do use case)
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")

	var studio models.Studio
	if err := h.db.Where("slug = ?", slug).First(&studio).Error; err != nil {
		httperr.NotFound(c, "studio_not_found", "Estúdio não encontrado.")
		return
	}

	availability, err := h.getAvailability.Execute(c.Request.Context(), studio.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Erro ao montar disponibilidade.")
		return
	}

	// Visão pública não expõe avisos internos de conflito
	out := make([]domain.StaffAvailability, 0, len(availability))
	for _, a := range availability {
		a.Conflicts = nil
		out = append(out, a)
	}

	c.JSON(http.StatusOK, gin.H{
		"studio":             studio.Slug,
		"staff_availability": out,
	})
}
