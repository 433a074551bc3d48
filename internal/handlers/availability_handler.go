package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studioflow/studio-scheduler/internal/httperr"
	"github.com/studioflow/studio-scheduler/internal/middleware"
	ucSchedule "github.com/studioflow/studio-scheduler/internal/usecase/schedule"
)

type AvailabilityHandler struct {
	getAvailability *ucSchedule.GetStaffAvailability
}

func NewAvailabilityHandler(getAvailability *ucSchedule.GetStaffAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{getAvailability: getAvailability}
}

// Get devolve a visão agregada por staff: blocos ordenados, total de
// horas semanais líquidas e avisos de sobreposição.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	availability, err := h.getAvailability.Execute(c.Request.Context(), studioID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Erro ao montar disponibilidade.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"staff_availability": availability,
	})
}
