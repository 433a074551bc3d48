package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studioflow/studio-scheduler/internal/httpresp"
	"github.com/studioflow/studio-scheduler/internal/middleware"
	"github.com/studioflow/studio-scheduler/internal/models"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

// --------- Requests ---------

type CreateStaffRequest struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role"`
	Color string `json:"color"`
}

type UpdateStaffRequest struct {
	Name   *string `json:"name,omitempty"`
	Role   *string `json:"role,omitempty"`
	Color  *string `json:"color,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *StaffHandler) List(c *gin.Context) {
	studioIDVal, _ := c.Get(middleware.ContextStudioID)
	studioID := studioIDVal.(uint)

	activeStr := strings.TrimSpace(c.Query("active"))

	q := h.db.Where("studio_id = ?", studioID)

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var staff []models.StaffMember
	if err := q.
		Order("id ASC").
		Find(&staff).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_staff"})
		return
	}

	httpresp.List(c, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	studioIDVal, _ := c.Get(middleware.ContextStudioID)
	studioID := studioIDVal.(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	staff := models.StaffMember{
		StudioID: studioID,
		Name:     req.Name,
		Role:     req.Role,
		Color:    req.Color,
		Active:   true,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_staff"})
		return
	}

	writeAudit(h.db, studioID, &userID, "staff_created", "staff_member", &staff.ID, nil)

	c.JSON(http.StatusCreated, staff)
}

func (h *StaffHandler) Update(c *gin.Context) {
	studioIDVal, _ := c.Get(middleware.ContextStudioID)
	studioID := studioIDVal.(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id := c.Param("id")

	var staff models.StaffMember
	if err := h.db.
		Where("id = ? AND studio_id = ?", id, studioID).
		First(&staff).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "staff_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_staff"})
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Role != nil {
		staff.Role = *req.Role
	}
	if req.Color != nil {
		staff.Color = *req.Color
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := h.db.Save(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_staff"})
		return
	}

	// Mantém os campos denormalizados da grade em dia
	if err := h.db.Model(&models.TimeBlock{}).
		Where("staff_id = ?", staff.ID).
		Updates(map[string]any{
			"staff_name": staff.Name,
			"staff_role": staff.Role,
			"color":      staff.Color,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_sync_time_blocks"})
		return
	}

	writeAudit(h.db, studioID, &userID, "staff_updated", "staff_member", &staff.ID, nil)

	c.JSON(http.StatusOK, staff)
}
