package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studioflow/studio-scheduler/internal/audit"
	"github.com/studioflow/studio-scheduler/internal/cache"
	"github.com/studioflow/studio-scheduler/internal/config"
	"github.com/studioflow/studio-scheduler/internal/handlers"
	infraRepo "github.com/studioflow/studio-scheduler/internal/infra/repository"
	"github.com/studioflow/studio-scheduler/internal/middleware"
	ucSchedule "github.com/studioflow/studio-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	rdb := cache.NewRedisClient(cfg)
	availabilityCache := cache.NewAvailabilityCache(rdb)

	// ======================================================
	// USE CASES — SCHEDULE
	// ======================================================
	createBlockUC := ucSchedule.NewCreateTimeBlock(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	createRecurringUC := ucSchedule.NewCreateRecurringBlock(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	updateBlockUC := ucSchedule.NewUpdateTimeBlock(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	moveBlockUC := ucSchedule.NewMoveTimeBlock(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	moveToSlotUC := ucSchedule.NewMoveTimeBlockToSlot(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	duplicateBlockUC := ucSchedule.NewDuplicateTimeBlock(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	deleteBlockUC := ucSchedule.NewDeleteTimeBlock(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	copyWeekUC := ucSchedule.NewCopyWeek(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	getAvailabilityUC := ucSchedule.NewGetStaffAvailability(
		scheduleRepo,
		availabilityCache,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	studioHandler := handlers.NewStudioHandler(db)

	staffHandler := handlers.NewStaffHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	timeBlockHandler := handlers.NewTimeBlockHandler(
		db,
		createBlockUC,
		createRecurringUC,
		updateBlockUC,
		moveBlockUC,
		moveToSlotUC,
		duplicateBlockUC,
		deleteBlockUC,
		copyWeekUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, getAvailabilityUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/studio", studioHandler.GetMeStudio)
			secured.PATCH("/me/studio", studioHandler.UpdateMeStudio)

			secured.GET("/me/staff", staffHandler.List)
			secured.POST("/me/staff", staffHandler.Create)
			secured.PATCH("/me/staff/:id", staffHandler.Update)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			// ------------------------------
			// TIME BLOCKS (grade de disponibilidade)
			// ------------------------------
			secured.GET("/me/time-blocks", timeBlockHandler.List)
			secured.POST("/me/time-blocks", timeBlockHandler.Create)
			secured.POST("/me/time-blocks/recurring", timeBlockHandler.CreateRecurring)
			secured.POST("/me/time-blocks/copy-week", timeBlockHandler.CopyWeek)
			secured.PATCH("/me/time-blocks/:id", timeBlockHandler.Update)
			secured.PATCH("/me/time-blocks/:id/move", timeBlockHandler.Move)
			secured.PATCH("/me/time-blocks/:id/slot", timeBlockHandler.MoveToSlot)
			secured.POST("/me/time-blocks/:id/duplicate", timeBlockHandler.Duplicate)
			secured.DELETE("/me/time-blocks/:id", timeBlockHandler.Delete)

			secured.GET("/me/availability", availabilityHandler.Get)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
