package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/CareLinkServices/care-scheduler/internal/audit"
	"github.com/CareLinkServices/care-scheduler/internal/cache"
	"github.com/CareLinkServices/care-scheduler/internal/config"
	"github.com/CareLinkServices/care-scheduler/internal/domain/schedule"
	"github.com/CareLinkServices/care-scheduler/internal/handlers"
	infraRepo "github.com/CareLinkServices/care-scheduler/internal/infra/repository"
	"github.com/CareLinkServices/care-scheduler/internal/middleware"
	"github.com/CareLinkServices/care-scheduler/internal/storage"
	"github.com/CareLinkServices/care-scheduler/internal/timezone"
	ucAppointment "github.com/CareLinkServices/care-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	storageClient := storage.New(cfg)
	cacheClient := cache.New(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		loc,
	)

	listWindowUC := ucAppointment.NewListWindow(appointmentRepo)

	searchAppointmentsUC := ucAppointment.NewSearchAppointments(appointmentRepo)

	dayLayoutUC := ucAppointment.NewDayLayout(
		appointmentRepo,
		schedule.DefaultGrid(),
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listWindowUC,
		searchAppointmentsUC,
		dayLayoutUC,
		loc,
	)

	patientHandler := handlers.NewPatientHandler(db, storageClient, auditDispatcher, log)
	categoryHandler := handlers.NewCategoryHandler(db, cacheClient)
	relativeHandler := handlers.NewRelativeHandler(db)
	newsHandler := handlers.NewNewsHandler(db)
	contactHandler := handlers.NewContactHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/news", newsHandler.List)
		api.POST("/contact", contactHandler.Submit)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/shift", appointmentHandler.Shift)
			secured.GET("/appointments/search", appointmentHandler.Search)
			secured.GET("/appointments/layout", appointmentHandler.Layout)

			// ------------------------------
			// PATIENTS
			// ------------------------------
			secured.GET("/patients", patientHandler.List)
			secured.POST("/patients", patientHandler.Create)
			secured.PATCH("/patients/:id", patientHandler.Update)
			secured.POST("/patients/:id/photo", patientHandler.UploadPhoto)

			// ------------------------------
			// CATEGORIES / RELATIVES
			// ------------------------------
			secured.GET("/categories", categoryHandler.List)
			secured.POST("/categories", categoryHandler.Create)

			secured.GET("/relatives", relativeHandler.List)
			secured.POST("/relatives", relativeHandler.Create)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
