package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/hourbook/hourbook/internal/audit"
	"github.com/hourbook/hourbook/internal/cache"
	"github.com/hourbook/hourbook/internal/config"
	"github.com/hourbook/hourbook/internal/handlers"
	infraRepo "github.com/hourbook/hourbook/internal/infra/repository"
	"github.com/hourbook/hourbook/internal/middleware"
	"github.com/hourbook/hourbook/internal/storage"
	ucScheduling "github.com/hourbook/hourbook/internal/usecase/scheduling"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	availabilityCache := cache.NewAvailabilityCache(redisClient)
	avatarStorage := storage.NewAvatarStorage(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	listProvidersUC := ucScheduling.NewListProviders(scheduleRepo)

	dayAvailabilityUC := ucScheduling.NewGetDayAvailability(
		scheduleRepo,
		availabilityCache,
		time.Local,
	)

	createAppointmentUC := ucScheduling.NewCreateAppointment(
		scheduleRepo,
		availabilityCache,
		auditDispatcher,
		time.Local,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	profileHandler := handlers.NewProfileHandler(db, avatarStorage)

	providerHandler := handlers.NewProviderHandler(
		listProvidersUC,
		dayAvailabilityUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(createAppointmentUC)

	// ======================================================
	// AUTH
	// ======================================================
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	// ======================================================
	// API PRIVADA
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/me", profileHandler.GetMe)
		secured.PATCH("/users/avatar", profileHandler.UpdateAvatar)

		secured.GET("/providers", providerHandler.List)
		secured.GET("/providers/:id/day-availability", providerHandler.DayAvailability)

		secured.POST("/appointments", appointmentHandler.Create)
	}
}
