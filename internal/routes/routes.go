package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AuMiauServices/petshop-api/internal/audit"
	"github.com/AuMiauServices/petshop-api/internal/config"
	"github.com/AuMiauServices/petshop-api/internal/handlers"
	infraRepo "github.com/AuMiauServices/petshop-api/internal/infra/repository"
	"github.com/AuMiauServices/petshop-api/internal/mailer"
	"github.com/AuMiauServices/petshop-api/internal/middleware"
	"github.com/AuMiauServices/petshop-api/internal/models"
	"github.com/AuMiauServices/petshop-api/internal/payments"
	"github.com/AuMiauServices/petshop-api/internal/resetcode"
	"github.com/AuMiauServices/petshop-api/internal/storage"
	"github.com/AuMiauServices/petshop-api/internal/token"
	ucAppointment "github.com/AuMiauServices/petshop-api/internal/usecase/appointment"
)

// Deps agrupa os singletons construídos no main.
type Deps struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Log      *zap.Logger
	Tokens   *token.Manager
	Codes    *resetcode.Store
	Mail     mailer.Mailer
	Images   *storage.ImageStore
	Payments payments.Linker
	Audit    audit.Recorder
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		d.Audit,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		d.Audit,
	)

	advanceStatusUC := ucAppointment.NewAdvanceStatus(
		appointmentRepo,
		d.Audit,
		d.Payments,
		d.Log,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// 📦 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		d.DB, d.Tokens, d.Codes, d.Mail, d.Audit, d.Cfg.Auth.BcryptCost,
	)
	userHandler := handlers.NewUserHandler(d.DB, d.Cfg.Auth.BcryptCost)
	petHandler := handlers.NewPetHandler(d.DB)
	serviceHandler := handlers.NewServiceHandler(d.DB)
	categoryHandler := handlers.NewCategoryHandler(d.DB)
	productHandler := handlers.NewProductHandler(d.DB, d.Images, d.Log)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		advanceStatusUC,
		listAppointmentsUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	authRequired := middleware.AuthMiddleware(d.Tokens)
	roleLookup := middleware.RoleByAccount(d.DB)
	adminOnly := middleware.RequireRoles(roleLookup, models.RoleAdmin)
	staffOnly := middleware.RequireRoles(roleLookup, models.RoleAdmin, models.RoleEmployee)

	// ======================================================
	// 🔓 ROTAS PÚBLICAS
	// ======================================================
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/verify-code", authHandler.VerifyCode)
		auth.POST("/reset-password", authHandler.ResetPassword)
	}

	r.GET("/categories", categoryHandler.List)
	r.GET("/categories/:id", categoryHandler.Get)

	r.GET("/products", productHandler.List)
	r.GET("/products/:id", productHandler.Get)
	r.GET("/products/image/:id", productHandler.Image)

	// ======================================================
	// 🔐 ROTAS AUTENTICADAS (BEARER)
	// ======================================================
	user := r.Group("/user", authRequired)
	{
		user.PUT("/password", userHandler.ChangePassword)
		user.GET("/:id", userHandler.Get)
		user.PUT("/:id", userHandler.Update)
	}

	pets := r.Group("/pets", authRequired)
	{
		pets.POST("", petHandler.Create)
		pets.GET("", petHandler.List)
		pets.GET("/:id", petHandler.Get)
		pets.PUT("/:id", petHandler.Update)
		pets.DELETE("/:id", petHandler.Delete)
	}

	services := r.Group("/services", authRequired)
	{
		services.GET("", serviceHandler.List)
		services.GET("/:id", serviceHandler.Get)

		services.POST("", adminOnly, serviceHandler.Create)
		services.PUT("/:id", adminOnly, serviceHandler.Update)
		services.DELETE("/:id", adminOnly, serviceHandler.Delete)
	}

	appointments := r.Group("/appointments", authRequired)
	{
		appointments.POST("", appointmentHandler.Create)
		appointments.GET("", appointmentHandler.List)
		appointments.PUT("/cancel/:id", appointmentHandler.Cancel)

		appointments.GET("/all", staffOnly, appointmentHandler.ListAll)
		appointments.PUT("/status/:id", staffOnly, appointmentHandler.AdvanceStatus)
	}

	// ======================================================
	// 🛠️ ROTAS DE GESTÃO
	// ======================================================
	r.POST("/categories", authRequired, adminOnly, categoryHandler.Create)
	r.PUT("/categories/:id", authRequired, adminOnly, categoryHandler.Update)
	r.DELETE("/categories/:id", authRequired, adminOnly, categoryHandler.Delete)

	r.POST("/products", authRequired, staffOnly, productHandler.Create)
	r.PUT("/products/:id", authRequired, staffOnly, productHandler.Update)
	r.DELETE("/products/:id", authRequired, staffOnly, productHandler.Delete)

	r.GET("/audit-logs", authRequired, adminOnly, auditLogsHandler.List)
}
