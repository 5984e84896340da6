package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SYD090303/GymFlow/internal/api/handler"
	"github.com/SYD090303/GymFlow/internal/api/middleware"
	"github.com/SYD090303/GymFlow/internal/core/domain"
	"github.com/SYD090303/GymFlow/internal/core/ports"
	"github.com/SYD090303/GymFlow/pkg/activity"
)

// Services bundles the use-case implementations the router exposes.
type Services struct {
	Auth          ports.AuthService
	Members       ports.MemberService
	Attendance    ports.AttendanceService
	Plans         ports.PlanService
	Receptionists ports.ReceptionistService
	Notifications ports.NotificationService
}

// RouterConfig carries everything NewRouter needs besides the services.
type RouterConfig struct {
	JWTSecret            string
	EndingSoonWindowDays int
	Mongo                *mongo.Database
	Redis                *redis.Client
	Log                  zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("gymflow"))
	e.Use(middleware.Activity(activity.New()))

	auth := middleware.Auth(cfg.JWTSecret)
	staffOnly := middleware.RBAC(domain.RoleOwner, domain.RoleAdmin, domain.RoleReceptionist)
	ownerOnly := middleware.RBAC(domain.RoleOwner, domain.RoleAdmin)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	memberHandler := handler.NewMemberHandler(svc.Members, cfg.EndingSoonWindowDays)
	attendanceHandler := handler.NewAttendanceHandler(svc.Attendance)
	planHandler := handler.NewPlanHandler(svc.Plans)
	receptionistHandler := handler.NewReceptionistHandler(svc.Receptionists)
	notificationHandler := handler.NewNotificationHandler(svc.Notifications)
	dashboardHandler := handler.NewDashboardHandler()

	// --- Auth ---
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/register", authHandler.Register, auth, ownerOnly)
	e.GET("/v1/auth/me", authHandler.Me, auth)
	e.PUT("/v1/auth/me/profile", authHandler.UpdateProfile, auth)
	e.PUT("/v1/auth/password", authHandler.ChangePassword, auth)
	e.PUT("/v1/auth/email", authHandler.ChangeEmail, auth)
	e.PUT("/v1/auth/users/:id/profile", authHandler.AdminUpdateProfile, auth, ownerOnly)
	e.POST("/v1/auth/users/:id/reset-password", authHandler.AdminResetPassword, auth, ownerOnly)

	v1 := e.Group("/api/v1", auth)

	// --- Dashboard ---
	v1.GET("/dashboard", dashboardHandler.Compose)

	// --- Members ---
	members := v1.Group("/members", staffOnly)
	members.POST("", memberHandler.Create)
	members.GET("", memberHandler.List)
	members.GET("/ending-soon", memberHandler.EndingSoon)
	members.GET("/:id", memberHandler.Get)
	members.PUT("/:id", memberHandler.Update)
	members.DELETE("/:id", memberHandler.Delete, ownerOnly)
	members.PATCH("/:id/activate", memberHandler.Activate)
	members.PATCH("/:id/deactivate", memberHandler.Deactivate)
	members.POST("/:id/renew", memberHandler.Renew)

	// --- Attendance ---
	attendance := v1.Group("/attendance", staffOnly)
	attendance.POST("/check-in", attendanceHandler.CheckIn)
	attendance.POST("/check-out", attendanceHandler.CheckOut)
	attendance.GET("/member/:memberId", attendanceHandler.ListByMember)
	attendance.GET("/member/:memberId/open", attendanceHandler.OpenSession)
	attendance.GET("/status/:status", attendanceHandler.ListByStatus)
	attendance.GET("/range", attendanceHandler.ListRange)
	attendance.GET("/today", attendanceHandler.ListToday)
	attendance.GET("/today/summary", attendanceHandler.TodaySummary)

	// --- Membership plans ---
	plans := v1.Group("/membership-plans")
	plans.GET("", planHandler.List, staffOnly)
	plans.GET("/:id", planHandler.Get, staffOnly)
	plans.POST("", planHandler.Create, ownerOnly)
	plans.PUT("/:id", planHandler.Update, ownerOnly)
	plans.PATCH("/:id/activate", planHandler.Activate, ownerOnly)
	plans.PATCH("/:id/deactivate", planHandler.Deactivate, ownerOnly)
	plans.DELETE("/:id", planHandler.Delete, ownerOnly)

	// --- Receptionists (owner only) ---
	receptionists := v1.Group("/receptionists", ownerOnly)
	receptionists.POST("", receptionistHandler.Create)
	receptionists.GET("", receptionistHandler.List)
	receptionists.GET("/:id", receptionistHandler.Get)
	receptionists.PUT("/:id", receptionistHandler.Update)
	receptionists.PATCH("/:id/activate", receptionistHandler.Activate)
	receptionists.PATCH("/:id/deactivate", receptionistHandler.Deactivate)
	receptionists.DELETE("/:id", receptionistHandler.Delete)

	// --- Notifications (owner only) ---
	notifications := v1.Group("/notifications", ownerOnly)
	notifications.GET("", notificationHandler.List)
	notifications.GET("/unread-count", notificationHandler.UnreadCount)
	notifications.PATCH("/:id/read", notificationHandler.MarkRead)
	notifications.PATCH("/read-all", notificationHandler.MarkAllRead)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness: is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness: are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
