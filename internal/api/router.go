package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/campusdesk/portal/docs"
	"github.com/campusdesk/portal/internal/api/handler"
	"github.com/campusdesk/portal/internal/api/middleware"
	"github.com/campusdesk/portal/internal/core/domain"
	"github.com/campusdesk/portal/internal/core/ports"
	"github.com/campusdesk/portal/internal/infrastructure/http/handlers"
)

// Deps are the services the HTTP layer is built on.
type Deps struct {
	Sessions    ports.SessionService
	Employees   ports.EmployeeService
	Students    ports.StudentService
	Departments ports.DepartmentDirectory
	// Ready lists the dependencies checked by the readiness probe.
	Ready map[string]ports.Pinger

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "portal",
		Registerer: registerer,
	}))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	employeeHandler := handler.NewEmployeeHandler(deps.Employees)
	studentHandler := handler.NewStudentHandler(deps.Students)
	departmentHandler := handler.NewDepartmentHandler(deps.Departments)
	dashboardHandler := handler.NewDashboardHandler(deps.Employees, deps.Students, deps.Departments)
	session := middleware.Session(deps.Sessions)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/auth/register", authHandler.Register)
	e.GET("/auth/session", authHandler.Session)

	// --- Portal routes (session required) ---
	v1 := e.Group("/v1", session)
	v1.GET("/dashboard", dashboardHandler.Overview)

	staff := middleware.RBAC(domain.RoleAdmin, domain.RoleHR)
	employees := v1.Group("/employees", staff)
	employees.GET("", employeeHandler.List)
	employees.GET("/stats", employeeHandler.Stats)
	employees.GET("/:id", employeeHandler.Get)
	employees.POST("", employeeHandler.Create)
	employees.PUT("/:id", employeeHandler.Update)
	employees.DELETE("/:id", employeeHandler.Delete)

	v1.GET("/departments", departmentHandler.List, staff)

	readers := middleware.RBAC(domain.RoleAdmin, domain.RoleLecturer)
	writers := middleware.RBAC(domain.RoleAdmin)
	students := v1.Group("/students")
	students.GET("/me", studentHandler.Me, middleware.RBAC(domain.RoleStudent))
	students.GET("", studentHandler.List, readers)
	students.GET("/stats", studentHandler.Stats, readers)
	students.GET("/:id", studentHandler.Get, readers)
	students.POST("", studentHandler.Create, writers)
	students.PUT("/:id", studentHandler.Update, writers)
	students.DELETE("/:id", studentHandler.Delete, writers)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Ready)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the durable store up?

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
