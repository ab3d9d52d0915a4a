package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/usbtypec1/car-wash-project-api-server/internal/auth"
	"github.com/usbtypec1/car-wash-project-api-server/internal/config"
	"github.com/usbtypec1/car-wash-project-api-server/internal/economics"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
	"github.com/usbtypec1/car-wash-project-api-server/internal/notify"
	"github.com/usbtypec1/car-wash-project-api-server/internal/shifts"
	"github.com/usbtypec1/car-wash-project-api-server/internal/storage"
	"github.com/usbtypec1/car-wash-project-api-server/pkg/middleware"
)

type Server struct {
	router   *gin.Engine
	storage  storage.Storage
	notifier notify.Notifier
	config   config.Config
}

type ServerOpts struct {
	Storage  storage.Storage
	Notifier notify.Notifier
	Config   config.Config
}

func NewServer(opts ServerOpts) *Server {
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	return &Server{
		router:   gin.Default(),
		storage:  opts.Storage,
		notifier: notifier,
		config:   opts.Config,
	}
}

func (s *Server) Run(addr string) error {
	s.SetupRoutes()

	go func() {
		metricsServer := &http.Server{
			Addr:              s.config.ListenMetrics,
			Handler:           promhttp.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		slog.Info("Listening and serving Prometheus", slog.String("addr", s.config.ListenMetrics))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server stopped", slog.String("error", err.Error()))
		}
	}()

	slog.Info("Listening and serving HTTP", slog.String("addr", addr))
	return s.router.Run(addr)
}

func (s *Server) SetupRoutes() {
	s.router.Use(PrometheusMiddleware())

	// Public routes
	s.router.POST("/dummyLogin", s.dummyLogin)
	s.router.GET("/healthz", s.healthz)

	authGroup := s.router.Group("/")
	authGroup.Use(middleware.AuthMiddleware(s.config.Secret))
	admin := middleware.RequireRole(auth.RoleAdmin)

	econ := authGroup.Group("/economics")
	{
		econ.GET("/prices", s.getServicePrices)
		econ.GET("/prices/:service", s.getServicePrice)
		econ.PUT("/prices/:service", admin, s.setServicePrice)

		econ.GET("/penalties", s.getPenalties)
		econ.POST("/penalties", admin, s.createPenalty)
		econ.DELETE("/penalties/:id", admin, s.deletePenalty)

		econ.POST("/surcharges", admin, s.createSurcharge)
		econ.DELETE("/surcharges/:id", admin, s.deleteSurcharge)

		econ.GET("/car-washes/penalties", s.getCarWashPenalties)
		econ.POST("/car-washes/penalties", admin, s.createCarWashPenalty)
		econ.DELETE("/car-washes/penalties/:id", admin, s.deleteCarWashPenalty)

		econ.GET("/car-washes/surcharges", s.getCarWashSurcharges)
		econ.POST("/car-washes/surcharges", admin, s.createCarWashSurcharge)
		econ.DELETE("/car-washes/surcharges/:id", admin, s.deleteCarWashSurcharge)

		econ.GET("/reports/staff-shifts-statistics", s.getStaffShiftsStatistics)
		econ.GET("/reports/car-washes-sales", s.getCarWashesSales)
	}

	shiftsGroup := authGroup.Group("/shifts")
	{
		shiftsGroup.POST("/regular", admin, s.createRegularShifts)
		shiftsGroup.POST("/extra", admin, s.createExtraShifts)
		shiftsGroup.POST("/test", admin, s.createTestShift)
		shiftsGroup.GET("/dead-souls", admin, s.getDeadSouls)
		shiftsGroup.POST("/:id/start", s.startShift)
		shiftsGroup.POST("/:id/finish", s.finishShift)
		shiftsGroup.DELETE("/:id", admin, s.deleteShift)

		shiftsGroup.POST("/cars", s.createCarToWash)
		shiftsGroup.GET("/cars/:id", s.getCarToWash)
	}
}

func (s *Server) economicsService() *economics.Service {
	return economics.NewService(economics.ServiceOpts{
		Storage:  s.storage,
		Notifier: s.notifier,
	})
}

func (s *Server) shiftsService() *shifts.Service {
	return shifts.NewService(s.storage)
}

// dummyLogin issues a token for the requested role without credentials.
func (s *Server) dummyLogin(c *gin.Context) {
	var req struct {
		Role string `json:"role"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	role := auth.Role(req.Role)
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	token, err := auth.GenerateToken(uuid.New().String(), role, s.config.Secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps domain errors to HTTP statuses. Anything that is not a
// domain error is logged and hidden behind a generic 500.
func (s *Server) respondError(c *gin.Context, err error) {
	var domainErr *models.Error
	if !errors.As(err, &domainErr) {
		slog.Error("request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrUnknownCarClass):
		slog.Error("data integrity fault",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
	case domainErr.Kind == models.KindNotFound:
		status = http.StatusNotFound
	case domainErr.Kind == models.KindConflict:
		status = http.StatusConflict
	case domainErr.Kind == models.KindValidation:
		status = http.StatusBadRequest
	}

	body := gin.H{"error": domainErr.Message, "code": domainErr.Code}
	if len(domainErr.Details) > 0 {
		body["details"] = domainErr.Details
	}
	c.JSON(status, body)
}
