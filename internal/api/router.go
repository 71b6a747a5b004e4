package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/skillstorm/hotel-management/docs"
	"github.com/skillstorm/hotel-management/internal/api/handler"
	"github.com/skillstorm/hotel-management/internal/api/middleware"
	"github.com/skillstorm/hotel-management/internal/core/ports"
	"github.com/skillstorm/hotel-management/internal/metrics"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Rooms        ports.RoomService
	Users        ports.UserService
	Reservations ports.ReservationService

	// Mongo is pinged by the readiness probe. Redis is optional.
	Mongo handler.MongoPinger
	Redis handler.RedisPinger

	// Registry receives HTTP and business metrics and backs /metrics. A
	// private registry is created when nil.
	Registry    *prometheus.Registry
	Logger      zerolog.Logger
	CORSOrigins []string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) (*echo.Echo, error) {
	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if err := metrics.Register(reg); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "hotel",
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Rooms ---
	rooms := handler.NewRoomHandler(deps.Rooms)
	rg := e.Group("/rooms")
	rg.GET("/all", rooms.List)
	rg.GET("/number/:roomNumber", rooms.GetByNumber)
	rg.GET("/type/:type", rooms.ListByType)
	rg.GET("/amenities", rooms.ListByAmenities)
	rg.GET("/:id", rooms.GetByID)
	rg.POST("/new", rooms.Create)
	rg.PUT("/edit/:id", rooms.Edit)
	rg.DELETE("/delete/:id", rooms.Delete)

	// --- Users ---
	users := handler.NewUserHandler(deps.Users)
	e.GET("/users", users.GetByEmail)
	ug := e.Group("/users")
	ug.GET("/all", users.List)
	ug.GET("/role", users.GetByRole)
	ug.GET("/guests", users.Guests)
	ug.POST("/new", users.Create)
	ug.PUT("/edit/:id", users.Edit)
	ug.DELETE("/:id", users.Delete)

	// --- Reservations ---
	reservations := handler.NewReservationHandler(deps.Reservations)
	resg := e.Group("/reservations")
	resg.GET("/all", reservations.List)
	resg.GET("/room/:roomNumber", reservations.ListByRoom)
	resg.GET("/user/:userId", reservations.ListByUser)
	resg.GET("/:id", reservations.GetByID)
	resg.POST("/new", reservations.Create)
	resg.PUT("/edit/:id", reservations.Update)
	resg.DELETE("/delete/:id", reservations.Delete)

	// --- Operational ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
