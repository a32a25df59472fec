package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"skyways/internal/config"
	"skyways/internal/handlers"
	"skyways/internal/localstore"
	"skyways/internal/metrics"
	"skyways/internal/middleware"
	"skyways/internal/repository"
	"skyways/internal/service"
	"skyways/internal/store"
)

// Server is the booking API.
type Server struct {
	router   *gin.Engine
	config   *config.Config
	local    *localstore.Store
	services *service.Services
	store    *store.Store
}

func NewServer(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.GinMode)

	local, err := localstore.Open(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	repos := repository.NewRepositories(local)

	sessions, err := newSessionRepository(cfg)
	if err != nil {
		return nil, err
	}

	st := store.New(sessions, repos.Users, repos.Bookings)
	services := service.NewServices(st, repos, service.Config{
		SearchDelay:  cfg.SearchDelay,
		PaymentDelay: cfg.PaymentDelay,
	})

	if err := services.Auth.SeedDemoAccount(); err != nil {
		return nil, fmt.Errorf("failed to seed demo account: %w", err)
	}

	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	server := &Server{
		router:   router,
		config:   cfg,
		local:    local,
		services: services,
		store:    st,
	}
	server.setupRoutes()

	return server, nil
}

func newSessionRepository(cfg *config.Config) (store.SessionRepository, error) {
	if cfg.SessionBackend == "redis" {
		sessions, err := store.NewRedisSessions(store.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.SessionTTL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return sessions, nil
	}
	return store.NewMemorySessions(), nil
}

func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services, s.store)

	api := s.router.Group("/api")
	{
		// Token-issuing endpoints; no session required.
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.SignUp)
			auth.POST("/signin", h.SignIn)
		}

		// Everything else runs inside a session.
		authed := api.Group("")
		authed.Use(middleware.SessionToken())
		{
			authed.POST("/auth/signout", h.SignOut)

			authed.GET("/session", h.GetSession)
			authed.POST("/session/view", h.SetView)

			flights := authed.Group("/flights")
			{
				flights.POST("/search", h.SearchFlights)
				flights.POST("/select", h.SelectFlight)
				flights.GET("/:id/seats", h.ListSeats)
			}

			authed.POST("/seats/select", h.SelectSeats)

			bookings := authed.Group("/bookings")
			{
				bookings.POST("", h.CreateBooking)
				bookings.GET("", h.ListBookings)
				bookings.GET("/:reference/ticket", h.DownloadTicket)
			}

			authed.POST("/payments", h.ProcessPayment)

			hotels := authed.Group("/hotels")
			{
				hotels.GET("", h.ListHotels)
				hotels.POST("/bookings", h.BookHotel)
			}

			cabs := authed.Group("/cabs")
			{
				cabs.GET("", h.ListCabs)
				cabs.POST("/estimate", h.EstimateCab)
				cabs.POST("/bookings", h.BookCab)
			}

			packages := authed.Group("/packages")
			{
				packages.GET("/current", h.CurrentPackage)
				packages.POST("/complete", h.CompletePackage)
			}
		}
	}

	s.router.GET("/health", h.Health)
	s.router.GET("/metrics", gin.WrapH(metrics.Handler()))
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter exposes the router for tests and for the main binary.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
