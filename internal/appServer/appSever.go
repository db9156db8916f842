package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"room-booking-frontend/config"
	"room-booking-frontend/internal/backend"
	"room-booking-frontend/internal/service"
	"room-booking-frontend/internal/session"
	"room-booking-frontend/internal/transport"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// The backend REST API is the only upstream this application talks to.
	client := backend.NewClient(&cfg.Backend)
	logrus.WithField("base_url", cfg.Backend.BaseURL).Info("Backend client initialized")

	store := session.NewStore(&cfg.Session)

	// Initialize services
	authService := service.NewAuthService(client)
	roomService := service.NewRoomService(client)
	bookingService := service.NewBookingService(client)

	// Initialize handlers
	authHandler := transport.NewAuthHandler(authService, store)
	roomHandler := transport.NewRoomHandler(roomService)
	bookingHandler := transport.NewBookingHandler(bookingService, roomService, store)
	adminHandler := transport.NewAdminHandler(bookingService, roomService, store)

	if cfg.Server.Env == "production" || cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(cfg, store, authHandler, roomHandler, bookingHandler, adminHandler)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
