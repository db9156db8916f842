package transport

import (
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"room-booking-frontend/config"
	"room-booking-frontend/internal/guard"
	"room-booking-frontend/internal/session"
	"room-booking-frontend/internal/transport/middleware"
)

func InitRoutes(
	cfg *config.Config,
	store *session.Store,
	authHandler *AuthHandler,
	roomHandler *RoomHandler,
	bookingHandler *BookingHandler,
	adminHandler *AdminHandler,
) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Cors.Origins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	router.Use(store.Middleware())

	router.SetFuncMap(template.FuncMap{
		"date": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"money": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		},
	})
	router.LoadHTMLGlob(cfg.Web.TemplatesGlob)
	router.Static("/static", cfg.Web.StaticDir)

	// Public pages
	router.GET("/", roomHandler.Home)

	auth := router.Group("/", guard.SkipIfAuthenticated())
	{
		auth.GET("/login", authHandler.LoginPage)
		auth.POST("/login", authHandler.Login)
		auth.GET("/register", authHandler.RegisterPage)
		auth.POST("/register", authHandler.Register)
	}
	router.POST("/logout", authHandler.Logout)

	// Pages behind authentication
	user := router.Group("/", guard.RequireAuth())
	{
		user.GET("/book/:roomID", bookingHandler.BookingForm)
		user.POST("/book", bookingHandler.CreateBooking)
		user.GET("/my-bookings", bookingHandler.MyBookings)
		user.POST("/my-bookings/:id/cancel", bookingHandler.CancelBooking)
	}

	// Admin pages
	admin := router.Group("/admin", guard.RequireAdmin())
	{
		admin.GET("", adminHandler.Dashboard)
		admin.POST("/bookings/:id/status", adminHandler.UpdateBookingStatus)
		admin.GET("/rooms/new", adminHandler.NewRoomForm)
		admin.POST("/rooms", adminHandler.CreateRoom)
		admin.GET("/rooms/:id/edit", adminHandler.EditRoomForm)
		admin.POST("/rooms/:id", adminHandler.UpdateRoom)
		admin.POST("/rooms/:id/delete", adminHandler.DeleteRoom)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
