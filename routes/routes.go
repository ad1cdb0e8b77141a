package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotelms-backend/controllers"
	"hotelms-backend/middleware"
	"hotelms-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	blc *controllers.BillingController,
	gc *controllers.GuestController,
	sc *controllers.ServiceController,
	stc *controllers.StaffController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), middleware.Metrics())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", ac.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtSecret))
	{
		rooms := protected.Group("/rooms")
		{
			// /available must come before /:id
			rooms.GET("/available", rc.GetAvailableRooms)
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.PATCH("/:id/status", rc.SetRoomStatus)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		roomTypes := protected.Group("/room-types")
		{
			roomTypes.GET("", rc.GetRoomTypes)
			roomTypes.POST("", rc.CreateRoomType)
			roomTypes.DELETE("/:id", rc.DeleteRoomType)
		}

		guests := protected.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.POST("", gc.CreateGuest)
			guests.GET("/:id", gc.GetGuestByID)
			guests.PUT("/:id", gc.UpdateGuest)
			guests.DELETE("/:id", gc.DeleteGuest)
		}

		bookings := protected.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingDetails)
			bookings.POST("/:id/check-in", bc.CheckIn)
			bookings.POST("/:id/check-out", bc.CheckOut)
			bookings.POST("/:id/cancel", bc.Cancel)
			bookings.GET("/:id/services", sc.ListUsage)
			bookings.POST("/:id/services", sc.RecordUsage)
		}

		bills := protected.Group("/bills")
		{
			bills.POST("/:bookingId", blc.GenerateBill)
			bills.GET("/:bookingId", blc.GetBill)
		}

		payments := protected.Group("/payments")
		{
			payments.POST("", blc.RecordPayment)
			payments.GET("", blc.ListPayments)
		}

		servicesGroup := protected.Group("/services")
		{
			servicesGroup.GET("", sc.GetServices)
			servicesGroup.POST("", sc.CreateService)
			servicesGroup.PUT("/:id", sc.UpdateService)
			servicesGroup.DELETE("/:id", sc.DeleteService)
		}

		reports := protected.Group("/reports")
		reports.Use(middleware.RequireRole(models.RoleAdmin, models.RoleManager))
		{
			reports.GET("/revenue", blc.RevenueReport)
		}

		admin := protected.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/staff", stc.GetStaff)
			admin.POST("/staff", stc.CreateStaff)
			admin.DELETE("/staff/:id", stc.DeleteStaff)
			admin.GET("/branches", stc.GetBranches)
			admin.POST("/branches", stc.CreateBranch)
		}
	}

	return r
}
