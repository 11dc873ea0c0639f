package routes

import (
	"net/http"
	"time"

	"glowdesk/handlers"
	"glowdesk/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint. The widget is embedded on arbitrary
// salon websites, so CORS is open; auth happens per route group instead.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "X-Dashboard-Key"},
		MaxAge:          12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterWidgetRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Glowdesk"})
	})
}

// RegisterWidgetRoutes sets up the customer-facing booking workflow. Only
// the widget config and session opening are public; everything else needs
// the session token minted at session start.
func RegisterWidgetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/widget/:salonId")
	{
		api.GET("/config", hb.Salon.WidgetConfig)
		api.POST("/session", hb.Widget.StartSession)

		protected := api.Group("")
		protected.Use(middleware.SessionAuthMiddleware())
		protected.GET("/days", hb.Widget.GetDays)
		protected.GET("/slots", hb.Widget.GetSlots)
		protected.GET("/staff", hb.Widget.GetStaffOptions)
		protected.POST("/advance", hb.Widget.Advance)
		protected.POST("/back", hb.Widget.GoBack)
		protected.POST("/commit", hb.Widget.Commit)
	}
}

// RegisterDashboardRoutes sets up the operator dashboard endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Salon creation is the bootstrap call and cannot require a per-salon
	// credential.
	r.POST("/api/salons", hb.Salon.Create)

	api := r.Group("/api/dashboard/:salonId")
	api.Use(middleware.OperatorAuthMiddleware(hb.SalonRepo))
	{
		api.PUT("/hours", hb.Salon.UpdateHours)
		api.PUT("/branding", hb.Salon.UpdateBranding)

		api.GET("/services", hb.Catalog.List)
		api.POST("/services", hb.Catalog.Create)
		api.PUT("/services/:id", hb.Catalog.Update)
		api.POST("/services/:id/rename", hb.Catalog.Rename)
		api.DELETE("/services/:id", hb.Catalog.Delete)

		api.GET("/staff", hb.Staff.List)
		api.POST("/staff", hb.Staff.Create)
		api.PUT("/staff/:id", hb.Staff.Update)
		api.DELETE("/staff/:id", hb.Staff.Delete)

		api.GET("/bookings", hb.Bookings.List)
		api.PATCH("/bookings/:id/status", hb.Bookings.UpdateStatus)

		api.POST("/images", hb.Storage.UploadImage)
		api.DELETE("/images", hb.Storage.DeleteImage)
	}
}
