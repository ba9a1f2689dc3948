package routes

import (
	"net/http"
	"time"

	"clinicdesk/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers availability queries and schedule editing.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.GET("/day/:date", hb.GetDayHandler)
		api.GET("/month/:year/:month", hb.GetMonthHandler)

		// Single-entry path fed by the range editor.
		api.GET("/recurring", hb.ListRecurringHandler)
		api.POST("/recurring", hb.CreateRecurringHandler)
		api.PATCH("/recurring/:id", hb.UpdateRecurringHandler)
		api.DELETE("/recurring/:id", hb.DeleteRecurringHandler)

		// Bulk intents; 409 while another mutation is settling.
		api.POST("/weekday/template", hb.ApplyWeekdayTemplateHandler)
		api.POST("/weekday/close", hb.CloseWeekdayHandler)
		api.POST("/saturday", hb.SetSaturdayHandler)
		api.POST("/special", hb.ConvertSpecialHandler)
		api.DELETE("/special/:date", hb.RemoveSpecialHandler)
	}
}

// RegisterMemoRoutes registers the per-date memo endpoints.
func RegisterMemoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/memos")
	{
		api.GET("/:date", hb.GetMemoHandler)
		api.PUT("/:date", hb.SaveMemoHandler)
		api.DELETE("/:date", hb.DeleteMemoHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Clinicdesk"})
	})
}

// RegisterRoutes wires CORS and every route group onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterScheduleRoutes(r, hb)
	RegisterMemoRoutes(r, hb)
}
