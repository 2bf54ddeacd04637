package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// Deps carries the shared service instances the routes need.
type Deps struct {
	Parser  *services.IntakeParser
	Chatbot *services.ChatbotService
	Weather *services.WeatherService
	OAuth   *services.OAuthService
	Push    *services.PushService
	Hub     *services.RealtimeHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	intakeCtl := controllers.NewIntakeController(d.Parser)
	chatbotCtl := controllers.NewChatbotController(d.Chatbot)
	barcodeCtl := controllers.NewBarcodeController(services.NewBarcodeService())
	hydrationCtl := controllers.NewHydrationController(d.Weather)
	wearableCtl := controllers.NewWearableController(d.OAuth)
	tipsCtl := controllers.NewTipsController(services.NewTipsService())
	deviceCtl := controllers.NewDeviceController(d.Push)
	realtimeCtl := controllers.NewRealtimeController(d.Hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// OAuth providers redirect here; state carries the user binding.
	r.GET("/wearable/oauth/:platform/callback", wearableCtl.Callback)

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/settings", controllers.UpdateSettings)
		user.POST("/devices", deviceCtl.Register)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
		user.GET("/reminders", controllers.RecentReminders)
	}

	water := r.Group("/water")
	water.Use(middlewares.AuthMiddleware())
	{
		water.POST("/logs", controllers.LogWater)
		water.GET("/logs", controllers.RecentLogs)
		water.DELETE("/logs/:id", controllers.DeleteLog)
		water.GET("/progress", controllers.TodayProgress)
		water.GET("/history", controllers.History)
		water.GET("/stats", controllers.GetStats)
		water.GET("/export", controllers.ExportLogs)
		water.GET("/drink-types", controllers.ListDrinkTypes)
	}

	containers := r.Group("/containers")
	containers.Use(middlewares.AuthMiddleware())
	{
		containers.GET("", controllers.ListContainers)
		containers.POST("", controllers.CreateContainer)
		containers.PUT("/:id", controllers.UpdateContainer)
		containers.DELETE("/:id", controllers.DeleteContainer)
		containers.POST("/:id/log", controllers.LogFromContainer)
	}

	intake := r.Group("/intake")
	intake.Use(middlewares.AuthMiddleware())
	{
		intake.POST("/parse", intakeCtl.Parse)
		intake.POST("/voice", intakeCtl.LogVoice)
		intake.POST("/text", intakeCtl.LogText)
		intake.POST("/label", controllers.ScanLabel)
		intake.POST("/label/log", controllers.LogFromLabel)
		intake.GET("/barcode/:code", barcodeCtl.Lookup)
		intake.POST("/barcode/:code/log", barcodeCtl.Log)
	}

	chatbot := r.Group("/chatbot")
	chatbot.Use(middlewares.AuthMiddleware())
	{
		chatbot.POST("/message", chatbotCtl.Message)
	}

	hydration := r.Group("/hydration")
	hydration.Use(middlewares.AuthMiddleware())
	{
		hydration.GET("/recommendation", hydrationCtl.Recommend)
		hydration.GET("/tips", tipsCtl.GetTips)
	}

	wearable := r.Group("/wearable")
	wearable.Use(middlewares.AuthMiddleware())
	{
		wearable.GET("/connections", wearableCtl.List)
		wearable.POST("/connect/:platform", wearableCtl.Connect)
		wearable.DELETE("/connect/:platform", wearableCtl.Disconnect)
		wearable.POST("/sync/:platform", wearableCtl.Sync)
		wearable.GET("/activity", wearableCtl.Activity)
		wearable.GET("/activity/history", wearableCtl.ActivityHistory)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/reminders", realtimeCtl.EventsWS)
	}

	return r
}
