package routes

import (
	"poolcare-backend/config"
	"poolcare-backend/controllers"
	"poolcare-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.POST("/normalize-order", controllers.NormalizeCustomerOrder)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
			customers.POST("/:id/move-up", controllers.MoveCustomerUp)
			customers.POST("/:id/move-down", controllers.MoveCustomerDown)
		}

		// Service log routes
		logs := api.Group("/service-logs")
		{
			logs.POST("", controllers.CreateServiceLog)
			logs.GET("", controllers.GetServiceLogs)
			logs.GET("/filter", controllers.FilterServiceLogs)
			logs.GET("/by-customer/:customerId", controllers.GetServiceLogsByCustomer)
			logs.GET("/by-date/:date", controllers.GetServiceLogsByDate)
			logs.PUT("/:id", controllers.UpdateServiceLog)
			logs.DELETE("/:id", controllers.DeleteServiceLog)
		}

		// Chemical usage routes
		usage := api.Group("/chemical-usage")
		{
			usage.POST("", controllers.CreateChemicalUsage)
			usage.GET("", controllers.GetChemicalUsage)
			usage.GET("/filter", controllers.FilterChemicalUsage)
			usage.GET("/types", controllers.GetChemicalTypes)
			usage.GET("/by-customer/:customerId", controllers.GetChemicalUsageByCustomer)
			usage.PUT("/:id", controllers.UpdateChemicalUsage)
			usage.DELETE("/:id", controllers.DeleteChemicalUsage)
		}

		// Note routes
		notes := api.Group("/notes")
		{
			notes.POST("", controllers.CreateNote)
			notes.GET("", controllers.GetNotes)
			notes.GET("/filter", controllers.FilterNotes)
			notes.GET("/by-customer/:customerId", controllers.GetNotesByCustomer)
			notes.PUT("/:id", controllers.UpdateNote)
			notes.DELETE("/:id", controllers.DeleteNote)
		}

		// Reports routes
		reportController := controllers.ReportController{}
		api.GET("/reports/weekly", reportController.GetWeeklyReport)
		api.GET("/reports/chemicals", reportController.GetMonthlyChemicalReport)
		api.GET("/history", reportController.GetHistory)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetTodayRoute)

		// Digest routes
		api.POST("/digest/run", controllers.RunDigest)
	}

	return r
}
