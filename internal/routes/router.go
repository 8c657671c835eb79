package routes

import (
	"freightconnect/internal/config"
	"freightconnect/internal/delivery/http/handler"
	"freightconnect/internal/infrastructure/database/postgres"
	"freightconnect/internal/logger"
	"freightconnect/internal/middleware"
	"freightconnect/internal/refdata"
	"freightconnect/internal/usecase/freight"
	"freightconnect/internal/usecase/interest"
	"freightconnect/internal/usecase/wizard"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware order: request ID, logging, security headers, CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	referenceProvider := refdata.NewProvider(refdata.NewStaticSource())
	referenceHandler := handler.NewReferenceHandler(referenceProvider)

	freightRepository := postgres.NewFreightRepository(db)
	companyRepository := postgres.NewCompanyRepository(db)
	interestRepository := postgres.NewInterestRepository(db)

	freightService := freight.NewService(freightRepository, companyRepository, cfg.Query)
	freightHandler := handler.NewFreightHandler(freightService)

	wizardService := wizard.NewService(freightRepository, companyRepository, referenceProvider)
	wizardHandler := handler.NewWizardHandler(wizardService)

	interestService := interest.NewService(interestRepository, freightRepository, companyRepository)
	interestHandler := handler.NewInterestHandler(interestService)

	v1 := router.Group("/api/v1")
	{
		referenceHandler.RegisterRoutes(v1)
		freightHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			// Company routes: wizard lifecycle, freight management, interest responses
			company := protected.Group("")
			company.Use(middleware.CompanyOnly())
			{
				wizardHandler.RegisterCompanyRoutes(company)
				freightHandler.RegisterCompanyRoutes(company)
				interestHandler.RegisterCompanyRoutes(company)
			}

			// Driver routes: register and list interests
			driver := protected.Group("")
			driver.Use(middleware.DriverOnly())
			{
				interestHandler.RegisterDriverRoutes(driver)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
