package router

import (
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/outflo/outflo-backend/internal/config"
	"github.com/outflo/outflo-backend/internal/database/repository"
	"github.com/outflo/outflo-backend/internal/handlers"
	"github.com/outflo/outflo-backend/internal/middleware"
	"github.com/outflo/outflo-backend/internal/services"
	"github.com/outflo/outflo-backend/internal/services/excel"
)

// SetupRouter configures the Gin router with the campaign, lead and message
// routes. events and generator are constructed in main; events may be nil.
func SetupRouter(db *gorm.DB, cfg *config.Config, events *services.EventService, generator services.TextGenerator) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Report validation failures under the request's json field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}

	// Create a new router
	r := gin.New()

	// Use middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// Configure CORS for the frontend origin
	allowedOrigins := []string{"*"}
	if cfg.FrontendURL != "" {
		allowedOrigins = []string{cfg.FrontendURL}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: cfg.FrontendURL != "",
		MaxAge:           12 * time.Hour,
	}))

	// Create repositories and services
	campaignRepo := repository.NewCampaignRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	campaignService := services.NewCampaignService(campaignRepo, events)
	leadService := services.NewLeadService(leadRepo)
	messageService := services.NewMessageService(generator)
	excelService := excel.NewService("exports")

	// Create handlers with services
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	leadHandler := handlers.NewLeadHandler(leadService, excelService)
	messageHandler := handlers.NewMessageHandler(messageService)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Liveness probe
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"message": "Server is running",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// API v1 routes
	api := r.Group("/api/v1")
	{
		campaigns := api.Group("/campaigns")
		{
			campaigns.GET("/get-campaign", campaignHandler.GetCampaigns)
			campaigns.GET("/get-campaign/:id", campaignHandler.GetCampaignByID)
			campaigns.POST("/add-campaign", campaignHandler.CreateCampaign)
			campaigns.PUT("/update-campaign/:id", campaignHandler.UpdateCampaign)
			campaigns.DELETE("/delete-campaign/:id", campaignHandler.DeleteCampaign)
		}

		leads := api.Group("/leads")
		{
			leads.GET("/search", leadHandler.SearchLeads)
			leads.GET("/get-leads", leadHandler.GetAllLeads)
			leads.GET("/export-leads", leadHandler.ExportLeads)
		}

		messages := api.Group("/messages")
		{
			messages.POST("/generate-message", messageHandler.GenerateMessage)
		}
	}

	return r
}
