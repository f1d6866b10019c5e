package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/asir-flora/internal/config"
	"github.com/jengzang/asir-flora/internal/dataset"
	"github.com/jengzang/asir-flora/internal/figure"
	"github.com/jengzang/asir-flora/internal/handler"
	"github.com/jengzang/asir-flora/internal/middleware"
	"github.com/jengzang/asir-flora/internal/service"
)

// HoverPath receives hover payloads from the plot page
const HoverPath = "/api/v1/hover"

// SetupRouter 设置路由. The returned func stops the hover rate limiter.
func SetupRouter(cfg *config.Config, provider *dataset.Provider) (*gin.Engine, func()) {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(HoverPath))

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	hoverHandler := handler.NewHoverHandler(service.NewHoverService(provider, cfg.Variant.TooltipAnchor))
	recordHandler := handler.NewRecordHandler(service.NewRecordService(provider))
	pageHandler := handler.NewPageHandler(
		service.NewFigureService(provider, figure.OptionsFor(cfg.Variant, cfg.AssetsHost)),
		cfg,
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"records": provider.Len(),
		})
	})

	r.GET("/", pageHandler.GetPage)

	if cfg.PhotoDir != "" {
		r.Static("/photos", cfg.PhotoDir)
	}

	api := r.Group("/api/v1")
	{
		hover := api.Group("/hover")
		hover.Use(middleware.RateLimit(limiter))
		{
			hover.POST("", hoverHandler.Hover)
			hover.GET("/nearest", hoverHandler.Nearest)
		}

		records := api.Group("/records")
		{
			records.GET("", recordHandler.GetRecords)
			records.GET("/:id", recordHandler.GetRecord)
		}

		api.GET("/summary", recordHandler.GetSummary)
		api.GET("/config", pageHandler.GetConfig)
	}

	return r, limiter.Stop
}
