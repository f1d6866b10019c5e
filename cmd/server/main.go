package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/asir-flora/internal/api"
	"github.com/jengzang/asir-flora/internal/config"
	"github.com/jengzang/asir-flora/internal/database"
	"github.com/jengzang/asir-flora/internal/dataset"
	"github.com/jengzang/asir-flora/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// 加载数据
	provider, err := loadProvider(cfg)
	if err != nil {
		log.Fatal("Failed to load records:", err)
	}
	log.Printf("Loaded %d records from %s", provider.Len(), provider.Source())

	// 初始化路由
	router, stopLimiter := api.SetupRouter(cfg, provider)
	defer stopLimiter()

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 启动服务器
	go func() {
		log.Printf("Server starting on port %s (variant %s)", cfg.Port, cfg.Variant.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

func loadProvider(cfg *config.Config) (*dataset.Provider, error) {
	if cfg.DataSource != config.SourceSQLite {
		records, err := dataset.Load(cfg.DataPath, dataset.LoadOptions{Sheet: cfg.Sheet})
		if err != nil {
			return nil, err
		}
		return dataset.NewProvider(records, cfg.DataPath), nil
	}

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, err
	}
	// The table is copied into memory, the connection is not needed afterwards
	defer db.Close()

	return service.LoadProvider(context.Background(), db, cfg.DBPath)
}
