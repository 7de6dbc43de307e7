package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/moodcast/backend/internal/config"
	"github.com/moodcast/backend/internal/handlers"
	"github.com/moodcast/backend/internal/logger"
	"github.com/moodcast/backend/internal/middleware"
	"github.com/moodcast/backend/internal/repository"
	"github.com/moodcast/backend/internal/service"
	"github.com/moodcast/backend/pkg/classifier"
	"github.com/moodcast/backend/pkg/supabase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.New(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting moodcast API server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
		logger.String("classifier_url", cfg.Classifier.URL),
	)

	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
	classifierClient := classifier.NewClient(cfg.Classifier.URL, cfg.Classifier.Timeout)

	journalRepo := repository.NewJournalRepository(supabaseClient)
	analysisRepo := repository.NewAnalysisRepository(supabaseClient)

	journalService := service.NewJournalService(journalRepo, classifierClient)
	analyzeService := service.NewAnalyzeService(analysisRepo, classifierClient)
	insightService := service.NewInsightService(journalRepo, analysisRepo, cfg.Analysis)

	journalHandler := handlers.NewJournalHandler(journalService)
	analyzeHandler := handlers.NewAnalyzeHandler(analyzeService)
	insightsHandler := handlers.NewInsightsHandler(insightService)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.Auth(supabaseClient))
		{
			// Quick analysis
			protected.POST("/analyze", analyzeHandler.Analyze)
			protected.GET("/analyze/history", analyzeHandler.GetHistory)

			// Journal entries
			protected.GET("/journals", journalHandler.GetJournals)
			protected.POST("/journals", journalHandler.CreateJournal)
			protected.GET("/journals/:id", journalHandler.GetJournal)
			protected.PUT("/journals/:id", journalHandler.UpdateJournal)
			protected.DELETE("/journals/:id", journalHandler.DeleteJournal)

			// Streaks and achievements
			protected.GET("/streaks/current", insightsHandler.GetStreaks)
			protected.GET("/streaks/achievements", insightsHandler.GetAchievements)

			// Predictions
			protected.GET("/predictions/mood-forecast", insightsHandler.GetMoodForecast)
			protected.GET("/predictions/coping-strategies", insightsHandler.GetCopingStrategies)

			// Prompts
			protected.GET("/prompts/daily", insightsHandler.GetDailyPrompt)
			protected.GET("/prompts/suggestions", insightsHandler.GetPromptSuggestions)

			// Insights
			protected.GET("/insights/weekly", insightsHandler.GetWeeklyInsights)
			protected.GET("/insights/patterns", insightsHandler.GetPatterns)

			// Dashboard
			protected.GET("/dashboard/stats", insightsHandler.GetDashboardStats)
			protected.GET("/dashboard/trend", insightsHandler.GetTrend)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
