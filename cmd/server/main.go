package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/nnsriram27/physpropprior-study/docs"
	"github.com/nnsriram27/physpropprior-study/internal/config"
	"github.com/nnsriram27/physpropprior-study/internal/database"
	"github.com/nnsriram27/physpropprior-study/internal/dataset"
	"github.com/nnsriram27/physpropprior-study/internal/handlers"
	"github.com/nnsriram27/physpropprior-study/internal/middleware"
	"github.com/nnsriram27/physpropprior-study/internal/packs"
	"github.com/nnsriram27/physpropprior-study/internal/remote"
	"github.com/nnsriram27/physpropprior-study/internal/services"
	"github.com/nnsriram27/physpropprior-study/internal/store"
	"github.com/nnsriram27/physpropprior-study/internal/ws"
)

// @title           Physical Property Prior Study API
// @version         1.0
// @description     Backend for the 2AFC video survey study: participant sessions, pack assignment, submission collection
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	sessionStore := store.NewGormStore(db)
	loader := dataset.NewFileLoader(cfg.DataDir)
	manifest := func() []string { return packs.LoadManifest(cfg.DataDir) }
	syncClient := remote.NewClient(30 * time.Second)

	fields, err := packs.LoadFields(cfg.FieldsConfig)
	if err != nil {
		log.Printf("fields config not loaded, summary will only count submissions: %v", err)
	}

	authService := services.NewAuthService(db, cfg.JWTSecret)
	sessionService := services.NewSessionService(sessionStore, loader, manifest, syncClient, hub, services.SessionOptions{
		DefaultQuestionSet: cfg.DefaultQuestionSet,
		ResponseEndpoint:   cfg.ResponseEndpoint,
		AutosaveDelay:      time.Duration(cfg.AutosaveDelayMS) * time.Millisecond,
		NavCooldown:        time.Duration(cfg.NavCooldownMS) * time.Millisecond,
	})
	defer sessionService.Shutdown()
	resultsService := services.NewResultsService(db, sessionStore, fields)

	authHandler := handlers.NewAuthHandler(authService)
	participantHandler := handlers.NewParticipantHandler(sessionService)
	submissionHandler := handlers.NewSubmissionHandler(sessionService)
	datasetHandler := handlers.NewDatasetHandler(loader, manifest)
	collectHandler := handlers.NewCollectHandler(resultsService)
	studyHandler := handlers.NewStudyHandler(resultsService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Static("/videos", cfg.DataDir+"/videos")
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/study", wsHandler.HandleWebSocket)

	sweeper := cron.New()
	ttl := time.Duration(cfg.SessionTTLMin) * time.Minute
	sweeper.AddFunc("@every 5m", func() {
		if n := sessionService.EvictIdle(ttl); n > 0 {
			log.Printf("evicted %d idle sessions", n)
		}
	})
	sweeper.Start()
	defer sweeper.Stop()

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		sessions := api.Group("/sessions")
		{
			sessions.POST("/start", participantHandler.StartSession)
			sessions.GET("/:name", participantHandler.GetState)
			sessions.POST("/:name/answer", participantHandler.Answer)
			sessions.POST("/:name/skip", participantHandler.Skip)
			sessions.POST("/:name/next", participantHandler.Next)
			sessions.POST("/:name/back", participantHandler.Back)
			sessions.GET("/:name/download", submissionHandler.Download)
			sessions.POST("/:name/send", submissionHandler.Send)
		}

		api.GET("/datasets/*name", datasetHandler.GetDataset)
		api.GET("/packs/manifest", datasetHandler.GetManifest)
		api.POST("/responses", collectHandler.Collect)

		study := api.Group("/study")
		study.Use(middleware.JWTAuth(authService))
		{
			study.GET("/sessions", studyHandler.ListSessions)
			study.GET("/submissions", studyHandler.ListSubmissions)
			study.GET("/summary", studyHandler.Summary)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
