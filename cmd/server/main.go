package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"interview-transcription-backend/internal/config"
	"interview-transcription-backend/internal/handlers"
	"interview-transcription-backend/internal/storage"
	"interview-transcription-backend/internal/store"
	"interview-transcription-backend/internal/supabase"
	"interview-transcription-backend/internal/transcriber"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Local file store (always active)
	localStore, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload directory: %v", err)
	}
	log.Printf("Upload directory: %s", cfg.UploadDir)

	// Remote blob store (optional; absence means local-only storage)
	var blobClient *supabase.StorageClient
	if cfg.RemoteStorageEnabled() {
		blobClient, err = supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)
		if err != nil {
			log.Printf("Warning: failed to initialize remote storage: %v", err)
			log.Println("Files will be stored locally only.")
			blobClient = nil
		} else {
			log.Printf("Remote storage enabled, bucket: %s", cfg.SupabaseStorageBucket)
		}
	} else {
		log.Println("Warning: remote storage credentials not found. Files will be stored locally.")
	}

	// In-memory record store and transcription simulator
	recordStore := store.New()
	sample := transcriber.LoadSampleData(cfg.SampleTranscriptPath, cfg.SampleAnalysisPath)
	log.Printf("Sample transcript loaded: %d segments", len(sample.Transcript))
	log.Printf("Sample analysis loaded: %d keywords", len(sample.Analysis.Keywords))
	simulator := transcriber.NewSimulator(recordStore, cfg.ProcessingDelay, sample)

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(recordStore, localStore, blobClient)
	interviewsHandler := handlers.NewInterviewsHandler(recordStore, localStore, blobClient)
	transcribeHandler := handlers.NewTranscribeHandler(recordStore, simulator)
	tagsHandler := handlers.NewTagsHandler(recordStore)
	queryHandler := handlers.NewQueryHandler(recordStore)
	statsHandler := handlers.NewStatsHandler(recordStore)
	healthHandler := handlers.NewHealthHandler(recordStore, blobClient)

	// Setup router
	router := gin.Default()

	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Health check and metrics (no prefix)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api")

	api.POST("/interviews/upload", uploadHandler.Upload)
	api.GET("/interviews", interviewsHandler.List)
	api.GET("/interviews/:interview_id", interviewsHandler.Get)
	api.DELETE("/interviews/:interview_id", interviewsHandler.Delete)

	api.POST("/interviews/:interview_id/transcribe", transcribeHandler.Transcribe)
	api.GET("/interviews/:interview_id/status", transcribeHandler.GetStatus)

	api.GET("/interviews/:interview_id/file", interviewsHandler.GetFile)
	api.GET("/interviews/:interview_id/remote-url", interviewsHandler.GetRemoteURL)

	api.GET("/interviews/:interview_id/search", queryHandler.Search)
	api.GET("/interviews/:interview_id/export", queryHandler.Export)
	api.GET("/interviews/:interview_id/keywords", queryHandler.GetKeywords)
	api.GET("/interviews/:interview_id/questions", queryHandler.GetQuestions)
	api.GET("/interviews/:interview_id/topics", queryHandler.GetTopics)
	api.GET("/interviews/:interview_id/speaker-analysis", queryHandler.GetSpeakerAnalysis)

	api.POST("/interviews/:interview_id/tags", tagsHandler.AddTag)
	api.DELETE("/interviews/:interview_id/tags/:tag_id", tagsHandler.DeleteTag)

	api.GET("/stats", statsHandler.GetStats)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
