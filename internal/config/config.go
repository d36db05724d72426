package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Local storage
	UploadDir string

	// Supabase blob store; empty URL or key disables remote storage
	SupabaseURL           string
	SupabaseServiceKey    string
	SupabaseStorageBucket string

	// Canned sample data
	SampleTranscriptPath string
	SampleAnalysisPath   string

	// Simulated transcription delay
	ProcessingDelay time.Duration
}

// Load reads configuration from an optional .env file and the
// environment. Every key has a default; the service never fails to
// start because a collaborator is unconfigured.
func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.environment", "development")
	viper.SetDefault("upload.dir", "./uploads")
	viper.SetDefault("supabase.url", "")
	viper.SetDefault("supabase.service_key", "")
	viper.SetDefault("supabase.storage_bucket", "interview-media")
	viper.SetDefault("sample.transcript_path", "sample_transcript.json")
	viper.SetDefault("sample.analysis_path", "sample_analysis.json")
	viper.SetDefault("processing.delay", "2s")

	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("server.environment", "ENVIRONMENT")
	viper.BindEnv("upload.dir", "UPLOAD_DIR")
	viper.BindEnv("supabase.url", "SUPABASE_URL")
	viper.BindEnv("supabase.service_key", "SUPABASE_SERVICE_KEY")
	viper.BindEnv("supabase.storage_bucket", "SUPABASE_STORAGE_BUCKET")
	viper.BindEnv("sample.transcript_path", "SAMPLE_TRANSCRIPT_PATH")
	viper.BindEnv("sample.analysis_path", "SAMPLE_ANALYSIS_PATH")
	viper.BindEnv("processing.delay", "PROCESSING_DELAY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found, using defaults and environment variables")
		} else {
			log.Printf("Error reading config file: %v", err)
		}
	}

	return &Config{
		Port:                  viper.GetString("server.port"),
		Environment:           viper.GetString("server.environment"),
		UploadDir:             viper.GetString("upload.dir"),
		SupabaseURL:           viper.GetString("supabase.url"),
		SupabaseServiceKey:    viper.GetString("supabase.service_key"),
		SupabaseStorageBucket: viper.GetString("supabase.storage_bucket"),
		SampleTranscriptPath:  viper.GetString("sample.transcript_path"),
		SampleAnalysisPath:    viper.GetString("sample.analysis_path"),
		ProcessingDelay:       viper.GetDuration("processing.delay"),
	}
}

// RemoteStorageEnabled reports whether blob-store credentials are
// present. When false the service runs in local-only mode.
func (c *Config) RemoteStorageEnabled() bool {
	return c.SupabaseURL != "" && c.SupabaseServiceKey != ""
}
