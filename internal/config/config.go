package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Ai      AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type StorageConfig struct {
	UploadDir string
}

type AIConfig struct {
	ScoringStrategy  string // "keyword" or "embedding"
	ChunkStrategy    string // "paragraph" or "simple"
	ChunkMinLength   int
	EmbedderBaseURL  string
	EmbeddingTimeout int // seconds
	GenerateAnswers  bool
	LLMProvider      string // "ollama"
	LLMModel         string // e.g. "llama3", "qwen2.5"
	OllamaBaseURL    string
	UploadTopic      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "4000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:4000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Storage: StorageConfig{
			UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
		},
		Ai: AIConfig{
			ScoringStrategy:  getEnv("SCORING_STRATEGY", "keyword"),
			ChunkStrategy:    getEnv("CHUNK_STRATEGY", "paragraph"),
			ChunkMinLength:   getEnvAsInt("CHUNK_MIN_LENGTH", 24),
			EmbedderBaseURL:  getEnv("EMBEDDER_BASE_URL", "http://localhost:5678"),
			EmbeddingTimeout: getEnvAsInt("EMBEDDING_TIMEOUT_SECONDS", 30),
			GenerateAnswers:  getEnvAsBool("GENERATE_ANSWERS", false),
			LLMProvider:      getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:         getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL:    getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			UploadTopic:      getEnv("DOCUMENT_UPLOADED_TOPIC_NAME", "DOCUMENT_UPLOADED"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
