package bootstrap

import (
	"log"
	"time"

	"github.com/SouLSoniC07/AI-Tutor/internal/config"
	"github.com/SouLSoniC07/AI-Tutor/internal/controller"
	"github.com/SouLSoniC07/AI-Tutor/internal/pkg/logger"
	"github.com/SouLSoniC07/AI-Tutor/internal/repository/memory"
	"github.com/SouLSoniC07/AI-Tutor/internal/service"
	"github.com/SouLSoniC07/AI-Tutor/pkg/chunk"
	"github.com/SouLSoniC07/AI-Tutor/pkg/embedding"
	"github.com/SouLSoniC07/AI-Tutor/pkg/extract"
	"github.com/SouLSoniC07/AI-Tutor/pkg/llm"
	"github.com/SouLSoniC07/AI-Tutor/pkg/llm/factory"
	"github.com/SouLSoniC07/AI-Tutor/pkg/retrieval"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	AskController      controller.IAskController
	DocumentController controller.IDocumentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Retrieval pipeline
	extractor := extract.NewExtractor()
	splitter := chunk.NewSplitter(cfg.Ai.ChunkStrategy, cfg.Ai.ChunkMinLength)

	embeddingProvider := embedding.NewHTTPProvider(
		cfg.Ai.EmbedderBaseURL,
		time.Duration(cfg.Ai.EmbeddingTimeout)*time.Second,
	)

	scorer, err := retrieval.NewScorer(cfg.Ai.ScoringStrategy, embeddingProvider)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize scorer: %v", err)
	}
	log.Printf("[INFO] Using Scoring Strategy: %s", scorer.Name())

	var llmProvider llm.Provider
	if cfg.Ai.GenerateAnswers {
		llmProvider, err = factory.NewProvider(cfg.Ai.LLMProvider, cfg.Ai.LLMModel, cfg.Ai.OllamaBaseURL)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
		}
		log.Printf("[INFO] Answer generation enabled: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	// 4. Stores
	knowledgeRepo := memory.NewKnowledgeRepository()

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Ai.UploadTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Ai.UploadTopic,
		extractor,
		splitter,
		cfg.Storage.UploadDir,
		sysLogger,
	)

	tutorService := service.NewTutorService(
		knowledgeRepo,
		extractor,
		splitter,
		scorer,
		llmProvider,
		cfg.Storage.UploadDir,
		sysLogger,
	)
	documentService := service.NewDocumentService(
		knowledgeRepo,
		publisherService,
		cfg.Storage.UploadDir,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		AskController:      controller.NewAskController(tutorService),
		DocumentController: controller.NewDocumentController(documentService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
