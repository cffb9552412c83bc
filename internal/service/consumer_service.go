package service

import (
	"context"
	"encoding/json"
	"path/filepath"

	"github.com/SouLSoniC07/AI-Tutor/internal/dto"
	"github.com/SouLSoniC07/AI-Tutor/internal/pkg/logger"
	"github.com/SouLSoniC07/AI-Tutor/pkg/chunk"
	"github.com/SouLSoniC07/AI-Tutor/pkg/extract"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService runs a readability pre-flight on every uploaded document:
// extract, chunk, and log the outcome so unreadable uploads surface in the
// logs before the first /ask hits them. Nothing is cached; /ask re-extracts.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	extractor *extract.Extractor
	splitter  *chunk.Splitter
	uploadDir string
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	extractor *extract.Extractor,
	splitter *chunk.Splitter,
	uploadDir string,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		extractor: extractor,
		splitter:  splitter,
		uploadDir: uploadDir,
		logger:    sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.DocumentUploadedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal upload message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	path := filepath.Join(cs.uploadDir, payload.StorageKey)
	text := cs.extractor.Extract(path, payload.OriginalName)

	if extract.IsDiagnostic(text) {
		cs.logger.Warn("consumer", "uploaded document is not readable as text", map[string]interface{}{
			"storage_key": payload.StorageKey,
			"original":    payload.OriginalName,
			"diagnostic":  text,
		})
		msg.Ack()
		return
	}

	chunks := cs.splitter.Split(text)
	cs.logger.Info("consumer", "upload readability check passed", map[string]interface{}{
		"storage_key": payload.StorageKey,
		"original":    payload.OriginalName,
		"text_length": len(text),
		"chunks":      len(chunks),
	})
	msg.Ack()
}
