package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SouLSoniC07/AI-Tutor/internal/dto"
	"github.com/SouLSoniC07/AI-Tutor/internal/entity"
	"github.com/SouLSoniC07/AI-Tutor/internal/pkg/logger"
	"github.com/SouLSoniC07/AI-Tutor/internal/repository/memory"

	"github.com/google/uuid"
)

type IDocumentService interface {
	Upload(ctx context.Context, file *multipart.FileHeader, subject, topic string) (*entity.DocumentRecord, error)
	List(ctx context.Context) []*dto.DocumentMetaResponse
	Resolve(ctx context.Context, storageKey string) (string, error)
}

var ErrDocumentNotFound = fmt.Errorf("document not found")

type documentService struct {
	knowledgeRepo    *memory.KnowledgeRepository
	publisherService IPublisherService
	uploadDir        string
	logger           logger.ILogger
}

func NewDocumentService(
	knowledgeRepo *memory.KnowledgeRepository,
	publisherService IPublisherService,
	uploadDir string,
	sysLogger logger.ILogger,
) IDocumentService {
	return &documentService{
		knowledgeRepo:    knowledgeRepo,
		publisherService: publisherService,
		uploadDir:        uploadDir,
		logger:           sysLogger,
	}
}

// Upload persists the file under a random storage key, registers it as the new
// most-recent document, and publishes the upload event.
func (s *documentService) Upload(ctx context.Context, file *multipart.FileHeader, subject, topic string) (*entity.DocumentRecord, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(s.uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	// The storage key keeps the original extension so files served from
	// /uploads and /file/:filename carry the right content type.
	storageKey := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	dstPath := filepath.Join(s.uploadDir, storageKey)

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("create stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	record := entity.DocumentRecord{
		StorageKey:   storageKey,
		OriginalName: file.Filename,
		Subject:      subject,
		Topic:        topic,
		UploadedAt:   time.Now(),
	}
	s.knowledgeRepo.Prepend(record)

	s.logger.Info("document", "document uploaded", map[string]interface{}{
		"storage_key": storageKey,
		"original":    file.Filename,
		"subject":     subject,
		"topic":       topic,
	})

	if s.publisherService != nil {
		payload, err := json.Marshal(dto.DocumentUploadedMessage{
			StorageKey:   storageKey,
			OriginalName: file.Filename,
		})
		if err == nil {
			if err := s.publisherService.Publish(ctx, payload); err != nil {
				s.logger.Warn("document", "failed to publish upload event", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}

	return &record, nil
}

func (s *documentService) List(ctx context.Context) []*dto.DocumentMetaResponse {
	records := s.knowledgeRepo.All()
	out := make([]*dto.DocumentMetaResponse, 0, len(records))
	for _, record := range records {
		out = append(out, &dto.DocumentMetaResponse{
			Filename:     record.StorageKey,
			OriginalName: record.OriginalName,
			Subject:      record.Subject,
			Topic:        record.Topic,
		})
	}
	return out
}

// Resolve maps a storage key to its on-disk path. Keys are validated against
// the registry, which also blocks path traversal through the filename param.
func (s *documentService) Resolve(ctx context.Context, storageKey string) (string, error) {
	record, ok := s.knowledgeRepo.FindByStorageKey(filepath.Base(storageKey))
	if !ok {
		return "", ErrDocumentNotFound
	}

	path := filepath.Join(s.uploadDir, record.StorageKey)
	if _, err := os.Stat(path); err != nil {
		return "", ErrDocumentNotFound
	}
	return path, nil
}
