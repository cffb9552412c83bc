package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/SouLSoniC07/AI-Tutor/internal/dto"
	"github.com/SouLSoniC07/AI-Tutor/internal/pkg/logger"
	"github.com/SouLSoniC07/AI-Tutor/internal/repository/memory"
	"github.com/SouLSoniC07/AI-Tutor/pkg/chunk"
	"github.com/SouLSoniC07/AI-Tutor/pkg/extract"
	"github.com/SouLSoniC07/AI-Tutor/pkg/llm"
	"github.com/SouLSoniC07/AI-Tutor/pkg/retrieval"
)

const (
	answerNoKnowledge     = "No valid answer in knowledge base."
	answerProcessingError = "Error processing the question."

	// snippetBudget caps the fallback excerpt taken from the raw extracted text.
	snippetBudget = 300
)

type ITutorService interface {
	Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error)
}

// tutorService is the answer selector: static table probe, then
// extract -> chunk -> score over the most recent document, then the
// leading-snippet fallback.
type tutorService struct {
	knowledgeRepo *memory.KnowledgeRepository
	extractor     *extract.Extractor
	splitter      *chunk.Splitter
	scorer        retrieval.Scorer
	llmProvider   llm.Provider // nil unless answer generation is enabled
	uploadDir     string
	logger        logger.ILogger
}

func NewTutorService(
	knowledgeRepo *memory.KnowledgeRepository,
	extractor *extract.Extractor,
	splitter *chunk.Splitter,
	scorer retrieval.Scorer,
	llmProvider llm.Provider,
	uploadDir string,
	sysLogger logger.ILogger,
) ITutorService {
	return &tutorService{
		knowledgeRepo: knowledgeRepo,
		extractor:     extractor,
		splitter:      splitter,
		scorer:        scorer,
		llmProvider:   llmProvider,
		uploadDir:     uploadDir,
		logger:        sysLogger,
	}
}

// Ask never returns a non-nil error for a well-formed question; every failure
// inside the pipeline degrades to a diagnostic answer so the endpoint keeps
// its chat-style 200 contract.
func (s *tutorService) Ask(ctx context.Context, req *dto.AskRequest) (res *dto.AskResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("tutor", "ask pipeline panic", map[string]interface{}{"panic": fmt.Sprint(r)})
			res = &dto.AskResponse{Answer: answerProcessingError}
			err = nil
		}
	}()

	question := strings.TrimSpace(req.Question)

	// 1. Static table probe. Canonical answers carry no source label.
	if answer, ok := s.knowledgeRepo.MatchStatic(question); ok {
		return &dto.AskResponse{Answer: answer}, nil
	}

	// 2. Without any uploaded document there is nothing left to consult.
	doc, ok := s.knowledgeRepo.Latest()
	if !ok {
		return &dto.AskResponse{Answer: answerNoKnowledge}, nil
	}

	// 3. Extraction re-runs per request; only the latest document is active.
	text := s.extractor.Extract(filepath.Join(s.uploadDir, doc.StorageKey), doc.OriginalName)
	chunks := s.splitter.Split(text)

	selection, err := s.scorer.Select(ctx, question, chunks)
	if err != nil {
		s.logger.Error("tutor", "chunk scoring failed", map[string]interface{}{
			"error":    err.Error(),
			"strategy": s.scorer.Name(),
			"document": doc.OriginalName,
		})
		return &dto.AskResponse{Answer: answerProcessingError}, nil
	}

	if selection == nil {
		// No chunk qualified; fall back to the leading snippet of the raw text.
		return &dto.AskResponse{
			Answer: fmt.Sprintf("From notes (%s):\n%s", doc.OriginalName, leadingSnippet(text)),
			Source: doc.OriginalName,
		}, nil
	}

	s.logger.Debug("tutor", "chunk selected", map[string]interface{}{
		"strategy": s.scorer.Name(),
		"index":    selection.Chunk.Index,
		"score":    selection.Score,
	})

	answer := fmt.Sprintf("From notes (%s):\n%s", doc.OriginalName, selection.Chunk.Text)

	// Optional post-processing: rephrase the selected passage with the LLM.
	if s.llmProvider != nil {
		if generated, genErr := s.generateAnswer(ctx, question, selection.Chunk.Text); genErr == nil {
			answer = generated
		} else {
			s.logger.Warn("tutor", "answer generation failed, returning raw chunk", map[string]interface{}{
				"error": genErr.Error(),
			})
		}
	}

	return &dto.AskResponse{Answer: answer, Source: doc.OriginalName}, nil
}

func (s *tutorService) generateAnswer(ctx context.Context, question, passage string) (string, error) {
	prompt := fmt.Sprintf(`Answer the student's question using only the study notes below.

Notes:
%s

Question: %s`, passage, question)

	return s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.2))
}

// leadingSnippet truncates text to the snippet budget, marking the cut with an
// ellipsis. Counting is rune-based so multibyte text is never split.
func leadingSnippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetBudget {
		return text
	}
	return string(runes[:snippetBudget]) + "..."
}
