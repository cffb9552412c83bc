package memory

import (
	"strings"
	"sync"

	"github.com/SouLSoniC07/AI-Tutor/internal/entity"
)

// KnowledgeRepository owns the static Q&A table and the uploaded-document
// registry. The table is immutable after construction; the registry is an
// insertion-ordered sequence mutated only by Prepend, so readers see either
// the pre- or post-upload head, never a torn write.
type KnowledgeRepository struct {
	mu        sync.RWMutex
	qaEntries []entity.QAEntry
	documents []entity.DocumentRecord
}

// defaultQAEntries is the canned knowledge table loaded at startup.
var defaultQAEntries = []entity.QAEntry{
	{QuestionKey: "binary search tree", Answer: "A BST is a data structure where left < parent < right."},
	{QuestionKey: "normalization", Answer: "It means organizing DB tables to reduce redundancy."},
}

func NewKnowledgeRepository() *KnowledgeRepository {
	return &KnowledgeRepository{
		qaEntries: defaultQAEntries,
	}
}

// NewKnowledgeRepositoryWithEntries exists for tests and seeding tools.
func NewKnowledgeRepositoryWithEntries(entries []entity.QAEntry) *KnowledgeRepository {
	return &KnowledgeRepository{
		qaEntries: entries,
	}
}

// MatchStatic probes the Q&A table: the entry key must appear as a substring
// of the lower-cased question.
func (r *KnowledgeRepository) MatchStatic(question string) (string, bool) {
	lowered := strings.ToLower(question)
	for _, entry := range r.qaEntries {
		if strings.Contains(lowered, entry.QuestionKey) {
			return entry.Answer, true
		}
	}
	return "", false
}

// Prepend registers an uploaded document as the new most-recent head.
func (r *KnowledgeRepository) Prepend(record entity.DocumentRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.documents = append([]entity.DocumentRecord{record}, r.documents...)
}

// Latest returns the most recently uploaded document, if any.
func (r *KnowledgeRepository) Latest() (entity.DocumentRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.documents) == 0 {
		return entity.DocumentRecord{}, false
	}
	return r.documents[0], true
}

// All returns a copy of the registry, most-recent first.
func (r *KnowledgeRepository) All() []entity.DocumentRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.DocumentRecord, len(r.documents))
	copy(out, r.documents)
	return out
}

// FindByStorageKey looks a document up by its stored filename.
func (r *KnowledgeRepository) FindByStorageKey(storageKey string) (entity.DocumentRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, doc := range r.documents {
		if doc.StorageKey == storageKey {
			return doc, true
		}
	}
	return entity.DocumentRecord{}, false
}
