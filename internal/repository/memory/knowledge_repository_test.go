package memory

import (
	"testing"
	"time"

	"github.com/SouLSoniC07/AI-Tutor/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchStatic(t *testing.T) {
	repo := NewKnowledgeRepository()

	answer, ok := repo.MatchStatic("Please explain binary search tree rotations")
	require.True(t, ok)
	assert.Equal(t, "A BST is a data structure where left < parent < right.", answer)

	// Case-insensitive containment, not equality.
	answer, ok = repo.MatchStatic("What is NORMALIZATION?")
	require.True(t, ok)
	assert.Equal(t, "It means organizing DB tables to reduce redundancy.", answer)

	_, ok = repo.MatchStatic("photosynthesis")
	assert.False(t, ok)
}

func TestRegistryOrdering(t *testing.T) {
	repo := NewKnowledgeRepository()

	_, ok := repo.Latest()
	assert.False(t, ok)
	assert.Empty(t, repo.All())

	repo.Prepend(entity.DocumentRecord{StorageKey: "first", UploadedAt: time.Now()})
	repo.Prepend(entity.DocumentRecord{StorageKey: "second", UploadedAt: time.Now()})

	latest, ok := repo.Latest()
	require.True(t, ok)
	assert.Equal(t, "second", latest.StorageKey)

	all := repo.All()
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].StorageKey)
	assert.Equal(t, "first", all[1].StorageKey)
}

func TestFindByStorageKey(t *testing.T) {
	repo := NewKnowledgeRepository()
	repo.Prepend(entity.DocumentRecord{StorageKey: "abc.txt", OriginalName: "notes.txt"})

	record, ok := repo.FindByStorageKey("abc.txt")
	require.True(t, ok)
	assert.Equal(t, "notes.txt", record.OriginalName)

	_, ok = repo.FindByStorageKey("missing")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	repo := NewKnowledgeRepository()
	repo.Prepend(entity.DocumentRecord{StorageKey: "one"})

	all := repo.All()
	all[0].StorageKey = "mutated"

	latest, _ := repo.Latest()
	assert.Equal(t, "one", latest.StorageKey)
}
