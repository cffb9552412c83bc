package entity

import "time"

// DocumentRecord describes one uploaded study document. Records are created on
// upload and never mutated; the registry keeps them most-recent-first.
type DocumentRecord struct {
	StorageKey   string
	OriginalName string
	Subject      string
	Topic        string
	UploadedAt   time.Time
}

// QAEntry is one canned question/answer pair in the static knowledge table.
// QuestionKey is matched as a case-insensitive substring of the incoming
// question, not by equality.
type QAEntry struct {
	QuestionKey string
	Answer      string
}
