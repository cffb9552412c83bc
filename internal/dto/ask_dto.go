package dto

type AskRequest struct {
	Question string `json:"question" validate:"required"`
}

// AskResponse is the chat-style contract of POST /ask: always 200 for a
// well-formed question, the answer text carrying any diagnostics. Source names
// the uploaded document a passage came from; it stays empty for canonical
// knowledge-table answers.
type AskResponse struct {
	Answer string `json:"answer"`
	Source string `json:"source,omitempty"`
}
