package dto

type UploadResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// DocumentMetaResponse mirrors the upload registry entries served by GET /files.
type DocumentMetaResponse struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalname"`
	Subject      string `json:"subject"`
	Topic        string `json:"topic"`
}

// DocumentUploadedMessage is the payload published on the upload topic.
type DocumentUploadedMessage struct {
	StorageKey   string `json:"storage_key"`
	OriginalName string `json:"original_name"`
}
