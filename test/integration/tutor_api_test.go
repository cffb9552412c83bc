package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SouLSoniC07/AI-Tutor/internal/bootstrap"
	"github.com/SouLSoniC07/AI-Tutor/internal/config"
	"github.com/SouLSoniC07/AI-Tutor/internal/dto"
	"github.com/SouLSoniC07/AI-Tutor/internal/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			LogFilePath:        filepath.Join(dir, "app.log"),
			CorsAllowedOrigins: "*",
		},
		Storage: config.StorageConfig{
			UploadDir: filepath.Join(dir, "uploads"),
		},
		Ai: config.AIConfig{
			ScoringStrategy: "keyword",
			ChunkStrategy:   "paragraph",
			ChunkMinLength:  24,
			EmbedderBaseURL: "http://localhost:5678",
			UploadTopic:     "DOCUMENT_UPLOADED",
		},
	}
}

func TestTutorAPI(t *testing.T) {
	cfg := newTestConfig(t)
	container := bootstrap.NewContainer(cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	t.Run("Liveness probe", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "VTU Tutor API running!", string(body))
	})

	t.Run("Ask hits static table without documents", func(t *testing.T) {
		body, _ := json.Marshal(dto.AskRequest{Question: "explain binary search tree"})
		req := httptest.NewRequest("POST", "/ask", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result dto.AskResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "A BST is a data structure where left < parent < right.", result.Answer)
		assert.Empty(t, result.Source)
	})

	t.Run("Ask with empty knowledge returns fixed answer", func(t *testing.T) {
		body, _ := json.Marshal(dto.AskRequest{Question: "what is photosynthesis"})
		req := httptest.NewRequest("POST", "/ask", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result dto.AskResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "No valid answer in knowledge base.", result.Answer)
	})

	t.Run("Ask with missing question is rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/ask", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("Upload without file is a 400", func(t *testing.T) {
		var form bytes.Buffer
		writer := multipart.NewWriter(&form)
		require.NoError(t, writer.WriteField("subject", "Geography"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest("POST", "/upload", &form)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		var result dto.UploadResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "error", result.Status)
	})

	var storedFilename string

	t.Run("Upload registers a document", func(t *testing.T) {
		var form bytes.Buffer
		writer := multipart.NewWriter(&form)
		part, err := writer.CreateFormFile("file", "notes.txt")
		require.NoError(t, err)
		_, err = part.Write([]byte("Paris is the capital of France. It has the Eiffel Tower."))
		require.NoError(t, err)
		require.NoError(t, writer.WriteField("subject", "Geography"))
		require.NoError(t, writer.WriteField("topic", "France"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest("POST", "/upload", &form)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result dto.UploadResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "ok", result.Status)

		// Registry lists the upload most-recent first.
		filesReq := httptest.NewRequest("GET", "/files", nil)
		filesResp, err := app.Test(filesReq, -1)
		require.NoError(t, err)

		var files []dto.DocumentMetaResponse
		require.NoError(t, json.NewDecoder(filesResp.Body).Decode(&files))
		require.Len(t, files, 1)
		assert.Equal(t, "notes.txt", files[0].OriginalName)
		assert.Equal(t, "Geography", files[0].Subject)
		assert.Equal(t, "France", files[0].Topic)
		assert.NotEmpty(t, files[0].Filename)
		storedFilename = files[0].Filename
	})

	t.Run("Ask answers from the uploaded document", func(t *testing.T) {
		body, _ := json.Marshal(dto.AskRequest{Question: "capital"})
		req := httptest.NewRequest("POST", "/ask", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result dto.AskResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "From notes (notes.txt):\nParis is the capital of France", result.Answer)
		assert.Equal(t, "notes.txt", result.Source)
	})

	t.Run("Stored file is served by storage key", func(t *testing.T) {
		require.NotEmpty(t, storedFilename)

		req := httptest.NewRequest("GET", "/file/"+storedFilename, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "Paris is the capital of France")
	})

	t.Run("Unknown file is a 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/file/no-such-file.txt", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}
