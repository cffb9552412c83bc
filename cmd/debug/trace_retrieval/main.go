package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SouLSoniC07/AI-Tutor/pkg/chunk"
	"github.com/SouLSoniC07/AI-Tutor/pkg/embedding"
	"github.com/SouLSoniC07/AI-Tutor/pkg/extract"
	"github.com/SouLSoniC07/AI-Tutor/pkg/retrieval"

	"github.com/fatih/color"
)

// trace_retrieval runs the extract -> chunk -> score pipeline against a local
// file and prints every stage, for debugging chunk boundaries and scoring
// behavior without the HTTP layer.
//
// Usage: go run ./cmd/debug/trace_retrieval -file notes.txt -q "capital" [-strategy embedding]
func main() {
	filePath := flag.String("file", "", "document to trace")
	question := flag.String("q", "", "question to score against")
	strategy := flag.String("strategy", "keyword", "keyword | embedding")
	chunkStrategy := flag.String("chunks", "paragraph", "paragraph | simple")
	embedderURL := flag.String("embedder", "http://localhost:5678", "embedding service base URL")
	flag.Parse()

	if *filePath == "" || *question == "" {
		flag.Usage()
		os.Exit(1)
	}

	header := color.New(color.FgCyan, color.Bold)
	warn := color.New(color.FgYellow)
	ok := color.New(color.FgGreen)

	header.Println("=== 1. Extraction ===")
	extractor := extract.NewExtractor()
	text := extractor.Extract(*filePath, filepath.Base(*filePath))
	if extract.IsDiagnostic(text) {
		warn.Printf("extraction degraded: %q\n", text)
	} else {
		ok.Printf("extracted %d chars\n", len(text))
	}

	header.Println("=== 2. Chunking ===")
	splitter := chunk.NewSplitter(*chunkStrategy, chunk.DefaultMinLength)
	chunks := splitter.Split(text)
	fmt.Printf("%d chunks (strategy=%s)\n", len(chunks), *chunkStrategy)
	for _, c := range chunks {
		fmt.Printf("  [%d] %.80q\n", c.Index, c.Text)
	}

	header.Println("=== 3. Scoring ===")
	provider := embedding.NewHTTPProvider(*embedderURL, 30*time.Second)
	scorer, err := retrieval.NewScorer(*strategy, provider)
	if err != nil {
		color.Red("scorer init failed: %v", err)
		os.Exit(1)
	}

	selection, err := scorer.Select(context.Background(), *question, chunks)
	if err != nil {
		color.Red("scoring failed: %v", err)
		os.Exit(1)
	}
	if selection == nil {
		warn.Println("no chunk qualified; the API would fall back to the leading snippet")
		return
	}

	ok.Printf("winner: chunk %d (score=%.4f)\n", selection.Chunk.Index, selection.Score)
	fmt.Println(selection.Chunk.Text)
}
