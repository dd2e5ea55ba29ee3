package questionbank

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// TranscriptLogger writes the full prompt/response exchange of one
// generation request to its own file under log/. Transcripts are the
// main debugging tool when a model starts ignoring the output format.
type TranscriptLogger struct {
	file      *os.File
	mu        sync.Mutex
	requestID string
}

// NewTranscriptLogger creates a transcript file for one generation
// request.
func NewTranscriptLogger(requestID string, req GenerationRequest) (*TranscriptLogger, error) {
	if err := os.MkdirAll("log", 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	filename := filepath.Join("log", fmt.Sprintf("%s.log", requestID))
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	logger := &TranscriptLogger{
		file:      file,
		requestID: requestID,
	}

	logger.Logf("=== Question Generation Log ===\n")
	logger.Logf("Request ID: %s\n", requestID)
	logger.Logf("Topic: %s\n", req.Topic)
	logger.Logf("Question Type: %s\n", req.Type)
	logger.Logf("Count: %d\n", req.Count)
	logger.Logf("Difficulty: %s\n", req.Difficulty)
	logger.Logf("Model: %s\n", req.Model)
	logger.Logf("Started: %s\n", time.Now().Format(time.RFC3339))
	logger.Logf("===============================\n\n")

	return logger, nil
}

// Logf writes a formatted log entry with timestamp
func (tl *TranscriptLogger) Logf(format string, args ...interface{}) {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	timestamp := time.Now().Format("15:04:05.000")
	message := fmt.Sprintf(format, args...)

	fmt.Fprintf(tl.file, "[%s] %s", timestamp, message)
	tl.file.Sync()
}

// LogRequest logs the prompt sent to the model.
func (tl *TranscriptLogger) LogRequest(model, prompt string) {
	tl.Logf("=== MODEL REQUEST (%s) ===\n", model)
	tl.Logf("Prompt:\n%s\n", prompt)
	tl.Logf("==========================\n\n")
}

// LogResponse logs the raw completion returned by the model.
func (tl *TranscriptLogger) LogResponse(model, response string) {
	tl.Logf("=== MODEL RESPONSE (%s) ===\n", model)
	tl.Logf("Response:\n%s\n", response)
	tl.Logf("===========================\n\n")
}

// LogResult logs how many records the response parsed into.
func (tl *TranscriptLogger) LogResult(requested, built int) {
	tl.Logf("Built %d records (%d requested)\n", built, requested)
}

// Close closes the log file
func (tl *TranscriptLogger) Close() error {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	if tl.file != nil {
		timestamp := time.Now().Format("15:04:05.000")
		fmt.Fprintf(tl.file, "[%s] === Generation Complete ===\n", timestamp)
		fmt.Fprintf(tl.file, "[%s] Completed: %s\n", timestamp, time.Now().Format(time.RFC3339))
		fmt.Fprintf(tl.file, "[%s] ===========================\n", timestamp)
		return tl.file.Close()
	}
	return nil
}
