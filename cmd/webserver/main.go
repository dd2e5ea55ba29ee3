package main

import (
	"encoding/json"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"questionbank"
)

// server bundles the handlers' shared dependencies.
type server struct {
	client questionbank.Client
	audit  *questionbank.AuditDB
}

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	flag.Parse()
	questionbank.SetVerbose(*verbose)

	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENROUTER_API_KEY environment variable is required")
	}

	client, err := questionbank.NewOpenRouterClient(apiKey, os.Getenv("OPENROUTER_BASE_URL"))
	if err != nil {
		log.Fatalf("client setup failed: %v", err)
	}

	srv := &server{client: client}

	// The audit trail is optional; without a path the server runs
	// stateless.
	if dbPath := os.Getenv("QUESTIONBANK_AUDIT_DB"); dbPath != "" {
		audit, err := questionbank.OpenAuditDB(dbPath)
		if err != nil {
			log.Fatalf("audit db open failed: %v", err)
		}
		defer audit.Close()
		srv.audit = audit
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("API running"))
	})
	r.Post("/api/questions", srv.handleGenerate)
	r.Post("/api/extract-text", srv.handleExtractText)
	if srv.audit != nil {
		r.Get("/api/generations", srv.handleRecentGenerations)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

func (s *server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req questionbank.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	gen := questionbank.NewGenerator(s.client)

	start := time.Now()
	result, err := gen.Generate(r.Context(), req)
	if err != nil {
		if errors.Is(err, questionbank.ErrTopicRequired) {
			writeError(w, http.StatusBadRequest, "Topic is required")
			return
		}
		log.Printf("generation failed: %v", err)
		s.recordAudit(req, 0, time.Since(start), err)
		writeError(w, http.StatusInternalServerError, "AI generation failed")
		return
	}
	s.recordAudit(req, len(result.Questions), time.Since(start), nil)

	writeJSON(w, http.StatusOK, result)
}

func (s *server) handleExtractText(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "A file upload named 'file' is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	text, err := questionbank.ExtractText(header.Header.Get("Content-Type"), content)
	if err != nil {
		switch {
		case errors.Is(err, questionbank.ErrUnsupportedFileType):
			writeError(w, http.StatusBadRequest, "Only PDF and DOCX files are supported")
		case errors.Is(err, questionbank.ErrInvalidFile):
			writeError(w, http.StatusBadRequest, "File could not be read")
		default:
			log.Printf("extraction failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Text extraction failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func (s *server) handleRecentGenerations(w http.ResponseWriter, r *http.Request) {
	entries, err := s.audit.Recent(50)
	if err != nil {
		log.Printf("audit query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load generation history")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *server) recordAudit(req questionbank.GenerationRequest, returned int, latency time.Duration, genErr error) {
	if s.audit == nil {
		return
	}
	entry := questionbank.AuditEntry{
		ID:             questionbank.NewRequestID(),
		CreatedAt:      time.Now(),
		Topic:          req.Topic,
		QuestionType:   string(req.Type),
		Model:          questionbank.ResolveModel(req.Model),
		Difficulty:     req.Difficulty,
		CountRequested: req.Count,
		CountReturned:  returned,
		LatencyMS:      latency.Milliseconds(),
	}
	if genErr != nil {
		entry.Error = genErr.Error()
	}
	if err := s.audit.Record(entry); err != nil {
		log.Printf("audit record failed: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("response encode failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
