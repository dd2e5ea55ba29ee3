package questionbank

import (
	"context"
	"math/rand"
	"strings"
)

// Request defaults applied before the prompt is built.
const (
	DefaultCount      = 5
	DefaultDifficulty = "Medium"
)

// Generator runs the full pipeline for one request: defaults, prompt,
// model call, parse, record assembly.
type Generator struct {
	client     Client
	guids      GUIDSource
	transcript *TranscriptLogger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithGUIDSource overrides the GUID source used for generated records.
func WithGUIDSource(src GUIDSource) GeneratorOption {
	return func(g *Generator) { g.guids = src }
}

// WithTranscriptLogger attaches a per-request transcript logger.
func WithTranscriptLogger(tl *TranscriptLogger) GeneratorOption {
	return func(g *Generator) { g.transcript = tl }
}

// NewGenerator creates a generator backed by the given model client.
func NewGenerator(client Client, opts ...GeneratorOption) *Generator {
	g := &Generator{
		client: client,
		guids:  PlaceholderGUIDs,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces question records for the request. The only client
// input rejected outright is a missing topic; everything else is
// defaulted. The returned count follows the model's output, not
// req.Count: the requested count shapes the prompt but is never
// enforced against the response.
func (g *Generator) Generate(ctx context.Context, req GenerationRequest) (*Result, error) {
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		return nil, ErrTopicRequired
	}
	if req.Type == "" {
		req.Type = TypeMCQ
	}
	if req.Count <= 0 {
		req.Count = DefaultCount
	}
	if req.Difficulty == "" {
		req.Difficulty = DefaultDifficulty
	}

	model := ResolveModel(req.Model)
	spec := specFor(req.Type)
	prompt := spec.prompt(req.Topic, req.Count, req.Difficulty)

	Verbosef("generating %d %s questions on %q with %s", req.Count, req.Type, req.Topic, model)
	if g.transcript != nil {
		g.transcript.LogRequest(model, prompt)
	}

	raw, err := g.client.Complete(ctx, model, prompt)
	if err != nil {
		return nil, err
	}
	if g.transcript != nil {
		g.transcript.LogResponse(model, raw)
	}

	var rows [][]string
	if spec.grouped {
		rows = ParseGroups(raw, spec.fields)
	} else {
		rows = ParseLines(raw)
	}

	rb := &RecordBuilder{Req: req, GUIDs: g.guids}
	questions := make([]QuestionRecord, 0, len(rows))
	for i, fields := range rows {
		questions = append(questions, spec.build(rb, fields, i))
	}

	Verbosef("built %d records (%d requested)", len(questions), req.Count)
	if g.transcript != nil {
		g.transcript.LogResult(req.Count, len(questions))
	}

	return &Result{Questions: questions}, nil
}

// NewRequestID returns a short random identifier for transcripts and
// audit rows.
func NewRequestID() string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 12)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
