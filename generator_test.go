package questionbank

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMissingTopic(t *testing.T) {
	mock := NewMockClient()
	gen := NewGenerator(mock)

	_, err := gen.Generate(context.Background(), GenerationRequest{Topic: "   "})
	assert.ErrorIs(t, err, ErrTopicRequired)
	assert.Equal(t, 0, mock.CallCount(), "no model call for rejected input")
}

func TestGenerateMCQ(t *testing.T) {
	mock := NewMockClient(MockResponse{Content: "What is 2+2? | 3 | 4 | 5 | 6 | 2\nWhat is 3*3? | 6 | 9 | 12 | 3 | 2"})
	gen := NewGenerator(mock)

	result, err := gen.Generate(context.Background(), GenerationRequest{
		Topic: "Arithmetic",
		Type:  TypeMCQ,
		Count: 2,
	})
	require.NoError(t, err)
	require.Len(t, result.Questions, 2)

	assert.Equal(t, "NSE-Item-MCQ-101", result.Questions[0].Question.QuestionCode)
	assert.Equal(t, "NSE-Item-MCQ-102", result.Questions[1].Question.QuestionCode)

	require.Equal(t, 1, mock.CallCount())
	call := mock.Calls[0]
	assert.Equal(t, "openai/gpt-3.5-turbo", call.Model)
	assert.Contains(t, call.Prompt, "Arithmetic")
	assert.Contains(t, call.Prompt, "2")
}

func TestGenerateDefaults(t *testing.T) {
	mock := NewMockClient(MockResponse{Content: "Q | a | b | c | d | 1"})
	gen := NewGenerator(mock)

	result, err := gen.Generate(context.Background(), GenerationRequest{Topic: "Rome"})
	require.NoError(t, err)
	require.Len(t, result.Questions, 1)

	q := result.Questions[0].Question
	assert.Equal(t, "MCQ", q.QuestionType)
	assert.Equal(t, "Medium", q.QuestionLevel)
	assert.Equal(t, 2, q.QuestionLevelID)

	prompt := mock.Calls[0].Prompt
	assert.Contains(t, prompt, "5", "default count shapes the prompt")
	assert.Contains(t, prompt, "Medium")
}

func TestGenerateModelKeyResolution(t *testing.T) {
	mock := NewMockClient(MockResponse{Content: "Q | a | b | c | d | 1"})
	gen := NewGenerator(mock)

	_, err := gen.Generate(context.Background(), GenerationRequest{
		Topic: "Rome",
		Model: "deepSeekFree",
	})
	require.NoError(t, err)
	assert.Equal(t, "tngtech/deepseek-r1t2-chimera:free", mock.Calls[0].Model)
}

func TestGenerateGroupedType(t *testing.T) {
	// Sequencing output wrapped across lines still parses as one group.
	mock := NewMockClient(MockResponse{Content: "Order the phases |\nDesign,Coding,Testing,Deployment |\n2,1,3,4"})
	gen := NewGenerator(mock)

	result, err := gen.Generate(context.Background(), GenerationRequest{
		Topic: "Software delivery",
		Type:  TypeSequencing,
	})
	require.NoError(t, err)
	require.Len(t, result.Questions, 1)

	q := result.Questions[0].Question
	assert.Equal(t, "Sequencing", q.QuestionType)
	require.Len(t, q.Answers, 4)
	assert.Equal(t, 2, q.Answers[0].OptionID)
}

func TestGenerateClientError(t *testing.T) {
	mock := NewMockClient(MockResponse{Err: &ErrRateLimit{}})
	gen := NewGenerator(mock)

	_, err := gen.Generate(context.Background(), GenerationRequest{Topic: "Rome"})
	var rateErr *ErrRateLimit
	assert.True(t, errors.As(err, &rateErr))
}

func TestGenerateUnparseableResponse(t *testing.T) {
	mock := NewMockClient(MockResponse{Content: "Sorry, I cannot help with that."})
	gen := NewGenerator(mock)

	result, err := gen.Generate(context.Background(), GenerationRequest{Topic: "Rome"})
	require.NoError(t, err)
	assert.Empty(t, result.Questions)
}

func TestGenerateUnknownTypePreservesTag(t *testing.T) {
	mock := NewMockClient(MockResponse{Content: "Q | a | b | c | d | 1"})
	gen := NewGenerator(mock)

	result, err := gen.Generate(context.Background(), GenerationRequest{
		Topic: "Rome",
		Type:  QuestionType("Essay"),
	})
	require.NoError(t, err)
	require.Len(t, result.Questions, 1)
	assert.Equal(t, "Essay", result.Questions[0].Question.QuestionType)

	// Unknown tags prompt as MCQ.
	assert.Contains(t, mock.Calls[0].Prompt, "multiple-choice")
}

func TestGenerateWithGUIDSource(t *testing.T) {
	mock := NewMockClient(MockResponse{Content: "Q | a | b | c | d | 1"})
	gen := NewGenerator(mock, WithGUIDSource(RandomGUIDs{}))

	result, err := gen.Generate(context.Background(), GenerationRequest{Topic: "Rome"})
	require.NoError(t, err)
	assert.NotEqual(t, PlaceholderGUID, result.Questions[0].Question.QuestionGUID)
}

func TestNewRequestID(t *testing.T) {
	a := NewRequestID()
	b := NewRequestID()
	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
}
