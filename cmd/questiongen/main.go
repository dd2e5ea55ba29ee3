package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"questionbank"
)

func main() {
	var (
		topic      = flag.String("topic", "", "Question topic (required)")
		qType      = flag.String("type", "MCQ", "Question type (MCQ, TF, MRQ, FIBDnD, FIBDD, FIBT, MTF, MatchingSequence, MatchingConnectThePoints, Sequencing)")
		count      = flag.Int("count", 5, "Number of questions to request")
		difficulty = flag.String("difficulty", "Medium", "Difficulty level (Easy, Medium, Hard)")
		model      = flag.String("model", "", "Model key (default: gpt35)")
		outputFile = flag.String("output", "", "Output file for question JSON (default: stdout)")
		apiKey     = flag.String("api-key", "", "OpenRouter API key (or set OPENROUTER_API_KEY env var)")
		transcript = flag.Bool("transcript", false, "Write a prompt/response transcript under log/")
		verbose    = flag.Bool("verbose", false, "Enable verbose debugging output")
	)

	flag.Parse()

	questionbank.SetVerbose(*verbose)

	if *topic == "" {
		log.Fatal("Topic is required. Use -topic flag.")
	}

	if *apiKey == "" {
		*apiKey = os.Getenv("OPENROUTER_API_KEY")
		if *apiKey == "" {
			log.Fatal("OpenRouter API key is required. Use -api-key flag or set OPENROUTER_API_KEY environment variable.")
		}
	}

	client, err := questionbank.NewOpenRouterClient(*apiKey, os.Getenv("OPENROUTER_BASE_URL"))
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	req := questionbank.GenerationRequest{
		Topic:      *topic,
		Type:       questionbank.QuestionType(*qType),
		Count:      *count,
		Difficulty: *difficulty,
		Model:      *model,
	}

	var opts []questionbank.GeneratorOption
	if *transcript {
		tl, err := questionbank.NewTranscriptLogger(questionbank.NewRequestID(), req)
		if err != nil {
			log.Fatalf("Failed to create transcript: %v", err)
		}
		defer tl.Close()
		opts = append(opts, questionbank.WithTranscriptLogger(tl))
	}

	generator := questionbank.NewGenerator(client, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := generator.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate questions: %v", err)
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal result: %v", err)
	}

	if *outputFile != "" {
		err = os.WriteFile(*outputFile, output, 0644)
		if err != nil {
			log.Fatalf("Failed to write output file: %v", err)
		}
		log.Printf("Questions saved to: %s", *outputFile)
	} else {
		fmt.Println(string(output))
	}

	if *verbose {
		log.Printf("Generated %d questions", len(result.Questions))
	}
}
