// Command blogctl generates a single blog from the terminal. It runs the same
// prompt and validation as the HTTP service and can optionally store the
// result.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/blogai/blogai/backend/go-services/internal/blog"
	"github.com/blogai/blogai/backend/go-services/internal/blog/repository"
	"github.com/blogai/blogai/backend/go-services/internal/database"
	"github.com/blogai/blogai/backend/go-services/internal/generator"
	"github.com/blogai/blogai/backend/go-services/pkg/logger"
)

func main() {
	var (
		topic      = pflag.StringP("topic", "t", "", "blog topic (required)")
		host       = pflag.String("ollama-host", envOr("OLLAMA_HOST", "http://localhost:11434"), "Ollama server URL")
		model      = pflag.StringP("model", "m", envOr("OLLAMA_MODEL", "llama3.2"), "model name")
		save       = pflag.Bool("save", false, "store the blog in MongoDB when it validates")
		mongoURI   = pflag.String("mongo-uri", os.Getenv("MONGO_URI"), "MongoDB connection string (with --save)")
		dbName     = pflag.String("database", envOr("MONGODB_DATABASE", "blogai"), "MongoDB database")
		collection = pflag.String("collection", envOr("MONGODB_COLLECTION", "blogs"), "MongoDB collection")
		printOnly  = pflag.Bool("prompt", false, "print the rendered prompt and exit")
		logLevel   = pflag.String("log-level", envOr("LOG_LEVEL", "warn"), "log level")
	)
	pflag.Parse()
	logger.Init(*logLevel)

	if *topic == "" {
		fmt.Fprintln(os.Stderr, "Topic is required")
		pflag.Usage()
		os.Exit(2)
	}

	m, err := generator.NewOllamaModel(*host, *model, nil)
	if err != nil {
		logger.Fatalf("model client: %v", err)
	}
	gen, err := generator.New(m)
	if err != nil {
		logger.Fatalf("generator: %v", err)
	}

	if *printOnly {
		p, err := gen.Prompt(*topic)
		if err != nil {
			logger.Fatalf("%v", err)
		}
		fmt.Print(p)
		return
	}

	ctx := context.Background()
	raw, err := gen.GenerateBlog(ctx, *topic)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	res := blog.NewValidator().Parse(raw)
	switch res.Outcome {
	case blog.OutcomeInvalidJSON:
		fmt.Fprintln(os.Stderr, "Invalid JSON format")
		fmt.Fprintln(os.Stderr, raw)
		os.Exit(1)
	case blog.OutcomeInvalidSchema:
		fmt.Fprintf(os.Stderr, "Blog schema is invalid: %v\n", res.Err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(res.Candidate, "", "  ")
	if err != nil {
		logger.Fatalf("encode blog: %v", err)
	}
	fmt.Println(string(out))

	if !*save {
		return
	}
	if *mongoURI == "" {
		logger.Fatalf("--save needs --mongo-uri or MONGO_URI")
	}
	store, err := database.Open(ctx, *mongoURI, *dbName, *collection, 10*time.Second)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	defer func() { _ = store.Close(context.Background()) }()

	id, err := repository.NewMongoRepo(store.Collection()).Insert(ctx, res.Candidate)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	fmt.Fprintf(os.Stderr, "Blog has been validated and saved to the database (%s)\n", id)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
