// Command imagegen asks Gemini for an image matching a prompt read from stdin
// and saves it under a base name read from the next stdin line.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/imagegen/internal/config"
	"github.com/1broseidon/imagegen/internal/inject"
	"github.com/1broseidon/imagegen/pipeline"
	"github.com/samber/do"
)

type setupFunc func(ctx context.Context, cfg *config.Config, streams inject.Streams) *do.Injector

func main() {
	streams := inject.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	os.Exit(run(context.Background(), streams, inject.Setup))
}

// run executes one generation and returns the process exit status.
func run(ctx context.Context, streams inject.Streams, setup setupFunc) int {
	var files []string
	if path := os.Getenv(config.FileEnv); path != "" {
		files = append(files, path)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		fmt.Fprintf(streams.Out, "Error: %v\n", err)
		return 1
	}
	if err := cfg.RequireCredential(); err != nil {
		fmt.Fprintf(streams.Out, "Error: %v\n", err)
		fmt.Fprintf(streams.Err, "imagegen: %v\n", &pipeline.StepError{Step: pipeline.StepCredential, Err: err})
		return 1
	}

	injector := setup(ctx, cfg, streams)
	defer shutdown(injector, streams.Err)

	p, err := do.Invoke[*pipeline.Pipeline](injector)
	if err != nil {
		fmt.Fprintf(streams.Out, "Error: %v\n", err)
		return 1
	}

	if _, err := p.Run(ctx); err != nil {
		fmt.Fprintf(streams.Err, "imagegen: %v\n", err)
		return 1
	}
	return 0
}

func shutdown(injector *do.Injector, w io.Writer) {
	if err := injector.Shutdown(); err != nil {
		fmt.Fprintf(w, "imagegen: shutdown: %v\n", err)
	}
}
