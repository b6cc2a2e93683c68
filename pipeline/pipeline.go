// Package pipeline runs one prompt-to-file image generation.
//
// A run reads a prompt from its input, asks the generator for an image,
// finds the image reference in the reply, reads an output base name and
// saves the image. Progress lines are written to the output; their wording is
// relied on by processes that drive the binary over stdin and stdout.
package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/1broseidon/imagegen/extract"
	"github.com/1broseidon/imagegen/internal/logging"
	"github.com/1broseidon/imagegen/models"
)

// Generator turns a user prompt into a model reply.
type Generator interface {
	GenerateImage(ctx context.Context, prompt string) (*models.ImageGenerationResponse, error)
}

// Persister writes the referenced image to "<base>.<ext>".
type Persister interface {
	Download(ctx context.Context, url, base string) (string, error)
	SaveBytes(data []byte, contentType, base string) (string, error)
}

// Pipeline sequences the steps of a run.
type Pipeline struct {
	generator Generator
	persister Persister
	in        *bufio.Reader
	out       io.Writer
	logger    logging.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithInput sets where the prompt and filename lines are read from.
func WithInput(r io.Reader) Option {
	return func(p *Pipeline) {
		p.in = bufio.NewReader(r)
	}
}

// WithOutput sets where progress lines are written.
func WithOutput(w io.Writer) Option {
	return func(p *Pipeline) {
		p.out = w
	}
}

// WithLogger sets the logger for the pipeline.
func WithLogger(logger logging.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New returns a Pipeline reading stdin and writing stdout unless configured otherwise.
func New(generator Generator, persister Persister, opts ...Option) *Pipeline {
	p := &Pipeline{
		generator: generator,
		persister: persister,
		in:        bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run performs one generation and returns the path of the saved file.
// Any failure is returned as a *StepError; no step is retried.
func (p *Pipeline) Run(ctx context.Context) (string, error) {
	p.println("Enter image generation prompt:")
	prompt, err := p.readLine()
	if err != nil {
		return "", p.fail(StepPrompt, err)
	}
	if prompt == "" {
		p.println("Error: Empty prompt")
		return "", p.fail(StepPrompt, ErrEmptyPrompt)
	}

	p.printf("Generating image for: %s\n", prompt)
	resp, err := p.generator.GenerateImage(ctx, prompt)
	if err != nil {
		p.printf("Error generating image: %v\n", err)
		p.println("Failed to generate image")
		return "", p.fail(StepGenerate, err)
	}

	url, found := extract.ImageURL(resp.Text)
	if !found && !resp.HasInlineImage() {
		p.println("No image URL found in the response.")
		p.println("Failed to generate image")
		return "", p.fail(StepExtract, ErrNoImageReference)
	}

	p.println("Enter output filename (without extension):")
	base, err := p.readLine()
	if err != nil {
		return "", p.fail(StepFilename, err)
	}
	if base == "" {
		p.println("Error: Empty filename")
		return "", p.fail(StepFilename, ErrEmptyFilename)
	}

	var path string
	if found {
		p.logger.Infof("Image reference found: %s", url)
		path, err = p.persister.Download(ctx, url, base)
	} else {
		inline := resp.InlineImages[0]
		p.logger.Infof("Using inline %s image from the response", inline.MIMEType)
		path, err = p.persister.SaveBytes(inline.Data, inline.MIMEType, base)
	}
	if err != nil {
		p.printf("Error saving image: %v\n", err)
		p.println("Failed to save image")
		return "", p.fail(StepSave, err)
	}

	p.printf("Image saved to: %s\n", path)
	p.printf("Image successfully generated and saved to: %s\n", path)
	return path, nil
}

// readLine returns the next input line with surrounding whitespace removed.
// A final line without a newline is still returned.
func (p *Pipeline) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *Pipeline) fail(step Step, err error) error {
	p.logger.Errorf("%s step failed: %v", step, err)
	return &StepError{Step: step, Err: err}
}

func (p *Pipeline) println(line string) {
	fmt.Fprintln(p.out, line)
}

func (p *Pipeline) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}
