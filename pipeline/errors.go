package pipeline

import (
	"errors"
	"fmt"
)

// Step names one stage of a run.
type Step string

const (
	StepCredential Step = "credential"
	StepPrompt     Step = "prompt"
	StepGenerate   Step = "generate"
	StepExtract    Step = "extract"
	StepFilename   Step = "filename"
	StepSave       Step = "save"
)

var (
	// ErrEmptyPrompt is returned when the prompt line is blank.
	ErrEmptyPrompt = errors.New("empty prompt")
	// ErrEmptyFilename is returned when the output filename line is blank.
	ErrEmptyFilename = errors.New("empty filename")
	// ErrNoImageReference is returned when the model reply holds neither an image URL nor inline image data.
	ErrNoImageReference = errors.New("no image reference in response")
)

// StepError records which step ended a run.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// FailedStep returns the step that produced err, or "" when err is not a *StepError.
func FailedStep(err error) Step {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Step
	}
	return ""
}
