package models

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which pipeline stage or precondition failed.
// Handlers map kinds to HTTP statuses; lower-level error detail stays in
// the logs and never reaches the client.
type ErrorKind string

const (
	ErrUnsupportedFileType ErrorKind = "unsupported_file_type"
	ErrExtraction          ErrorKind = "extraction_error"
	ErrEmbedding           ErrorKind = "embedding_error"
	ErrIndexing            ErrorKind = "indexing_error"
	ErrRetrieval           ErrorKind = "retrieval_error"
	ErrContextAssembly     ErrorKind = "context_assembly_error"
	ErrGeneration          ErrorKind = "generation_error"
	ErrConfiguration       ErrorKind = "configuration_error"
)

// PipelineError is the single typed failure a pipeline stage surfaces to
// the endpoint boundary. It wraps the underlying cause for logging while
// the Kind drives user-visible behavior.
type PipelineError struct {
	Kind  ErrorKind
	Stage string
	Err   error
}

func (e *PipelineError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Stage, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Kind, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewPipelineError wraps err with the stage name and error kind.
func NewPipelineError(kind ErrorKind, stage string, err error) *PipelineError {
	return &PipelineError{Kind: kind, Stage: stage, Err: err}
}

// KindOf returns the error kind of err, or the empty kind when err is not
// a pipeline error.
func KindOf(err error) ErrorKind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
