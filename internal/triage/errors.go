package triage

import (
	"fmt"
	"strings"
)

// ValidationError reports mandatory fields missing on the stage an advance
// was attempted from. The stage is left unchanged; the operator fills in
// the named fields and retries.
type ValidationError struct {
	Stage   Stage
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("stage %d (%s) incomplete: %s", int(e.Stage), e.Stage, strings.Join(e.Missing, ", "))
}

// InferenceError wraps a scaler or predictor failure during the stage-4
// diagnosis run. Fatal to the attempt: no partial verdict is produced.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("model inference failed: %v", e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }
