// Package outcome defines the tri-state result every provisioning step reports.
package outcome

import "fmt"

// Kind is the class of a step result.
type Kind int

const (
	// Success means the step completed.
	Success Kind = iota
	// Retryable means the step failed in a way another attempt may fix.
	Retryable
	// Fatal means the run must stop.
	Fatal
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Retryable:
		return "retryable failure"
	case Fatal:
		return "fatal failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is a step result. The zero value is Success.
type Outcome struct {
	Kind Kind
	Err  error
}

// Ok returns a Success outcome.
func Ok() Outcome {
	return Outcome{Kind: Success}
}

// Retry returns a Retryable outcome for err.
func Retry(err error) Outcome {
	return Outcome{Kind: Retryable, Err: err}
}

// Fail returns a Fatal outcome for err.
func Fail(err error) Outcome {
	return Outcome{Kind: Fatal, Err: err}
}

// FromError maps nil to Success and anything else to Fatal. External
// collaborators report through this: they either work or stop the run.
func FromError(err error) Outcome {
	if err == nil {
		return Ok()
	}
	return Fail(err)
}

// OK reports whether the outcome is Success.
func (o Outcome) OK() bool {
	return o.Kind == Success
}

func (o Outcome) String() string {
	if o.Err == nil {
		return o.Kind.String()
	}
	return fmt.Sprintf("%s: %v", o.Kind, o.Err)
}
