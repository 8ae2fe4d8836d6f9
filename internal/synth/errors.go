package synth

import (
	"errors"
	"fmt"
)

// ConsistencyError reports that the schema and the synthesizer have
// drifted out of sync: a fact kind exists that no renderer handles.
// It is fatal - synthesis must stop rather than silently skip facts.
type ConsistencyError struct {
	// Kind identifies the unhandled fact kind.
	Kind string

	// Fact names the offending fact, when known.
	Fact string
}

func (e *ConsistencyError) Error() string {
	if e.Fact != "" {
		return fmt.Sprintf("no renderer for fact kind %q (fact %q)", e.Kind, e.Fact)
	}
	return fmt.Sprintf("no renderer for fact kind %q", e.Kind)
}

// IsConsistencyError reports whether err is a schema/synthesizer drift
// error. Uses errors.As to handle wrapped errors.
func IsConsistencyError(err error) bool {
	var ce *ConsistencyError
	return errors.As(err, &ce)
}
