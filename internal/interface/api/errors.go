package api

import "fmt"

// InputParseError reports a request argument that could not be coerced
// to the type a lookup expects
type InputParseError struct {
	Param string
	Value string
	Err   error
}

func (e *InputParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Param, e.Value, e.Err)
}

func (e *InputParseError) Unwrap() error {
	return e.Err
}
