package helper

import "fmt"

// NewError wraps an error with the name of the stage it occurred in.
// The stage name is what shows up in logs, so keep it short and specific.
func NewError(stage string, err error) error {
	return fmt.Errorf("error in %s: %w", stage, err)
}
