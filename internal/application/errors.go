package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDataIntegrity   = errors.New("data integrity violation")
)

// ArgumentError represents a rejected argument with details
type ArgumentError struct {
	Field   string
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// IntegrityError represents a duplicate-name invariant violation. The
// reconciliation computation must not proceed past one of these.
type IntegrityError struct {
	List string // which list held the duplicate
	Name string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("repeat name %q found in list of %s file names", e.Name, e.List)
}

func (e *IntegrityError) Is(target error) bool {
	return target == ErrDataIntegrity
}
