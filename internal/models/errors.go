package models

import "fmt"

// ValidationError signals malformed or missing input. Never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError signals an operation against an unknown ID
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// StructureError wraps a storage error that survived a schema repair attempt.
// Handlers use it to set the structureError flag so the caller can offer
// a manual "repair now" action.
type StructureError struct {
	Err             error
	RepairAttempted bool
}

func (e *StructureError) Error() string {
	if e.RepairAttempted {
		return fmt.Sprintf("database structure error (repair attempted): %v", e.Err)
	}
	return fmt.Sprintf("database structure error: %v", e.Err)
}

func (e *StructureError) Unwrap() error {
	return e.Err
}
