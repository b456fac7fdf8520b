// internal/errors/errors.go
package appErrors

import "fmt"

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
	CampaignID int
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign with ID %d not found", e.CampaignID)
}

func NewCampaignNotFound(id int) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

// ErrValidation marks a missing or malformed required field.
type ErrValidation struct {
	Field string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func NewValidation(field string) error {
	return &ErrValidation{Field: field}
}

// ErrInvalidArgument marks bad numeric or enumerated input, including
// disallowed file types and oversized uploads.
type ErrInvalidArgument struct {
	Reason string
}

func (e *ErrInvalidArgument) Error() string {
	return e.Reason
}

func NewInvalidArgument(format string, args ...interface{}) error {
	return &ErrInvalidArgument{Reason: fmt.Sprintf(format, args...)}
}

// ErrUnauthorized means the request carried no usable credential.
type ErrUnauthorized struct {
	Reason string
}

func (e *ErrUnauthorized) Error() string {
	return e.Reason
}

func NewUnauthorized(reason string) error {
	return &ErrUnauthorized{Reason: reason}
}

// ErrForbidden means the credential resolved to an admin that is missing
// or inactive.
type ErrForbidden struct {
	Reason string
}

func (e *ErrForbidden) Error() string {
	return e.Reason
}

func NewForbidden(reason string) error {
	return &ErrForbidden{Reason: reason}
}

// ErrNotFound covers missing images and other non-campaign lookups.
type ErrNotFound struct {
	What string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found", e.What)
}

func NewNotFound(what string) error {
	return &ErrNotFound{What: what}
}

// ErrGenerationFailed wraps a failure from the AI collaborator.
type ErrGenerationFailed struct {
	Err error
}

func (e *ErrGenerationFailed) Error() string {
	return fmt.Sprintf("content generation failed: %v", e.Err)
}

func (e *ErrGenerationFailed) Unwrap() error {
	return e.Err
}

func NewGenerationFailed(err error) error {
	return &ErrGenerationFailed{Err: err}
}
