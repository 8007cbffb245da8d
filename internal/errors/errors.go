// Package errors defines the domain error taxonomy. Handlers map these
// values to HTTP statuses; services return them unchanged so callers can
// match with errors.Is.
package errors

// DomainError is a stable, machine-readable domain failure.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string { return e.Message }

// Is matches two domain errors by code, so wrapped instances still
// compare equal to the package-level values.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}
