// Package problem provides RFC 7807 Problem Details for HTTP APIs.
package problem

import (
	"fmt"
	"net/http"
)

// Problem represents an RFC 7807 Problem Details response.
// See: https://www.rfc-editor.org/rfc/rfc7807
type Problem struct {
	// Type is a URI reference that identifies the problem type.
	Type string `json:"type"`
	// Title is a short, human-readable summary of the problem type.
	Title string `json:"title"`
	// Status is the HTTP status code for this occurrence.
	Status int `json:"status"`
	// Detail is a human-readable explanation specific to this occurrence.
	Detail string `json:"detail,omitempty"`
	// Instance is a URI reference that identifies the specific occurrence.
	Instance string `json:"instance,omitempty"`
	// Extensions holds additional problem-specific properties.
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Error implements the error interface.
func (p Problem) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s: %s", p.Title, p.Detail)
	}
	return p.Title
}

// WithDetail returns a copy with the given detail message.
func (p Problem) WithDetail(detail string) Problem {
	p.Detail = detail
	return p
}

// WithInstance returns a copy with the given instance URI.
func (p Problem) WithInstance(instance string) Problem {
	p.Instance = instance
	return p
}

// WithExtension returns a copy with an additional extension property.
func (p Problem) WithExtension(key string, value any) Problem {
	extensions := make(map[string]any, len(p.Extensions)+1)
	for k, v := range p.Extensions {
		extensions[k] = v
	}
	extensions[key] = value
	p.Extensions = extensions
	return p
}

// Common problem types as URI references.
const (
	TypeValidation = "/problems/validation-error"
	TypeNotFound   = "/problems/not-found"
	TypeConflict   = "/problems/conflict"
	TypeInternal   = "/problems/internal-error"
	TypeBadRequest = "/problems/bad-request"
	TypeUpstream   = "/problems/upstream-failure"
)

// Pre-defined problem templates for common scenarios.
var (
	// NotFound indicates the requested resource was not found.
	NotFound = Problem{
		Type:   TypeNotFound,
		Title:  "Resource Not Found",
		Status: http.StatusNotFound,
	}

	// Validation indicates the request failed validation.
	Validation = Problem{
		Type:   TypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
	}

	// BadRequest indicates the request was malformed.
	BadRequest = Problem{
		Type:   TypeBadRequest,
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
	}

	// Conflict indicates a conflict with the current state of a resource.
	Conflict = Problem{
		Type:   TypeConflict,
		Title:  "Conflict",
		Status: http.StatusConflict,
	}

	// Internal indicates an unexpected server error.
	Internal = Problem{
		Type:   TypeInternal,
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
	}

	// Upstream indicates a dependency (database, broker, partner) failed.
	Upstream = Problem{
		Type:   TypeUpstream,
		Title:  "Upstream Dependency Failure",
		Status: http.StatusBadGateway,
	}
)

// NewNotFound creates a not-found problem for a specific resource.
func NewNotFound(resourceType string, identifier any) Problem {
	return NotFound.
		WithDetail(fmt.Sprintf("%s with identifier '%v' not found", resourceType, identifier)).
		WithExtension("resourceType", resourceType).
		WithExtension("identifier", identifier)
}

// NewValidation creates a validation problem with field-level details.
func NewValidation(fieldErrors map[string]string) Problem {
	return Validation.WithExtension("fields", fieldErrors)
}
