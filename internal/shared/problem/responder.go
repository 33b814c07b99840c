package problem

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContentType is the media type for Problem Details responses.
const ContentType = "application/problem+json"

// Mapper converts domain or application errors into a Problem.
// The boolean reports whether the mapper recognized the error.
type Mapper func(err error) (Problem, bool)

// Responder sends Problem Details responses, consulting registered mappers
// before falling back to a generic internal error.
type Responder struct {
	// BaseURI is prepended to problem type URIs when they are relative.
	BaseURI string
	mappers []Mapper
}

// NewResponder creates a responder with an optional base URI and error mappers.
func NewResponder(baseURI string, mappers ...Mapper) *Responder {
	return &Responder{BaseURI: baseURI, mappers: mappers}
}

// AddMapper appends an error mapper to the chain.
func (r *Responder) AddMapper(mapper Mapper) {
	r.mappers = append(r.mappers, mapper)
}

// Respond sends a Problem response with the proper content type.
func (r *Responder) Respond(c *gin.Context, p Problem) {
	if r.BaseURI != "" && len(p.Type) > 0 && p.Type[0] == '/' {
		p.Type = r.BaseURI + p.Type
	}
	if p.Instance == "" {
		p.Instance = c.Request.URL.Path
	}
	c.Header("Content-Type", ContentType)
	c.JSON(p.Status, p)
}

// RespondError maps err through the chain, falling back to a Problem already
// carried by the error, and finally to an internal error.
func (r *Responder) RespondError(c *gin.Context, err error) {
	for _, mapper := range r.mappers {
		if p, ok := mapper(err); ok {
			r.Respond(c, p)
			return
		}
	}
	var p Problem
	if errors.As(err, &p) {
		r.Respond(c, p)
		return
	}
	r.Respond(c, Internal.WithDetail(err.Error()))
}

// NotFound sends a 404 problem response for the given resource.
func (r *Responder) NotFound(c *gin.Context, resourceType string, identifier any) {
	r.Respond(c, NewNotFound(resourceType, identifier))
}

// BadRequest sends a 400 problem response.
func (r *Responder) BadRequest(c *gin.Context, detail string) {
	r.Respond(c, BadRequest.WithDetail(detail))
}

// StatusFromError extracts the HTTP status carried by an error, if any.
func StatusFromError(err error) int {
	var p Problem
	if errors.As(err, &p) {
		return p.Status
	}
	return http.StatusInternalServerError
}
