package api

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --config=oapi-codegen.yaml openapi.yaml

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"audithook/internal/ports"
)

//go:embed openapi.yaml
var document []byte

// Document returns the raw OpenAPI document.
func Document() []byte { return document }

// Validator checks decoded JSON bodies against the request body schemas of
// the document, keyed by "METHOD /path".
type Validator struct {
	bodies map[string]*openapi3.Schema
}

const auditOperation = http.MethodPost + " /api/audit"

func NewValidator() (*Validator, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("load openapi: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid openapi: %w", err)
	}
	v := &Validator{bodies: map[string]*openapi3.Schema{}}
	for path, item := range doc.Paths.Map() {
		for method, op := range item.Operations() {
			if op.RequestBody == nil || op.RequestBody.Value == nil {
				continue
			}
			mt := op.RequestBody.Value.Content.Get("application/json")
			if mt == nil || mt.Schema == nil || mt.Schema.Value == nil {
				continue
			}
			v.bodies[method+" "+path] = mt.Schema.Value
		}
	}
	if v.bodies[auditOperation] == nil {
		return nil, fmt.Errorf("openapi: %s has no request schema", auditOperation)
	}
	return v, nil
}

// ValidateAuditRequest reports every schema violation in body, which must be
// the result of decoding JSON into an any.
func (v *Validator) ValidateAuditRequest(body any) error {
	return validate(v.bodies[auditOperation], body)
}

// Middleware validates the JSON body of every operation that declares one
// and hands violations to onError. Valid bodies are replayed to next.
func (v *Validator) Middleware(onError func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			schema, ok := v.bodies[r.Method+" "+r.URL.Path]
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			data, err := io.ReadAll(r.Body)
			if err != nil {
				onError(w, r, err)
				return
			}
			var body any
			if err := json.Unmarshal(data, &body); err != nil {
				onError(w, r, &ports.ValidationError{
					Message: "Invalid request data",
					Fields:  []ports.FieldError{{Field: "body", Message: "malformed JSON"}},
				})
				return
			}
			if err := validate(schema, body); err != nil {
				onError(w, r, err)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(data))
			next.ServeHTTP(w, r)
		})
	}
}

func validate(schema *openapi3.Schema, body any) error {
	err := schema.VisitJSON(body, openapi3.MultiErrors())
	if err == nil {
		return nil
	}
	return &ports.ValidationError{Message: "Invalid request data", Fields: fieldErrors(err)}
}

func fieldErrors(err error) []ports.FieldError {
	switch e := err.(type) {
	case openapi3.MultiError:
		var out []ports.FieldError
		for _, inner := range e {
			out = append(out, fieldErrors(inner)...)
		}
		return out
	case *openapi3.SchemaError:
		return []ports.FieldError{{Field: fieldName(e.JSONPointer()), Message: e.Reason}}
	default:
		return []ports.FieldError{{Field: "body", Message: err.Error()}}
	}
}

func fieldName(pointer []string) string {
	if len(pointer) == 0 {
		return "body"
	}
	return strings.Join(pointer, ".")
}
