package httpadapter

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"audithook/internal/api"
	"audithook/internal/ports"
)

type errorBody struct {
	Message string             `json:"message"`
	Errors  []ports.FieldError `json:"errors,omitempty"`
}

// statusError carries a fixed status and client-facing message.
type statusError struct {
	code int
	msg  string
}

func (e *statusError) Error() string { return e.msg }

func bodyError(msg string) *ports.ValidationError {
	return &ports.ValidationError{Message: "Invalid request data", Fields: []ports.FieldError{{Field: "body", Message: msg}}}
}

func toError(verr *ports.ValidationError) api.Error {
	out := api.Error{Message: verr.Message}
	if len(verr.Fields) > 0 {
		fields := make([]api.FieldError, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, api.FieldError{Field: f.Field, Message: f.Message})
		}
		out.Errors = &fields
	}
	return out
}

// internalError logs err and returns only msg for the client.
func internalError(msg string, err error) api.Error {
	log.Printf("%s: %v", msg, err)
	return api.Error{Message: msg}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

// requestError answers failures raised before a handler runs: oversized or
// undecodable bodies, schema violations and path binding errors.
func requestError(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	var verr *ports.ValidationError
	var perr *api.InvalidParamFormatError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, &statusError{code: http.StatusRequestEntityTooLarge, msg: "Request body too large"}, "")
	case errors.As(err, &verr):
		writeError(w, verr, "")
	case errors.As(err, &perr):
		writeError(w, &ports.ValidationError{
			Message: "Invalid request data",
			Fields:  []ports.FieldError{{Field: perr.ParamName, Message: perr.Err.Error()}},
		}, "")
	default:
		writeError(w, bodyError(err.Error()), "")
	}
}

func responseError(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, err, "")
}

// writeError maps err onto a status code. Unexpected errors are logged and
// answered with fallback only, so internals never reach the client.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var verr *ports.ValidationError
	var serr *statusError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorBody{Message: verr.Message, Errors: verr.Fields})
	case errors.As(err, &serr):
		writeJSON(w, serr.code, errorBody{Message: serr.msg})
	case errors.Is(err, ports.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Message: "not found"})
	default:
		if fallback == "" {
			fallback = "Internal server error"
		}
		log.Printf("%s: %v", fallback, err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: fallback})
	}
}
