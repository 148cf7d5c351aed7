package httputil

import (
	"encoding/json"
	"net/http"

	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
)

// ErrorBody is the JSON form of an error.
type ErrorBody struct {
	Code    lerrors.Code `json:"code"`
	Message string       `json:"message"`
	Cluster int          `json:"cluster,omitempty"`
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// WriteError writes err as an error envelope with the status from
// [StatusOf].
func WriteError(w http.ResponseWriter, err error) {
	code := lerrors.GetCode(err)
	if code == "" {
		code = lerrors.ErrCodeInternal
	}
	WriteJSON(w, StatusOf(err), map[string]ErrorBody{
		"error": {
			Code:    code,
			Message: lerrors.UserMessage(err),
			Cluster: lerrors.ClusterOf(err),
		},
	})
}

// StatusOf maps an error to an HTTP status code.
func StatusOf(err error) int {
	switch lerrors.GetCode(err) {
	case lerrors.ErrCodeInvalidInput, lerrors.ErrCodeInvalidConfig, lerrors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case lerrors.ErrCodeUnknownEngine:
		return http.StatusNotFound
	case lerrors.ErrCodeNotARootedForest, lerrors.ErrCodeNotAcyclic, lerrors.ErrCodeNotSeriesParallel:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
