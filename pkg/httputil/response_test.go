package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{lerrors.New(lerrors.ErrCodeInvalidInput, "bad"), http.StatusBadRequest},
		{lerrors.New(lerrors.ErrCodeInvalidConfig, "bad"), http.StatusBadRequest},
		{lerrors.New(lerrors.ErrCodeInvalidFormat, "bad"), http.StatusBadRequest},
		{lerrors.New(lerrors.ErrCodeUnknownEngine, "bad"), http.StatusNotFound},
		{lerrors.ForCluster(lerrors.ErrCodeNotAcyclic, 1, "cycle"), http.StatusUnprocessableEntity},
		{fmt.Errorf("layout: %w", lerrors.New(lerrors.ErrCodeNotSeriesParallel, "x")), http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusOf(tt.err); got != tt.want {
			t.Errorf("StatusOf(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, lerrors.ForCluster(lerrors.ErrCodeNotARootedForest, 2, "vertex %s has 2 parents", "c"))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var body map[string]ErrorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := body["error"]
	want := ErrorBody{Code: lerrors.ErrCodeNotARootedForest, Message: "cluster 2: vertex c has 2 parents", Cluster: 2}
	if got != want {
		t.Errorf("error body = %+v, want %+v", got, want)
	}
}

func TestWriteErrorPlain(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("boom"))

	var body map[string]ErrorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"].Code != lerrors.ErrCodeInternal || body["error"].Message != "boom" {
		t.Errorf("error body = %+v", body["error"])
	}
}
