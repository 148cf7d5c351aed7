package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/graphlayout/pkg/diagram"
	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
	"github.com/matzehuels/graphlayout/pkg/io"
	"github.com/matzehuels/graphlayout/pkg/render"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, m *diagram.Memory, formats []string) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		data, err := renderFormat(ctx, m, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, m *diagram.Memory, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		var buf bytes.Buffer
		if err := io.WriteJSON(m, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatSVG:
		var buf bytes.Buffer
		if err := render.SVG(m, &buf, render.Options{Labels: true}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatDOT:
		return []byte(render.ToDOT(m)), nil
	case FormatPNG:
		return render.RenderDOT(ctx, render.ToDOT(m), FormatPNG)
	}
	return nil, lerrors.ValidateFormat(format)
}
