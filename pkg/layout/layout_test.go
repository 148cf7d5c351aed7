package layout

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/graphlayout/pkg/diagram/diagramtest"
	"github.com/matzehuels/graphlayout/pkg/engine"
	"github.com/matzehuels/graphlayout/pkg/engine/hierarchic"
	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
	"github.com/matzehuels/graphlayout/pkg/observability"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	for _, e := range Engines() {
		cfg.Engine = e.Name
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate(%s) error = %v", e.Name, err)
		}
		if cfg.Options() == nil {
			t.Errorf("Options(%s) = nil", e.Name)
		}
	}
}

func TestParseConfig(t *testing.T) {
	data := `
engine = "Tree"

[tree]
style = "radial"
layer_distance = 30

[hierarchic]
orientation = "W"
sweeps = ["median-up"]
margin_x = 12
`
	cfg, err := ParseConfig([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "tree", cfg.Engine)
	assert.Equal(t, "radial", string(cfg.Tree.Style))
	assert.Equal(t, 30.0, cfg.Tree.LayerDistance)
	assert.Equal(t, 50.0, cfg.Tree.VertexDistance, "unset keys keep defaults")
	assert.Equal(t, engine.West, cfg.Hierarchic.Orientation)
	assert.Equal(t, []hierarchic.Sweep{"median-up"}, cfg.Hierarchic.Sweeps)
	assert.Equal(t, 12.0, cfg.Hierarchic.MarginX)
	assert.Equal(t, 50.0, cfg.Force.Distance)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code lerrors.Code
	}{
		{"syntax", `engine = `, lerrors.ErrCodeInvalidConfig},
		{"unknown key", "[force]\ndistanse = 3", lerrors.ErrCodeInvalidConfig},
		{"unknown engine", `engine = "spring"`, lerrors.ErrCodeUnknownEngine},
		{"bad option", "engine = \"force\"\n[force]\ndistance = -1", lerrors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, tt.code, lerrors.GetCode(err), "error = %v", err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	require.NoError(t, os.WriteFile(path, []byte("engine = \"force\"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "force", cfg.Engine)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestSetters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetSeed(7)
	cfg.SetOrientation(engine.East)
	for _, c := range cfg.commons() {
		assert.Equal(t, uint64(7), c.Seed)
	}
	assert.Equal(t, engine.East, cfg.Tree.Orientation)
	assert.Equal(t, engine.East, cfg.SeriesParallel.Orientation)
	assert.Equal(t, engine.East, cfg.Orthogonal.Orientation)
	assert.Equal(t, engine.East, cfg.Hierarchic.Orientation)
}

func TestRunEveryEngine(t *testing.T) {
	// A series-parallel digraph that is also drawable by every other engine
	// except tree, which gets its own input.
	inputs := map[string]string{
		"force":          "s>a s>b a>t b>t",
		"tree":           "r>a r>b a>c",
		"seriesparallel": "s>a s>b a>t b>t",
		"orthogonal":     "s>a s>b a>t b>t",
		"hierarchic":     "s>a s>b a>t b>t",
	}
	for _, e := range Engines() {
		t.Run(e.Name, func(t *testing.T) {
			m := diagramtest.Parse(t, inputs[e.Name])
			cfg := DefaultConfig()
			cfg.Engine = e.Name

			stats, err := Run(context.Background(), m, cfg)
			require.NoError(t, err)
			assert.Equal(t, e.Name, stats.Engine)
			assert.Equal(t, 1, stats.Clusters)
			assert.Equal(t, 1, m.Commits())
			diagramtest.AssertNonNegative(t, m)
		})
	}
}

func TestRunFailureLeavesDiagram(t *testing.T) {
	m := diagramtest.Parse(t, "s>a s>b a>t b>t")
	before := diagramtest.Positions(m)

	cfg := DefaultConfig()
	cfg.Engine = "tree"
	_, err := Run(context.Background(), m, cfg)
	require.Error(t, err)
	assert.True(t, lerrors.Is(err, lerrors.ErrCodeNotARootedForest), "error = %v", err)
	assert.Equal(t, 1, lerrors.ClusterOf(err))
	assert.Equal(t, before, diagramtest.Positions(m))
	assert.Equal(t, 0, m.Commits())
}

func TestRunUnknownEngine(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine = "spring"
	_, err := Run(context.Background(), diagramtest.Parse(t, "a>b"), cfg)
	assert.True(t, lerrors.Is(err, lerrors.ErrCodeUnknownEngine), "error = %v", err)
}

type recordingHooks struct {
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) OnLayoutStart(_ context.Context, engine string, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "start:"+engine)
}

func (h *recordingHooks) OnLayoutComplete(_ context.Context, engine string, clusters int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err != nil {
		h.events = append(h.events, "fail:"+engine)
		return
	}
	h.events = append(h.events, "done:"+engine)
}

func TestRunFiresHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetLayoutHooks(h)
	t.Cleanup(observability.Reset)

	cfg := DefaultConfig()
	cfg.Engine = "tree"
	_, _ = Run(context.Background(), diagramtest.Parse(t, "a>b"), cfg)
	_, _ = Run(context.Background(), diagramtest.Parse(t, "a>c b>c"), cfg)

	assert.Equal(t, []string{"start:tree", "done:tree", "start:tree", "fail:tree"}, h.events)
}
