package layout

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/graphlayout/pkg/diagram"
	"github.com/matzehuels/graphlayout/pkg/engine"
	"github.com/matzehuels/graphlayout/pkg/engine/force"
	"github.com/matzehuels/graphlayout/pkg/engine/hierarchic"
	"github.com/matzehuels/graphlayout/pkg/engine/orthogonal"
	"github.com/matzehuels/graphlayout/pkg/engine/seriesparallel"
	"github.com/matzehuels/graphlayout/pkg/engine/tree"
	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
	"github.com/matzehuels/graphlayout/pkg/observability"
)

// EngineInfo describes a registered engine.
type EngineInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Requires names the structural precondition on the input graph, if any.
	Requires string `json:"requires,omitempty"`
}

var engines = []EngineInfo{
	{Name: force.Name, Description: "GEM force-directed placement"},
	{Name: tree.Name, Description: "layered or radial tree drawing", Requires: "rooted forest"},
	{Name: seriesparallel.Name, Description: "series-parallel decomposition drawing", Requires: "series-parallel digraph"},
	{Name: orthogonal.Name, Description: "Biedl-Kant orthogonal grid drawing"},
	{Name: hierarchic.Name, Description: "Sugiyama layered drawing"},
}

// Engines lists the available engines in a stable order.
func Engines() []EngineInfo {
	return append([]EngineInfo(nil), engines...)
}

// Run lays out d with the engine named by cfg.Engine and writes the result
// back. On error d is left unchanged.
func Run(ctx context.Context, d diagram.Diagram, cfg Config) (*engine.Stats, error) {
	if err := lerrors.ValidateEngine(cfg.Engine); err != nil {
		return nil, err
	}
	name := strings.ToLower(cfg.Engine)

	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, name, len(diagram.Nodes(d)))
	start := time.Now()

	var (
		stats *engine.Stats
		err   error
	)
	switch name {
	case force.Name:
		stats, err = force.Layout(ctx, d, cfg.Force)
	case tree.Name:
		stats, err = tree.Layout(ctx, d, cfg.Tree)
	case seriesparallel.Name:
		stats, err = seriesparallel.Layout(ctx, d, cfg.SeriesParallel)
	case orthogonal.Name:
		stats, err = orthogonal.Layout(ctx, d, cfg.Orthogonal)
	case hierarchic.Name:
		stats, err = hierarchic.Layout(ctx, d, cfg.Hierarchic)
	}

	clusters := 0
	if stats != nil {
		clusters = stats.Clusters
	}
	hooks.OnLayoutComplete(ctx, name, clusters, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
