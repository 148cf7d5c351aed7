package layout

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphlayout/pkg/engine"
	"github.com/matzehuels/graphlayout/pkg/engine/force"
	"github.com/matzehuels/graphlayout/pkg/engine/hierarchic"
	"github.com/matzehuels/graphlayout/pkg/engine/orthogonal"
	"github.com/matzehuels/graphlayout/pkg/engine/seriesparallel"
	"github.com/matzehuels/graphlayout/pkg/engine/tree"
	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
)

// DefaultEngine is used when a config names no engine.
const DefaultEngine = hierarchic.Name

// Config selects an engine and holds the options of every engine.
type Config struct {
	Engine string `json:"engine" toml:"engine"`

	Force          force.Options          `json:"force" toml:"force"`
	Tree           tree.Options           `json:"tree" toml:"tree"`
	SeriesParallel seriesparallel.Options `json:"seriesparallel" toml:"seriesparallel"`
	Orthogonal     orthogonal.Options     `json:"orthogonal" toml:"orthogonal"`
	Hierarchic     hierarchic.Options     `json:"hierarchic" toml:"hierarchic"`
}

// DefaultConfig returns the hierarchic engine with every engine's defaults.
func DefaultConfig() Config {
	return Config{
		Engine:         DefaultEngine,
		Force:          force.DefaultOptions(),
		Tree:           tree.DefaultOptions(),
		SeriesParallel: seriesparallel.DefaultOptions(),
		Orthogonal:     orthogonal.DefaultOptions(),
		Hierarchic:     hierarchic.DefaultOptions(),
	}
}

// ParseConfig decodes TOML on top of [DefaultConfig].
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, lerrors.Wrap(lerrors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, lerrors.New(lerrors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	cfg.Engine = strings.ToLower(cfg.Engine)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the TOML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the engine name and the selected engine's options.
func (c Config) Validate() error {
	if err := lerrors.ValidateEngine(c.Engine); err != nil {
		return err
	}
	switch strings.ToLower(c.Engine) {
	case force.Name:
		return c.Force.Validate()
	case tree.Name:
		return c.Tree.Validate()
	case seriesparallel.Name:
		return c.SeriesParallel.Validate()
	case orthogonal.Name:
		return c.Orthogonal.Validate()
	default:
		return c.Hierarchic.Validate()
	}
}

// Options returns the option block of the selected engine, or nil for an
// unknown engine.
func (c Config) Options() any {
	switch strings.ToLower(c.Engine) {
	case force.Name:
		return c.Force
	case tree.Name:
		return c.Tree
	case seriesparallel.Name:
		return c.SeriesParallel
	case orthogonal.Name:
		return c.Orthogonal
	case hierarchic.Name:
		return c.Hierarchic
	}
	return nil
}

// commons returns the shared options of every engine.
func (c *Config) commons() []*engine.Common {
	return []*engine.Common{
		&c.Force.Common,
		&c.Tree.Common,
		&c.SeriesParallel.Common,
		&c.Orthogonal.Common,
		&c.Hierarchic.Common,
	}
}

// SetSeed sets the random seed of every engine.
func (c *Config) SetSeed(seed uint64) {
	for _, cm := range c.commons() {
		cm.Seed = seed
	}
}

// SetLogger sets the debug logger of every engine.
func (c *Config) SetLogger(l *log.Logger) {
	for _, cm := range c.commons() {
		cm.Logger = l
	}
}

// SetOrientation sets the orientation of every layered engine.
func (c *Config) SetOrientation(o engine.Orientation) {
	c.Tree.Orientation = o
	c.SeriesParallel.Orientation = o
	c.Orthogonal.Orientation = o
	c.Hierarchic.Orientation = o
}
