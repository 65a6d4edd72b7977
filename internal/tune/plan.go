package tune

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"go.llib.dev/listkit/pkg/errorkit"
	"go.llib.dev/listkit/pkg/logging"
)

const (
	ErrUnsupportedFormat errorkit.Error = "tune: unsupported plan format"
	ErrInvalidPlan       errorkit.Error = "tune: invalid plan"
)

// Side selects which end of the list a workload grows.
type Side string

const (
	SideAppend  Side = "append"
	SidePrepend Side = "prepend"
	SideBoth    Side = "both"
)

// Plan describes a set of measurements.
// Every combination of Sizes and Multipliers is measured once.
type Plan struct {
	// Sizes are the lengths of the source lists the chains start from.
	Sizes []int `toml:"sizes" yaml:"sizes"`
	// Chain is the number of Append or Prepend calls per measurement.
	Chain int `toml:"chain" yaml:"chain"`
	// Multipliers are the re-anchor multipliers to compare.
	Multipliers []float64 `toml:"multipliers" yaml:"multipliers"`
	Side        Side      `toml:"side" yaml:"side"`
	// BranchEvery makes every n-th step branch off the chain,
	// which forces the next step to diverge from the shared buffer.
	// Zero disables branching.
	BranchEvery int    `toml:"branch_every" yaml:"branch_every"`
	Level       string `toml:"level" yaml:"level"`
}

func DefaultPlan() Plan {
	return Plan{
		Sizes:       []int{0, 100, 10_000},
		Chain:       2_000,
		Multipliers: []float64{1, 15, 50},
		Side:        SideBoth,
		BranchEvery: 1,
		Level:       string(logging.LevelInfo),
	}
}

// LoadPlan reads a plan file on top of DefaultPlan.
// The format follows the file extension: .toml, .yaml or .yml.
func LoadPlan(path string) (Plan, error) {
	plan := DefaultPlan()
	content, err := os.ReadFile(path)
	if err != nil {
		return plan, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(content, &plan); err != nil {
			return plan, ErrInvalidPlan.Wrap(err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &plan); err != nil {
			return plan, ErrInvalidPlan.Wrap(err)
		}
	default:
		return plan, ErrUnsupportedFormat.F("%q", ext)
	}
	return plan, plan.Validate()
}

func (p Plan) Validate() error {
	if len(p.Sizes) == 0 {
		return ErrInvalidPlan.F("no sizes")
	}
	for _, size := range p.Sizes {
		if size < 0 {
			return ErrInvalidPlan.F("negative size: %d", size)
		}
	}
	if p.Chain < 1 {
		return ErrInvalidPlan.F("chain must be positive: %d", p.Chain)
	}
	if len(p.Multipliers) == 0 {
		return ErrInvalidPlan.F("no multipliers")
	}
	for _, m := range p.Multipliers {
		if m < 0 {
			return ErrInvalidPlan.F("negative multiplier: %v", m)
		}
	}
	switch p.Side {
	case SideAppend, SidePrepend, SideBoth:
	default:
		return ErrInvalidPlan.F("unknown side: %q", p.Side)
	}
	if p.BranchEvery < 0 {
		return ErrInvalidPlan.F("negative branch_every: %d", p.BranchEvery)
	}
	if _, ok := logging.ParseLevel(p.Level); !ok {
		return ErrInvalidPlan.F("unknown level: %q", p.Level)
	}
	return nil
}
