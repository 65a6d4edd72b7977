package tune_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.llib.dev/listkit/internal/tune"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultPlan(t *testing.T) {
	require.NoError(t, tune.DefaultPlan().Validate())
}

func TestLoadPlan(t *testing.T) {
	t.Run("toml", func(t *testing.T) {
		path := writeFile(t, "plan.toml", `
sizes = [10, 20]
chain = 50
multipliers = [0.5, 2.0]
side = "prepend"
branch_every = 3
level = "debug"
`)
		plan, err := tune.LoadPlan(path)
		require.NoError(t, err)
		assert.Equal(t, []int{10, 20}, plan.Sizes)
		assert.Equal(t, 50, plan.Chain)
		assert.Equal(t, []float64{0.5, 2}, plan.Multipliers)
		assert.Equal(t, tune.SidePrepend, plan.Side)
		assert.Equal(t, 3, plan.BranchEvery)
		assert.Equal(t, "debug", plan.Level)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "plan.yml", `
sizes: [7]
chain: 9
side: append
`)
		plan, err := tune.LoadPlan(path)
		require.NoError(t, err)
		assert.Equal(t, []int{7}, plan.Sizes)
		assert.Equal(t, 9, plan.Chain)
		assert.Equal(t, tune.SideAppend, plan.Side)
		assert.Equal(t, tune.DefaultPlan().Multipliers, plan.Multipliers, "unset values keep their defaults")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := tune.LoadPlan(writeFile(t, "plan.json", `{}`))
		assert.ErrorIs(t, err, tune.ErrUnsupportedFormat)
	})

	t.Run("malformed content", func(t *testing.T) {
		_, err := tune.LoadPlan(writeFile(t, "plan.toml", `sizes = [`))
		assert.ErrorIs(t, err, tune.ErrInvalidPlan)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := tune.LoadPlan(writeFile(t, "plan.yaml", "side: sideways\n"))
		assert.ErrorIs(t, err, tune.ErrInvalidPlan)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := tune.LoadPlan(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestPlan_Validate(t *testing.T) {
	for name, mutate := range map[string]func(*tune.Plan){
		"no sizes":            func(p *tune.Plan) { p.Sizes = nil },
		"negative size":       func(p *tune.Plan) { p.Sizes = []int{-1} },
		"zero chain":          func(p *tune.Plan) { p.Chain = 0 },
		"no multipliers":      func(p *tune.Plan) { p.Multipliers = nil },
		"negative multiplier": func(p *tune.Plan) { p.Multipliers = []float64{-1} },
		"unknown side":        func(p *tune.Plan) { p.Side = "middle" },
		"negative branching":  func(p *tune.Plan) { p.BranchEvery = -1 },
		"unknown level":       func(p *tune.Plan) { p.Level = "loud" },
	} {
		t.Run(name, func(t *testing.T) {
			plan := tune.DefaultPlan()
			mutate(&plan)
			assert.ErrorIs(t, plan.Validate(), tune.ErrInvalidPlan)
		})
	}
}
