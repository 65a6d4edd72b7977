package tune_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.llib.dev/listkit/internal/tune"
	"go.llib.dev/listkit/pkg/listkit"
	"go.llib.dev/listkit/pkg/logging"
)

func smallPlan() tune.Plan {
	plan := tune.DefaultPlan()
	plan.Sizes = []int{0, 16}
	plan.Chain = 200
	plan.Multipliers = []float64{0, 1000}
	return plan
}

func TestRun(t *testing.T) {
	t.Run("every size is measured with every multiplier", func(t *testing.T) {
		ms, err := tune.Run(context.Background(), smallPlan())
		require.NoError(t, err)
		require.Len(t, ms, 4)
		assert.Equal(t, 0, ms[0].Size)
		assert.Equal(t, float64(0), ms[0].Multiplier)
		assert.Equal(t, 16, ms[3].Size)
		assert.Equal(t, float64(1000), ms[3].Multiplier)
	})

	t.Run("a low multiplier re-anchors, a high one copies", func(t *testing.T) {
		plan := smallPlan()
		plan.Sizes = []int{16}
		ms, err := tune.Run(context.Background(), plan)
		require.NoError(t, err)
		require.Len(t, ms, 2)
		assert.Positive(t, ms[0].Reanchors)
		assert.Zero(t, ms[1].Reanchors)
	})

	t.Run("an empty source is always re-anchored on divergence", func(t *testing.T) {
		plan := smallPlan()
		plan.Sizes = []int{0}
		ms, err := tune.Run(context.Background(), plan)
		require.NoError(t, err)
		for _, m := range ms {
			assert.Positive(t, m.Reanchors, "multiplier %v", m.Multiplier)
		}
	})

	t.Run("without branching the buffer never diverges", func(t *testing.T) {
		plan := smallPlan()
		plan.BranchEvery = 0
		ms, err := tune.Run(context.Background(), plan)
		require.NoError(t, err)
		for _, m := range ms {
			assert.Zero(t, m.Reanchors)
		}
	})

	t.Run("the re-anchor multiplier is restored", func(t *testing.T) {
		og := listkit.ReanchorMultiplier
		_, err := tune.Run(context.Background(), smallPlan())
		require.NoError(t, err)
		assert.Equal(t, og, listkit.ReanchorMultiplier)
	})

	t.Run("re-anchor events still reach the logger", func(t *testing.T) {
		_, out := logging.Stub(t)
		plan := smallPlan()
		plan.Sizes = []int{4}
		plan.Multipliers = []float64{0}
		_, err := tune.Run(context.Background(), plan)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "re-anchored")
		assert.Contains(t, out.String(), "measurement done")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := tune.Run(ctx, smallPlan())
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid plan", func(t *testing.T) {
		plan := smallPlan()
		plan.Chain = 0
		_, err := tune.Run(context.Background(), plan)
		assert.ErrorIs(t, err, tune.ErrInvalidPlan)
	})
}
