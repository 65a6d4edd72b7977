// Package tune measures how the re-anchor multiplier of listkit affects
// building and traversing long Append and Prepend chains.
package tune

import (
	"context"
	"strings"
	"time"

	"go.llib.dev/testcase/clock"

	"go.llib.dev/listkit/pkg/listkit"
	"go.llib.dev/listkit/pkg/logging"
)

type Measurement struct {
	Size       int
	Chain      int
	Multiplier float64
	Side       Side
	// Reanchors is the number of times the chain started over on a fresh buffer.
	Reanchors int
	Build     time.Duration
	Traverse  time.Duration
}

func (m Measurement) Fields() logging.Fields {
	return logging.Fields{
		"size":        m.Size,
		"chain":       m.Chain,
		"multiplier":  m.Multiplier,
		"side":        string(m.Side),
		"reanchors":   m.Reanchors,
		"build_ms":    m.Build.Seconds() * 1000,
		"traverse_ms": m.Traverse.Seconds() * 1000,
	}
}

// Run executes every measurement of the plan.
// listkit.ReanchorMultiplier is changed for the duration of the run,
// so no other listkit work should happen meanwhile.
func Run(ctx context.Context, plan Plan) ([]Measurement, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	og := listkit.ReanchorMultiplier
	defer func() { listkit.ReanchorMultiplier = og }()

	var ms []Measurement
	for _, size := range plan.Sizes {
		for _, multiplier := range plan.Multipliers {
			if err := ctx.Err(); err != nil {
				return ms, err
			}
			listkit.ReanchorMultiplier = multiplier
			m, err := measure(ctx, plan, size)
			if err != nil {
				return ms, err
			}
			m.Multiplier = multiplier
			ms = append(ms, m)
		}
	}
	return ms, nil
}

func measure(ctx context.Context, plan Plan, size int) (Measurement, error) {
	m := Measurement{Size: size, Chain: plan.Chain, Side: plan.Side}

	defer countReanchors(&m.Reanchors)()

	src, err := listkit.Range(0, size)
	if err != nil {
		return m, err
	}

	start := clock.Now()
	chain, err := build(src, plan)
	if err != nil {
		return m, err
	}
	m.Build = clock.Now().Sub(start)

	start = clock.Now()
	vs, err := listkit.Collect(chain)
	if err != nil {
		return m, err
	}
	m.Traverse = clock.Now().Sub(start)

	if want := size + plan.Chain; len(vs) != want {
		return m, ErrInvalidPlan.F("chain built %d elements instead of %d", len(vs), want)
	}
	logging.Debug(ctx, "measurement done", m.Fields())
	return m, nil
}

func build(src listkit.List[int], plan Plan) (listkit.List[int], error) {
	var (
		chain = src
		err   error
	)
	for i := 0; i < plan.Chain; i++ {
		if plan.BranchEvery > 0 && i%plan.BranchEvery == 0 {
			if _, err := grow(chain, plan.Side, i, -1); err != nil {
				return nil, err
			}
		}
		chain, err = grow(chain, plan.Side, i, i)
		if err != nil {
			return nil, err
		}
	}
	return chain, nil
}

func grow(l listkit.List[int], side Side, step, item int) (listkit.List[int], error) {
	switch {
	case side == SideAppend, side == SideBoth && step%2 == 0:
		return listkit.Append(l, item)
	default:
		return listkit.Prepend(l, item)
	}
}

// countReanchors counts the re-anchor events listkit logs, and passes every event on to the current logger.
// The returned function restores the logger.
func countReanchors(n *int) func() {
	og := logging.Default
	logging.Default = &logging.Logger{
		Hijack: func(ctx context.Context, level logging.Level, msg string, fields logging.Fields) {
			if strings.Contains(msg, "re-anchored") {
				*n++
			}
			og.Log(ctx, level, msg, fields)
		},
	}
	return func() { logging.Default = og }
}
