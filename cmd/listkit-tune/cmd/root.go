package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"go.llib.dev/listkit/internal/tune"
	"go.llib.dev/listkit/pkg/logging"
)

type options struct {
	plan        string
	sizes       []int
	chain       int
	multipliers []float64
	side        string
	branchEvery int
	level       string
}

// NewRootCommand builds the listkit-tune command.
func NewRootCommand() *cobra.Command {
	var opts options
	def := tune.DefaultPlan()

	cmd := &cobra.Command{
		Use:   "listkit-tune",
		Short: "Measure listkit Append/Prepend chains under different re-anchor multipliers",
		Long: `listkit-tune builds long Append and Prepend chains that keep branching off,
and reports how many times they were re-anchored and how long building and traversing took.

Every size is measured with every multiplier.
A plan file (TOML or YAML, by extension) can replace the defaults,
and flags given explicitly override the plan file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := opts.toPlan(cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd, opts.plan, plan)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.plan, "plan", "", "plan file (.toml, .yaml or .yml)")
	flags.IntSliceVar(&opts.sizes, "sizes", def.Sizes, "source list lengths")
	flags.IntVar(&opts.chain, "chain", def.Chain, "number of Append/Prepend calls per measurement")
	flags.Float64SliceVar(&opts.multipliers, "multipliers", def.Multipliers, "re-anchor multipliers to compare")
	flags.StringVar(&opts.side, "side", string(def.Side), "append, prepend or both")
	flags.IntVar(&opts.branchEvery, "branch-every", def.BranchEvery, "branch off the chain every n-th step, 0 disables branching")
	flags.StringVar(&opts.level, "level", def.Level, "logging level")
	return cmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func (o options) toPlan(cmd *cobra.Command) (tune.Plan, error) {
	plan := tune.DefaultPlan()
	if o.plan != "" {
		p, err := tune.LoadPlan(o.plan)
		if err != nil {
			return plan, err
		}
		plan = p
	}
	flags := cmd.Flags()
	if flags.Changed("sizes") {
		plan.Sizes = o.sizes
	}
	if flags.Changed("chain") {
		plan.Chain = o.chain
	}
	if flags.Changed("multipliers") {
		plan.Multipliers = o.multipliers
	}
	if flags.Changed("side") {
		plan.Side = tune.Side(o.side)
	}
	if flags.Changed("branch-every") {
		plan.BranchEvery = o.branchEvery
	}
	if flags.Changed("level") {
		plan.Level = o.level
	}
	return plan, plan.Validate()
}

func run(ctx context.Context, cmd *cobra.Command, planFile string, plan tune.Plan) error {
	if ctx == nil {
		ctx = context.Background()
	}
	level, _ := logging.ParseLevel(plan.Level)

	og := logging.Default
	logging.Default = &logging.Logger{Out: cmd.OutOrStdout(), Level: level}
	defer func() { logging.Default = og }()

	if planFile == "" {
		planFile = "default"
	}
	ctx = logging.ContextWith(ctx,
		logging.Field("plan", planFile),
		logging.Field("branch_every", plan.BranchEvery))

	if plan.BranchEvery == 0 {
		logging.Warn(ctx, "branching is disabled, chains never diverge and the multipliers make no difference")
	}

	ms, err := tune.Run(ctx, plan)
	if err != nil {
		logging.Error(ctx, "tuning failed", logging.ErrField(err))
		return err
	}
	for _, m := range ms {
		logging.Info(ctx, "measurement", m.Fields())
	}
	return nil
}
