package cli

import (
	"context"
	"fmt"
	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/gostonefire/searchtable/internal/workload"
	"github.com/gostonefire/searchtable/variant"
	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"io"
	"strings"
	"time"
)

type runOptions struct {
	configPath string
	variants   []string
	debug      bool
	profile    workload.Profile
}

// NewRootCmd - Returns the searchtable command with its sub commands
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "searchtable [command] (flags)",
		Short:         "run random workloads against in-memory search tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newVariantsCmd(),
	)

	return rootCmd
}

// Run - Runs the command line with args, not including the program name
func Run(ctx context.Context, args []string) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "list the search table variants",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, kind := range variant.All {
				fmt.Fprintln(cmd.OutOrStdout(), variant.Name(kind))
			}
		},
	}
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{profile: workload.DefaultProfile()}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a random workload against search tables",
		Long: `
Generates a random sequence of finds, inserts and removes and runs it against each selected variant.
Every variant first runs the sequence timed, then once more with every answer compared to a map and
the structural invariants of the table verified.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkload(cmd, opts)
		},
	}

	addRunFlags(runCmd.Flags(), opts)

	return runCmd
}

func addRunFlags(fs *pflag.FlagSet, opts *runOptions) {
	fs.StringVar(&opts.configPath, "config", "", "YAML workload profile, flags given explicitly override it")
	fs.StringSliceVar(&opts.variants, "variants", nil, "variants to run, all if not given")
	fs.IntVar(&opts.profile.Ops, "ops", opts.profile.Ops, "number of operations")
	fs.IntVar(&opts.profile.Keys, "keys", opts.profile.Keys, "size of the key space")
	fs.Int64Var(&opts.profile.Seed, "seed", opts.profile.Seed, "random seed")
	fs.IntVar(&opts.profile.Capacity, "capacity", opts.profile.Capacity, "slots or buckets of the hash tables")
	fs.Float64Var(&opts.profile.InsertRatio, "insert-ratio", opts.profile.InsertRatio, "share of inserts")
	fs.Float64Var(&opts.profile.RemoveRatio, "remove-ratio", opts.profile.RemoveRatio, "share of removes")
	fs.IntVar(&opts.profile.VerifyEvery, "verify-every", opts.profile.VerifyEvery, "operations between invariant checks, 0 only at the end")
	fs.BoolVar(&opts.debug, "debug", false, "debug logging")
}

// resolveProfile - Returns the profile from the config file if one is given, with every explicitly set flag
// applied on top of it
func resolveProfile(fs *pflag.FlagSet, opts *runOptions) (profile workload.Profile, err error) {
	profile = opts.profile
	if len(opts.variants) > 0 {
		profile.Variants = opts.variants
	}
	if opts.configPath == "" {
		return
	}

	profile, err = workload.LoadProfile(opts.configPath, workload.DefaultProfile())
	if err != nil {
		return
	}

	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "variants":
			profile.Variants = opts.variants
		case "ops":
			profile.Ops = opts.profile.Ops
		case "keys":
			profile.Keys = opts.profile.Keys
		case "seed":
			profile.Seed = opts.profile.Seed
		case "capacity":
			profile.Capacity = opts.profile.Capacity
		case "insert-ratio":
			profile.InsertRatio = opts.profile.InsertRatio
		case "remove-ratio":
			profile.RemoveRatio = opts.profile.RemoveRatio
		case "verify-every":
			profile.VerifyEvery = opts.profile.VerifyEvery
		}
	})

	return
}

func runWorkload(cmd *cobra.Command, opts *runOptions) error {
	if opts.debug {
		log.SetLevel(log.DebugLevel)
	}

	profile, err := resolveProfile(cmd.Flags(), opts)
	if err != nil {
		return err
	}
	log.Debugf("[CLI] profile: %+v", profile)

	results, err := workload.RunAll(cmd.Context(), profile)
	if err != nil {
		return errors.Wrap(err, "workload failed")
	}

	return renderResults(cmd.OutOrStdout(), results)
}

// renderResults - Writes the results as a table
func renderResults(w io.Writer, results []workload.Result) error {
	data := pterm.TableData{
		{"Variant", "Ops", "Elapsed", "Ops/s", "Entries", "Height", "Load", "Rejected"},
	}

	for _, r := range results {
		height, load := "-", "-"
		if r.Stat == nil {
			height = humanize.Comma(int64(r.Height))
		} else {
			load = fmt.Sprintf("%.2f", r.Stat.LoadFactor())
		}

		data = append(data, []string{
			r.Variant,
			humanize.Comma(int64(r.Ops)),
			r.Elapsed.Round(time.Microsecond).String(),
			humanize.Comma(int64(r.OpsPerSecond())),
			humanize.Comma(int64(r.Len)),
			height,
			load,
			humanize.Comma(int64(r.Rejected)),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "rendering results")
	}

	_, err = fmt.Fprintln(w, strings.TrimRight(table, "\n"))

	return err
}
