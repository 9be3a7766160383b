package main

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.lepak.sg/containers/tree/avl"
)

func (a *app) avlCmd() *cobra.Command {
	var find []int

	cmd := &cobra.Command{
		Use:   "avl [ints...]",
		Short: "Insert values into an AVL tree one at a time and show the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}

			var tr avl.Tree[int]
			for _, v := range values {
				tr.Insert(v)
				a.log.WithFields(logrus.Fields{
					"value":  v,
					"height": tr.Height(),
					"valid":  tr.Validate(),
				}).Debug("inserted")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "tree:")
			fmt.Fprint(out, tr.String())
			fmt.Fprintln(out, "inorder:", tr.Slice())
			fmt.Fprintln(out, "height:", tr.Height(), "ideal:", avl.IdealHeight(tr.Len()))
			fmt.Fprintln(out, "valid:", tr.Validate())

			for _, k := range find {
				fmt.Fprintf(out, "contains %d: %v\n", k, tr.Contains(k))
			}

			return nil
		},
	}

	cmd.Flags().IntSliceVar(&find, "find", nil, "values to look up after inserting")

	return cmd
}

func (a *app) randomCmd() *cobra.Command {
	var opts avl.CheckOptions
	var quiet bool

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Build many AVL trees from random insert orders and check them all",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("num") {
				opts.Num = a.cfg.Random.Num
			}
			if !flags.Changed("rounds") {
				opts.Rounds = a.cfg.Random.Rounds
			}
			if !flags.Changed("workers") {
				opts.Workers = a.cfg.Random.Workers
			}
			if !flags.Changed("seed") {
				opts.Seed = a.cfg.Random.Seed
			}
			if opts.Seed == 0 {
				opts.Seed = time.Now().UnixNano()
			}

			log := a.log.WithFields(logrus.Fields{
				"num":     opts.Num,
				"rounds":  opts.Rounds,
				"workers": opts.Workers,
				"seed":    opts.Seed,
			})
			log.Info("checking shuffles")

			var bar *progressbar.ProgressBar
			if !quiet {
				bar = progressbar.NewOptions(opts.Rounds,
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionSetDescription("rounds"),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
			}

			opts.Progress = func(round, height int) {
				log.WithFields(logrus.Fields{
					"round":  round,
					"height": height,
				}).Debug("round passed")
				if bar != nil {
					_ = bar.Add(1)
				}
			}

			report, err := avl.CheckShuffles(cmd.Context(), opts)
			if bar != nil {
				_ = bar.Finish()
			}
			if err != nil {
				return fmt.Errorf("seed %d: %w", opts.Seed, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "rounds:", report.Rounds)
			fmt.Fprintln(out, "height: min", report.MinHeight, "max", report.MaxHeight)
			fmt.Fprintln(out, "ideal:", report.IdealHeight, "limit:", avl.MaxHeight(opts.Num))

			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Num, "num", "n", 0, "number of values in each tree")
	cmd.Flags().IntVarP(&opts.Rounds, "rounds", "r", 0, "number of trees to build")
	cmd.Flags().Int64VarP(&opts.Seed, "seed", "s", 0, "seed (default current unix time in ns)")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "j", 0, "trees to build at once (0 for no limit)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not show a progress bar")

	return cmd
}
