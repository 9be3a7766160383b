// Command containers exercises the list and AVL tree packages
// from the command line.
//
// Usage:
//
//	containers list 1 2 3
//	containers list --insert-after 0 --value 9 1 2 3
//	containers avl 5 3 8 1 4 7 9
//	containers random -n 1000 -r 100 -j 8
//
// Defaults for the random command come from ~/.containers.yaml,
// or the file given with --config.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type app struct {
	cfg *Config
	log *logrus.Logger

	// flags on the root command
	configPath string
	logLevel   string
}

func newApp() *app {
	return &app{
		cfg: defaultConfig(),
		log: logrus.New(),
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "containers",
		Short:         "Build and inspect linked lists and AVL trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "",
		"config file (default ~/"+defaultConfigName+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"log level, overrides the config file")

	root.AddCommand(a.listCmd(), a.avlCmd(), a.randomCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	levelName := a.cfg.LogLevel
	if a.logLevel != "" {
		levelName = a.logLevel
	}

	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return err
	}
	a.log.SetLevel(level)

	a.log.WithFields(logrus.Fields{
		"config": a.configPath,
		"level":  level,
	}).Debug("configured")

	return nil
}

// parseInts converts command line arguments to ints.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))

	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = n
	}

	return out, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp()
	if err := a.rootCmd().ExecuteContext(ctx); err != nil {
		a.log.WithError(err).Error("failed")
		stop()
		os.Exit(1)
	}
}
