package main

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFile   string
	verbose   bool
	logger    *logrus.Logger
	openStore storeOpener
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithStore(openConfiguredStore)
}

func newRootCmdWithStore(openStore storeOpener) *cobra.Command {
	opts := &rootOptions{logger: logrus.New(), openStore: openStore}

	cmd := &cobra.Command{
		Use:           "moviectl",
		Short:         "Manage the movie demo store and render movie items",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.setupLogger(cmd.ErrOrStderr())
			if opts.envFile != "" {
				if err := godotenv.Load(opts.envFile); err != nil {
					opts.logger.WithError(err).Warnf("Could not load environment file %s", opts.envFile)
				}
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "load environment variables from this file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newRenderCmd(opts),
		newSeedCmd(opts),
		newListCmd(opts),
	)
	return cmd
}

func (o *rootOptions) setupLogger(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	o.logger.SetOutput(w)
	o.logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	o.logger.SetLevel(logrus.InfoLevel)
	if o.verbose {
		o.logger.SetLevel(logrus.DebugLevel)
	}
}
