package main

import (
	"errors"
	"os"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"abv/internal/convert"
	"abv/internal/util"
)

var (
	opts     convert.Options
	logLevel string

	rootCmd = &cobra.Command{
		Use:           "bv2av BVID...",
		Short:         "Convert BV ids to av numbers",
		Version:       util.Version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := util.InitLog(logLevel); err != nil {
				return err
			}
			return convert.BVToAV(args, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
)

func init() {
	convert.Flags(rootCmd.Flags(), &opts, "Do not show \"av\" prefix", "Do not show \" = BVxxx\" suffix")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "warn", "sets log level")
}

func main() {
	os.Exit(execute())
}

func execute() int {
	if err := rootCmd.Execute(); err != nil {
		// conversion failures were already reported item by item
		var merr *multierror.Error
		if !errors.As(err, &merr) {
			log.Error(err)
		}
		return 1
	}
	return 0
}
