package util

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is overridden at build time with -ldflags "-X abv/internal/util.Version=..."
var Version = "development"

// SetFlagsFromEnvVars reads and updates flag values from environment variables with the given prefix
func SetFlagsFromEnvVars(cmd *cobra.Command, prefix string) {
	flags := cmd.Flags()
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}

		// E.g. log-level -> ABV_BOT_LOG_LEVEL
		envName := prefix + flagNameToUpper(f.Name)

		if value, present := os.LookupEnv(envName); present {
			err := flags.Set(f.Name, value)

			if err != nil {
				log.Infof("unable to configure flag %s using variable %s, err: %v", f.Name, envName, err)
			}
		}
	})
}

// flagNameToUpper converts a flag name to its corresponding base env name
// replacing dashes by underscores and making the result uppercase
func flagNameToUpper(cmdFlag string) string {
	return strings.ToUpper(strings.ReplaceAll(cmdFlag, "-", "_"))
}
