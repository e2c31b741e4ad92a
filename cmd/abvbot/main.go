package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"abv/internal/bot"
	"abv/internal/util"
)

var (
	configPath string
	token      string
	host       string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:           "abvbot",
		Short:         "Chat bot expanding short links and converting av/BV ids",
		Version:       util.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			util.SetFlagsFromEnvVars(cmd, bot.EnvPrefix)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := bot.ReadConfig(configPath)
			if err != nil {
				return err
			}
			if token != "" {
				config.Token = token
			}
			if host != "" {
				config.Host = host
			}
			if logLevel != "" {
				config.LogLevel = logLevel
			}
			if err := util.InitLog(config.LogLevel); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return bot.Serve(ctx, config)
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "bot config file location (YAML)")
	rootCmd.Flags().StringVar(&token, "token", "", "bot api token")
	rootCmd.Flags().StringVar(&host, "host", "", "video site host (default \""+bot.DefaultHost+"\")")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "sets log level (default \"info\")")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
