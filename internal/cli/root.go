package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rpmsack/internal/core"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "RPMSACK"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "rpmsack",
		Short:   "RPM-style package query and resolve engine",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.PersistentFlags().StringSlice("repo", nil, "Repo metadata snapshot file(s) (YAML, optionally .gz/.xz)")
	cmd.PersistentFlags().String("arch", "x86_64", "Base architecture")
	cmd.PersistentFlags().StringSlice("installonly", nil, "Installonly package name pattern(s) (overrides the default kernel-family list)")
	cmd.PersistentFlags().Int("installonly-limit", 0, "Installonly kept-version limit for the --installonly patterns (0: use the default limit); ignored without --installonly")
	cmd.PersistentFlags().StringSlice("protected", nil, "Protected package name pattern(s)")
	_ = viper.BindPFlag("repo", cmd.PersistentFlags().Lookup("repo"))
	_ = viper.BindPFlag("arch", cmd.PersistentFlags().Lookup("arch"))
	_ = viper.BindPFlag("installonly", cmd.PersistentFlags().Lookup("installonly"))
	_ = viper.BindPFlag("installonly_limit", cmd.PersistentFlags().Lookup("installonly-limit"))
	_ = viper.BindPFlag("protected", cmd.PersistentFlags().Lookup("protected"))

	cmd.AddCommand(newQueryCommand())
	cmd.AddCommand(newRepoqueryCommand())
	cmd.AddCommand(newAdvisoryCommand())
	cmd.AddCommand(newInstallCommand())
	cmd.AddCommand(newEraseCommand())
	cmd.AddCommand(newUpgradeCommand())
	cmd.AddCommand(newUpgradeAllCommand())
	cmd.AddCommand(newDowngradeCommand())
	cmd.AddCommand(newDistSyncCommand())
	cmd.AddCommand(newDistSyncAllCommand())
	cmd.AddCommand(newReinstallCommand())
	cmd.AddCommand(newVerifyCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		return viper.ReadInConfig()
	}

	viper.SetConfigName("rpmsack")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/rpmsack")
	if err := viper.ReadInConfig(); err != nil {
		return nil // a missing optional config file is not an error
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// exitCodeForError maps a core.ErrorKind to a process exit code, the
// same style as the teacher's exitCodeForError but dispatching on the
// stable kind core.KindOf recovers rather than re-deriving a message
// prefix at this layer. An error that carries no core kind tag (for
// example one not built by core at all) exits with 1.
func exitCodeForError(err error) int {
	kind := core.KindOf(err)
	var builder *errbuilder.ErrBuilder
	if !errors.As(err, &builder) || !strings.HasPrefix(builder.Msg, string(kind)+":") {
		return 1
	}
	switch kind {
	case "BAD_QUERY", "BAD_SELECTOR", "INVALID_ARCHITECTURE", "FILE_INVALID":
		return 2
	case "PACKAGE_NOT_FOUND":
		return 3
	case "NO_SOLUTION":
		return 4
	case "REMOVAL_OF_PROTECTED_PKG":
		return 5
	case "INTERNAL_ERROR":
		return 6
	default:
		return 1
	}
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}

func resolveString(cmd *cobra.Command, value string, key, flagName string) string {
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key, flagName string) []string {
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveInt(cmd *cobra.Command, value int, key, flagName string) int {
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}
