package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getcreddy/envgen/pkg/generate"
	"github.com/getcreddy/envgen/pkg/namegen"
	"github.com/getcreddy/envgen/pkg/secretgen"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "envgen",
	Short: "Generate a .env file from its template",
	Long: `envgen reads .env.template, replaces every ${GENERATE_USER} with a
random human-readable name and every ${GENERATE_PASSWORD} with a random
32-character alphanumeric secret, and writes the result to .env.

Any existing .env is replaced.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runGenerate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("envgen {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional)")
	rootCmd.Flags().String("template", generate.DefaultTemplatePath, "Template file to read")
	rootCmd.Flags().String("output", generate.DefaultOutputPath, "Env file to write")
	rootCmd.Flags().String("user-prefix", "", "Prefix for generated user names")
	rootCmd.Flags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")
}

func initConfig() {
	viper.BindPFlag("template", rootCmd.Flags().Lookup("template"))
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("user_prefix", rootCmd.Flags().Lookup("user-prefix"))
	viper.BindPFlag("log_level", rootCmd.Flags().Lookup("log-level"))

	// The log level is the only setting read from the environment
	viper.BindEnv("log_level", "ENVGEN_LOG_LEVEL", "LOG_LEVEL")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		cobra.CheckErr(viper.ReadInConfig())
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), viper.GetString("log_level"))

	prefix := viper.GetString("user_prefix")
	if err := namegen.ValidatePrefix(prefix); err != nil {
		return err
	}

	runner := &generate.Runner{
		Logger:       logger,
		TemplatePath: viper.GetString("template"),
		OutputPath:   viper.GetString("output"),
		Users:        namegen.New(nil, namegen.WithPrefix(prefix)),
		Passwords:    secretgen.New(nil),
	}
	return runner.Run()
}

// newLogger builds the stderr logger. Unknown levels fall back to info.
func newLogger(w io.Writer, level string) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "envgen",
		Level:  lvl,
		Output: w,
	})
}
