package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/rvdecode/cmd/tools"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// Returned by commands that ran to completion but found words that could not be decoded
var errDecodingFailed = errors.New("some words could not be decoded")

const (
	exitCodeError          = 1
	exitCodeDecodingFailed = 2
)

// Logger configured from the persistent flags, available once a command starts running
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

var logFile io.Closer

// rootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "rvdecode",
	Short: "RV64IMC instruction decoder",
	Long: `rvdecode decodes RISC-V RV64 instructions (base integer, M, Zicsr and C extensions)
into structured records, the way a simulator front end sees them.

Words can be decoded one by one, compressed halfwords expanded to their standard
equivalent, and whole ELF executables disassembled.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, closer, err := newLogger(viper.GetString("log-level"), viper.GetString("log-file"))
		if err != nil {
			return err
		}

		Logger = logger
		logFile = closer
		slog.SetDefault(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()

	switch {
	case err == nil:
		return
	case errors.Is(err, errDecodingFailed):
		os.Exit(exitCodeDecodingFailed)
	default:
		os.Exit(exitCodeError)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rvdecode.yaml)")
	flags.StringP("output", "o", "text", "Output format: text, yaml or json")
	flags.String("color", "auto", "Colored output: auto, always or never")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.String("log-file", "", "Also write JSON logs to this file")
	flags.String("strategy", "expand", "Compressed instruction decoding: expand (expand then decode) or quadrant (direct quadrant decoder)")

	for _, name := range []string{"output", "color", "log-level", "log-file", "strategy"} {
		cobra.CheckErr(viper.BindPFlag(name, flags.Lookup(name)))
	}

	RootCmd.AddCommand(tools.ToolsCmd, decodeCmd, expandCmd, disasmCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".rvdecode" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rvdecode")
	}

	// RVDECODE_LOG_LEVEL overrides log-level and so on
	viper.SetEnvPrefix("RVDECODE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
