package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"hermannm.dev/devlog"
)

var (
	debug    bool
	logLevel slog.LevelVar
)

var rootCmd = &cobra.Command{
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Use:   "cryptoprim",
	Short: "AES-CTR encryption and SHA-2 hashing from the command line",
	Long: `cryptoprim exposes this module's AES-128/192/256-CTR cipher and
SHA-224/256/384/512 digests as a set of subcommands, plus passphrase-based
key derivation (PBKDF2, Argon2id) for turning a password into an AES key.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Subcommands share flag names; bind the viper keys to the flags of
		// the command actually running.
		viper.BindPFlags(cmd.Flags())

		debug = viper.GetBool("debug")
		if debug {
			logLevel.Set(slog.LevelDebug)
		}
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stdout, &devlog.Options{
		Level: &logLevel,
	})))

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	viper.BindPFlags(rootCmd.PersistentFlags())

	viper.SetEnvPrefix("CRYPTOPRIM")
	viper.AutomaticEnv()
}

// operationLogger returns a slog.Logger tagged with a fresh operation ID,
// so concurrent invocations (or log aggregation across runs) can be told
// apart.
func operationLogger(op string) *slog.Logger {
	return slog.Default().With("op", op, "op_id", uuid.NewString())
}
