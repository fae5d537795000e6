package cmd

import (
	"fmt"
	"os"

	"cdn-manager/core/faults"
	"cdn-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configDir    string
	outputFormat string
	jqQuery      string

	// Credential overrides shared by every command that talks to StrikeTracker.
	accountFlag   string
	tokenFlag     string
	loginUserFlag string
	loginPassFlag string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cdn-manager",
	Short: "StrikeTracker CDN configuration manager",
	Long: `cdn-manager converges Highwinds StrikeTracker resources to a desired state.
It reconciles origins idempotently, reads account inventory and keeps an
audit trail of every run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure. The failure is
// logged once, tagged with its category when it has one.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	// Console encoding at debug level prints ISO8601 timestamps.
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fields := []zap.Field{zap.Error(err)}
	if category, ok := faults.CategoryOf(err); ok {
		fields = append(fields, zap.String("category", string(category)))
	}
	l.Error("command failed", fields...)
	_ = l.Sync()
	os.Exit(1)
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&configDir, "config-dir", ".", "Directory holding config.yaml and .env")
	flags.StringVarP(&outputFormat, "output", "o", "json", "Output format (json, yaml)")
	flags.StringVar(&jqQuery, "jq", "", "jq expression applied to the output")

	flags.StringVar(&accountFlag, "account", "", "StrikeTracker account hash (overrides api.account)")
	flags.StringVar(&tokenFlag, "token", "", "StrikeTracker API token (overrides api.token)")
	flags.StringVar(&loginUserFlag, "login-user", "", "StrikeTracker login used to request a token")
	flags.StringVar(&loginPassFlag, "login-pass", "", "Password for --login-user")
}
