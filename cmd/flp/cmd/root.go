package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SpendLessDaw/flp/pkg/config"
)

var cfg = config.DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flp",
	Short: "flp - inspect and edit FL Studio project files",
	Long: `flp parses FL Studio .flp project files, dumps their event stream,
reads and rewrites project metadata, and keeps a local catalog of
project summaries. Unchanged files always rewrite byte-for-byte.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = config.DefaultPath()
		}
		if loaded, err := config.LoadConfig(path); err == nil {
			cfg = loaded
		}
		if level, err := log.ParseLevel(cfg.Logging.Level); err == nil {
			log.SetLevel(level)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default ~/.flp/config.yaml)")
}
