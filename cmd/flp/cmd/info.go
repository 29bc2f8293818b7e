package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SpendLessDaw/flp/pkg/project"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file.flp>",
	Short: "Show project metadata",
	Long: `Show header fields and metadata for a project file.

Example:
  flp info song.flp`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		p, err := project.Parse(data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		title, err := p.Title()
		if err != nil {
			return err
		}

		fmt.Printf("Format:    %d\n", p.Format())
		fmt.Printf("Channels:  %d\n", p.ChannelCount())
		fmt.Printf("PPQ:       %d\n", p.PPQ())
		fmt.Printf("Version:   %s\n", p.Version())
		fmt.Printf("Unicode:   %v\n", p.UseUnicode())
		fmt.Printf("Title:     %s\n", title)
		fmt.Printf("Events:    %d\n", len(p.File().Events))
		if tempo, err := p.Tempo(); err == nil {
			fmt.Printf("Tempo:     %.3f\n", tempo)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
