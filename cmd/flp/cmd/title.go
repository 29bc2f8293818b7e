package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SpendLessDaw/flp/pkg/project"
)

// titleCmd represents the title command
var titleCmd = &cobra.Command{
	Use:   "title <file.flp> [new-title]",
	Short: "Read or rewrite the project title",
	Long: `With one argument, print the project title. With two, rewrite the
title event and save the file in place; every other byte of the file
is preserved exactly.

Examples:
  flp title song.flp
  flp title song.flp "Final Mix v3"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		p, err := project.Parse(data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		if len(args) == 1 {
			title, err := p.Title()
			if err != nil {
				return err
			}
			fmt.Println(title)
			return nil
		}

		if err := p.SetTitle(args[1]); err != nil {
			return err
		}
		return os.WriteFile(args[0], p.Serialize(), 0644)
	},
}

func init() {
	rootCmd.AddCommand(titleCmd)
}
