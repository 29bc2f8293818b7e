package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SpendLessDaw/flp/pkg/catalog"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Maintain a local index of project metadata",
}

var catalogScanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Index every .flp file under a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Open(cfg.CatalogDir)
		if err != nil {
			return err
		}
		defer c.Close()

		indexed, err := c.Scan(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Indexed %d projects\n", indexed)
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Open(cfg.CatalogDir)
		if err != nil {
			return err
		}
		defer c.Close()

		entries, err := c.List()
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s  v%-10s  %4d events  %s\n", e.ID, e.Version, e.EventCount, e.Path)
		}
		return nil
	},
}

var catalogGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Show the catalog entry for a project path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Open(cfg.CatalogDir)
		if err != nil {
			return err
		}
		defer c.Close()

		e, err := c.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("ID:        %s\n", e.ID)
		fmt.Printf("Path:      %s\n", e.Path)
		fmt.Printf("Title:     %s\n", e.Title)
		fmt.Printf("Version:   %s\n", e.Version)
		fmt.Printf("Format:    %d\n", e.Format)
		fmt.Printf("Channels:  %d\n", e.ChannelCount)
		fmt.Printf("PPQ:       %d\n", e.PPQ)
		fmt.Printf("Events:    %d\n", e.EventCount)
		fmt.Printf("Size:      %d bytes\n", e.FileSize)
		fmt.Printf("Indexed:   %s\n", e.IndexedAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogScanCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogGetCmd)
	rootCmd.AddCommand(catalogCmd)
}
