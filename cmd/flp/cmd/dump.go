package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SpendLessDaw/flp/pkg/flp"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <file.flp>",
	Short: "Dump the event stream",
	Long: `Dump every event of a project file, one per line: index, id, name,
kind, payload size and a hex preview of the payload.

Example:
  flp dump song.flp`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		f, err := flp.Parse(data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		for i, ev := range f.Events {
			fmt.Println(formatEvent(i, ev, cfg.Dump.MaxPreviewBytes, cfg.Dump.ShowNames))
		}
		return nil
	},
}

func formatEvent(index int, ev flp.Event, maxPreview int, showNames bool) string {
	name := ""
	if showNames {
		name = " " + flp.EventName(ev.ID)
	}
	return fmt.Sprintf("%5d  id=%3d%s (%s, %d bytes) %s",
		index, ev.ID, name, ev.Kind, len(ev.Payload), previewHex(ev.Payload, maxPreview))
}

func previewHex(payload []byte, max int) string {
	if max <= 0 || len(payload) == 0 {
		return ""
	}
	n := len(payload)
	truncated := false
	if n > max {
		n, truncated = max, true
	}
	s := fmt.Sprintf("% X", payload[:n])
	if truncated {
		s += " …"
	}
	return s
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
