package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbsmedya/plandiff/internal/sniff"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show the detected format of an export file",
	Long: `Inspect analyzes a single export file and prints the format that
would be used to load it: encoding, delimiter, header presence, number of
leading rows skipped, and the matched export shape.

Example:
  plandiff inspect export.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, err := sniff.Analyze(args[0])
	if err != nil {
		return err
	}

	cmd.Printf("File: %s\n", args[0])
	cmd.Printf("  Encoding:   %s\n", format.Encoding)
	cmd.Printf("  Delimiter:  %q\n", format.Delimiter)
	cmd.Printf("  Has header: %t\n", format.HasHeader)
	cmd.Printf("  Skip rows:  %d\n", format.SkipRows)
	cmd.Printf("  Shape:      %s\n", format.Shape)
	return nil
}
