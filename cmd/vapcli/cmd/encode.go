package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	vap "github.com/corinthian/voiceattack-vap-builder"
	"github.com/corinthian/voiceattack-vap-builder/manifest"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <input.json>",
	Short: "Build a .vap file from a JSON manifest",
	Long: `Encode reads a JSON manifest of commands and writes a .vap profile the
host application can import: the XML form by default, or the compressed
binary form with --binary. The output path defaults to the input path with
a .vap extension.

Commands that reference unknown key or mouse names are reported and
skipped; the remaining commands are still written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		data, err := os.ReadFile(input)
		if err != nil {
			return err
		}

		doc, err := manifest.Parse(data)
		if err != nil {
			return err
		}

		var opts []manifest.Option
		if det, _ := cmd.Flags().GetBool("deterministic"); det {
			opts = append(opts, manifest.WithDeterministicIDs())
		}

		p, issues := manifest.Build(doc, opts...)

		for _, issue := range issues {
			fmt.Fprintf(cmd.ErrOrStderr(), "WARNING: %s\n", issue)
		}

		if defined := definedCommands(doc); len(p.Commands) == 0 && defined > 0 {
			return fmt.Errorf("no command in %s could be built (%d defined)", input, defined)
		}

		var out []byte
		if binary, _ := cmd.Flags().GetBool("binary"); binary {
			out, err = vap.EncodeBinary(p)
		} else {
			out, err = vap.RenderXML(p)
		}
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = strings.TrimSuffix(input, filepath.Ext(input)) + ".vap"
		}

		if err := os.WriteFile(output, out, 0o644); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Generated: %s\n", output)
		fmt.Fprintf(cmd.OutOrStdout(), "Commands: %d (fingerprint %016x)\n",
			len(p.Commands), p.Fingerprint())
		if len(issues) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Warnings: %d\n", len(issues))
		}

		return nil
	},
}

// definedCommands counts the manifest entries that define a command, i.e.
// everything except section markers. Used to distinguish "empty manifest"
// from "every command failed".
func definedCommands(doc *manifest.Document) int {
	n := 0
	for i := range doc.Commands {
		if !doc.Commands[i].IsSection() {
			n++
		}
	}

	return n
}

func init() {
	encodeCmd.Flags().StringP("output", "o", "", "output path (default: input path with .vap extension)")
	encodeCmd.Flags().Bool("binary", false, "write the compressed binary form instead of XML")
	encodeCmd.Flags().Bool("deterministic", false, "derive identifiers from content for reproducible output")
	rootCmd.AddCommand(encodeCmd)
}
