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

var decodeCmd = &cobra.Command{
	Use:   "decode <input.vap>",
	Short: "Decode a .vap file to XML and a JSON export",
	Long: `Decode reads a VoiceAttack profile in either file form (compressed
binary or XML), and writes <base>.xml and <base>.json next to it. The
output base defaults to the input path without its extension; --stdout
prints the XML instead of writing files.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		data, err := os.ReadFile(input)
		if err != nil {
			return err
		}

		p, diags, err := vap.Decode(data)
		if err != nil {
			return fmt.Errorf("decode %s: %w", input, err)
		}

		for _, d := range diags {
			fmt.Fprintf(cmd.ErrOrStderr(), "diagnostic: %s\n", d)
		}

		xmlOut, err := vap.RenderXML(p)
		if err != nil {
			return err
		}

		if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
			fmt.Fprint(cmd.OutOrStdout(), string(xmlOut))
			return nil
		}

		base, _ := cmd.Flags().GetString("output")
		if base == "" {
			base = strings.TrimSuffix(input, filepath.Ext(input))
		}

		jsonOut, err := manifest.NewExport(p).MarshalIndent()
		if err != nil {
			return err
		}

		if err := os.WriteFile(base+".xml", xmlOut, 0o644); err != nil {
			return err
		}

		if err := os.WriteFile(base+".json", jsonOut, 0o644); err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Decoded %d commands (fingerprint %016x)\n",
			len(p.Commands), p.Fingerprint())
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s.xml and %s.json\n", base, base)

		return nil
	},
}

func init() {
	decodeCmd.Flags().StringP("output", "o", "", "output base path (default: input path without extension)")
	decodeCmd.Flags().Bool("stdout", false, "print the XML to stdout instead of writing files")
	rootCmd.AddCommand(decodeCmd)
}
