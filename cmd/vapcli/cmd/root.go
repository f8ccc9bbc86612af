package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vapcli",
	Short: "Convert VoiceAttack .vap profiles between binary, XML, and JSON",
	Long: `vapcli converts VoiceAttack profile files between their representations.

decode reads a .vap file (compressed binary or XML form) and writes the
XML document plus a JSON export of the profile's commands.

encode reads a JSON manifest describing commands and writes a .vap file
the host application can import.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
