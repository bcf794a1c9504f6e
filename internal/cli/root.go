// Package cli provides the Cobra command structure for mdtoken.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/dxfrontiers/mdtoken/internal/logging"
)

// NewRootCommand creates the root mdtoken command with its subcommands.
func NewRootCommand() *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdtoken",
		Short: "Tokenize and render CommonMark/GFM Markdown",
		Long: `mdtoken converts Markdown source into a flat, position-annotated
token stream and can render that stream back to HTML.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to .mdtoken.yaml")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto", "colorize output: auto, always, never")

	rootCmd.AddCommand(newTokenizeCommand(&configPath, &color))
	rootCmd.AddCommand(newRenderCommand(&configPath))

	return rootCmd
}
