package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dxfrontiers/mdtoken"
	"github.com/dxfrontiers/mdtoken/internal/config"
)

func newRenderCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Tokenize a Markdown document and render it to HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, *configPath)
		},
	}
}

func runRender(cmd *cobra.Command, args []string, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	source, err := readSource(args)
	if err != nil {
		return err
	}

	tz, err := mdtoken.NewTokenizer(mdtoken.Options{EntityTablePath: cfg.EntityTablePath})
	if err != nil {
		return err
	}

	tokens, err := tz.Transform(source)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), mdtoken.RenderHTML(tokens))
	return nil
}
