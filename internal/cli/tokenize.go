package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dxfrontiers/mdtoken"
	"github.com/dxfrontiers/mdtoken/internal/config"
	"github.com/dxfrontiers/mdtoken/internal/logging"
)

func newTokenizeCommand(configPath, color *string) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Print the canonical token stream for a Markdown document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenize(cmd, args, *configPath, *color, plain)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "disable color even if a terminal is attached")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string, configPath, color string, plain bool) error {
	logger := logging.Default()

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
	logger.Debug("tokenized", "count", len(tokens))

	mode := color
	if plain {
		mode = "never"
	}
	styles := newTokenStyles(mode)
	out := cmd.OutOrStdout()
	for _, t := range tokens {
		fmt.Fprintln(out, styleToken(styles, t))
	}
	return nil
}

func styleToken(styles tokenStyles, t mdtoken.Token) string {
	s := t.String()
	switch tokenCategory(t.Kind) {
	case categoryContainer:
		return styles.container.Render(s)
	case categoryLeaf:
		return styles.leaf.Render(s)
	default:
		return styles.inline.Render(s)
	}
}

type category int

const (
	categoryContainer category = iota
	categoryLeaf
	categoryInline
)

func tokenCategory(k mdtoken.Kind) category {
	switch k.Start() {
	case mdtoken.BlockQuoteKind, mdtoken.UnorderedListStartKind, mdtoken.OrderedListStartKind, mdtoken.NewListItemKind:
		return categoryContainer
	case mdtoken.BlankLineKind, mdtoken.ParagraphKind, mdtoken.ATXHeadingKind, mdtoken.SetextHeadingKind,
		mdtoken.IndentedCodeBlockKind, mdtoken.FencedCodeBlockKind, mdtoken.HTMLBlockKind,
		mdtoken.ThematicBreakKind, mdtoken.LinkReferenceDefinitionKind:
		return categoryLeaf
	default:
		return categoryInline
	}
}

func readSource(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %q: %w", args[0], err)
	}
	return string(data), nil
}
