// Command mdtoken tokenizes and renders CommonMark/GFM Markdown.
package main

import (
	"os"

	"github.com/dxfrontiers/mdtoken/internal/cli"
	"github.com/dxfrontiers/mdtoken/internal/logging"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		logging.Default().Error(err.Error())
		os.Exit(1)
	}
}
