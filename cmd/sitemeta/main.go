package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/DavideDaniel/research/cmd/sitemeta/commands"
	"github.com/DavideDaniel/research/internal/foundation/errors"
	"github.com/DavideDaniel/research/internal/version"
)

func main() {
	cli := &commands.CLI{}
	global := &commands.Global{Out: os.Stdout, Err: os.Stderr}

	parser := kong.Must(cli,
		kong.Name("sitemeta"),
		kong.Description("Generate canonical URLs, head metadata and the sitemap for the research site."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := kctx.Run(global, cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
