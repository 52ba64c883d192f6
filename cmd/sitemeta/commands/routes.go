package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/DavideDaniel/research/internal/build"
)

// RoutesCmd implements the 'routes' command.
type RoutesCmd struct {
	JSON bool `name:"json" help:"Print routes as JSON"`
}

func (r *RoutesCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	report, err := build.NewService().Run(ctx, cfg, build.Options{DryRun: true})
	if err != nil {
		return err
	}

	if r.JSON {
		enc := json.NewEncoder(g.out())
		enc.SetIndent("", "  ")
		return enc.Encode(report.Routes)
	}
	tw := tabwriter.NewWriter(g.out(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "URL\tPRIORITY\tCHANGEFREQ")
	for _, route := range report.Routes {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", route.URL, strconv.FormatFloat(route.Priority, 'f', 1, 64), route.ChangeFrequency)
	}
	return tw.Flush()
}
