package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/monzo/terrors"
	"github.com/urfave/cli/v3"

	"github.com/monzo/esendpoints"
)

func newApp(registry *esendpoints.Registry) *cli.Command {
	return &cli.Command{
		Name:    "esendpoints",
		Version: Version,
		Usage:   "Inspect the Elasticsearch endpoint table used to annotate spans",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List known endpoints",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "search",
						Aliases: []string{"s"},
						Usage:   "Only list search endpoints",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return listEndpoints(cmd.Root().Writer, registry, cmd.Bool("search"))
				},
			},
			{
				Name:      "routes",
				Usage:     "Show an endpoint's route templates and the patterns they compile to",
				ArgsUsage: "<endpoint>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return terrors.BadRequest("missing_argument", "Exactly one endpoint name is required", nil)
					}
					return showRoutes(cmd.Root().Writer, registry, cmd.Args().Get(0))
				},
			},
			{
				Name:      "match",
				Usage:     "Show the path part attributes a request path would be annotated with",
				ArgsUsage: "<endpoint> <path>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 2 {
						return terrors.BadRequest("missing_argument", "An endpoint name and a path are required", nil)
					}
					return matchPath(cmd.Root().Writer, registry, cmd.Args().Get(0), cmd.Args().Get(1))
				},
			},
		},
	}
}

func listEndpoints(w io.Writer, registry *esendpoints.Registry, searchOnly bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tROUTES\tSEARCH")
	for _, d := range registry.AllEndpoints() {
		if searchOnly && !d.IsSearchEndpoint() {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%t\n", d.Name(), len(d.Routes()), d.IsSearchEndpoint())
	}
	return tw.Flush()
}

func showRoutes(w io.Writer, registry *esendpoints.Registry, name string) error {
	d, err := registry.Get(name)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TEMPLATE\tPATTERN")
	for _, r := range d.Routes() {
		fmt.Fprintf(tw, "%s\t%s\n", r.Template(), r.Pattern())
	}
	return tw.Flush()
}

func matchPath(w io.Writer, registry *esendpoints.Registry, name, path string) error {
	d, err := registry.Get(name)
	if err != nil {
		return err
	}
	matched := d.AddPathPartAttributes(path, esendpoints.AttributeSinkFunc(func(key, value string) {
		fmt.Fprintf(w, "%s=%s\n", key, value)
	}))
	if !matched {
		fmt.Fprintf(w, "No route of %s matches %s\n", name, path)
	}
	return nil
}
