// submodule cmd contains command definitions
package main

import (
	"time"

	"github.com/urfave/cli/v3"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   defaultConfigPath,
	}
}

// setupCommand handles config and database initialization
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and database",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Create config if missing and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
			{
				Name:  "status",
				Usage: "Show applied and pending migrations",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.MigrationStatus,
			},
			{
				Name:  "storage",
				Usage: "List stored keys with their size and timestamps",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.StorageStatus,
			},
			{
				Name:  "reset",
				Usage: "Delete the stored website list so the next run reseeds it",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "yes",
						Usage: "Confirm deleting every stored website",
					},
				},
				Action: r.ResetStorage,
			},
			{
				Name:   "rollback",
				Usage:  "Roll back the most recently applied migration",
				Flags:  []cli.Flag{configFlag()},
				Action: r.RollbackDatabase,
			},
		},
	}
}

// sitesCommand handles listing, adding and exporting participant websites
func sitesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "sites",
		Aliases: []string{"site", "s"},
		Usage:   "Participant website operations",
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List participants, top three first",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
					&cli.StringFlag{
						Name:  "section",
						Usage: "Section to show: top, others or all",
						Value: "all",
					},
				},
				Action: r.SitesList,
			},
			{
				Name:  "add",
				Usage: "Add a participant website",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Website name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "url",
						Usage:    "Absolute http(s) URL of the website",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "description",
						Usage: "Short description",
					},
					&cli.StringFlag{
						Name:  "author",
						Usage: "Author or team name",
					},
					&cli.StringFlag{
						Name:  "preview",
						Usage: "Demo preview URL",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output the created entry as JSON",
					},
				},
				Action: r.SitesAdd,
			},
			{
				Name:  "export",
				Usage: "Export the listing as text, markdown or JSON",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: text, markdown or json",
						Value:   "text",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (\"-\" writes to stdout)",
					},
				},
				Action: r.SitesExport,
			},
			{
				Name:  "check",
				Usage: "Probe every participant URL and report reachability",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent requests",
						Value: 4,
					},
					&cli.FloatFlag{
						Name:  "rate",
						Usage: "Requests per second",
						Value: 5,
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "Per-request timeout",
						Value: 10 * time.Second,
					},
					&cli.BoolFlag{
						Name:  "previews",
						Usage: "Also check demo preview URLs",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.SitesCheck,
			},
		},
	}
}

// serveCommand runs the web front end
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the listing and admin pages over HTTP",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to bind (overrides server.host)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to bind (overrides server.port)",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the listing in the default browser",
			},
		},
		Action: r.Serve,
	}
}

// tuiCommand returns the top-level TUI command for the interactive listing and admin form.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive showcase",
		Flags:   []cli.Flag{configFlag()},
		Action:  r.TUI,
	}
}
