package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	dbcmd "github.com/jwickham/text-sanitizer/internal/db"
	runcmd "github.com/jwickham/text-sanitizer/internal/run"
	"github.com/jwickham/text-sanitizer/pkg/db"
)

func main() {
	app := &cli.App{
		Name:  "tsan",
		Usage: "Sanitize text and report letter frequencies",
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Sanitize a text source and write the counted output",
				Action: runcmd.RunAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path to a YAML config file; flags override its values",
					},
					&cli.StringFlag{
						Name:  "source",
						Value: "file",
						Usage: "Source kind: file, db, or html",
					},
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "Input path (file source) or URL/path (html source)",
					},
					&cli.StringFlag{
						Name:  "query",
						Usage: "SQL query producing the input text (db source)",
					},
					&cli.StringFlag{
						Name:  "source-db",
						Usage: "SQLite database to query (db source)",
					},
					&cli.StringFlag{
						Name:    "target",
						Aliases: []string{"o"},
						Value:   "results/output.txt",
						Usage:   "Output path for the sanitized text and count table",
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Value:   0,
						Usage:   "Worker count (0 = one per CPU)",
					},
					&cli.IntFlag{
						Name:  "chunk-size",
						Value: 0,
						Usage: "Segment size cap in bytes (0 = split evenly across workers)",
					},
					&cli.StringFlag{
						Name:  "timeout",
						Usage: "Overall deadline for the run, e.g. 30s",
					},
					&cli.BoolFlag{
						Name:  "detect-language",
						Usage: "Guess the input language and warn on non-Latin scripts",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Also write a run summary: yaml",
					},
					&cli.StringFlag{
						Name:  "history-db",
						Usage: "Run-history database path (default: " + db.DefaultDBName + " next to the binary)",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "Only log errors",
					},
				},
			},
			{
				Name:  "db",
				Usage: "Inspect recorded runs",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "db",
						Usage: "Run-history database path (default: " + db.DefaultDBName + " next to the binary)",
					},
				},
				Subcommands: []*cli.Command{
					{
						Name:   "runs",
						Usage:  "List recorded runs, newest first",
						Action: dbcmd.RunsAction,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "db",
								Usage: "Run-history database path",
							},
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "Maximum runs to list (0 = all)",
							},
						},
					},
					{
						Name:      "run",
						Usage:     "Show details for a run (latest when no ID given)",
						ArgsUsage: "[run_id]",
						Action:    dbcmd.RunAction,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "db",
								Usage: "Run-history database path",
							},
						},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
