package migrate

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/fireproject/scylla-migrate/internal/config"
	"github.com/fireproject/scylla-migrate/internal/pgsource"
	"github.com/fireproject/scylla-migrate/internal/progress"
	"github.com/fireproject/scylla-migrate/internal/scylladest"
)

// Command builds the "migrate" subcommand, assembled into the root command
// in cmd/scylla-migrate/main.go.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "copy posts, reactions, poll votes, and notifications to the destination cluster, then drop the source tables",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Usage:    "path to the YAML configuration file",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "threads",
				Usage: "bounded worker-pool size per entity stream",
				Value: 1,
			},
			&cli.StringFlag{
				Name:  "note-since",
				Usage: "resume: only copy posts with id greater than this",
			},
			&cli.IntFlag{
				Name:  "note-skip",
				Usage: "resume: skip this many posts after --note-since before writing",
			},
			&cli.BoolFlag{
				Name:  "no-confirm",
				Usage: "skip the interactive confirmation prompt",
			},
			&cli.BoolFlag{
				Name:  "no-progress",
				Usage: "disable terminal progress bars",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	opts := Options{
		Threads:   int(cmd.Int("threads")),
		NoteSince: cmd.String("note-since"),
		NoteSkip:  int(cmd.Int("note-skip")),
		NoConfirm: cmd.Bool("no-confirm"),
	}

	pg, err := pgsource.Open(cfg.DB, opts.threads())
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer pg.Close()

	reader, err := pgsource.NewReader(ctx, pg)
	if err != nil {
		return fmt.Errorf("prepare source statements: %w", err)
	}
	defer reader.Close()

	session, err := scylladest.Dial(cfg.Scylla)
	if err != nil {
		return fmt.Errorf("dial destination: %w", err)
	}
	dest := scylladest.New(session)
	defer dest.Close()

	var sink progress.Sink = progress.NewTerminal()
	if cmd.Bool("no-progress") {
		sink = progress.Null{}
	}

	m := New(pg, reader, dest, sink, opts)
	return m.Run(ctx)
}
