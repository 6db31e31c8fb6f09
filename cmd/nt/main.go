package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/seldre/nt/internal"
	pkgconfig "github.com/seldre/nt/pkg/config"
)

// loadConfig layers defaults, the optional config file, and the base
// directory flag. A config file named explicitly must exist; only the
// default location may be silently absent.
func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	path := cmd.String("config")
	if cmd.IsSet("config") {
		if err := pkgconfig.Load(path, cfg); err != nil {
			return nil, err
		}
	} else if _, err := pkgconfig.LoadIfPresent(path, cfg); err != nil {
		return nil, err
	}
	if dir := cmd.String("base-directory"); dir != "" {
		cfg.Notes.Dir = dir
	}
	return cfg, nil
}

// withApp builds the application for a subcommand action.
func withApp(fn func(context.Context, *internal.App, *cli.Command) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		app, err := internal.New(internal.WithConfig(cfg))
		if err != nil {
			return err
		}
		return fn(ctx, app, cmd)
	}
}

func showUsage(_ context.Context, cmd *cli.Command) error {
	return cli.ShowAppHelp(cmd)
}

func usageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return fmt.Errorf("error in command line arguments: %w", err)
}

// newRootCommand assembles the nt command tree. Commands carry parse state
// after a run, so every invocation gets a fresh tree.
func newRootCommand() *cli.Command {
	root := &cli.Command{
		Name:  "nt",
		Usage: "Manage notes in a flat base directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "base-directory",
				Aliases: []string{"b"},
				Usage:   "Directory the notes live in",
				Sources: cli.EnvVars("NT_BASE_DIRECTORY"),
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "~/.config/nt/config.yaml",
				Value:       internal.DefaultConfigPath(),
				Sources:     cli.EnvVars("NT_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "usage",
				Usage:  "Show this help",
				Action: showUsage,
			},
			{
				Name:  "init",
				Usage: "Create the base directory",
				Action: withApp(func(ctx context.Context, app *internal.App, _ *cli.Command) error {
					return app.Init(ctx)
				}),
			},
			{
				Name:  "list",
				Usage: "List notes, or browse them when the chooser is enabled",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "watch",
						Aliases: []string{"w"},
						Usage:   "Keep printing the listing as the directory changes",
					},
				},
				Action: withApp(func(ctx context.Context, app *internal.App, cmd *cli.Command) error {
					return app.List(ctx, cmd.Bool("watch"))
				}),
			},
			{
				Name:      "view",
				Usage:     "Render a note",
				ArgsUsage: "<name>",
				Action: withApp(func(ctx context.Context, app *internal.App, cmd *cli.Command) error {
					return app.View(ctx, cmd.Args().First())
				}),
			},
			{
				Name:      "add",
				Usage:     "Create an empty note",
				ArgsUsage: "<name>",
				Action: withApp(func(ctx context.Context, app *internal.App, cmd *cli.Command) error {
					return app.Add(ctx, cmd.Args().First())
				}),
			},
			{
				Name:      "edit",
				Usage:     "Open a note in $EDITOR",
				ArgsUsage: "<name>",
				Action: withApp(func(ctx context.Context, app *internal.App, cmd *cli.Command) error {
					return app.Edit(ctx, cmd.Args().First())
				}),
			},
			{
				Name:      "delete",
				Usage:     "Delete a note",
				ArgsUsage: "<name>",
				Action: withApp(func(ctx context.Context, app *internal.App, cmd *cli.Command) error {
					return app.Delete(ctx, cmd.Args().First())
				}),
			},
		},
		// Bare `nt` and unrecognized commands both fall back to usage.
		Action: showUsage,
		CommandNotFound: func(_ context.Context, cmd *cli.Command, _ string) {
			_ = cli.ShowAppHelp(cmd)
		},
		OnUsageError: usageError,
	}
	// Flag errors on subcommands must carry the same message.
	for _, sub := range root.Commands {
		sub.OnUsageError = usageError
	}
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "nt:", err)
		os.Exit(1)
	}
}
