package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zpersona/internal/cli"
	"github.com/zarlcorp/zpersona/internal/config"
	"github.com/zarlcorp/zpersona/internal/persona"
	"github.com/zarlcorp/zpersona/internal/store"
	"github.com/zarlcorp/zpersona/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zpersona"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	cfg := *config.Load()

	if len(os.Args) > 1 {
		runCLI(ctx, cfg, os.Args[1])
		_ = app.Close()
		return
	}

	if err := runTUI(cfg); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(ctx context.Context, cfg config.Config, cmd string) {
	switch cmd {
	case "version":
		fmt.Printf("zpersona %s\n", version)
	case "generate":
		cli.CmdGenerate(cfg, os.Args[2:])
	case "seed":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: zpersona seed <string> [--save] [--format f]")
			os.Exit(1)
		}
		cli.CmdSeed(cfg, os.Args[2], os.Args[3:])
	case "list":
		cli.CmdList(cfg, os.Args[2:])
	case "show":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: zpersona show <id> [--format f]")
			os.Exit(1)
		}
		cli.CmdShow(cfg, os.Args[2], os.Args[3:])
	case "regenerate":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: zpersona regenerate <id>")
			os.Exit(1)
		}
		cli.CmdRegenerate(cfg, os.Args[2])
	case "delete":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: zpersona delete <id> [--yes]")
			os.Exit(1)
		}
		cli.CmdDelete(cfg, os.Args[2], os.Args[3:])
	case "serve":
		cli.CmdServe(ctx, cfg, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "zpersona: unknown command %q\n", cmd)
		os.Exit(1)
	}
}

func runTUI(cfg config.Config) error {
	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return err
	}

	asm := persona.NewAssembler(cfg.Locale)

	m := tui.New(version, asm, st)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
