// Package cli implements zpersona's command-line subcommands.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/zarlcorp/zpersona/internal/config"
	"github.com/zarlcorp/zpersona/internal/export"
	"github.com/zarlcorp/zpersona/internal/persona"
	"github.com/zarlcorp/zpersona/internal/server"
	"github.com/zarlcorp/zpersona/internal/store"
	"golang.org/x/term"
)

func openStore(cfg config.Config) *store.Store {
	s, err := store.Open(cfg.DataDir)
	if err != nil {
		fatal(err)
	}
	return s
}

// CmdGenerate generates a persona and prints it.
// With --seed <value> the persona is reproducible; with --save it is stored.
func CmdGenerate(cfg config.Config, args []string) {
	asm := persona.NewAssembler(cfg.Locale)

	var p persona.Persona
	var err error
	if seed := flagValue(args, "--seed"); seed != "" {
		p, err = asm.FromSeedString(seed)
	} else {
		p, err = asm.Generate(nil, "")
	}
	if err != nil {
		fatal(err)
	}

	printPersona(p, flagValue(args, "--format"))

	if hasFlag(args, "--save") {
		s := openStore(cfg)
		if _, err := s.Save(p); err != nil {
			fatal(fmt.Errorf("save: %w", err))
		}
		fmt.Fprintf(os.Stderr, "saved %s\n", p.ID)
	}
}

// CmdSeed generates a persona from a seed string, like `generate --seed`
// but with the seed as a positional argument.
func CmdSeed(cfg config.Config, seed string, args []string) {
	asm := persona.NewAssembler(cfg.Locale)
	p, err := asm.FromSeedString(seed)
	if err != nil {
		fatal(err)
	}

	printPersona(p, flagValue(args, "--format"))

	if hasFlag(args, "--save") {
		s := openStore(cfg)
		if _, err := s.Save(p); err != nil {
			fatal(fmt.Errorf("save: %w", err))
		}
		fmt.Fprintf(os.Stderr, "saved %s\n", p.ID)
	}
}

// CmdList lists all saved personas, newest first.
func CmdList(cfg config.Config, args []string) {
	s := openStore(cfg)
	list := s.List()

	if len(list) == 0 {
		fmt.Println("no saved personas")
		return
	}

	if hasFlag(args, "--json") {
		printJSON(list)
		return
	}

	for _, sum := range list {
		seed := "-"
		if sum.SeedString != "" {
			seed = sum.SeedString
		}
		fmt.Printf("  %-36s %-24s %-30s %-12s %s\n",
			sum.ID,
			sum.Name,
			sum.Email,
			seed,
			sum.CreatedAt.Format("2006-01-02"),
		)
	}
}

// CmdShow prints a saved persona in the requested format.
func CmdShow(cfg config.Config, id string, args []string) {
	s := openStore(cfg)
	p, err := s.Load(id)
	if err != nil {
		fatal(err)
	}

	format := flagValue(args, "--format")
	if format == "" || format == "table" {
		fmt.Print(export.Table(p))
		return
	}

	out, err := export.Render(p, format)
	if err != nil {
		fatal(err)
	}
	fmt.Println(out)
}

// CmdRegenerate rebuilds a saved persona from its stored seed and
// persists the result.
func CmdRegenerate(cfg config.Config, id string) {
	s := openStore(cfg)
	asm := persona.NewAssembler(cfg.Locale)

	p, err := s.Regenerate(id, asm)
	if err != nil {
		if errors.Is(err, persona.ErrNotReproducible) {
			fatal(fmt.Errorf("%s has no seed and cannot be regenerated", id))
		}
		fatal(err)
	}

	fmt.Print(export.Table(p))
	fmt.Fprintf(os.Stderr, "regenerated %s\n", p.ID)
}

// CmdDelete removes a saved persona. Without --yes it asks for
// confirmation when stdin is a terminal.
func CmdDelete(cfg config.Config, id string, args []string) {
	if !hasFlag(args, "--yes") && term.IsTerminal(int(syscall.Stdin)) {
		fmt.Fprintf(os.Stderr, "delete %s? [y/N] ", id)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			fmt.Fprintln(os.Stderr, "aborted")
			return
		}
	}

	s := openStore(cfg)
	existed, err := s.Delete(id)
	if err != nil {
		fatal(fmt.Errorf("delete: %w", err))
	}
	if !existed {
		fatal(fmt.Errorf("no persona with id %s", id))
	}
	fmt.Printf("deleted %s\n", id)
}

// CmdServe starts the HTTP API server and blocks until ctx is done.
func CmdServe(ctx context.Context, cfg config.Config, args []string) {
	addr := cfg.Addr
	if a := flagValue(args, "--addr"); a != "" {
		addr = a
	}

	s := openStore(cfg)
	srv := server.New(persona.NewAssembler(cfg.Locale), s)
	if err := srv.Start(ctx, addr); err != nil {
		fatal(err)
	}
}

func printPersona(p persona.Persona, format string) {
	switch format {
	case "", "table":
		fmt.Print(export.Table(p))
	default:
		out, err := export.Render(p, format)
		if err != nil {
			fatal(err)
		}
		fmt.Println(out)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatal(fmt.Errorf("encode json: %w", err))
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "zpersona: %v\n", err)
	os.Exit(1)
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}

// flagValue returns the argument following flag, or "" when the flag is
// absent or has no value.
func flagValue(args []string, flag string) string {
	for i, a := range args {
		if strings.EqualFold(a, flag) && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
