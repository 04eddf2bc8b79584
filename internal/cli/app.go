// Package cli implements the pescados command line tool.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"go-pescados/internal/config"
	"go-pescados/internal/repository"
	"go-pescados/pkg/database"
)

// Commands lists every subcommand of the tool.
var Commands = []subcommands.Command{
	&initCmd{},
	&demoCmd{},
	&summaryCmd{},
	&migrateCmd{},
}

// openStore connects to the configured backend and makes sure the tables exist.
func openStore(ctx context.Context, cfg database.Config) (*database.Store, error) {
	store, err := database.ConnectDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := repository.EnsureSchema(ctx, store.Gorm()); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

func loadStore(ctx context.Context) (*database.Store, bool) {
	store, err := openStore(ctx, config.Load().Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, false
	}
	return store, true
}

func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
