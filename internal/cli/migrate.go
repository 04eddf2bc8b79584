package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"go-pescados/internal/config"
	"go-pescados/internal/migration"
	"go-pescados/pkg/database"
)

type migrateCmd struct {
	from string
	to   string
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "copy the SQLite ledger into PostgreSQL" }
func (*migrateCmd) Usage() string {
	return `pescados migrate [-from <sqlite file>] [-to <postgres url>]

  Copies every product and transaction, ids included, from the SQLite file
  into an empty PostgreSQL database. The target defaults to DATABASE_URL.
`
}

func (c *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "SQLite file to read (defaults to SQLITE_PATH)")
	f.StringVar(&c.to, "to", "", "PostgreSQL URL to write (defaults to DATABASE_URL)")
}

func (c *migrateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := config.Load().Database
	from := c.from
	if from == "" {
		from = cfg.SQLitePath
	}
	to := database.NormalizeDSN(c.to)
	if to == "" {
		to = database.NormalizeDSN(cfg.URL)
	}
	if to == "" {
		fmt.Fprintln(os.Stderr, "Error: no target, set DATABASE_URL or pass -to")
		return subcommands.ExitUsageError
	}
	if _, err := os.Stat(from); err != nil {
		fmt.Fprintf(os.Stderr, "Error: source %s: %v\n", from, err)
		return subcommands.ExitUsageError
	}

	source, err := database.Connect(database.NewSQLite(from), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer source.Close()

	target, err := database.Connect(database.NewPostgres(to), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer target.Close()

	report, err := migration.New(source, target).Run(ctx)
	if errors.Is(err, migration.ErrDuplicateImport) {
		fmt.Fprintln(os.Stderr, "Target already has data, migration skipped.")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Migrated %d products and %d transactions (run %s)\n", report.Products, report.Transactions, report.RunID)
	return subcommands.ExitSuccess
}
