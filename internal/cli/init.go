package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"go-pescados/internal/repository"
)

type initCmd struct{}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the ledger tables and the starter catalog" }
func (*initCmd) Usage() string {
	return `pescados init

  Creates the products and transactions tables when missing and inserts the
  default catalog into an empty product table. Safe to run repeatedly.
`
}

func (*initCmd) SetFlags(*flag.FlagSet) {}

func (*initCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, ok := loadStore(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	defer store.Close()

	n, err := repository.NewProductRepo(store.Gorm()).SeedDefaults(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Ledger ready on %s, %d products added\n", store.Backend(), n)
	return subcommands.ExitSuccess
}
