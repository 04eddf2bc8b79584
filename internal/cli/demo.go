package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"go-pescados/internal/repository"
	"go-pescados/internal/service"
)

type demoCmd struct {
	days int
	seed uint64
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "fill an empty ledger with fictitious transactions" }
func (*demoCmd) Usage() string {
	return `pescados demo [-days n] [-seed s]

  Generates 1 to 4 random purchases or sales per day over the last n days.
  Refuses to run when the ledger already has transactions.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 60, "number of past days to cover")
	f.Uint64Var(&c.seed, "seed", uint64(time.Now().UnixNano()), "random seed")
}

func (c *demoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.days < 0 {
		fmt.Fprintln(os.Stderr, "Error: -days must not be negative")
		return subcommands.ExitUsageError
	}
	store, ok := loadStore(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	defer store.Close()

	gen := service.NewDemoGenerator(
		repository.NewProductRepo(store.Gorm()),
		repository.NewTransactionRepo(store.Gorm()),
		c.seed,
	)
	n, err := gen.Generate(ctx, c.days)
	if errors.Is(err, service.ErrLedgerNotEmpty) {
		fmt.Fprintln(os.Stderr, "Ledger already has transactions, nothing generated.")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%d transactions generated\n", n)
	return subcommands.ExitSuccess
}
