// Command seed fills the database with demo customers and accounts.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/josh-kwaku/bank-service/internal/config"
	"github.com/josh-kwaku/bank-service/internal/logging"
	"github.com/josh-kwaku/bank-service/internal/repository"
	"github.com/josh-kwaku/bank-service/internal/seed"
)

func main() {
	names := flag.String("customers", strings.Join(seed.DefaultCustomers, ","), "comma-separated customer names")
	perCustomer := flag.Int("accounts", 9, "accounts to create for every stored customer")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("bank-seed", cfg.LogLevel, cfg.AppEnv)
	ctx := context.Background()

	db, err := repository.NewPostgresDB(ctx, cfg.DatabaseURL, cfg.Pool())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	res, err := seed.Run(ctx,
		repository.NewCustomerRepository(db),
		repository.NewBankAccountRepository(db),
		seed.Options{
			Customers:           splitNames(*names),
			AccountsPerCustomer: *perCustomer,
		},
	)
	if err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
	slog.Info("seed finished", "customers", res.Customers, "accounts", res.Accounts)
}

func splitNames(s string) []string {
	names := []string{}
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
