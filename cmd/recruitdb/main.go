// Command recruitdb operates the recruitment agency data store.
//
// Configuration comes from a YAML file ($RECRUITDB_CONFIG or
// ./recruitdb.yaml), RECRUITDB_* environment variables and an optional
// .env file in the working directory.
//
// Exit codes: 0 = success, 1 = operation failure, 2 = command error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/roach88/recruitdb/internal/cli"
)

func main() {
	// A missing .env is normal; variables already set win.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
