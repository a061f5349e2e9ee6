// Command fmcheck loads one or more FactoryMod configs and reports what was
// parsed and what was skipped.
//
// Usage:
//
//	fmcheck [-strict] [-json] [-timeout 30s] <file-or-url>...
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
