package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Camilo-Usuga/xxi-storage/internal/client/cli"
)

// Set with -ldflags "-X main.buildVersion=...".
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &cli.App{}
	root := cli.NewRootCmd(app)
	root.Version = fmt.Sprintf("%s (built %s)", buildVersion, buildDate)

	err := root.ExecuteContext(ctx)
	_ = app.Close()
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
