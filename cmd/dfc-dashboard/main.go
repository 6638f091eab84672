package main

import (
	"fmt"
	"os"

	"github.com/diillson/dfc-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/dfc-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/dfc-dashboard-go/pkg/console"
	"github.com/diillson/dfc-dashboard-go/pkg/version"
)

func main() {
	// Os adaptadores de dados dependem das flags e são montados por comando
	app := cli.NewCLIApp(version.Version, console.NewConsole(), config.NewConfigRepository())

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
