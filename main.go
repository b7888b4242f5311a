// main.go (точка входа провижионера)
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"trackflow/config"
	"trackflow/server"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: trackflow <command>

commands:
  install   run before-install + after-install hooks and exit
  migrate   run after-migrate hook and exit
  serve     expose lifecycle hooks over HTTP (default)`)
	os.Exit(2)
}

func main() {
	cfg := config.MustLoad()

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	app := &server.App{}
	app.Initialize(cfg)

	switch cmd {
	case "install":
		if err := app.RunInstall(context.Background()); err != nil {
			log.Fatal(err)
		}
	case "migrate":
		if err := app.RunMigrate(context.Background()); err != nil {
			log.Fatal(err)
		}
	case "serve":
		if err := app.Run(); err != nil {
			log.Fatal(err)
		}
	default:
		usage()
	}
}
