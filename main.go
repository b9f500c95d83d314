package main

import (
	"flag"
	"fmt"
	"os"

	"videorental/cmd"
	"videorental/config"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	app := cmd.NewApp(cfg)
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
