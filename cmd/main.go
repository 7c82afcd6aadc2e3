// Package main implements a small desktop utility that lists the immediate contents
// of a folder picked by the user, built on the Fyne framework.
package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/Akaiko1/folder-lister/internal/chooser"
	"github.com/Akaiko1/folder-lister/internal/config"
	"github.com/Akaiko1/folder-lister/internal/logging"
	"github.com/Akaiko1/folder-lister/internal/ui"
)

func main() {
	log.Println("Starting Folder Content Lister...")

	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	log.Printf("Config: Window=%vx%v, NativeDialog=%v", cfg.WindowWidth, cfg.WindowHeight, cfg.NativeDialog)

	opts := []ui.Option{ui.WithLogger(logging.NewStdLogger(os.Stdout))}
	if cfg.NativeDialog {
		opts = append(opts, ui.WithNativeChooser(chooser.NewNative(cfg.DialogTitle)))
	}

	listerApp := ui.NewFolderListerApp(app.New(), cfg, opts...)
	log.Println("App created, starting UI...")

	listerApp.Run()
}
