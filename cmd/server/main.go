package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Hulupeep/mbot-ruvector/internal/brain"
	"github.com/Hulupeep/mbot-ruvector/internal/config"
	"github.com/Hulupeep/mbot-ruvector/internal/frontend"
	"github.com/Hulupeep/mbot-ruvector/internal/loop"
	"github.com/Hulupeep/mbot-ruvector/internal/sensor"
	"github.com/Hulupeep/mbot-ruvector/internal/ws"
)

func main() {
	devMode := flag.Bool("dev", false, "Development mode (serve frontend from filesystem)")
	configPath := flag.String("config", "config.yaml", "Path to config file")
	port := flag.Int("port", 0, "Override server port")
	interval := flag.Duration("interval", 0, "Override tick interval")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *interval > 0 {
		cfg.Loop.TickInterval = *interval
	}

	broadcaster := ws.NewBroadcaster()

	// The simulated source is the only one wired today; a hardware-backed
	// sensor.Source slots in here once the serial transport exists.
	src := sensor.NewSimSource()
	l := loop.New(brain.New(), src, broadcaster, cfg.Loop.TickInterval, clockwork.NewRealClock())

	frontendDir := ""
	if *devMode {
		exe, _ := os.Executable()
		frontendDir = filepath.Join(filepath.Dir(exe), "..", "..", "internal", "frontend", "static")
		// If running with go run, the exe path is in a temp dir, use CWD instead
		if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
			cwd, _ := os.Getwd()
			frontendDir = filepath.Join(cwd, "internal", "frontend", "static")
		}
	}

	// Embedded frontend handler: when built with -tags embed, serves from binary.
	// Otherwise falls back to serving from the filesystem.
	var embeddedHandler http.Handler
	if !*devMode {
		embeddedHandler = frontend.Handler()
		if embeddedHandler == nil {
			cwd, _ := os.Getwd()
			fallback := filepath.Join(cwd, "internal", "frontend", "static")
			if _, err := os.Stat(fallback); err == nil {
				log.Printf("No embedded frontend, falling back to: %s", fallback)
				embeddedHandler = http.FileServer(http.Dir(fallback))
			}
		}
	}

	server := ws.NewServer(cfg, broadcaster, src.Name(), frontendDir, *devMode, embeddedHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l.Start(ctx)

	mux := http.NewServeMux()
	server.SetupRoutes(mux)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		cancel()
		// Give the tick loop a moment to log its final count
		time.Sleep(100 * time.Millisecond)
		os.Exit(0)
	}()

	if err := ws.ListenAndServe(cfg.Server.Host, cfg.Server.Port, mux); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
