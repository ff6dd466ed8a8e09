package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/emushim/controlview/internal/config"
	"github.com/emushim/controlview/internal/device"
	"github.com/emushim/controlview/internal/hub"
	"github.com/emushim/controlview/internal/sampler"
	"github.com/emushim/controlview/internal/server"
	"github.com/emushim/controlview/internal/tray"
)

// Cross-platform signal handling: use os.Interrupt on all platforms
// On Windows: os.Interrupt is sent when Ctrl+C is pressed
// On Unix: os.Interrupt is equivalent to syscall.SIGINT
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	cfg, v, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	config.Watch(v, func(config.Config) {
		log.Println("Config file changed; restart to apply")
	})

	layout, known := device.Lookup(cfg.Layout)
	if !known {
		log.Printf("Unknown layout %q, using %s", cfg.Layout, layout.Definition.Name())
	}
	log.Printf("Layout: %s (%d players, %d buttons, %d axes)",
		layout.Definition.Name(), layout.Definition.PlayerCount(),
		len(layout.Definition.BoolButtons()), len(layout.Definition.FloatControls()))

	// Create cancellable context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Channel to wait for sampler completion
	samplerDone := make(chan struct{})

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)

	// Create the sample source
	src := sampler.New(layout, cfg.TickInterval, cfg.AnalogEpsilon)

	// Create and start hub
	h := hub.NewHub()
	go h.Run()

	// Create broadcaster
	broadcaster := hub.NewBroadcaster(h, layout, src.Changes(), cfg.AnalogEpsilon)
	go broadcaster.Run()

	// Create and start HTTP server
	frontendFS := getFrontendFS()
	srv := server.New(h, broadcaster, layout, frontendFS, cfg.Addr)
	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	url := "http://localhost" + cfg.Addr
	log.Printf("ControlView started: %s", url)

	// Channel for tray-triggered shutdown
	shutdownRequested := make(chan struct{})

	// Initialize system tray on Windows only
	if runtime.GOOS == "windows" {
		go func() {
			t := tray.New(url, func() {
				close(shutdownRequested)
			})
			t.Run(tray.GetIcon())
		}()
	} else {
		log.Println("Press Ctrl+C to exit")
	}

	// Run the sampler in a goroutine
	go func() {
		src.Run(ctx)
		close(samplerDone)
	}()

	// Wait for shutdown signal, tray request, or server error
	select {
	case <-sigCh:
		log.Println("Shutting down...")
		cancel()
	case <-shutdownRequested:
		log.Println("Shutdown requested from tray")
		cancel()
	case err := <-serverErrCh:
		log.Printf("HTTP server error: %v", err)
		cancel()
	}

	// Wait for the sampler to finish
	<-samplerDone

	// Shutdown the HTTP server gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("ControlView stopped")
}
