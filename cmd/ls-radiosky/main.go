// Command ls-radiosky is a terminal almanac for small radio telescopes:
// source positions, Doppler corrections and refraction for an observer.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-radiosky/internal/astro"
	"github.com/litescript/ls-radiosky/internal/logging"
	"github.com/litescript/ls-radiosky/internal/radial"
	"github.com/litescript/ls-radiosky/internal/refraction"
	"github.com/litescript/ls-radiosky/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	watchInterval time.Duration
	listSources   bool
)

func main() {
	lat := flag.Float64("lat", 51.4778, "Observer latitude in degrees (north positive)")
	lon := flag.Float64("lon", -0.0015, "Observer longitude in degrees (east positive)")
	height := flag.Float64("height", 50.0, "Observer height above sea level in metres")
	name := flag.String("name", "Greenwich", "Observer site name")
	freq := flag.Float64("freq", radial.HydrogenLineFreq, "Rest frequency in Hz")
	pressure := flag.Float64("pressure", 1010.0, "Surface pressure in millibars")
	temp := flag.Float64("temp", 10.0, "Surface temperature in Celsius")
	humidity := flag.Float64("humidity", 50.0, "Relative humidity in percent")
	lapse := flag.Float64("lapse", 6.49, "Tropospheric lapse rate in K/km")
	source := flag.String("source", "Cassiopeia A", "Radio source to track")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat summary at interval (e.g., 30s)")
	flag.BoolVar(&listSources, "list-sources", false, "List the source catalog and exit")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	catalog := astro.DefaultSourceCatalog()
	if listSources {
		for _, s := range catalog.Sources {
			fmt.Printf("%-16s RA %7.4fh  Dec %+9.4f  %6.0f Jy\n", s.Name, s.RAHours, s.DecDeg, s.FluxJy)
		}
		return
	}

	obs := astro.Observer{LatDeg: *lat, LonDeg: *lon, HeightM: *height, Name: *name}
	atm := refraction.AtmosphereProfile{
		PressureMb:   *pressure,
		TemperatureC: *temp,
		Humidity:     *humidity,
		LapseRate:    *lapse,
	}

	selected := findSource(catalog, *source)
	if selected < 0 {
		fmt.Fprintf(os.Stderr, "Unknown source %q; use -list-sources to see the catalog\n", *source)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Headless mode: no TUI
	if summaryMode || watchInterval > 0 || !term.IsTerminal(int(os.Stdout.Fd())) {
		runHeadless(ctx, obs, atm, *freq, catalog.Sources[selected], logger)
		return
	}

	model := ui.New(obs, atm, *freq, catalog, selected)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// findSource resolves a source by case-insensitive name match.
func findSource(catalog astro.SourceCatalog, name string) int {
	for i, s := range catalog.Sources {
		if strings.EqualFold(s.Name, name) {
			return i
		}
	}
	return -1
}

// runHeadless prints the summary once, or repeatedly in watch mode.
func runHeadless(ctx context.Context, obs astro.Observer, atm refraction.AtmosphereProfile, freq float64, src astro.Source, logger *logging.Logger) {
	outputOnce := func() {
		start := time.Now()
		r := ui.Compute(time.Now(), obs, atm, freq, src)
		logger.Debug("Readout computed in %v", time.Since(start))
		ui.WriteSummary(os.Stdout, obs, r)
	}

	outputOnce()
	if watchInterval == 0 {
		return
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Println()
			outputOnce()
		}
	}
}
