// Timeline TUI is a terminal preview of a timeline style.
//
// Usage:
//
//	timeline-tui [flags]
//
// Flags:
//
//	--config   Path to a TOML, YAML or JSON style file
//	           (default: timelineview/timeline.toml in the user config dir, if present)
//	--density  Cells per dp, overrides the file (default: from file, 0.25)
//	--init     Write a sample style file to the default location and exit
//
// Every style key can also be set from the environment, e.g.
// TIMELINE_CIRCLE_RADIUS=8.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/timelineview/internal/config"
	"github.com/ytget/timelineview/internal/platform"
	"github.com/ytget/timelineview/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to a style file")
	density := flag.Float64("density", 0, "Cells per dp (0 keeps the file value)")
	initStyle := flag.Bool("init", false, "Write a sample style file and exit")
	flag.Parse()

	if *initStyle {
		path, err := platform.DefaultStylePath()
		if err != nil {
			log.Fatalf("Failed to locate style file: %v", err)
		}
		written, err := platform.WriteFileIfMissing(path, config.ExampleStyle)
		if err != nil {
			log.Fatalf("Failed to write style file: %v", err)
		}
		if written {
			fmt.Printf("Wrote %s\n", path)
		} else {
			fmt.Printf("%s already exists\n", path)
		}
		return
	}

	path, err := platform.ResolveStylePath(*configPath)
	if err != nil {
		log.Fatalf("Failed to locate style file: %v", err)
	}

	file, err := config.LoadFile(path)
	if err != nil {
		log.Fatalf("Failed to load style: %v", err)
	}
	if *density > 0 {
		file.Density = float32(*density)
	}

	model, err := tui.NewModel(file)
	if err != nil {
		log.Fatalf("Failed to build timeline: %v", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
