package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/worldviz/logging"
	"github.com/andareed/worldviz/panel"
	"github.com/andareed/worldviz/session"
)

var (
	logFile     = flag.String("debug", "", "Write Debug Logs to file")
	stepDelay   = flag.Duration("delay", 200*time.Millisecond, "Delay between animation frames")
	restoreFile = flag.String("restore", "", "Restore a saved snapshot")
)

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	logging.Infof("worldviz: started")

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: worldviz [--debug debug.log] [-delay 200ms] [-restore snap.json] <data.csv>")
		os.Exit(1)
	}

	inputPath := args[0]
	ds, err := panel.LoadCSV(inputPath)
	if err != nil {
		log.Fatalf("failed to load %q: %v", inputPath, err)
	}

	store := session.NewStore()
	m := newModel(ds, store, *stepDelay, filepath.Base(inputPath))
	defer store.Clear(m.sessionID)

	if *restoreFile != "" {
		dto, err := loadSnapshot(*restoreFile)
		if err != nil {
			log.Fatalf("failed to restore %q: %v", *restoreFile, err)
		}
		if err := m.applySnapshot(dto); err != nil {
			log.Fatalf("failed to restore %q: %v", *restoreFile, err)
		}
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		logging.Infof("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}
