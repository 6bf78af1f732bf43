package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/config"
	"selectbox/internal/discovery"
	"selectbox/internal/domain"
	"selectbox/internal/eventbus"
	"selectbox/internal/items"
	"selectbox/internal/ui"
)

func main() {
	// Parse command line arguments
	var itemsFile string
	var scanDir string
	var multiple bool
	var title string
	flag.StringVar(&itemsFile, "file", "", "File with one item per line")
	flag.StringVar(&itemsFile, "f", "", "File with one item per line (shorthand)")
	flag.StringVar(&scanDir, "dir", "", "Directory to scan for selectable files")
	flag.BoolVar(&multiple, "multiple", false, "Enable multi-selection mode")
	flag.StringVar(&title, "title", "", "List title")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("selectbox.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration with event bus support
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Command line overrides
	if multiple {
		cfg.Multiple = true
	}
	if title != "" {
		cfg.UISettings.Title = title
	}

	// Load items from the file or the remaining arguments
	store := items.NewMemoryChildStore()
	if err := loadItems(store, itemsFile, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading items: %v\n", err)
		os.Exit(1)
	}
	if store.Len() == 0 && scanDir == "" {
		fmt.Fprintln(os.Stderr, "No items to select from; pass -f FILE, -dir DIR or item arguments")
		os.Exit(1)
	}

	// Subscribe to config changes to save automatically
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			if !cfg.UISettings.AutosaveMode {
				return
			}
			cfg.Multiple = event.Multiple
			if err := configSvc.Save(cfg); err != nil {
				log.Printf("Failed to save config: %v", err)
			}
		}
	})

	// Discovered entries grow the child list while the UI runs
	bus.Subscribe(eventbus.EventItemDiscovered, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ItemDiscoveredEvent); ok {
			item := domain.NewItem(event.Label)
			item.Value = event.Value
			store.Append(item)
			bus.Publish(eventbus.ChildrenChangedEvent{Length: store.Len()})
		}
	})

	// Create UI model
	log.Printf("Creating UI model...")
	uiModel := ui.NewModel(bus, cfg, store)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Forward application events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventChange,
		eventbus.EventModeChanged,
		eventbus.EventFocusGained,
		eventbus.EventFocusLost,
		eventbus.EventSelectionAdopted,
		eventbus.EventChildrenChanged,
		eventbus.EventScanCompleted,
		eventbus.EventAppReady,
	} {
		bus.Subscribe(eventType, forward)
	}

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Start the directory scan once the forwarding is in place
	scanner := discovery.NewDiscoveryService(bus)
	if scanDir != "" {
		if err := scanner.StartScan(context.Background(), scanDir); err != nil {
			log.Printf("Failed to start scan: %v", err)
		}
	}

	bus.Publish(eventbus.AppReadyEvent{ItemCount: store.Len()})

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup
	scanner.StopScan()
	close(eventChan)

	// Print the accepted selection for shell consumption
	if uiModel.Accepted() {
		for _, item := range uiModel.Control().SelectedChildren() {
			fmt.Println(item.Value)
		}
	}
}

// loadItems fills the child store from a file or argument list
func loadItems(store *items.MemoryChildStore, path string, args []string) error {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open items file: %w", err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			store.Append(domain.NewItem(line))
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read items file: %w", err)
		}
		return nil
	}

	for _, arg := range args {
		store.Append(domain.NewItem(arg))
	}
	return nil
}
