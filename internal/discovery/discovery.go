package discovery

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"selectbox/internal/eventbus"
)

// maxDepth bounds how deep the scanner descends below the root
const maxDepth = 3

// DiscoveryService fills the child list from the filesystem: every
// regular file below the root becomes a selectable item, published one
// at a time so the list grows while the scan runs.
type DiscoveryService interface {
	StartScan(ctx context.Context, root string) error
	StopScan()
}

// discoveryService is the concrete implementation
type discoveryService struct {
	bus        eventbus.EventBus
	mu         sync.Mutex
	isScanning bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(bus eventbus.EventBus) DiscoveryService {
	return &discoveryService{bus: bus}
}

// StartScan starts scanning the root directory for items
func (ds *discoveryService) StartScan(ctx context.Context, root string) error {
	ds.mu.Lock()
	if ds.isScanning {
		ds.mu.Unlock()
		return fmt.Errorf("scan already in progress")
	}
	ds.isScanning = true

	scanCtx, cancel := context.WithCancel(ctx)
	ds.cancelFunc = cancel
	ds.mu.Unlock()

	ds.bus.Publish(eventbus.ScanStartedEvent{Root: root})

	ds.wg.Add(1)
	go func() {
		defer ds.wg.Done()

		found := ds.scanDirectory(scanCtx, root)

		ds.mu.Lock()
		ds.isScanning = false
		ds.cancelFunc = nil
		ds.mu.Unlock()

		ds.bus.Publish(eventbus.ScanCompletedEvent{ItemsFound: found})
	}()

	return nil
}

// StopScan stops any ongoing scan and waits for it to finish
func (ds *discoveryService) StopScan() {
	ds.mu.Lock()
	if ds.cancelFunc != nil {
		ds.cancelFunc()
	}
	ds.mu.Unlock()

	ds.wg.Wait()
}

// scanDirectory walks the root and publishes one event per file found
func (ds *discoveryService) scanDirectory(ctx context.Context, root string) int {
	found := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			log.Printf("Error walking path %s: %v", path, err)
			return nil // Continue walking
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil || relPath == "." {
			return nil
		}

		if d.IsDir() {
			if strings.Count(relPath, string(filepath.Separator)) >= maxDepth {
				return filepath.SkipDir
			}
			// Hidden and dependency directories are never interesting
			// to pick from
			name := d.Name()
			if strings.HasPrefix(name, ".") ||
				name == "node_modules" || name == "vendor" ||
				name == "dist" || name == "build" ||
				name == "target" || name == "__pycache__" {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		ds.bus.Publish(eventbus.ItemDiscoveredEvent{
			Label: relPath,
			Value: path,
		})
		found++
		return nil
	})

	if err != nil && err != context.Canceled {
		log.Printf("Error scanning directory %s: %v", root, err)
		ds.bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("Failed to scan %s", root),
			Err:     err,
		})
	}

	return found
}
