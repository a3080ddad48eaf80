package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/evship/internal/logger"
)

// watchDebounce coalesces bursts of editor writes into one run.
var watchDebounce = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run a batch now and again whenever the source list changes",
	Long: `Runs one batch immediately, then watches the source list file and runs
a new batch each time it is written or replaced. Each run is a complete batch
over every source. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if err := requireBatch(cmd); err != nil {
		return err
	}
	if sourcesFile == "" {
		return errors.New("source list path not configured")
	}
	path, err := filepath.Abs(sourcesFile)
	if err != nil {
		return fmt.Errorf("resolve source list path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so replace-on-save editors are noticed.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	ctx := cmd.Context()
	shipLogged(cmd)
	cmd.Printf("Watching %s\n", path)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isSourceListChange(event, path) {
				logger.Debug("Source list changed: %s", event.Op)
				debounce = time.After(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		case <-debounce:
			debounce = nil
			shipLogged(cmd)
		}
	}
}

// shipLogged runs one batch and logs a failure instead of returning it.
func shipLogged(cmd *cobra.Command) {
	if err := shipOnce(cmd); err != nil {
		logger.Error("%v", err)
	}
}

// isSourceListChange reports whether event touches the source list file
// in a way that may have changed its content.
func isSourceListChange(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
