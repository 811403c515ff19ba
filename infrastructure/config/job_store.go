package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/fsnotify/fsnotify"

	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
)

// ErrJobsFileMissing is returned by Reload when a previously loaded jobs file
// has disappeared. The loaded jobs stay in effect.
var ErrJobsFileMissing = errors.New("jobs file missing")

var (
	jobsReloadOK  = metrics.NewCounter(`jobs_config_reloads_total{status="ok"}`)
	jobsReloadErr = metrics.NewCounter(`jobs_config_reloads_total{status="error"}`)
)

// JobStore serves the current jobs file and swaps it atomically on reload.
// Readers always see a complete snapshot.
type JobStore struct {
	path    string
	current atomic.Pointer[JobsFile]
	logger  *slog.Logger
}

func NewJobStore(path string, logger *slog.Logger) (*JobStore, error) {
	s := &JobStore{path: path, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JobStore) NotifierConfig(jobName string) (notification.NotifierConfig, error) {
	return s.current.Load().NotifierConfig(jobName)
}

func (s *JobStore) JobCount() int {
	return len(s.current.Load().Jobs)
}

// Reload keeps the previous snapshot when the file is invalid or has been
// removed. A missing file only yields an empty config on the first load.
func (s *JobStore) Reload() error {
	if s.current.Load() != nil {
		if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
			jobsReloadErr.Inc()
			return fmt.Errorf("load jobs file %s: %w", s.path, ErrJobsFileMissing)
		}
	}

	f, err := LoadJobsFile(s.path)
	if err != nil {
		jobsReloadErr.Inc()
		return fmt.Errorf("load jobs file %s: %w", s.path, err)
	}
	s.current.Store(f)
	jobsReloadOK.Inc()
	return nil
}

// Watch reloads the jobs file after it changes, until ctx is done. The parent
// directory is watched so editors that replace the file are handled.
func (s *JobStore) Watch(ctx context.Context, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(filepath.Clean(s.path))
	name := filepath.Base(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	schedule := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, func() {
			if err := s.Reload(); err != nil {
				s.logger.Warn("Jobs file reload failed, keeping previous config",
					slog.String("path", s.path),
					slog.String("error", err.Error()),
				)
				return
			}
			s.logger.Info("Jobs file reloaded",
				slog.String("path", s.path),
				slog.Int("jobs", s.JobCount()),
			)
		})
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				schedule()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("Jobs file watcher error", slog.String("error", err.Error()))
		}
	}
}
