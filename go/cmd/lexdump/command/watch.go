// Copyright 2025 Supabase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// LexDumpWatchCmd holds the watch command configuration
type LexDumpWatchCmd struct {
	lc *LexDumpCommand
}

// AddWatchCommand adds the watch subcommand to the root command
func AddWatchCommand(root *cobra.Command, lc *LexDumpCommand) {
	watchCmd := &LexDumpWatchCmd{lc: lc}
	root.AddCommand(watchCmd.createCommand())
}

func (w *LexDumpWatchCmd) createCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch files...",
		Short: "Dump script files again whenever they change",
		Long: `Dump each file once, then watch the files and dump a file again every time it
is written. Runs until interrupted.

Examples:
  # Re-lex a script on every save
  lexdump watch script.rhai

  # Watch with a host policy, printing JSON
  lexdump watch --policy policy.yaml -f json a.rhai b.rhai`,
		Args: cobra.MinimumNArgs(1),
		RunE: w.runWatch,
	}
}

func (w *LexDumpWatchCmd) runWatch(cmd *cobra.Command, args []string) error {
	lc := w.lc
	logger := lc.logs.Get()
	out := cmd.OutOrStdout()

	dumpFile := func(path string) error {
		inputs, err := lc.readInputs(nil, []string{path})
		if err != nil {
			return err
		}
		dumps, err := lc.lexAll(inputs)
		if err != nil {
			return err
		}
		return lc.emit(out, dumps)
	}

	for _, path := range args {
		if path == stdinName {
			return errors.New("watch cannot read standard input")
		}
		if err := dumpFile(path); err != nil {
			return err
		}
	}

	watcher, err := newFileWatcher(logger, args)
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching files", "files", args)
	return watcher.Run(ctx, dumpFile)
}

// fileWatcher reports writes to a fixed set of files. It watches their
// directories so that editors which replace a file on save are followed.
type fileWatcher struct {
	logger  *slog.Logger
	watcher *fsnotify.Watcher
	files   map[string]string // absolute path -> name as given
}

func newFileWatcher(logger *slog.Logger, paths []string) (*fileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	fw := &fileWatcher{
		logger:  logger,
		watcher: watcher,
		files:   make(map[string]string, len(paths)),
	}
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		fw.files[abs] = path

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	return fw, nil
}

// Run calls onChange with the name of each watched file that is written or
// re-created, until ctx is done. Errors from onChange are logged.
func (fw *fileWatcher) Run(ctx context.Context, onChange func(path string) error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name, ok := fw.files[filepath.Clean(event.Name)]
			if !ok {
				continue
			}
			fw.logger.Debug("file changed", "file", name, "op", event.Op.String())
			if err := onChange(name); err != nil {
				fw.logger.Warn("failed to dump changed file", "file", name, "error", err)
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Warn("file watcher error", "error", err)
		}
	}
}

// Close stops watching.
func (fw *fileWatcher) Close() error {
	return fw.watcher.Close()
}
