package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ccfrost/phototransfer/internal/state"
)

const legacyStateFileName = "processed_folders.json"

// ImportLegacyState performs the one-time import of the legacy flat
// folder-status mapping into the state store. Folders recorded as processed
// are marked processed; everything else is ignored. The legacy file is then
// renamed with a .bak suffix so it is never re-imported. A missing file is
// not an error, and a malformed file is logged and left in place for
// inspection without blocking the transfer run.
func ImportLegacyState(ctx context.Context, store *state.Store, dir string) error {
	path := filepath.Join(dir, legacyStateFileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read legacy state file %s: %w", path, err)
	}

	logger.Info("Found legacy state file, migrating to database",
		slog.String("path", path))

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Error("Legacy state file is malformed, skipping migration",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil
	}

	imported := 0
	for folderPath, status := range entries {
		if status != "processed" {
			continue
		}
		if err := store.EnsureFolder(ctx, folderPath); err != nil {
			return fmt.Errorf("import legacy folder %s: %w", folderPath, err)
		}
		if err := store.SetFolderStatus(ctx, folderPath, state.FolderProcessed); err != nil {
			return fmt.Errorf("import legacy folder %s: %w", folderPath, err)
		}
		imported++
	}

	// Rename so the import never runs twice.
	backupPath := path + ".bak"
	if err := os.Rename(path, backupPath); err != nil {
		return fmt.Errorf("retire legacy state file %s: %w", path, err)
	}

	logger.Info("Legacy state migration complete",
		slog.Int("imported", imported),
		slog.String("backup", backupPath))
	return nil
}
