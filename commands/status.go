package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ccfrost/phototransfer/internal/state"
)

// DisplayStatus is the user-facing folder status derived from the transfer
// state: Uploaded when the folder is fully processed, Ready otherwise.
type DisplayStatus string

const (
	StatusReady    DisplayStatus = "Ready"
	StatusUploaded DisplayStatus = "Uploaded"
)

// FolderDisplayStatus derives the display status for one folder. Folders the
// engine never touched report Ready.
func FolderDisplayStatus(ctx context.Context, store *state.Store, folderPath string) (DisplayStatus, error) {
	folder, err := store.GetFolder(ctx, folderPath)
	if errors.Is(err, state.ErrFolderNotFound) {
		return StatusReady, nil
	}
	if err != nil {
		return "", err
	}
	if folder.Status == state.FolderProcessed {
		return StatusUploaded, nil
	}
	return StatusReady, nil
}

// ListSubfolders returns the immediate subdirectories of root, sorted by
// name. A listing failure is surfaced to the caller without touching
// transfer state.
func ListSubfolders(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list subdirectories of %s: %w", root, err)
	}
	var folders []string
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, filepath.Join(root, entry.Name()))
		}
	}
	return folders, nil
}
