package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gphotosuploader/google-photos-api-client-go/v3/media_items"
	"golang.org/x/time/rate"

	"github.com/ccfrost/phototransfer/internal/state"
)

const (
	// DefaultBatchSize is the number of upload tokens committed per batch.
	DefaultBatchSize = 10
	// DefaultLooseMediaPrefix marks folders uploaded without an album.
	DefaultLooseMediaPrefix = "Photos from"
)

// supportedMediaExtensions is the fixed set of image/video types the engine
// transfers. Matched case-insensitively against the file extension.
var supportedMediaExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".webp": {},
	".heic": {},
	".mp4":  {},
	".mov":  {},
}

// Engine processes folders against the persistent transfer state. One folder
// at a time, one batch at a time, one upload at a time: the sequential model
// keeps quota accounting and crash resumption easy to reason about.
type Engine struct {
	store            *state.Store
	client           GPhotosClient
	limiter          *rate.Limiter
	batchSize        int
	looseMediaPrefix string
}

// NewEngine creates an Engine. A batchSize <= 0 or an empty looseMediaPrefix
// selects the defaults.
func NewEngine(store *state.Store, client GPhotosClient, batchSize int, looseMediaPrefix string) *Engine {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if looseMediaPrefix == "" {
		looseMediaPrefix = DefaultLooseMediaPrefix
	}
	return &Engine{
		store:  store,
		client: client,
		// Limit to 5 operations per second, allowing bursts of up to 10.
		// TODO: check the actual rate limits for Google Photos API.
		limiter:          rate.NewLimiter(rate.Every(time.Second/5), 10),
		batchSize:        batchSize,
		looseMediaPrefix: looseMediaPrefix,
	}
}

// ProcessFolder transfers one folder. A nil return means the folder is fully
// handled: either completed now or already complete from an earlier run.
// A non-nil return means a fatal condition interrupted processing; all
// progress made so far is durably recorded and the folder resumes file by
// file on the next run.
func (e *Engine) ProcessFolder(ctx context.Context, folderPath string) error {
	folderPath = state.NormalizePath(folderPath)
	folderName := filepath.Base(folderPath)

	folder, err := e.store.GetFolder(ctx, folderPath)
	switch {
	case err == nil:
		if folder.Status == state.FolderProcessed {
			logger.Info("Skipping already processed folder",
				slog.String("folder", folderPath))
			return nil
		}
	case errors.Is(err, state.ErrFolderNotFound):
		// First touch: create the pending record before any remote call.
		if err := e.store.EnsureFolder(ctx, folderPath); err != nil {
			return err
		}
	default:
		return fmt.Errorf("read folder state for %s: %w", folderPath, err)
	}

	logger.Info("Starting transfer for folder", slog.String("folder", folderPath))

	mediaFiles, err := listMediaFiles(folderPath)
	if err != nil {
		return fmt.Errorf("enumerate folder %s: %w", folderPath, err)
	}
	if len(mediaFiles) == 0 {
		logger.Info("No media files found, marking folder processed",
			slog.String("folder", folderPath))
		return e.store.SetFolderStatus(ctx, folderPath, state.FolderProcessed)
	}

	filesToUpload := make([]string, 0, len(mediaFiles))
	for _, path := range mediaFiles {
		uploaded, err := e.store.IsFileUploaded(ctx, path)
		if err != nil {
			return fmt.Errorf("read file state for %s: %w", path, err)
		}
		if !uploaded {
			filesToUpload = append(filesToUpload, path)
		}
	}
	if skipped := len(mediaFiles) - len(filesToUpload); skipped > 0 {
		logger.Info("Skipping already uploaded files", slog.Int("count", skipped))
	}
	if len(filesToUpload) == 0 {
		logger.Info("All files already uploaded, marking folder processed",
			slog.String("folder", folderPath))
		return e.store.SetFolderStatus(ctx, folderPath, state.FolderProcessed)
	}

	logger.Info("Found new files to upload", slog.Int("count", len(filesToUpload)))

	// The album decision waits until there is something to upload, so empty
	// and fully uploaded folders complete without a single remote call.
	isAlbum := !strings.HasPrefix(strings.ToLower(folderName), strings.ToLower(e.looseMediaPrefix))
	albumID := folder.AlbumID

	switch {
	case isAlbum && albumID == "":
		albumID, err = e.createAlbum(ctx, folderPath, folderName)
		if err != nil {
			// Album creation failure of any kind defers the whole folder;
			// there is no partial album state to preserve.
			return err
		}
	case isAlbum:
		logger.Info("Resuming folder with existing album",
			slog.String("folder", folderName),
			slog.String("album_id", albumID))
	default:
		logger.Info("Loose media folder, uploading to library without an album",
			slog.String("folder", folderName))
	}

	for start := 0; start < len(filesToUpload); start += e.batchSize {
		end := min(start+e.batchSize, len(filesToUpload))
		if err := e.transferBatch(ctx, folderPath, albumID, isAlbum, filesToUpload[start:end]); err != nil {
			return err
		}
	}

	if err := e.store.SetFolderStatus(ctx, folderPath, state.FolderProcessed); err != nil {
		return err
	}
	logger.Info("Completed processing folder", slog.String("folder", folderPath))
	return nil
}

// createAlbum creates the remote album and persists its id before any upload,
// so a crash after creation never re-creates the album on the next run.
func (e *Engine) createAlbum(ctx context.Context, folderPath, folderName string) (string, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error before creating album %q: %w", folderName, err)
	}
	album, err := e.client.Albums().Create(ctx, folderName)
	if err != nil {
		if IsQuotaExceeded(err) {
			logger.Error("Album creation rejected by quota",
				slog.String("folder", folderName),
				slog.String("error", err.Error()))
		} else {
			logger.Error("Failed to create album",
				slog.String("folder", folderName),
				slog.String("error", err.Error()))
		}
		return "", fmt.Errorf("create album %q: %w", folderName, err)
	}
	if err := e.store.SetFolderAlbum(ctx, folderPath, album.ID); err != nil {
		return "", err
	}
	logger.Info("Created album",
		slog.String("title", folderName),
		slog.String("album_id", album.ID))
	return album.ID, nil
}

// transferBatch uploads one batch of files and commits the collected tokens.
// Quota errors abort the folder. Other upload errors skip the one file; other
// commit errors skip marking the batch, leaving its files pending for the
// next run.
func (e *Engine) transferBatch(ctx context.Context, folderPath, albumID string, isAlbum bool, batch []string) error {
	items := make([]media_items.SimpleMediaItem, 0, len(batch))
	uploadedPaths := make([]string, 0, len(batch))

	for _, path := range batch {
		if err := e.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error before uploading %s: %w", path, err)
		}
		token, err := e.client.Uploader().UploadFile(ctx, path)
		if err != nil {
			if IsQuotaExceeded(err) {
				logger.Error("Upload rejected by quota, stopping folder",
					slog.String("file", path))
				return fmt.Errorf("upload %s: %w", path, err)
			}
			// A single bad file must not block the rest of the batch.
			logger.Error("Failed to upload file, skipping",
				slog.String("file", path),
				slog.String("error", err.Error()))
			continue
		}
		items = append(items, media_items.SimpleMediaItem{
			UploadToken: token,
			Filename:    filepath.Base(path),
		})
		uploadedPaths = append(uploadedPaths, path)
		logger.Debug("Uploaded file", slog.String("file", path))
	}

	if len(items) == 0 {
		return nil
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error before committing batch: %w", err)
	}
	var commitErr error
	if isAlbum {
		_, commitErr = e.client.MediaItems().CreateManyToAlbum(ctx, albumID, items)
	} else {
		_, commitErr = e.client.MediaItems().CreateMany(ctx, items)
	}
	if commitErr != nil {
		if IsQuotaExceeded(commitErr) {
			logger.Error("Batch commit rejected by quota, stopping folder",
				slog.String("folder", folderPath))
			return fmt.Errorf("commit batch for %s: %w", folderPath, commitErr)
		}
		// Uncommitted tokens stay unmarked; those files retry next run.
		logger.Error("Failed to commit batch, files remain pending",
			slog.String("folder", folderPath),
			slog.Int("file_count", len(uploadedPaths)),
			slog.String("error", commitErr.Error()))
		return nil
	}

	for _, path := range uploadedPaths {
		if err := e.store.MarkFileUploaded(ctx, path, folderPath); err != nil {
			return fmt.Errorf("record uploaded file %s: %w", path, err)
		}
	}
	logger.Debug("Committed batch",
		slog.String("folder", folderPath),
		slog.Int("file_count", len(uploadedPaths)))
	return nil
}

// listMediaFiles walks folderPath recursively and returns the supported
// media files in lexical order. Unreadable subtrees are logged and skipped;
// an unreadable root fails the enumeration.
func listMediaFiles(folderPath string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(folderPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == folderPath {
				return fmt.Errorf("folder '%s' unreadable: %w", folderPath, err)
			}
			logger.Error("Error accessing path during walk, skipping",
				slog.String("path", path),
				slog.String("error", err.Error()))
			return nil // Continue walking
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := supportedMediaExtensions[ext]; ok {
			files = append(files, state.NormalizePath(path))
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("folder does not exist: %w", err)
		}
		return nil, err
	}
	return files, nil
}
