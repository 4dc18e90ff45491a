package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// FolderStatus is the lifecycle state of a folder record.
type FolderStatus string

const (
	// FolderPending means the folder has been touched but not every
	// discoverable media file in it is durably recorded as uploaded.
	FolderPending FolderStatus = "pending"
	// FolderProcessed means the folder is complete and is never reprocessed.
	FolderProcessed FolderStatus = "processed"
)

// FileStatus is the lifecycle state of a file record.
type FileStatus string

const (
	FilePending  FileStatus = "pending"
	FileUploaded FileStatus = "uploaded"
)

// ErrFolderNotFound is returned when an operation requires an existing
// folder record and none exists for the given path.
var ErrFolderNotFound = errors.New("folder not found in transfer state")

// Folder is a folder record as stored.
type Folder struct {
	Path    string
	AlbumID string // empty when no album was ever assigned
	Status  FolderStatus
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS folders (
	path TEXT PRIMARY KEY,
	album_id TEXT,
	status TEXT NOT NULL DEFAULT 'pending'
);
CREATE TABLE IF NOT EXISTS files (
	path TEXT PRIMARY KEY,
	folder_path TEXT,
	status TEXT NOT NULL DEFAULT 'pending'
);
`

// Store manages transfer state backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the transfer state database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the location of the database file.
func (s *Store) Path() string {
	return s.path
}

// GetFolder returns the folder record for path, or ErrFolderNotFound.
func (s *Store) GetFolder(ctx context.Context, path string) (Folder, error) {
	key := NormalizePath(path)
	var albumID sql.NullString
	var status string
	err := s.db.QueryRowContext(ctx,
		"SELECT album_id, status FROM folders WHERE path = ?", key,
	).Scan(&albumID, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return Folder{}, fmt.Errorf("%w: %s", ErrFolderNotFound, key)
	}
	if err != nil {
		return Folder{}, fmt.Errorf("query folder %s: %w", key, err)
	}
	return Folder{Path: key, AlbumID: albumID.String, Status: FolderStatus(status)}, nil
}

// EnsureFolder creates a pending folder record with no album if one does not
// already exist. Existing records are left untouched.
func (s *Store) EnsureFolder(ctx context.Context, path string) error {
	key := NormalizePath(path)
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO folders (path) VALUES (?) ON CONFLICT(path) DO NOTHING", key)
	if err != nil {
		return fmt.Errorf("ensure folder %s: %w", key, err)
	}
	return nil
}

// SetFolderAlbum records the album id for a folder, creating a pending
// record if none exists. Only the album id is changed for existing records.
func (s *Store) SetFolderAlbum(ctx context.Context, path, albumID string) error {
	key := NormalizePath(path)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO folders (path, album_id) VALUES (?, ?)
		ON CONFLICT(path) DO UPDATE SET album_id = excluded.album_id`,
		key, albumID)
	if err != nil {
		return fmt.Errorf("set album for folder %s: %w", key, err)
	}
	return nil
}

// SetFolderStatus updates the status of an existing folder record. It
// returns ErrFolderNotFound if the folder was never recorded; callers must
// first touch the folder via SetFolderAlbum or EnsureFolder.
func (s *Store) SetFolderStatus(ctx context.Context, path string, status FolderStatus) error {
	key := NormalizePath(path)
	res, err := s.db.ExecContext(ctx,
		"UPDATE folders SET status = ? WHERE path = ?", string(status), key)
	if err != nil {
		return fmt.Errorf("set status for folder %s: %w", key, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set status for folder %s: %w", key, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrFolderNotFound, key)
	}
	return nil
}

// IsFileUploaded reports whether the file was durably recorded as uploaded.
// Unknown paths report false.
func (s *Store) IsFileUploaded(ctx context.Context, path string) (bool, error) {
	key := NormalizePath(path)
	var one int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM files WHERE path = ? AND status = ?", key, string(FileUploaded),
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query file %s: %w", key, err)
	}
	return true, nil
}

// MarkFileUploaded records a file as uploaded and committed. Re-marking an
// already-uploaded file is a no-op in effect.
func (s *Store) MarkFileUploaded(ctx context.Context, path, folderPath string) error {
	key := NormalizePath(path)
	folderKey := NormalizePath(folderPath)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO files (path, folder_path, status) VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET status = excluded.status`,
		key, folderKey, string(FileUploaded))
	if err != nil {
		return fmt.Errorf("mark file uploaded %s: %w", key, err)
	}
	return nil
}
