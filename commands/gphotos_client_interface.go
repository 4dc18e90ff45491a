//go:generate go run github.com/golang/mock/mockgen -source=${GOFILE} -destination=zz_generated_local_mocks_test.go -package=commands GPhotosClient,AppAlbumsService,AppMediaItemsService
//go:generate go run github.com/golang/mock/mockgen -destination=mock_media_uploader_test.go -package=commands github.com/gphotosuploader/google-photos-api-client-go/v3 MediaUploader

package commands

import (
	"context"

	gphotosUploader "github.com/gphotosuploader/google-photos-api-client-go/v3"
	"github.com/gphotosuploader/google-photos-api-client-go/v3/albums"
	"github.com/gphotosuploader/google-photos-api-client-go/v3/media_items"
)

// GPhotosClient defines the interface for Google Photos client operations
// needed by the transfer engine.
type GPhotosClient interface {
	Albums() AppAlbumsService
	MediaItems() AppMediaItemsService
	Uploader() gphotosUploader.MediaUploader
}

// AppAlbumsService defines the interface for album-related operations we
// use. Album ids are persisted in the transfer state after creation, so the
// engine never lists or re-resolves albums by title.
type AppAlbumsService interface {
	Create(ctx context.Context, title string) (*albums.Album, error)
}

// AppMediaItemsService defines the interface for media item-related
// operations we use. Batches of upload tokens are committed into the
// library or into an album in a single call.
type AppMediaItemsService interface {
	CreateMany(ctx context.Context, mediaItems []media_items.SimpleMediaItem) ([]*media_items.MediaItem, error)
	CreateManyToAlbum(ctx context.Context, albumID string, mediaItems []media_items.SimpleMediaItem) ([]*media_items.MediaItem, error)
}
