package commands

import (
	"fmt"
	"net/http"

	gphotos "github.com/gphotosuploader/google-photos-api-client-go/v3"
)

// gphotosClientAdapter narrows the gphotosuploader client to the
// GPhotosClient interface the engine consumes, so tests can substitute
// mocks for the remote services.
type gphotosClientAdapter struct {
	client *gphotos.Client
}

func (a *gphotosClientAdapter) Albums() AppAlbumsService {
	return a.client.Albums
}

func (a *gphotosClientAdapter) MediaItems() AppMediaItemsService {
	return a.client.MediaItems
}

func (a *gphotosClientAdapter) Uploader() gphotos.MediaUploader {
	return a.client.Uploader
}

// NewGPhotosClient wraps an authenticated HTTP client (from
// GetAuthenticatedGooglePhotosClient) in the GPhotosClient interface.
func NewGPhotosClient(httpClient *http.Client) (GPhotosClient, error) {
	client, err := gphotos.NewClient(httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Photos client: %w", err)
	}
	return &gphotosClientAdapter{client: client}, nil
}
