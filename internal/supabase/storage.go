package supabase

import (
	"strings"

	storage "github.com/supabase-community/storage-go"
)

// StorageClient turns artwork image references into URLs a browser can load.
// Artists may submit either an absolute URL or an object path inside the bucket.
type StorageClient struct {
	client *storage.Client
	bucket string
}

func NewStorageClient(supabaseURL, serviceKey, bucket string) (*StorageClient, error) {
	// Ensure URL doesn't have trailing slash
	baseURL := strings.TrimRight(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceKey, nil)

	return &StorageClient{
		client: client,
		bucket: bucket,
	}, nil
}

// ResolveImageURL returns ref unchanged when it is already absolute.
func (s *StorageClient) ResolveImageURL(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	path := strings.TrimPrefix(ref, "/")
	path = strings.TrimPrefix(path, s.bucket+"/")
	return s.client.GetPublicUrl(s.bucket, path).SignedURL
}
