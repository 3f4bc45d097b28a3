package outbound

import "context"

// MediaStorePort uploads an audio blob under a generated key and returns
// the public URL of the stored object.
type MediaStorePort interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
}
