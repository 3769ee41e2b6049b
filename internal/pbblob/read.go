package pbblob

import (
	"context"
	"fmt"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// ReadAll reads the whole of key. A missing key keeps
// its gcerrors.NotFound code.
func ReadAll(ctx context.Context, bucket *blob.Bucket, key string) ([]byte, error) {
	b, err := bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, fmt.Errorf("%s not found: %w", key, err)
	} else if err != nil {
		return nil, err
	}

	return b, nil
}
