package pbblob

import (
	"bytes"
	"context"
	"io"

	"gocloud.dev/blob"
)

// WriteAll replaces key with b. The object is only visible once the
// writer has been closed successfully; a failed copy aborts the write.
func WriteAll(ctx context.Context, bucket *blob.Bucket, key string, b []byte, opts *blob.WriterOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := bucket.NewWriter(ctx, key, opts)
	if err != nil {
		return err
	}

	if _, err := io.Copy(w, bytes.NewReader(b)); err != nil {
		cancel()
		_ = w.Close()
		return err
	}

	if err = w.Close(); err != nil {
		return err
	}

	return nil
}
