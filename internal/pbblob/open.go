package pbblob

import (
	"context"
	"path/filepath"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// OpenDir opens a bucket rooted at the local directory dir. Writes
// land in a temporary file next to their key and are renamed into
// place on Close, and no metadata sidecar files are created.
func OpenDir(_ context.Context, dir string) (*blob.Bucket, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	return fileblob.OpenBucket(abs, &fileblob.Options{
		Metadata:  fileblob.MetadataDontWrite,
		NoTempDir: true,
	})
}
