package ios

import (
	"context"
	"fmt"

	"github.com/frantjc/postbuild"
	"github.com/frantjc/postbuild/internal/pbblob"
	"github.com/opencontainers/go-digest"
	"gocloud.dev/blob"
	"howett.net/plist"
)

// InfoPlistPatcher sets UsageDescriptions on the Info.plist of
// an iOS build output.
type InfoPlistPatcher struct {
	// OpenBucket opens the build output directory.
	// Defaults to a fileblob bucket rooted at the directory.
	OpenBucket func(context.Context, string) (*blob.Bucket, error)
	// BeforeWrite, if set, is called before the patched Info.plist is
	// written. See blob.WriterOptions.BeforeWrite. An error from it
	// aborts the write and leaves the original Info.plist in place.
	BeforeWrite func(asFunc func(any) bool) error
}

func (p *InfoPlistPatcher) init() {
	if p.OpenBucket == nil {
		p.OpenBucket = pbblob.OpenDir
	}
}

var (
	_ postbuild.Hook = PostProcessBuild
	_ postbuild.Hook = new(InfoPlistPatcher).PostProcessBuild
)

// PostProcessBuild patches the Info.plist in dir using
// a default InfoPlistPatcher. See InfoPlistPatcher.PostProcessBuild.
func PostProcessBuild(ctx context.Context, platform postbuild.Platform, dir string) error {
	return new(InfoPlistPatcher).PostProcessBuild(ctx, platform, dir)
}

// PostProcessBuild is a no-op unless platform is postbuild.PlatformIOS.
// Otherwise it reads dir/Info.plist, sets UsageDescriptions on its root
// dictionary and replaces the file with the result.
func (p *InfoPlistPatcher) PostProcessBuild(ctx context.Context, platform postbuild.Platform, dir string) error {
	if platform != postbuild.PlatformIOS {
		return nil
	}

	p.init()

	log := postbuild.LoggerFrom(ctx).WithValues("manifest", InfoPlistName)

	bucket, err := p.OpenBucket(ctx, dir)
	if err != nil {
		return postbuild.KindError(fmt.Errorf("open build output %s: %w", dir, err), postbuild.ParseError)
	}
	defer bucket.Close()

	b, err := pbblob.ReadAll(ctx, bucket, InfoPlistName)
	if err != nil {
		return postbuild.KindError(fmt.Errorf("read build output %s: %w", dir, err), postbuild.ParseError)
	}

	log.V(1).Info("read manifest", "digest", digest.FromBytes(b).String())

	patched, err := PatchInfoPlist(b)
	if err != nil {
		return err
	}

	if err = pbblob.WriteAll(ctx, bucket, InfoPlistName, patched, &blob.WriterOptions{BeforeWrite: p.BeforeWrite}); err != nil {
		return postbuild.KindError(fmt.Errorf("write build output %s: %w", dir, err), postbuild.WriteError)
	}

	log.Info("patched manifest", "digest", digest.FromBytes(patched).String())

	return nil
}

// PatchInfoPlist sets UsageDescriptions on the root dictionary of the
// property list b and re-encodes it in the format it was read in.
func PatchInfoPlist(b []byte) ([]byte, error) {
	dict, format, err := decodeRoot(b)
	if err != nil {
		return nil, err
	}

	for _, ud := range UsageDescriptions {
		dict[ud.Key] = ud.Value
	}

	// Tab-indented. Ignored by the binary format.
	patched, err := plist.MarshalIndent(dict, format, "\t")
	if err != nil {
		return nil, postbuild.KindError(fmt.Errorf("encode %s: %w", InfoPlistName, err), postbuild.WriteError)
	}

	return patched, nil
}

// decodeRoot decodes the property list b, which must have a dictionary
// at its root, returning that dictionary and the format b was in.
func decodeRoot(b []byte) (map[string]any, int, error) {
	var root any
	format, err := plist.Unmarshal(b, &root)
	if err != nil {
		return nil, 0, postbuild.KindError(fmt.Errorf("decode %s: %w", InfoPlistName, err), postbuild.ParseError)
	}

	dict, ok := root.(map[string]any)
	if !ok {
		return nil, 0, postbuild.KindError(fmt.Errorf("%s root is %T, not a dictionary", InfoPlistName, root), postbuild.StructureError)
	}

	return dict, format, nil
}
