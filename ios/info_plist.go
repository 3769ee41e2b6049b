package ios

import (
	"context"
	"fmt"

	"github.com/frantjc/postbuild"
	"github.com/frantjc/postbuild/internal/pbblob"
	"howett.net/plist"
)

const (
	InfoPlistName = "Info.plist"
)

// Info is a typed view of the keys of an Info.plist
// that are worth reporting after a build.
type Info struct {
	CFBundleDevelopmentRegion      string   `plist:"CFBundleDevelopmentRegion" json:"CFBundleDevelopmentRegion,omitempty" yaml:"CFBundleDevelopmentRegion,omitempty"`
	CFBundleDisplayName            string   `plist:"CFBundleDisplayName" json:"CFBundleDisplayName,omitempty" yaml:"CFBundleDisplayName,omitempty"`
	CFBundleExecutable             string   `plist:"CFBundleExecutable" json:"CFBundleExecutable,omitempty" yaml:"CFBundleExecutable,omitempty"`
	CFBundleIdentifier             string   `plist:"CFBundleIdentifier" json:"CFBundleIdentifier,omitempty" yaml:"CFBundleIdentifier,omitempty"`
	CFBundleName                   string   `plist:"CFBundleName" json:"CFBundleName,omitempty" yaml:"CFBundleName,omitempty"`
	CFBundlePackageType            string   `plist:"CFBundlePackageType" json:"CFBundlePackageType,omitempty" yaml:"CFBundlePackageType,omitempty"`
	CFBundleShortVersionString     string   `plist:"CFBundleShortVersionString" json:"CFBundleShortVersionString,omitempty" yaml:"CFBundleShortVersionString,omitempty"`
	CFBundleSupportedPlatforms     []string `plist:"CFBundleSupportedPlatforms" json:"CFBundleSupportedPlatforms,omitempty" yaml:"CFBundleSupportedPlatforms,omitempty"`
	CFBundleVersion                string   `plist:"CFBundleVersion" json:"CFBundleVersion,omitempty" yaml:"CFBundleVersion,omitempty"`
	NSCameraUsageDescription       string   `plist:"NSCameraUsageDescription" json:"NSCameraUsageDescription,omitempty" yaml:"NSCameraUsageDescription,omitempty"`
	NSPhotoLibraryUsageDescription string   `plist:"NSPhotoLibraryUsageDescription" json:"NSPhotoLibraryUsageDescription,omitempty" yaml:"NSPhotoLibraryUsageDescription,omitempty"`
}

// ReadInfo decodes the Info.plist at the top level of dir. It fails
// the same way InfoPlistPatcher does for a manifest it cannot patch.
func ReadInfo(ctx context.Context, dir string) (*Info, error) {
	bucket, err := pbblob.OpenDir(ctx, dir)
	if err != nil {
		return nil, postbuild.KindError(err, postbuild.ParseError)
	}
	defer bucket.Close()

	b, err := pbblob.ReadAll(ctx, bucket, InfoPlistName)
	if err != nil {
		return nil, postbuild.KindError(err, postbuild.ParseError)
	}

	if _, _, err = decodeRoot(b); err != nil {
		return nil, err
	}

	info := &Info{}
	if _, err = plist.Unmarshal(b, info); err != nil {
		return nil, postbuild.KindError(fmt.Errorf("decode %s: %w", InfoPlistName, err), postbuild.ParseError)
	}

	return info, nil
}
