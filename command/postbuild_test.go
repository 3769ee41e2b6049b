package command_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frantjc/postbuild/command"
	"github.com/frantjc/postbuild/ios"
	xos "github.com/frantjc/x/os"
	"gopkg.in/yaml.v3"
)

const (
	infoPlist = `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>CFBundleName</key>
	<string>App</string>
</dict>
</plist>
`
)

func TestPostBuild(t *testing.T) {
	var (
		ctx  = context.Background()
		dirs = []string{t.TempDir(), t.TempDir()}
		out  = new(bytes.Buffer)
	)

	for _, dir := range dirs {
		if err := os.WriteFile(filepath.Join(dir, ios.InfoPlistName), []byte(infoPlist), 0644); err != nil {
			t.Fatal(err)
		}
	}

	cmd := command.NewPostBuild()
	cmd.SetArgs([]string{"ios", dirs[0], dirs[1], dirs[0]})
	cmd.SetOut(out)
	cmd.SetErr(out)

	if err := cmd.ExecuteContext(ctx); err != nil {
		t.Fatal(err)
	}

	for _, dir := range dirs {
		info, err := ios.ReadInfo(ctx, dir)
		if err != nil {
			t.Fatal(err)
		}

		if info.NSCameraUsageDescription != ios.CameraUsageDescription {
			t.Errorf("%s: expected camera usage description to be set", dir)
		}
	}

	cmd = command.NewPostBuild()
	cmd.SetArgs([]string{"info", dirs[0]})
	out.Reset()
	cmd.SetOut(out)

	if err := cmd.ExecuteContext(ctx); err != nil {
		t.Fatal(err)
	}

	info := &ios.Info{}
	if err := yaml.Unmarshal(out.Bytes(), info); err != nil {
		t.Fatal(err)
	}

	if info.CFBundleName != "App" || info.NSPhotoLibraryUsageDescription != ios.PhotoLibraryUsageDescription {
		t.Errorf("unexpected info %+v", info)
	}
}

func TestPostBuildUnknownPlatform(t *testing.T) {
	cmd := command.NewPostBuild()
	cmd.SetArgs([]string{"gamecube", t.TempDir()})
	cmd.SetOut(new(bytes.Buffer))

	if err := cmd.ExecuteContext(context.Background()); err == nil || !strings.Contains(err.Error(), "unknown platform") {
		t.Errorf("expected unknown platform error, got %v", err)
	}
}

func TestPostBuildOtherPlatform(t *testing.T) {
	cmd := command.NewPostBuild()
	cmd.SetArgs([]string{"android", filepath.Join(t.TempDir(), "missing")})
	cmd.SetOut(new(bytes.Buffer))

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Error(err)
	}
}

func TestPostBuildExitCode(t *testing.T) {
	var (
		missing = t.TempDir()
		array   = t.TempDir()
	)

	if err := os.WriteFile(filepath.Join(array, ios.InfoPlistName), []byte(`<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<array/>
</plist>
`), 0644); err != nil {
		t.Fatal(err)
	}

	for dir, expected := range map[string]int{
		missing: 2,
		array:   3,
	} {
		cmd := command.NewPostBuild()
		cmd.SetArgs([]string{"ios", dir})
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))

		if actual := xos.ErrorExitCode(cmd.ExecuteContext(context.Background())); actual != expected {
			t.Errorf("%s: expected exit code %d, got %d", dir, expected, actual)
		}
	}
}
