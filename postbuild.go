package postbuild

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Platform identifies the target of a finished build.
type Platform string

const (
	PlatformIOS                 Platform = "iOS"
	PlatformAndroid             Platform = "Android"
	PlatformStandaloneOSX       Platform = "StandaloneOSX"
	PlatformStandaloneWindows   Platform = "StandaloneWindows"
	PlatformStandaloneWindows64 Platform = "StandaloneWindows64"
	PlatformStandaloneLinux64   Platform = "StandaloneLinux64"
	PlatformWebGL               Platform = "WebGL"
	PlatformTVOS                Platform = "tvOS"
	PlatformVisionOS            Platform = "VisionOS"
)

var (
	Platforms = []Platform{
		PlatformIOS,
		PlatformAndroid,
		PlatformStandaloneOSX,
		PlatformStandaloneWindows,
		PlatformStandaloneWindows64,
		PlatformStandaloneLinux64,
		PlatformWebGL,
		PlatformTVOS,
		PlatformVisionOS,
	}

	platformAliases = map[string]Platform{
		"iphone": PlatformIOS,
	}
)

func (p Platform) String() string {
	return string(p)
}

// ParsePlatform case-insensitively matches s against the known
// Platforms and their aliases.
func ParsePlatform(s string) (Platform, error) {
	for _, p := range Platforms {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}

	if p, ok := platformAliases[strings.ToLower(s)]; ok {
		return p, nil
	}

	return "", fmt.Errorf("unknown platform %s", s)
}

// Hook is called after a build for platform has finished
// writing its output to dir.
type Hook func(ctx context.Context, platform Platform, dir string) error

// Pipeline is an ordered set of Hooks to run against a build output.
type Pipeline struct {
	hooks []Hook
}

// Register appends hooks to the Pipeline.
func (p *Pipeline) Register(hooks ...Hook) *Pipeline {
	p.hooks = append(p.hooks, hooks...)
	return p
}

// Len reports how many Hooks are registered.
func (p *Pipeline) Len() int {
	return len(p.hooks)
}

// PostProcessBuild runs each registered Hook in order, stopping at
// and returning the first error.
func (p *Pipeline) PostProcessBuild(ctx context.Context, platform Platform, dir string) error {
	log := LoggerFrom(ctx).WithValues("build", uuid.NewString(), "platform", platform.String(), "dir", dir)
	ctx = WithLogger(ctx, log)

	for i, hook := range p.hooks {
		log.V(1).Info("running hook", "index", i)

		if err := hook(ctx, platform, dir); err != nil {
			return err
		}
	}

	log.Info("post-processed build", "hooks", len(p.hooks))

	return nil
}
