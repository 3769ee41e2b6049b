package command

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/frantjc/postbuild"
	"github.com/frantjc/postbuild/ios"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// NewPostBuild returns the root command for
// postbuild which acts as its CLI entrypoint.
func NewPostBuild() *cobra.Command {
	pipeline := new(postbuild.Pipeline).Register(ios.PostProcessBuild)

	cmd := &cobra.Command{
		Use:   "postbuild PLATFORM DIR...",
		Short: "Run post-build hooks against one or more build output directories",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, err := postbuild.ParsePlatform(args[0])
			if err != nil {
				return err
			}

			dirs, err := uniqueDirs(args[1:])
			if err != nil {
				return err
			}

			// Each directory is its own build output, so they
			// can be processed alongside one another.
			eg, ctx := errgroup.WithContext(cmd.Context())

			for _, dir := range dirs {
				eg.Go(func() error {
					return pipeline.PostProcessBuild(ctx, platform, dir)
				})
			}

			return eg.Wait()
		},
	}

	cmd.AddCommand(newInfo())

	return SetCommon(cmd, postbuild.SemVer())
}

func uniqueDirs(args []string) ([]string, error) {
	var (
		seen = map[string]bool{}
		dirs = []string{}
	)

	for _, arg := range args {
		dir, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}

		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	return dirs, nil
}

func newInfo() *cobra.Command {
	var (
		output string
		cmd    = &cobra.Command{
			Use:   "info DIR",
			Short: "Print the " + ios.InfoPlistName + " of an iOS build output",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				info, err := ios.ReadInfo(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				switch strings.ToLower(output) {
				case "yaml", "yml":
					enc := yaml.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent(2)
					if err := enc.Encode(info); err != nil {
						return err
					}

					return enc.Close()
				case "json":
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(info)
				}

				return fmt.Errorf("unsupported output %s", output)
			},
		}
	)

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format, one of yaml or json.")

	return cmd
}
