package cli

import (
	"fmt"
	"os"

	"github.com/jakoblorz/go-gallery-manifest/internal/filesystem"
	"github.com/jakoblorz/go-gallery-manifest/internal/report"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &GenerateCommand{fs: fs}

	rootCmd := &cobra.Command{
		Use:   "gallery-manifest",
		Short: "Generate gallery manifests for a static website",
		Long: `Scans the asset tree of a static website and writes the JSON manifests
its front-end reads to render galleries:

  assets/Homepage/manifest.json         homepage images
  assets/projects/<folder>/index.json   project images without the cover
  assets/projects/<folder>/metadata.json  project metadata (created once)
  assets/projects/manifest.json         every project with its images

metadata.json is only written when it is missing or unreadable, unless
--force is given. Every other document is regenerated on each run.`,
		Example: `  # Run from the web root
  gallery-manifest

  # Point at another web root
  gallery-manifest --webroot ./site

  # Reset every metadata.json to the default template
  gallery-manifest --webroot ./site --force`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cmd.Run,
	}

	cmd.bindFlags(rootCmd)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs)

	if err := rootCmd.Execute(); err != nil {
		report.New(os.Stdout, os.Stderr).Error("%v", err)
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
