package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/jakoblorz/go-gallery-manifest/internal/config"
	"github.com/jakoblorz/go-gallery-manifest/internal/filesystem"
	"github.com/jakoblorz/go-gallery-manifest/internal/manifest"
	"github.com/jakoblorz/go-gallery-manifest/internal/report"
	"github.com/spf13/cobra"
)

// GenerateCommand regenerates every manifest under a web root
type GenerateCommand struct {
	fs          filesystem.FileSystem
	webroot     string
	force       bool
	configPath  string
	assetsDir   string
	homepageDir string
	projectsDir string
	summary     bool
}

func (c *GenerateCommand) bindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&c.webroot, "webroot", ".", "Web root directory (contains assets/)")
	flags.BoolVar(&c.force, "force", false, "Rewrite existing metadata.json files with the default template")
	flags.StringVar(&c.configPath, "config", "", "Config file (default <webroot>/"+config.FileName+" when present)")
	flags.StringVar(&c.assetsDir, "assets-dir", "", "Assets directory relative to the web root (overrides config)")
	flags.StringVar(&c.homepageDir, "homepage-dir", "", "Homepage directory relative to the assets directory (overrides config)")
	flags.StringVar(&c.projectsDir, "projects-dir", "", "Projects directory relative to the assets directory (overrides config)")
	flags.BoolVar(&c.summary, "summary", true, "Print a summary table of the processed projects")
}

// Run executes the generate command
func (c *GenerateCommand) Run(cmd *cobra.Command, args []string) error {
	reporter := report.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	result, err := manifest.NewGenerator(c.fs, cfg, reporter).Run(c.webroot, c.force)
	if err != nil {
		return err
	}

	if c.summary {
		printSummary(reporter, result)
	}
	reporter.Print("\n" + reporter.Subtle("Done. Review the generated manifests and metadata.") + "\n")

	return nil
}

// loadConfig resolves the configuration: defaults, then the config file,
// then explicit flags.
func (c *GenerateCommand) loadConfig() (*config.Config, error) {
	path := c.configPath
	required := path != ""
	if !required {
		root, err := c.fs.Abs(c.webroot)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve web root %s: %w", c.webroot, err)
		}
		path = filepath.Join(root, config.FileName)
	}

	cfg, err := config.Load(c.fs, path, required)
	if err != nil {
		return nil, err
	}

	if c.assetsDir != "" {
		cfg.AssetsDir = c.assetsDir
	}
	if c.homepageDir != "" {
		cfg.HomepageDir = c.homepageDir
	}
	if c.projectsDir != "" {
		cfg.ProjectsDir = c.projectsDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func printSummary(reporter *report.Reporter, result *manifest.Result) {
	if result.Projects == nil || len(result.Projects.Outcomes) == 0 {
		return
	}

	rows := make([][]string, 0, len(result.Projects.Outcomes))
	for _, o := range result.Projects.Outcomes {
		rows = append(rows, []string{
			o.Folder,
			strconv.Itoa(o.Images),
			o.Cover,
			metadataColumn(o),
			statusColumn(o),
		})
	}

	table := report.RenderTable(
		[]string{"Folder", "Images", "Cover", "Metadata", "Status"},
		rows,
		[]report.Align{report.AlignLeft, report.AlignRight},
	)
	reporter.Print("\n" + table + "\n")
}

func metadataColumn(o manifest.ProjectOutcome) string {
	switch {
	case o.Skipped && o.Metadata == "":
		return "-"
	case o.MetadataWritten:
		return "written (was " + o.Metadata.String() + ")"
	default:
		return "kept"
	}
}

func statusColumn(o manifest.ProjectOutcome) string {
	switch {
	case o.Err != nil:
		return "failed"
	case o.Skipped:
		return "skipped (no images)"
	default:
		return "ok"
	}
}
