package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mhaglund/locstat/internal/config"
	"github.com/mhaglund/locstat/internal/locstat"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Built-in defaults, also rendered into the starter config file.
const (
	defaultThreads = 0
	defaultDepth   = 0
	defaultMinSize = "0KB"
)

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.NewRootCommand().Execute()
}

// NewRootCommand builds the locstat root command.
func (c CLI) NewRootCommand() *cobra.Command {
	var (
		options    locstat.Options
		minSizeStr string
	)

	root := &cobra.Command{
		Use:   "locstat [flags] <path>",
		Short: "Count lines of code in a directory tree",
		Long: heredoc.Doc(`
			locstat walks a directory tree in parallel and counts the lines of
			every regular file, split into code (non-empty) and empty lines.

			By default a single combined total is reported. Use --all-types to
			break the statistics down by file extension instead.

			Symbolic links are never followed. Files that cannot be read, or
			that do not contain valid UTF-8, are skipped and never abort the
			run.
		`),
		Example: heredoc.Doc(`
			# Combined totals for a project
			locstat ./project

			# Per-extension breakdown using eight workers
			locstat -A -j 8 ./project

			# Only Go code, without test files
			locstat -A -x .go,'!_test.go' ./project

			# Skip version control and vendored trees, print a summary
			locstat -e '\.git/','vendor/' -s ./project
		`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		Version:       c.version,
		RunE: func(cmd *cobra.Command, args []string) error {
			options.Path = args[0]

			if err := applyFileConfig(cmd, &options, &minSizeStr); err != nil {
				return err
			}

			if options.Depth < 0 {
				return errors.New("depth cannot be negative")
			}

			if options.Threads < 0 {
				return errors.New("threads cannot be negative")
			}

			// Parse minSize string to bytes
			if minSizeStr != "" {
				size, err := humanize.ParseBytes(minSizeStr)
				if err != nil {
					return fmt.Errorf("invalid min-size: %w", err)
				}

				options.MinSize = int64(size) //nolint:gosec // Size conversion from humanize is safe
			}

			return run(cmd, options)
		},
	}

	flags := root.Flags()
	flags.BoolVarP(&options.PerType, "all-types", "A", false, "Break statistics down by file extension")
	flags.IntVarP(&options.Threads, "threads", "j", defaultThreads, "Number of walk workers (0 = one per CPU)")
	flags.StringSliceVarP(
		&options.Extensions,
		"ext",
		"x",
		[]string{},
		"File suffixes to include (e.g., .go,.md). Use '!' prefix to exclude (e.g., !.log,!_test.go)",
	)
	flags.StringSliceVarP(&options.Excludes, "exclude", "e", []string{}, "Regex patterns to exclude")
	flags.IntVarP(&options.Depth, "depth", "d", defaultDepth, "Maximum traversal depth (0=unlimited)")
	flags.StringVar(&minSizeStr, "min-size", defaultMinSize, "Minimum file size (e.g., 1KB)")
	flags.BoolVarP(&options.Summary, "summary", "s", false, "Print a run summary after the report")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.SortFlags = false

	root.AddCommand(c.newConfigCommand())

	return root
}

// applyFileConfig folds config-file values into the options for every flag
// the user did not set on the command line.
func applyFileConfig(cmd *cobra.Command, options *locstat.Options, minSizeStr *string) error {
	fileCfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	scan := fileCfg.Scan
	applyBoolConfig(cmd, "all-types", &options.PerType, scan.AllTypes)
	applyIntConfig(cmd, "threads", &options.Threads, scan.Threads)
	applyStringSliceConfig(cmd, "ext", &options.Extensions, scan.Ext)
	applyStringSliceConfig(cmd, "exclude", &options.Excludes, scan.Exclude)
	applyIntConfig(cmd, "depth", &options.Depth, scan.Depth)
	applyStringConfig(cmd, "min-size", minSizeStr, scan.MinSize)
	applyBoolConfig(cmd, "summary", &options.Summary, scan.Summary)

	return nil
}

func (c CLI) newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCommand,
	}
}

func runConfigCommand(cmd *cobra.Command, _ []string) error {
	path := config.DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}

		rendered, err := config.Render(config.Defaults{
			Threads: defaultThreads,
			Depth:   defaultDepth,
			MinSize: defaultMinSize,
		})
		if err != nil {
			return fmt.Errorf("failed to render config: %w", err)
		}

		if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}

	parts := strings.Fields(editor)

	edit := exec.Command(parts[0], append(parts[1:], path)...)
	edit.Stdin = cmd.InOrStdin()
	edit.Stdout = cmd.OutOrStdout()
	edit.Stderr = cmd.ErrOrStderr()

	if err := edit.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}

	if cmd.Flags().Changed(name) {
		return
	}

	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}

	if cmd.Flags().Changed(name) {
		return
	}

	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}

	if cmd.Flags().Changed(name) {
		return
	}

	*target = *value
}

func applyStringSliceConfig(cmd *cobra.Command, name string, target *[]string, value *[]string) {
	if value == nil {
		return
	}

	if cmd.Flags().Changed(name) {
		return
	}

	*target = append([]string(nil), (*value)...)
}
