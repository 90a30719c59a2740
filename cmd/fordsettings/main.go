package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/settings"
)

// Version information (set via ldflags during build)
var Version = "dev"

func main() {
	setupLogging()

	if err := newRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("Command execution failed")
		os.Exit(1)
	}
}

// setupLogging configures zerolog for human-readable output on stderr
func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

type flags struct {
	srcDir      []string
	exclude     []string
	excludeDir  []string
	extensions  []string
	macro       []string
	outputDir   string
	pageDir     string
	css         string
	revision    string
	quiet       bool
	warn        bool
	force       bool
	debug       bool
	graph       bool
	externalize bool
	parallel    int

	format  string
	explain bool
	save    string
}

func newRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "fordsettings [project_file]",
		Short: "Show the settings a ford project resolves to",
		Long: `fordsettings loads the settings of a ford documentation project.

Settings come from the [extra.ford] table of fpm.toml next to the project file
when present, otherwise from the project file front-matter. Command line flags
take precedence over both.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectFile := "project.md"
			if len(args) == 1 {
				projectFile = args[0]
			}
			return run(cmd, f, projectFile)
		},
	}

	fs := cmd.Flags()
	fs.StringArrayVarP(&f.srcDir, "src_dir", "d", nil, "directory containing source code, may be repeated")
	fs.StringArrayVar(&f.exclude, "exclude", nil, "source file to exclude, may be repeated")
	fs.StringArrayVar(&f.excludeDir, "exclude_dir", nil, "directory whose contents are excluded, may be repeated")
	fs.StringArrayVarP(&f.extensions, "extensions", "e", nil, "file extension to read, may be repeated")
	fs.StringArrayVarP(&f.macro, "macro", "m", nil, "preprocessor macro, may be repeated")
	fs.StringVarP(&f.outputDir, "output_dir", "o", "", "directory for the generated documentation")
	fs.StringVarP(&f.pageDir, "page_dir", "p", "", "directory of extra pages")
	fs.StringVarP(&f.css, "css", "s", "", "custom style-sheet")
	fs.StringVarP(&f.revision, "revision", "r", "", "source code revision")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress normal output")
	fs.BoolVarP(&f.warn, "warn", "w", false, "print warnings")
	fs.BoolVarP(&f.force, "force", "f", false, "continue after fatal errors")
	fs.BoolVar(&f.debug, "debug", false, "show full tracebacks")
	fs.BoolVarP(&f.graph, "graph", "g", false, "generate dependency graphs")
	fs.BoolVar(&f.externalize, "externalize", false, "provide information about entities for external projects")
	fs.IntVar(&f.parallel, "parallel", 0, "number of parallel workers")

	fs.StringVar(&f.format, "format", string(settings.FormatTOML), "output format: toml, yaml or json")
	fs.BoolVar(&f.explain, "explain", false, "list the source and origin of every option")
	fs.StringVar(&f.save, "save", "", "write the resolved settings as an fpm.toml file")

	return cmd
}

func run(cmd *cobra.Command, f flags, projectFile string) error {
	format, err := settings.ParseFormat(f.format)
	if err != nil {
		return err
	}

	opts := settings.DefaultOptions()
	opts.Logger = log.Logger

	s, _, err := settings.NewBuilder().
		WithOptions(opts).
		WithDirectory(filepath.Dir(projectFile)).
		WithProjectFile(projectFile).
		WithOverrides(overrides(cmd, f)).
		Build()
	if err != nil {
		return err
	}

	if f.save != "" {
		if err := s.Save(f.save); err != nil {
			return err
		}
		log.Info().Str("path", f.save).Msg("settings saved")
	}

	if f.explain {
		_, err := fmt.Fprint(cmd.OutOrStdout(), s.Debug())
		return err
	}
	return s.Dump(cmd.OutOrStdout(), format)
}

// overrides collects the flags given explicitly on the command line.
func overrides(cmd *cobra.Command, f flags) map[string]any {
	fs := cmd.Flags()
	out := make(map[string]any)
	set := func(flag, option string, value any) {
		if fs.Changed(flag) {
			out[option] = value
		}
	}

	set("src_dir", "src_dir", f.srcDir)
	set("exclude", "exclude", f.exclude)
	set("exclude_dir", "exclude_dir", f.excludeDir)
	set("extensions", "extensions", f.extensions)
	set("macro", "macro", f.macro)
	set("output_dir", "output_dir", f.outputDir)
	set("page_dir", "page_dir", f.pageDir)
	set("css", "css", f.css)
	set("revision", "revision", f.revision)
	set("quiet", "quiet", f.quiet)
	set("warn", "warn", f.warn)
	set("force", "force", f.force)
	set("debug", "dbg", f.debug)
	set("graph", "graph", f.graph)
	set("externalize", "externalize", f.externalize)
	set("parallel", "parallel", f.parallel)
	return out
}
