package settings

import (
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// FaviconPath is the built-in favicon, resolved inside Options.AssetDir.
const FaviconPath = "favicon.png"

// mdBaseDirUnset is the markdown base directory default, replaced by the
// normalisation directory.
const mdBaseDirUnset = "."

// Source represents where an option value came from.
type Source string

const (
	// SourceDefault represents a built-in default value
	SourceDefault Source = "default"
	// SourceTOML represents the [extra.ford] table of fpm.toml
	SourceTOML Source = "toml"
	// SourceMarkdown represents the project file front-matter
	SourceMarkdown Source = "markdown"
	// SourceCLI represents command-line overrides
	SourceCLI Source = "cli"
)

// Origin distinguishes untouched defaults from resolved defaults and user values.
type Origin uint8

const (
	// OriginUnset means the option still holds its built-in default.
	OriginUnset Origin = iota
	// OriginDefault means the built-in default was resolved to a concrete value.
	OriginDefault
	// OriginUser means some source supplied the value.
	OriginUser
)

func (o Origin) String() string {
	switch o {
	case OriginUnset:
		return "unset"
	case OriginDefault:
		return "default"
	case OriginUser:
		return "user"
	}
	return "Origin(" + strconv.Itoa(int(o)) + ")"
}

// Options carries host-derived defaults and the collaborators used while loading.
type Options struct {
	// Parallel is the default for the "parallel" option.
	Parallel int
	// Year is the default for the "year" option.
	Year string
	// AssetDir holds the files bundled with the tool, such as the favicon.
	AssetDir string
	// Logger receives non-fatal warnings. The zero value discards them.
	Logger zerolog.Logger
	// Meta splits project text into metadata and body. Nil uses MetaPreprocessor.
	Meta MetadataExtractor
	// Includes resolves deprecated include directives. Nil uses FileIncluder.
	Includes IncludeResolver
}

// DefaultOptions probes the host for CPU count, current year and asset location.
func DefaultOptions() Options {
	return Options{
		Parallel: runtime.NumCPU(),
		Year:     strconv.Itoa(time.Now().Year()),
		AssetDir: defaultAssetDir(),
		Logger:   zerolog.Nop(),
	}
}

func defaultAssetDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), "assets")
}

func (o Options) extractor() MetadataExtractor {
	if o.Meta == nil {
		return MetaPreprocessor{}
	}
	return o.Meta
}

func (o Options) includer() IncludeResolver {
	if o.Includes == nil {
		return FileIncluder{Logger: o.Logger}
	}
	return o.Includes
}

// ProjectSettings holds the settings of one documentation run.
type ProjectSettings struct {
	Alias              map[string]string `toml:"alias"`
	Author             string            `toml:"author"`
	AuthorDescription  string            `toml:"author_description"`
	AuthorPic          string            `toml:"author_pic"`
	Bitbucket          string            `toml:"bitbucket"`
	ColouredEdges      bool              `toml:"coloured_edges"`
	CopySubdir         []string          `toml:"copy_subdir"`
	CreationDate       string            `toml:"creation_date"`
	CSS                string            `toml:"css"`
	Dbg                bool              `toml:"dbg"`
	Display            []string          `toml:"display"`
	DocLicense         string            `toml:"doc_license"`
	Docmark            string            `toml:"docmark"`
	DocmarkAlt         string            `toml:"docmark_alt"`
	Email              string            `toml:"email"`
	Encoding           string            `toml:"encoding" validate:"required"`
	Exclude            []string          `toml:"exclude"`
	ExcludeDir         []string          `toml:"exclude_dir"`
	Extensions         []string          `toml:"extensions"`
	External           map[string]string `toml:"external"`
	Externalize        bool              `toml:"externalize"`
	ExtraFiletypes     []any             `toml:"extra_filetypes"`
	ExtraMods          []any             `toml:"extra_mods"`
	ExtraVartypes      []any             `toml:"extra_vartypes"`
	Facebook           string            `toml:"facebook"`
	Favicon            string            `toml:"favicon"`
	FixedExtensions    []string          `toml:"fixed_extensions"`
	FixedLengthLimit   bool              `toml:"fixed_length_limit"`
	Force              bool              `toml:"force"`
	FppExtensions      []string          `toml:"fpp_extensions"`
	Github             string            `toml:"github"`
	Gitlab             string            `toml:"gitlab"`
	GitterSidecar      string            `toml:"gitter_sidecar"`
	GooglePlus         string            `toml:"google_plus"`
	Graph              bool              `toml:"graph"`
	GraphDir           string            `toml:"graph_dir"`
	GraphMaxdepth      int               `toml:"graph_maxdepth" validate:"gte=0"`
	GraphMaxnodes      int               `toml:"graph_maxnodes" validate:"gte=0"`
	HideUndoc          bool              `toml:"hide_undoc"`
	InclSrc            bool              `toml:"incl_src"`
	Include            []string          `toml:"include"`
	License            string            `toml:"license"`
	Linkedin           string            `toml:"linkedin"`
	Lower              bool              `toml:"lower"`
	Macro              []any             `toml:"macro"`
	MathjaxConfig      string            `toml:"mathjax_config"`
	MaxFrontpageItems  int               `toml:"max_frontpage_items" validate:"gte=0"`
	MdBaseDir          string            `toml:"md_base_dir"`
	MdExtensions       []any             `toml:"md_extensions"`
	MediaDir           string            `toml:"media_dir"`
	OutputDir          string            `toml:"output_dir"`
	PageDir            string            `toml:"page_dir"`
	Parallel           int               `toml:"parallel" validate:"gte=0"`
	Predocmark         string            `toml:"predocmark"`
	PredocmarkAlt      string            `toml:"predocmark_alt"`
	Preprocess         bool              `toml:"preprocess"`
	Preprocessor       string            `toml:"preprocessor"`
	PrintCreationDate  bool              `toml:"print_creation_date"`
	PrivacyPolicyURL   string            `toml:"privacy_policy_url"`
	ProcInternals      bool              `toml:"proc_internals"`
	Project            string            `toml:"project"`
	ProjectBitbucket   string            `toml:"project_bitbucket"`
	ProjectDownload    string            `toml:"project_download"`
	ProjectGithub      string            `toml:"project_github"`
	ProjectGitlab      string            `toml:"project_gitlab"`
	ProjectSourceforge string            `toml:"project_sourceforge"`
	ProjectURL         string            `toml:"project_url"`
	ProjectWebsite     string            `toml:"project_website"`
	Quiet              bool              `toml:"quiet"`
	// Relative is derived: true iff ProjectURL is empty.
	Relative          bool     `toml:"relative"`
	Revision          string   `toml:"revision"`
	Search            bool     `toml:"search"`
	ShowProcParent    bool     `toml:"show_proc_parent"`
	Sort              string   `toml:"sort" validate:"oneof=src alpha permission permission-src permission-alpha type type-alpha"`
	Source            bool     `toml:"source"`
	SrcDir            []string `toml:"src_dir"`
	Summary           string   `toml:"summary"`
	TermsOfServiceURL string   `toml:"terms_of_service_url"`
	Twitter           string   `toml:"twitter"`
	Version           string   `toml:"version"`
	Warn              bool     `toml:"warn"`
	Website           string   `toml:"website"`
	Year              string   `toml:"year"`

	sources  map[string]Source
	resolved map[string]bool
	assetDir string
	log      zerolog.Logger
}

// DefaultProjectSettings returns the built-in defaults, with host-derived values
// taken from opts.
func DefaultProjectSettings(opts Options) ProjectSettings {
	return ProjectSettings{
		Alias:             map[string]string{},
		CopySubdir:        []string{},
		CreationDate:      "%Y-%m-%dT%H:%M:%S.%f%z",
		Dbg:               true,
		Display:           []string{"public", "protected"},
		Docmark:           "!",
		DocmarkAlt:        "*",
		Encoding:          "utf-8",
		Exclude:           []string{},
		ExcludeDir:        []string{},
		Extensions:        []string{"f90", "f95", "f03", "f08", "f15"},
		External:          map[string]string{},
		ExtraFiletypes:    []any{},
		ExtraMods:         []any{},
		ExtraVartypes:     []any{},
		Favicon:           FaviconPath,
		FixedExtensions:   []string{"f", "for", "F", "FOR"},
		FixedLengthLimit:  true,
		FppExtensions:     []string{"F90", "F95", "F03", "F08", "F15", "F", "FOR"},
		GraphMaxdepth:     10000,
		GraphMaxnodes:     1000000000,
		InclSrc:           true,
		Include:           []string{},
		Macro:             []any{},
		MaxFrontpageItems: 10,
		MdBaseDir:         mdBaseDirUnset,
		MdExtensions:      []any{},
		OutputDir:         "./doc",
		Parallel:          opts.Parallel,
		Predocmark:        ">",
		PredocmarkAlt:     "|",
		Preprocess:        true,
		Preprocessor:      "cpp -traditional-cpp -E -D__GFORTRAN__",
		Project:           "Fortran Program",
		Relative:          true,
		Search:            true,
		Sort:              "src",
		SrcDir:            []string{"./src"},
		Year:              opts.Year,

		sources:  map[string]Source{},
		resolved: map[string]bool{},
		assetDir: opts.AssetDir,
		log:      opts.Logger,
	}
}

// Clone returns a deep copy of the settings.
func (s ProjectSettings) Clone() ProjectSettings {
	out := s
	out.Alias = maps.Clone(s.Alias)
	out.CopySubdir = slices.Clone(s.CopySubdir)
	out.Display = slices.Clone(s.Display)
	out.Exclude = slices.Clone(s.Exclude)
	out.ExcludeDir = slices.Clone(s.ExcludeDir)
	out.Extensions = slices.Clone(s.Extensions)
	out.External = maps.Clone(s.External)
	out.ExtraFiletypes = slices.Clone(s.ExtraFiletypes)
	out.ExtraMods = slices.Clone(s.ExtraMods)
	out.ExtraVartypes = slices.Clone(s.ExtraVartypes)
	out.FixedExtensions = slices.Clone(s.FixedExtensions)
	out.FppExtensions = slices.Clone(s.FppExtensions)
	out.Include = slices.Clone(s.Include)
	out.Macro = slices.Clone(s.Macro)
	out.MdExtensions = slices.Clone(s.MdExtensions)
	out.SrcDir = slices.Clone(s.SrcDir)
	out.sources = maps.Clone(s.sources)
	out.resolved = maps.Clone(s.resolved)
	if out.sources == nil {
		out.sources = map[string]Source{}
	}
	if out.resolved == nil {
		out.resolved = map[string]bool{}
	}
	return out
}

// Get returns the value of an option by name. The derived "relative" option is
// readable too.
func (s ProjectSettings) Get(name string) (any, bool) {
	m, err := toMap(s)
	if err != nil {
		return nil, false
	}
	v, ok := m[name]
	return v, ok
}

// SourceOf reports which source supplied an option.
func (s ProjectSettings) SourceOf(name string) Source {
	if src, ok := s.sources[name]; ok {
		return src
	}
	return SourceDefault
}

// OriginOf reports whether an option is an untouched default, a resolved default
// or a user value.
func (s ProjectSettings) OriginOf(name string) Origin {
	if _, ok := s.sources[name]; ok {
		return OriginUser
	}
	if s.resolved[name] {
		return OriginDefault
	}
	return OriginUnset
}

func (s *ProjectSettings) markSources(values map[string]any, src Source) {
	for name := range values {
		s.sources[name] = src
	}
}
