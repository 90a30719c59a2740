package settings

import "fmt"

// Kind is the semantic type of an option.
type Kind uint8

const (
	// KindString is a plain string.
	KindString Kind = iota
	// KindBool is a boolean flag.
	KindBool
	// KindInt is a base-10 integer.
	KindInt
	// KindPath is a filesystem path, resolved against a base directory.
	KindPath
	// KindStrings is an ordered sequence of strings.
	KindStrings
	// KindPaths is an ordered sequence of paths.
	KindPaths
	// KindMap is a string to string mapping with unique keys.
	KindMap
	// KindList is a free-form list for options with ad-hoc structure.
	KindList
)

var kindNames = [...]string{
	KindString:  "string",
	KindBool:    "bool",
	KindInt:     "int",
	KindPath:    "path",
	KindStrings: "[]string",
	KindPaths:   "[]path",
	KindMap:     "map[string]string",
	KindList:    "list",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsSequence reports whether values of this kind are ordered sequences.
func (k Kind) IsSequence() bool {
	return k == KindStrings || k == KindPaths || k == KindList
}

// Field declares one recognised option.
type Field struct {
	Name string
	Kind Kind
	// Optional fields also accept an absent (nil) value.
	Optional bool
}

// Schema is the set of options recognised by one settings record.
type Schema struct {
	name   string
	fields map[string]Field
	order  []string
}

func newSchema(name string, fields ...Field) *Schema {
	s := &Schema{
		name:   name,
		fields: make(map[string]Field, len(fields)),
		order:  make([]string, 0, len(fields)),
	}
	for _, f := range fields {
		if _, dup := s.fields[f.Name]; dup {
			panic(fmt.Sprintf("settings: option %q declared twice in %s schema", f.Name, name))
		}
		s.fields[f.Name] = f
		s.order = append(s.order, f.Name)
	}
	return s
}

// Name returns the schema name used in warnings.
func (s *Schema) Name() string {
	return s.name
}

// Lookup returns the declaration of an option.
func (s *Schema) Lookup(name string) (Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Fields returns every declared option in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.fields[name])
	}
	return out
}

func str(name string) Field      { return Field{Name: name, Kind: KindString} }
func optStr(name string) Field   { return Field{Name: name, Kind: KindString, Optional: true} }
func flag(name string) Field     { return Field{Name: name, Kind: KindBool} }
func num(name string) Field      { return Field{Name: name, Kind: KindInt} }
func optNum(name string) Field   { return Field{Name: name, Kind: KindInt, Optional: true} }
func file(name string) Field     { return Field{Name: name, Kind: KindPath} }
func optFile(name string) Field  { return Field{Name: name, Kind: KindPath, Optional: true} }
func strList(name string) Field  { return Field{Name: name, Kind: KindStrings} }
func fileList(name string) Field { return Field{Name: name, Kind: KindPaths} }
func dict(name string) Field     { return Field{Name: name, Kind: KindMap} }
func freeList(name string) Field { return Field{Name: name, Kind: KindList} }

// ProjectSchema declares every option accepted by ProjectSettings.
// The derived "relative" field is not settable and so is not declared.
var ProjectSchema = newSchema("project",
	dict("alias"),
	optStr("author"),
	optStr("author_description"),
	optStr("author_pic"),
	optStr("bitbucket"),
	flag("coloured_edges"),
	fileList("copy_subdir"),
	str("creation_date"),
	optFile("css"),
	flag("dbg"),
	strList("display"),
	str("doc_license"),
	str("docmark"),
	str("docmark_alt"),
	optStr("email"),
	str("encoding"),
	strList("exclude"),
	fileList("exclude_dir"),
	strList("extensions"),
	dict("external"),
	flag("externalize"),
	freeList("extra_filetypes"),
	freeList("extra_mods"),
	freeList("extra_vartypes"),
	optStr("facebook"),
	file("favicon"),
	strList("fixed_extensions"),
	flag("fixed_length_limit"),
	flag("force"),
	strList("fpp_extensions"),
	optStr("github"),
	optStr("gitlab"),
	optStr("gitter_sidecar"),
	optStr("google_plus"),
	flag("graph"),
	optFile("graph_dir"),
	num("graph_maxdepth"),
	num("graph_maxnodes"),
	flag("hide_undoc"),
	flag("incl_src"),
	fileList("include"),
	str("license"),
	optStr("linkedin"),
	flag("lower"),
	freeList("macro"),
	optFile("mathjax_config"),
	num("max_frontpage_items"),
	file("md_base_dir"),
	freeList("md_extensions"),
	optFile("media_dir"),
	file("output_dir"),
	optFile("page_dir"),
	num("parallel"),
	str("predocmark"),
	str("predocmark_alt"),
	flag("preprocess"),
	str("preprocessor"),
	flag("print_creation_date"),
	optStr("privacy_policy_url"),
	flag("proc_internals"),
	str("project"),
	optStr("project_bitbucket"),
	optStr("project_download"),
	optStr("project_github"),
	optStr("project_gitlab"),
	optStr("project_sourceforge"),
	str("project_url"),
	optStr("project_website"),
	flag("quiet"),
	optStr("revision"),
	flag("search"),
	flag("show_proc_parent"),
	str("sort"),
	flag("source"),
	fileList("src_dir"),
	optStr("summary"),
	optStr("terms_of_service_url"),
	optStr("twitter"),
	optStr("version"),
	flag("warn"),
	optStr("website"),
	str("year"),
)

// EntitySchema declares every option accepted by EntitySettings.
var EntitySchema = newSchema("entity",
	optStr("author"),
	optStr("category"),
	fileList("copy_subdir"),
	optStr("date"),
	flag("deprecated"),
	strList("display"),
	flag("graph"),
	num("graph_maxdepth"),
	num("graph_maxnodes"),
	optStr("license"),
	optNum("num_lines"),
	strList("ordered_subpage"),
	flag("proc_internals"),
	optStr("since"),
	flag("source"),
	optStr("summary"),
	optStr("title"),
	optStr("version"),
)
