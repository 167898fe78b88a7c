// -----------------------------------------------------------------------
// GCC family recognizer - the reference flag table for the GNU driver syntax
// -----------------------------------------------------------------------

package semantic

import (
	"github.com/ternarybob/agnosco/internal/models"
)

// gccNamePattern matches versioned and cross-prefixed spellings such as
// gcc-12, g++-10.2 and arm-linux-gnueabi-gcc.
const gccNamePattern = `^([a-z0-9_]+(-[a-z0-9_.]+)*-)?(g?cc|[gc]\+\+)(-[0-9]+(\.[0-9]+)*)?$`

// gccFlags is the GNU driver flag classification: one declarative tuple per
// spelling or prefix. Built once; Clang, the Fortran front ends and the
// wrappers all derive from it.
var gccFlags = NewFlagsByName(map[string]FlagDefinition{
	// Output control
	"-c": {Category: CategoryCompileOnly},
	"-S": {Category: CategoryCompileOnly},
	"-E": {Category: CategoryPreprocessorOnly},
	"-o": {Category: CategoryOutput, Arity: 1, Styles: StyleSeparate | StylePrefixed},

	// Information queries; the driver does no work when these are present.
	"--version":                  {Category: CategoryQuery},
	"--help":                     {Category: CategoryQuery},
	"--target-help":              {Category: CategoryQuery},
	"-###":                       {Category: CategoryQuery},
	"-dumpversion":               {Category: CategoryQuery},
	"-dumpfullversion":           {Category: CategoryQuery},
	"-dumpmachine":               {Category: CategoryQuery},
	"-dumpspecs":                 {Category: CategoryQuery},
	"-print-search-dirs":         {Category: CategoryQuery},
	"-print-libgcc-file-name":    {Category: CategoryQuery},
	"-print-multi-directory":     {Category: CategoryQuery},
	"-print-multi-lib":           {Category: CategoryQuery},
	"-print-multi-os-directory":  {Category: CategoryQuery},
	"-print-sysroot":             {Category: CategoryQuery},
	"-print-sysroot-headers-suffix": {Category: CategoryQuery},
	"-print-prog-name":           {Category: CategoryQuery, Arity: 1, Styles: StyleAttached},
	"-print-file-name":           {Category: CategoryQuery, Arity: 1, Styles: StyleAttached},

	// Preprocessor
	"-D": {Category: CategoryDefineMacro, Arity: 1, Styles: StyleSeparate | StylePrefixed},
	"-U": {Category: CategoryDefineMacro, Arity: 1, Styles: StyleSeparate | StylePrefixed},
	"-A": {Category: CategoryDefineMacro, Arity: 1, Styles: StyleSeparate | StylePrefixed},

	// Header search
	"-I":                 {Category: CategoryIncludePath, Arity: 1, Styles: StyleSeparate | StylePrefixed},
	"-iquote":            {Category: CategoryIncludePath, Arity: 1, Styles: StyleSeparate},
	"-isystem":           {Category: CategoryIncludePath, Arity: 1, Styles: StyleSeparate},
	"-idirafter":         {Category: CategoryIncludePath, Arity: 1, Styles: StyleSeparate},
	"-iprefix":           {Category: CategoryIncludePath, Arity: 1, Styles: StyleSeparate},
	"-iwithprefix":       {Category: CategoryIncludePath, Arity: 1, Styles: StyleSeparate},
	"-iwithprefixbefore": {Category: CategoryIncludePath, Arity: 1, Styles: StyleSeparate},
	"-imultilib":         {Category: CategoryIncludePath, Arity: 1, Styles: StyleSeparate},
	"-isysroot":          {Category: CategoryIncludePath, Arity: 1, Styles: StyleSeparate},
	"-include":           {Category: CategoryIncludePath, Arity: 1, Styles: StyleSeparate},
	"-imacros":           {Category: CategoryIncludePath, Arity: 1, Styles: StyleSeparate},
	"--sysroot":          {Category: CategoryIncludePath, Arity: 1, Styles: StyleAttached | StyleSeparate},
	"-nostdinc":          {Category: CategoryIgnored},
	"-nostdinc++":        {Category: CategoryIgnored},

	// Dependency generation. -M and -MM imply preprocess-only like -E; the
	// -MD variants only add a side effect to a normal compile.
	"-M":   {Category: CategoryPreprocessorOnly},
	"-MM":  {Category: CategoryPreprocessorOnly},
	"-MD":  {Category: CategoryIgnored},
	"-MMD": {Category: CategoryIgnored},
	"-MG":  {Category: CategoryIgnored},
	"-MP":  {Category: CategoryIgnored},
	"-MF":  {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate},
	"-MT":  {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate},
	"-MQ":  {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate},

	// Language standard
	"-std":  {Category: CategoryStandardVersion, Arity: 1, Styles: StyleAttached},
	"--std": {Category: CategoryStandardVersion, Arity: 1, Styles: StyleAttached | StyleSeparate},
	"-ansi": {Category: CategoryStandardVersion},

	// Language override consumes a value but source discovery stays
	// extension-based.
	"-x": {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StylePrefixed},

	// Linking
	"-l":               {Category: CategoryLinkOnly, Arity: 1, Styles: StyleSeparate | StylePrefixed},
	"-L":               {Category: CategoryLinkOnly, Arity: 1, Styles: StyleSeparate | StylePrefixed},
	"-u":               {Category: CategoryLinkOnly, Arity: 1, Styles: StyleSeparate | StylePrefixed},
	"-z":               {Category: CategoryLinkOnly, Arity: 1, Styles: StyleSeparate},
	"-T":               {Category: CategoryLinkOnly, Arity: 1, Styles: StyleSeparate},
	"-Xlinker":         {Category: CategoryLinkOnly, Arity: 1, Styles: StyleSeparate},
	"-shared":          {Category: CategoryLinkOnly},
	"-static":          {Category: CategoryLinkOnly},
	"-static-libgcc":   {Category: CategoryLinkOnly},
	"-static-libstdc++": {Category: CategoryLinkOnly},
	"-pie":             {Category: CategoryLinkOnly},
	"-no-pie":          {Category: CategoryLinkOnly},
	"-rdynamic":        {Category: CategoryLinkOnly},
	"-nostdlib":        {Category: CategoryLinkOnly},
	"-nodefaultlibs":   {Category: CategoryLinkOnly},
	"-nostartfiles":    {Category: CategoryLinkOnly},
	"-Wl,":             {Category: CategoryLinkOnly, Arity: 1, Styles: StylePrefixed, Prefix: true},

	// Diagnostics and verbosity. -v compiles verbosely, it is not a query.
	"-v":               {Category: CategoryDiagnostic},
	"-w":               {Category: CategoryDiagnostic},
	"-pedantic":        {Category: CategoryDiagnostic},
	"-pedantic-errors": {Category: CategoryDiagnostic},
	"-W":               {Category: CategoryDiagnostic, Prefix: true},
	"-Wa,":             {Category: CategoryIgnored, Arity: 1, Styles: StylePrefixed, Prefix: true},
	"-Wp,":             {Category: CategoryIgnored, Arity: 1, Styles: StylePrefixed, Prefix: true},

	// Codegen families carried verbatim with no classification effect.
	"-O": {Category: CategoryIgnored, Prefix: true},
	"-g": {Category: CategoryIgnored, Prefix: true},
	"-f": {Category: CategoryIgnored, Prefix: true},
	"-m": {Category: CategoryIgnored, Prefix: true},

	// Assorted driver flags
	"-B":       {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StylePrefixed},
	"-specs":   {Category: CategoryIgnored, Arity: 1, Styles: StyleAttached},
	"--param":  {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StyleAttached},
	"-arch":    {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate},
	"-pthread": {Category: CategoryIgnored},
	"-pipe":    {Category: CategoryIgnored},
	"-P":       {Category: CategoryIgnored},
	"-C":       {Category: CategoryIgnored},
	"-CC":      {Category: CategoryIgnored},
	"-s":       {Category: CategoryIgnored},
	"-Xassembler":    {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate},
	"-Xpreprocessor": {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate},
})

// gccTool recognizes the GNU C/C++ driver and compatible spellings. The same
// struct backs the Clang and GNU Fortran recognizers with their own tables,
// alias sets and source suffixes.
type gccTool struct {
	name    string
	matcher *nameMatcher
	flags   *FlagsByName
	sources SuffixSet
}

// NewGccTool builds the GCC-like recognizer, optionally answering to extra
// operator-declared compiler names.
func NewGccTool(extraCompilers []string) Tool {
	return &gccTool{
		name:    "gcc",
		matcher: newNameMatcher([]string{"cc", "gcc", "g++", "c++"}, gccNamePattern).withExtra(extraCompilers),
		flags:   gccFlags,
		sources: ccFamilySources,
	}
}

func (t *gccTool) Name() string { return t.name }

func (t *gccTool) Matches(program string) bool {
	return t.matcher.matches(program)
}

func (t *gccTool) Recognize(exec models.Execution) Result {
	return classify(t.flags, t.sources, exec)
}
