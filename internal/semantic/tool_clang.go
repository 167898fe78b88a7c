package semantic

// clangNamePattern matches clang, clang++ and versioned spellings such as
// clang-17 and x86_64-pc-linux-gnu-clang++.
const clangNamePattern = `^([a-z0-9_]+(-[a-z0-9_.]+)*-)?clang(\+\+)?(-[0-9]+(\.[0-9]+)*)?$`

// clangFlags extends the GNU table with spellings only the clang driver
// accepts. The parse routine is shared; only the table differs.
var clangFlags = gccFlags.Extend(map[string]FlagDefinition{
	"-version":       {Category: CategoryQuery},
	"--driver-mode":  {Category: CategoryIgnored, Arity: 1, Styles: StyleAttached},
	"-target":        {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate},
	"--target":       {Category: CategoryIgnored, Arity: 1, Styles: StyleAttached | StyleSeparate},
	"-Xclang":        {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate},
	"-fsyntax-only":  {Category: CategoryIgnored},
	"--analyze":      {Category: CategoryIgnored},
	"-index-store-path":       {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate},
	"--serialize-diagnostics": {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate},
	"-include-pch":            {Category: CategoryIncludePath, Arity: 1, Styles: StyleSeparate},
})

// NewClangTool builds the clang-like recognizer.
func NewClangTool(extraCompilers []string) Tool {
	return &gccTool{
		name:    "clang",
		matcher: newNameMatcher([]string{"clang", "clang++"}, clangNamePattern).withExtra(extraCompilers),
		flags:   clangFlags,
		sources: union(ccFamilySources, cudaSources),
	}
}
