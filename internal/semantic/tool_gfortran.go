package semantic

// gfortranNamePattern matches gfortran, versioned and cross-prefixed
// spellings, and the historic g77 driver.
const gfortranNamePattern = `^([a-z0-9_]+(-[a-z0-9_.]+)*-)?(gfortran|g77)(-[0-9]+(\.[0-9]+)*)?$`

// gfortranFlags adds the Fortran-specific driver spellings to the GNU table.
var gfortranFlags = gccFlags.Extend(map[string]FlagDefinition{
	// Module output directory; also a search path for .mod files.
	"-J":            {Category: CategoryIncludePath, Arity: 1, Styles: StyleSeparate | StylePrefixed},
	"-cpp":          {Category: CategoryIgnored},
	"-nocpp":        {Category: CategoryIgnored},
	"-ffree-form":   {Category: CategoryIgnored},
	"-ffixed-form":  {Category: CategoryIgnored},
	"-fopenmp":      {Category: CategoryIgnored},
	"-fno-underscoring": {Category: CategoryIgnored},
})

// NewGfortranTool builds the GNU Fortran recognizer. It parses with the GNU
// table and discovers sources by the Fortran suffix set.
func NewGfortranTool(extraCompilers []string) Tool {
	return &gccTool{
		name:    "gfortran",
		matcher: newNameMatcher([]string{"gfortran", "g77"}, gfortranNamePattern).withExtra(extraCompilers),
		flags:   gfortranFlags,
		sources: union(fortranSources, ccFamilySources),
	}
}
