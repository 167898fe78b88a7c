package semantic

// crayFlags describes the Cray Fortran front end (ftn/crayftn). It follows
// the GNU driver for the common spellings plus the Cray-specific single
// letter option groups.
var crayFlags = gccFlags.Extend(map[string]FlagDefinition{
	// Enable/disable option groups: -e n, -en, -d n, -dn
	"-e": {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StylePrefixed},
	"-d": {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StylePrefixed},
	// Listing and message control
	"-h": {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StylePrefixed},
	"-r": {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StylePrefixed},
	"-s": {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StylePrefixed},
	// Module output directory
	"-J": {Category: CategoryIncludePath, Arity: 1, Styles: StyleSeparate | StylePrefixed},
	"-b": {Category: CategoryOutput, Arity: 1, Styles: StyleSeparate | StylePrefixed},
	"-V": {Category: CategoryQuery},
})

// NewCrayFtnTool builds the Cray Fortran front-end recognizer.
func NewCrayFtnTool(extraCompilers []string) Tool {
	return &gccTool{
		name:    "crayftn",
		matcher: newNameMatcher([]string{"ftn", "crayftn"}).withExtra(extraCompilers),
		flags:   crayFlags,
		sources: fortranSources,
	}
}
