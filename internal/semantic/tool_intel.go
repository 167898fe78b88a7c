package semantic

// intelFlags extends the GNU table with the Intel driver spellings shared by
// the classic (icc/ifort) and oneAPI (icx/ifx) front ends.
var intelFlags = gccFlags.Extend(map[string]FlagDefinition{
	"-qopenmp":        {Category: CategoryIgnored},
	"-qopenmp-simd":   {Category: CategoryIgnored},
	"-qmkl":           {Category: CategoryIgnored, Arity: 1, Styles: StyleAttached},
	"-qopt-report":    {Category: CategoryIgnored, Arity: 1, Styles: StyleAttached},
	"-fp-model":       {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StyleAttached},
	"-module":         {Category: CategoryIncludePath, Arity: 1, Styles: StyleSeparate},
	"-gen-interfaces": {Category: CategoryIgnored},
	"-ipo":            {Category: CategoryIgnored},
	"-diag-disable":   {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StyleAttached},
	"-logo":           {Category: CategoryQuery},
	"-V":              {Category: CategoryQuery},
})

// NewIntelTool builds the Intel compiler recognizer covering both the C/C++
// and Fortran drivers; sources from either language family are accepted.
func NewIntelTool(extraCompilers []string) Tool {
	return &gccTool{
		name:    "intel",
		matcher: newNameMatcher([]string{"icc", "icpc", "icx", "icpx", "ifort", "ifx"}).withExtra(extraCompilers),
		flags:   intelFlags,
		sources: union(ccFamilySources, fortranSources),
	}
}
