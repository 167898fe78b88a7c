package semantic

// mpiFlags extends the GNU table with the option-passing and query flags the
// MPI compiler wrappers add on top of the underlying compiler syntax.
var mpiFlags = gccFlags.Extend(map[string]FlagDefinition{
	"-showme":          {Category: CategoryQuery},
	"-showme:compile":  {Category: CategoryQuery},
	"-showme:link":     {Category: CategoryQuery},
	"-showme:command":  {Category: CategoryQuery},
	"-show":            {Category: CategoryQuery},
	"-compile-info":    {Category: CategoryQuery},
	"-link-info":       {Category: CategoryQuery},
	"-cc":              {Category: CategoryIgnored, Arity: 1, Styles: StyleAttached},
	"-fc":              {Category: CategoryIgnored, Arity: 1, Styles: StyleAttached},
	"-cxx":             {Category: CategoryIgnored, Arity: 1, Styles: StyleAttached},
})

// NewMpiTool builds the recognizer for MPI compiler launchers. They parse as
// the compiler they wrap, so the whole language-family suffix union applies.
func NewMpiTool(extraCompilers []string) Tool {
	return &gccTool{
		name: "mpi",
		matcher: newNameMatcher([]string{
			"mpicc", "mpicxx", "mpic++", "mpiCC",
			"mpifort", "mpif77", "mpif90",
			"mpiicc", "mpiicpc", "mpiifort",
		}).withExtra(extraCompilers),
		flags:   mpiFlags,
		sources: union(ccFamilySources, fortranSources),
	}
}
