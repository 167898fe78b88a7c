package semantic

// cudaFlags extends the GNU table with the nvcc driver spellings. nvcc leans
// on separate-token values far more than the GNU driver does.
var cudaFlags = gccFlags.Extend(map[string]FlagDefinition{
	"-dc":   {Category: CategoryCompileOnly},
	"-ptx":  {Category: CategoryCompileOnly},
	"-cubin": {Category: CategoryCompileOnly},
	"-fatbin": {Category: CategoryCompileOnly},
	"-cuda": {Category: CategoryPreprocessorOnly},

	"-ccbin":            {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StyleAttached},
	"--compiler-bindir": {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StyleAttached},
	"-Xcompiler":        {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StyleAttached},
	"-Xptxas":           {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StyleAttached},
	"-Xnvlink":          {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StyleAttached},
	"-gencode":          {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StyleAttached},
	"--generate-code":   {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StyleAttached},
	"-code":             {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StyleAttached},
	"-rdc":              {Category: CategoryIgnored, Arity: 1, Styles: StyleAttached},
	"-cudart":           {Category: CategoryIgnored, Arity: 1, Styles: StyleAttached},
	"-maxrregcount":     {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StyleAttached},

	// nvcc -arch takes a value, unlike the Apple driver spelling.
	"-arch": {Category: CategoryIgnored, Arity: 1, Styles: StyleSeparate | StyleAttached},

	"-V":               {Category: CategoryQuery},
	"--list-gpu-code":  {Category: CategoryQuery},
	"--list-gpu-arch":  {Category: CategoryQuery},
})

// NewCudaTool builds the nvcc recognizer. CUDA units plus the host C/C++
// suffixes count as sources.
func NewCudaTool(extraCompilers []string) Tool {
	return &gccTool{
		name:    "cuda",
		matcher: newNameMatcher([]string{"nvcc"}).withExtra(extraCompilers),
		flags:   cudaFlags,
		sources: union(cudaSources, ccFamilySources),
	}
}
