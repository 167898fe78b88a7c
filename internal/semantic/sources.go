package semantic

import "path/filepath"

// SuffixSet is a family's set of known source-file extensions. Extension
// matching is case-sensitive: .c is C while .C is C++ to every compiler in
// the GCC lineage.
type SuffixSet map[string]struct{}

func newSuffixSet(exts ...string) SuffixSet {
	s := make(SuffixSet, len(exts))
	for _, ext := range exts {
		s[ext] = struct{}{}
	}
	return s
}

// Contains reports whether the path carries a known source extension.
func (s SuffixSet) Contains(path string) bool {
	_, ok := s[filepath.Ext(path)]
	return ok
}

// union merges suffix sets into a new one.
func union(sets ...SuffixSet) SuffixSet {
	merged := make(SuffixSet)
	for _, s := range sets {
		for ext := range s {
			merged[ext] = struct{}{}
		}
	}
	return merged
}

var (
	// cSources covers C and preprocessed C.
	cSources = newSuffixSet(".c", ".i")

	// cxxSources covers the C++ spellings plus preprocessed C++.
	cxxSources = newSuffixSet(".C", ".cc", ".CC", ".cp", ".cpp", ".CPP",
		".cxx", ".c++", ".C++", ".ii")

	// objcSources covers Objective-C and Objective-C++.
	objcSources = newSuffixSet(".m", ".mi", ".mm", ".M", ".mii")

	// asmSources covers assembler inputs compilers accept directly.
	asmSources = newSuffixSet(".s", ".S", ".sx")

	// fortranSources covers fixed and free form in both case spellings.
	fortranSources = newSuffixSet(
		".f", ".F", ".for", ".FOR", ".fpp", ".FPP", ".ftn", ".FTN",
		".f77", ".F77", ".f90", ".F90", ".f95", ".F95",
		".f03", ".F03", ".f08", ".F08")

	// cudaSources covers CUDA translation units.
	cudaSources = newSuffixSet(".cu")

	// ccFamilySources is what a GCC-like C/C++ driver treats as compilable.
	ccFamilySources = union(cSources, cxxSources, objcSources, asmSources)
)
