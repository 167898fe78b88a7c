// -----------------------------------------------------------------------
// Flag Classification - per-family tables mapping flag syntax to meaning
// -----------------------------------------------------------------------

package semantic

import (
	"sort"
	"strings"
)

// FlagCategory is the semantic role of a command-line flag.
type FlagCategory int

const (
	// CategoryInput marks tokens naming an input source file.
	CategoryInput FlagCategory = iota
	// CategoryOutput marks the explicit output flag (-o).
	CategoryOutput
	// CategoryDefineMacro marks preprocessor macro definitions (-D, -U).
	CategoryDefineMacro
	// CategoryIncludePath marks header search path flags (-I, -isystem, ...).
	CategoryIncludePath
	// CategoryPreprocessorOnly marks flags that stop after preprocessing (-E, -M).
	CategoryPreprocessorOnly
	// CategoryCompileOnly marks flags that request compilation without linking (-c, -S).
	CategoryCompileOnly
	// CategoryLinkOnly marks flags that only matter at link time (-l, -L, -shared).
	CategoryLinkOnly
	// CategoryStandardVersion marks language-standard selection (-std=...).
	CategoryStandardVersion
	// CategoryDiagnostic marks warning and verbosity control (-W..., -v).
	CategoryDiagnostic
	// CategoryQuery marks no-op information queries (--version, --help).
	CategoryQuery
	// CategoryPassThrough marks dash-prefixed tokens absent from the table.
	// They never influence classification but are always replayed verbatim.
	CategoryPassThrough
	// CategoryIgnored marks recognized flags with no effect on classification.
	// Like pass-through flags they are preserved in the reconstructed arguments.
	CategoryIgnored
)

func (c FlagCategory) String() string {
	switch c {
	case CategoryInput:
		return "input"
	case CategoryOutput:
		return "output"
	case CategoryDefineMacro:
		return "define-macro"
	case CategoryIncludePath:
		return "include-path"
	case CategoryPreprocessorOnly:
		return "preprocessor-only"
	case CategoryCompileOnly:
		return "compile-only"
	case CategoryLinkOnly:
		return "link-only"
	case CategoryStandardVersion:
		return "standard-version"
	case CategoryDiagnostic:
		return "diagnostic"
	case CategoryQuery:
		return "query"
	case CategoryPassThrough:
		return "pass-through"
	case CategoryIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// ValueStyle is a bit set of the attachment styles a one-value flag accepts.
type ValueStyle uint8

const (
	// StyleSeparate takes the value as the following token: -I dir
	StyleSeparate ValueStyle = 1 << iota
	// StyleAttached takes the value after an equals sign: --sysroot=/opt
	StyleAttached
	// StylePrefixed takes the value concatenated in the same token: -Idir
	StylePrefixed
)

// FlagDefinition describes one flag spelling or prefix pattern.
type FlagDefinition struct {
	Category FlagCategory
	// Arity is 0 or 1; a one-value flag consumes its value per Styles.
	Arity int
	// Styles is empty for zero-arity flags. A zero-arity prefix entry matches
	// any token carrying the prefix and treats the remainder as part of the
	// flag spelling itself (-O2, -Wall).
	Styles ValueStyle
	// Prefix marks the spelling as a prefix pattern rather than an exact name.
	Prefix bool
}

// FlagsByName is one family's immutable flag classification table. Built once
// at startup and shared by reference across all recognitions of the family.
// Lookup resolves exact matches first, then the longest matching prefix.
type FlagsByName struct {
	exact    map[string]FlagDefinition
	prefixes []prefixEntry
}

type prefixEntry struct {
	name string
	def  FlagDefinition
}

// NewFlagsByName builds a table from a declarative flag list. The input map is
// copied; the table never changes afterwards.
func NewFlagsByName(defs map[string]FlagDefinition) *FlagsByName {
	t := &FlagsByName{
		exact: make(map[string]FlagDefinition, len(defs)),
	}
	for name, def := range defs {
		if def.Prefix {
			t.prefixes = append(t.prefixes, prefixEntry{name: name, def: def})
			continue
		}
		t.exact[name] = def
		// An exact spelling that accepts a concatenated value (-Idir, -lm)
		// also competes in prefix resolution.
		if def.Arity > 0 && def.Styles&StylePrefixed != 0 {
			t.prefixes = append(t.prefixes, prefixEntry{name: name, def: def})
		}
	}
	// Longest prefix first so a narrower pattern is never shadowed by a
	// broader one (-Wl, before -W).
	sort.Slice(t.prefixes, func(i, j int) bool {
		if len(t.prefixes[i].name) != len(t.prefixes[j].name) {
			return len(t.prefixes[i].name) > len(t.prefixes[j].name)
		}
		return t.prefixes[i].name < t.prefixes[j].name
	})
	return t
}

// Extend returns a new table containing the receiver's definitions overlaid
// with extra ones. Used by families that share a base table (clang on gcc).
func (t *FlagsByName) Extend(defs map[string]FlagDefinition) *FlagsByName {
	merged := make(map[string]FlagDefinition, len(t.exact)+len(t.prefixes)+len(defs))
	for name, def := range t.exact {
		merged[name] = def
	}
	for _, p := range t.prefixes {
		merged[p.name] = p.def
	}
	for name, def := range defs {
		merged[name] = def
	}
	return NewFlagsByName(merged)
}

// match is one resolved occurrence of a flag in an argument vector.
type match struct {
	// name is the canonical flag spelling from the table.
	name string
	def  FlagDefinition
	// value is the flag's value when Arity is 1 and one was present.
	value string
	// attachedValue reports that value traveled inside the flag token.
	attachedValue bool
	// needsSeparate reports that the value must come from the next token.
	needsSeparate bool
}

// Lookup resolves one token against the table. Exact spellings win, then an
// exact spelling before an '=' for attached-style flags, then the longest
// prefix pattern. Returns false for tokens the family does not define.
func (t *FlagsByName) Lookup(token string) (match, bool) {
	if def, ok := t.exact[token]; ok {
		m := match{name: token, def: def}
		if def.Arity > 0 {
			if def.Styles&StyleSeparate != 0 {
				m.needsSeparate = true
			}
			// A one-value flag spelled bare with no separate style has an
			// empty value; the parser reports it as malformed.
		}
		return m, true
	}
	if eq := strings.IndexByte(token, '='); eq > 0 {
		name := token[:eq]
		if def, ok := t.exact[name]; ok && def.Arity > 0 && def.Styles&StyleAttached != 0 {
			return match{name: name, def: def, value: token[eq+1:], attachedValue: true}, true
		}
	}
	for _, p := range t.prefixes {
		if !strings.HasPrefix(token, p.name) {
			continue
		}
		m := match{name: p.name, def: p.def}
		rest := token[len(p.name):]
		if p.def.Arity > 0 {
			switch {
			case rest != "" && p.def.Styles&StyleAttached != 0 && rest[0] == '=':
				m.value = rest[1:]
				m.attachedValue = true
			case rest != "" && p.def.Styles&StylePrefixed != 0:
				m.value = rest
				m.attachedValue = true
			case rest == "" && p.def.Styles&StyleSeparate != 0:
				m.needsSeparate = true
			default:
				// Prefix matched but the remainder does not fit any declared
				// attachment style; not a match for this entry.
				continue
			}
		}
		return m, true
	}
	return match{}, false
}
