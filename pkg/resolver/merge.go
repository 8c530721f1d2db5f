package resolver

// MergeStrategy decides how a key is combined across an inheritance chain.
type MergeStrategy int

const (
	// Overwrite: the leaf-most profile defining the key wins outright.
	Overwrite MergeStrategy = iota

	// OverrideOrInherit: a non-empty descendant value replaces the
	// ancestor's wholly; an empty or absent value inherits the ancestor's
	// unchanged. Lists are never concatenated across levels.
	OverrideOrInherit
)

// keyStrategies maps profile keys to their merge strategy. Keys not listed
// use Overwrite. Adding a special-cased key is a table change only.
var keyStrategies = map[string]MergeStrategy{
	"compatible_printers":      OverrideOrInherit,
	"compatible_prints":        OverrideOrInherit,
	"default_materials":        OverrideOrInherit,
	"default_filament_profile": OverrideOrInherit,
	"default_print_profile":    OverrideOrInherit,
}

func strategyFor(key string) MergeStrategy {
	if s, ok := keyStrategies[key]; ok {
		return s
	}
	return Overwrite
}

// emptyValue reports whether a decoded JSON value counts as "absent" for
// OverrideOrInherit purposes.
func emptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	default:
		return false
	}
}
