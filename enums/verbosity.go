package enums

type Verbosity string

const (
	VerbosityInvalid Verbosity = ""

	// VerbosityMinimal renders only the essential fields: titles, ids,
	// comment bodies. Meant for the tightest context budgets.
	VerbosityMinimal Verbosity = "minimal"

	// VerbosityCompact is the default: single-line previews with score and
	// comment count shorthand.
	VerbosityCompact Verbosity = "compact"

	// VerbosityFull adds subreddit names, authors, post age, nested reply
	// structure and explanatory footers.
	VerbosityFull Verbosity = "full"
)

// ParseVerbosity returns the matching verbosity, or VerbosityInvalid when the
// value is not recognized.
func ParseVerbosity(s string) Verbosity {
	switch Verbosity(s) {
	case VerbosityMinimal, VerbosityCompact, VerbosityFull:
		return Verbosity(s)
	}
	return VerbosityInvalid
}

func Verbosities() []string {
	return []string{string(VerbosityMinimal), string(VerbosityCompact), string(VerbosityFull)}
}
