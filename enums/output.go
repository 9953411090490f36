package enums

type OutputKind string

const (
	OutputInvalid OutputKind = ""

	// OutputText renders results as human-readable text blocks.
	OutputText OutputKind = "text"

	// OutputJSON renders results as a single JSON document.
	OutputJSON OutputKind = "json"
)

// ParseOutputKind returns the matching output kind, or OutputInvalid when the
// value is not recognized.
func ParseOutputKind(s string) OutputKind {
	switch OutputKind(s) {
	case OutputText, OutputJSON:
		return OutputKind(s)
	}
	return OutputInvalid
}

func OutputKinds() []string {
	return []string{string(OutputText), string(OutputJSON)}
}
