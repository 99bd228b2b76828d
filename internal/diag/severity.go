package diag

// Severity ranks how serious a diagnostic is. Ordered so that severity
// comparisons (HasErrors, HasWarnings) are simple threshold checks.
type Severity uint8

const (
	// SevInfo marks purely informational notes about a template.
	SevInfo Severity = iota
	// SevWarning marks suspicious template constructs that still generate.
	SevWarning
	// SevError marks diagnostics that fail tokenization, generation, or a
	// compatibility check.
	SevError
)

// String returns the upper-case label used in pretty diagnostic output.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
