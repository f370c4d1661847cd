package analyzer

// Kind identifies one of the analysis operations the analyzer exposes. It is
// a closed set; adding a kind means adding an operation, its result type, and
// its pipeline.
type Kind string

const (
	KindComprehensive Kind = "comprehensive"
	KindSearch        Kind = "search"
	KindTracking      Kind = "tracking"
	KindSummary       Kind = "summary"
	KindStructure     Kind = "structure"
	KindCompliance    Kind = "compliance"
)

// Valid reports whether k names a known analysis kind.
func (k Kind) Valid() bool {
	switch k {
	case KindComprehensive, KindSearch, KindTracking, KindSummary, KindStructure, KindCompliance:
		return true
	}
	return false
}
