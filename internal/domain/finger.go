package domain

type Classification string

const (
	ClassificationUserList         Classification = "user_list"
	ClassificationUserSearch       Classification = "user_search"
	ClassificationForwardingDenied Classification = "forwarding_denied"
	ClassificationInvalid          Classification = "invalid"
)

// Query holds the fields captured while classifying a raw request line.
// Verbose is accepted syntactically but never changes the rendered output.
type Query struct {
	Verbose  bool
	Username string
	Hosts    []string
}

// Profile is the single configured user: display name, the three profile
// resource paths, and whether section labels are rendered. Built once at
// startup and never mutated.
type Profile struct {
	Name        string
	ContactPath string
	ProjectPath string
	PlanPath    string
	InfoLabels  bool
}
