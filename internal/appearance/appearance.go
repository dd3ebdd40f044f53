package appearance

// Appearance is the OS-level light/dark preference.
type Appearance int

const (
	// Undetermined means the preference could not be read. Callers treat it
	// as "change nothing".
	Undetermined Appearance = iota
	Dark
	Light
)

// String returns the lowercase name used in logs and CLI output.
func (a Appearance) String() string {
	switch a {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return "undetermined"
	}
}
