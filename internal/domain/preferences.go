package domain

// RemotePreference reflects how the user wants remote work treated.
// Per current policy it only ever influences scoring, never filtering.
type RemotePreference string

const (
	RemoteYes RemotePreference = "yes"
	RemoteNo  RemotePreference = "no"
	RemoteAny RemotePreference = "any"
)

// Preferences is the read-only search profile for one run. It is built by
// the wizard (plus resume skill extraction) before fetching starts and is
// never mutated afterwards.
type Preferences struct {
	WantedKeywords []string
	RejectKeywords []string
	ResumeSkills   []string

	Remote             RemotePreference
	MinStipend         int
	MaxPostAgeDays     int
	MaxResults         int
	PreferredLocations []string
}
