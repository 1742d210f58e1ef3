package setting

import "time"

// Setting is one flat key/value configuration entry.
type Setting struct {
	ID        string
	Key       string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Policy keys and their defaults.
const (
	KeyOfficialCheckIn  = "officialCheckIn"
	KeyOfficialCheckOut = "officialCheckOut"

	DefaultOfficialCheckIn  = "09:00:00"
	DefaultOfficialCheckOut = "17:00:00"
)

// Policy holds the attendance classification thresholds, HH:MM:SS.
type Policy struct {
	OfficialCheckIn  string
	OfficialCheckOut string
}

// PolicyFromMap builds a Policy from a settings map, applying defaults for
// absent keys.
func PolicyFromMap(settings map[string]string) Policy {
	policy := Policy{
		OfficialCheckIn:  DefaultOfficialCheckIn,
		OfficialCheckOut: DefaultOfficialCheckOut,
	}
	if v, ok := settings[KeyOfficialCheckIn]; ok && v != "" {
		policy.OfficialCheckIn = v
	}
	if v, ok := settings[KeyOfficialCheckOut]; ok && v != "" {
		policy.OfficialCheckOut = v
	}
	return policy
}
