package flow

// Answer vocabularies for the five-step assessment. Values are stored
// verbatim, so they double as the persisted enum strings.

// PainZoneOther marks the free-text zone choice.
const PainZoneOther = "altro"

// PainZones lists the selectable pain zones.
var PainZones = []string{"schiena", "collo", "spalla", "ginocchio", "caviglia", PainZoneOther}

// Durations lists how long the pain has been present.
var Durations = []string{"meno_1_settimana", "1_4_settimane", "1_3_mesi", "piu_3_mesi"}

// Causes lists the likely pain origin.
var Causes = []string{"trauma", "postura", "sport", "non_so"}

const (
	// IntensityMin and IntensityMax bound the 1-10 pain scale.
	IntensityMin = 1
	IntensityMax = 10
	// IntensityDefault is the scale's starting position.
	IntensityDefault = 5
)

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// ValidPainZone reports whether v is a listed pain zone.
func ValidPainZone(v string) bool { return contains(PainZones, v) }

// ValidDuration reports whether v is a listed duration.
func ValidDuration(v string) bool { return contains(Durations, v) }

// ValidCause reports whether v is a listed cause.
func ValidCause(v string) bool { return contains(Causes, v) }

// ValidIntensity reports whether v is on the 1-10 scale.
func ValidIntensity(v int) bool { return v >= IntensityMin && v <= IntensityMax }
