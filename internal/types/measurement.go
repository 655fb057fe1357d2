package types

// MeasurementPreference is the user-facing setting for ingredient units.
// PreferenceSystem defers to the client's region and is stored unresolved.
type MeasurementPreference string

const (
	PreferenceSystem   MeasurementPreference = "system"
	PreferenceMetric   MeasurementPreference = "metric"
	PreferenceImperial MeasurementPreference = "imperial"
)

// Valid reports whether p is one of the known preference values.
func (p MeasurementPreference) Valid() bool {
	switch p {
	case PreferenceSystem, PreferenceMetric, PreferenceImperial:
		return true
	}
	return false
}

// MeasurementSystem is a resolved unit system, after any "system" preference
// has been mapped to a concrete choice.
type MeasurementSystem string

const (
	SystemMetric   MeasurementSystem = "metric"
	SystemImperial MeasurementSystem = "imperial"
)

// imperialRegions are the ISO country codes that customarily use US units.
var imperialRegions = map[string]bool{
	"US": true,
	"LR": true,
	"MM": true,
}

// ResolveSystem maps a preference to a concrete system. The region code is
// only consulted for PreferenceSystem; everything else resolves to itself.
func ResolveSystem(pref MeasurementPreference, region string) MeasurementSystem {
	switch pref {
	case PreferenceMetric:
		return SystemMetric
	case PreferenceImperial:
		return SystemImperial
	default:
		if imperialRegions[region] {
			return SystemImperial
		}
		return SystemMetric
	}
}
