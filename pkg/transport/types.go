package transport

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Resource is one of the API endpoint suffixes
type Resource string

const (
	ResourceLocations    Resource = "locations"
	ResourceConnections  Resource = "connections"
	ResourceStationboard Resource = "stationboard"
)

// TransportMode filters results by vehicle or service category
type TransportMode string

const (
	ModeHighSpeed    TransportMode = "ICE_TGV_RJ"
	ModeIntercity    TransportMode = "EC_IC"
	ModeInterRegio   TransportMode = "IR"
	ModeRegioExpress TransportMode = "RE_D"
	ModeShip         TransportMode = "Ship"
	ModeSBahn        TransportMode = "S_SN_R"
	ModeBus          TransportMode = "Bus"
	ModeCableway     TransportMode = "Cableway"
	ModeExtraBus     TransportMode = "ARZ_EXT"
	ModeTram         TransportMode = "Tramway_Underground"
)

var transportModes = []TransportMode{
	ModeHighSpeed,
	ModeIntercity,
	ModeInterRegio,
	ModeRegioExpress,
	ModeShip,
	ModeSBahn,
	ModeBus,
	ModeCableway,
	ModeExtraBus,
	ModeTram,
}

// TransportModes returns every known mode in declaration order
func TransportModes() []TransportMode {
	modes := make([]TransportMode, len(transportModes))
	copy(modes, transportModes)
	return modes
}

// WireName is the value sent as transportations[]. The declared name is
// lower-cased as a single token, underscores included.
func (m TransportMode) WireName() string {
	// Casers are stateful, so one per call
	return cases.Lower(language.Und).String(string(m))
}

func (m TransportMode) Valid() bool {
	for _, known := range transportModes {
		if m == known {
			return true
		}
	}
	return false
}

// ParseTransportMode accepts a declared name or wire name, case-insensitively
func ParseTransportMode(s string) (TransportMode, error) {
	for _, known := range transportModes {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown transport mode %q", s)
}

// LocationType narrows a free-text location search
type LocationType string

const (
	LocationAll     LocationType = "All"
	LocationStation LocationType = "Station"
	LocationPOI     LocationType = "POI"
	LocationAddress LocationType = "Address"
)

var locationTypes = []LocationType{LocationAll, LocationStation, LocationPOI, LocationAddress}

func (t LocationType) Valid() bool {
	for _, known := range locationTypes {
		if t == known {
			return true
		}
	}
	return false
}

func ParseLocationType(s string) (LocationType, error) {
	for _, known := range locationTypes {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown location type %q", s)
}

// AccessibilityLevel is the boarding assistance a connection must offer
type AccessibilityLevel string

const (
	AccessibilityIndependent    AccessibilityLevel = "Independent_Boarding"
	AccessibilityAssisted       AccessibilityLevel = "Assisted_Boarding"
	AccessibilityAdvancedNotice AccessibilityLevel = "Advanced_Notice"
)

var accessibilityLevels = []AccessibilityLevel{
	AccessibilityIndependent,
	AccessibilityAssisted,
	AccessibilityAdvancedNotice,
}

func (a AccessibilityLevel) Valid() bool {
	for _, known := range accessibilityLevels {
		if a == known {
			return true
		}
	}
	return false
}

func ParseAccessibilityLevel(s string) (AccessibilityLevel, error) {
	for _, known := range accessibilityLevels {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown accessibility level %q", s)
}
