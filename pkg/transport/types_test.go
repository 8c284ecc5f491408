package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportModeWireName(t *testing.T) {
	want := map[TransportMode]string{
		ModeHighSpeed:    "ice_tgv_rj",
		ModeIntercity:    "ec_ic",
		ModeInterRegio:   "ir",
		ModeRegioExpress: "re_d",
		ModeShip:         "ship",
		ModeSBahn:        "s_sn_r",
		ModeBus:          "bus",
		ModeCableway:     "cableway",
		ModeExtraBus:     "arz_ext",
		ModeTram:         "tramway_underground",
	}

	modes := TransportModes()
	require.Len(t, modes, len(want))
	for _, mode := range modes {
		assert.Equal(t, want[mode], mode.WireName())
		assert.True(t, mode.Valid())
	}
	assert.False(t, TransportMode("Hovercraft").Valid())
}

func TestParseEnums(t *testing.T) {
	mode, err := ParseTransportMode("tramway_underground")
	require.NoError(t, err)
	assert.Equal(t, ModeTram, mode)

	mode, err = ParseTransportMode("ICE_TGV_RJ")
	require.NoError(t, err)
	assert.Equal(t, ModeHighSpeed, mode)

	_, err = ParseTransportMode("rocket")
	assert.Error(t, err)

	locType, err := ParseLocationType("poi")
	require.NoError(t, err)
	assert.Equal(t, LocationPOI, locType)

	_, err = ParseLocationType("city")
	assert.Error(t, err)

	level, err := ParseAccessibilityLevel("advanced_notice")
	require.NoError(t, err)
	assert.Equal(t, AccessibilityAdvancedNotice, level)

	_, err = ParseAccessibilityLevel("none")
	assert.Error(t, err)
}

func TestTransportModesIsACopy(t *testing.T) {
	modes := TransportModes()
	modes[0] = "changed"
	assert.Equal(t, ModeHighSpeed, TransportModes()[0])
}
