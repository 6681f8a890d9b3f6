package station_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kd9tfa/hab-telemetry/layout"
	"github.com/kd9tfa/hab-telemetry/station"
)

func Test_DefaultConfig_Build(t *testing.T) {
	cfg := station.DefaultConfig()
	l, err := station.Build(cfg)
	require.NoError(t, err)
	assert.Len(t, l.Blocks, len(layout.DefaultBlockConfig))
	assert.Equal(t, layout.DefaultNBare, l.NBare)
}

func Test_LoadConfig_OverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "station.yaml")
	require.NoError(t, os.WriteFile(path, []byte("callsign: N0CALL\nssid: 5\n"), 0o644))

	cfg, err := station.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "N0CALL", cfg.Callsign)
	assert.Equal(t, byte(5), cfg.SSID)
	assert.Equal(t, layout.DefaultNBare, cfg.NBare)
	assert.Len(t, cfg.DigipeaterPath, 2)
}

func Test_Config_Addresses(t *testing.T) {
	cfg := station.DefaultConfig()

	assert.Equal(t, "KD9TFA", cfg.SourceAddress().Callsign)
	assert.Equal(t, byte(11), cfg.SourceAddress().SSID)
	assert.Equal(t, "APRS", cfg.DestinationAddress().Callsign)
	assert.Len(t, cfg.DigipeaterAddresses(), 2)
	assert.Equal(t, "WIDE1", cfg.DigipeaterAddresses()[0].Callsign)
}

func Test_HemisphereRuneRoundTrip(t *testing.T) {
	assert.Equal(t, 'N', station.HemisphereToRune(station.HemisphereRuneToCoordconvHemisphere('N')))
	assert.Equal(t, 'S', station.HemisphereToRune(station.HemisphereRuneToCoordconvHemisphere('S')))
}
