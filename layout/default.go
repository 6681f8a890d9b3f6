package layout

// DefaultNBare is the default bare-message length used throughout this
// module's examples and tests: 64 bytes, matching spec.md's "typically
// 64".
const DefaultNBare = 64

// Block indices into DefaultBlockConfig, named for the reading each
// position carries. packet.Readings relies on this exact ordering.
const (
	IdxStatusLat = iota
	IdxStatusLon
	IdxVoltage
	IdxTemperature
	IdxInternalTemp
	IdxPacketCounter
	IdxStationID
)

// DefaultBlockConfig is the seven-block table used by the default
// telemetry readings: two 4-byte status blocks (latitude, carrying a
// coords.StatusFlags-packed status byte, and longitude, carrying an
// opaque caller-supplied status byte), three 16-bit
// sensor readings, one 32-bit packet counter, and a trailing 6-byte
// static station-ID slice whose label is never transmitted (its
// position is fixed by the layout itself, so repeating the label would
// be redundant).
//
// Sized to land exactly on DefaultNBare: 7+7+5+5+5+7+8 = 44 bytes of
// blocks, plus 10 bytes of start header+delimiter and 10 bytes of end
// header+delimiter = 64.
var DefaultBlockConfig = []BlockCfg{
	{Type: BYTES4, TransmitLabel: true},             // StatusLat
	{Type: BYTES4, TransmitLabel: true},              // StatusLon
	{Type: I16, TransmitLabel: true},                  // Voltage
	{Type: I16, TransmitLabel: true},                  // Temperature
	{Type: I16, TransmitLabel: true},                  // InternalTemp
	{Type: U32, TransmitLabel: true},                  // PacketCounter
	{Type: StaticSlice, TransmitLabel: false, StaticLen: 6}, // StationID
}

// DefaultCallsign is the example station callsign used by this
// module's default layout and test fixtures.
var DefaultCallsign = [6]byte{'K', 'D', '9', 'T', 'F', 'A'}

// Default builds the layout described by DefaultBlockConfig against
// DefaultNBare and DefaultCallsign. It cannot fail — the table is
// fixed — but returns an error to keep the same signature as Build.
func Default() (Layout, error) {
	return Build(DefaultBlockConfig, DefaultNBare, DefaultCallsign)
}
