// Package station holds the one layer of runtime configuration this
// system needs: the station callsign/SSID, destination and digipeater
// path, and the RS/layout sizing, loaded from YAML and folded into a
// layout.Layout once at startup.
//
// The core packet/frame pipeline otherwise takes no configuration at
// runtime (spec.md §5) — this package exists for the one real-world
// case where a rebuild-free config makes sense: a ground station or
// balloon flight computer whose callsign and digipeater path change
// between launches.
package station

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kd9tfa/hab-telemetry/ax25"
	"github.com/kd9tfa/hab-telemetry/layout"
	"github.com/kd9tfa/hab-telemetry/rscodec"
)

// DigiHop is one digipeater path entry.
type DigiHop struct {
	Callsign string `yaml:"callsign"`
	SSID     byte   `yaml:"ssid"`
}

// Config is the station's runtime configuration.
type Config struct {
	Callsign        string    `yaml:"callsign"`
	SSID            byte      `yaml:"ssid"`
	Destination     string    `yaml:"destination"`
	DestinationSSID byte      `yaml:"destination_ssid"`
	DigipeaterPath  []DigiHop `yaml:"digipeater_path"`
	NBare           int       `yaml:"n_bare"`
	NFec            int       `yaml:"n_fec"`
}

// DefaultConfig returns the literal example values from spec.md §6 and
// §8's scenarios: callsign KD9TFA-11, destination APRS, digipeater path
// WIDE1-1,WIDE2-1, N_bare=64, N_fec=16.
func DefaultConfig() Config {
	return Config{
		Callsign:        "KD9TFA",
		SSID:            11,
		Destination:     "APRS",
		DestinationSSID: 0,
		DigipeaterPath: []DigiHop{
			{Callsign: "WIDE1", SSID: 1},
			{Callsign: "WIDE2", SSID: 1},
		},
		NBare: layout.DefaultNBare,
		NFec:  rscodec.DefaultNFec,
	}
}

// LoadConfig reads a YAML file at path, starting from DefaultConfig so
// an omitted field keeps its default rather than zeroing out.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func paddedCallsign(callsign string) [6]byte {
	var out [6]byte
	upper := strings.ToUpper(callsign)
	for i := range out {
		if i < len(upper) {
			out[i] = upper[i]
		} else {
			out[i] = ' '
		}
	}
	return out
}

// Build folds cfg's callsign and N_bare into layout.DefaultBlockConfig,
// returning packeterr.ErrLayoutMismatch (via layout.Build) if they
// don't sum correctly.
func Build(cfg Config) (layout.Layout, error) {
	return layout.Build(layout.DefaultBlockConfig, cfg.NBare, paddedCallsign(cfg.Callsign))
}

// SourceAddress is cfg's station address, for AX.25 frame building.
func (c Config) SourceAddress() ax25.Address {
	return ax25.Address{Callsign: c.Callsign, SSID: c.SSID}
}

// DestinationAddress is cfg's AX.25 destination address.
func (c Config) DestinationAddress() ax25.Address {
	return ax25.Address{Callsign: c.Destination, SSID: c.DestinationSSID}
}

// DigipeaterAddresses is cfg's digipeater path as AX.25 addresses, in
// order.
func (c Config) DigipeaterAddresses() []ax25.Address {
	out := make([]ax25.Address, len(c.DigipeaterPath))
	for i, h := range c.DigipeaterPath {
		out[i] = ax25.Address{Callsign: h.Callsign, SSID: h.SSID}
	}
	return out
}
