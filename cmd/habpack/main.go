// Command habpack builds a telemetry packet from CLI-supplied readings
// and writes it to stdout as raw bytes, a KISS data frame, or an AX.25
// UI frame. It is a thin wrapper over the library packages: argument
// parsing and output selection only, no encoding logic of its own.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	telemetry "github.com/kd9tfa/hab-telemetry"
	"github.com/kd9tfa/hab-telemetry/coords"
	"github.com/kd9tfa/hab-telemetry/internal/telemetrylog"
	"github.com/kd9tfa/hab-telemetry/kiss"
	"github.com/kd9tfa/hab-telemetry/packet"
	"github.com/kd9tfa/hab-telemetry/station"
)

func main() {
	var (
		configPath   = pflag.StringP("config", "c", "", "station config YAML file")
		lat          = pflag.Float64("lat", 0, "latitude in decimal degrees")
		lon          = pflag.Float64("lon", 0, "longitude in decimal degrees")
		altitude     = pflag.Float64("altitude", 0, "altitude in meters")
		voltage      = pflag.Int16("voltage", 0, "battery voltage, raw sensor units")
		temperature  = pflag.Int16("temperature", 0, "external temperature, raw sensor units")
		internalTemp = pflag.Int16("internal-temp", 0, "internal temperature, raw sensor units")
		gpsLock      = pflag.Bool("gps-lock", false, "GPS lock acquired")
		counter      = pflag.Uint32("counter", 0, "packet counter")
		lonStatus    = pflag.Uint8("lon-status", 0, "opaque longitude status byte")
		format       = pflag.StringP("format", "f", "raw", "output format: raw, kiss, ax25")
		kissPort     = pflag.Uint8("kiss-port", 0, "KISS port nibble")
		debug        = pflag.BoolP("debug", "d", false, "enable debug logging")
	)
	pflag.Parse()
	telemetrylog.SetDebug(*debug)

	cfg := station.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = station.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load config:", err)
			os.Exit(1)
		}
	}

	l, err := station.Build(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "build layout:", err)
		os.Exit(1)
	}

	blockLat, blockLon := coords.MakeStatusData(*lat, *lon, coords.StatusFlags{
		LatSign:   *lat < 0,
		LonSign:   *lon < 0,
		GPSLock:   *gpsLock,
		AltitudeM: *altitude,
	}, *lonStatus)

	readings := packet.Readings{
		StatusLatBlock: blockLat,
		StatusLonBlock: blockLon,
		Voltage:        *voltage,
		Temperature:    *temperature,
		InternalTemp:   *internalTemp,
		PacketCounter:  *counter,
		StationID:      stationIDBytes(cfg.Callsign),
	}

	full, err := telemetry.GeneratePacket(l, readings, cfg.NFec)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate packet:", err)
		os.Exit(1)
	}

	switch *format {
	case "raw":
		os.Stdout.Write(full)
	case "kiss":
		os.Stdout.Write(telemetry.KissEncode(*kissPort, kiss.SendDataFrame{Bytes: full}))
	case "ax25":
		frame, err := telemetry.BuildAPRSFrame(cfg, full)
		if err != nil {
			fmt.Fprintln(os.Stderr, "build aprs frame:", err)
			os.Exit(1)
		}
		os.Stdout.Write(frame)
	default:
		fmt.Fprintln(os.Stderr, "unknown format:", *format)
		os.Exit(1)
	}
}

func stationIDBytes(callsign string) [6]byte {
	var out [6]byte
	for i := 0; i < 6 && i < len(callsign); i++ {
		out[i] = callsign[i]
	}
	return out
}
