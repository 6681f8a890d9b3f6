// Command habunpack reads a telemetry packet from stdin (raw bytes or
// a KISS data frame), decodes it (applying skeleton repair and any
// caller-supplied erasure positions), and prints the resulting
// readings. It is a thin wrapper over the library packages.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	telemetry "github.com/kd9tfa/hab-telemetry"
	"github.com/kd9tfa/hab-telemetry/coords"
	"github.com/kd9tfa/hab-telemetry/internal/telemetrylog"
	"github.com/kd9tfa/hab-telemetry/kiss"
	"github.com/kd9tfa/hab-telemetry/station"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "", "station config YAML file")
		format     = pflag.StringP("format", "f", "raw", "input format: raw, kiss")
		erasures   = pflag.StringSlice("erasure", nil, "known erasure byte position (repeatable)")
		debug      = pflag.BoolP("debug", "d", false, "enable debug logging")
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

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read stdin:", err)
		os.Exit(1)
	}

	var full []byte
	switch *format {
	case "raw":
		full = raw
	case "kiss":
		msg, _, err := telemetry.KissDecode(raw)
		if err != nil {
			fmt.Fprintln(os.Stderr, "kiss decode:", err)
			os.Exit(1)
		}
		df, ok := msg.(kiss.SendDataFrame)
		if !ok {
			fmt.Fprintln(os.Stderr, "kiss frame does not carry a data frame")
			os.Exit(1)
		}
		full = df.Bytes
	default:
		fmt.Fprintln(os.Stderr, "unknown format:", *format)
		os.Exit(1)
	}

	erasurePositions, err := parseErasures(*erasures)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid --erasure:", err)
		os.Exit(1)
	}

	bare, err := telemetry.DecodePacket(l, full, erasurePositions)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decode packet:", err)
		os.Exit(1)
	}

	readings, err := telemetry.ValuesFromPacket(l, bare)
	if err != nil {
		fmt.Fprintln(os.Stderr, "values from packet:", err)
		os.Exit(1)
	}

	lat, lon, flags, lonStatus := coords.UnpackStatusBlocks(readings.StatusLatBlock, readings.StatusLonBlock)

	fmt.Printf("lat:            %.6f\n", lat)
	fmt.Printf("lon:            %.6f\n", lon)
	fmt.Printf("altitude:       %.0f m\n", flags.AltitudeM)
	fmt.Printf("gps lock:       %v\n", flags.GPSLock)
	fmt.Printf("voltage:        %d\n", readings.Voltage)
	fmt.Printf("temperature:    %d\n", readings.Temperature)
	fmt.Printf("internal temp:  %d\n", readings.InternalTemp)
	fmt.Printf("packet counter: %d\n", readings.PacketCounter)
	fmt.Printf("station id:     %s\n", string(readings.StationID[:]))
	fmt.Printf("lon status:     0x%02X\n", lonStatus)
}

func parseErasures(raw []string) ([]int, error) {
	out := make([]int, 0, len(raw))
	for _, s := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
