// Package telemetrylog wraps github.com/charmbracelet/log with the few
// named call sites the packet lifecycle needs: assembly, RS
// encode/decode attempts and failures, and frame construction.
//
// The teacher carries charmbracelet/log as a direct dependency but
// never wires it to anything in src/ (its own packet lifecycle logging
// is a hand-rolled CSV writer in src/log.go, built around C interop
// that doesn't apply here). This package is that wiring: one
// package-level *log.Logger and a handful of one-line helpers, so call
// sites read like a terse log statement rather than an ad hoc
// fmt.Printf.
package telemetrylog

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "hab-telemetry",
})

// SetDebug raises or lowers the logger's level, mirroring the
// teacher's -d/--debug CLI flag idiom (atest.go, appserver.go).
func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

// PacketAssembled logs a successfully assembled bare message.
func PacketAssembled(nBare int, packetCounter uint32) {
	logger.Info("packet assembled", "n_bare", nBare, "counter", packetCounter)
}

// DecodeAttempt logs a decode attempt before it runs, including any
// caller-supplied erasure positions.
func DecodeAttempt(nTotal int, erasures []int) {
	logger.Debug("decode attempt", "n_total", nTotal, "erasures", erasures)
}

// DecodeFailed logs an uncorrectable decode.
func DecodeFailed(err error) {
	logger.Warn("decode failed", "err", err)
}

// FrameBuilt logs a successfully built AX.25 or KISS frame.
func FrameBuilt(kind string, length int) {
	logger.Info("frame built", "kind", kind, "bytes", length)
}
