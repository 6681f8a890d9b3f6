// Package packeterr defines the sentinel error values returned across the
// packet-layout, Reed-Solomon, AX.25, and KISS packages.
//
// Every value here is a normal error value a caller can check with
// errors.Is. Layout mismatches are reported by layout.Build (the caller
// misconfigured the block table), and also by rscodec.Encode and
// packet.ValuesFromPacket when a message length does not fit.
package packeterr

import "errors"

var (
	// ErrLayoutMismatch means a block configuration's sizes do not sum to
	// the configured bare message length.
	ErrLayoutMismatch = errors.New("layout: block sizes do not sum to configured message length")

	// ErrOutOfRange means a coordinate or altitude value fell outside the
	// configured input interval. No function in this module returns it:
	// debug builds panic with a formatted message (see coords_debug.go),
	// and release builds clamp the value silently.
	ErrOutOfRange = errors.New("coordinate: value outside configured input interval")

	// ErrDecodeUncorrectable means Reed-Solomon decode, after skeleton
	// repair and any caller-supplied erasures, could not recover the bare
	// message.
	ErrDecodeUncorrectable = errors.New("rs: received message is uncorrectable")

	// ErrInfoFieldOverflow means an AX.25 information field exceeded the
	// configured maximum.
	ErrInfoFieldOverflow = errors.New("ax25: information field exceeds configured maximum")

	// ErrInvalidCommand means a KISS frame's command nibble did not match
	// any recognized command.
	ErrInvalidCommand = errors.New("kiss: unrecognized command nibble")

	// ErrInvalidEscape means a KISS payload had a dangling FESC not
	// followed by TFEND or TFESC.
	ErrInvalidEscape = errors.New("kiss: dangling FESC not followed by TFEND/TFESC")
)
