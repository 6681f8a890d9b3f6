package coords

import "github.com/kd9tfa/hab-telemetry/byteutil"

// altitudeBucketMeters is the quantum of the 4-bit altitude nibble
// carried in the latitude-paired status byte: each step is 2km, and the
// nibble saturates at 15 (30km and above reads identically).
const altitudeBucketMeters = 2000

// maxAltitudeBucket is the largest value the 4-bit nibble can hold.
const maxAltitudeBucket = 15

// StatusFlags is the bit vector packed into the status byte that rides
// alongside the latitude block: sign bits for latitude, longitude, and
// battery voltage, a GPS lock flag, and a 4-bit altitude bucket.
//
// The status byte paired with the longitude block is left opaque — the
// original never finished populating it (see SPEC_FULL.md's Open
// Questions), so callers round-trip it as a plain byte via
// MakeStatusData/UnpackStatusBlocks rather than through this type.
type StatusFlags struct {
	LatSign     bool
	LonSign     bool
	VoltageSign bool
	GPSLock     bool
	AltitudeM   float64
}

func altitudeNibble(altitudeMeters float64) byte {
	bucket := int(altitudeMeters / altitudeBucketMeters)
	if bucket < 0 {
		bucket = 0
	}
	if bucket > maxAltitudeBucket {
		bucket = maxAltitudeBucket
	}
	return byte(bucket)
}

func altitudeFromNibble(nibble byte) float64 {
	return float64(nibble) * altitudeBucketMeters
}

// pack returns the latitude-paired status byte: bit 0 is LatSign, bit 1
// LonSign, bit 2 VoltageSign, bit 3 GPSLock, bits 4-7 the altitude
// nibble, all LSB-first per byteutil.PackBools.
func (f StatusFlags) pack() byte {
	nibble := altitudeNibble(f.AltitudeM)
	return byteutil.PackBools([8]bool{
		f.LatSign,
		f.LonSign,
		f.VoltageSign,
		f.GPSLock,
		nibble&0x1 != 0,
		nibble&0x2 != 0,
		nibble&0x4 != 0,
		nibble&0x8 != 0,
	})
}

func unpackStatusFlags(b byte) StatusFlags {
	bools := byteutil.UnpackBools(b)
	var nibble byte
	for i := 0; i < 4; i++ {
		if bools[4+i] {
			nibble |= 1 << uint(i)
		}
	}
	return StatusFlags{
		LatSign:     bools[0],
		LonSign:     bools[1],
		VoltageSign: bools[2],
		GPSLock:     bools[3],
		AltitudeM:   altitudeFromNibble(nibble),
	}
}

// MakeStatusData computes the two 4-byte status blocks carried in a
// packet: the latitude block is [lat_bytes, status_byte], the longitude
// block is [lon_bytes, lonStatus]. lonStatus is an opaque byte the
// caller controls — see the StatusFlags doc comment.
func MakeStatusData(lat, lon float64, flags StatusFlags, lonStatus byte) (blockLat, blockLon [4]byte) {
	latBytes := Latitude.Map(lat)
	lonBytes := Longitude.Map(lon)

	blockLat = [4]byte{latBytes[0], latBytes[1], latBytes[2], flags.pack()}
	blockLon = [4]byte{lonBytes[0], lonBytes[1], lonBytes[2], lonStatus}
	return blockLat, blockLon
}

// UnpackStatusBlocks is the strict inverse of MakeStatusData.
func UnpackStatusBlocks(blockLat, blockLon [4]byte) (lat, lon float64, flags StatusFlags, lonStatus byte) {
	lat = Latitude.Demap([3]byte{blockLat[0], blockLat[1], blockLat[2]})
	lon = Longitude.Demap([3]byte{blockLon[0], blockLon[1], blockLon[2]})
	flags = unpackStatusFlags(blockLat[3])
	lonStatus = blockLon[3]
	return lat, lon, flags, lonStatus
}
