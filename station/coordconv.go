// UTM<->geodetic conversion helpers, adapted from the teacher's own
// src/coordconv.go (the Hemisphere rune helpers, kept close to their
// original form) and the conversion call in
// cmd/samoyed-utm2ll/main.go, repurposed here as a library function
// instead of a standalone CLI tool. cmd/habpack does not call it: it
// takes latitude and longitude only and has no UTM input flag.
package station

import (
	"math"

	"github.com/tzneal/coordconv"
)

// HemisphereRuneToCoordconvHemisphere maps 'N'/'S' to coordconv's
// Hemisphere enum; any other rune maps to HemisphereInvalid.
func HemisphereRuneToCoordconvHemisphere(hemi rune) coordconv.Hemisphere {
	switch hemi {
	case 'N':
		return coordconv.HemisphereNorth
	case 'S':
		return coordconv.HemisphereSouth
	default:
		return coordconv.HemisphereInvalid
	}
}

// HemisphereToRune is the inverse of HemisphereRuneToCoordconvHemisphere.
func HemisphereToRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	case coordconv.HemisphereInvalid:
		return '!'
	default:
		return '?'
	}
}

func radiansToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// UTMToLatLon converts a UTM coordinate to decimal-degree latitude and
// longitude, via coordconv.DefaultUTMConverter. Note this doesn't need
// to import golang/geo directly: ConvertToGeodetic's returned
// s2.LatLng fields are s1.Angle, which underlies float64 and can be
// converted directly, the same trick
// cmd/samoyed-utm2ll/main.go uses.
func UTMToLatLon(zone int, hemisphere coordconv.Hemisphere, easting, northing float64) (lat, lon float64, err error) {
	utmCoord := coordconv.UTMCoord{
		Zone:       zone,
		Hemisphere: hemisphere,
		Easting:    easting,
		Northing:   northing,
	}

	latlng, convErr := coordconv.DefaultUTMConverter.ConvertToGeodetic(utmCoord)
	if convErr != nil {
		return 0, 0, convErr
	}

	return radiansToDegrees(float64(latlng.Lat)), radiansToDegrees(float64(latlng.Lng)), nil
}
