package rscodec

import "github.com/kd9tfa/hab-telemetry/packeterr"

// Classical systematic Reed-Solomon over GF(2^8), first consecutive
// root alpha^0 and root spacing 1 (generator element 2, fcr 0). This
// is a from-scratch port of the textbook errors-and-erasures decoder
// (syndrome computation, Berlekamp-Massey, Chien search, Forney
// algorithm) — the same family of algorithm as the original's
// reed_solomon crate, which klauspost/reedsolomon's erasure-only
// Reconstruct cannot stand in for: that library corrects only shard
// positions the caller already names, with no capacity to locate an
// error whose position nobody supplied. Keeping our own GF(2^8) layer
// here is what lets Decode correct unknown-position payload errors up
// to floor(nFec/2) when no erasures are supplied (in general,
// 2*errors + erasures <= nFec).

func generatorPoly(nsym int) []byte {
	g := []byte{1}
	for i := 0; i < nsym; i++ {
		g = gfPolyMul(g, []byte{1, gfPow(2, i)})
	}
	return g
}

// encodeData returns data with nsym systematic parity bytes appended,
// computed by synthetic division of data*x^nsym by the generator
// polynomial.
func encodeData(data []byte, nsym int) []byte {
	gen := generatorPoly(nsym)
	out := make([]byte, len(data)+nsym)
	copy(out, data)

	for i := 0; i < len(data); i++ {
		coef := out[i]
		if coef == 0 {
			continue
		}
		for j := 1; j < len(gen); j++ {
			out[i+j] ^= gfMul(gen[j], coef)
		}
	}
	copy(out, data)
	return out
}

// calcSyndromes evaluates msg at alpha^0..alpha^(nsym-1), prefixed
// with a leading zero for the polynomial arithmetic below.
func calcSyndromes(msg []byte, nsym int) []byte {
	synd := make([]byte, nsym+1)
	for i := 0; i < nsym; i++ {
		synd[i+1] = gfPolyEval(msg, gfPow(2, i))
	}
	return synd
}

func syndromesAllZero(synd []byte) bool {
	for _, s := range synd {
		if s != 0 {
			return false
		}
	}
	return true
}

// forneySyndromes folds known erasure positions out of synd, leaving
// a modified syndrome that Berlekamp-Massey can run on to find only
// the unknown error positions.
func forneySyndromes(synd []byte, pos []int, nmess int) []byte {
	fsynd := append([]byte(nil), synd[1:]...)
	for _, p := range pos {
		x := gfPow(2, nmess-1-p)
		for j := 0; j < len(fsynd)-1; j++ {
			fsynd[j] = gfMul(fsynd[j], x) ^ fsynd[j+1]
		}
	}
	return fsynd
}

// findErrataLocator builds the locator polynomial for a known set of
// positions (erasures, or the combined errata set once errors are
// found), given as degree coefficients (len(msg)-1-position).
func findErrataLocator(coefPos []int) []byte {
	loc := []byte{1}
	for _, i := range coefPos {
		loc = gfPolyMul(loc, []byte{gfPow(2, i), 1})
	}
	return loc
}

// findErrorEvaluator computes Omega(x) = [Synd(x)*ErrLoc(x)] mod
// x^(nsym+1).
func findErrorEvaluator(synd, errLoc []byte, nsym int) []byte {
	prod := gfPolyMul(synd, errLoc)
	m := nsym + 1
	if len(prod) <= m {
		return prod
	}
	return prod[len(prod)-m:]
}

// findErrorLocator runs Berlekamp-Massey over synd to find the error
// locator polynomial for up to floor((nsym-eraseCount)/2) unknown errors.
func findErrorLocator(synd []byte, nsym, eraseCount int) ([]byte, error) {
	errLoc := []byte{1}
	oldLoc := []byte{1}

	syndShift := 0
	if len(synd) > nsym {
		syndShift = len(synd) - nsym
	}

	for i := 0; i < nsym-eraseCount; i++ {
		k := i + syndShift
		delta := synd[k]
		for j := 1; j < len(errLoc); j++ {
			delta ^= gfMul(errLoc[len(errLoc)-1-j], synd[k-j])
		}

		oldLoc = append(oldLoc, 0)

		if delta != 0 {
			if len(oldLoc) > len(errLoc) {
				newLoc := gfPolyScale(oldLoc, delta)
				oldLoc = gfPolyScale(errLoc, gfInverse(delta))
				errLoc = newLoc
			}
			errLoc = gfPolyAdd(errLoc, gfPolyScale(oldLoc, delta))
		}
	}

	for len(errLoc) > 0 && errLoc[0] == 0 {
		errLoc = errLoc[1:]
	}

	errs := len(errLoc) - 1
	if (errs-eraseCount)*2+eraseCount > nsym {
		return nil, packeterr.ErrDecodeUncorrectable
	}
	return errLoc, nil
}

// findErrors locates the roots of errLoc by brute-force evaluation at
// every alpha^i, i in [0, nmess), translating each root back to a
// message position.
func findErrors(errLoc []byte, nmess int) ([]int, error) {
	errs := len(errLoc) - 1
	var pos []int
	for i := 0; i < nmess; i++ {
		if gfPolyEval(errLoc, gfPow(2, i)) == 0 {
			pos = append(pos, nmess-1-i)
		}
	}
	if len(pos) != errs {
		return nil, packeterr.ErrDecodeUncorrectable
	}
	return pos, nil
}

// correctErrata applies the Forney algorithm to compute and subtract
// (XOR) the error magnitude at each position in pos.
func correctErrata(msgIn, synd []byte, pos []int) ([]byte, error) {
	coefPos := make([]int, len(pos))
	for i, p := range pos {
		coefPos[i] = len(msgIn) - 1 - p
	}
	errLoc := findErrataLocator(coefPos)
	errEval := reversedBytes(findErrorEvaluator(reversedBytes(synd), errLoc, len(errLoc)-1))

	// X[i] = alpha^-(field_charac - coefPos[i]), which reduces mod
	// field_charac to alpha^coefPos[i].
	x := make([]byte, len(coefPos))
	for i, c := range coefPos {
		x[i] = gfPow(2, c)
	}

	e := make([]byte, len(msgIn))
	for i, xi := range x {
		xiInv := gfInverse(xi)

		errLocPrime := byte(1)
		for j, xj := range x {
			if j == i {
				continue
			}
			errLocPrime = gfMul(errLocPrime, 1^gfMul(xiInv, xj))
		}
		if errLocPrime == 0 {
			return nil, packeterr.ErrDecodeUncorrectable
		}

		y := gfPolyEval(reversedBytes(errEval), xiInv)
		y = gfMul(gfPow(xi, 1), y)

		e[pos[i]] = gfDiv(y, errLocPrime)
	}

	return gfPolyAdd(msgIn, e), nil
}

// correctMessage recovers a codeword from msgIn given nsym parity
// bytes and a set of caller-known erasure positions, using Forney
// syndromes plus Berlekamp-Massey to additionally locate up to
// floor((nsym-len(erasePos))/2) errors whose positions are not known
// in advance.
func correctMessage(msgIn []byte, nsym int, erasePos []int) ([]byte, error) {
	if len(erasePos) > nsym {
		return nil, packeterr.ErrDecodeUncorrectable
	}

	msgOut := append([]byte(nil), msgIn...)
	for _, p := range erasePos {
		msgOut[p] = 0
	}

	synd := calcSyndromes(msgOut, nsym)
	if syndromesAllZero(synd) {
		return msgOut, nil
	}

	fsynd := forneySyndromes(synd, erasePos, len(msgOut))
	errLoc, err := findErrorLocator(fsynd, nsym, len(erasePos))
	if err != nil {
		return nil, err
	}
	errPos, err := findErrors(reversedBytes(errLoc), len(msgOut))
	if err != nil {
		return nil, err
	}

	combined := append(append([]int(nil), erasePos...), errPos...)
	corrected, err := correctErrata(msgOut, synd, combined)
	if err != nil {
		return nil, err
	}

	if !syndromesAllZero(calcSyndromes(corrected, nsym)) {
		return nil, packeterr.ErrDecodeUncorrectable
	}
	return corrected, nil
}
