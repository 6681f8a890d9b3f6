package rscodec

// Polynomials are coefficient slices in descending-degree order: index
// 0 is the highest-degree term, the last index is the constant term —
// the same convention a codeword itself uses (first transmitted byte
// is the most significant symbol).

func gfPolyScale(p []byte, x byte) []byte {
	r := make([]byte, len(p))
	for i, c := range p {
		r[i] = gfMul(c, x)
	}
	return r
}

func gfPolyAdd(p, q []byte) []byte {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	r := make([]byte, n)
	copy(r[n-len(p):], p)
	for i, c := range q {
		r[i+n-len(q)] ^= c
	}
	return r
}

func gfPolyMul(p, q []byte) []byte {
	r := make([]byte, len(p)+len(q)-1)
	for j, qj := range q {
		if qj == 0 {
			continue
		}
		for i, pi := range p {
			if pi == 0 {
				continue
			}
			r[i+j] ^= gfMul(pi, qj)
		}
	}
	return r
}

// gfPolyEval evaluates poly at x via Horner's method.
func gfPolyEval(poly []byte, x byte) byte {
	y := poly[0]
	for i := 1; i < len(poly); i++ {
		y = gfMul(y, x) ^ poly[i]
	}
	return y
}

func reversedBytes(p []byte) []byte {
	r := make([]byte, len(p))
	for i, c := range p {
		r[len(p)-1-i] = c
	}
	return r
}
