package jpeglossless

// predict computes the predicted sample value at (x, y) from its causal
// neighbors, per the 7 predictors defined by ITU-T T.81 Annex H.
func predict(ps int, ra, rb, rc int) int {
	switch ps {
	case 0:
		return 0
	case 1:
		return ra
	case 2:
		return rb
	case 3:
		return rc
	case 4:
		return ra + rb - rc
	case 5:
		return ra + ((rb - rc) >> 1)
	case 6:
		return rb + ((ra - rc) >> 1)
	case 7:
		return (ra + rb) >> 1
	default:
		return ra
	}
}

// initialPredictionValue returns V0 = 2^(P - Pt - 1), or 0 in the degenerate
// case where that exponent would be negative.
func initialPredictionValue(precision, pointTrans int) int {
	shift := precision - pointTrans - 1
	if shift < 0 {
		return 0
	}
	return 1 << shift
}

// decodeDifference reconstructs a signed difference value from ssss
// magnitude bits B, per the standard RECEIVE+EXTEND rule: B >= 2^(ssss-1)
// means nonnegative, else subtract (2^ssss - 1).
func decodeDifference(ssss, bits int) int {
	if ssss == 0 {
		return 0
	}
	half := 1 << (ssss - 1)
	if bits >= half {
		return bits
	}
	return bits - ((1 << ssss) - 1)
}
