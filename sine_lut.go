// sine_lut.go - 256-entry sine magnitude table and qsin
//
// sinLUT[k] = round(sin(k*pi/512) * 2^16) for k = 0..255, stored as
// UQ0.16. sin(pi/2) == 1 is unrepresentable in UQ0.16 and is not in the
// table; the closest representable neighbour (entry 255) is 0.9999...
// Regenerating the table from that formula reproduces it exactly.
package main

const sinLUTSize = 256

var sinLUT = [sinLUTSize]UQ016{
	0, 402, 804, 1206, 1608, 2010, 2412, 2814,
	3216, 3617, 4019, 4420, 4821, 5222, 5623, 6023,
	6424, 6824, 7224, 7623, 8022, 8421, 8820, 9218,
	9616, 10014, 10411, 10808, 11204, 11600, 11996, 12391,
	12785, 13180, 13573, 13966, 14359, 14751, 15143, 15534,
	15924, 16314, 16703, 17091, 17479, 17867, 18253, 18639,
	19024, 19409, 19792, 20175, 20557, 20939, 21320, 21699,
	22078, 22457, 22834, 23210, 23586, 23961, 24335, 24708,
	25080, 25451, 25821, 26190, 26558, 26925, 27291, 27656,
	28020, 28383, 28745, 29106, 29466, 29824, 30182, 30538,
	30893, 31248, 31600, 31952, 32303, 32652, 33000, 33347,
	33692, 34037, 34380, 34721, 35062, 35401, 35738, 36075,
	36410, 36744, 37076, 37407, 37736, 38064, 38391, 38716,
	39040, 39362, 39683, 40002, 40320, 40636, 40951, 41264,
	41576, 41886, 42194, 42501, 42806, 43110, 43412, 43713,
	44011, 44308, 44604, 44898, 45190, 45480, 45769, 46056,
	46341, 46624, 46906, 47186, 47464, 47741, 48015, 48288,
	48559, 48828, 49095, 49361, 49624, 49886, 50146, 50404,
	50660, 50914, 51166, 51417, 51665, 51911, 52156, 52398,
	52639, 52878, 53114, 53349, 53581, 53812, 54040, 54267,
	54491, 54714, 54934, 55152, 55368, 55582, 55794, 56004,
	56212, 56418, 56621, 56823, 57022, 57219, 57414, 57607,
	57798, 57986, 58172, 58356, 58538, 58718, 58896, 59071,
	59244, 59415, 59583, 59750, 59914, 60075, 60235, 60392,
	60547, 60700, 60851, 60999, 61145, 61288, 61429, 61568,
	61705, 61839, 61971, 62101, 62228, 62353, 62476, 62596,
	62714, 62830, 62943, 63054, 63162, 63268, 63372, 63473,
	63572, 63668, 63763, 63854, 63944, 64031, 64115, 64197,
	64277, 64354, 64429, 64501, 64571, 64639, 64704, 64766,
	64827, 64884, 64940, 64993, 65043, 65091, 65137, 65180,
	65220, 65259, 65294, 65328, 65358, 65387, 65413, 65436,
	65457, 65476, 65492, 65505, 65516, 65525, 65531, 65535,
}

// phiQ1Max is the exclusive upper bound of the first-quadrant phase
// domain: phi in [0, phiQ1Max) corresponds to the angle [0, pi/2).
const phiQ1Max = 0x4000 // 14 significant bits

// qsin evaluates sin(phi) for phi in UQ0.16 restricted to the first
// quadrant [0, phiQ1Max), returning the magnitude as UQ0.16 in [0, 1).
func qsin(phi UQ016) UQ016 {
	checkUQ016(phi)
	if phi >= phiQ1Max {
		domainPanic("qsin: phase outside first quadrant", int64(phi))
	}

	key0 := phi >> 6    // upper 8 bits -> LUT index
	subStep := phi & 63 // lower 6 bits

	lo := sinLUT[key0]
	if subStep == 0 {
		return lo
	}

	coef := UQ016(subStep) << 10 // scale 6-bit substep to UQ0.16

	var hiTerm UQ016
	if int(key0)+1 == sinLUTSize {
		// sin(pi/2) == 1, represented mod 1 as 0: the neighbour's
		// contribution reduces to the interpolation coefficient.
		hiTerm = coef
	} else {
		hiTerm = QMul(sinLUT[key0+1], coef)
	}

	oneMinusCoef := UQ016(uq016Max + 1 - uint32(coef))
	return QMul(lo, oneMinusCoef) + hiTerm
}
