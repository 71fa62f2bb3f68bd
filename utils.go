package sphincsplus

import "crypto/subtle"

// encodeUint64Into writes x into out as a big-endian integer, zero-padding
// on the left if out is wider than needed and truncating the high end if
// narrower.
func encodeUint64Into(x uint64, out []byte) {
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = byte(x)
		x >>= 8
	}
}

// encodeUint64 is encodeUint64Into into a freshly allocated outLen-byte
// buffer.
func encodeUint64(x uint64, outLen int) []byte {
	ret := make([]byte, outLen)
	encodeUint64Into(x, ret)
	return ret
}

// decodeUint64 interprets in as a big-endian unsigned integer.
func decodeUint64(in []byte) (ret uint64) {
	for i := 0; i < len(in); i++ {
		ret |= uint64(in[i]) << uint64(8*(len(in)-1-i))
	}
	return
}

// toBaseW decomposes input into base-w digits, most-significant first
// within each byte, following section 4.8.  Only works when logW divides
// 8, which holds for every admitted w in {4, 16, 256}.
func toBaseW(input []byte, logW uint8, w uint16, output []uint8) {
	if logW == 8 {
		copy(output, input)
		return
	}
	var in, out int
	var total uint8
	var bits uint8
	for out = 0; out < len(output); out++ {
		if bits == 0 {
			total = input[in]
			in++
			bits = 8
		}
		bits -= logW
		output[out] = uint8(uint16(total>>bits) & (w - 1))
	}
}

// extractBits implements the FORS bit-extraction routine of section 4.8:
// bits are numbered LSB-first within each byte, and the result's bit
// (i - from) is set from msg's bit i for i in [from, to].  to - from + 1
// must not exceed 32.
func extractBits(msg []byte, from, to int) uint32 {
	var res uint32
	for i := from; i <= to; i++ {
		bit := (msg[i/8] >> uint(i%8)) & 1
		res |= uint32(bit) << uint(i-from)
	}
	return res
}

// constantTimeCompare reports whether a and b are equal, evaluated without
// data-dependent branching on their contents.
func constantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
