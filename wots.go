package sphincsplus

// WOTS+, the one-time signature scheme of spec.md section 4.3.

// wotsChain starts from x and applies F(pubSeed, adrs-with-hash-address-i,
// ·) for steps consecutive values of the hash address, beginning at s.  If
// s+steps would exceed w-1 it returns the all-zero output: callers must
// never drive it past the top of the chain.
func (ctx *Context) wotsChain(pad *scratchPad, x []byte, s, steps uint16,
	pubSeed []byte, adrs wotsHashAddress) []byte {
	if uint32(s)+uint32(steps) > uint32(ctx.p.WotsW)-1 {
		return make([]byte, ctx.p.N)
	}
	buf := append([]byte(nil), x...)
	for i := s; i < s+steps; i++ {
		adrs.setHashAddress(uint32(i))
		buf = ctx.f(pad, pubSeed, adrs.address, buf)
	}
	return buf
}

// wotsSecretLimb derives the i-th WOTS+ secret-key chain seed.
func (ctx *Context) wotsSecretLimb(pad *scratchPad, skSeed, pubSeed []byte,
	base wotsHashAddress, i uint32) []byte {
	prfAdrs := wotsPrfAddress{base.address}
	prfAdrs.setType(addrWotsPrf)
	prfAdrs.setKeypairAddress(base.keypairAddress())
	prfAdrs.setChainAddress(i)
	prfAdrs.setHashAddress(0)
	return ctx.prf(pad, pubSeed, skSeed, prfAdrs.address)
}

// wotsPkGen computes the n-byte WOTS+ public key for the keypair named by
// adrs.
func (ctx *Context) wotsPkGen(pad *scratchPad, skSeed, pubSeed []byte,
	adrs wotsHashAddress) []byte {
	chains := make([]byte, ctx.len*ctx.p.N)
	for i := uint32(0); i < ctx.len; i++ {
		limb := ctx.wotsSecretLimb(pad, skSeed, pubSeed, adrs, i)
		adrs.setChainAddress(i)
		adrs.setHashAddress(0)
		copy(chains[i*ctx.p.N:], ctx.wotsChain(pad, limb, 0, uint16(ctx.p.WotsW-1), pubSeed, adrs))
	}
	pkAdrs := wotsPkAddress{adrs.address}
	pkAdrs.setType(addrWotsPk)
	pkAdrs.setKeypairAddress(adrs.keypairAddress())
	pkAdrs.setPadding()
	return ctx.tEll(pad, pubSeed, pkAdrs.address, chains)
}

// wotsChainLengths converts an n-byte message (or digest) into the len
// base-w chain positions: len1 message digits followed by len2 checksum
// digits, per spec.md section 4.3.
func (ctx *Context) wotsChainLengths(msg []byte) []uint8 {
	lengths := make([]uint8, ctx.len)
	toBaseW(msg, ctx.lgW, ctx.p.WotsW, lengths[:ctx.len1])

	var csum uint32
	for i := uint32(0); i < ctx.len1; i++ {
		csum += uint32(ctx.p.WotsW) - 1 - uint32(lengths[i])
	}
	shift := (8 - (ctx.len2*uint32(ctx.lgW))%8) % 8
	csum <<= shift

	csumBytes := (ctx.len2*uint32(ctx.lgW) + 7) / 8
	toBaseW(encodeUint64(uint64(csum), int(csumBytes)), ctx.lgW, ctx.p.WotsW, lengths[ctx.len1:])
	return lengths
}

// wotsSign produces a len*n-byte WOTS+ signature of msg under the keypair
// named by adrs.
func (ctx *Context) wotsSign(pad *scratchPad, msg, skSeed, pubSeed []byte,
	adrs wotsHashAddress) []byte {
	lengths := ctx.wotsChainLengths(msg)
	sig := make([]byte, ctx.len*ctx.p.N)
	for i := uint32(0); i < ctx.len; i++ {
		limb := ctx.wotsSecretLimb(pad, skSeed, pubSeed, adrs, i)
		adrs.setChainAddress(i)
		adrs.setHashAddress(0)
		copy(sig[i*ctx.p.N:], ctx.wotsChain(pad, limb, 0, uint16(lengths[i]), pubSeed, adrs))
	}
	return sig
}

// wotsPkFromSig reconstructs the WOTS+ public key that sig, a signature
// of msg, was produced under.
func (ctx *Context) wotsPkFromSig(pad *scratchPad, sig, msg, pubSeed []byte,
	adrs wotsHashAddress) []byte {
	lengths := ctx.wotsChainLengths(msg)
	chains := make([]byte, ctx.len*ctx.p.N)
	for i := uint32(0); i < ctx.len; i++ {
		adrs.setChainAddress(i)
		adrs.setHashAddress(0)
		block := sig[i*ctx.p.N : (i+1)*ctx.p.N]
		copy(chains[i*ctx.p.N:], ctx.wotsChain(pad, block, uint16(lengths[i]),
			uint16(ctx.p.WotsW)-1-uint16(lengths[i]), pubSeed, adrs))
	}
	pkAdrs := wotsPkAddress{adrs.address}
	pkAdrs.setType(addrWotsPk)
	pkAdrs.setKeypairAddress(adrs.keypairAddress())
	pkAdrs.setPadding()
	return ctx.tEll(pad, pubSeed, pkAdrs.address, chains)
}
