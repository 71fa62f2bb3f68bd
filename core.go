package sphincsplus

// The outer SPHINCS+ assembly of spec.md section 4.7: randomized message
// hashing, index derivation, and the FORS-then-hypertree signing chain.

// forsAddress builds the FORS_TREE address naming the tree pair at
// (idxTree, idxLeaf): layer 0, tree idxTree, keypair idxLeaf.
func forsAddress(idxTree uint64, idxLeaf uint32) forsTreeAddress {
	var a address
	a.setLayerAddress(0)
	a.setTreeAddress(idxTree)
	adrs := forsTreeAddress{a}
	adrs.setType(addrForsTree)
	adrs.setKeypairAddress(idxLeaf)
	return adrs
}

// digestIndices splits an m-byte message digest into the FORS message
// digest and the hyper-tree (idxTree, idxLeaf) pair, per spec.md section
// 4.7's big-endian decoding and masking.
func (ctx *Context) digestIndices(digest []byte) (md []byte, idxTree uint64, idxLeaf uint32) {
	md = digest[:ctx.mdLen]
	itreeBytes := digest[ctx.mdLen : ctx.mdLen+ctx.itreeLen]
	ileafBytes := digest[ctx.mdLen+ctx.itreeLen : ctx.m]

	idxTree = decodeUint64(itreeBytes) & ctx.treeIdxMask
	idxLeaf = uint32(decodeUint64(ileafBytes)) & ctx.leafIdxMask
	return
}

// signInternal produces the n + forsSigSize + htSigSize-byte signature of
// msg under (skSeed, skPrf, pkSeed, pkRoot), using optRand as the
// randomizer input to PRF_msg.
func (ctx *Context) signInternal(msg, skSeed, skPrf, pkSeed, pkRoot, optRand []byte) []byte {
	pad := ctx.newScratchPad()

	r := ctx.prfMsg(pad, skPrf, optRand, msg)
	digest := ctx.hMsg(pad, r, pkSeed, pkRoot, msg)
	md, idxTree, idxLeaf := ctx.digestIndices(digest)

	adrs := forsAddress(idxTree, idxLeaf)
	forsSig := ctx.forsSign(pad, md, skSeed, pkSeed, adrs)
	forsPk := ctx.forsPkFromSig(pad, forsSig, md, pkSeed, adrs)
	htSig := ctx.htSign(pad, forsPk, skSeed, pkSeed, idxTree, idxLeaf)

	sig := make([]byte, ctx.sigSize)
	copy(sig, r)
	copy(sig[ctx.p.N:], forsSig)
	copy(sig[ctx.p.N+ctx.forsSigSize:], htSig)
	return sig
}

// verifyInternal reports whether sig is a valid signature of msg under
// (pkSeed, pkRoot).
func (ctx *Context) verifyInternal(msg, sig, pkSeed, pkRoot []byte) bool {
	if uint32(len(sig)) != ctx.sigSize {
		return false
	}
	pad := ctx.newScratchPad()

	r := sig[:ctx.p.N]
	forsSig := sig[ctx.p.N : ctx.p.N+ctx.forsSigSize]
	htSig := sig[ctx.p.N+ctx.forsSigSize:]

	digest := ctx.hMsg(pad, r, pkSeed, pkRoot, msg)
	md, idxTree, idxLeaf := ctx.digestIndices(digest)

	adrs := forsAddress(idxTree, idxLeaf)
	forsPk := ctx.forsPkFromSig(pad, forsSig, md, pkSeed, adrs)

	return ctx.htVerify(pad, forsPk, htSig, pkSeed, pkRoot, idxTree, idxLeaf)
}
