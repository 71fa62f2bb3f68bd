package sphincsplus

// The hyper-tree composition of spec.md section 4.5: a d-layer stack of
// XMSS trees of height h/d each, certifying one another bottom-up, with
// the topmost tree's root serving as the SPHINCS+ public key.

// htPkGen computes the hyper-tree public key: the root of the layer-(d-1)
// XMSS tree at tree index 0.
func (ctx *Context) htPkGen(pad *scratchPad, skSeed, pubSeed []byte) []byte {
	var adrs address
	adrs.setLayerAddress(ctx.p.D - 1)
	adrs.setTreeAddress(0)
	return ctx.xmssPkGen(pad, skSeed, pubSeed, adrs)
}

// htSign produces a (d*(len+treeHeight))*n-byte hyper-tree signature of
// root, a message digest already reduced to a single n-byte XMSS leaf
// value, under the leaf named by (idxTree, idxLeaf).
func (ctx *Context) htSign(pad *scratchPad, root, skSeed, pubSeed []byte,
	idxTree uint64, idxLeaf uint32) []byte {
	sig := make([]byte, ctx.htSigSize)
	layerSize := (ctx.len + ctx.treeHeight) * ctx.p.N

	var adrs address
	adrs.setLayerAddress(0)
	adrs.setTreeAddress(idxTree)

	msg := root
	for layer := uint32(0); layer < ctx.p.D; layer++ {
		layerSig := ctx.xmssSign(pad, msg, skSeed, pubSeed, idxLeaf, adrs)
		copy(sig[uint32(layer)*layerSize:], layerSig)

		if layer < ctx.p.D-1 {
			msg = ctx.xmssPkFromSig(pad, idxLeaf, layerSig, msg, pubSeed, adrs)
			idxLeaf = uint32(idxTree) & ctx.leafIdxMask
			idxTree >>= ctx.treeHeight
			adrs.setLayerAddress(layer + 1)
			adrs.setTreeAddress(idxTree)
		}
	}
	return sig
}

// htVerify recomputes the hyper-tree root that sig, a signature of root
// under (idxTree, idxLeaf), was produced under, and compares it to pkRoot
// in constant time.
func (ctx *Context) htVerify(pad *scratchPad, root, sig, pubSeed, pkRoot []byte,
	idxTree uint64, idxLeaf uint32) bool {
	layerSize := (ctx.len + ctx.treeHeight) * ctx.p.N

	var adrs address
	adrs.setLayerAddress(0)
	adrs.setTreeAddress(idxTree)

	node := root
	for layer := uint32(0); layer < ctx.p.D; layer++ {
		layerSig := sig[uint32(layer)*layerSize : (uint32(layer)+1)*layerSize]
		node = ctx.xmssPkFromSig(pad, idxLeaf, layerSig, node, pubSeed, adrs)

		if layer < ctx.p.D-1 {
			idxLeaf = uint32(idxTree) & ctx.leafIdxMask
			idxTree >>= ctx.treeHeight
			adrs.setLayerAddress(layer + 1)
			adrs.setTreeAddress(idxTree)
		}
	}
	return constantTimeCompare(node, pkRoot)
}
