package sphincsplus

// Fixed-input XMSS: a Merkle tree over WOTS+ public keys, per spec.md
// section 4.4.  Unlike a stateful XMSS implementation, every operation
// here takes the leaf index (or starting index) as an explicit argument;
// nothing about which leaves have been used is tracked across calls.

// xmssGenLeaf computes the WOTS+ public key at keypair index i and
// returns it as a Merkle leaf.  otsAdrs names the WOTS+ keypair; its
// keypair address is overwritten with i.
func (ctx *Context) xmssGenLeaf(pad *scratchPad, skSeed, pubSeed []byte,
	otsAdrs wotsHashAddress, i uint32) []byte {
	otsAdrs.setKeypairAddress(i)
	return ctx.wotsPkGen(pad, skSeed, pubSeed, otsAdrs)
}

// xmssTreehash computes the root of the height-z subtree whose leftmost
// leaf is the WOTS+ public key at keypair index s, per algorithm 7's WOTS+
// specialization. Requires s mod 2^z == 0.
func (ctx *Context) xmssTreehash(pad *scratchPad, skSeed, pubSeed []byte,
	s, z uint32, otsAdrs wotsHashAddress, treeAdrs treeAddress) []byte {
	stack := newNodeStack(z + 1)
	leafCount := uint32(1) << z

	for i := uint32(0); i < leafCount; i++ {
		leaf := ctx.xmssGenLeaf(pad, skSeed, pubSeed, otsAdrs, s+i)
		node := merkleNode{data: leaf, height: 0}
		treeAdrs.setTreeHeight(0)
		treeAdrs.setTreeIndex(s + i)

		for !stack.empty() && stack.top().height == node.height {
			sibling := stack.pop()
			treeAdrs.setTreeHeight(node.height + 1)
			treeAdrs.setTreeIndex((treeAdrs.treeIndex() - 1) / 2)
			node = merkleNode{
				data:   ctx.h(pad, pubSeed, treeAdrs.address, sibling.data, node.data),
				height: node.height + 1,
			}
		}
		stack.push(node)
	}
	return stack.pop().data
}

// xmssPkGen computes the root of the full-height XMSS tree, the XMSS
// public key.
func (ctx *Context) xmssPkGen(pad *scratchPad, skSeed, pubSeed []byte,
	adrs address) []byte {
	otsAdrs := wotsHashAddress{adrs}
	otsAdrs.setType(addrWotsHash)
	treeAdrs := treeAddress{adrs}
	treeAdrs.setType(addrTree)
	return ctx.xmssTreehash(pad, skSeed, pubSeed, 0, ctx.treeHeight, otsAdrs, treeAdrs)
}

// xmssSign produces a (len+treeHeight)*n-byte XMSS signature of msg under
// the leaf named by leafIdx: a WOTS+ signature followed by the
// authentication path.
func (ctx *Context) xmssSign(pad *scratchPad, msg, skSeed, pubSeed []byte,
	leafIdx uint32, adrs address) []byte {
	otsAdrs := wotsHashAddress{adrs}
	otsAdrs.setType(addrWotsHash)
	otsAdrs.setKeypairAddress(leafIdx)

	treeAdrs := treeAddress{adrs}
	treeAdrs.setType(addrTree)

	sig := make([]byte, (ctx.len+ctx.treeHeight)*ctx.p.N)
	copy(sig, ctx.wotsSign(pad, msg, skSeed, pubSeed, otsAdrs))

	pathOtsAdrs := wotsHashAddress{adrs}
	pathOtsAdrs.setType(addrWotsHash)

	authPath := sig[ctx.wSize:]
	for j := uint32(0); j < ctx.treeHeight; j++ {
		s := ((leafIdx >> j) ^ 1) << j
		sibling := ctx.xmssTreehash(pad, skSeed, pubSeed, s, j, pathOtsAdrs, treeAdrs)
		copy(authPath[j*ctx.p.N:], sibling)
	}
	return sig
}

// xmssPkFromSig reconstructs the XMSS root that sig, a signature of msg
// under leafIdx, was produced under.
func (ctx *Context) xmssPkFromSig(pad *scratchPad, leafIdx uint32, sig, msg, pubSeed []byte,
	adrs address) []byte {
	otsAdrs := wotsHashAddress{adrs}
	otsAdrs.setType(addrWotsHash)
	otsAdrs.setKeypairAddress(leafIdx)

	wotsSig := sig[:ctx.wSize]
	authPath := sig[ctx.wSize:]

	node := ctx.wotsPkFromSig(pad, wotsSig, msg, pubSeed, otsAdrs)

	treeAdrs := treeAddress{adrs}
	treeAdrs.setType(addrTree)

	idx := leafIdx
	for k := uint32(0); k < ctx.treeHeight; k++ {
		sibling := authPath[k*ctx.p.N : (k+1)*ctx.p.N]
		treeAdrs.setTreeHeight(k + 1)
		treeAdrs.setTreeIndex(idx >> 1)
		if idx&1 == 0 {
			node = ctx.h(pad, pubSeed, treeAdrs.address, node, sibling)
		} else {
			node = ctx.h(pad, pubSeed, treeAdrs.address, sibling, node)
		}
		idx >>= 1
	}
	return node
}
