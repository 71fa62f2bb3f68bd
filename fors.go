package sphincsplus

// FORS (Forest Of Random Subsets), the few-time signature scheme of
// spec.md section 4.6: k independent trees of height a, with secret
// leaves derived by a dedicated FORS_PRF address rather than by WOTS+.

// forsSkGen derives the n-byte FORS secret value at leaf index idx.
func (ctx *Context) forsSkGen(pad *scratchPad, skSeed, pubSeed []byte,
	adrs forsTreeAddress, idx uint32) []byte {
	prfAdrs := forsPrfAddress{adrs.address}
	prfAdrs.setType(addrForsPrf)
	prfAdrs.setKeypairAddress(adrs.keypairAddress())
	prfAdrs.setTreeHeight(0)
	prfAdrs.setTreeIndex(idx)
	return ctx.prf(pad, pubSeed, skSeed, prfAdrs.address)
}

// forsTreehash computes the root of the height-z subtree of one FORS tree
// whose leftmost leaf is the secret value at index s. Requires
// s mod 2^z == 0. Unlike xmssTreehash, leaves are F of the raw secret
// value and the ADRS type stays FORS_TREE throughout.
func (ctx *Context) forsTreehash(pad *scratchPad, skSeed, pubSeed []byte,
	s, z uint32, adrs forsTreeAddress) []byte {
	stack := newNodeStack(z + 1)
	leafCount := uint32(1) << z

	for i := uint32(0); i < leafCount; i++ {
		sk := ctx.forsSkGen(pad, skSeed, pubSeed, adrs, s+i)
		adrs.setTreeHeight(0)
		adrs.setTreeIndex(s + i)
		node := merkleNode{
			data:   ctx.f(pad, pubSeed, adrs.address, sk),
			height: 0,
		}

		for !stack.empty() && stack.top().height == node.height {
			sibling := stack.pop()
			adrs.setTreeHeight(node.height + 1)
			adrs.setTreeIndex((adrs.treeIndex() - 1) / 2)
			node = merkleNode{
				data:   ctx.h(pad, pubSeed, adrs.address, sibling.data, node.data),
				height: node.height + 1,
			}
		}
		stack.push(node)
	}
	return stack.pop().data
}

// forsMessageIndices extracts the k a-bit indices addressed by md, per the
// LSB-first bit extraction of spec.md section 4.8.
func (ctx *Context) forsMessageIndices(md []byte) []uint32 {
	idx := make([]uint32, ctx.p.K)
	for i := uint32(0); i < ctx.p.K; i++ {
		from := int(i * ctx.p.A)
		to := from + int(ctx.p.A) - 1
		idx[i] = extractBits(md, from, to)
	}
	return idx
}

// forsPkGen computes the n-byte FORS public key: the T_k compression of
// the k tree roots.
func (ctx *Context) forsPkGen(pad *scratchPad, skSeed, pubSeed []byte,
	adrs forsTreeAddress) []byte {
	roots := make([]byte, ctx.p.K*ctx.p.N)
	for i := uint32(0); i < ctx.p.K; i++ {
		root := ctx.forsTreehash(pad, skSeed, pubSeed, i*ctx.t, ctx.p.A, adrs)
		copy(roots[i*ctx.p.N:], root)
	}
	rootsAdrs := forsRootsAddress{adrs.address}
	rootsAdrs.setType(addrForsRoots)
	rootsAdrs.setKeypairAddress(adrs.keypairAddress())
	rootsAdrs.setPadding()
	return ctx.tEll(pad, pubSeed, rootsAdrs.address, roots)
}

// forsSign produces a k*n*(a+1)-byte FORS signature of the ceil(ka/8)-byte
// message digest md.
func (ctx *Context) forsSign(pad *scratchPad, md, skSeed, pubSeed []byte,
	adrs forsTreeAddress) []byte {
	idx := ctx.forsMessageIndices(md)
	sig := make([]byte, ctx.p.K*ctx.p.N*(ctx.p.A+1))

	for i := uint32(0); i < ctx.p.K; i++ {
		slot := sig[i*ctx.p.N*(ctx.p.A+1):]
		leafIdx := i*ctx.t + idx[i]
		copy(slot, ctx.forsSkGen(pad, skSeed, pubSeed, adrs, leafIdx))

		authPath := slot[ctx.p.N:]
		for j := uint32(0); j < ctx.p.A; j++ {
			s := i*ctx.t + (((idx[i] >> j) ^ 1) << j)
			sibling := ctx.forsTreehash(pad, skSeed, pubSeed, s, j, adrs)
			copy(authPath[j*ctx.p.N:], sibling)
		}
	}
	return sig
}

// forsPkFromSig reconstructs the FORS public key that sig, a signature of
// md, was produced under.
func (ctx *Context) forsPkFromSig(pad *scratchPad, sig, md, pubSeed []byte,
	adrs forsTreeAddress) []byte {
	idx := ctx.forsMessageIndices(md)
	roots := make([]byte, ctx.p.K*ctx.p.N)

	for i := uint32(0); i < ctx.p.K; i++ {
		slot := sig[i*ctx.p.N*(ctx.p.A+1):]
		sk := slot[:ctx.p.N]
		authPath := slot[ctx.p.N:]

		adrs.setTreeHeight(0)
		adrs.setTreeIndex(i*ctx.t + idx[i])
		node := ctx.f(pad, pubSeed, adrs.address, sk)

		treeIdx := i*ctx.t + idx[i]
		for j := uint32(0); j < ctx.p.A; j++ {
			sibling := authPath[j*ctx.p.N : (j+1)*ctx.p.N]
			adrs.setTreeHeight(j + 1)
			adrs.setTreeIndex(treeIdx >> (j + 1))
			if (treeIdx>>j)&1 == 0 {
				node = ctx.h(pad, pubSeed, adrs.address, node, sibling)
			} else {
				node = ctx.h(pad, pubSeed, adrs.address, sibling, node)
			}
		}
		copy(roots[i*ctx.p.N:], node)
	}

	rootsAdrs := forsRootsAddress{adrs.address}
	rootsAdrs.setType(addrForsRoots)
	rootsAdrs.setKeypairAddress(adrs.keypairAddress())
	rootsAdrs.setPadding()
	return ctx.tEll(pad, pubSeed, rootsAdrs.address, roots)
}
