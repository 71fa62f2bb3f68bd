package sphincsplus

// The five tweakable-hash constructions of spec.md section 4.2, all
// instantiated over SHAKE256 as an absorb/squeeze extendable-output
// function.  Byte concatenation order is normative; see section 6.

import (
	"github.com/templexxx/xor"
	"github.com/templexxx/xorsimd"
	"golang.org/x/crypto/sha3"
)

// scratchPad holds the one XOF instance each hash call needs. Call-scoped:
// created per top-level operation and discarded on return.
type scratchPad struct {
	shake sha3.ShakeHash
}

func (ctx *Context) newScratchPad() *scratchPad {
	return &scratchPad{shake: sha3.NewShake256()}
}

func (pad *scratchPad) squeeze(out []byte, parts ...[]byte) {
	pad.shake.Reset()
	for _, p := range parts {
		pad.shake.Write(p)
	}
	pad.shake.Read(out)
}

// hMsg computes H_msg(R, PK.seed, PK.root, M), squeezing m bytes.
func (ctx *Context) hMsg(pad *scratchPad, r, pkSeed, pkRoot, msg []byte) []byte {
	out := make([]byte, ctx.m)
	pad.squeeze(out, r, pkSeed, pkRoot, msg)
	return out
}

// prf computes PRF(PK.seed, SK.seed, ADRS), squeezing n bytes.
func (ctx *Context) prf(pad *scratchPad, pkSeed, skSeed []byte, adrs address) []byte {
	out := make([]byte, ctx.p.N)
	pad.squeeze(out, pkSeed, adrs.toBytes(), skSeed)
	return out
}

// prfMsg computes PRF_msg(SK.prf, OptRand, M), squeezing n bytes.
func (ctx *Context) prfMsg(pad *scratchPad, skPrf, optRand, msg []byte) []byte {
	out := make([]byte, ctx.p.N)
	pad.squeeze(out, skPrf, optRand, msg)
	return out
}

// tEll computes T_l(PK.seed, ADRS, M) for |M| = l*n, squeezing n bytes.
// The robust variant XORs a freshly squeezed l*n-byte mask into M before
// the final absorb; the simple variant absorbs M directly.
func (ctx *Context) tEll(pad *scratchPad, pkSeed []byte, adrs address, msg []byte) []byte {
	n := int(ctx.p.N)
	if ctx.p.Variant == Simple {
		out := make([]byte, n)
		pad.squeeze(out, pkSeed, adrs.toBytes(), msg)
		return out
	}

	mask := make([]byte, len(msg))
	pad.squeeze(mask, pkSeed, adrs.toBytes())

	masked := make([]byte, len(msg))
	if len(msg) == n {
		xor.BytesSameLen(masked, mask, msg)
	} else {
		xorsimd.Bytes(masked, mask, msg)
	}

	out := make([]byte, n)
	pad.squeeze(out, pkSeed, adrs.toBytes(), masked)
	return out
}

// f is the single-block tweakable hash, T_1.
func (ctx *Context) f(pad *scratchPad, pkSeed []byte, adrs address, msg []byte) []byte {
	return ctx.tEll(pad, pkSeed, adrs, msg)
}

// h is the two-block tweakable hash, T_2, used to fold sibling pairs.
func (ctx *Context) h(pad *scratchPad, pkSeed []byte, adrs address, left, right []byte) []byte {
	msg := make([]byte, 2*ctx.p.N)
	copy(msg, left)
	copy(msg[ctx.p.N:], right)
	return ctx.tEll(pad, pkSeed, adrs, msg)
}
