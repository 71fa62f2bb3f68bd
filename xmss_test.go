package sphincsplus

import (
	"bytes"
	"testing"
)

func TestXmssSignThenPkFromSigSampledLeaves(t *testing.T) {
	ctx := NewContextFromName("SLH-DSA-SHAKE-128s-robust")
	pad := ctx.newScratchPad()
	skSeed := make([]byte, ctx.p.N)
	pubSeed := make([]byte, ctx.p.N)
	msg := make([]byte, ctx.p.N)
	for i := range skSeed {
		skSeed[i] = byte(i)
		pubSeed[i] = byte(2 * i)
	}

	var adrs address
	adrs.setLayerAddress(0)
	adrs.setTreeAddress(0)

	root := ctx.xmssPkGen(pad, skSeed, pubSeed, adrs)

	// Walking all 2^(h/d) leaves of a full-size subtree is too slow for a
	// unit test; sample a handful of indices instead.
	for _, leaf := range []uint32{0, 1, (1 << ctx.treeHeight) - 1, 42} {
		sig := ctx.xmssSign(pad, msg, skSeed, pubSeed, leaf, adrs)
		got := ctx.xmssPkFromSig(pad, leaf, sig, msg, pubSeed, adrs)
		if !bytes.Equal(got, root) {
			t.Errorf("leaf %d: xmssPkFromSig != xmssPkGen root", leaf)
		}
	}
}

func TestXmssSignatureLength(t *testing.T) {
	ctx := NewContextFromName("SLH-DSA-SHAKE-128s-robust")
	pad := ctx.newScratchPad()
	skSeed := make([]byte, ctx.p.N)
	pubSeed := make([]byte, ctx.p.N)
	msg := make([]byte, ctx.p.N)
	var adrs address

	sig := ctx.xmssSign(pad, msg, skSeed, pubSeed, 0, adrs)
	want := (ctx.len + ctx.treeHeight) * ctx.p.N
	if uint32(len(sig)) != want {
		t.Fatalf("xmssSign returned %d bytes, want %d", len(sig), want)
	}
}

func TestXmssWrongLeafFailsToMatch(t *testing.T) {
	ctx := NewContextFromName("SLH-DSA-SHAKE-128s-robust")
	pad := ctx.newScratchPad()
	skSeed := make([]byte, ctx.p.N)
	pubSeed := make([]byte, ctx.p.N)
	msg := make([]byte, ctx.p.N)
	var adrs address

	sig := ctx.xmssSign(pad, msg, skSeed, pubSeed, 3, adrs)
	gotWrongLeaf := ctx.xmssPkFromSig(pad, 4, sig, msg, pubSeed, adrs)
	gotRightLeaf := ctx.xmssPkFromSig(pad, 3, sig, msg, pubSeed, adrs)
	if bytes.Equal(gotWrongLeaf, gotRightLeaf) {
		t.Fatal("reconstructing under the wrong leaf index should not match")
	}
}
