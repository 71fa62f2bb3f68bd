package sphincsplus

import (
	"bytes"
	"testing"
)

func testWotsSignThenPkFromSig(t *testing.T, ctx *Context) {
	pad := ctx.newScratchPad()
	skSeed := make([]byte, ctx.p.N)
	pubSeed := make([]byte, ctx.p.N)
	msg := make([]byte, ctx.p.N)
	for i := range skSeed {
		skSeed[i] = byte(i)
		pubSeed[i] = byte(2 * i)
		msg[i] = byte(3 * i)
	}

	adrs := newWotsHashAddress()
	adrs.setKeypairAddress(5)

	pk1 := ctx.wotsPkGen(pad, skSeed, pubSeed, adrs)
	sig := ctx.wotsSign(pad, msg, skSeed, pubSeed, adrs)
	pk2 := ctx.wotsPkFromSig(pad, sig, msg, pubSeed, adrs)

	if !bytes.Equal(pk1, pk2) {
		t.Errorf("%s: wotsPkFromSig(wotsSign(msg)) != wotsPkGen()", ctx.Name())
	}
}

func TestWotsSignThenPkFromSig(t *testing.T) {
	for _, name := range ListNames() {
		testWotsSignThenPkFromSig(t, NewContextFromName(name))
	}
}

func TestWotsPkFromSigRejectsWrongMessage(t *testing.T) {
	ctx := NewContextFromName("SLH-DSA-SHAKE-128s-robust")
	pad := ctx.newScratchPad()
	skSeed := make([]byte, ctx.p.N)
	pubSeed := make([]byte, ctx.p.N)
	msg := make([]byte, ctx.p.N)
	adrs := newWotsHashAddress()

	pk := ctx.wotsPkGen(pad, skSeed, pubSeed, adrs)
	sig := ctx.wotsSign(pad, msg, skSeed, pubSeed, adrs)

	otherMsg := make([]byte, ctx.p.N)
	otherMsg[0] = 1
	forged := ctx.wotsPkFromSig(pad, sig, otherMsg, pubSeed, adrs)
	if bytes.Equal(pk, forged) {
		t.Fatal("wotsPkFromSig recovered the same public key under a different message")
	}
}

func TestWotsChainStepBound(t *testing.T) {
	ctx := NewContextFromName("SLH-DSA-SHAKE-128s-robust")
	pad := ctx.newScratchPad()
	pubSeed := make([]byte, ctx.p.N)
	x := make([]byte, ctx.p.N)
	adrs := newWotsHashAddress()

	// s+steps exceeds w-1: must return an all-zero block rather than
	// stepping the chain out of bounds.
	out := ctx.wotsChain(pad, x, uint16(ctx.p.WotsW-2), 5, pubSeed, adrs)
	for _, b := range out {
		if b != 0 {
			t.Fatal("wotsChain should return all-zero when s+steps > w-1")
		}
	}
}

func TestWotsChainLengthsChecksumRange(t *testing.T) {
	ctx := NewContextFromName("SLH-DSA-SHAKE-128s-robust")
	msg := make([]byte, ctx.p.N)
	for i := range msg {
		msg[i] = byte(255 - i)
	}
	lengths := ctx.wotsChainLengths(msg)
	if uint32(len(lengths)) != ctx.len {
		t.Fatalf("wotsChainLengths returned %d digits, want %d", len(lengths), ctx.len)
	}
	for _, d := range lengths {
		if uint16(d) >= ctx.p.WotsW {
			t.Fatalf("digit %d out of range [0,%d)", d, ctx.p.WotsW)
		}
	}
}
