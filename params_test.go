package sphincsplus

import "testing"

func TestListNamesCount(t *testing.T) {
	names := ListNames()
	if len(names) != 12 {
		t.Fatalf("expected 12 named parameter sets, got %d", len(names))
	}
}

func TestNewContextFromNameRoundTrip(t *testing.T) {
	for _, name := range ListNames() {
		ctx := NewContextFromName(name)
		if ctx.Name() != name {
			t.Errorf("NewContextFromName(%s).Name() = %s", name, ctx.Name())
		}
	}
}

func TestNewContextFromNamePanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown parameter set name")
		}
	}()
	NewContextFromName("not-a-real-parameter-set")
}

func TestParamsFromNameUnknown(t *testing.T) {
	if ParamsFromName("not-a-real-parameter-set") != nil {
		t.Fatal("expected nil for unknown parameter set name")
	}
}

func TestNewContextRejectsBadTuple(t *testing.T) {
	_, err := NewContext(Params{N: 16, H: 10, D: 3, A: 12, K: 14, WotsW: 16, Variant: Robust})
	if err == nil {
		t.Fatal("expected error for a tuple outside the twelve admitted sets")
	}
}

func TestNewContextRejectsUnlistedWotsWOrVariant(t *testing.T) {
	// (n,h,d,a,k) = (16,63,7,12,14) matches the 128s entries, but those
	// only exist with WotsW=16. WotsW=4 must still be rejected even
	// though every other field lines up with an admitted tuple.
	_, err := NewContext(Params{N: 16, H: 63, D: 7, A: 12, K: 14, WotsW: 4, Variant: Robust})
	if err == nil {
		t.Fatal("expected error: WotsW=4 is not admitted for the 128s tuple")
	}
}

func TestNewContextAggregatesErrors(t *testing.T) {
	_, err := NewContext(Params{N: 16, H: 10, D: 0, A: 0, K: 0, WotsW: 3, Variant: 99})
	if err == nil {
		t.Fatal("expected error")
	}
	// Every one of D, A, K, WotsW and Variant is individually invalid; the
	// aggregated message should mention more than just the first.
	msg := err.Error()
	if len(msg) < 40 {
		t.Errorf("expected an aggregated multi-field error message, got %q", msg)
	}
}

// TestSignatureSizeMatchesSpec checks the twelve signature sizes (n +
// k*n*(a+1) + (h + d*len)*n bytes) against table 3 of the r3.1
// specification, including the 128s concrete-seed-test size of 7856.
func TestSignatureSizeMatchesSpec(t *testing.T) {
	cases := []struct {
		name string
		size uint32
	}{
		{"SLH-DSA-SHAKE-128s-robust", 7856},
		{"SLH-DSA-SHAKE-128s-simple", 7856},
		{"SLH-DSA-SHAKE-128f-robust", 17088},
		{"SLH-DSA-SHAKE-128f-simple", 17088},
		{"SLH-DSA-SHAKE-192s-robust", 16224},
		{"SLH-DSA-SHAKE-192s-simple", 16224},
		{"SLH-DSA-SHAKE-192f-robust", 35664},
		{"SLH-DSA-SHAKE-192f-simple", 35664},
		{"SLH-DSA-SHAKE-256s-robust", 29792},
		{"SLH-DSA-SHAKE-256s-simple", 29792},
		{"SLH-DSA-SHAKE-256f-robust", 49856},
		{"SLH-DSA-SHAKE-256f-simple", 49856},
	}
	for _, c := range cases {
		ctx := NewContextFromName(c.name)
		if ctx.SignatureSize() != c.size {
			t.Errorf("%s: SignatureSize() = %d, want %d", c.name, ctx.SignatureSize(), c.size)
		}
	}
}

func TestKeySizes(t *testing.T) {
	for _, name := range ListNames() {
		ctx := NewContextFromName(name)
		if ctx.PublicKeySize() != 2*ctx.Params().N {
			t.Errorf("%s: PublicKeySize() = %d, want %d", name, ctx.PublicKeySize(), 2*ctx.Params().N)
		}
		if ctx.PrivateKeySize() != 4*ctx.Params().N {
			t.Errorf("%s: PrivateKeySize() = %d, want %d", name, ctx.PrivateKeySize(), 4*ctx.Params().N)
		}
	}
}

// TestTreeIndexMask64BitSpecialCase checks the tree-index masks of the
// 256-bit parameter sets: 256f (h - h/d == 64) must use a full 2^64-1
// mask rather than the degenerate 0 a naive 1<<64 shift would produce,
// while 256s (h - h/d == 56) uses 2^56-1.
func TestTreeIndexMask64BitSpecialCase(t *testing.T) {
	cases := []struct {
		name string
		mask uint64
	}{
		{"SLH-DSA-SHAKE-256s-robust", (uint64(1) << 56) - 1},
		{"SLH-DSA-SHAKE-256f-robust", ^uint64(0)},
	}
	for _, c := range cases {
		ctx := NewContextFromName(c.name)
		if ctx.treeIdxMask != c.mask {
			t.Errorf("%s: treeIdxMask = %x, want %x", c.name, ctx.treeIdxMask, c.mask)
		}
	}
}
