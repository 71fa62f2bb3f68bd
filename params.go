package sphincsplus

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Variant selects the tweakable-hash mode: whether T_l/F/H XOR a
// pseudorandom bitmask into their input before hashing (Robust) or hash
// the input directly (Simple).
type Variant uint8

const (
	Robust Variant = iota
	Simple
)

func (v Variant) String() string {
	if v == Robust {
		return "robust"
	}
	return "simple"
}

// Params names the seven quantities that identify a SPHINCS+ instance, as
// given in spec.md section 3. Only the twelve tuples in table 3 of the
// r3.1 specification are admitted; NewContext rejects everything else.
type Params struct {
	N       uint32  // security parameter, hash output length in bytes
	H       uint32  // total hyper-tree height
	D       uint32  // number of XMSS layers
	A       uint32  // FORS tree height
	K       uint32  // FORS tree count
	WotsW   uint16  // Winternitz parameter: 4, 16 or 256
	Variant Variant // robust or simple tweakable hash
}

func (p Params) String() string {
	return fmt.Sprintf("n=%d,h=%d,d=%d,a=%d,k=%d,w=%d,%s",
		p.N, p.H, p.D, p.A, p.K, p.WotsW, p.Variant)
}

// Context holds a Params tuple together with every quantity derived from
// it, computed once so that sign/verify never recompute them.
type Context struct {
	p Params

	name string

	lgW   uint8  // log2(WotsW)
	len1  uint32 // WOTS+ chains carrying message digits
	len2  uint32 // WOTS+ chains carrying the checksum
	len   uint32 // len1 + len2
	wSize uint32 // WOTS+ signature size in bytes, len*n

	treeHeight uint32 // height of one XMSS subtree, h/d
	t          uint32 // FORS leaves per tree, 1<<a

	mdLen    uint32 // bytes of FORS message digest
	itreeLen uint32 // bytes encoding the HT tree index
	ileafLen uint32 // bytes encoding the HT leaf index
	m        uint32 // mdLen + itreeLen + ileafLen

	forsSigSize uint32 // k*n*(a+1)
	htSigSize   uint32 // (h + d*len)*n
	sigSize     uint32 // n + forsSigSize + htSigSize

	treeIdxMask uint64 // mask for idx_tree, 2^(h-h/d)-1 (or 2^64-1)
	leafIdxMask uint32 // mask for idx_leaf, 2^(h/d)-1
}

// Params returns the parameter tuple underlying this Context.
func (ctx *Context) Params() Params { return ctx.p }

// Name returns the canonical name of this parameter set, or "" if it was
// constructed from an ad-hoc Params rather than the named registry.
func (ctx *Context) Name() string { return ctx.name }

// PublicKeySize returns the size of a public key, 2n bytes.
func (ctx *Context) PublicKeySize() uint32 { return 2 * ctx.p.N }

// PrivateKeySize returns the size of a secret key, 4n bytes.
func (ctx *Context) PrivateKeySize() uint32 { return 4 * ctx.p.N }

// SignatureSize returns the size of a signature, as given in spec.md
// section 3.
func (ctx *Context) SignatureSize() uint32 { return ctx.sigSize }

type regEntry struct {
	name   string
	params Params
}

// The twelve NIST-recommended parameter sets (table 3 of the r3.1
// specification): six (n,h,d,a,k) tuples, each in robust and simple
// tweakable-hash form. All use Winternitz parameter w=16.
var registry = []regEntry{
	{"SLH-DSA-SHAKE-128s-robust", Params{16, 63, 7, 12, 14, 16, Robust}},
	{"SLH-DSA-SHAKE-128s-simple", Params{16, 63, 7, 12, 14, 16, Simple}},
	{"SLH-DSA-SHAKE-128f-robust", Params{16, 66, 22, 6, 33, 16, Robust}},
	{"SLH-DSA-SHAKE-128f-simple", Params{16, 66, 22, 6, 33, 16, Simple}},

	{"SLH-DSA-SHAKE-192s-robust", Params{24, 63, 7, 14, 17, 16, Robust}},
	{"SLH-DSA-SHAKE-192s-simple", Params{24, 63, 7, 14, 17, 16, Simple}},
	{"SLH-DSA-SHAKE-192f-robust", Params{24, 66, 22, 8, 33, 16, Robust}},
	{"SLH-DSA-SHAKE-192f-simple", Params{24, 66, 22, 8, 33, 16, Simple}},

	{"SLH-DSA-SHAKE-256s-robust", Params{32, 64, 8, 14, 22, 16, Robust}},
	{"SLH-DSA-SHAKE-256s-simple", Params{32, 64, 8, 14, 22, 16, Simple}},
	{"SLH-DSA-SHAKE-256f-robust", Params{32, 68, 17, 9, 35, 16, Robust}},
	{"SLH-DSA-SHAKE-256f-simple", Params{32, 68, 17, 9, 35, 16, Simple}},
}

var registryNameLut map[string]Params

func init() {
	registryNameLut = make(map[string]Params, len(registry))
	for _, entry := range registry {
		registryNameLut[entry.name] = entry.params
	}
}

// ListNames returns the canonical names of the twelve admitted parameter
// sets.
func ListNames() []string {
	names := make([]string, len(registry))
	for i, entry := range registry {
		names[i] = entry.name
	}
	return names
}

// ParamsFromName returns the Params for a named parameter set, or nil if
// name does not name one of the twelve admitted sets.
func ParamsFromName(name string) *Params {
	p, ok := registryNameLut[name]
	if !ok {
		return nil
	}
	return &p
}

// NewContextFromName builds a Context for one of the twelve named
// parameter sets. It panics if name is not among ListNames(); callers
// that accept untrusted names should check ParamsFromName first.
func NewContextFromName(name string) *Context {
	p := ParamsFromName(name)
	if p == nil {
		panic("sphincsplus: no such parameter set: " + name)
	}
	ctx, err := NewContext(*p)
	if err != nil {
		panic(err)
	}
	ctx.name = name
	return ctx
}

// NewContext validates params against table 3 of the r3.1 specification
// and, if admitted, builds a Context with every derived quantity
// precomputed. Every offending field is reported at once via a
// multierror, rather than stopping at the first.
func NewContext(p Params) (*Context, Error) {
	var errs *multierror.Error

	if p.WotsW != 4 && p.WotsW != 16 && p.WotsW != 256 {
		errs = multierror.Append(errs, errorf("WotsW must be 4, 16 or 256, not %d", p.WotsW))
	}
	if p.Variant != Robust && p.Variant != Simple {
		errs = multierror.Append(errs, errorf("Variant must be Robust or Simple"))
	}
	if p.D == 0 {
		errs = multierror.Append(errs, errorf("D must be positive"))
	} else if p.H%p.D != 0 {
		errs = multierror.Append(errs, errorf("H (%d) must be divisible by D (%d)", p.H, p.D))
	}
	if p.A == 0 {
		errs = multierror.Append(errs, errorf("A must be positive"))
	}
	if p.K == 0 {
		errs = multierror.Append(errs, errorf("K must be positive"))
	}
	if !admittedTuple(p) {
		errs = multierror.Append(errs, errorf(
			"(n=%d,h=%d,d=%d,a=%d,k=%d) is not one of the twelve admitted parameter tuples", p.N, p.H, p.D, p.A, p.K))
	}

	if errs != nil {
		return nil, wrapErrorf(errs, "invalid parameter set")
	}

	ctx := &Context{p: p}
	ctx.lgW = wotsLogW(p.WotsW)
	ctx.len1 = (8*p.N + uint32(ctx.lgW) - 1) / uint32(ctx.lgW)
	ctx.len2 = wotsLen2(p.WotsW)
	ctx.len = ctx.len1 + ctx.len2
	ctx.wSize = ctx.len * p.N

	ctx.treeHeight = p.H / p.D
	ctx.t = 1 << p.A

	ctx.mdLen = (p.K*p.A + 7) / 8
	hPrime := p.H - p.H/p.D
	ctx.itreeLen = (hPrime + 7) / 8
	ctx.ileafLen = (p.H/p.D + 7) / 8
	ctx.m = ctx.mdLen + ctx.itreeLen + ctx.ileafLen

	ctx.forsSigSize = p.K * p.N * (p.A + 1)
	ctx.htSigSize = (p.H + p.D*ctx.len) * p.N
	ctx.sigSize = p.N + ctx.forsSigSize + ctx.htSigSize

	if hPrime == 64 {
		ctx.treeIdxMask = ^uint64(0)
	} else {
		ctx.treeIdxMask = (uint64(1) << hPrime) - 1
	}
	ctx.leafIdxMask = (uint32(1) << ctx.treeHeight) - 1

	return ctx, nil
}

// admittedTuple reports whether p is exactly one of the twelve admitted
// parameter sets of table 3 (every field, not just n/h/d/a/k, must match:
// otherwise an otherwise-unlisted WotsW or Variant combination would slip
// through under cover of a listed (n,h,d,a,k) tuple).
func admittedTuple(p Params) bool {
	for _, entry := range registry {
		ep := entry.params
		if ep.N == p.N && ep.H == p.H && ep.D == p.D && ep.A == p.A && ep.K == p.K &&
			ep.WotsW == p.WotsW && ep.Variant == p.Variant {
			return true
		}
	}
	return false
}

func wotsLogW(w uint16) uint8 {
	switch w {
	case 4:
		return 2
	case 16:
		return 4
	case 256:
		return 8
	default:
		panic("sphincsplus: WotsW must be 4, 16 or 256")
	}
}

func wotsLen2(w uint16) uint32 {
	switch w {
	case 4:
		return 2
	case 16:
		return 3
	case 256:
		return 5
	default:
		panic("sphincsplus: WotsW must be 4, 16 or 256")
	}
}
