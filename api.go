// Package sphincsplus implements SLH-DSA (SPHINCS+), the stateless
// hash-based post-quantum signature scheme standardized in FIPS 205 /
// NIST SP 800-208's predecessor submission, for the twelve SHAKE256
// parameter sets of the r3.1 specification.
package sphincsplus

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/bwesterb/byteswriter"
)

// PublicKey is a SPHINCS+ public key: a public seed and the hyper-tree
// root, each n bytes.
type PublicKey struct {
	ctx     *Context
	pubSeed []byte
	root    []byte
}

// PrivateKey is a SPHINCS+ private key: the secret seed, the PRF seed
// used to randomize signatures, and its own public key.
type PrivateKey struct {
	ctx     *Context
	skSeed  []byte
	skPrf   []byte
	pubSeed []byte
	root    []byte
}

// Signature is a parsed SPHINCS+ signature.
type Signature struct {
	ctx *Context
	raw []byte
}

// GenerateKeyPair generates a fresh keypair for the named parameter set
// using crypto/rand as the entropy source. Use ListNames to enumerate
// the twelve admitted names.
func GenerateKeyPair(name string) (*PrivateKey, *PublicKey, Error) {
	p := ParamsFromName(name)
	if p == nil {
		return nil, nil, errorf("%s is not a valid parameter set name", name)
	}
	ctx, err := NewContext(*p)
	if err != nil {
		return nil, nil, err
	}
	ctx.name = name
	return ctx.GenerateKeyPair()
}

// GenerateKeyPair generates a fresh keypair under ctx using crypto/rand.
func (ctx *Context) GenerateKeyPair() (*PrivateKey, *PublicKey, Error) {
	skSeed := make([]byte, ctx.p.N)
	skPrf := make([]byte, ctx.p.N)
	pubSeed := make([]byte, ctx.p.N)
	for _, b := range [][]byte{skSeed, skPrf, pubSeed} {
		if _, err := rand.Read(b); err != nil {
			return nil, nil, wrapErrorf(err, "crypto/rand.Read")
		}
	}
	return ctx.DeriveKeyPair(skSeed, skPrf, pubSeed)
}

// DeriveKeyPair deterministically derives a keypair from the given seeds,
// each of which must be ctx.Params().N bytes.
func (ctx *Context) DeriveKeyPair(skSeed, skPrf, pubSeed []byte) (*PrivateKey, *PublicKey, Error) {
	n := int(ctx.p.N)
	if len(skSeed) != n || len(skPrf) != n || len(pubSeed) != n {
		return nil, nil, errorf("skSeed, skPrf and pubSeed must each have length %d", n)
	}

	pad := ctx.newScratchPad()
	root := ctx.htPkGen(pad, skSeed, pubSeed)

	log.Logf("generated %s keypair", ctx.Name())

	sk := &PrivateKey{
		ctx:     ctx,
		skSeed:  append([]byte(nil), skSeed...),
		skPrf:   append([]byte(nil), skPrf...),
		pubSeed: append([]byte(nil), pubSeed...),
		root:    root,
	}
	pk := &PublicKey{
		ctx:     ctx,
		pubSeed: append([]byte(nil), pubSeed...),
		root:    append([]byte(nil), root...),
	}
	return sk, pk, nil
}

// Context returns the parameter-set context this key was created under.
func (sk *PrivateKey) Context() *Context { return sk.ctx }

// Context returns the parameter-set context this key was created under.
func (pk *PublicKey) Context() *Context { return pk.ctx }

// PublicKey returns the public key corresponding to sk.
func (sk *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{
		ctx:     sk.ctx,
		pubSeed: sk.pubSeed,
		root:    sk.root,
	}
}

// WriteInto writes the private key into buf, which must be at least
// ctx.PrivateKeySize() bytes: the secret seed, the PRF seed, the public
// seed, and the hyper-tree root, back to back.
func (sk *PrivateKey) WriteInto(buf []byte) error {
	w := byteswriter.NewWriter(buf)
	for _, part := range [][]byte{sk.skSeed, sk.skPrf, sk.pubSeed, sk.root} {
		if _, err := w.Write(part); err != nil {
			return err
		}
	}
	return nil
}

// MarshalBinary returns the wire form of sk: skSeed, skPrf, pubSeed and
// root back to back, prefixed with the parameter-set name so it can be
// recovered by UnmarshalBinary.
func (sk *PrivateKey) MarshalBinary() ([]byte, error) {
	name := sk.ctx.Name()
	buf := make([]byte, 1+len(name)+int(4*sk.ctx.p.N))
	buf[0] = byte(len(name))
	copy(buf[1:], name)
	if err := sk.WriteInto(buf[1+len(name):]); err != nil {
		return nil, err
	}
	return buf, nil
}

// UnmarshalBinary initializes sk from the form written by MarshalBinary.
func (sk *PrivateKey) UnmarshalBinary(buf []byte) error {
	if len(buf) < 1 {
		return errorf("private key too short")
	}
	nameLen := int(buf[0])
	if len(buf) < 1+nameLen {
		return errorf("private key too short")
	}
	name := string(buf[1 : 1+nameLen])
	p := ParamsFromName(name)
	if p == nil {
		return errorf("%s is not a valid parameter set name", name)
	}
	ctx, err := NewContext(*p)
	if err != nil {
		return err
	}
	ctx.name = name

	rest := buf[1+nameLen:]
	n := int(p.N)
	if len(rest) != 4*n {
		return errorf("private key has wrong length")
	}
	sk.ctx = ctx
	sk.skSeed = append([]byte(nil), rest[:n]...)
	sk.skPrf = append([]byte(nil), rest[n:2*n]...)
	sk.pubSeed = append([]byte(nil), rest[2*n:3*n]...)
	sk.root = append([]byte(nil), rest[3*n:]...)
	return nil
}

// Sign signs msg, drawing fresh randomness from crypto/rand for the
// optional-randomizer input to PRF_msg.
func (sk *PrivateKey) Sign(msg []byte) (*Signature, Error) {
	optRand := make([]byte, sk.ctx.p.N)
	if _, err := rand.Read(optRand); err != nil {
		return nil, wrapErrorf(err, "crypto/rand.Read")
	}
	return sk.SignDeterministic(msg, optRand)
}

// SignDeterministic signs msg using optRand (ctx.Params().N bytes) as the
// randomizer input to PRF_msg instead of fresh randomness. Passing
// sk.pubSeed as optRand yields the deterministic variant of the scheme.
func (sk *PrivateKey) SignDeterministic(msg, optRand []byte) (*Signature, Error) {
	if uint32(len(optRand)) != sk.ctx.p.N {
		return nil, errorf("optRand must have length %d", sk.ctx.p.N)
	}
	raw := sk.ctx.signInternal(msg, sk.skSeed, sk.skPrf, sk.pubSeed, sk.root, optRand)
	return &Signature{ctx: sk.ctx, raw: raw}, nil
}

// Verify checks whether sig is a valid signature of msg under pk.
func (pk *PublicKey) Verify(sig *Signature, msg []byte) bool {
	if sig.ctx.p != pk.ctx.p {
		return false
	}
	return pk.ctx.verifyInternal(msg, sig.raw, pk.pubSeed, pk.root)
}

// Verify parses pk and sig and checks whether sig is a valid signature of
// msg.
func Verify(pk, sig, msg []byte) (bool, Error) {
	var thePk PublicKey
	if err := thePk.UnmarshalBinary(pk); err != nil {
		return false, wrapErrorf(err, "failed to unmarshal public key")
	}
	theSig := &Signature{ctx: thePk.ctx, raw: append([]byte(nil), sig...)}
	if uint32(len(theSig.raw)) != thePk.ctx.sigSize {
		return false, errorf("signature has wrong length %d, expected %d", len(sig), thePk.ctx.sigSize)
	}
	return thePk.Verify(theSig, msg), nil
}

// MarshalBinary returns the wire form of sig: the N-byte randomizer,
// the FORS signature, and the hyper-tree signature, back to back.
func (sig *Signature) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), sig.raw...), nil
}

// UnmarshalSignature parses buf as a raw signature under ctx's parameter
// set. Since a raw Signature carries no parameter-set tag,
// callers typically go through Verify, PublicKey.UnmarshalBinary plus
// PublicKey.Verify, or construct the Context out of band.
func (ctx *Context) UnmarshalSignature(buf []byte) (*Signature, Error) {
	if uint32(len(buf)) != ctx.sigSize {
		return nil, errorf("signature has wrong length %d, expected %d", len(buf), ctx.sigSize)
	}
	return &Signature{ctx: ctx, raw: append([]byte(nil), buf...)}, nil
}

// WriteInto writes the public key into buf, which must be at least
// 2*ctx.Params().N bytes: the public seed followed by the hyper-tree
// root.
func (pk *PublicKey) WriteInto(buf []byte) error {
	w := byteswriter.NewWriter(buf)
	if _, err := w.Write(pk.pubSeed); err != nil {
		return err
	}
	if _, err := w.Write(pk.root); err != nil {
		return err
	}
	return nil
}

// MarshalBinary returns the wire form of pk: the public seed followed by
// the hyper-tree root, prefixed with the parameter-set name so it can be
// recovered by UnmarshalBinary.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	name := pk.ctx.Name()
	buf := make([]byte, 1+len(name)+int(2*pk.ctx.p.N))
	buf[0] = byte(len(name))
	copy(buf[1:], name)
	if err := pk.WriteInto(buf[1+len(name):]); err != nil {
		return nil, err
	}
	return buf, nil
}

// UnmarshalBinary initializes pk from the form written by MarshalBinary.
func (pk *PublicKey) UnmarshalBinary(buf []byte) error {
	if len(buf) < 1 {
		return errorf("public key too short")
	}
	nameLen := int(buf[0])
	if len(buf) < 1+nameLen {
		return errorf("public key too short")
	}
	name := string(buf[1 : 1+nameLen])
	p := ParamsFromName(name)
	if p == nil {
		return errorf("%s is not a valid parameter set name", name)
	}
	ctx, err := NewContext(*p)
	if err != nil {
		return err
	}
	ctx.name = name

	rest := buf[1+nameLen:]
	if uint32(len(rest)) != 2*p.N {
		return errorf("public key has wrong length")
	}
	pk.ctx = ctx
	pk.pubSeed = append([]byte(nil), rest[:p.N]...)
	pk.root = append([]byte(nil), rest[p.N:]...)
	return nil
}

// MarshalText returns the base64 encoding of MarshalBinary.
func (pk *PublicKey) MarshalText() ([]byte, error) {
	buf, err := pk.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return []byte(base64.StdEncoding.EncodeToString(buf)), nil
}

// UnmarshalText initializes pk from the form written by MarshalText.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	buf, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil {
		return err
	}
	return pk.UnmarshalBinary(buf)
}
