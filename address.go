package sphincsplus

// ADRS type tags.  Word 4 of the address selects the variant; see
// table in spec.md section 3.
const (
	addrWotsHash  uint32 = 0
	addrWotsPk    uint32 = 1
	addrTree      uint32 = 2
	addrForsTree  uint32 = 3
	addrForsRoots uint32 = 4
	addrWotsPrf   uint32 = 5
	addrForsPrf   uint32 = 6
)

// address is the common 32-byte, 8-word ADRS layout shared by every hash
// invocation in the scheme.  It is a value type: callers copy it freely
// and mutate the copy, never the original.
//
// Word layout (each word big-endian within its 4 bytes):
//
//	0: layer address
//	1-3: tree address (96-bit; when a 64-bit tree index is stored via
//	     setTreeAddress, word 1 is zero and words 2/3 hold its high/low
//	     halves)
//	4: type
//	5-7: variant-specific, see the per-type accessors below
type address [8]uint32

func (a *address) setLayerAddress(layer uint32) {
	a[0] = layer
}

// setTreeAddress stores a 64-bit tree index across words 1-3, leaving the
// top word zero.
func (a *address) setTreeAddress(tree uint64) {
	a[1] = 0
	a[2] = uint32(tree >> 32)
	a[3] = uint32(tree)
}

// setTreeAddress3 stores the full 96-bit tree address directly.
func (a *address) setTreeAddress3(hi, mid, lo uint32) {
	a[1] = hi
	a[2] = mid
	a[3] = lo
}

// setType sets the address variant and, per spec, zeros words 5-7.
func (a *address) setType(typ uint32) {
	a[4] = typ
	a[5], a[6], a[7] = 0, 0, 0
}

func (a address) typ() uint32 { return a[4] }

// toBytes serializes the address into a freshly allocated 32-byte buffer.
func (a address) toBytes() []byte {
	buf := make([]byte, 32)
	a.writeInto(buf)
	return buf
}

// writeInto serializes the address into buf, which must be at least 32
// bytes long.
func (a address) writeInto(buf []byte) {
	for i := 0; i < 8; i++ {
		encodeUint64Into(uint64(a[i]), buf[i*4:(i+1)*4])
	}
}

// wotsHashAddress is a typed view of an address specialized as WOTS_HASH.
// Only the accessors valid for this variant are exposed, so using e.g.
// treeHeight() on the wrong variant is a compile-time error.
type wotsHashAddress struct{ address }

func newWotsHashAddress() (a wotsHashAddress) {
	a.setType(addrWotsHash)
	return
}

func (a *wotsHashAddress) setKeypairAddress(kp uint32) { a.address[5] = kp }
func (a wotsHashAddress) keypairAddress() uint32       { return a.address[5] }

func (a *wotsHashAddress) setChainAddress(c uint32) { a.address[6] = c }

func (a *wotsHashAddress) setHashAddress(h uint32) { a.address[7] = h }

// wotsPrfAddress mirrors wotsHashAddress but for WOTS_PRF; per spec its
// hash word (word 7) must stay 0.
type wotsPrfAddress struct{ address }

func newWotsPrfAddress() (a wotsPrfAddress) {
	a.setType(addrWotsPrf)
	return
}

func (a *wotsPrfAddress) setKeypairAddress(kp uint32) { a.address[5] = kp }

func (a *wotsPrfAddress) setChainAddress(c uint32) { a.address[6] = c }

func (a *wotsPrfAddress) setHashAddress(h uint32) { a.address[7] = h }

// wotsPkAddress is a typed view specialized as WOTS_PK.
type wotsPkAddress struct{ address }

func newWotsPkAddress() (a wotsPkAddress) {
	a.setType(addrWotsPk)
	return
}

func (a *wotsPkAddress) setKeypairAddress(kp uint32) { a.address[5] = kp }

// setPadding zeros words 6-7, as required for WOTS_PK.
func (a *wotsPkAddress) setPadding() { a.address[6], a.address[7] = 0, 0 }

// treeAddress is a typed view specialized as TREE, used by XMSS and HT
// internal (non-leaf) hash-tree nodes.
type treeAddress struct{ address }

func newTreeAddress() (a treeAddress) {
	a.setType(addrTree)
	return
}

func (a *treeAddress) setTreeHeight(h uint32) { a.address[6] = h }
func (a treeAddress) treeHeight() uint32      { return a.address[6] }

func (a *treeAddress) setTreeIndex(idx uint32) { a.address[7] = idx }
func (a treeAddress) treeIndex() uint32        { return a.address[7] }

// forsTreeAddress is a typed view specialized as FORS_TREE.
type forsTreeAddress struct{ address }

func newForsTreeAddress() (a forsTreeAddress) {
	a.setType(addrForsTree)
	return
}

func (a *forsTreeAddress) setKeypairAddress(kp uint32) { a.address[5] = kp }
func (a forsTreeAddress) keypairAddress() uint32       { return a.address[5] }

func (a *forsTreeAddress) setTreeHeight(h uint32) { a.address[6] = h }
func (a forsTreeAddress) treeHeight() uint32      { return a.address[6] }

func (a *forsTreeAddress) setTreeIndex(idx uint32) { a.address[7] = idx }
func (a forsTreeAddress) treeIndex() uint32        { return a.address[7] }

// forsRootsAddress is a typed view specialized as FORS_ROOTS.
type forsRootsAddress struct{ address }

func newForsRootsAddress() (a forsRootsAddress) {
	a.setType(addrForsRoots)
	return
}

func (a *forsRootsAddress) setKeypairAddress(kp uint32) { a.address[5] = kp }

// setPadding zeros words 6-7, as required for FORS_ROOTS.
func (a *forsRootsAddress) setPadding() { a.address[6], a.address[7] = 0, 0 }

// forsPrfAddress mirrors forsTreeAddress but for FORS_PRF; per spec its
// tree-height word (word 6) must stay 0.
type forsPrfAddress struct{ address }

func newForsPrfAddress() (a forsPrfAddress) {
	a.setType(addrForsPrf)
	return
}

func (a *forsPrfAddress) setKeypairAddress(kp uint32) { a.address[5] = kp }

func (a *forsPrfAddress) setTreeHeight(h uint32)  { a.address[6] = h }
func (a *forsPrfAddress) setTreeIndex(idx uint32) { a.address[7] = idx }
