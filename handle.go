// Package lazyhandle provides a generational handle table: a safe,
// copyable substitute for raw pointers to objects whose slots get recycled.
package lazyhandle

// Handle packs a slot index and a generation version into a single
// integer. It is a small value type: store it, copy it, compare it with ==.
// Handles are only meaningful together with the Layout that packed them and
// the Table that issued them.
//
// The zero Handle never validates against any table, because live versions
// start at 1.
type Handle uint64

// MinVersion is the first version a slot can hold while occupied. Fresh
// slots store version 0; the first acquisition bumps them to MinVersion,
// and version wraparound wraps back to MinVersion, never to 0.
const MinVersion uint32 = 1

// Layout describes how many bits of a Handle hold the slot index and how
// many hold the version. Index bits occupy the low end, version bits sit
// directly above them.
type Layout struct {
	indexBits   uint8
	versionBits uint8
	indexMask   uint64
	versionMask uint64
}

// NewLayout builds a Layout with the given bit widths. Both widths must be
// at least 1 and their sum must not exceed 64; anything else is a
// configuration error and panics.
func NewLayout(indexBits, versionBits int) Layout {
	if indexBits < 1 || versionBits < 1 || indexBits+versionBits > 64 {
		panic("lazyhandle: invalid layout bit widths")
	}
	return Layout{
		indexBits:   uint8(indexBits),
		versionBits: uint8(versionBits),
		indexMask:   1<<indexBits - 1,
		versionMask: 1<<versionBits - 1,
	}
}

// Layout32 is the narrow preset: 20 index bits (up to 1,048,575 slots) and
// 12 version bits (a slot's version loops after 4,095 reuses).
var Layout32 = NewLayout(20, 12)

// Layout64 is the wide preset: 40 index bits and 24 version bits.
var Layout64 = NewLayout(40, 24)

// Pack combines an index and a version into a Handle. Components outside
// their bit widths are masked into range.
func (l Layout) Pack(index uint64, version uint32) Handle {
	return Handle(index&l.indexMask | (uint64(version)&l.versionMask)<<l.indexBits)
}

// Index extracts the slot index from h.
func (l Layout) Index(h Handle) uint64 {
	return uint64(h) & l.indexMask
}

// Version extracts the generation version from h.
func (l Layout) Version(h Handle) uint32 {
	return uint32(uint64(h) >> l.indexBits & l.versionMask)
}

// Nil returns the reserved all-ones sentinel meaning "no handle". Its index
// is the reserved all-ones value, so it can never name a live slot.
func (l Layout) Nil() Handle {
	return Handle(^uint64(0) >> (64 - uint(l.indexBits) - uint(l.versionBits)))
}

// IsNil reports whether h is the sentinel value or the zero Handle.
func (l Layout) IsNil(h Handle) bool {
	return h == 0 || h == l.Nil()
}

// MaxVersion returns the largest version a slot can hold before wrapping
// back to MinVersion.
func (l Layout) MaxVersion() uint32 {
	return uint32(l.versionMask)
}

// MaxIndices returns the number of addressable slots. The all-ones index is
// reserved for the nil sentinel and is never issued.
func (l Layout) MaxIndices() uint64 {
	return l.indexMask
}

// IndexBits returns the width of the index field.
func (l Layout) IndexBits() int {
	return int(l.indexBits)
}

// VersionBits returns the width of the version field.
func (l Layout) VersionBits() int {
	return int(l.versionBits)
}
