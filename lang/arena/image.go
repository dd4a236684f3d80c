package arena

import (
	"github.com/dolthub/swiss"
)

// SharedBit is the high bit of a property tag word, marking the property as
// shared (storage lives in the class, instances don't copy it) per spec §3
// and §6.
const SharedBit int32 = 1 << 31

// Image owns the three memory regions (code, data, strings) and the
// string-interning table, and assembles the final layout described in
// spec §6.
type Image struct {
	Code    *Arena
	Data    *Arena
	Strings *Arena

	// internBy maps a string value to its stable offset in the Strings
	// arena (spec §3 "Interned by value"). Backed by a SwissTable map
	// rather than a built-in map, matching the teacher's own choice of
	// swiss.Map for its hash-keyed value store (lang/machine/map.go).
	internBy *swiss.Map[string, int32]
}

// Limits configures the fixed upper bound of each region, in bytes.
type Limits struct {
	Code, Data, Strings int
}

// DefaultLimits matches the reference compiler's conservative defaults,
// generous enough for real adventures without letting a runaway program
// allocate unbounded memory (spec §3 "each with a fixed upper bound").
var DefaultLimits = Limits{Code: 1 << 20, Data: 1 << 20, Strings: 1 << 19}

// NewImage creates an Image with the given region limits.
func NewImage(lim Limits) *Image {
	return &Image{
		Code:     New("code", lim.Code),
		Data:     New("data", lim.Data),
		Strings:  New("string", lim.Strings),
		internBy: swiss.NewMap[string, int32](64),
	}
}

// InternString returns the stable offset of s in the string pool,
// allocating and appending it (NUL-terminated) the first time it is seen.
func (img *Image) InternString(s string) (offset int32, isNew bool, err error) {
	if off, ok := img.internBy.Get(s); ok {
		return off, false, nil
	}
	off, err := img.Strings.AllocBytes(append([]byte(s), 0))
	if err != nil {
		return 0, false, err
	}
	img.internBy.Put(s, int32(off))
	return int32(off), true, nil
}

// ObjectBuilder accumulates an object's header and property records while
// the parser walks an `object`/`CLASS NAME { ... }` declaration (spec
// §4.3). Properties are appended contiguously in the data arena, matching
// the bump-allocator discipline: nothing before the object is disturbed,
// and the object occupies one growing, contiguous block until it is
// finished.
type ObjectBuilder struct {
	img       *Image
	HeaderOff int32 // offset of the object header (class-ref word)
	nPropsOff int32 // offset of the n-properties word
	Props     []PropertyRecord
}

// PropertyRecord describes one property slot in an object's property
// array, as placed in the data arena.
type PropertyRecord struct {
	Tag      int32 // property tag, without the shared bit
	Shared   bool
	TagOff   int32 // offset of this record's tag-with-shared-bit word
	ValueOff int32 // offset of this record's value word
}

// BeginObject allocates an object header (class-ref + n-properties, spec
// §6) with the given class reference (0/NIL if the object has no class)
// and returns a builder to append properties to it.
func (img *Image) BeginObject(classRef int32) (*ObjectBuilder, error) {
	headerOff, err := img.Data.AllocWord(classRef)
	if err != nil {
		return nil, err
	}
	nPropsOff, err := img.Data.AllocWord(0)
	if err != nil {
		return nil, err
	}
	return &ObjectBuilder{img: img, HeaderOff: int32(headerOff), nPropsOff: int32(nPropsOff)}, nil
}

// InheritFrom copies every non-shared property from the class whose header
// starts at classHeaderOff into the new object (spec §4.3 step 2, §8
// scenario 4). Shared properties are left in the class; at VM dispatch
// time they resolve through the object's class pointer instead.
func (b *ObjectBuilder) InheritFrom(classHeaderOff int32) error {
	nProps := b.img.Data.WordAt(int(classHeaderOff) + 4)
	base := int(classHeaderOff) + 8
	for i := int32(0); i < nProps; i++ {
		tagWord := b.img.Data.WordAt(base + int(i)*8)
		if tagWord&SharedBit != 0 {
			continue
		}
		value := b.img.Data.WordAt(base + int(i)*8 + 4)
		if err := b.appendRecord(tagWord, value); err != nil {
			return err
		}
	}
	return nil
}

// FindInherited returns the index of the property with the given tag
// (ignoring the shared bit) among the object's current property records,
// whether copied from a class or added earlier in the same object body, or
// -1 if not found.
func (b *ObjectBuilder) FindInherited(tag int32) int {
	for i, p := range b.Props {
		if p.Tag == tag {
			return i
		}
	}
	return -1
}

func (b *ObjectBuilder) appendRecord(tagWord, value int32) error {
	tagOff, err := b.img.Data.AllocWord(tagWord)
	if err != nil {
		return err
	}
	valOff, err := b.img.Data.AllocWord(value)
	if err != nil {
		return err
	}
	b.Props = append(b.Props, PropertyRecord{
		Tag:      tagWord &^ SharedBit,
		Shared:   tagWord&SharedBit != 0,
		TagOff:   int32(tagOff),
		ValueOff: int32(valOff),
	})
	b.img.Data.PutWord(int(b.nPropsOff), int32(len(b.Props)))
	return nil
}

// AddProperty appends a brand-new property slot (tag not already present
// from class inheritance) with the given value, returning its record.
func (b *ObjectBuilder) AddProperty(tag int32, shared bool, value int32) (PropertyRecord, error) {
	tagWord := tag
	if shared {
		tagWord |= SharedBit
	}
	before := len(b.Props)
	if err := b.appendRecord(tagWord, value); err != nil {
		return PropertyRecord{}, err
	}
	return b.Props[before], nil
}

// SetValue overwrites the value word of an existing property record (used
// when a class-inherited property is overridden, spec §4.3 step 3).
func (b *ObjectBuilder) SetValue(idx int, value int32) {
	b.img.Data.PutWord(int(b.Props[idx].ValueOff), value)
}

// NProperties returns the current property count.
func (b *ObjectBuilder) NProperties() int32 { return int32(len(b.Props)) }

// AllocArray reserves a length-prefixed array in the data arena: the
// returned offset is that of the first element, and the element count is
// the word immediately before it, at offset-4 (spec §6 "every array is prefixed by its length
// word"; GLOSSARY "Nested-array block" for the offset-1-word convention
// applied uniformly to every array, nested or not).
func (img *Image) AllocArray(elems []int32) (offset int32, err error) {
	lenOff, err := img.Data.AllocWord(int32(len(elems)))
	if err != nil {
		return 0, err
	}
	if len(elems) > 0 {
		if _, err := img.Data.AllocWords(elems); err != nil {
			return 0, err
		}
	}
	return int32(lenOff) + 4, nil
}
