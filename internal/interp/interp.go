// Package interp decodes raw bytes into fixed-width integer and IEEE-754
// floating point values in either byte order.
package interp

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Endianness int

const (
	Little Endianness = iota
	Big
)

func (e Endianness) String() string {
	if e == Big {
		return "big"
	}
	return "little"
}

func (e Endianness) Flip() Endianness {
	if e == Big {
		return Little
	}
	return Big
}

func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "little", "le":
		return Little, nil
	case "big", "be":
		return Big, nil
	}
	return Little, fmt.Errorf("invalid endianness %q (want little or big)", s)
}

type Kind int

const (
	I8 Kind = iota
	U8
	I16
	U16
	I32
	U32
	I64
	U64
	F32
	F64
)

// Kinds lists every scalar kind in display order.
var Kinds = []Kind{I8, U8, I16, U16, I32, U32, I64, U64, F32, F64}

// MaxSize is the widest scalar in bytes.
const MaxSize = 8

func (k Kind) Size() int {
	switch k {
	case I8, U8:
		return 1
	case I16, U16:
		return 2
	case I32, U32, F32:
		return 4
	case I64, U64, F64:
		return 8
	}
	return 0
}

func (k Kind) Signed() bool {
	return k == I8 || k == I16 || k == I32 || k == I64
}

func (k Kind) Float() bool {
	return k == F32 || k == F64
}

func (k Kind) String() string {
	switch k {
	case I8:
		return "i8"
	case U8:
		return "u8"
	case I16:
		return "i16"
	case U16:
		return "u16"
	case I32:
		return "i32"
	case U32:
		return "u32"
	case I64:
		return "i64"
	case U64:
		return "u64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Scalar holds the raw bit pattern of one decoded value.
type Scalar struct {
	Kind      Kind
	Available bool
	bits      uint64
}

func (s Scalar) Bits() uint64 {
	return s.bits
}

func (s Scalar) Uint() uint64 {
	return s.bits
}

func (s Scalar) Int() int64 {
	switch s.Kind.Size() {
	case 1:
		return int64(int8(s.bits))
	case 2:
		return int64(int16(s.bits))
	case 4:
		return int64(int32(s.bits))
	}
	return int64(s.bits)
}

func (s Scalar) Float() float64 {
	if s.Kind == F32 {
		return float64(math.Float32frombits(uint32(s.bits)))
	}
	return math.Float64frombits(s.bits)
}

// Decimal returns the value in base 10, or "" when unavailable.
func (s Scalar) Decimal() string {
	if !s.Available {
		return ""
	}
	switch {
	case s.Kind == F32:
		return strconv.FormatFloat(s.Float(), 'g', -1, 32)
	case s.Kind == F64:
		return strconv.FormatFloat(s.Float(), 'g', -1, 64)
	case s.Kind.Signed():
		return strconv.FormatInt(s.Int(), 10)
	}
	return strconv.FormatUint(s.bits, 10)
}

// Hex returns the raw bit pattern zero-padded to the scalar width, or "" when
// unavailable.
func (s Scalar) Hex() string {
	if !s.Available {
		return ""
	}
	return fmt.Sprintf("0x%0*x", s.Kind.Size()*2, s.bits)
}

type ScalarView struct {
	Endian  Endianness
	Scalars []Scalar
}

func (v ScalarView) Get(k Kind) Scalar {
	for _, s := range v.Scalars {
		if s.Kind == k {
			return s
		}
	}
	return Scalar{Kind: k}
}

// Interpret decodes the leading bytes of b as every scalar kind. Kinds wider
// than len(b) are marked unavailable.
func Interpret(b []byte, e Endianness) ScalarView {
	order := e.ByteOrder()
	view := ScalarView{Endian: e, Scalars: make([]Scalar, 0, len(Kinds))}

	for _, k := range Kinds {
		s := Scalar{Kind: k}
		if size := k.Size(); len(b) >= size {
			s.Available = true
			switch size {
			case 1:
				s.bits = uint64(b[0])
			case 2:
				s.bits = uint64(order.Uint16(b[:2]))
			case 4:
				s.bits = uint64(order.Uint32(b[:4]))
			case 8:
				s.bits = order.Uint64(b[:8])
			}
		}
		view.Scalars = append(view.Scalars, s)
	}
	return view
}
