package bytecode

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Wire format for compiled chunks, so a program can be compiled once
// and executed later without its source. Canonical CBOR keeps the
// encoding deterministic.

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("bytecode: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

type wireValue struct {
	Kind Kind    `cbor:"1,keyasint"`
	B    bool    `cbor:"2,keyasint,omitempty"`
	Num  float64 `cbor:"3,keyasint,omitempty"`
	Str  string  `cbor:"4,keyasint,omitempty"`
}

type wireChunk struct {
	Code   []byte      `cbor:"1,keyasint"`
	Consts []wireValue `cbor:"2,keyasint"`
	Lines  []int       `cbor:"3,keyasint"`
}

// Marshal serializes a chunk to CBOR bytes. Function constants are
// rejected: the variant is reserved and has no wire representation.
func Marshal(c *Chunk) ([]byte, error) {
	wc := wireChunk{
		Code:   c.Code,
		Consts: make([]wireValue, 0, len(c.Consts)),
		Lines:  c.Lines,
	}

	for i, v := range c.Consts {
		if v.Kind == KindFunction {
			return nil, fmt.Errorf("bytecode: constant %d is a function, not encodable", i)
		}
		wc.Consts = append(wc.Consts, wireValue{Kind: v.Kind, B: v.B, Num: v.Num, Str: v.Str})
	}

	return cborEncMode.Marshal(&wc)
}

// Unmarshal deserializes a chunk from CBOR bytes
func Unmarshal(data []byte) (*Chunk, error) {
	var wc wireChunk
	if err := cbor.Unmarshal(data, &wc); err != nil {
		return nil, fmt.Errorf("bytecode: unmarshal chunk: %w", err)
	}

	c := New()
	c.Code = wc.Code
	c.Lines = wc.Lines
	for _, v := range wc.Consts {
		switch v.Kind {
		case KindBool, KindNumber, KindString:
			c.Consts = append(c.Consts, Value{Kind: v.Kind, B: v.B, Num: v.Num, Str: v.Str})
		default:
			return nil, fmt.Errorf("bytecode: unknown constant kind %d", v.Kind)
		}
	}

	return c, nil
}
