package rangeproof

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/vocdoni/rangeproof/group"
)

// RangeProof attests that some Pedersen commitment C = r*G + v*H opens to
// v in [0, 3^n), without revealing v or r. It carries the shared outer
// Fiat-Shamir challenge e0, the n per-digit ring commitments C, and their
// two response scalars s1, s2.
type RangeProof struct {
	E0 group.Scalar
	C  []group.Point
	S1 []group.Scalar
	S2 []group.Scalar
}

// scalarSize is the width of every field in the raw wire encoding.
const scalarSize = 32

// MarshalBinary encodes the proof as the reference wire format: e0, then
// the n commitments, then the n s1 responses, then the n s2 responses,
// each a 32-byte canonical field, for 32*(1+3n) bytes total with no
// length prefix (n is recovered from the slice length on decode).
func (p *RangeProof) MarshalBinary() ([]byte, error) {
	n := len(p.C)
	if len(p.S1) != n || len(p.S2) != n {
		return nil, ErrMalformedProof
	}

	out := make([]byte, 0, scalarSize*(1+3*n))
	out = append(out, p.E0.Bytes()...)
	for i := 0; i < n; i++ {
		out = append(out, p.C[i].Bytes()...)
	}
	for i := 0; i < n; i++ {
		out = append(out, p.S1[i].Bytes()...)
	}
	for i := 0; i < n; i++ {
		out = append(out, p.S2[i].Bytes()...)
	}
	return out, nil
}

// UnmarshalBinary decodes the reference wire format produced by
// MarshalBinary, inferring n from the total byte length.
func (p *RangeProof) UnmarshalBinary(data []byte) error {
	if len(data) < scalarSize || (len(data)-scalarSize)%(3*scalarSize) != 0 {
		return ErrMalformedProof
	}
	n := (len(data) - scalarSize) / (3 * scalarSize)

	e0, err := group.SetCanonicalBytes(data[:scalarSize])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedProof, err)
	}
	offset := scalarSize

	C := make([]group.Point, n)
	for i := 0; i < n; i++ {
		pt, err := group.SetBytes(data[offset : offset+scalarSize])
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedProof, err)
		}
		C[i] = pt
		offset += scalarSize
	}

	S1 := make([]group.Scalar, n)
	for i := 0; i < n; i++ {
		s, err := group.SetCanonicalBytes(data[offset : offset+scalarSize])
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedProof, err)
		}
		S1[i] = s
		offset += scalarSize
	}

	S2 := make([]group.Scalar, n)
	for i := 0; i < n; i++ {
		s, err := group.SetCanonicalBytes(data[offset : offset+scalarSize])
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedProof, err)
		}
		S2[i] = s
		offset += scalarSize
	}

	p.E0, p.C, p.S1, p.S2 = e0, C, S1, S2
	return nil
}

// cborProof is RangeProof's self-describing wire shape: group.Scalar and
// group.Point each implement Marshal/UnmarshalCBOR, so cbor.Marshal walks
// this struct the same way it walks babyjubjub.BJJ in the teacher's
// MarshalCBOR/UnmarshalCBOR pair.
type cborProof struct {
	E0 group.Scalar
	C  []group.Point
	S1 []group.Scalar
	S2 []group.Scalar
}

// MarshalCBOR encodes the proof as a self-describing CBOR map, per
// spec.md §6's explicit mention of CBOR as the interchange format.
func (p *RangeProof) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(cborProof{E0: p.E0, C: p.C, S1: p.S1, S2: p.S2})
}

// UnmarshalCBOR decodes a proof previously produced by MarshalCBOR.
func (p *RangeProof) UnmarshalCBOR(data []byte) error {
	var cp cborProof
	if err := cbor.Unmarshal(data, &cp); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedProof, err)
	}
	if len(cp.C) != len(cp.S1) || len(cp.C) != len(cp.S2) {
		return ErrMalformedProof
	}
	p.E0, p.C, p.S1, p.S2 = cp.E0, cp.C, cp.S1, cp.S2
	return nil
}
