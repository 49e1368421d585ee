package group

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"github.com/fxamacker/cbor/v2"
)

// Scalar is a residue mod the group order ell.
type Scalar struct {
	s *edwards25519.Scalar
}

// NewScalar returns the zero scalar.
func NewScalar() Scalar {
	return Scalar{s: edwards25519.NewScalar()}
}

// RandomScalar draws a uniformly random scalar using the given CSPRNG,
// which should be cryptographically secure (e.g. crypto/rand.Reader).
func RandomScalar(rng io.Reader) Scalar {
	var buf [64]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		panic(fmt.Sprintf("group: failed to read randomness: %v", err))
	}
	s, err := edwards25519.NewScalar().SetUniformBytes(buf[:])
	if err != nil {
		panic(fmt.Sprintf("group: unreachable: SetUniformBytes rejected 64 bytes: %v", err))
	}
	return Scalar{s: s}
}

// SystemRandomScalar draws a uniformly random scalar from crypto/rand.
func SystemRandomScalar() Scalar {
	return RandomScalar(rand.Reader)
}

// ScalarFromWideBytes reduces a pre-computed 64-byte digest into a scalar,
// without hashing it again. Used by the transcript, which accumulates many
// absorbed points under a single running SHA-512 state before reducing
// once at finalization.
func ScalarFromWideBytes(digest []byte) Scalar {
	if len(digest) != 64 {
		panic(fmt.Sprintf("group: ScalarFromWideBytes: want 64 bytes, got %d", len(digest)))
	}
	s, err := edwards25519.NewScalar().SetUniformBytes(digest)
	if err != nil {
		panic(fmt.Sprintf("group: unreachable: SetUniformBytes rejected 64 bytes: %v", err))
	}
	return Scalar{s: s}
}

// HashToScalar reduces a 64-byte SHA-512 digest of msg into a scalar, per
// the Fiat-Shamir inner and outer challenge derivations of spec.md §4.2/4.3.
func HashToScalar(msg []byte) Scalar {
	h := sha512.Sum512(msg)
	s, err := edwards25519.NewScalar().SetUniformBytes(h[:])
	if err != nil {
		panic(fmt.Sprintf("group: unreachable: SetUniformBytes rejected a 64-byte SHA-512 digest: %v", err))
	}
	return Scalar{s: s}
}

// ScalarFromUint64 embeds a small nonnegative integer as a scalar, by
// placing it little-endian in the low 8 bytes of the canonical encoding.
func ScalarFromUint64(x uint64) Scalar {
	var buf [32]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(x >> (8 * uint(i)))
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(buf[:])
	if err != nil {
		panic(fmt.Sprintf("group: unreachable: low-8-byte encoding rejected: %v", err))
	}
	return Scalar{s: s}
}

// Add returns a+b.
func (a Scalar) Add(b Scalar) Scalar {
	return Scalar{s: edwards25519.NewScalar().Add(a.s, b.s)}
}

// Subtract returns a-b.
func (a Scalar) Subtract(b Scalar) Scalar {
	return Scalar{s: edwards25519.NewScalar().Subtract(a.s, b.s)}
}

// Negate returns -a.
func (a Scalar) Negate() Scalar {
	return Scalar{s: edwards25519.NewScalar().Negate(a.s)}
}

// Multiply returns a*b.
func (a Scalar) Multiply(b Scalar) Scalar {
	return Scalar{s: edwards25519.NewScalar().Multiply(a.s, b.s)}
}

// MultiplyAdd returns a*b+c as a single operation.
func (a Scalar) MultiplyAdd(b, c Scalar) Scalar {
	return Scalar{s: edwards25519.NewScalar().MultiplyAdd(a.s, b.s, c.s)}
}

// Invert returns 1/a. It panics if a is zero: its call sites (the v=0
// ring branch, and the constant-time kernel, which inverts e2 for every
// digit) pass a hash-derived scalar, nonzero with overwhelming probability, per
// spec.md §4.3, and the spec requires treating a zero inversion as an
// assertion failure rather than a silent wraparound.
func (a Scalar) Invert() Scalar {
	if a.IsZero() {
		panic("group: Invert called on the zero scalar")
	}
	return Scalar{s: edwards25519.NewScalar().Invert(a.s)}
}

// IsZero reports whether a is the additive identity.
func (a Scalar) IsZero() bool {
	return a.Equal(Scalar{s: edwards25519.NewScalar()})
}

// Equal reports whether a and b are the same residue.
func (a Scalar) Equal(b Scalar) bool {
	return a.s.Equal(b.s) == 1
}

// Bytes returns the 32-byte little-endian canonical encoding of a.
func (a Scalar) Bytes() []byte {
	return a.s.Bytes()
}

// SetCanonicalBytes decodes a 32-byte canonical scalar encoding.
func SetCanonicalBytes(b []byte) (Scalar, error) {
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return Scalar{}, fmt.Errorf("group: invalid scalar encoding: %w", err)
	}
	return Scalar{s: s}, nil
}

// MarshalCBOR encodes a as its 32-byte canonical representation.
func (a Scalar) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(a.Bytes())
}

// UnmarshalCBOR decodes a 32-byte canonical scalar representation into a.
func (a *Scalar) UnmarshalCBOR(buf []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(buf, &raw); err != nil {
		return fmt.Errorf("group: decoding scalar CBOR: %w", err)
	}
	s, err := SetCanonicalBytes(raw)
	if err != nil {
		return err
	}
	*a = s
	return nil
}

// CondAssign sets a to src iff mask is nonzero, in a manner whose control
// flow and memory access pattern does not depend on mask: the selection is
// realized as field arithmetic (a = a + mask*(src-a)), never a conditional
// branch. mask must be 0 or 1.
func (a *Scalar) CondAssign(src Scalar, mask byte) {
	m := maskScalar(mask)
	diff := src.Subtract(*a)
	*a = a.Add(diff.Multiply(m))
}

// maskScalar lifts a 0/1 byte into the corresponding scalar without a
// data-dependent branch.
func maskScalar(mask byte) Scalar {
	var buf [32]byte
	buf[0] = mask & 1
	s, err := edwards25519.NewScalar().SetCanonicalBytes(buf[:])
	if err != nil {
		panic(fmt.Sprintf("group: unreachable: mask byte did not canonicalize: %v", err))
	}
	return Scalar{s: s}
}
