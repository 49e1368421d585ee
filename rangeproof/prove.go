package rangeproof

import (
	"io"

	"github.com/vocdoni/rangeproof/group"
)

// CreateVartime constructs a rangeproof that value is in [0, 3^n), running
// in variable time (the happy path branches directly on each base-3 digit
// of value). n must be at most MaxN, or this panics: that mirrors a
// programming error, not an untrusted input.
//
// If value is not in [0, 3^n), it returns ErrValueOutOfRange. Otherwise it
// returns the proof together with the Pedersen commitment C =
// blinding*G + value*H and the blinding factor itself; only the proof is
// meant for the verifier.
func CreateVartime(n int, value uint64, G group.BasepointTable, H group.Point, rng io.Reader) (*RangeProof, group.Point, group.Scalar, error) {
	if n > MaxN {
		panic(ErrBoundTooLarge)
	}

	v := digits(value)
	if !inRange(v, n) {
		return nil, group.Point{}, group.Scalar{}, ErrValueOutOfRange
	}

	R := make([]group.Point, n)
	states := make([]digitState, n)

	miH := H
	for i := 0; i < n; i++ {
		mi2H := miH.Add(miH)
		R[i], states[i] = vartimeRingPass1(v[i], miH, mi2H, G, rng)
		miH = mi2H.Add(miH)
	}

	tr := newTranscript()
	for i := 0; i < n; i++ {
		tr.absorb(R[i])
	}
	e0 := tr.challenge()

	C := make([]group.Point, n)
	s1 := make([]group.Scalar, n)
	s2 := make([]group.Scalar, n)
	r := make([]group.Scalar, n)

	miH = H
	for i := 0; i < n; i++ {
		mi2H := miH.Add(miH)
		s1[i], s2[i], C[i], r[i] = vartimeRingPass2(states[i], miH, mi2H, e0, G, rng)
		miH = miH.Add(mi2H)
	}

	return finishProof(e0, C, s1, s2, r)
}

// Create constructs a rangeproof for value, performing the same group
// operations regardless of the digit values so that its running time does
// not leak value through branch timing. It is roughly 3x (= m) slower
// than CreateVartime.
//
// Even with a deterministic rng, Create and CreateVartime will not produce
// identical proofs for the same value: the constant-time kernel always
// draws the randomness every branch would need, discarding what the
// actual digit doesn't use.
func Create(n int, value uint64, G group.BasepointTable, H group.Point, rng io.Reader) (*RangeProof, group.Point, group.Scalar, error) {
	if n > MaxN {
		panic(ErrBoundTooLarge)
	}

	v := digits(value)
	if !inRange(v, n) {
		return nil, group.Point{}, group.Scalar{}, ErrValueOutOfRange
	}

	R := make([]group.Point, n)
	states := make([]digitState, n)

	miH := H
	for i := 0; i < n; i++ {
		mi2H := miH.Add(miH)
		R[i], states[i] = ctRingPass1(v[i], miH, mi2H, G, rng)
		miH = mi2H.Add(miH)
	}

	tr := newTranscript()
	for i := 0; i < n; i++ {
		tr.absorb(R[i])
	}
	e0 := tr.challenge()

	C := make([]group.Point, n)
	s1 := make([]group.Scalar, n)
	s2 := make([]group.Scalar, n)
	r := make([]group.Scalar, n)

	miH = H
	for i := 0; i < n; i++ {
		mi2H := miH.Add(miH)
		s1[i], s2[i], C[i], r[i] = ctRingPass2(states[i], miH, mi2H, e0, G, rng)
		miH = miH.Add(mi2H)
	}

	return finishProof(e0, C, s1, s2, r)
}

// finishProof assembles the RangeProof and the aggregate Pedersen
// commitment/blinding from the per-digit commitments and responses: the
// commitment to value is the sum of the per-digit commitments, since each
// C[i] = r[i]*G + digit[i]*3^i*H and value = sum(digit[i]*3^i).
func finishProof(e0 group.Scalar, C []group.Point, s1, s2, r []group.Scalar) (*RangeProof, group.Point, group.Scalar, error) {
	blinding := group.NewScalar()
	commitment := group.Identity()
	for i := range C {
		blinding = blinding.Add(r[i])
		commitment = commitment.Add(C[i])
	}

	proof := &RangeProof{
		E0: e0,
		C:  C,
		S1: s1,
		S2: s2,
	}
	return proof, commitment, blinding, nil
}
