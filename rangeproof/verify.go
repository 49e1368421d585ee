package rangeproof

import "github.com/vocdoni/rangeproof/group"

// Verify checks the proof against the public parameters G, H and ring
// count n, returning the Pedersen commitment it attests to and true on
// success. On failure it returns the zero-value group.Point{} (not the
// identity; it wraps no point) and false: malformed
// proofs (wrong array lengths) and cryptographically invalid proofs
// (wrong challenge) are not distinguished, since neither is meaningful to
// a verifier beyond "reject".
//
// n must be at most MaxN, or this panics: as in Create, an out-of-bounds
// n is a caller bug, not an adversarial input.
func (p *RangeProof) Verify(n int, G group.BasepointTable, H group.Point) (group.Point, bool) {
	if n > MaxN {
		panic(ErrBoundTooLarge)
	}
	if len(p.C) != n || len(p.S1) != n || len(p.S2) != n {
		return group.Point{}, false
	}

	tr := newTranscript()
	C := group.Identity()
	miH := H

	for i := 0; i < n; i++ {
		mi2H := miH.Add(miH)

		CiMinusMiH := p.C[i].Subtract(miH)
		P := group.KFoldMultiScalarMult(
			[]group.Scalar{p.S1[i], p.E0.Negate()},
			[]group.Point{G.Basepoint(), CiMinusMiH},
		)
		ei1 := ringChallenge(P)

		CiMinus2miH := p.C[i].Subtract(mi2H)
		P = group.KFoldMultiScalarMult(
			[]group.Scalar{p.S2[i], ei1.Negate()},
			[]group.Point{G.Basepoint(), CiMinus2miH},
		)
		ei2 := ringChallenge(P)

		Ri := p.C[i].ScalarMult(ei2)
		tr.absorb(Ri)
		C = C.Add(p.C[i])

		miH = miH.Add(mi2H)
	}

	e0Hat := tr.challenge()
	if !e0Hat.Equal(p.E0) {
		return group.Point{}, false
	}
	return C, true
}
