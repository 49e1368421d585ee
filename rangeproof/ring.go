package rangeproof

import (
	"io"

	"github.com/vocdoni/rangeproof/group"
)

// digitState carries the per-digit prover state computed in the ring's
// first pass (which chooses the ring's starting point and, for digits 1
// and 2, the commitment C) forward into the second pass (which closes the
// ring using the shared outer challenge e_0, and for digit 0 chooses C).
type digitState struct {
	v      byte
	k      group.Scalar
	r      group.Scalar
	C      group.Point
	s2     group.Scalar // final for v==1 after pass 1; unused otherwise until pass 2
	e1, e2 group.Scalar // only meaningful for the constant-time kernel
}

// vartimeRingPass1 builds the i-th ring's opening point R, branching
// directly on the digit value v. miH and mi2H are 3^i*H and 2*3^i*H.
func vartimeRingPass1(v byte, miH, mi2H group.Point, G group.BasepointTable, rng io.Reader) (group.Point, digitState) {
	k := group.RandomScalar(rng)

	switch v {
	case 0:
		R := G.Mul(k)
		return R, digitState{v: v, k: k}

	case 1:
		r := group.RandomScalar(rng)
		C := G.Mul(r).Add(miH)

		P := G.Mul(k)
		e1 := ringChallenge(P)

		s2 := group.RandomScalar(rng)
		CiMinus2miH := C.Subtract(mi2H)
		P = group.KFoldMultiScalarMult(
			[]group.Scalar{s2, e1.Negate()},
			[]group.Point{G.Basepoint(), CiMinus2miH},
		)
		e2 := ringChallenge(P)

		R := C.ScalarMult(e2)
		return R, digitState{v: v, k: k, r: r, C: C, s2: s2}

	case 2:
		r := group.RandomScalar(rng)
		C := G.Mul(r).Add(mi2H)

		P := G.Mul(k)
		e2 := ringChallenge(P)

		R := C.ScalarMult(e2)
		return R, digitState{v: v, k: k, r: r, C: C}

	default:
		panic("rangeproof: digit out of {0,1,2}")
	}
}

// vartimeRingPass2 closes the i-th ring using the outer challenge e0,
// returning the proof's per-digit response scalars and commitment.
func vartimeRingPass2(st digitState, miH, mi2H group.Point, e0 group.Scalar, G group.BasepointTable, rng io.Reader) (s1, s2 group.Scalar, C group.Point, r group.Scalar) {
	switch st.v {
	case 0:
		k1 := group.RandomScalar(rng)
		P := group.KFoldMultiScalarMult(
			[]group.Scalar{k1, e0},
			[]group.Point{G.Basepoint(), miH},
		)
		e1 := ringChallenge(P)

		k2 := group.RandomScalar(rng)
		P = group.KFoldMultiScalarMult(
			[]group.Scalar{k2, e1},
			[]group.Point{G.Basepoint(), mi2H},
		)
		e2 := ringChallenge(P)

		e2Inv := e2.Invert()
		r = e2Inv.Multiply(st.k)
		C = G.Mul(r)

		ke2Inv := st.k.Multiply(e2Inv)
		s1 = k1.Add(e0.Multiply(ke2Inv))
		s2 = k2.Add(e1.Multiply(ke2Inv))
		return s1, s2, C, r

	case 1:
		s1 = e0.MultiplyAdd(st.r, st.k)
		return s1, st.s2, st.C, st.r

	case 2:
		s1 = group.RandomScalar(rng)
		CiMinusMiH := st.C.Subtract(miH)
		P := group.KFoldMultiScalarMult(
			[]group.Scalar{s1, e0.Negate()},
			[]group.Point{G.Basepoint(), CiMinusMiH},
		)
		e1 := ringChallenge(P)
		s2 = e1.MultiplyAdd(st.r, st.k)
		return s1, s2, st.C, st.r

	default:
		panic("rangeproof: digit out of {0,1,2}")
	}
}

// ctRingPass1 is the constant-time counterpart of vartimeRingPass1: every
// branch's operations execute for every digit, and the result for the
// actual digit value is selected via group.Scalar/Point.CondAssign rather
// than a data-dependent branch.
func ctRingPass1(v byte, miH, mi2H group.Point, G group.BasepointTable, rng io.Reader) (group.Point, digitState) {
	nonzero := group.ByteNonzeroCT(v)
	eq1 := group.ByteEqCT(v, 1)
	eq2 := group.ByteEqCT(v, 2)

	k := group.RandomScalar(rng)

	r := group.NewScalar()
	maybeR := group.RandomScalar(rng)
	r.CondAssign(maybeR, nonzero)

	whichMiH := miH
	whichMiH.CondAssign(mi2H, eq2)

	C := group.Identity()
	maybeC := G.Mul(r).Add(whichMiH)
	C.CondAssign(maybeC, nonzero)

	P := G.Mul(k)
	maybeE := ringChallenge(P)
	e1 := group.NewScalar()
	e1.CondAssign(maybeE, eq1)
	e2 := group.NewScalar()
	e2.CondAssign(maybeE, eq2)

	s2 := group.NewScalar()
	maybeS2 := group.RandomScalar(rng)
	s2.CondAssign(maybeS2, eq1)

	CiMinus2miH := C.Subtract(mi2H)
	P = group.KFoldMultiScalarMult(
		[]group.Scalar{s2, e1.Negate()},
		[]group.Point{G.Basepoint(), CiMinus2miH},
	)
	maybeE = ringChallenge(P)
	e2.CondAssign(maybeE, eq1)

	R := G.Mul(k)
	maybeRi := C.ScalarMult(e2)
	R.CondAssign(maybeRi, nonzero)

	return R, digitState{v: v, k: k, r: r, C: C, s2: s2, e1: e1, e2: e2}
}

// ctRingPass2 is the constant-time counterpart of vartimeRingPass2.
func ctRingPass2(st digitState, miH, mi2H group.Point, e0 group.Scalar, G group.BasepointTable, rng io.Reader) (s1, s2 group.Scalar, C group.Point, r group.Scalar) {
	eq0 := group.ByteEqCT(st.v, 0)
	eq1 := group.ByteEqCT(st.v, 1)
	eq2 := group.ByteEqCT(st.v, 2)

	k1 := group.NewScalar()
	maybeK1 := group.RandomScalar(rng)
	k1.CondAssign(maybeK1, eq0)

	P := group.KFoldMultiScalarMult(
		[]group.Scalar{k1, e0},
		[]group.Point{G.Basepoint(), miH},
	)
	maybeE1 := ringChallenge(P)
	e1 := st.e1
	e1.CondAssign(maybeE1, eq0)

	k2 := group.NewScalar()
	maybeK2 := group.RandomScalar(rng)
	k2.CondAssign(maybeK2, eq0)

	P = group.KFoldMultiScalarMult(
		[]group.Scalar{k2, e1},
		[]group.Point{G.Basepoint(), mi2H},
	)
	maybeE2 := ringChallenge(P)
	e2 := st.e2
	e2.CondAssign(maybeE2, eq0)

	e2Inv := e2.Invert()
	ke2Inv := st.k.Multiply(e2Inv)

	r = st.r
	maybeR := e2Inv.Multiply(st.k)
	r.CondAssign(maybeR, eq0)

	C = st.C
	maybeC := G.Mul(r)
	C.CondAssign(maybeC, eq0)

	s1 = group.NewScalar()
	maybeS1 := k1.Add(e0.Multiply(ke2Inv))
	s1.CondAssign(maybeS1, eq0)
	maybeS1 = e0.MultiplyAdd(r, st.k)
	s1.CondAssign(maybeS1, eq1)
	maybeS1 = group.RandomScalar(rng)
	s1.CondAssign(maybeS1, eq2)

	CiMinusMiH := C.Subtract(miH)
	P = group.KFoldMultiScalarMult(
		[]group.Scalar{s1, e0.Negate()},
		[]group.Point{G.Basepoint(), CiMinusMiH},
	)
	maybeE1b := ringChallenge(P)
	e1.CondAssign(maybeE1b, eq2)

	s2 = st.s2
	maybeS2 := k2.Add(e1.Multiply(ke2Inv))
	s2.CondAssign(maybeS2, eq0)
	maybeS2 = e1.MultiplyAdd(r, st.k)
	s2.CondAssign(maybeS2, eq2)

	return s1, s2, C, r
}
