package group_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/rangeproof/group"
)

func TestPointArithmetic(t *testing.T) {
	c := qt.New(t)

	s := group.SystemRandomScalar()
	p := group.ScalarBaseMult(s)

	c.Assert(p.Add(group.Identity()).Equal(p), qt.IsTrue)
	c.Assert(p.Subtract(p).Equal(group.Identity()), qt.IsTrue)
	c.Assert(p.Add(p.Negate()).Equal(group.Identity()), qt.IsTrue)
}

func TestPointCompressRoundTrip(t *testing.T) {
	c := qt.New(t)

	p := group.ScalarBaseMult(group.SystemRandomScalar())
	decoded, err := group.SetBytes(p.Bytes())
	c.Assert(err, qt.IsNil)
	c.Assert(decoded.Equal(p), qt.IsTrue)
}

func TestBasepointTableMatchesScalarMult(t *testing.T) {
	c := qt.New(t)

	s := group.SystemRandomScalar()
	viaTable := group.G.Mul(s)
	viaVarBase := group.G.Basepoint().ScalarMult(s)
	c.Assert(viaTable.Equal(viaVarBase), qt.IsTrue)
}

func TestKFoldMultiScalarMult(t *testing.T) {
	c := qt.New(t)

	a := group.SystemRandomScalar()
	b := group.SystemRandomScalar()
	P := group.ScalarBaseMult(group.SystemRandomScalar())
	Q := group.ScalarBaseMult(group.SystemRandomScalar())

	got := group.KFoldMultiScalarMult([]group.Scalar{a, b}, []group.Point{P, Q})
	want := P.ScalarMult(a).Add(Q.ScalarMult(b))
	c.Assert(got.Equal(want), qt.IsTrue)
}

func TestPointCondAssign(t *testing.T) {
	c := qt.New(t)

	p := group.ScalarBaseMult(group.SystemRandomScalar())
	src := group.ScalarBaseMult(group.SystemRandomScalar())

	unchanged := p
	unchanged.CondAssign(src, 0)
	c.Assert(unchanged.Equal(p), qt.IsTrue)

	changed := p
	changed.CondAssign(src, 1)
	c.Assert(changed.Equal(src), qt.IsTrue)
}

func TestHashToPointIsDeterministicAndSubgroup(t *testing.T) {
	c := qt.New(t)

	h1 := group.HashToPoint(group.Generator().Bytes())
	h2 := group.HashToPoint(group.Generator().Bytes())
	c.Assert(h1.Equal(h2), qt.IsTrue)
	c.Assert(h1.IsIdentity(), qt.IsFalse)

	// h1 lies in the prime-order subgroup iff 8*((8^-1 mod ell)*h1) == h1;
	// a nonzero torsion component would survive as an offset.
	eight := group.ScalarFromUint64(8)
	c.Assert(h1.ScalarMult(eight.Invert()).ScalarMult(eight).Equal(h1), qt.IsTrue)
}
