package group_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/rangeproof/group"
)

func TestScalarArithmetic(t *testing.T) {
	c := qt.New(t)

	a := group.SystemRandomScalar()
	b := group.SystemRandomScalar()

	c.Assert(a.Add(b).Subtract(b).Equal(a), qt.IsTrue)
	c.Assert(a.Negate().Negate().Equal(a), qt.IsTrue)

	prod := a.Multiply(b)
	ma := a.MultiplyAdd(b, group.NewScalar())
	c.Assert(ma.Equal(prod), qt.IsTrue)

	inv := a.Invert()
	one := b.Multiply(b.Invert())
	c.Assert(a.Multiply(inv).Equal(one), qt.IsTrue)
}

func TestScalarCondAssign(t *testing.T) {
	c := qt.New(t)

	a := group.SystemRandomScalar()
	src := group.SystemRandomScalar()

	unchanged := a
	unchanged.CondAssign(src, 0)
	c.Assert(unchanged.Equal(a), qt.IsTrue)

	changed := a
	changed.CondAssign(src, 1)
	c.Assert(changed.Equal(src), qt.IsTrue)
}

func TestHashToScalarDeterministic(t *testing.T) {
	c := qt.New(t)

	s1 := group.HashToScalar([]byte("back-maxwell"))
	s2 := group.HashToScalar([]byte("back-maxwell"))
	s3 := group.HashToScalar([]byte("back-maxwell!"))

	c.Assert(s1.Equal(s2), qt.IsTrue)
	c.Assert(s1.Equal(s3), qt.IsFalse)
}

func TestScalarCanonicalRoundTrip(t *testing.T) {
	c := qt.New(t)

	s := group.SystemRandomScalar()
	decoded, err := group.SetCanonicalBytes(s.Bytes())
	c.Assert(err, qt.IsNil)
	c.Assert(decoded.Equal(s), qt.IsTrue)
}
