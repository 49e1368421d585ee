package rangeproof

import (
	"crypto/rand"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/rangeproof/group"
)

func testBasepoints() (group.BasepointTable, group.Point) {
	H := group.HashToPoint(group.G.Basepoint().Bytes())
	return group.G, H
}

func TestProveAndVerifyVartime(t *testing.T) {
	c := qt.New(t)
	G, H := testBasepoints()

	const n = 16
	const value = 13449261

	proof, commitment, blinding, err := CreateVartime(n, value, G, H, rand.Reader)
	c.Assert(err, qt.IsNil)

	C, ok := proof.Verify(n, G, H)
	c.Assert(ok, qt.IsTrue)
	c.Assert(C.Equal(commitment), qt.IsTrue)

	_, ok = proof.Verify(2, G, H)
	c.Assert(ok, qt.IsFalse)

	wantC := G.Mul(blinding).Add(H.ScalarMult(group.ScalarFromUint64(value)))
	c.Assert(C.Equal(wantC), qt.IsTrue)
}

func TestProveAndVerifyCT(t *testing.T) {
	c := qt.New(t)
	G, H := testBasepoints()

	const n = 16
	const value = 13449261

	proof, commitment, blinding, err := Create(n, value, G, H, rand.Reader)
	c.Assert(err, qt.IsNil)

	C, ok := proof.Verify(n, G, H)
	c.Assert(ok, qt.IsTrue)
	c.Assert(C.Equal(commitment), qt.IsTrue)

	_, ok = proof.Verify(2, G, H)
	c.Assert(ok, qt.IsFalse)

	wantC := G.Mul(blinding).Add(H.ScalarMult(group.ScalarFromUint64(value)))
	c.Assert(C.Equal(wantC), qt.IsTrue)
}

func TestProveOutOfRange(t *testing.T) {
	c := qt.New(t)
	G, H := testBasepoints()

	_, _, _, err := CreateVartime(10, 59049, G, H, rand.Reader) // == 3^10, not < 3^10
	c.Assert(err, qt.Equals, ErrValueOutOfRange)

	_, _, _, err = Create(10, 59049, G, H, rand.Reader)
	c.Assert(err, qt.Equals, ErrValueOutOfRange)
}

func TestProveZeroAtMaxN(t *testing.T) {
	c := qt.New(t)
	G, H := testBasepoints()

	proof, _, _, err := CreateVartime(MaxN, 0, G, H, rand.Reader)
	c.Assert(err, qt.IsNil)

	_, ok := proof.Verify(MaxN, G, H)
	c.Assert(ok, qt.IsTrue)
}

func TestVerifyRejectsTamperedProof(t *testing.T) {
	c := qt.New(t)
	G, H := testBasepoints()

	const n = 8
	proof, _, _, err := CreateVartime(n, 42, G, H, rand.Reader)
	c.Assert(err, qt.IsNil)

	proof.S1[0] = proof.S1[0].Add(group.SystemRandomScalar())

	_, ok := proof.Verify(n, G, H)
	c.Assert(ok, qt.IsFalse)
}

func TestMarshalBinaryRoundTripAndSize(t *testing.T) {
	c := qt.New(t)
	G, H := testBasepoints()

	const n = 40
	proof, _, _, err := CreateVartime(n, 134492616741, G, H, rand.Reader)
	c.Assert(err, qt.IsNil)

	data, err := proof.MarshalBinary()
	c.Assert(err, qt.IsNil)
	c.Assert(len(data), qt.Equals, 32*(1+3*n))
	c.Assert(len(data), qt.Equals, 3872)

	var decoded RangeProof
	c.Assert(decoded.UnmarshalBinary(data), qt.IsNil)

	_, ok := decoded.Verify(n, G, H)
	c.Assert(ok, qt.IsTrue)
}

func TestMarshalCBORRoundTrip(t *testing.T) {
	c := qt.New(t)
	G, H := testBasepoints()

	const n = 12
	proof, _, _, err := Create(n, 777, G, H, rand.Reader)
	c.Assert(err, qt.IsNil)

	data, err := proof.MarshalCBOR()
	c.Assert(err, qt.IsNil)

	var decoded RangeProof
	c.Assert(decoded.UnmarshalCBOR(data), qt.IsNil)

	_, ok := decoded.Verify(n, G, H)
	c.Assert(ok, qt.IsTrue)
}
