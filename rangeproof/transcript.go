package rangeproof

import (
	"crypto/sha512"
	"hash"

	"github.com/vocdoni/rangeproof/group"
)

// transcript accumulates the per-digit ring closures R^0..R^{n-1} under a
// single running SHA-512 state and reduces the final digest to the outer
// challenge e_0, binding all n rings together into one proof.
type transcript struct {
	h hash.Hash
}

func newTranscript() *transcript {
	return &transcript{h: sha512.New()}
}

func (t *transcript) absorb(p group.Point) {
	t.h.Write(p.Bytes())
}

func (t *transcript) challenge() group.Scalar {
	return group.ScalarFromWideBytes(t.h.Sum(nil))
}

// ringChallenge derives a ring-signature challenge by scalar-reducing the
// SHA-512 digest of a single commitment point, per spec.md's H(.) notation.
func ringChallenge(p group.Point) group.Scalar {
	return group.HashToScalar(p.Bytes())
}
