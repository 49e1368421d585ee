package rangeproof

import "fmt"

// ErrValueOutOfRange is returned by Create and CreateVartime when value has
// a nonzero base-3 digit at or above position n, i.e. value is not in
// [0, 3^n).
var ErrValueOutOfRange = fmt.Errorf("rangeproof: value is not in [0, 3^n)")

// ErrMalformedProof is returned by UnmarshalBinary and UnmarshalCBOR when
// the encoded proof's component counts are inconsistent or a point/scalar
// fails to decode.
var ErrMalformedProof = fmt.Errorf("rangeproof: malformed proof encoding")

// ErrBoundTooLarge is the value passed to panic by Create, CreateVartime
// and Verify when n exceeds MaxN: exceeding the ring count the digit
// decomposition was sized for is a programming error in the caller, not a
// runtime condition, so it is never returned as an error value.
var ErrBoundTooLarge = fmt.Errorf("rangeproof: n exceeds MaxN")
