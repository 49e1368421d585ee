// Package rangeproof implements the Back-Maxwell rangeproof scheme from
// "Confidential Assets" (Poelstra, Back, Friedenbach, Maxwell, Wuille,
// 2017), hardcoding the ring size m=3 as the original does. A RangeProof
// demonstrates in zero knowledge that a Pedersen commitment C = r*G + v*H
// opens to a value v in [0, 3^n), without revealing v or r.
//
// The scheme decomposes v into n base-3 digits and binds one 3-element
// ring signature per digit; the rings share a single Fiat-Shamir
// challenge e_0 derived from all of their commitments, which is what
// makes the whole structure a single non-interactive proof instead of n
// independent ones. Package group supplies the underlying prime-order
// group and its constant-time selection primitives.
package rangeproof
