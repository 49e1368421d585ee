// Package group adapts filippo.io/edwards25519 to the prime-order group
// interface the rangeproof core assumes: scalar arithmetic, point addition
// and scalar multiplication, a 32-byte canonical compressed encoding, a
// fixed-base accelerator, a variable-time k-fold multiscalar product, and
// constant-time selection primitives.
//
// The core package never reaches into edwards25519 directly; every group
// operation it needs is exposed here, the way crypto/ecc's curve adapters
// wrap a concrete curve library behind a small, stable surface.
package group
