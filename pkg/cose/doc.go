// Package cose implements a strict canonical codec for COSE_Key
// public-key records (RFC 8152 section 7).
//
// A COSE_Key is a CBOR map with small integer labels. This package
// covers the public-key subset used for credential exchange: ECDSA
// P-256, ECDH-ES P-256, Ed25519, symmetric TOTP markers, and the
// Dilithium post-quantum family. Each key type is a concrete struct
// with fixed-size payload arrays and its own CBOR codec.
//
// # Canonical Form
//
// Encoded records are canonical CBOR: present fields only, always in
// the order kty, alg, crv/pub, x, y, with minimal-length integer and
// byte string headers. For these labels that order coincides with the
// RFC 7049 canonical map-key ordering, so two equal keys always encode
// to identical bytes.
//
// # Decoding Discipline
//
// Decoding is strict where it matters and tolerant where the registry
// allows extension:
//   - Known fields out of canonical order, or repeated: hard failure
//   - alg absent: accepted; alg present but wrong for the type: failure
//   - First unrecognized integer label: that entry and everything after
//     it is ignored
//   - Indefinite-length items and tags: rejected
//
// There is no blind "decode any key" entry point. The structural shapes
// of the variants overlap (a record without alg matches both P-256
// types), so callers decode the concrete type their context expects.
// The pkg/inspect package probes all variants for diagnostics.
package cose
