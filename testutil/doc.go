// Package testutil provides testing utilities for the library.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random number generator with helpers for
// producing reproducible bits, bytes, booleans and float vectors.
//
// # Usage
//
//	rng := testutil.NewRNG(42)
//	bits := rng.Bits(128)                   // random bits
//	vecs := rng.UniformRangeVectors(10, 64) // values in [-1, 1)
//
// The same seed always yields the same draws, so failures reproduce.
package testutil
