// Package testutil provides testing utilities for blobcheck.
//
// This package is intended for use in tests only. It provides store
// wrappers that inject the failure modes the harness exists to detect:
//
//	store := testutil.NewCorruptingStore(inner, 3) // flip byte at offset 3
//	store := testutil.NewTruncatingStore(inner, 1) // drop the last byte
//
// A verifier pointed at a wrapped store must report the corruption with the
// exact offset, or the truncation as a length mismatch.
package testutil
