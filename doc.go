// Package blobcheck is a correctness and performance verification harness
// for blob write/read paths.
//
// The harness generates binary payloads (payload package), writes them
// through a blobstore.Store, resolves the returned locator back into
// readable content through an independent path, and asserts byte-exact
// equivalence (compare package). A Sequence runs the named correctness
// scenarios — fresh path, overwrite, alternate directory, concurrent
// isolation, large payload — and a Benchmark sweeps payload size
// exponentially across competing stores, timing each write.
//
// The central invariant under test: for any successful write, resolving the
// returned locator must yield bytes exactly equal to what was written. Any
// deviation is fatal; the harness never retries.
//
//	store := blobstore.NewLocalStore(dir)
//	seq := blobcheck.NewSequence(store)
//	if err := seq.Run(ctx); err != nil {
//	    // the run failed; err carries the first mismatch or store error
//	}
package blobcheck
