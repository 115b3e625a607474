package payload

import "fmt"

// UniformChunkSize caps the size of each chunk appended by GenerateUniform.
// Growing the payload in bounded steps keeps peak allocation pressure low on
// constrained runtimes, where a single huge allocation can fail outright.
const UniformChunkSize = 10 << 20 // 10 MiB

// GenerateRandom produces a payload of n bytes where every byte is an
// independent uniform draw. This is the slow, entropic path: use it where a
// meaningful byte-exact comparison needs content that cannot collide by
// accident.
func GenerateRandom(rng *RNG, n int) *Payload {
	buf := make([]byte, n)
	rng.FillBytes(buf)
	return newOwned(buf)
}

// GenerateUniform produces a zero-filled payload of n bytes by appending
// chunks of at most UniformChunkSize until the requested length is reached.
// This is the fast path used by the benchmark sweep.
func GenerateUniform(n int) *Payload {
	buf := make([]byte, 0)
	for remaining := n; remaining > 0; {
		chunk := UniformChunkSize
		if remaining < chunk {
			chunk = remaining
		}
		buf = append(buf, make([]byte, chunk)...)
		remaining -= chunk
	}
	// A wrong length here means the chunking itself is broken, which no
	// caller can recover from.
	if len(buf) != n {
		panic(fmt.Sprintf("payload: uniform generation produced %d bytes, want %d", len(buf), n))
	}
	return newOwned(buf)
}
