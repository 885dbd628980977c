// Package words implements the word-selection engine: the registration-time
// cornerstone pool, the deterministic daily word pair, and the motto.
//
// Everything in this package is a pure function of its inputs and the
// static keyword tables. Every "random looking" choice goes through the
// stable hash below, so two processes (or two releases) given the same
// inputs always produce the same words.
package words

import "hash/fnv"

// Sum64 returns a process-independent 64-bit hash of seed.
//
// It is FNV-1a finalized with a splitmix64 mixer. The extra mixing step
// spreads FNV's weak low bits so modular reduction over small table sizes
// stays unbiased. Never replace this with a salted or runtime-seeded hash:
// daily selections must be reproducible across runs and platforms.
func Sum64(seed string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return mix64(h.Sum64())
}

// Index maps seed onto [0, n). n <= 0 yields 0.
func Index(seed string, n int) int {
	if n <= 0 {
		return 0
	}
	return int(Sum64(seed) % uint64(n))
}

// mix64 is the splitmix64 finalizer.
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
