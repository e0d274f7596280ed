package test

import (
	"math/rand"
	"sync"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var rngMu sync.Mutex

// RandomASCIIString returns a pseudo-random ASCII string within the provided
// length bounds.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}

	rngMu.Lock()
	defer rngMu.Unlock()

	length := minLen
	if maxLen > minLen {
		length += rand.Intn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = asciiLetters[rand.Intn(len(asciiLetters))]
	}
	return string(buf)
}
