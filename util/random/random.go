// Package random provides random code generation for admission forms.
package random

import (
	"crypto/rand"
	"math/big"
)

var numLowerSeq [36]rune

func init() {
	for i := 0; i < 10; i++ {
		numLowerSeq[i] = rune('0' + i)
	}
	for i := 0; i < 26; i++ {
		numLowerSeq[10+i] = rune('a' + i)
	}
}

// LowerSeq generates a random string of length n containing digits and lowercase letters.
func LowerSeq(n int) string {
	runes := make([]rune, n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(numLowerSeq))))
		if err != nil {
			panic("crypto/rand failed: " + err.Error())
		}
		runes[i] = numLowerSeq[idx.Int64()]
	}
	return string(runes)
}
