package lvt

import (
	"math/rand"
)

// Sample returns n rows of t chosen uniformly at random without
// replacement. The selection depends only on seed and the table length. A
// table with n rows or fewer is returned as is.
func Sample(t *Table, n int, seed int64) *Table {
	if t.Len() <= n {
		return t
	}
	rnd := rand.New(rand.NewSource(seed))
	return t.subset(rnd.Perm(t.Len())[:n])
}
