package tests

import (
	"math/rand"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/stretchr/testify/require"
)

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return a
}

// advanceTime appends an empty block with a timestamp shifted d ahead of
// the previous one, moving the chain clock without generating thousands
// of blocks.
func advanceTime(t *testing.T, e *neotest.Executor, d time.Duration) {
	b := e.NewUnsignedBlock(t)
	b.Timestamp += uint64(d / time.Millisecond)
	e.SignBlock(b)
	require.NoError(t, e.Chain.AddBlock(b))
}
