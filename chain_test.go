package lzhash

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_NewestFirst(t *testing.T) {
	data := bytes.Repeat([]byte("wxyz"), 64)

	for _, v := range supportedVariants() {
		t.Run(v.String(), func(t *testing.T) {
			s := newFilledState(t, v, data)
			s.SeedRollHash(0)
			s.InsertString(0, 200)

			bucket := int(expectedBucket(v, data, 4))
			chain := slices.Collect(s.Chain(s.Head(bucket), 0))

			// Every 4th position shares the bucket; position 0 is the sentinel.
			require.NotEmpty(t, chain)
			assert.Equal(t, uint16(196), chain[0])
			assert.Equal(t, uint16(4), chain[len(chain)-1])
			assert.True(t, slices.IsSortedFunc(chain, func(a, b uint16) int { return int(b) - int(a) }))
			for _, pos := range chain {
				assert.Zero(t, pos%4, "unexpected position %d in chain", pos)
			}
			assert.Len(t, chain, 49)
		})
	}
}

func TestChain_Limit(t *testing.T) {
	data := bytes.Repeat([]byte{0x42}, 512)
	s := newFilledState(t, Standard, data)
	s.InsertString(0, 400)

	head := s.Head(int(expectedBucket(Standard, data, 0)))
	require.Equal(t, uint16(399), head)

	assert.Equal(t, 10, s.ChainLen(head, 10))
	assert.Equal(t, 399, s.ChainLen(head, 0))
	assert.Equal(t, []uint16{399, 398, 397}, slices.Collect(s.Chain(head, 3)))

	// Early break from the consumer.
	n := 0
	for range s.Chain(head, 0) {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

func TestChain_StopsOnForwardLink(t *testing.T) {
	s, err := NewState(&Options{HashCalc: Standard, WindowBits: 9})
	require.NoError(t, err)

	s.prev[10] = 5
	s.prev[5] = 10 // stale link pointing forward
	assert.Equal(t, []uint16{10, 5}, slices.Collect(s.Chain(10, 0)))

	assert.Empty(t, slices.Collect(s.Chain(0, 0)))
}
