package lzhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewState_Defaults(t *testing.T) {
	s, err := NewState(nil)
	require.NoError(t, err)

	assert.Equal(t, 6, s.Level())
	assert.Equal(t, 128, s.MaxChain())
	assert.Equal(t, VariantForLevel(6), s.Variant())
	assert.Equal(t, 1<<15, s.Window().Size())
	assert.Len(t, s.head, s.Variant().TableSize())
	assert.Len(t, s.prev, 1<<15)
	assert.Equal(t, uint32(0), s.RollHash())
}

func TestNewState_Errors(t *testing.T) {
	_, err := NewState(&Options{WindowBits: 16})
	require.ErrorIs(t, err, ErrInvalidWindowBits)

	_, err = NewState(&Options{WindowBits: 7})
	require.ErrorIs(t, err, ErrInvalidWindowBits)

	_, err = NewState(&Options{HashCalc: Variant(9)})
	require.ErrorIs(t, err, ErrInvalidHashCalc)

	if !CRC32Supported() {
		_, err = NewState(&Options{HashCalc: CRC32})
		require.ErrorIs(t, err, ErrUnsupportedHashCalc)
	}
}

func TestNewState_LogsSetup(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	s, err := NewState(&Options{Level: 9, Logger: zap.New(core)})
	require.NoError(t, err)
	assert.Equal(t, Roll, s.Variant())

	entries := logs.FilterMessage("hash state created").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "roll", entries[0].ContextMap()["hash"])
	assert.EqualValues(t, 9, entries[0].ContextMap()["level"])
}

func TestState_Reset(t *testing.T) {
	data := lowEntropyData(256, 2)

	for _, v := range supportedVariants() {
		t.Run(v.String(), func(t *testing.T) {
			s := newFilledState(t, v, data)
			s.SeedRollHash(0)
			s.InsertString(0, 200)
			require.NotZero(t, s.usedBuckets())

			s.Reset()

			assert.Zero(t, s.usedBuckets())
			assert.Equal(t, make([]uint16, len(s.prev)), s.prev)
			assert.Equal(t, uint32(0), s.RollHash())
			assert.Empty(t, s.Window().Filled())
			assert.Equal(t, v, s.Variant())
		})
	}
}

func TestState_SeedRollHash(t *testing.T) {
	s := newFilledState(t, Roll, []byte("xyz"))
	s.SetRollHash(0x1234)
	s.SeedRollHash(0)

	want := (uint32('x')<<rollHashSlide ^ uint32('y')) & stdHashMask
	assert.Equal(t, want, s.RollHash())
	assert.Equal(t, int(expectedBucket(Roll, []byte("xyz"), 0)), s.Bucket(0))
}

func TestState_Bucket(t *testing.T) {
	data := lowEntropyData(64, 9)

	for _, v := range supportedVariants() {
		s := newFilledState(t, v, data)
		s.SeedRollHash(10)

		bucket := s.Bucket(10)
		h := s.RollHash()
		assert.Equal(t, int(expectedBucket(v, data, 10)), bucket, v.String())
		assert.Equal(t, h, s.RollHash(), "Bucket must not advance the register")

		s.QuickInsertString(10)
		assert.Equal(t, uint16(10), s.Head(bucket), v.String())
	}
}

func TestState_SlideHash(t *testing.T) {
	s, err := NewState(&Options{WindowBits: 9, HashCalc: Standard})
	require.NoError(t, err)
	size := uint16(s.Window().Size())

	s.head[1] = size + 7
	s.head[2] = size
	s.head[3] = size - 1
	s.prev[5] = 2*size - 1
	s.prev[6] = 3

	s.SlideHash()

	assert.Equal(t, uint16(7), s.head[1])
	assert.Equal(t, uint16(0), s.head[2], "position equal to the slide becomes the sentinel")
	assert.Equal(t, uint16(0), s.head[3])
	assert.Equal(t, size-1, s.prev[5])
	assert.Equal(t, uint16(0), s.prev[6])
}

func TestStatePool_ReusesMatchingGeometry(t *testing.T) {
	cfg, err := (&Options{HashCalc: Standard, WindowBits: 10}).config()
	require.NoError(t, err)

	s := acquireState(cfg)
	s.Window().Fill([]byte("pooled state"))
	s.SeedRollHash(0)
	s.InsertString(0, 5)
	releaseState(s)

	again := acquireState(cfg)
	defer releaseState(again)

	assert.True(t, again.fits(cfg))
	assert.Zero(t, again.usedBuckets())
	assert.Empty(t, again.Window().Filled())
	assert.NotNil(t, again.logger)

	other, err := (&Options{HashCalc: Standard, WindowBits: 11}).config()
	require.NoError(t, err)
	assert.False(t, again.fits(other))
}
