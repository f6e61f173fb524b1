package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feevault/feevault-server/pkg/protocol/data/protocolconfig"
)

func RunTests(t *testing.T, s protocolconfig.Store, teardown func()) {
	for _, tf := range []func(t *testing.T, s protocolconfig.Store){
		testHappyPath,
		testSingleton,
	} {
		tf(t, s)
		teardown()
	}
}

func testHappyPath(t *testing.T, s protocolconfig.Store) {
	t.Run("testHappyPath", func(t *testing.T) {
		ctx := context.Background()

		start := time.Now()
		time.Sleep(time.Millisecond)

		_, err := s.Get(ctx)
		assert.Equal(t, protocolconfig.ErrNotFound, err)

		record := &protocolconfig.Record{
			Address:      "config1",
			Authority:    "authority1",
			FeeRecipient: "feerecipient1",
			FeeBps:       100,
			Bump:         254,
		}
		require.NoError(t, s.Put(ctx, record))
		assert.True(t, record.Id > 0)

		actual, err := s.Get(ctx)
		require.NoError(t, err)
		require.NoError(t, actual.Validate())
		assert.True(t, actual.Id > 0)
		assert.Equal(t, "config1", actual.Address)
		assert.Equal(t, "authority1", actual.Authority)
		assert.Equal(t, "feerecipient1", actual.FeeRecipient)
		assert.EqualValues(t, 100, actual.FeeBps)
		assert.EqualValues(t, 254, actual.Bump)
		assert.True(t, actual.CreatedAt.After(start))
	})
}

func testSingleton(t *testing.T, s protocolconfig.Store) {
	t.Run("testSingleton", func(t *testing.T) {
		ctx := context.Background()

		record := &protocolconfig.Record{
			Address:      "config1",
			Authority:    "authority1",
			FeeRecipient: "feerecipient1",
			FeeBps:       100,
			Bump:         254,
		}
		require.NoError(t, s.Put(ctx, record))

		other := &protocolconfig.Record{
			Address:      "config2",
			Authority:    "authority2",
			FeeRecipient: "feerecipient2",
			FeeBps:       50,
			Bump:         255,
		}
		assert.Equal(t, protocolconfig.ErrAlreadyExists, s.Put(ctx, other))

		// The original record is untouched.
		actual, err := s.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "config1", actual.Address)
		assert.EqualValues(t, 100, actual.FeeBps)

		// Invalid records are rejected before hitting storage.
		invalid := &protocolconfig.Record{
			Address:      "config3",
			Authority:    "authority3",
			FeeRecipient: "feerecipient3",
			FeeBps:       10001,
		}
		assert.Error(t, invalid.Validate())
		assert.Error(t, s.Put(ctx, invalid))
	})
}
