package kex

import (
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScheme exercises the properties every key exchange method must hold.
func TestScheme(t *testing.T, scheme Scheme) {
	newKeyExchange := func(i int) KeyExchange {
		rng := mrand.New(mrand.NewSource(int64(i)))
		serialized, err := scheme.NewPrivateKey(rng)
		require.NoError(t, err)
		kx, err := scheme.New(serialized)
		require.NoError(t, err)
		return kx
	}
	t.Run("Generate", func(t *testing.T) {
		rng := mrand.New(mrand.NewSource(0))
		serialized, err := scheme.NewPrivateKey(rng)
		require.NoError(t, err)
		require.NotEmpty(t, serialized)
	})
	t.Run("RoundTrip", func(t *testing.T) {
		rng := mrand.New(mrand.NewSource(0))
		serialized, err := scheme.NewPrivateKey(rng)
		require.NoError(t, err)
		kx1, err := scheme.New(serialized)
		require.NoError(t, err)
		kx2, err := scheme.New(serialized)
		require.NoError(t, err)
		require.Equal(t, kx1.PublicValue(), kx2.PublicValue())
		require.Len(t, kx1.PublicValue(), scheme.PublicValueSize())

		peer := newKeyExchange(1)
		shared1, err := kx1.ComputeSharedSecret(peer.PublicValue())
		require.NoError(t, err)
		shared2, err := kx2.ComputeSharedSecret(peer.PublicValue())
		require.NoError(t, err)
		require.Equal(t, shared1, shared2)
	})
	t.Run("Symmetry", func(t *testing.T) {
		a := newKeyExchange(0)
		b := newKeyExchange(1)
		sharedA, err := a.ComputeSharedSecret(b.PublicValue())
		require.NoError(t, err)
		sharedB, err := b.ComputeSharedSecret(a.PublicValue())
		require.NoError(t, err)
		require.NotZero(t, sharedA)
		require.Equal(t, sharedA, sharedB)
		require.Len(t, sharedA, scheme.SharedSize())
	})
	t.Run("Tag", func(t *testing.T) {
		require.Equal(t, scheme.Tag(), newKeyExchange(0).Tag())
		require.Equal(t, scheme.Tag(), newKeyExchange(1).Tag())
	})
	t.Run("RejectsEmpty", func(t *testing.T) {
		_, err := scheme.New(nil)
		require.Error(t, err)
	})
}
