package kex_c255

import (
	"crypto/rand"
	"testing"

	"github.com/quicwire/go-kex"
	"github.com/stretchr/testify/require"
)

func TestC255(t *testing.T) {
	kex.TestScheme(t, New())
}

func TestRejectsWrongSizeKey(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33} {
		_, err := New().New(make([]byte, n))
		require.ErrorIs(t, err, kex.ErrMalformedKeyPair)
	}
}

func TestRejectsWrongSizePeer(t *testing.T) {
	kx := mustKeyExchange(t)
	for _, n := range []int{0, 31, 33, 65} {
		_, err := kx.ComputeSharedSecret(make([]byte, n))
		require.ErrorIs(t, err, kex.ErrInvalidPeerValue)
	}
}

func TestRejectsLowOrderPeer(t *testing.T) {
	kx := mustKeyExchange(t)
	// The all-zero point produces an all-zero secret, which X25519 refuses.
	_, err := kx.ComputeSharedSecret(make([]byte, publicValueSize))
	require.ErrorIs(t, err, kex.ErrSharedKey)
}

func mustKeyExchange(t *testing.T) kex.KeyExchange {
	serialized, err := New().NewPrivateKey(rand.Reader)
	require.NoError(t, err)
	kx, err := New().New(serialized)
	require.NoError(t, err)
	return kx
}
