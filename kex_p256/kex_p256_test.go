package kex_p256

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/binary"
	"testing"

	"github.com/quicwire/go-kex"
	"github.com/stretchr/testify/require"
)

func TestP256(t *testing.T) {
	kex.TestScheme(t, New())
}

func TestRejectsShortKeyPair(t *testing.T) {
	for _, serialized := range [][]byte{nil, {}, {0x01}} {
		_, err := New().New(serialized)
		require.ErrorIs(t, err, kex.ErrMalformedKeyPair)
	}
}

func TestRejectsLengthOverrun(t *testing.T) {
	serialized := mustNewPrivateKey(t)
	// Declare more private key material than the blob holds.
	binary.LittleEndian.PutUint16(serialized, uint16(len(serialized)))
	_, err := New().New(serialized)
	require.ErrorIs(t, err, kex.ErrMalformedKeyPair)
}

func TestRejectsMissingPublicKey(t *testing.T) {
	serialized := mustNewPrivateKey(t)
	n := int(binary.LittleEndian.Uint16(serialized))
	_, err := New().New(serialized[:2+n])
	require.ErrorIs(t, err, kex.ErrMalformedKeyPair)
}

func TestRejectsCorruptPrivateKey(t *testing.T) {
	serialized := mustNewPrivateKey(t)
	serialized[2] ^= 0xff
	_, err := New().New(serialized)
	require.ErrorIs(t, err, kex.ErrInvalidPrivateKey)
}

func TestRejectsWrongCurve(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	require.NoError(t, err)
	serialized, err := marshalKeyPair(key)
	require.NoError(t, err)
	_, err = New().New(serialized)
	require.ErrorIs(t, err, kex.ErrInvalidKey)
}

func TestRejectsWrongCurveID(t *testing.T) {
	// Even when the point length checks out, a curve identifier that is not
	// byte-for-byte P-256's must fail validation.
	key, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	require.NoError(t, err)
	wrapped, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)
	err = validateCurveID(wrapped)
	require.ErrorIs(t, err, kex.ErrInvalidKey)

	publicValue := make([]byte, publicValueSize)
	publicValue[0] = uncompressedPointForm
	err = validateKeyPair(wrapped, key, publicValue)
	require.ErrorIs(t, err, kex.ErrInvalidKey)
}

func TestAcceptsOwnCurveID(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	wrapped, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)
	require.NoError(t, validateCurveID(wrapped))
}

func TestRejectsPeerValues(t *testing.T) {
	kx := mustKeyExchange(t)
	peer := mustKeyExchange(t)

	_, err := kx.ComputeSharedSecret(peer.PublicValue()[:64])
	require.ErrorIs(t, err, kex.ErrInvalidPeerValue)

	_, err = kx.ComputeSharedSecret(append(peer.PublicValue(), 0))
	require.ErrorIs(t, err, kex.ErrInvalidPeerValue)

	compressed := peer.PublicValue()
	compressed[0] = 0x03
	_, err = kx.ComputeSharedSecret(compressed)
	require.ErrorIs(t, err, kex.ErrInvalidPeerValue)
}

func TestRejectsOffCurvePeer(t *testing.T) {
	kx := mustKeyExchange(t)
	// Well-formed but not a point on the curve.
	peer := make([]byte, publicValueSize)
	peer[0] = uncompressedPointForm
	_, err := kx.ComputeSharedSecret(peer)
	require.ErrorIs(t, err, kex.ErrSharedKey)
}

func TestSecretLength(t *testing.T) {
	a := mustKeyExchange(t)
	b := mustKeyExchange(t)
	secret, err := a.ComputeSharedSecret(b.PublicValue())
	require.NoError(t, err)
	require.Len(t, secret, sharedSecretSize)
}

func mustNewPrivateKey(t *testing.T) []byte {
	serialized, err := New().NewPrivateKey(rand.Reader)
	require.NoError(t, err)
	return serialized
}

func mustKeyExchange(t *testing.T) kex.KeyExchange {
	kx, err := New().New(mustNewPrivateKey(t))
	require.NoError(t, err)
	return kx
}
