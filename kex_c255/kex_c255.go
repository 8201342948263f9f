// Package kex_c255 implements Diffie-Hellman key exchange over Curve25519.
//
// Curve25519 private keys are raw scalars, so the serialized form of a key
// pair is just the 32 private key bytes; the public value is recomputed on
// parse. Public values are 32-byte points.
package kex_c255

import (
	"io"

	"github.com/pkg/errors"
	"github.com/quicwire/go-kex"
	"golang.org/x/crypto/curve25519"
)

const (
	privateKeySize   = curve25519.ScalarSize
	publicValueSize  = curve25519.PointSize
	sharedSecretSize = 32
)

var _ kex.Scheme = Scheme{}

type Scheme struct{}

func New() Scheme {
	return Scheme{}
}

// NewPrivateKey generates a fresh private key using entropy from rng.
func (s Scheme) NewPrivateKey(rng io.Reader) ([]byte, error) {
	priv := make([]byte, privateKeySize)
	if _, err := io.ReadFull(rng, priv); err != nil {
		return nil, errors.Wrap(err, "cannot generate key pair")
	}
	return priv, nil
}

// New reconstructs a KeyExchange from a serialized private key.
func (s Scheme) New(serialized []byte) (kex.KeyExchange, error) {
	if len(serialized) != privateKeySize {
		return nil, errors.Wrapf(kex.ErrMalformedKeyPair, "%d bytes", len(serialized))
	}
	kx := &KeyExchange{}
	copy(kx.key[:], serialized)
	public, err := curve25519.X25519(kx.key[:], curve25519.Basepoint)
	if err != nil {
		return nil, errors.Wrapf(kex.ErrInvalidPrivateKey, "%v", err)
	}
	copy(kx.publicValue[:], public)
	return kx, nil
}

func (s Scheme) PublicValueSize() int {
	return publicValueSize
}

func (s Scheme) SharedSize() int {
	return sharedSecretSize
}

func (s Scheme) Tag() kex.Tag {
	return kex.TagC255
}

// KeyExchange is one party's Curve25519 key pair, scoped to a single
// handshake.
type KeyExchange struct {
	key         [privateKeySize]byte
	publicValue [publicValueSize]byte
}

// ComputeSharedSecret returns the raw X25519 output for the peer's public
// value, without any further derivation.
func (kx *KeyExchange) ComputeSharedSecret(peerPublicValue []byte) ([]byte, error) {
	if len(peerPublicValue) != publicValueSize {
		return nil, kex.ErrInvalidPeerValue
	}
	secret, err := curve25519.X25519(kx.key[:], peerPublicValue)
	if err != nil {
		return nil, errors.Wrapf(kex.ErrSharedKey, "%v", err)
	}
	if len(secret) != sharedSecretSize {
		return nil, kex.ErrUnexpectedSecretLength
	}
	return secret, nil
}

// PublicValue returns the point to send to the peer.
func (kx *KeyExchange) PublicValue() []byte {
	buf := make([]byte, publicValueSize)
	copy(buf, kx.publicValue[:])
	return buf
}

func (kx *KeyExchange) Tag() kex.Tag {
	return kex.TagC255
}
