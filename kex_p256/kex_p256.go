// Package kex_p256 implements ECDH key exchange over NIST P-256.
//
// A serialized key pair is
//
//	[uint16 little-endian length][wrapped private key][exported public key]
//
// where the wrapped private key is the SEC1 DER encoding of the private key
// and the exported public key is the uncompressed curve point. Public values
// exchanged with a peer are uncompressed points: a 0x04 marker byte followed
// by the 32-byte X and Y coordinates.
package kex_p256

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"io"

	"github.com/pkg/errors"
	"github.com/quicwire/go-kex"
)

var log = kex.Logger

const (
	// uncompressedPointForm marks an uncompressed EC point.
	uncompressedPointForm = 0x04
	// publicValueSize is the size of an uncompressed P-256 point.
	publicValueSize = 65
	// sharedSecretSize is the size of a P-256 field element.
	sharedSecretSize = 32
)

var _ kex.Scheme = Scheme{}

type Scheme struct{}

func New() Scheme {
	return Scheme{}
}

// NewPrivateKey generates an ephemeral key pair using entropy from rng and
// returns it in serialized form.
func (s Scheme) NewPrivateKey(rng io.Reader) ([]byte, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rng)
	if err != nil {
		return nil, errors.Wrap(err, "cannot generate key pair")
	}
	return marshalKeyPair(key)
}

// New reconstructs a KeyExchange from a serialized key pair, rejecting input
// which is structurally broken, fails to unwrap, or fails validation.
func (s Scheme) New(serialized []byte) (kex.KeyExchange, error) {
	return parseKeyPair(serialized)
}

func (s Scheme) PublicValueSize() int {
	return publicValueSize
}

func (s Scheme) SharedSize() int {
	return sharedSecretSize
}

func (s Scheme) Tag() kex.Tag {
	return kex.TagP256
}

// KeyExchange is one party's P-256 key pair, scoped to a single handshake.
type KeyExchange struct {
	key         *ecdh.PrivateKey
	publicValue [publicValueSize]byte
}

// ComputeSharedSecret returns the X coordinate of the local private scalar
// multiplied with the peer's public point. The output is the raw 32-byte
// field element; key derivation belongs to the protocol layer above.
func (kx *KeyExchange) ComputeSharedSecret(peerPublicValue []byte) ([]byte, error) {
	if len(peerPublicValue) != publicValueSize || peerPublicValue[0] != uncompressedPointForm {
		log.Debugf("p256: peer public value is invalid (%d bytes)", len(peerPublicValue))
		return nil, kex.ErrInvalidPeerValue
	}
	// Both sides of the exchange must use the same curve parameters, so the
	// peer's point is placed on the local key's curve. The peer never gets
	// to supply its own.
	peerKey, err := kx.key.Curve().NewPublicKey(peerPublicValue)
	if err != nil {
		log.Debugf("p256: %v", err)
		return nil, errors.Wrapf(kex.ErrSharedKey, "%v", err)
	}
	secret, err := kx.key.ECDH(peerKey)
	if err != nil {
		log.Debugf("p256: %v", err)
		return nil, errors.Wrapf(kex.ErrSharedKey, "%v", err)
	}
	if len(secret) != sharedSecretSize {
		return nil, kex.ErrUnexpectedSecretLength
	}
	return secret, nil
}

// PublicValue returns the uncompressed point to send to the peer.
func (kx *KeyExchange) PublicValue() []byte {
	buf := make([]byte, publicValueSize)
	copy(buf, kx.publicValue[:])
	return buf
}

func (kx *KeyExchange) Tag() kex.Tag {
	return kex.TagP256
}
