// Package kex provides Diffie-Hellman key exchange methods for handshake
// protocols which pick a method by tag.
//
// Key pairs are ephemeral: one KeyExchange serves one handshake and is
// discarded afterwards. Nothing in this package persists key material.
package kex

import "io"

// Tag identifies a key exchange method to the negotiating layer above.
// It is 4 ASCII characters packed little-endian into a uint32.
type Tag uint32

const (
	// TagP256 is ECDH over NIST P-256.
	TagP256 Tag = 'P' | '2'<<8 | '5'<<16 | '6'<<24
	// TagC255 is Curve25519.
	TagC255 Tag = 'C' | '2'<<8 | '5'<<16 | '5'<<24
)

func (t Tag) String() string {
	b := [4]byte{byte(t), byte(t >> 8), byte(t >> 16), byte(t >> 24)}
	return string(b[:])
}

// KeyExchange is one party's key pair for a single key exchange.
type KeyExchange interface {
	// ComputeSharedSecret validates peerPublicValue and returns the raw
	// shared secret. The secret is not run through a KDF; derivation
	// belongs to the protocol layer above.
	ComputeSharedSecret(peerPublicValue []byte) ([]byte, error)
	// PublicValue returns the value to send to the peer.
	PublicValue() []byte
	// Tag returns the method's tag.
	Tag() Tag
}

// Scheme is a key exchange method.
type Scheme interface {
	// NewPrivateKey generates a fresh key pair using entropy from rng and
	// returns it in the method's serialized form.
	NewPrivateKey(rng io.Reader) ([]byte, error)
	// New reconstructs a KeyExchange from a serialized key pair.
	New(serialized []byte) (KeyExchange, error)

	// PublicValueSize returns the size of a public value.
	PublicValueSize() int
	// SharedSize returns the size of a shared secret.
	SharedSize() int
	// Tag returns the method's tag.
	Tag() Tag
}
