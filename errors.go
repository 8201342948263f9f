package kex

import (
	"github.com/pkg/errors"
)

var (
	// ErrMalformedKeyPair means a serialized key pair could not be split
	// into its private and public segments.
	ErrMalformedKeyPair = errors.New("serialized key pair is malformed")
	// ErrInvalidPrivateKey means the private key segment could not be
	// unwrapped.
	ErrInvalidPrivateKey = errors.New("cannot unwrap private key")
	// ErrInvalidKey means an unwrapped key failed validation.
	ErrInvalidKey = errors.New("key is invalid")
	// ErrInvalidPeerValue means the peer sent a public value with the
	// wrong length or point form.
	ErrInvalidPeerValue = errors.New("peer public value is invalid")
	// ErrSharedKey means the shared secret could not be derived.
	ErrSharedKey = errors.New("cannot derive shared key")
	// ErrUnexpectedSecretLength means a derived secret did not have the
	// curve's field size.
	ErrUnexpectedSecretLength = errors.New("shared key has unexpected length")
)

func IsErrMalformedKeyPair(err error) bool {
	return errors.Is(err, ErrMalformedKeyPair)
}

func IsErrInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}

func IsErrInvalidPeerValue(err error) bool {
	return errors.Is(err, ErrInvalidPeerValue)
}
