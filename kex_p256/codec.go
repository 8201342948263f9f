package kex_p256

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/x509"
	"encoding/asn1"
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/quicwire/go-kex"
)

// p256CurveID is the canonical DER encoding of the P-256 curve identifier
// (OID 1.2.840.10045.3.1.7), including the tag and length bytes, as it
// appears inside a wrapped private key.
var p256CurveID = []byte{0x06, 0x08, 0x2a, 0x86, 0x48, 0xce, 0x3d, 0x03, 0x01, 0x07}

// sec1PrivateKey mirrors the SEC1 ECPrivateKey structure far enough to reach
// the curve parameters the wrapped key was encoded with.
type sec1PrivateKey struct {
	Version       int
	PrivateKey    []byte
	NamedCurveOID asn1.ObjectIdentifier `asn1:"optional,explicit,tag:0"`
	PublicKey     asn1.BitString        `asn1:"optional,explicit,tag:1"`
}

// marshalKeyPair serializes key as a length-prefixed wrapped private key
// followed by the uncompressed public point. The wrapping is SEC1 DER: a
// fixed convention, not encryption, and not secret beyond the scalar it
// carries.
func marshalKeyPair(key *ecdsa.PrivateKey) ([]byte, error) {
	wrapped, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return nil, errors.Wrap(err, "cannot export private key")
	}
	public, err := key.PublicKey.ECDH()
	if err != nil {
		return nil, errors.Wrap(err, "cannot export public key")
	}
	publicValue := public.Bytes()

	out := make([]byte, 2+len(wrapped)+len(publicValue))
	binary.LittleEndian.PutUint16(out, uint16(len(wrapped)))
	copy(out[2:], wrapped)
	copy(out[2+len(wrapped):], publicValue)
	return out, nil
}

// parseKeyPair is the inverse of marshalKeyPair. Structural violations,
// unwrap failures and validation failures all abort with no key pair.
func parseKeyPair(serialized []byte) (*KeyExchange, error) {
	if len(serialized) < 2 {
		log.Debug("p256: key pair is too small")
		return nil, errors.Wrap(kex.ErrMalformedKeyPair, "too small")
	}
	n := int(binary.LittleEndian.Uint16(serialized))
	rest := serialized[2:]
	if len(rest) < n {
		log.Debug("p256: key pair does not contain key material")
		return nil, errors.Wrap(kex.ErrMalformedKeyPair, "does not contain key material")
	}
	wrapped, publicValue := rest[:n], rest[n:]
	if len(publicValue) == 0 {
		log.Debug("p256: key pair does not contain public key")
		return nil, errors.Wrap(kex.ErrMalformedKeyPair, "does not contain public key")
	}

	key, err := x509.ParseECPrivateKey(wrapped)
	if err != nil {
		log.Debugf("p256: cannot unwrap private key: %v", err)
		return nil, errors.Wrapf(kex.ErrInvalidPrivateKey, "%v", err)
	}
	if err := validateKeyPair(wrapped, key, publicValue); err != nil {
		log.Debugf("p256: %v", err)
		return nil, err
	}
	ecdhKey, err := key.ECDH()
	if err != nil {
		return nil, errors.Wrapf(kex.ErrInvalidPrivateKey, "%v", err)
	}

	kx := &KeyExchange{key: ecdhKey}
	copy(kx.publicValue[:], publicValue)
	return kx, nil
}

// validateKeyPair rejects key pairs whose public key is not an uncompressed
// point on P-256. A wrong-curve key must never come back as usable: accepting
// one would let a peer move the exchange onto a curve of its choosing.
func validateKeyPair(wrapped []byte, key *ecdsa.PrivateKey, publicValue []byte) error {
	if key.Curve != elliptic.P256() {
		return errors.Wrap(kex.ErrInvalidKey, "not a P-256 key")
	}
	if len(publicValue) != publicValueSize {
		return errors.Wrapf(kex.ErrInvalidKey, "public value is %d bytes", len(publicValue))
	}
	if publicValue[0] != uncompressedPointForm {
		return errors.Wrap(kex.ErrInvalidKey, "public value is not an uncompressed point")
	}
	return validateCurveID(wrapped)
}

// validateCurveID compares the curve identifier embedded in the wrapped
// private key, byte for byte, against the canonical P-256 encoding.
func validateCurveID(wrapped []byte) error {
	var sec1 sec1PrivateKey
	if _, err := asn1.Unmarshal(wrapped, &sec1); err != nil {
		return errors.Wrapf(kex.ErrInvalidKey, "%v", err)
	}
	curveID, err := asn1.Marshal(sec1.NamedCurveOID)
	if err != nil {
		return errors.Wrapf(kex.ErrInvalidKey, "%v", err)
	}
	if !bytes.Equal(curveID, p256CurveID) {
		return errors.Wrap(kex.ErrInvalidKey, "wrong curve")
	}
	return nil
}
