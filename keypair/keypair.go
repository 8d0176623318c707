// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package keypair implements the Ed25519 signing identity used by a client:
// a 64-byte keypair (32-byte secret seed followed by the derived 32-byte
// public key) and the Signer capability shared with pre-computed signers.
//
// A Keypair is immutable after construction. Every construction path
// validates that the public key half is the key derived from the seed half
// and fails with a KeyError rather than returning inconsistent material.
package keypair

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/blinklabs-io/gsolana/pubkey"
	"github.com/blinklabs-io/gsolana/signature"
)

const (
	// Size is the size of a keypair in bytes: 32-byte seed + 32-byte public key
	Size = 64

	// SeedSize is the size of the secret seed in bytes
	SeedSize = 32
)

// Keypair is an Ed25519 keypair. Its canonical representation is exactly
// 64 bytes: the secret seed followed by the derived public key
type Keypair struct {
	seed [SeedSize]byte
	pub  pubkey.Pubkey
}

// New generates a keypair from a fresh 32-byte random seed
func New() Keypair {
	var seed [SeedSize]byte
	if _, err := rand.Read(seed[:]); err != nil {
		// crypto/rand failure means the platform entropy source is broken
		panic(fmt.Sprintf("unexpected error reading random seed: %s", err))
	}
	kp, err := FromSeed(seed[:])
	if err != nil {
		panic(fmt.Sprintf("unexpected error deriving keypair: %s", err))
	}
	return kp
}

// FromSeed derives a keypair from a 32-byte seed. Derivation is
// deterministic: the same seed always yields the same keypair
func FromSeed(seed []byte) (Keypair, error) {
	if len(seed) != SeedSize {
		return Keypair{}, newKeyError(
			fmt.Errorf("%w: got %d", ErrInvalidSeedLength, len(seed)),
		)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub, err := pubkey.FromBytes(priv.Public().(ed25519.PublicKey))
	if err != nil {
		return Keypair{}, newKeyError(err)
	}
	kp := Keypair{pub: pub}
	copy(kp.seed[:], seed)
	return kp, nil
}

// FromBytes recovers a keypair from its canonical 64-byte representation.
// The trailing 32 bytes must be the Ed25519 public key derived from the
// leading 32-byte seed; inconsistent material is rejected
func FromBytes(raw []byte) (Keypair, error) {
	if len(raw) != Size {
		return Keypair{}, newKeyError(
			fmt.Errorf("%w: got %d", ErrInvalidLength, len(raw)),
		)
	}
	kp, err := FromSeed(raw[:SeedSize])
	if err != nil {
		return Keypair{}, err
	}
	if !bytes.Equal(kp.pub[:], raw[SeedSize:]) {
		return Keypair{}, newKeyError(ErrMismatchedPublicKey)
	}
	return kp, nil
}

// FromBase58String recovers a keypair from a base58-encoded 64-byte
// representation. Strings that do not decode to 64 bytes, or that decode
// to inconsistent key material, are rejected with a KeyError
func FromBase58String(s string) (Keypair, error) {
	decoded := base58.Decode(s)
	if len(decoded) != Size {
		return Keypair{}, newKeyError(
			fmt.Errorf("%w: decoded to %d bytes", ErrInvalidBase58, len(decoded)),
		)
	}
	return FromBytes(decoded)
}

// Bytes returns the canonical 64-byte representation: seed || public key
func (k Keypair) Bytes() []byte {
	ret := make([]byte, 0, Size)
	ret = append(ret, k.seed[:]...)
	ret = append(ret, k.pub[:]...)
	return ret
}

// String returns the base58 encoding of the canonical 64-byte representation
func (k Keypair) String() string {
	return base58.Encode(k.Bytes())
}

// Secret returns a copy of the 32-byte secret seed
func (k Keypair) Secret() []byte {
	ret := make([]byte, SeedSize)
	copy(ret, k.seed[:])
	return ret
}

// Pubkey returns the public key half of the keypair
func (k Keypair) Pubkey() pubkey.Pubkey {
	return k.pub
}

// SignMessage produces the deterministic Ed25519 signature over message.
// Ed25519 uses no per-call randomness, so the same keypair and message
// always produce the same signature
func (k Keypair) SignMessage(message []byte) signature.Signature {
	priv := ed25519.NewKeyFromSeed(k.seed[:])
	var sig signature.Signature
	copy(sig[:], ed25519.Sign(priv, message))
	return sig
}

// IsInteractive returns false: signing with a keypair needs no user interaction
func (k Keypair) IsInteractive() bool {
	return false
}

// Clone returns a validated copy of the keypair by round-tripping through
// the canonical 64-byte representation
func (k Keypair) Clone() Keypair {
	kp, err := FromBytes(k.Bytes())
	if err != nil {
		panic(fmt.Sprintf("unexpected error cloning keypair: %s", err))
	}
	return kp
}

// Equal compares against any Signer. Two keypairs are equal iff their
// 64-byte representations are identical. A keypair equals a Presigner iff
// they hold the same public key; see Presigner.Equal for the rationale
func (k Keypair) Equal(other Signer) bool {
	switch o := other.(type) {
	case Keypair:
		return k == o
	case Presigner:
		return k.pub == o.Pubkey()
	default:
		return false
	}
}

// Hash returns a stable hash consistent with Equal, mixing the Keypair
// type discriminant with the canonical 64-byte representation
func (k Keypair) Hash() uint64 {
	return signerHash(signerTagKeypair, k.Bytes())
}
