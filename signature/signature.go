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

// Package signature provides the 64-byte Ed25519 signature value type
package signature

import (
	"crypto/ed25519"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/blinklabs-io/gsolana/pubkey"
)

const (
	// Size is the size of a signature in bytes
	Size = 64
)

// Signature is a 64-byte Ed25519 signature. It is a comparable value type
// with byte-exact equality. The zero value is the placeholder ("default")
// signature used for unsigned slots in a transaction envelope
type Signature [Size]byte

// FromBytes returns a Signature from exactly 64 bytes
func FromBytes(data []byte) (Signature, error) {
	var s Signature
	if len(data) != Size {
		return s, fmt.Errorf(
			"signature must be %d bytes, got %d",
			Size,
			len(data),
		)
	}
	copy(s[:], data)
	return s, nil
}

// FromBase58 decodes a base58-encoded signature string
func FromBase58(str string) (Signature, error) {
	decoded := base58.Decode(str)
	if len(decoded) != Size {
		return Signature{}, fmt.Errorf(
			"decoded signature must be %d bytes, got %d",
			Size,
			len(decoded),
		)
	}
	return FromBytes(decoded)
}

// Bytes returns a copy of the raw signature bytes
func (s Signature) Bytes() []byte {
	ret := make([]byte, Size)
	copy(ret, s[:])
	return ret
}

func (s Signature) String() string {
	return base58.Encode(s[:])
}

// IsDefault returns true if the signature is the all-zero placeholder
func (s Signature) IsDefault() bool {
	return s == Signature{}
}

// Verify returns true if the signature is a valid Ed25519 signature over
// message for the given public key
func (s Signature) Verify(pub pubkey.Pubkey, message []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pub.Bytes()), message, s[:])
}
