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

// Package pubkey provides the 32-byte Ed25519 public key value type used
// throughout the library
package pubkey

import (
	"fmt"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	// Size is the size of a public key in bytes
	Size = 32
)

// Pubkey is a 32-byte public key. It is a comparable value type: two
// public keys are equal iff their bytes are equal
type Pubkey [Size]byte

// FromBytes returns a Pubkey from exactly 32 bytes of raw key material
func FromBytes(data []byte) (Pubkey, error) {
	var p Pubkey
	if len(data) != Size {
		return p, fmt.Errorf(
			"public key must be %d bytes, got %d",
			Size,
			len(data),
		)
	}
	copy(p[:], data)
	return p, nil
}

// FromBase58 decodes a base58-encoded public key string
func FromBase58(s string) (Pubkey, error) {
	decoded := base58.Decode(s)
	if len(decoded) != Size {
		return Pubkey{}, fmt.Errorf(
			"decoded public key must be %d bytes, got %d",
			Size,
			len(decoded),
		)
	}
	return FromBytes(decoded)
}

// Bytes returns a copy of the raw key bytes
func (p Pubkey) Bytes() []byte {
	ret := make([]byte, Size)
	copy(ret, p[:])
	return ret
}

func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

// IsOnCurve returns true if the key bytes decode to a valid point on the
// Ed25519 curve. Program-derived addresses are deliberately off-curve, so
// this distinguishes signing-capable keys from derived ones
func (p Pubkey) IsOnCurve() bool {
	_, err := (&edwards25519.Point{}).SetBytes(p[:])
	return err == nil
}
