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

package keypair

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/blinklabs-io/gsolana/pubkey"
	"github.com/blinklabs-io/gsolana/signature"
)

// Signer is the capability implemented by anything that can expose a public
// key and produce a signature over message bytes. The set of implementations
// is closed: Keypair (signs locally) and Presigner (replays a signature
// computed out-of-band). Code that needs cross-variant behavior type-switches
// over these two cases
type Signer interface {
	Pubkey() pubkey.Pubkey
	SignMessage(message []byte) signature.Signature
	// IsInteractive reports whether producing a signature requires user
	// interaction. Both in-process variants return false
	IsInteractive() bool
	// Equal compares two signers for equal signing authority, including
	// across variants
	Equal(other Signer) bool
	// Hash is consistent with Equal within a variant: equal signers of the
	// same variant hash equal, and the two variants never collide on
	// identical byte content
	Hash() uint64
}

// Type discriminants mixed into signer hashes so that a Keypair and a
// Presigner with overlapping byte content hash differently
const (
	signerTagKeypair byte = iota + 1
	signerTagPresigner
)

// signerHash hashes a type discriminant followed by the signer's canonical
// byte representation with Blake2b-256, folded to 64 bits
func signerHash(tag byte, data []byte) uint64 {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic("unexpected error creating blake2b hash: " + err.Error())
	}
	h.Write([]byte{tag})
	h.Write(data)
	return binary.BigEndian.Uint64(h.Sum(nil)[:8])
}
