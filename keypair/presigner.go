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
	"github.com/blinklabs-io/gsolana/pubkey"
	"github.com/blinklabs-io/gsolana/signature"
)

// Presigner is a Signer holding a signature computed out-of-band, bound to
// the public key that produced it. It is used in multi-party and hardware
// signing flows where the secret key is not available in-process: signing
// returns the stored signature for any message without recomputation
type Presigner struct {
	pub pubkey.Pubkey
	sig signature.Signature
}

// NewPresigner binds a pre-computed signature to its public key
func NewPresigner(pub pubkey.Pubkey, sig signature.Signature) Presigner {
	return Presigner{pub: pub, sig: sig}
}

// Pubkey returns the public key the stored signature is bound to
func (p Presigner) Pubkey() pubkey.Pubkey {
	return p.pub
}

// SignMessage returns the stored signature regardless of message content.
// The caller is responsible for presenting the same message the signature
// was originally computed over
func (p Presigner) SignMessage(_ []byte) signature.Signature {
	return p.sig
}

// IsInteractive returns false: the signature is already available
func (p Presigner) IsInteractive() bool {
	return false
}

// Signature returns the stored signature
func (p Presigner) Signature() signature.Signature {
	return p.sig
}

// Equal compares against any Signer. Two presigners are equal iff both the
// public key and the stored signature match. A Presigner equals a Keypair
// iff the public keys match: the stored signature cannot be checked against
// the keypair's signing output without knowing the original message, so
// equality across variants is keyed by public key alone. Callers that need
// the stronger check can compare p.Signature() against
// kp.SignMessage(message) for a known message
func (p Presigner) Equal(other Signer) bool {
	switch o := other.(type) {
	case Presigner:
		return p == o
	case Keypair:
		return p.pub == o.Pubkey()
	default:
		return false
	}
}

// Hash returns a stable hash consistent with Equal, mixing the Presigner
// type discriminant with the public key and stored signature bytes
func (p Presigner) Hash() uint64 {
	data := make([]byte, 0, pubkey.Size+signature.Size)
	data = append(data, p.pub[:]...)
	data = append(data, p.sig[:]...)
	return signerHash(signerTagPresigner, data)
}
