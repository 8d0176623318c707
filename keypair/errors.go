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
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when raw keypair material is not exactly 64 bytes
	ErrInvalidLength = errors.New("keypair must be 64 bytes")

	// ErrInvalidSeedLength is returned when a seed is not exactly 32 bytes
	ErrInvalidSeedLength = errors.New("seed must be 32 bytes")

	// ErrMismatchedPublicKey is returned when the trailing public key bytes
	// are not the Ed25519 public key derived from the leading seed bytes
	ErrMismatchedPublicKey = errors.New(
		"public key does not match derived key for secret seed",
	)

	// ErrInvalidBase58 is returned when a base58 string does not decode to
	// 64 bytes of keypair material
	ErrInvalidBase58 = errors.New("base58 string is not a 64-byte keypair")

	// ErrInvalidSeedPhrase is returned when a mnemonic seed phrase is malformed
	ErrInvalidSeedPhrase = errors.New("invalid seed phrase")
)

// KeyError is the error class for all keypair construction failures. The
// wrapped reason is one of the Err* sentinels from this package (or an
// error from an injected seed deriver) and can be inspected with errors.Is
type KeyError struct {
	Reason error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("invalid key material: %s", e.Reason)
}

func (e *KeyError) Unwrap() error {
	return e.Reason
}

func newKeyError(reason error) *KeyError {
	return &KeyError{Reason: reason}
}
