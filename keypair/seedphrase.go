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
	"crypto/sha512"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// seedPhraseIterations is the PBKDF2 round count mandated by BIP-0039
	seedPhraseIterations = 2048

	// seedPhraseKeyLen is the seed material length produced by BIP-0039,
	// of which the first 32 bytes become the Ed25519 seed
	seedPhraseKeyLen = 64
)

// SeedDeriver turns a mnemonic seed phrase and passphrase into seed
// material of at least 32 bytes. It exists as an interface so the
// derivation can be swapped for fixed vectors in tests or replaced with an
// alternate mnemonic scheme
type SeedDeriver interface {
	DeriveSeed(phrase string, passphrase string) ([]byte, error)
}

// Bip39SeedDeriver derives seed material per BIP-0039:
// PBKDF2-HMAC-SHA512 over the normalized phrase with salt
// "mnemonic" + passphrase and 2048 rounds
type Bip39SeedDeriver struct{}

func (Bip39SeedDeriver) DeriveSeed(
	phrase string,
	passphrase string,
) ([]byte, error) {
	words := strings.Fields(phrase)
	switch len(words) {
	case 12, 15, 18, 21, 24:
	default:
		return nil, fmt.Errorf(
			"%w: expected 12/15/18/21/24 words, got %d",
			ErrInvalidSeedPhrase,
			len(words),
		)
	}
	// Normalize inter-word whitespace before hashing
	normalized := strings.Join(words, " ")
	seed := pbkdf2.Key(
		[]byte(normalized),
		[]byte("mnemonic"+passphrase),
		seedPhraseIterations,
		seedPhraseKeyLen,
		sha512.New,
	)
	return seed, nil
}

// FromSeedPhraseAndPassphrase derives a keypair from a BIP-0039 mnemonic
// seed phrase and passphrase, consuming the first 32 bytes of the derived
// seed material
func FromSeedPhraseAndPassphrase(
	phrase string,
	passphrase string,
) (Keypair, error) {
	return FromSeedPhraseWithDeriver(
		Bip39SeedDeriver{},
		phrase,
		passphrase,
	)
}

// FromSeedPhraseWithDeriver is FromSeedPhraseAndPassphrase with an explicit
// seed derivation scheme
func FromSeedPhraseWithDeriver(
	deriver SeedDeriver,
	phrase string,
	passphrase string,
) (Keypair, error) {
	seed, err := deriver.DeriveSeed(phrase, passphrase)
	if err != nil {
		return Keypair{}, newKeyError(err)
	}
	if len(seed) < SeedSize {
		return Keypair{}, newKeyError(
			fmt.Errorf(
				"%w: derived seed material too short (%d bytes)",
				ErrInvalidSeedPhrase,
				len(seed),
			),
		)
	}
	return FromSeed(seed[:SeedSize])
}
