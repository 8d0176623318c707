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

package pubkey_test

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/blinklabs-io/gsolana/pubkey"

	"github.com/stretchr/testify/require"
)

func TestFromBytes(t *testing.T) {
	raw := bytes.Repeat([]byte{0x07}, pubkey.Size)
	pk, err := pubkey.FromBytes(raw)
	require.NoError(t, err)
	require.Equal(t, raw, pk.Bytes())
}

func TestFromBytesWrongLength(t *testing.T) {
	_, err := pubkey.FromBytes([]byte{0x01, 0x02, 0x03})
	require.Error(t, err)
	_, err = pubkey.FromBytes(bytes.Repeat([]byte{0x00}, 33))
	require.Error(t, err)
}

func TestBase58RoundTrip(t *testing.T) {
	raw := bytes.Repeat([]byte{0x2a}, pubkey.Size)
	pk, err := pubkey.FromBytes(raw)
	require.NoError(t, err)
	decoded, err := pubkey.FromBase58(pk.String())
	require.NoError(t, err)
	require.Equal(t, pk, decoded)
}

func TestZeroPubkeyString(t *testing.T) {
	// 32 zero bytes encode to 32 base58 '1' characters
	var pk pubkey.Pubkey
	require.Equal(t, "11111111111111111111111111111111", pk.String())
}

func TestFromBase58WrongLength(t *testing.T) {
	_, err := pubkey.FromBase58("abc")
	require.Error(t, err)
}

func TestIsOnCurve(t *testing.T) {
	// A real Ed25519 public key is always a curve point
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	pk, err := pubkey.FromBytes(pub)
	require.NoError(t, err)
	require.True(t, pk.IsOnCurve())

	// All-ones bytes are a non-canonical field element and never decode
	bad, err := pubkey.FromBytes(bytes.Repeat([]byte{0xff}, pubkey.Size))
	require.NoError(t, err)
	require.False(t, bad.IsOnCurve())
}

func TestEquality(t *testing.T) {
	a, err := pubkey.FromBytes(bytes.Repeat([]byte{0x11}, pubkey.Size))
	require.NoError(t, err)
	b, err := pubkey.FromBytes(bytes.Repeat([]byte{0x11}, pubkey.Size))
	require.NoError(t, err)
	c, err := pubkey.FromBytes(bytes.Repeat([]byte{0x22}, pubkey.Size))
	require.NoError(t, err)
	require.True(t, a == b)
	require.False(t, a == c)
}
