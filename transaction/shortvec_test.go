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

package transaction

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShortVecEncode(t *testing.T) {
	testDefs := []struct {
		value    int
		expected []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80, 0x01}},
		{0xff, []byte{0xff, 0x01}},
		{0x100, []byte{0x80, 0x02}},
		{0x3fff, []byte{0xff, 0x7f}},
		{0x4000, []byte{0x80, 0x80, 0x01}},
		{0xffff, []byte{0xff, 0xff, 0x03}},
	}
	for _, testDef := range testDefs {
		var buf bytes.Buffer
		encodeShortVecLength(&buf, testDef.value)
		require.Equal(t, testDef.expected, buf.Bytes(), "value %d", testDef.value)
	}
}

func TestShortVecRoundTrip(t *testing.T) {
	for _, value := range []int{0, 1, 5, 127, 128, 255, 256, 16383, 16384, 65535} {
		var buf bytes.Buffer
		encodeShortVecLength(&buf, value)
		decoded, n, err := decodeShortVecLength(buf.Bytes())
		require.NoError(t, err)
		require.Equal(t, value, decoded)
		require.Equal(t, buf.Len(), n)
	}
}

func TestShortVecDecodeConsumesPrefixOnly(t *testing.T) {
	value, n, err := decodeShortVecLength([]byte{0x02, 0xde, 0xad})
	require.NoError(t, err)
	require.Equal(t, 2, value)
	require.Equal(t, 1, n)
}

func TestShortVecDecodeErrors(t *testing.T) {
	_, _, err := decodeShortVecLength([]byte{})
	require.ErrorIs(t, err, errShortVecTruncated)
	_, _, err = decodeShortVecLength([]byte{0x80})
	require.ErrorIs(t, err, errShortVecTruncated)
	_, _, err = decodeShortVecLength([]byte{0x80, 0x80, 0x80, 0x01})
	require.ErrorIs(t, err, errShortVecTooLong)
	_, _, err = decodeShortVecLength([]byte{0xff, 0xff, 0x7f})
	require.ErrorIs(t, err, errShortVecOverflow)
}
