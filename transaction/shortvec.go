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
	"errors"
)

// Array lengths on the wire use the "shortvec" encoding: a little-endian
// base-128 varint capped at u16, so a length occupies 1-3 bytes

var (
	errShortVecTruncated = errors.New("truncated length encoding")
	errShortVecTooLong   = errors.New("length encoding exceeds 3 bytes")
	errShortVecOverflow  = errors.New("length exceeds u16 range")
)

// encodeShortVecLength appends the shortvec encoding of n to buf.
// n must fit in a u16
func encodeShortVecLength(buf *bytes.Buffer, n int) {
	if n < 0 || n > 0xffff {
		panic("shortvec length out of u16 range")
	}
	rem := n
	for {
		b := byte(rem & 0x7f)
		rem >>= 7
		if rem == 0 {
			buf.WriteByte(b)
			return
		}
		buf.WriteByte(b | 0x80)
	}
}

// decodeShortVecLength reads a shortvec length from the front of data,
// returning the value and the number of bytes consumed
func decodeShortVecLength(data []byte) (int, int, error) {
	value := 0
	for i := 0; i < 3; i++ {
		if i >= len(data) {
			return 0, 0, errShortVecTruncated
		}
		b := data[i]
		value |= int(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			if value > 0xffff {
				return 0, 0, errShortVecOverflow
			}
			return value, i + 1, nil
		}
	}
	return 0, 0, errShortVecTooLong
}
