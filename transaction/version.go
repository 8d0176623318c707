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

import "fmt"

const (
	// versionPrefixFlag marks the first message byte of a versioned layout
	versionPrefixFlag = 0x80

	// VersionMask extracts the version number from a versioned prefix byte
	VersionMask = 0x7f
)

// Version identifies the wire layout of a transaction message. It is a
// closed sum of two cases: the Legacy marker for the version-less layout
// and VersionNumber for explicitly versioned layouts. "No version" and
// "version 0" are different values and different bytes on the wire, so the
// version is never modeled as an optional integer
type Version interface {
	isVersion()
	String() string
}

// Legacy marks the original version-less wire layout
type Legacy struct{}

func (Legacy) isVersion() {}

func (Legacy) String() string {
	return "legacy"
}

// VersionNumber is an explicit wire format revision (0-127)
type VersionNumber uint8

func (VersionNumber) isVersion() {}

func (n VersionNumber) String() string {
	return fmt.Sprintf("v%d", uint8(n))
}

// DetermineVersion selects the wire layout from the leading message byte:
// high bit clear means Legacy, high bit set means the low 7 bits are the
// version number
func DetermineVersion(message []byte) (Version, error) {
	if len(message) == 0 {
		return nil, &SanitizeError{Err: ErrMissingMessage}
	}
	if message[0]&versionPrefixFlag == 0 {
		return Legacy{}, nil
	}
	return VersionNumber(message[0] & VersionMask), nil
}

// headerOffset returns the offset of the message header for a layout:
// versioned layouts spend one leading byte on the version prefix
func headerOffset(v Version) int {
	if _, ok := v.(VersionNumber); ok {
		return 1
	}
	return 0
}
