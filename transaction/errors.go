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
	"errors"
	"fmt"
)

// Structural failure reasons, wrapped in SanitizeError
var (
	// ErrEmptyInput is returned when there are no bytes to decode
	ErrEmptyInput = errors.New("empty input")

	// ErrTruncatedSignatures is returned when the input ends before the
	// signature array it declares
	ErrTruncatedSignatures = errors.New("truncated signature array")

	// ErrMissingMessage is returned when no message bytes follow the
	// signature array
	ErrMissingMessage = errors.New("missing message")

	// ErrShortMessage is returned when the message ends before its header
	ErrShortMessage = errors.New("message too short for header")

	// ErrTruncatedAccountKeys is returned when the message's static account
	// key table ends early or holds fewer keys than the header requires
	ErrTruncatedAccountKeys = errors.New("truncated account key table")
)

// Protocol rule failure reasons, wrapped in TransactionError
var (
	// ErrNoRequiredSigners is returned when a message requires zero signatures
	ErrNoRequiredSigners = errors.New("transaction requires no signers")

	// ErrSignatureCountMismatch is returned when the signature slots do not
	// match the message's required signer count
	ErrSignatureCountMismatch = errors.New("signature count mismatch")

	// ErrUnsupportedVersion is returned for version numbers this client
	// does not implement
	ErrUnsupportedVersion = errors.New("unsupported transaction version")

	// ErrUnknownSigner is returned when a signer's public key is not among
	// the message's required signer keys
	ErrUnknownSigner = errors.New("unknown signer")

	// ErrMissingSignature is returned when a signature slot still holds the
	// default placeholder after full signing
	ErrMissingSignature = errors.New("missing signature")

	// ErrSignatureVerification is returned when a signature does not verify
	// against its signer key
	ErrSignatureVerification = errors.New("signature verification failure")
)

// SanitizeError reports that bytes are not a structurally well-formed
// transaction envelope. It is distinct from TransactionError: sanitize
// failures mean the data could not be given a shape at all
type SanitizeError struct {
	Err error
}

func (e *SanitizeError) Error() string {
	return fmt.Sprintf("sanitize: %s", e.Err)
}

func (e *SanitizeError) Unwrap() error {
	return e.Err
}

// TransactionError reports that a structurally well-formed transaction
// violates a protocol rule. It is never produced for malformed bytes
type TransactionError struct {
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("invalid transaction: %s", e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}
