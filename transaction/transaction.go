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

// Package transaction implements the transaction wire envelope: a compact
// array of Ed25519 signatures followed by the serialized message. The
// first message byte discriminates between the legacy (version-less)
// layout and the explicitly versioned layout, and the envelope round-trips
// both exactly.
//
// Failures fall into two disjoint taxonomies. SanitizeError means the
// bytes are not a structurally well-formed envelope; TransactionError
// means a well-formed envelope violates a protocol rule. Decode only ever
// produces the former, Sanitize and the signing operations only ever
// produce the latter.
package transaction

import (
	"bytes"
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/blinklabs-io/gsolana/keypair"
	"github.com/blinklabs-io/gsolana/pubkey"
	"github.com/blinklabs-io/gsolana/signature"
)

// messageHeaderLen covers the three header counts: required signatures,
// readonly signed accounts, readonly unsigned accounts
const messageHeaderLen = 3

// Transaction is the wire envelope for both the legacy and the versioned
// layouts. Message holds the serialized message exactly as signed and
// transmitted, version prefix included; message construction itself is out
// of scope for this package
type Transaction struct {
	Signatures []signature.Signature
	Message    []byte
}

// NewTransaction wraps a serialized message in an envelope with one default
// (all-zero) signature slot per required signer. Malformed messages are
// rejected with a SanitizeError
func NewTransaction(message []byte) (*Transaction, error) {
	required, err := requiredSignatures(message)
	if err != nil {
		return nil, err
	}
	return &Transaction{
		Signatures: make([]signature.Signature, required),
		Message:    bytes.Clone(message),
	}, nil
}

// Decode parses an encoded envelope of either layout. All failures are
// structural and reported as SanitizeError
func Decode(data []byte) (*Transaction, error) {
	if len(data) == 0 {
		return nil, &SanitizeError{Err: ErrEmptyInput}
	}
	sigCount, prefixLen, err := decodeShortVecLength(data)
	if err != nil {
		return nil, &SanitizeError{
			Err: fmt.Errorf("signature array: %w", err),
		}
	}
	sigEnd := prefixLen + sigCount*signature.Size
	if len(data) < sigEnd {
		return nil, &SanitizeError{Err: ErrTruncatedSignatures}
	}
	sigs := make([]signature.Signature, sigCount)
	for i := range sigs {
		copy(
			sigs[i][:],
			data[prefixLen+i*signature.Size:prefixLen+(i+1)*signature.Size],
		)
	}
	message := data[sigEnd:]
	// The message must at least cover its version prefix and header
	if _, err := requiredSignatures(message); err != nil {
		return nil, err
	}
	return &Transaction{
		Signatures: sigs,
		Message:    bytes.Clone(message),
	}, nil
}

// Encode serializes the envelope. It is the exact inverse of Decode for
// both layouts
func (tx *Transaction) Encode() []byte {
	var buf bytes.Buffer
	encodeShortVecLength(&buf, len(tx.Signatures))
	for _, sig := range tx.Signatures {
		buf.Write(sig[:])
	}
	buf.Write(tx.Message)
	return buf.Bytes()
}

// Version returns the wire layout tag of the message: the Legacy marker or
// an explicit VersionNumber. For an envelope with no message bytes it
// returns the Legacy marker
func (tx *Transaction) Version() Version {
	v, err := DetermineVersion(tx.Message)
	if err != nil {
		return Legacy{}
	}
	return v
}

// Sanitize checks protocol rules on a structurally well-formed envelope:
// the message must require at least one signer, the version must be one
// this client implements, and the signature slots must match the required
// signer count. Rule violations are reported as TransactionError
func (tx *Transaction) Sanitize() error {
	required, err := requiredSignatures(tx.Message)
	if err != nil {
		return err
	}
	if n, ok := tx.Version().(VersionNumber); ok && n > 0 {
		return &TransactionError{
			Err: fmt.Errorf("%w: %s", ErrUnsupportedVersion, n),
		}
	}
	if required == 0 {
		return &TransactionError{Err: ErrNoRequiredSigners}
	}
	if len(tx.Signatures) != required {
		return &TransactionError{
			Err: fmt.Errorf(
				"%w: %d slots for %d required signers",
				ErrSignatureCountMismatch,
				len(tx.Signatures),
				required,
			),
		}
	}
	return nil
}

// PartialSign signs the message with each signer and stores the signature
// in the slot of the signer's key in the message's signer key table.
// Signers whose key is not in the table are rejected. Slots for absent
// signers keep their previous value
func (tx *Transaction) PartialSign(signers ...keypair.Signer) error {
	keys, err := tx.signerKeys()
	if err != nil {
		return err
	}
	if len(tx.Signatures) != len(keys) {
		return &TransactionError{
			Err: fmt.Errorf(
				"%w: %d slots for %d required signers",
				ErrSignatureCountMismatch,
				len(tx.Signatures),
				len(keys),
			),
		}
	}
	for _, signer := range signers {
		pos := -1
		for i, key := range keys {
			if key == signer.Pubkey() {
				pos = i
				break
			}
		}
		if pos < 0 {
			return &TransactionError{
				Err: fmt.Errorf(
					"%w: %s",
					ErrUnknownSigner,
					signer.Pubkey(),
				),
			}
		}
		tx.Signatures[pos] = signer.SignMessage(tx.Message)
	}
	return nil
}

// Sign is PartialSign plus a completeness check: every signature slot must
// hold a real signature afterwards
func (tx *Transaction) Sign(signers ...keypair.Signer) error {
	if err := tx.PartialSign(signers...); err != nil {
		return err
	}
	for i, sig := range tx.Signatures {
		if sig.IsDefault() {
			return &TransactionError{
				Err: fmt.Errorf("%w: slot %d", ErrMissingSignature, i),
			}
		}
	}
	return nil
}

// VerifySignatures checks every signature slot against the corresponding
// signer key from the message's key table
func (tx *Transaction) VerifySignatures() error {
	keys, err := tx.signerKeys()
	if err != nil {
		return err
	}
	if len(tx.Signatures) != len(keys) {
		return &TransactionError{
			Err: fmt.Errorf(
				"%w: %d slots for %d required signers",
				ErrSignatureCountMismatch,
				len(tx.Signatures),
				len(keys),
			),
		}
	}
	for i, sig := range tx.Signatures {
		if !sig.Verify(keys[i], tx.Message) {
			return &TransactionError{
				Err: fmt.Errorf("%w: slot %d", ErrSignatureVerification, i),
			}
		}
	}
	return nil
}

// IsSigned returns true if the envelope has at least one signature slot
// and no slot holds the default placeholder
func (tx *Transaction) IsSigned() bool {
	if len(tx.Signatures) == 0 {
		return false
	}
	for _, sig := range tx.Signatures {
		if sig.IsDefault() {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of the envelope
func (tx *Transaction) Copy() (*Transaction, error) {
	var out Transaction
	if err := copier.CopyWithOption(
		&out,
		tx,
		copier.Option{DeepCopy: true},
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// requiredSignatures returns the required signer count from the message
// header, checking that the message covers its prefix and header
func requiredSignatures(message []byte) (int, error) {
	v, err := DetermineVersion(message)
	if err != nil {
		return 0, err
	}
	offset := headerOffset(v)
	if len(message) < offset+messageHeaderLen {
		return 0, &SanitizeError{Err: ErrShortMessage}
	}
	return int(message[offset]), nil
}

// signerKeys parses the message's static account key table and returns the
// leading keys that must sign, in slot order
func (tx *Transaction) signerKeys() ([]pubkey.Pubkey, error) {
	required, err := requiredSignatures(tx.Message)
	if err != nil {
		return nil, err
	}
	offset := headerOffset(tx.Version()) + messageHeaderLen
	keyCount, prefixLen, err := decodeShortVecLength(tx.Message[offset:])
	if err != nil {
		return nil, &SanitizeError{
			Err: fmt.Errorf("account key table: %w", err),
		}
	}
	if keyCount < required {
		return nil, &SanitizeError{Err: ErrTruncatedAccountKeys}
	}
	keysStart := offset + prefixLen
	if len(tx.Message) < keysStart+keyCount*pubkey.Size {
		return nil, &SanitizeError{Err: ErrTruncatedAccountKeys}
	}
	keys := make([]pubkey.Pubkey, required)
	for i := range keys {
		copy(
			keys[i][:],
			tx.Message[keysStart+i*pubkey.Size:keysStart+(i+1)*pubkey.Size],
		)
	}
	return keys, nil
}
