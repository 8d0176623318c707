package test

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// DecodeBase58String is a helper function for tests that decodes base58 strings of a
// known length. It doesn't return an error value, which makes it usable inline.
func DecodeBase58String(data string, expectedLen int) []byte {
	decoded := base58.Decode(data)
	if len(decoded) != expectedLen {
		panic(
			fmt.Sprintf(
				"base58 string decoded to %d bytes, expected %d",
				len(decoded),
				expectedLen,
			),
		)
	}
	return decoded
}
