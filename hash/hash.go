/*
Package hash provides the CBOR-encoding hash calculator used to digest
unit-data records and to extend the event journal's hash chain.
*/
package hash

import (
	"crypto"
	"crypto/sha256"
	"fmt"
)

var Zero256 = make([]byte, 32)

// Sum256 returns the SHA256 checksum of the data, mapping empty input to the
// zero hash.
func Sum256(data []byte) []byte {
	if len(data) == 0 {
		return Zero256
	}
	hsh := sha256.Sum256(data)
	return hsh[:]
}

// Chain returns the hash of prev followed by the CBOR encoding of each value.
// It is used to extend an append-only journal: every entry commits to all the
// entries before it.
func Chain(hashAlgorithm crypto.Hash, prev []byte, values ...any) ([]byte, error) {
	hasher := New(hashAlgorithm.New())
	hasher.WriteRaw(prev)
	for _, value := range values {
		hasher.Write(value)
	}
	res, err := hasher.Sum()
	if err != nil {
		return nil, fmt.Errorf("calculating chained hash: %w", err)
	}
	return res, nil
}
