package gallerystate

import (
	"bytes"
	"cmp"
	"crypto"
	"errors"
	"fmt"
	"slices"

	abhash "github.com/artchain-org/artchain-go/hash"
	"github.com/artchain-org/artchain-go/txsystem/gallery"
	"github.com/artchain-org/artchain-go/types"
	"github.com/artchain-org/artchain-go/util"
)

// StateHash hashes every live unit of the partition state in deterministic
// key order and returns the digest together with the state's summary value,
// the sum of the units' SummaryValueInput, ie the total amount held in offer
// escrow. The host ledger commits to the digest alongside the event journal
// root.
func StateHash(hashAlgorithm crypto.Hash, registry *Registry, store *Store) ([]byte, uint64, error) {
	hasher := abhash.New(hashAlgorithm.New())
	summary := uint64(0)
	ok := true

	write := func(unit gallery.UnitData, key ...[]byte) {
		for _, k := range key {
			hasher.WriteRaw(k)
		}
		// the owner is committed separately from the record body; units
		// without an owner contribute nothing here
		hasher.WriteRaw(unit.Owner())
		unit.Write(hasher)
		if ok {
			summary, ok = util.SafeAdd(summary, unit.SummaryValueInput())
		}
	}

	for _, cid := range sortedClassIDs(registry.classes) {
		write(registry.classes[cid], cid.Bytes())
	}
	for _, key := range sortedTokenKeys(registry.tokens) {
		write(registry.tokens[key], key.cid.Bytes(), key.tid.Bytes())
	}
	for _, key := range sortedTokenKeys(store.info) {
		info := store.info[key]
		write(&info, key.cid.Bytes(), key.tid.Bytes())
	}
	for _, key := range sortedOfferKeys(store.offers) {
		offer := store.offers[key]
		write(&offer, key.cid.Bytes(), key.tid.Bytes(), key.bidder.Bytes())
	}

	if !ok {
		return nil, 0, errors.New("summary value overflows uint64")
	}
	root, err := hasher.Sum()
	if err != nil {
		return nil, 0, fmt.Errorf("hashing partition state: %w", err)
	}
	return root, summary, nil
}

func sortedClassIDs(m map[types.CollectionID]*gallery.Class) []types.CollectionID {
	ids := make([]types.CollectionID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func sortedTokenKeys[V any](m map[tokenKey]V) []tokenKey {
	keys := make([]tokenKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b tokenKey) int {
		if c := cmp.Compare(a.cid, b.cid); c != 0 {
			return c
		}
		return cmp.Compare(a.tid, b.tid)
	})
	return keys
}

func sortedOfferKeys(m map[offerKey]gallery.Offer) []offerKey {
	keys := make([]offerKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b offerKey) int {
		if c := cmp.Compare(a.cid, b.cid); c != 0 {
			return c
		}
		if c := cmp.Compare(a.tid, b.tid); c != 0 {
			return c
		}
		return bytes.Compare(a.bidder.Bytes(), b.bidder.Bytes())
	})
	return keys
}
