package gallerystate

import (
	"crypto"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/artchain-org/artchain-go/txsystem/gallery"
)

func Test_StateHash(t *testing.T) {
	build := func(t *testing.T) (*Registry, *Store) {
		t.Helper()
		r := NewRegistry()
		s := NewStore()
		cid, err := r.CreateClass(alice, []byte("meta"), nil)
		require.NoError(t, err)
		tid, err := r.MintToken(alice, cid, []byte("art"), nil)
		require.NoError(t, err)
		s.SetExtendedInfo(cid, tid, gallery.ExtendedInfo{DisplayFlag: true})
		s.SetOffer(cid, tid, bob, gallery.Offer{Amount: 100})
		return r, s
	}

	t.Run("identical states hash identically", func(t *testing.T) {
		r1, s1 := build(t)
		r2, s2 := build(t)

		h1, sum1, err := StateHash(crypto.SHA256, r1, s1)
		require.NoError(t, err)
		h2, sum2, err := StateHash(crypto.SHA256, r2, s2)
		require.NoError(t, err)
		require.Equal(t, h1, h2)
		require.Equal(t, sum1, sum2)
	})

	t.Run("summary value is the total escrow", func(t *testing.T) {
		r, s := build(t)
		s.SetOffer(0, 0, alice, gallery.Offer{Amount: 30})

		_, sum, err := StateHash(crypto.SHA256, r, s)
		require.NoError(t, err)
		require.EqualValues(t, 130, sum)
	})

	t.Run("digest is sensitive to every unit kind", func(t *testing.T) {
		base, s0 := build(t)
		h0, _, err := StateHash(crypto.SHA256, base, s0)
		require.NoError(t, err)

		// token ownership change
		r, s := build(t)
		require.NoError(t, r.TransferToken(alice, bob, 0, 0))
		h, _, err := StateHash(crypto.SHA256, r, s)
		require.NoError(t, err)
		require.NotEqual(t, h0, h)

		// sidecar change
		r, s = build(t)
		s.SetExtendedInfo(0, 0, gallery.ExtendedInfo{DisplayFlag: true, Frozen: true})
		h, _, err = StateHash(crypto.SHA256, r, s)
		require.NoError(t, err)
		require.NotEqual(t, h0, h)

		// offer change
		r, s = build(t)
		s.SetOffer(0, 0, bob, gallery.Offer{Amount: 101})
		h, _, err = StateHash(crypto.SHA256, r, s)
		require.NoError(t, err)
		require.NotEqual(t, h0, h)
	})

	t.Run("empty state", func(t *testing.T) {
		h, sum, err := StateHash(crypto.SHA256, NewRegistry(), NewStore())
		require.NoError(t, err)
		require.NotEmpty(t, h)
		require.Zero(t, sum)
	})

	t.Run("escrow total overflow is reported", func(t *testing.T) {
		r, s := build(t)
		s.SetOffer(0, 0, alice, gallery.Offer{Amount: math.MaxUint64})
		_, _, err := StateHash(crypto.SHA256, r, s)
		require.ErrorContains(t, err, "summary value overflows")
	})
}
