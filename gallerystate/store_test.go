package gallerystate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/artchain-org/artchain-go/txsystem/gallery"
	"github.com/artchain-org/artchain-go/types"
)

func Test_Store_Curator(t *testing.T) {
	s := NewStore()
	require.True(t, s.Curator().IsEmpty(), "fresh store has no curator")

	s.SetCurator(alice)
	require.Equal(t, alice, s.Curator())

	s.SetCurator(types.AccountID{})
	require.True(t, s.Curator().IsEmpty())
}

func Test_Store_ExtendedInfo(t *testing.T) {
	s := NewStore()
	_, ok := s.ExtendedInfo(1, 2)
	require.False(t, ok)

	s.SetExtendedInfo(1, 2, gallery.ExtendedInfo{Frozen: true})
	info, ok := s.ExtendedInfo(1, 2)
	require.True(t, ok)
	require.True(t, info.Frozen)

	// neighbouring keys are unaffected
	_, ok = s.ExtendedInfo(2, 1)
	require.False(t, ok)

	s.RemoveExtendedInfo(1, 2)
	_, ok = s.ExtendedInfo(1, 2)
	require.False(t, ok)
}

func Test_Store_Offers(t *testing.T) {
	s := NewStore()
	_, ok := s.Offer(0, 0, alice)
	require.False(t, ok)

	s.SetOffer(0, 0, alice, gallery.Offer{Amount: 10})
	s.SetOffer(0, 0, bob, gallery.Offer{Amount: 20})

	offer, ok := s.Offer(0, 0, alice)
	require.True(t, ok)
	require.EqualValues(t, 10, offer.Amount)

	// offers are keyed per bidder, removing one leaves the other
	s.RemoveOffer(0, 0, alice)
	_, ok = s.Offer(0, 0, alice)
	require.False(t, ok)
	offer, ok = s.Offer(0, 0, bob)
	require.True(t, ok)
	require.EqualValues(t, 20, offer.Amount)
}
