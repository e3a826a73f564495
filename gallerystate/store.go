package gallerystate

import (
	"github.com/artchain-org/artchain-go/txsystem/gallery"
	"github.com/artchain-org/artchain-go/types"
)

type offerKey struct {
	cid    types.CollectionID
	tid    types.TokenID
	bidder types.AccountID
}

// Store holds the gallery partition's own state: the curator singleton, the
// ExtendedInfo sidecars and the escrow offers.
type Store struct {
	curator types.AccountID
	info    map[tokenKey]gallery.ExtendedInfo
	offers  map[offerKey]gallery.Offer
}

var _ gallery.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		info:   map[tokenKey]gallery.ExtendedInfo{},
		offers: map[offerKey]gallery.Offer{},
	}
}

func (s *Store) Curator() types.AccountID {
	return s.curator
}

func (s *Store) SetCurator(curator types.AccountID) {
	s.curator = curator
}

func (s *Store) ExtendedInfo(cid types.CollectionID, tid types.TokenID) (gallery.ExtendedInfo, bool) {
	info, ok := s.info[tokenKey{cid, tid}]
	return info, ok
}

func (s *Store) SetExtendedInfo(cid types.CollectionID, tid types.TokenID, info gallery.ExtendedInfo) {
	s.info[tokenKey{cid, tid}] = info
}

func (s *Store) RemoveExtendedInfo(cid types.CollectionID, tid types.TokenID) {
	delete(s.info, tokenKey{cid, tid})
}

func (s *Store) Offer(cid types.CollectionID, tid types.TokenID, bidder types.AccountID) (gallery.Offer, bool) {
	offer, ok := s.offers[offerKey{cid, tid, bidder}]
	return offer, ok
}

func (s *Store) SetOffer(cid types.CollectionID, tid types.TokenID, bidder types.AccountID, offer gallery.Offer) {
	s.offers[offerKey{cid, tid, bidder}] = offer
}

func (s *Store) RemoveOffer(cid types.CollectionID, tid types.TokenID, bidder types.AccountID) {
	delete(s.offers, offerKey{cid, tid, bidder})
}
