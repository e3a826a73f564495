package gallery

import "errors"

// Domain rejections. Every one of them is terminal: the operation that
// returns it has made no storage change and emitted no event.
var (
	ErrCollectionNotFound             = errors.New("collection doesn't exist")
	ErrTokenNotFound                  = errors.New("token doesn't exist")
	ErrOfferNotFound                  = errors.New("offer doesn't exist")
	ErrMustBeTokenOwner               = errors.New("sender must be the token owner")
	ErrMustBeCollectionOwner          = errors.New("sender must be the collection owner")
	ErrMustBeCollectionOwnerOrCurator = errors.New("sender must be the collection owner or the curator")
	ErrMustBeCurator                  = errors.New("sender must be the curator")
	ErrBalanceNotEnough               = errors.New("amount is above sender balance")
	ErrTokenFrozen                    = errors.New("token is frozen for a swap")
)
