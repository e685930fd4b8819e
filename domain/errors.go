package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrPaused is returned by every mutating operation while the
	// marketplace circuit breaker is engaged
	ErrPaused = errors.New("marketplace paused")
	// ErrNotAuthorized is returned when the caller lacks the required role
	ErrNotAuthorized = errors.New("not authorized")
	// ErrListingNotFound is returned when the referenced listing does not exist
	ErrListingNotFound = errors.New("listing not found")
	// ErrNotListed is returned when a listing exists but is inactive, or the
	// operation does not match the listing's sale mode
	ErrNotListed = errors.New("listing not active")
	// ErrInvalidBid is returned when a bid does not strictly exceed both the
	// reserve price and the current highest bid
	ErrInvalidBid = errors.New("bid not above reserve or current highest bid")
	// ErrAuctionEnded is returned when bidding past the end height, or when
	// creating an auction whose end height is not in the future
	ErrAuctionEnded = errors.New("auction ended")
	// ErrAuctionNotEnded is returned when finalizing an auction still open
	ErrAuctionNotEnded = errors.New("auction not ended")
	// ErrInvalidRoyalty is returned when a royalty is outside [0, 10000] bps
	ErrInvalidRoyalty = errors.New("invalid royalty")
	// ErrZeroAddress is returned when the null account is used where a real
	// account is required
	ErrZeroAddress = errors.New("zero address")
	// ErrInvalidPrice is returned when a price is not a positive amount
	ErrInvalidPrice = errors.New("invalid price")
)
