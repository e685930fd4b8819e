package auction

import (
	"github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/domain"
	"github.com/bazaario/goapi/domain/listing"
)

type Status string

const (
	// StatusOpen accepts bids, the current height has not passed the end height
	StatusOpen Status = "open"
	// StatusEnded passed its end height but has not been finalized yet
	StatusEnded Status = "ended"
	// StatusFinalized is terminal
	StatusFinalized Status = "finalized"
)

// StatusOf derives the auction status of a listing at the given height.
// Bidding stays open through the end height itself, the auction ends once the
// height is strictly greater.
func StatusOf(l *listing.Listing, height domain.BlockHeight) Status {
	if !l.Active {
		return StatusFinalized
	}
	if height > l.AuctionEndHeight {
		return StatusEnded
	}
	return StatusOpen
}

// Usecase is the auction engine
type Usecase interface {
	// PlaceBid records a bid that strictly exceeds both the reserve price and
	// the current highest bid
	PlaceBid(c ctx.Ctx, caller domain.Address, id listing.Id, amount uint64) error
	// FinalizeAuction lets the seller close an auction whose end height has
	// passed. Finalizing with no bids deactivates the listing without a sale.
	FinalizeAuction(c ctx.Ctx, caller domain.Address, id listing.Id) error

	GetBid(c ctx.Ctx, id listing.Id, bidder domain.Address) (*listing.Bid, error)
}
