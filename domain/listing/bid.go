package listing

import (
	"time"

	"github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/domain"
)

// BidId is the composite key of a bid. A bidder has at most one recorded bid
// per listing, a newer bid overwrites the amount.
type BidId struct {
	ListingId Id             `json:"listingId" bson:"listingId"`
	Bidder    domain.Address `json:"bidder" bson:"bidder"`
}

// Bid is one account's most recent bid on one auction listing
type Bid struct {
	ListingId Id             `json:"listingId" bson:"listingId"`
	Bidder    domain.Address `json:"bidder" bson:"bidder"`
	Amount    uint64         `json:"amount" bson:"amount"`
	BidTime   time.Time      `json:"bidTime" bson:"bidTime"`
}

func (b *Bid) ToId() BidId {
	return BidId{ListingId: b.ListingId, Bidder: b.Bidder.ToLower()}
}

// BidRepo is bid repo
type BidRepo interface {
	FindOne(c ctx.Ctx, id BidId) (*Bid, error)
	Upsert(c ctx.Ctx, b *Bid) error
}
