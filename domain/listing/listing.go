package listing

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/domain"
)

// Id is a listing identifier. Ids start at 1, grow monotonically and are
// never reused, even after the listing is deactivated.
type Id uint64

// RoyaltyDenominator is the basis-point scale of RoyaltyPercent
const RoyaltyDenominator = 10000

// Listing is one item offered for sale, stored in database
type Listing struct {
	Id          Id             `json:"id" bson:"id"`
	Seller      domain.Address `json:"seller" bson:"seller"`
	Name        string         `json:"name" bson:"name"`
	Description string         `json:"description" bson:"description"`

	// Price is denominated in the platform's unit of account. For auctions it
	// is the reserve price.
	Price uint64 `json:"price" bson:"price"`

	// sale mode, fixed for the listing's lifetime
	IsAuction        bool               `json:"isAuction" bson:"isAuction"`
	AuctionEndHeight domain.BlockHeight `json:"auctionEndHeight" bson:"auctionEndHeight"`

	// auction state, nil HighestBidder means no valid bid has been placed yet
	HighestBid    uint64          `json:"highestBid" bson:"highestBid"`
	HighestBidder *domain.Address `json:"highestBidder" bson:"highestBidder"`

	RoyaltyRecipient domain.Address `json:"royaltyRecipient" bson:"royaltyRecipient"`
	RoyaltyPercent   int32          `json:"royaltyPercent" bson:"royaltyPercent"`

	// Active is true from creation until deactivation or finalization.
	// Once false it never becomes true again.
	Active bool `json:"active" bson:"active"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CreatePayload carries the caller supplied fields of a new listing
type CreatePayload struct {
	Name             string             `json:"name" validate:"required,max=100"`
	Description      string             `json:"description" validate:"max=1000"`
	Price            uint64             `json:"price"`
	IsAuction        bool               `json:"isAuction"`
	AuctionEndHeight domain.BlockHeight `json:"auctionEndHeight"`
	RoyaltyRecipient domain.Address     `json:"royaltyRecipient"`
	RoyaltyPercent   int32              `json:"royaltyPercent"`
}

// UpdatePayload carries the seller mutable fields of an active listing.
// Auction state is never touched by an update.
type UpdatePayload struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
	Price       uint64 `json:"price"`
}

// Patchable is the partial updater persisted through MakeBsonM
type Patchable struct {
	Name          *string         `bson:"name,omitempty"`
	Description   *string         `bson:"description,omitempty"`
	Price         *uint64         `bson:"price,omitempty"`
	HighestBid    *uint64         `bson:"highestBid,omitempty"`
	HighestBidder *domain.Address `bson:"highestBidder,omitempty"`
	Active        *bool           `bson:"active,omitempty"`
	UpdatedAt     *time.Time      `bson:"updatedAt,omitempty"`
}

// RoyaltySplit divides a sale amount into the royalty owed to the recipient
// and the seller remainder. Royalty is floored, the remainder absorbs the
// rounding dust.
func RoyaltySplit(amount uint64, royaltyPercent int32) (royalty, remainder uint64) {
	if royaltyPercent <= 0 {
		return 0, amount
	}
	amt := decimal.NewFromBigInt(new(big.Int).SetUint64(amount), 0)
	cut := amt.Mul(decimal.NewFromInt32(royaltyPercent)).
		Div(decimal.NewFromInt(RoyaltyDenominator)).
		Floor()
	royalty = cut.BigInt().Uint64()
	return royalty, amount - royalty
}

// Usecase is the listing registry
type Usecase interface {
	// CreateListing allocates the next id and stores a new active listing
	CreateListing(c ctx.Ctx, caller domain.Address, payload *CreatePayload) (Id, error)
	// UpdateListing lets the seller change text and price of an active listing
	UpdateListing(c ctx.Ctx, caller domain.Address, id Id, payload *UpdatePayload) error
	// DeactivateListing is the seller's unilateral withdrawal, terminal
	DeactivateListing(c ctx.Ctx, caller domain.Address, id Id) error

	GetListing(c ctx.Ctx, id Id) (*Listing, error)
	GetListingCounter(c ctx.Ctx) (Id, error)
	GetActivities(c ctx.Ctx, id Id) ([]Activity, error)
}

// Repo is listing repo
type Repo interface {
	FindOne(c ctx.Ctx, id Id) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Count(c ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Insert(c ctx.Ctx, l *Listing) error
	Patch(c ctx.Ctx, id Id, patchable *Patchable) error
}
