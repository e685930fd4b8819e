package domain

import "strings"

// Table is a collection name in the document store
type Table string

const (
	TableListings          Table = "listings"
	TableBids              Table = "bids"
	TableMarketState       Table = "market_state"
	TableListingActivities Table = "listing_activities"
)

// Address identifies an account on the hosting ledger
type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// IsZero reports whether the address is absent or the ledger's null account
func (a Address) IsZero() bool {
	return len(a) == 0 || a.ToLower() == EmptyAddress
}

// BlockHeight is the logical clock supplied by the hosting ledger.
// The core only reads it, never advances it.
type BlockHeight uint64
