package listing

import (
	"time"

	"github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/domain"
)

type ActivityType string

const (
	ActivityTypeList          ActivityType = "list"
	ActivityTypeCreateAuction ActivityType = "createAuction"
	ActivityTypeUpdateListing ActivityType = "updateListing"
	ActivityTypeCancelListing ActivityType = "cancelListing"
	ActivityTypePlaceBid      ActivityType = "placeBid"
	ActivityTypeResultAuction ActivityType = "resultAuction"
)

// Activity is the audit trail entry written after each successful mutation.
// The settlement collaborator consumes resultAuction entries, a finalized
// auction with an empty To means no sale.
type Activity struct {
	EventId   string         `json:"eventId" bson:"eventId"`
	ListingId Id             `json:"listingId" bson:"listingId"`
	Type      ActivityType   `json:"type" bson:"type"`
	Account   domain.Address `json:"account" bson:"account"`
	To        domain.Address `json:"to" bson:"to"`
	Amount    uint64         `json:"amount" bson:"amount"`
	Time      time.Time      `json:"time" bson:"time"`
}

// ActivityRepo is activity repo
type ActivityRepo interface {
	Insert(c ctx.Ctx, a *Activity) error
	FindByListing(c ctx.Ctx, id Id) ([]Activity, error)
}
