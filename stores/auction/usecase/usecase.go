package usecase

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/base/log"
	"github.com/bazaario/goapi/base/metrics"
	"github.com/bazaario/goapi/base/ptr"
	"github.com/bazaario/goapi/domain"
	"github.com/bazaario/goapi/domain/access"
	"github.com/bazaario/goapi/domain/auction"
	"github.com/bazaario/goapi/domain/listing"
	"github.com/bazaario/goapi/service/chain"
	"github.com/bazaario/goapi/service/query"
)

var timeNow = time.Now

type AuctionUseCaseCfg struct {
	ListingRepo  listing.Repo
	BidRepo      listing.BidRepo
	ActivityRepo listing.ActivityRepo
	AccessUC     access.Usecase
	Chain        chain.HeightGetter
	Query        query.Mongo
	Metrics      metrics.Service

	// Mutex serializes mutations across the listing and auction usecases.
	// Leave nil to run with a private one.
	Mutex *sync.Mutex
}

type impl struct {
	listingRepo  listing.Repo
	bidRepo      listing.BidRepo
	activityRepo listing.ActivityRepo
	accessUC     access.Usecase
	chain        chain.HeightGetter
	q            query.Mongo
	met          metrics.Service
	mu           *sync.Mutex
}

func New(cfg *AuctionUseCaseCfg) auction.Usecase {
	mu := cfg.Mutex
	if mu == nil {
		mu = &sync.Mutex{}
	}
	met := cfg.Metrics
	if met == nil {
		met = metrics.NewLog("auction")
	}
	return &impl{
		listingRepo:  cfg.ListingRepo,
		bidRepo:      cfg.BidRepo,
		activityRepo: cfg.ActivityRepo,
		accessUC:     cfg.AccessUC,
		chain:        cfg.Chain,
		q:            cfg.Query,
		met:          met,
		mu:           mu,
	}
}

func (im *impl) PlaceBid(c ctx.Ctx, caller domain.Address, id listing.Id, amount uint64) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	if err := im.accessUC.RequireNotPaused(c); err != nil {
		return err
	}

	l, err := im.findListing(c, id)
	if err != nil {
		return err
	}

	if !l.IsAuction || !l.Active {
		return domain.ErrNotListed
	}

	height, err := im.chain.Height(c)
	if err != nil {
		c.WithField("err", err).Error("chain.Height failed")
		return err
	}
	if auction.StatusOf(l, height) != auction.StatusOpen {
		return domain.ErrAuctionEnded
	}

	// a bid must strictly beat both the reserve price and the standing bid
	if amount <= l.Price || amount <= l.HighestBid {
		return domain.ErrInvalidBid
	}

	now := timeNow()
	bidder := caller.ToLower()
	bid := &listing.Bid{
		ListingId: id,
		Bidder:    bidder,
		Amount:    amount,
		BidTime:   now,
	}
	patchable := &listing.Patchable{
		HighestBid:    ptr.Uint64(amount),
		HighestBidder: &bidder,
		UpdatedAt:     &now,
	}

	// the bid record and the listing's standing bid move together
	err = im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.bidRepo.Upsert(c, bid); err != nil {
			c.WithFields(log.Fields{
				"err": err,
				"bid": bid,
			}).Error("bidRepo.Upsert failed")
			return err
		}

		if err := im.listingRepo.Patch(c, id, patchable); err != nil {
			c.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("listingRepo.Patch failed")
			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	im.insertActivity(c, &listing.Activity{
		EventId:   uuid.New().String(),
		ListingId: id,
		Type:      listing.ActivityTypePlaceBid,
		Account:   bidder,
		Amount:    amount,
		Time:      now,
	})
	im.met.BumpSum("placebid", 1)

	return nil
}

func (im *impl) FinalizeAuction(c ctx.Ctx, caller domain.Address, id listing.Id) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	if err := im.accessUC.RequireNotPaused(c); err != nil {
		return err
	}

	l, err := im.findListing(c, id)
	if err != nil {
		return err
	}

	if !l.Seller.Equals(caller) {
		return domain.ErrNotAuthorized
	}

	if !l.IsAuction || !l.Active {
		return domain.ErrNotListed
	}

	height, err := im.chain.Height(c)
	if err != nil {
		c.WithField("err", err).Error("chain.Height failed")
		return err
	}
	if auction.StatusOf(l, height) != auction.StatusEnded {
		return domain.ErrAuctionNotEnded
	}

	now := timeNow()
	patchable := &listing.Patchable{
		Active:    ptr.Bool(false),
		UpdatedAt: &now,
	}
	if err := im.listingRepo.Patch(c, id, patchable); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("listingRepo.Patch failed")
		return err
	}

	// no winner when the auction closed without a single valid bid
	winner := domain.EmptyAddress
	if l.HighestBidder != nil {
		winner = *l.HighestBidder
		royalty, remainder := listing.RoyaltySplit(l.HighestBid, l.RoyaltyPercent)
		c.WithFields(log.Fields{
			"id":        id,
			"winner":    winner,
			"amount":    l.HighestBid,
			"royalty":   royalty,
			"remainder": remainder,
		}).Info("auction resulted")
		im.met.BumpSum("finalize.sold", 1)
	} else {
		im.met.BumpSum("finalize.nosale", 1)
	}

	im.insertActivity(c, &listing.Activity{
		EventId:   uuid.New().String(),
		ListingId: id,
		Type:      listing.ActivityTypeResultAuction,
		Account:   l.Seller,
		To:        winner,
		Amount:    l.HighestBid,
		Time:      now,
	})

	return nil
}

func (im *impl) GetBid(c ctx.Ctx, id listing.Id, bidder domain.Address) (*listing.Bid, error) {
	bid, err := im.bidRepo.FindOne(c, listing.BidId{ListingId: id, Bidder: bidder.ToLower()})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"id":     id,
			"bidder": bidder,
		}).Error("bidRepo.FindOne failed")
		return nil, err
	}
	return bid, nil
}

func (im *impl) findListing(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	l, err := im.listingRepo.FindOne(c, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrListingNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("listingRepo.FindOne failed")
		return nil, err
	}
	return l, nil
}

// activity trail is best effort, a failed insert never rolls back the mutation
func (im *impl) insertActivity(c ctx.Ctx, a *listing.Activity) {
	if err := im.activityRepo.Insert(c, a); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"activity": a,
		}).Warn("activityRepo.Insert failed")
	}
}
