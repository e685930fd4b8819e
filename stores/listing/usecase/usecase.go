package usecase

import (
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/base/log"
	"github.com/bazaario/goapi/base/ptr"
	"github.com/bazaario/goapi/domain"
	"github.com/bazaario/goapi/domain/access"
	"github.com/bazaario/goapi/domain/listing"
	"github.com/bazaario/goapi/service/chain"
)

var timeNow = time.Now

type ListingUseCaseCfg struct {
	ListingRepo  listing.Repo
	ActivityRepo listing.ActivityRepo
	AccessRepo   access.Repo
	AccessUC     access.Usecase
	Chain        chain.HeightGetter

	// Mutex serializes mutations across the listing and auction usecases.
	// Leave nil to run with a private one.
	Mutex *sync.Mutex
}

type impl struct {
	listingRepo  listing.Repo
	activityRepo listing.ActivityRepo
	accessRepo   access.Repo
	accessUC     access.Usecase
	chain        chain.HeightGetter
	validate     *validator.Validate
	mu           *sync.Mutex
}

func New(cfg *ListingUseCaseCfg) listing.Usecase {
	mu := cfg.Mutex
	if mu == nil {
		mu = &sync.Mutex{}
	}
	return &impl{
		listingRepo:  cfg.ListingRepo,
		activityRepo: cfg.ActivityRepo,
		accessRepo:   cfg.AccessRepo,
		accessUC:     cfg.AccessUC,
		chain:        cfg.Chain,
		validate:     validator.New(),
		mu:           mu,
	}
}

func (im *impl) CreateListing(c ctx.Ctx, caller domain.Address, payload *listing.CreatePayload) (listing.Id, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if err := im.accessUC.RequireNotPaused(c); err != nil {
		return 0, err
	}

	if caller.IsZero() {
		return 0, domain.ErrZeroAddress
	}

	if payload.Price == 0 {
		return 0, domain.ErrInvalidPrice
	}

	if payload.RoyaltyRecipient.IsZero() {
		return 0, domain.ErrZeroAddress
	}

	if payload.RoyaltyPercent < 0 || payload.RoyaltyPercent > listing.RoyaltyDenominator {
		return 0, domain.ErrInvalidRoyalty
	}

	// auction fields stay zeroed on fixed-price listings
	endHeight := domain.BlockHeight(0)
	if payload.IsAuction {
		height, err := im.chain.Height(c)
		if err != nil {
			c.WithField("err", err).Error("chain.Height failed")
			return 0, err
		}
		if payload.AuctionEndHeight <= height {
			return 0, domain.ErrAuctionEnded
		}
		endHeight = payload.AuctionEndHeight
	}

	if err := im.validate.Struct(payload); err != nil {
		c.WithField("err", err).Warn("payload validation failed")
		return 0, domain.ErrBadParamInput
	}

	id, err := im.accessRepo.NextListingId(c)
	if err != nil {
		c.WithField("err", err).Error("accessRepo.NextListingId failed")
		return 0, err
	}

	now := timeNow()
	l := &listing.Listing{
		Id:               id,
		Seller:           caller.ToLower(),
		Name:             payload.Name,
		Description:      payload.Description,
		Price:            payload.Price,
		IsAuction:        payload.IsAuction,
		AuctionEndHeight: endHeight,
		RoyaltyRecipient: payload.RoyaltyRecipient.ToLower(),
		RoyaltyPercent:   payload.RoyaltyPercent,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := im.listingRepo.Insert(c, l); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"listing": l,
		}).Error("listingRepo.Insert failed")
		return 0, err
	}

	activityType := listing.ActivityTypeList
	if payload.IsAuction {
		activityType = listing.ActivityTypeCreateAuction
	}
	im.insertActivity(c, &listing.Activity{
		EventId:   uuid.New().String(),
		ListingId: id,
		Type:      activityType,
		Account:   caller.ToLower(),
		Amount:    payload.Price,
		Time:      now,
	})

	return id, nil
}

func (im *impl) UpdateListing(c ctx.Ctx, caller domain.Address, id listing.Id, payload *listing.UpdatePayload) error {
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

	if !l.Active {
		return domain.ErrNotListed
	}

	if payload.Price == 0 {
		return domain.ErrInvalidPrice
	}

	if err := im.validate.Struct(payload); err != nil {
		c.WithField("err", err).Warn("payload validation failed")
		return domain.ErrBadParamInput
	}

	now := timeNow()
	patchable := &listing.Patchable{
		Name:        ptr.String(payload.Name),
		Description: ptr.String(payload.Description),
		Price:       ptr.Uint64(payload.Price),
		UpdatedAt:   &now,
	}

	if err := im.listingRepo.Patch(c, id, patchable); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("listingRepo.Patch failed")
		return err
	}

	im.insertActivity(c, &listing.Activity{
		EventId:   uuid.New().String(),
		ListingId: id,
		Type:      listing.ActivityTypeUpdateListing,
		Account:   caller.ToLower(),
		Amount:    payload.Price,
		Time:      now,
	})

	return nil
}

func (im *impl) DeactivateListing(c ctx.Ctx, caller domain.Address, id listing.Id) error {
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

	if !l.Active {
		return domain.ErrNotListed
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

	im.insertActivity(c, &listing.Activity{
		EventId:   uuid.New().String(),
		ListingId: id,
		Type:      listing.ActivityTypeCancelListing,
		Account:   caller.ToLower(),
		Time:      now,
	})

	return nil
}

func (im *impl) GetListing(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	return im.findListing(c, id)
}

func (im *impl) GetListingCounter(c ctx.Ctx) (listing.Id, error) {
	state, err := im.accessRepo.Get(c)
	if errors.Is(err, domain.ErrNotFound) {
		// nothing listed yet
		return 0, nil
	} else if err != nil {
		c.WithField("err", err).Error("accessRepo.Get failed")
		return 0, err
	}
	return state.NextId, nil
}

func (im *impl) GetActivities(c ctx.Ctx, id listing.Id) ([]listing.Activity, error) {
	res, err := im.activityRepo.FindByListing(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("activityRepo.FindByListing failed")
		return nil, err
	}
	return res, nil
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
