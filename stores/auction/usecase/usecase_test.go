package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/domain"
	mAccess "github.com/bazaario/goapi/domain/access/mocks"
	"github.com/bazaario/goapi/domain/listing"
	mListing "github.com/bazaario/goapi/domain/listing/mocks"
	mChain "github.com/bazaario/goapi/service/chain/mocks"
	mQuery "github.com/bazaario/goapi/service/query/mocks"
)

var (
	mockCtx   = ctx.Background()
	assertErr = errors.New("db unavailable")
	seller    = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	bidder    = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	bidder2   = domain.Address("0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6")
)

type testsuite struct {
	suite.Suite
	listingRepo  *mListing.Repo
	bidRepo      *mListing.BidRepo
	activityRepo *mListing.ActivityRepo
	accessUC     *mAccess.Usecase
	chain        *mChain.HeightGetter
	q            *mQuery.Mongo
	im           *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.listingRepo = &mListing.Repo{}
	t.bidRepo = &mListing.BidRepo{}
	t.activityRepo = &mListing.ActivityRepo{}
	t.accessUC = &mAccess.Usecase{}
	t.chain = &mChain.HeightGetter{}
	t.q = &mQuery.Mongo{}
	t.q.On("RunWithTransaction", mockCtx, mock.Anything).
		Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
			return run(c)
		})
	t.im = New(&AuctionUseCaseCfg{
		ListingRepo:  t.listingRepo,
		BidRepo:      t.bidRepo,
		ActivityRepo: t.activityRepo,
		AccessUC:     t.accessUC,
		Chain:        t.chain,
		Query:        t.q,
	}).(*impl)
}

func (t *testsuite) notPaused() {
	t.accessUC.On("RequireNotPaused", mockCtx).Return(nil)
}

func openAuction() *listing.Listing {
	return &listing.Listing{
		Id:               1,
		Seller:           seller,
		Name:             "vintage clock",
		Price:            500,
		IsAuction:        true,
		AuctionEndHeight: 150,
		Active:           true,
	}
}

func (t *testsuite) TestPlaceBid() {
	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(openAuction(), nil)
	t.chain.On("Height", mockCtx).Return(domain.BlockHeight(100), nil)
	t.bidRepo.On("Upsert", mockCtx, mock.Anything).Return(nil)
	t.listingRepo.On("Patch", mockCtx, listing.Id(1), mock.MatchedBy(func(p *listing.Patchable) bool {
		return p.HighestBid != nil && *p.HighestBid == 600 &&
			p.HighestBidder != nil && *p.HighestBidder == bidder.ToLower()
	})).Return(nil)
	t.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	t.NoError(t.im.PlaceBid(mockCtx, bidder, 1, 600))
	t.q.AssertNumberOfCalls(t.T(), "RunWithTransaction", 1)
}

func (t *testsuite) TestPlaceBidPatchFailureAborts() {
	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(openAuction(), nil)
	t.chain.On("Height", mockCtx).Return(domain.BlockHeight(100), nil)
	t.bidRepo.On("Upsert", mockCtx, mock.Anything).Return(nil)
	t.listingRepo.On("Patch", mockCtx, listing.Id(1), mock.Anything).Return(assertErr)

	// both writes run in one transaction, a failed patch surfaces the error
	t.Equal(assertErr, t.im.PlaceBid(mockCtx, bidder, 1, 600))
	t.activityRepo.AssertNotCalled(t.T(), "Insert", mock.Anything, mock.Anything)
}

func (t *testsuite) TestPlaceBidBelowReserve() {
	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(openAuction(), nil)
	t.chain.On("Height", mockCtx).Return(domain.BlockHeight(100), nil)

	// equal to reserve is not enough, the inequality is strict
	t.Equal(domain.ErrInvalidBid, t.im.PlaceBid(mockCtx, bidder, 1, 500))
	t.Equal(domain.ErrInvalidBid, t.im.PlaceBid(mockCtx, bidder, 1, 499))
	t.bidRepo.AssertNotCalled(t.T(), "Upsert", mock.Anything, mock.Anything)
}

func (t *testsuite) TestPlaceBidBelowStandingBid() {
	l := openAuction()
	l.HighestBid = 600
	hb := bidder.ToLower()
	l.HighestBidder = &hb

	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(l, nil)
	t.chain.On("Height", mockCtx).Return(domain.BlockHeight(100), nil)

	t.Equal(domain.ErrInvalidBid, t.im.PlaceBid(mockCtx, bidder2, 1, 550))
	t.Equal(domain.ErrInvalidBid, t.im.PlaceBid(mockCtx, bidder2, 1, 600))
}

func (t *testsuite) TestPlaceBidAfterEnd() {
	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(openAuction(), nil)
	t.chain.On("Height", mockCtx).Return(domain.BlockHeight(151), nil)

	t.Equal(domain.ErrAuctionEnded, t.im.PlaceBid(mockCtx, bidder, 1, 600))
}

func (t *testsuite) TestPlaceBidAtEndHeight() {
	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(openAuction(), nil)
	t.chain.On("Height", mockCtx).Return(domain.BlockHeight(150), nil)
	t.bidRepo.On("Upsert", mockCtx, mock.Anything).Return(nil)
	t.listingRepo.On("Patch", mockCtx, listing.Id(1), mock.Anything).Return(nil)
	t.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	// bidding stays open through the end height itself
	t.NoError(t.im.PlaceBid(mockCtx, bidder, 1, 600))
}

func (t *testsuite) TestPlaceBidOnFixedPriceListing() {
	l := openAuction()
	l.IsAuction = false

	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(l, nil)

	t.Equal(domain.ErrNotListed, t.im.PlaceBid(mockCtx, bidder, 1, 600))
}

func (t *testsuite) TestPlaceBidInactiveListing() {
	l := openAuction()
	l.Active = false

	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(l, nil)

	// deactivation is terminal, bids are rejected without reading the clock
	t.Equal(domain.ErrNotListed, t.im.PlaceBid(mockCtx, bidder, 1, 600))
	t.chain.AssertNotCalled(t.T(), "Height", mock.Anything)
	t.bidRepo.AssertNotCalled(t.T(), "Upsert", mock.Anything, mock.Anything)
}

func (t *testsuite) TestPlaceBidNotFound() {
	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(42)).Return(nil, domain.ErrNotFound)

	t.Equal(domain.ErrListingNotFound, t.im.PlaceBid(mockCtx, bidder, 42, 600))
}

func (t *testsuite) TestPlaceBidPaused() {
	t.accessUC.On("RequireNotPaused", mockCtx).Return(domain.ErrPaused)

	t.Equal(domain.ErrPaused, t.im.PlaceBid(mockCtx, bidder, 1, 600))
	t.listingRepo.AssertNotCalled(t.T(), "FindOne", mock.Anything, mock.Anything)
}

func (t *testsuite) TestFinalizeAuction() {
	l := openAuction()
	l.HighestBid = 600
	hb := bidder.ToLower()
	l.HighestBidder = &hb

	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(l, nil)
	t.chain.On("Height", mockCtx).Return(domain.BlockHeight(151), nil)
	t.listingRepo.On("Patch", mockCtx, listing.Id(1), mock.MatchedBy(func(p *listing.Patchable) bool {
		return p.Active != nil && !*p.Active
	})).Return(nil)
	t.activityRepo.On("Insert", mockCtx, mock.MatchedBy(func(a *listing.Activity) bool {
		return a.Type == listing.ActivityTypeResultAuction &&
			a.To == bidder.ToLower() && a.Amount == 600
	})).Return(nil)

	t.NoError(t.im.FinalizeAuction(mockCtx, seller, 1))
}

func (t *testsuite) TestFinalizeAuctionNotEnded() {
	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(openAuction(), nil)
	t.chain.On("Height", mockCtx).Return(domain.BlockHeight(150), nil)

	t.Equal(domain.ErrAuctionNotEnded, t.im.FinalizeAuction(mockCtx, seller, 1))
}

func (t *testsuite) TestFinalizeAuctionNotSeller() {
	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(openAuction(), nil)

	t.Equal(domain.ErrNotAuthorized, t.im.FinalizeAuction(mockCtx, bidder, 1))
}

func (t *testsuite) TestFinalizeAuctionTwice() {
	l := openAuction()
	l.Active = false

	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(l, nil)

	// already finalized, terminal
	t.Equal(domain.ErrNotListed, t.im.FinalizeAuction(mockCtx, seller, 1))
}

func (t *testsuite) TestFinalizeAuctionNoBids() {
	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(openAuction(), nil)
	t.chain.On("Height", mockCtx).Return(domain.BlockHeight(151), nil)
	t.listingRepo.On("Patch", mockCtx, listing.Id(1), mock.Anything).Return(nil)
	t.activityRepo.On("Insert", mockCtx, mock.MatchedBy(func(a *listing.Activity) bool {
		return a.Type == listing.ActivityTypeResultAuction &&
			a.To == domain.EmptyAddress && a.Amount == 0
	})).Return(nil)

	// closing without bids deactivates the listing without a sale
	t.NoError(t.im.FinalizeAuction(mockCtx, seller, 1))
}

func (t *testsuite) TestGetBid() {
	t.bidRepo.On("FindOne", mockCtx, listing.BidId{ListingId: 1, Bidder: bidder.ToLower()}).
		Return(&listing.Bid{ListingId: 1, Bidder: bidder.ToLower(), Amount: 600}, nil)

	bid, err := t.im.GetBid(mockCtx, 1, bidder)
	t.NoError(err)
	t.Equal(uint64(600), bid.Amount)
}
