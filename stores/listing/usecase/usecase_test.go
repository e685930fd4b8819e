package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/domain"
	"github.com/bazaario/goapi/domain/access"
	mAccess "github.com/bazaario/goapi/domain/access/mocks"
	"github.com/bazaario/goapi/domain/listing"
	mListing "github.com/bazaario/goapi/domain/listing/mocks"
	mChain "github.com/bazaario/goapi/service/chain/mocks"
)

var (
	mockCtx = ctx.Background()
	seller  = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	other   = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	royalty = domain.Address("0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6")
)

type testsuite struct {
	suite.Suite
	listingRepo  *mListing.Repo
	activityRepo *mListing.ActivityRepo
	accessRepo   *mAccess.Repo
	accessUC     *mAccess.Usecase
	chain        *mChain.HeightGetter
	im           *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.listingRepo = &mListing.Repo{}
	t.activityRepo = &mListing.ActivityRepo{}
	t.accessRepo = &mAccess.Repo{}
	t.accessUC = &mAccess.Usecase{}
	t.chain = &mChain.HeightGetter{}
	t.im = New(&ListingUseCaseCfg{
		ListingRepo:  t.listingRepo,
		ActivityRepo: t.activityRepo,
		AccessRepo:   t.accessRepo,
		AccessUC:     t.accessUC,
		Chain:        t.chain,
	}).(*impl)
}

func (t *testsuite) notPaused() {
	t.accessUC.On("RequireNotPaused", mockCtx).Return(nil)
}

func fixedPayload() *listing.CreatePayload {
	return &listing.CreatePayload{
		Name:             "vintage clock",
		Description:      "keeps perfect time",
		Price:            500,
		RoyaltyRecipient: royalty,
		RoyaltyPercent:   250,
	}
}

func (t *testsuite) TestCreateListing() {
	t.notPaused()
	t.accessRepo.On("NextListingId", mockCtx).Return(listing.Id(1), nil).Once()
	t.accessRepo.On("NextListingId", mockCtx).Return(listing.Id(2), nil).Once()
	t.listingRepo.On("Insert", mockCtx, mock.Anything).Return(nil)
	t.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	id, err := t.im.CreateListing(mockCtx, seller, fixedPayload())
	t.NoError(err)
	t.Equal(listing.Id(1), id)

	id, err = t.im.CreateListing(mockCtx, seller, fixedPayload())
	t.NoError(err)
	t.Equal(listing.Id(2), id)
}

func (t *testsuite) TestCreateListingPaused() {
	t.accessUC.On("RequireNotPaused", mockCtx).Return(domain.ErrPaused)

	_, err := t.im.CreateListing(mockCtx, seller, fixedPayload())
	t.Equal(domain.ErrPaused, err)
	t.listingRepo.AssertNotCalled(t.T(), "Insert", mock.Anything, mock.Anything)
}

func (t *testsuite) TestCreateListingZeroPrice() {
	t.notPaused()

	payload := fixedPayload()
	payload.Price = 0
	_, err := t.im.CreateListing(mockCtx, seller, payload)
	t.Equal(domain.ErrInvalidPrice, err)
	t.listingRepo.AssertNotCalled(t.T(), "Insert", mock.Anything, mock.Anything)
	t.accessRepo.AssertNotCalled(t.T(), "NextListingId", mock.Anything)
}

func (t *testsuite) TestCreateListingRoyaltyBounds() {
	t.notPaused()
	t.accessRepo.On("NextListingId", mockCtx).Return(listing.Id(1), nil)
	t.listingRepo.On("Insert", mockCtx, mock.Anything).Return(nil)
	t.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	// both ends of the range are valid
	payload := fixedPayload()
	payload.RoyaltyPercent = 0
	_, err := t.im.CreateListing(mockCtx, seller, payload)
	t.NoError(err)

	payload = fixedPayload()
	payload.RoyaltyPercent = listing.RoyaltyDenominator
	_, err = t.im.CreateListing(mockCtx, seller, payload)
	t.NoError(err)

	payload = fixedPayload()
	payload.RoyaltyPercent = listing.RoyaltyDenominator + 1
	_, err = t.im.CreateListing(mockCtx, seller, payload)
	t.Equal(domain.ErrInvalidRoyalty, err)

	payload = fixedPayload()
	payload.RoyaltyPercent = -1
	_, err = t.im.CreateListing(mockCtx, seller, payload)
	t.Equal(domain.ErrInvalidRoyalty, err)
}

func (t *testsuite) TestCreateListingZeroRoyaltyRecipient() {
	t.notPaused()

	payload := fixedPayload()
	payload.RoyaltyRecipient = domain.EmptyAddress
	_, err := t.im.CreateListing(mockCtx, seller, payload)
	t.Equal(domain.ErrZeroAddress, err)
}

func (t *testsuite) TestCreateAuctionEndHeightGate() {
	t.notPaused()
	t.chain.On("Height", mockCtx).Return(domain.BlockHeight(100), nil)
	t.accessRepo.On("NextListingId", mockCtx).Return(listing.Id(1), nil)
	t.listingRepo.On("Insert", mockCtx, mock.Anything).Return(nil)
	t.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	payload := fixedPayload()
	payload.IsAuction = true
	payload.AuctionEndHeight = 100
	_, err := t.im.CreateListing(mockCtx, seller, payload)
	t.Equal(domain.ErrAuctionEnded, err)

	payload.AuctionEndHeight = 150
	id, err := t.im.CreateListing(mockCtx, seller, payload)
	t.NoError(err)
	t.Equal(listing.Id(1), id)
}

func (t *testsuite) TestCreateFixedPriceZeroesAuctionFields() {
	t.notPaused()
	t.accessRepo.On("NextListingId", mockCtx).Return(listing.Id(1), nil)
	t.listingRepo.On("Insert", mockCtx, mock.MatchedBy(func(l *listing.Listing) bool {
		return !l.IsAuction && l.AuctionEndHeight == 0
	})).Return(nil)
	t.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	// a stray end height on a fixed-price create is never persisted
	payload := fixedPayload()
	payload.AuctionEndHeight = 500
	_, err := t.im.CreateListing(mockCtx, seller, payload)
	t.NoError(err)
	t.chain.AssertNotCalled(t.T(), "Height", mock.Anything)
}

func (t *testsuite) TestCreateListingBadPayload() {
	t.notPaused()

	payload := fixedPayload()
	payload.Name = ""
	_, err := t.im.CreateListing(mockCtx, seller, payload)
	t.Equal(domain.ErrBadParamInput, err)
}

func (t *testsuite) TestUpdateListing() {
	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(&listing.Listing{
		Id:     1,
		Seller: seller,
		Price:  500,
		Active: true,
	}, nil)
	t.listingRepo.On("Patch", mockCtx, listing.Id(1), mock.Anything).Return(nil)
	t.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	err := t.im.UpdateListing(mockCtx, seller, 1, &listing.UpdatePayload{
		Name:  "vintage clock",
		Price: 700,
	})
	t.NoError(err)
}

func (t *testsuite) TestUpdateListingNotFound() {
	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(42)).Return(nil, domain.ErrNotFound)

	err := t.im.UpdateListing(mockCtx, seller, 42, &listing.UpdatePayload{Name: "x", Price: 1})
	t.Equal(domain.ErrListingNotFound, err)
}

func (t *testsuite) TestUpdateListingNotSeller() {
	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(&listing.Listing{
		Id:     1,
		Seller: seller,
		Active: true,
	}, nil)

	err := t.im.UpdateListing(mockCtx, other, 1, &listing.UpdatePayload{Name: "x", Price: 1})
	t.Equal(domain.ErrNotAuthorized, err)
}

func (t *testsuite) TestUpdateListingInactive() {
	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(&listing.Listing{
		Id:     1,
		Seller: seller,
		Active: false,
	}, nil)

	err := t.im.UpdateListing(mockCtx, seller, 1, &listing.UpdatePayload{Name: "x", Price: 1})
	t.Equal(domain.ErrNotListed, err)
}

func (t *testsuite) TestUpdateListingZeroPrice() {
	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(&listing.Listing{
		Id:     1,
		Seller: seller,
		Active: true,
	}, nil)

	err := t.im.UpdateListing(mockCtx, seller, 1, &listing.UpdatePayload{Name: "x", Price: 0})
	t.Equal(domain.ErrInvalidPrice, err)
	t.listingRepo.AssertNotCalled(t.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestDeactivateListing() {
	t.notPaused()
	t.listingRepo.On("FindOne", mockCtx, listing.Id(1)).Return(&listing.Listing{
		Id:     1,
		Seller: seller,
		Active: true,
	}, nil)
	t.listingRepo.On("Patch", mockCtx, listing.Id(1), mock.MatchedBy(func(p *listing.Patchable) bool {
		return p.Active != nil && !*p.Active
	})).Return(nil)
	t.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil)

	t.NoError(t.im.DeactivateListing(mockCtx, seller, 1))
}

func (t *testsuite) TestGetListingCounter() {
	t.accessRepo.On("Get", mockCtx).Return(nil, domain.ErrNotFound).Once()
	cnt, err := t.im.GetListingCounter(mockCtx)
	t.NoError(err)
	t.Equal(listing.Id(0), cnt)

	t.accessRepo.On("Get", mockCtx).Return(&access.State{
		Key:    access.StateKey,
		NextId: 7,
	}, nil).Once()
	cnt, err = t.im.GetListingCounter(mockCtx)
	t.NoError(err)
	t.Equal(listing.Id(7), cnt)
}
