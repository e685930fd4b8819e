package main

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bazaario/goapi/base/backoff"
	"github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/domain"
	"github.com/bazaario/goapi/domain/listing"
	mListing "github.com/bazaario/goapi/domain/listing/mocks"
	mChain "github.com/bazaario/goapi/service/chain/mocks"
)

var (
	mockCtx   = ctx.Background()
	assertErr = errors.New("rpc unavailable")
)

type watcherSuite struct {
	suite.Suite
	listingRepo *mListing.Repo
	chain       *mChain.HeightGetter
	watcher     *EndedAuctionWatcher
}

func TestWatcherSuite(t *testing.T) {
	suite.Run(t, new(watcherSuite))
}

func (t *watcherSuite) SetupTest() {
	t.listingRepo = &mListing.Repo{}
	t.chain = &mChain.HeightGetter{}
	t.watcher = NewEndedAuctionWatcher(&EndedAuctionWatcherCfg{
		ListingRepo: t.listingRepo,
		Chain:       t.chain,
		RetryLimit:  2,
		Backoff:     backoff.NewExponential(time.Millisecond, 10*time.Millisecond),
		Interval:    time.Minute,
		ErrorCh:     make(chan error, 1),
	})
}

func (t *watcherSuite) TestPoll() {
	t.chain.On("Height", mockCtx).Return(domain.BlockHeight(151), nil)
	t.listingRepo.On("FindAll", mockCtx, mock.Anything, mock.Anything, mock.Anything).
		Return([]*listing.Listing{
			{Id: 1, IsAuction: true, AuctionEndHeight: 150, Active: true},
		}, nil)

	t.NoError(t.watcher.poll(mockCtx))
	t.listingRepo.AssertNumberOfCalls(t.T(), "FindAll", 1)
}

func (t *watcherSuite) TestPollRetriesHeight() {
	t.chain.On("Height", mockCtx).Return(domain.BlockHeight(0), assertErr).Twice()
	t.chain.On("Height", mockCtx).Return(domain.BlockHeight(151), nil).Once()
	t.listingRepo.On("FindAll", mockCtx, mock.Anything, mock.Anything, mock.Anything).
		Return([]*listing.Listing{}, nil)

	t.NoError(t.watcher.poll(mockCtx))
}

func (t *watcherSuite) TestStartRecoversPanic() {
	errorCh := make(chan error, 1)
	t.chain.On("Height", mock.Anything).Run(func(args mock.Arguments) {
		panic("boom")
	}).Return(domain.BlockHeight(0), nil)
	w := NewEndedAuctionWatcher(&EndedAuctionWatcherCfg{
		ListingRepo: t.listingRepo,
		Chain:       t.chain,
		RetryLimit:  2,
		Backoff:     backoff.NewExponential(time.Millisecond, 10*time.Millisecond),
		Interval:    time.Minute,
		ErrorCh:     errorCh,
	})

	w.Start(mockCtx)

	// a panic in the loop surfaces as an error instead of crashing the process
	err := <-errorCh
	t.Contains(err.Error(), "panicked")
	w.Wait()
}

func (t *watcherSuite) TestPollGivesUpAfterRetryLimit() {
	t.chain.On("Height", mockCtx).Return(domain.BlockHeight(0), assertErr)

	t.Equal(assertErr, t.watcher.poll(mockCtx))
	t.listingRepo.AssertNotCalled(t.T(), "FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
