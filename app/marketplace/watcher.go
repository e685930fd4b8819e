package main

import (
	"time"

	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/bazaario/goapi/base/backoff"
	bCtx "github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/base/goroutine"
	"github.com/bazaario/goapi/base/log"
	"github.com/bazaario/goapi/base/metrics"
	"github.com/bazaario/goapi/domain"
	"github.com/bazaario/goapi/domain/auction"
	"github.com/bazaario/goapi/domain/listing"
	"github.com/bazaario/goapi/service/chain"
)

type EndedAuctionWatcherCfg struct {
	ListingRepo listing.Repo
	AuctionUC   auction.Usecase
	Chain       chain.HeightGetter
	RetryLimit  int
	Backoff     *backoff.Backoff
	Interval    time.Duration
	ErrorCh     chan<- error
}

// EndedAuctionWatcher periodically scans for active auctions whose end height
// has passed and surfaces them so sellers get nudged to finalize. It never
// mutates listings, finalization stays a seller action.
type EndedAuctionWatcher struct {
	listingRepo listing.Repo
	auctionUC   auction.Usecase
	chain       chain.HeightGetter
	retryLimit  int
	backoff     *backoff.Backoff
	interval    time.Duration
	errorCh     chan<- error
	stoppedCh   chan interface{}
	workerPool  *goroutines.Pool
	met         metrics.Service
}

func NewEndedAuctionWatcher(cfg *EndedAuctionWatcherCfg) *EndedAuctionWatcher {
	return &EndedAuctionWatcher{
		listingRepo: cfg.ListingRepo,
		auctionUC:   cfg.AuctionUC,
		chain:       cfg.Chain,
		retryLimit:  cfg.RetryLimit,
		backoff:     cfg.Backoff,
		interval:    cfg.Interval,
		errorCh:     cfg.ErrorCh,
		stoppedCh:   make(chan interface{}),
		workerPool:  goroutines.NewPool(32, goroutines.WithTaskQueueLength(1024)),
		met:         metrics.New("watcher"),
	}
}

func (w *EndedAuctionWatcher) Start(ctx bCtx.Ctx) {
	goroutine.RecoverableGo(func() {
		w.loop(ctx)
	}, goroutine.WithAfterRecovered(func(p interface{}, stack []byte) {
		w.errorCh <- xerrors.Errorf("watcher panicked: %v", p)
		close(w.stoppedCh)
	}))
}

func (w *EndedAuctionWatcher) Wait() {
	<-w.stoppedCh
}

func (w *EndedAuctionWatcher) loop(ctx bCtx.Ctx) {
	nextTick := time.Second * 0

	for {
		select {
		case <-ctx.Done():
			w.workerPool.Release()
			close(w.stoppedCh)
			return
		case <-time.After(nextTick):
			if err := w.poll(ctx); err != nil {
				w.errorCh <- err
				w.workerPool.Release()
				close(w.stoppedCh)
				return
			}
			nextTick = w.interval
		}
	}
}

func (w *EndedAuctionWatcher) poll(ctx bCtx.Ctx) error {
	var (
		height  = domain.BlockHeight(0)
		retries = 0
	)
	for {
		h, err := w.chain.Height(ctx)
		if err == nil {
			height = h
			w.backoff.Reset()
			break
		}
		retries++
		if retries > w.retryLimit {
			ctx.WithField("err", err).Error("chain.Height failed")
			return err
		}
		ctx.WithFields(log.Fields{
			"err":     err,
			"retries": retries,
		}).Warn("chain.Height failed, backing off")
		if err := w.backoff.Backoff(ctx); err != nil {
			return err
		}
	}

	ended, err := w.listingRepo.FindAll(ctx,
		listing.WithActive(true),
		listing.WithIsAuction(true),
		listing.WithEndHeightLT(height),
	)
	if err != nil {
		ctx.WithField("err", err).Error("listingRepo.FindAll failed")
		return err
	}

	for _, l := range ended {
		l := l
		w.workerPool.Schedule(func() {
			w.met.BumpSum("auction.awaiting_finalize", 1)
			fields := log.Fields{
				"id":         l.Id,
				"seller":     l.Seller,
				"endHeight":  l.AuctionEndHeight,
				"highestBid": l.HighestBid,
				"height":     height,
			}
			if w.auctionUC != nil && l.HighestBidder != nil {
				if bid, err := w.auctionUC.GetBid(ctx, l.Id, *l.HighestBidder); err == nil {
					fields["bidder"] = bid.Bidder
					fields["bidTime"] = bid.BidTime
				}
			}
			ctx.WithFields(fields).Info("auction ended, awaiting finalization")
		})
	}

	return nil
}
