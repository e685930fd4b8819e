package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"

	"github.com/bazaario/goapi/base/backoff"
	bCtx "github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/base/database/mongoclient"
	"github.com/bazaario/goapi/base/database/redisclient"
	"github.com/bazaario/goapi/base/goroutine"
	"github.com/bazaario/goapi/base/log"
	"github.com/bazaario/goapi/base/metrics"
	"github.com/bazaario/goapi/domain"
	"github.com/bazaario/goapi/domain/access"
	"github.com/bazaario/goapi/domain/listing"
	"github.com/bazaario/goapi/service/chain"
	"github.com/bazaario/goapi/service/query"
	"github.com/bazaario/goapi/service/redis"
	access_repository "github.com/bazaario/goapi/stores/access/repository"
	access_usecase "github.com/bazaario/goapi/stores/access/usecase"
	auction_usecase "github.com/bazaario/goapi/stores/auction/usecase"
	listing_repository "github.com/bazaario/goapi/stores/listing/repository"
	listing_usecase "github.com/bazaario/goapi/stores/listing/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/marketplace/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))

	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd)
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	chainClient, err := chain.NewClient(ctx, &chain.ClientCfg{
		RpcUrl: viper.GetString("chain.rpcUrl"),
	})
	if err != nil {
		log.Log().WithField("err", err).Panic("failed to create chain client")
	}

	accessRepo := access_repository.New(q)
	listingRepo := listing_repository.NewListing(q, redisCache)
	bidRepo := listing_repository.NewBid(q, redisCache)
	activityRepo := listing_repository.NewActivity(q)

	admin := domain.Address(viper.GetString("admin.address"))
	if !common.IsHexAddress(string(admin)) {
		log.Log().WithField("admin", admin).Panic("invalid admin address")
	}
	if err := accessRepo.Init(ctx, admin); err != nil {
		log.Log().WithField("err", err).Panic("failed to init market state")
	}

	// every mutation across both usecases goes through this mutex
	mu := &sync.Mutex{}

	accessUC := access_usecase.New(&access_usecase.AccessUseCaseCfg{
		AccessRepo: accessRepo,
	})
	listingUC := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo:  listingRepo,
		ActivityRepo: activityRepo,
		AccessRepo:   accessRepo,
		AccessUC:     accessUC,
		Chain:        chainClient,
		Mutex:        mu,
	})
	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		ListingRepo:  listingRepo,
		BidRepo:      bidRepo,
		ActivityRepo: activityRepo,
		AccessUC:     accessUC,
		Chain:        chainClient,
		Query:        q,
		Metrics:      metrics.New("auction"),
		Mutex:        mu,
	})

	errorCh := make(chan error, 1)

	watcher := NewEndedAuctionWatcher(&EndedAuctionWatcherCfg{
		ListingRepo: listingRepo,
		AuctionUC:   auctionUC,
		Chain:       chainClient,
		RetryLimit:  viper.GetInt("watcher.retryLimit"),
		Backoff: backoff.NewExponential(
			viper.GetDuration("watcher.backoffStart"),
			viper.GetDuration("watcher.backoffLimit"),
		),
		Interval: viper.GetDuration("watcher.interval"),
		ErrorCh:  errorCh,
	})
	watcher.Start(ctx)

	goroutine.RecoverableGo(func() {
		reportStats(ctx, listingUC, accessUC, viper.GetDuration("stats.interval"))
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-quit:
		ctx.WithField("signal", sig).Info("shutting down")
	case err := <-errorCh:
		ctx.WithField("err", err).Error("watcher failed")
	}

	cancel()
	watcher.Wait()
}

// reportStats periodically publishes market level gauges
func reportStats(ctx bCtx.Ctx, listingUC listing.Usecase, accessUC access.Usecase, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	met := metrics.New("marketplace")

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
			counter, err := listingUC.GetListingCounter(ctx)
			if err != nil {
				continue
			}
			paused, err := accessUC.IsPaused(ctx)
			if err != nil {
				continue
			}
			met.BumpAvg("listing.counter", float64(counter))
			if paused {
				met.BumpSum("market.paused", 1)
			}
			ctx.WithFields(log.Fields{
				"counter": counter,
				"paused":  paused,
			}).Info("market stats")
		}
	}
}
