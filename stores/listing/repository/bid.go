package repository

import (
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/base/log"
	"github.com/bazaario/goapi/domain"
	"github.com/bazaario/goapi/domain/keys"
	"github.com/bazaario/goapi/domain/listing"
	"github.com/bazaario/goapi/service/cache"
	"github.com/bazaario/goapi/service/cache/provider"
	"github.com/bazaario/goapi/service/cache/provider/compound"
	"github.com/bazaario/goapi/service/cache/provider/primitive"
	redisCache "github.com/bazaario/goapi/service/cache/provider/redis"
	"github.com/bazaario/goapi/service/query"
	"github.com/bazaario/goapi/service/redis"
)

type bidImpl struct {
	q        query.Mongo
	bidCache cache.Service
}

func NewBid(q query.Mongo, redisSvc redis.Service) listing.BidRepo {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive("bid", 16),
	}

	if redisSvc != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(redisSvc))
	}

	return &bidImpl{
		q: q,
		bidCache: cache.New(cache.ServiceConfig{
			Ttl:   10 * time.Minute,
			Pfx:   "bid",
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func bidCacheKey(id listing.BidId) string {
	return keys.RedisKey(strconv.FormatUint(uint64(id.ListingId), 10), id.Bidder.ToLowerStr())
}

func (im *bidImpl) FindOne(c ctx.Ctx, id listing.BidId) (*listing.Bid, error) {
	id.Bidder = id.Bidder.ToLower()

	res := &listing.Bid{}

	if err := im.bidCache.GetByFunc(c, bidCacheKey(id), res, func() (interface{}, error) {
		return im.findOne(c, id)
	}); err != nil {
		return nil, err
	}

	return res, nil
}

func (im *bidImpl) findOne(c ctx.Ctx, id listing.BidId) (*listing.Bid, error) {
	res := &listing.Bid{}

	qry := bson.M{
		"listingId": id.ListingId,
		"bidder":    id.Bidder,
	}

	if err := im.q.FindOne(c, domain.TableBids, qry, res); errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *bidImpl) Upsert(c ctx.Ctx, b *listing.Bid) error {
	b.Bidder = b.Bidder.ToLower()

	selector := bson.M{
		"listingId": b.ListingId,
		"bidder":    b.Bidder,
	}

	if err := im.q.Upsert(c, domain.TableBids, selector, b); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"bid": b,
		}).Error("q.Upsert failed")
		return err
	}

	if err := im.bidCache.Del(c, bidCacheKey(b.ToId())); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"bid": b,
		}).Error("bidCache.Del failed")
		return nil
	}

	return nil
}
