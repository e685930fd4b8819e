package repository

import (
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/base/database/mongoclient"
	"github.com/bazaario/goapi/base/log"
	"github.com/bazaario/goapi/domain"
	"github.com/bazaario/goapi/domain/keys"
	"github.com/bazaario/goapi/domain/listing"
	"github.com/bazaario/goapi/service/cache"
	"github.com/bazaario/goapi/service/cache/compoundcache"
	"github.com/bazaario/goapi/service/cache/provider/primitive"
	redisCache "github.com/bazaario/goapi/service/cache/provider/redis"
	"github.com/bazaario/goapi/service/query"
	"github.com/bazaario/goapi/service/redis"
)

func makeFindQuery(opts listing.FindAllOptions) bson.M {
	qry := bson.M{}

	if opts.Seller != nil {
		qry["seller"] = *opts.Seller
	}

	if opts.Active != nil {
		qry["active"] = *opts.Active
	}

	if opts.IsAuction != nil {
		qry["isAuction"] = *opts.IsAuction
	}

	if opts.EndHeightLT != nil {
		qry["auctionEndHeight"] = bson.M{"$lt": *opts.EndHeightLT}
	}

	return qry
}

type listingImpl struct {
	q            query.Mongo
	listingCache cache.Service
}

func NewListing(q query.Mongo, redisSvc redis.Service) listing.Repo {
	cacheServices := []cache.Service{
		cache.New(cache.ServiceConfig{
			Ttl:   10 * time.Second,
			Pfx:   "listing",
			Cache: primitive.NewPrimitive("listing", 64),
		}),
	}

	if redisSvc != nil {
		cacheServices = append(cacheServices, cache.New(cache.ServiceConfig{
			Ttl:   10 * time.Minute,
			Pfx:   "listing",
			Cache: redisCache.NewRedis(redisSvc),
		}))
	}

	return &listingImpl{
		q:            q,
		listingCache: compoundcache.NewCompoundCache(cacheServices),
	}
}

func cacheKey(id listing.Id) string {
	return keys.RedisKey(strconv.FormatUint(uint64(id), 10))
}

func (im *listingImpl) FindOne(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	res := &listing.Listing{}

	if err := im.listingCache.GetByFunc(c, cacheKey(id), res, func() (interface{}, error) {
		return im.findOne(c, id)
	}); err != nil {
		return nil, err
	}

	return res, nil
}

func (im *listingImpl) findOne(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	res := &listing.Listing{}

	if err := im.q.FindOne(c, domain.TableListings, bson.M{"id": id}, res); errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return res, nil
}

func (im *listingImpl) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("listing.GetFindAllOptions failed")
		return nil, err
	}

	offset := int(0)
	limit := int(0)
	sort := "id"

	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}

	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	if opts.SortBy != nil {
		sort = *opts.SortBy
	}

	qry := makeFindQuery(opts)

	res := []*listing.Listing{}

	if err := im.q.Search(c, domain.TableListings, offset, limit, sort, qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
			"sort":  sort,
		}).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (im *listingImpl) Count(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) (int, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("listing.GetFindAllOptions failed")
		return 0, err
	}

	qry := makeFindQuery(opts)

	cnt, err := im.q.Count(c, domain.TableListings, qry)
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return cnt, nil
}

func (im *listingImpl) Insert(c ctx.Ctx, l *listing.Listing) error {
	if err := im.q.Insert(c, domain.TableListings, l); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"listing": l,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *listingImpl) Patch(c ctx.Ctx, id listing.Id, patchable *listing.Patchable) error {
	val, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Patch(c, domain.TableListings, bson.M{"id": id}, val); errors.Is(err, query.ErrNotFound) {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Patch failed")
		return err
	}

	if err := im.listingCache.Del(c, cacheKey(id)); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("listingCache.Del failed")
		return nil
	}

	return nil
}
