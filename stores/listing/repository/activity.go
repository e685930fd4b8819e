package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/base/log"
	"github.com/bazaario/goapi/domain"
	"github.com/bazaario/goapi/domain/listing"
	"github.com/bazaario/goapi/service/query"
)

type activityImpl struct {
	q query.Mongo
}

func NewActivity(q query.Mongo) listing.ActivityRepo {
	return &activityImpl{q: q}
}

func (im *activityImpl) Insert(c ctx.Ctx, a *listing.Activity) error {
	if err := im.q.Insert(c, domain.TableListingActivities, a); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"activity": a,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *activityImpl) FindByListing(c ctx.Ctx, id listing.Id) ([]listing.Activity, error) {
	res := []listing.Activity{}

	if err := im.q.Search(c, domain.TableListingActivities, 0, 0, "time", bson.M{"listingId": id}, &res); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}
