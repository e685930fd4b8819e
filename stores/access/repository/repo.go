package repository

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/base/log"
	"github.com/bazaario/goapi/domain"
	"github.com/bazaario/goapi/domain/access"
	"github.com/bazaario/goapi/domain/listing"
	"github.com/bazaario/goapi/service/query"
)

var stateSelector = bson.M{"key": access.StateKey}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) access.Repo {
	return &impl{q: q}
}

func (im *impl) Get(c ctx.Ctx) (*access.State, error) {
	res := &access.State{}

	if err := im.q.FindOne(c, domain.TableMarketState, stateSelector, res); errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *impl) Init(c ctx.Ctx, admin domain.Address) error {
	if _, err := im.Get(c); err == nil {
		// already initialized
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	state := &access.State{
		Key:       access.StateKey,
		Admin:     admin.ToLower(),
		Paused:    false,
		NextId:    0,
		UpdatedAt: time.Now(),
	}

	if err := im.q.Insert(c, domain.TableMarketState, state); errors.Is(err, query.ErrDuplicateKey) {
		// raced with another initializer, state already present
		return nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"admin": admin,
		}).Error("q.Insert failed")
		return err
	}

	return nil
}

func (im *impl) SetPaused(c ctx.Ctx, paused bool) error {
	update := bson.M{
		"paused":    paused,
		"updatedAt": time.Now(),
	}

	if err := im.q.Patch(c, domain.TableMarketState, stateSelector, update); errors.Is(err, query.ErrNotFound) {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"paused": paused,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *impl) SetAdmin(c ctx.Ctx, admin domain.Address) error {
	update := bson.M{
		"admin":     admin.ToLower(),
		"updatedAt": time.Now(),
	}

	if err := im.q.Patch(c, domain.TableMarketState, stateSelector, update); errors.Is(err, query.ErrNotFound) {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"admin": admin,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *impl) NextListingId(c ctx.Ctx) (listing.Id, error) {
	res := &access.State{}

	if err := im.q.Increment(c, domain.TableMarketState, stateSelector, res, "nextId", 1); err != nil {
		c.WithField("err", err).Error("q.Increment failed")
		return 0, err
	}

	return res.NextId, nil
}
