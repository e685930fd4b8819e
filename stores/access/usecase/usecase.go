package usecase

import (
	"github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/base/log"
	"github.com/bazaario/goapi/domain"
	"github.com/bazaario/goapi/domain/access"
)

type AccessUseCaseCfg struct {
	AccessRepo access.Repo
}

type impl struct {
	accessRepo access.Repo
}

func New(cfg *AccessUseCaseCfg) access.Usecase {
	return &impl{
		accessRepo: cfg.AccessRepo,
	}
}

func (im *impl) IsAdmin(c ctx.Ctx, account domain.Address) (bool, error) {
	state, err := im.accessRepo.Get(c)
	if err != nil {
		c.WithField("err", err).Error("accessRepo.Get failed")
		return false, err
	}
	return state.Admin.Equals(account), nil
}

func (im *impl) IsPaused(c ctx.Ctx) (bool, error) {
	state, err := im.accessRepo.Get(c)
	if err != nil {
		c.WithField("err", err).Error("accessRepo.Get failed")
		return false, err
	}
	return state.Paused, nil
}

func (im *impl) GetAdmin(c ctx.Ctx) (domain.Address, error) {
	state, err := im.accessRepo.Get(c)
	if err != nil {
		c.WithField("err", err).Error("accessRepo.Get failed")
		return domain.EmptyAddress, err
	}
	return state.Admin, nil
}

func (im *impl) SetPaused(c ctx.Ctx, caller domain.Address, paused bool) error {
	if isAdmin, err := im.IsAdmin(c, caller); err != nil {
		return err
	} else if !isAdmin {
		return domain.ErrNotAuthorized
	}

	if err := im.accessRepo.SetPaused(c, paused); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"paused": paused,
		}).Error("accessRepo.SetPaused failed")
		return err
	}
	return nil
}

func (im *impl) TransferAdmin(c ctx.Ctx, caller domain.Address, newAdmin domain.Address) error {
	if isAdmin, err := im.IsAdmin(c, caller); err != nil {
		return err
	} else if !isAdmin {
		return domain.ErrNotAuthorized
	}

	if newAdmin.IsZero() {
		return domain.ErrZeroAddress
	}

	if err := im.accessRepo.SetAdmin(c, newAdmin); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"newAdmin": newAdmin,
		}).Error("accessRepo.SetAdmin failed")
		return err
	}
	return nil
}

func (im *impl) RequireNotPaused(c ctx.Ctx) error {
	paused, err := im.IsPaused(c)
	if err != nil {
		return err
	}
	if paused {
		return domain.ErrPaused
	}
	return nil
}
