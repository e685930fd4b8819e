package usecase

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/domain"
	"github.com/bazaario/goapi/domain/access"
	mAccess "github.com/bazaario/goapi/domain/access/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	accessRepo *mAccess.Repo
	im         *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.accessRepo = &mAccess.Repo{}
	t.im = New(&AccessUseCaseCfg{
		AccessRepo: t.accessRepo,
	}).(*impl)
}

func (t *testsuite) TestIsAdmin() {
	admin := domain.Address("0xadmin")
	other := domain.Address("0xother")

	t.accessRepo.On("Get", mockCtx).Return(&access.State{
		Key:   access.StateKey,
		Admin: admin,
	}, nil)

	res, err := t.im.IsAdmin(mockCtx, admin)
	t.NoError(err)
	t.True(res)

	res, err = t.im.IsAdmin(mockCtx, other)
	t.NoError(err)
	t.False(res)
}

func (t *testsuite) TestSetPaused() {
	admin := domain.Address("0xadmin")
	other := domain.Address("0xother")

	t.accessRepo.On("Get", mockCtx).Return(&access.State{
		Key:   access.StateKey,
		Admin: admin,
	}, nil)
	t.accessRepo.On("SetPaused", mockCtx, true).Return(nil)

	t.Equal(domain.ErrNotAuthorized, t.im.SetPaused(mockCtx, other, true))
	t.NoError(t.im.SetPaused(mockCtx, admin, true))
	t.accessRepo.AssertNumberOfCalls(t.T(), "SetPaused", 1)
}

func (t *testsuite) TestTransferAdmin() {
	admin := domain.Address("0xadmin")
	other := domain.Address("0xother")

	t.accessRepo.On("Get", mockCtx).Return(&access.State{
		Key:   access.StateKey,
		Admin: admin,
	}, nil)
	t.accessRepo.On("SetAdmin", mockCtx, other).Return(nil)

	t.Equal(domain.ErrNotAuthorized, t.im.TransferAdmin(mockCtx, other, other))
	t.Equal(domain.ErrZeroAddress, t.im.TransferAdmin(mockCtx, admin, domain.EmptyAddress))
	t.Equal(domain.ErrZeroAddress, t.im.TransferAdmin(mockCtx, admin, domain.Address("")))
	t.NoError(t.im.TransferAdmin(mockCtx, admin, other))
	t.accessRepo.AssertNumberOfCalls(t.T(), "SetAdmin", 1)
}

func (t *testsuite) TestRequireNotPaused() {
	t.accessRepo.On("Get", mockCtx).Return(&access.State{
		Key:    access.StateKey,
		Admin:  domain.Address("0xadmin"),
		Paused: true,
	}, nil).Once()
	t.Equal(domain.ErrPaused, t.im.RequireNotPaused(mockCtx))

	t.accessRepo.On("Get", mockCtx).Return(&access.State{
		Key:   access.StateKey,
		Admin: domain.Address("0xadmin"),
	}, nil).Once()
	t.NoError(t.im.RequireNotPaused(mockCtx))
}
