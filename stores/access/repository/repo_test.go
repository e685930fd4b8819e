package repository

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/domain"
	"github.com/bazaario/goapi/domain/access"
	"github.com/bazaario/goapi/domain/listing"
	"github.com/bazaario/goapi/service/query"
	mQuery "github.com/bazaario/goapi/service/query/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	q  *mQuery.Mongo
	im *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.q = &mQuery.Mongo{}
	t.im = New(t.q).(*impl)
}

func (t *testsuite) TestGetNotFound() {
	t.q.On("FindOne", mockCtx, domain.TableMarketState, stateSelector, mock.Anything).
		Return(query.ErrNotFound)

	_, err := t.im.Get(mockCtx)
	t.Equal(domain.ErrNotFound, err)
}

func (t *testsuite) TestGet() {
	t.q.On("FindOne", mockCtx, domain.TableMarketState, stateSelector, mock.Anything).
		Run(func(args mock.Arguments) {
			res := args.Get(3).(*access.State)
			res.Key = access.StateKey
			res.Admin = domain.Address("0xadmin")
			res.Paused = true
			res.NextId = 3
		}).
		Return(nil)

	state, err := t.im.Get(mockCtx)
	t.NoError(err)
	t.Equal(domain.Address("0xadmin"), state.Admin)
	t.True(state.Paused)
	t.Equal(listing.Id(3), state.NextId)
}

func (t *testsuite) TestInitOnlyOnce() {
	t.q.On("FindOne", mockCtx, domain.TableMarketState, stateSelector, mock.Anything).
		Return(query.ErrNotFound).Once()
	t.q.On("Insert", mockCtx, domain.TableMarketState, mock.MatchedBy(func(s *access.State) bool {
		return s.Key == access.StateKey && s.Admin == domain.Address("0xadmin") && !s.Paused
	})).Return(nil).Once()

	t.NoError(t.im.Init(mockCtx, domain.Address("0xADMIN")))

	// second init is a no-op
	t.q.On("FindOne", mockCtx, domain.TableMarketState, stateSelector, mock.Anything).
		Run(func(args mock.Arguments) {
			res := args.Get(3).(*access.State)
			res.Key = access.StateKey
		}).
		Return(nil).Once()

	t.NoError(t.im.Init(mockCtx, domain.Address("0xadmin")))
	t.q.AssertNumberOfCalls(t.T(), "Insert", 1)
}

func (t *testsuite) TestNextListingId() {
	next := listing.Id(0)
	t.q.On("Increment", mockCtx, domain.TableMarketState, stateSelector, mock.Anything, "nextId", 1).
		Run(func(args mock.Arguments) {
			next++
			res := args.Get(3).(*access.State)
			res.Key = access.StateKey
			res.NextId = next
		}).
		Return(nil)

	id, err := t.im.NextListingId(mockCtx)
	t.NoError(err)
	t.Equal(listing.Id(1), id)

	id, err = t.im.NextListingId(mockCtx)
	t.NoError(err)
	t.Equal(listing.Id(2), id)
}

func (t *testsuite) TestSetPaused() {
	t.q.On("Patch", mockCtx, domain.TableMarketState, stateSelector, mock.Anything).
		Return(nil)

	t.NoError(t.im.SetPaused(mockCtx, true))
}

func (t *testsuite) TestSetAdminLowercases() {
	t.q.On("Patch", mockCtx, domain.TableMarketState, stateSelector, mock.MatchedBy(func(update bson.M) bool {
		return update["admin"] == domain.Address("0xabcdef")
	})).Return(nil)

	t.NoError(t.im.SetAdmin(mockCtx, domain.Address("0xABCDEF")))
}
