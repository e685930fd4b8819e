package access

import (
	"time"

	"github.com/bazaario/goapi/base/ctx"
	"github.com/bazaario/goapi/domain"
	"github.com/bazaario/goapi/domain/listing"
)

// StateKey identifies the singleton market state document
const StateKey = "market"

// State is the global marketplace state, stored in database as a single
// document. NextId holds the id of the most recently created listing, the
// counter is bumped before use so the first listing gets id 1.
type State struct {
	Key       string         `json:"key" bson:"key"`
	Admin     domain.Address `json:"admin" bson:"admin"`
	Paused    bool           `json:"paused" bson:"paused"`
	NextId    listing.Id     `json:"nextId" bson:"nextId"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// Usecase is the access controller
type Usecase interface {
	IsAdmin(c ctx.Ctx, account domain.Address) (bool, error)
	IsPaused(c ctx.Ctx) (bool, error)
	GetAdmin(c ctx.Ctx) (domain.Address, error)

	// SetPaused flips the global pause flag, admin only
	SetPaused(c ctx.Ctx, caller domain.Address, paused bool) error
	// TransferAdmin hands the admin role to another non-zero account, admin only
	TransferAdmin(c ctx.Ctx, caller domain.Address, newAdmin domain.Address) error

	// RequireNotPaused returns domain.ErrPaused while the marketplace is paused
	RequireNotPaused(c ctx.Ctx) error
}

// Repo is market state repo
type Repo interface {
	Get(c ctx.Ctx) (*State, error)
	// Init writes the initial state document if none exists yet
	Init(c ctx.Ctx, admin domain.Address) error
	SetPaused(c ctx.Ctx, paused bool) error
	SetAdmin(c ctx.Ctx, admin domain.Address) error
	// NextListingId atomically bumps and returns the listing counter
	NextListingId(c ctx.Ctx) (listing.Id, error)
}
