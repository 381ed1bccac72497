// Package panel is the back-office orchestrator. It sequences every
// credentialed mutation the same way: call the backend, re-synchronize the
// catalog store for the touched entity, re-derive whatever consumed the stale
// data, and only then confirm to the user. Failures never mutate in-memory
// state and never escape unclassified.
package panel

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/promoshop/storefront/internal/api"
	"github.com/promoshop/storefront/internal/catalog"
	"github.com/promoshop/storefront/internal/session"
)

// ErrReauthenticate tells the caller to send the user back through login.
// The panel never retries a rejected credential on its own.
var ErrReauthenticate = errors.New("session expired, authenticate again")

// ErrSelfDeletion guards the authenticated account against deleting itself.
var ErrSelfDeletion = errors.New("cannot delete the account you are logged in as")

// Notifier receives the user-visible outcome of each operation.
type Notifier interface {
	Success(msg string)
	Failure(msg string)
}

// Panel coordinates CRUD operations against the backend and keeps the
// catalog store in sync with their outcomes.
type Panel struct {
	api      *api.Client
	store    *catalog.Store
	session  *session.Store
	notifier Notifier
	logger   zerolog.Logger

	// onChange runs after any successful mutation, once the store holds the
	// fresh lists. The server hooks its cached public view in here.
	onChange func()
}

// New creates a panel. notifier must not be nil.
func New(client *api.Client, store *catalog.Store, sess *session.Store, notifier Notifier) *Panel {
	return &Panel{
		api:      client,
		store:    store,
		session:  sess,
		notifier: notifier,
		logger:   log.With().Str("component", "panel").Logger(),
	}
}

// SetOnChange registers a hook run after every successful mutation.
func (p *Panel) SetOnChange(fn func()) { p.onChange = fn }

// Login exchanges credentials for a token and stores it, along with the id
// of the account it belongs to, for the self-deletion guard.
func (p *Panel) Login(ctx context.Context, username, password string) error {
	token, err := p.api.Login(ctx, username, password)
	if err != nil {
		return p.fail("login", err)
	}
	if err := p.session.Save(token, ""); err != nil {
		return p.fail("login", err)
	}

	// Resolve who the token authenticates. Login stays valid even if this
	// lookup fails; the guard then falls back to asking again on demand.
	if me, err := p.api.Me(ctx); err == nil {
		if err := p.session.Save(token, me.ID); err != nil {
			return p.fail("login", err)
		}
	}

	p.notifier.Success("logged in")
	return nil
}

// Logout forgets the stored credential.
func (p *Panel) Logout() error {
	if err := p.session.Clear(); err != nil {
		return p.fail("logout", err)
	}
	p.notifier.Success("logged out")
	return nil
}

// SavePromotion creates or updates a promotion. The decision is made solely
// by the presence of a previously loaded identifier: an empty id means
// create, anything else updates that record in place.
func (p *Panel) SavePromotion(ctx context.Context, id string, in api.PromotionInput) error {
	var err error
	if id == "" {
		_, err = p.api.CreatePromotion(ctx, in)
	} else {
		err = p.api.UpdatePromotion(ctx, id, in)
	}
	if err != nil {
		return p.fail("save promotion", err)
	}

	return p.afterMutation(ctx, entityPromotions, confirmSaved("promotion", id))
}

// DeletePromotion deletes a promotion.
func (p *Panel) DeletePromotion(ctx context.Context, id string) error {
	if err := p.api.DeletePromotion(ctx, id); err != nil {
		return p.fail("delete promotion", err)
	}
	return p.afterMutation(ctx, entityPromotions, "promotion deleted")
}

// SaveCoupon creates or updates a coupon, by the same id-presence rule as
// promotions.
func (p *Panel) SaveCoupon(ctx context.Context, id string, in api.CouponInput) error {
	var err error
	if id == "" {
		_, err = p.api.CreateCoupon(ctx, in)
	} else {
		err = p.api.UpdateCoupon(ctx, id, in)
	}
	if err != nil {
		return p.fail("save coupon", err)
	}
	return p.afterMutation(ctx, entityCoupons, confirmSaved("coupon", id))
}

// DeleteCoupon deletes a coupon.
func (p *Panel) DeleteCoupon(ctx context.Context, id string) error {
	if err := p.api.DeleteCoupon(ctx, id); err != nil {
		return p.fail("delete coupon", err)
	}
	return p.afterMutation(ctx, entityCoupons, "coupon deleted")
}

// RegisterAdmin creates a back-office account.
func (p *Panel) RegisterAdmin(ctx context.Context, in api.RegisterInput) error {
	if err := p.api.RegisterAdmin(ctx, in); err != nil {
		return p.fail("register admin", err)
	}
	return p.afterMutation(ctx, entityAdmins, fmt.Sprintf("administrator %q registered", in.Name))
}

// UpdateSelf updates the authenticated account. The backend answers 401 both
// for a stale token and for a wrong current password; either way the user
// must re-authenticate their intent.
func (p *Panel) UpdateSelf(ctx context.Context, in api.AdminUpdateInput) error {
	if err := p.api.UpdateSelf(ctx, in); err != nil {
		return p.fail("update settings", err)
	}
	return p.afterMutation(ctx, entityAdmins, "settings saved")
}

// DeleteAdmin deletes an account, refusing to delete the one currently
// authenticated.
func (p *Panel) DeleteAdmin(ctx context.Context, id string) error {
	if selfID := p.currentAdminID(ctx); selfID != "" && selfID == id {
		p.notifier.Failure(ErrSelfDeletion.Error())
		return ErrSelfDeletion
	}
	if err := p.api.DeleteAdmin(ctx, id); err != nil {
		return p.fail("delete admin", err)
	}
	return p.afterMutation(ctx, entityAdmins, "administrator deleted")
}

// RefreshAll is the panel's initial-load routine: it pulls every collection
// the back office renders. Each failure is reported but does not stop the
// remaining loads; stale or empty views degrade per collection.
func (p *Panel) RefreshAll(ctx context.Context) error {
	var firstErr error
	for _, refresh := range []func(context.Context) error{
		p.store.RefreshPromotions,
		p.store.RefreshAllCoupons,
		p.store.RefreshClickStats,
		p.store.RefreshAdmins,
	} {
		if err := refresh(ctx); err != nil {
			p.logger.Warn().Err(err).Msg("Initial load failed for one collection")
			if firstErr == nil {
				firstErr = p.classify(err)
			}
		}
	}
	return firstErr
}

type entity int

const (
	entityPromotions entity = iota
	entityCoupons
	entityAdmins
)

// afterMutation re-synchronizes the store and dependent aggregates for the
// touched entity, then confirms. Order matters: the confirmation must only
// appear once the fresh data is in place.
func (p *Panel) afterMutation(ctx context.Context, e entity, confirmation string) error {
	var err error
	switch e {
	case entityPromotions:
		if err = p.store.RefreshPromotions(ctx); err == nil {
			// Click counters key off promotion ids; reload them alongside.
			err = p.store.RefreshClickStats(ctx)
		}
	case entityCoupons:
		err = p.store.RefreshAllCoupons(ctx)
	case entityAdmins:
		err = p.store.RefreshAdmins(ctx)
	}
	if err != nil {
		// The mutation itself succeeded; the next refresh will catch up, but
		// the user has to know the view may be stale.
		return p.fail("refresh after save", err)
	}

	if p.onChange != nil {
		p.onChange()
	}
	p.notifier.Success(confirmation)
	return nil
}

// fail classifies err, notifies the user and returns the classified error.
func (p *Panel) fail(op string, err error) error {
	classified := p.classify(err)
	p.logger.Warn().Err(err).Str("op", op).Msg("Operation failed")
	p.notifier.Failure(UserMessage(classified))
	return classified
}

func (p *Panel) classify(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrReauthenticate, err)
	}
	return err
}

// currentAdminID returns the id of the authenticated account, asking the
// backend when the session file does not carry it.
func (p *Panel) currentAdminID(ctx context.Context) string {
	if id := p.session.AdminID(); id != "" {
		return id
	}
	me, err := p.api.Me(ctx)
	if err != nil {
		p.logger.Warn().Err(err).Msg("Could not resolve authenticated account")
		return ""
	}
	return me.ID
}

func confirmSaved(what, id string) string {
	if id == "" {
		return what + " created"
	}
	return what + " updated"
}

// UserMessage converts a classified error into the text shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrReauthenticate):
		return "session expired, authenticate again"
	case errors.Is(err, ErrSelfDeletion):
		return ErrSelfDeletion.Error()
	case errors.Is(err, api.ErrUnreachable):
		return "cannot reach server, check the backend and try again"
	case api.IsNotFound(err):
		return "record no longer exists, reload the list"
	default:
		if msg := api.ServerMessage(err); msg != "" {
			return msg
		}
		return "operation failed, try again"
	}
}
