package dashboard

import (
	"context"
	"fmt"

	"andaman/internal/domain"
	"andaman/internal/vendorapp/api"
)

// State is the dashboard's top-level condition. Exactly one applies at a
// time; every terminal state maps to a concrete recovery action in the UI
// (retry, create profile, or log in again). Nothing retries on its own.
type State string

const (
	// StateAuthPending: the auth provider has not settled yet. Show the
	// loading screen, issue no requests.
	StateAuthPending State = "auth_pending"

	// StateRedirect: unauthenticated or not a vendor account. Redirect is
	// set; no request was or will be made.
	StateRedirect State = "redirect"

	// StateAccessError: the profile request itself failed. Distinct from a
	// missing profile; recovery is retry or logout.
	StateAccessError State = "access_error"

	// StateProfileMissing: the profile request succeeded and returned no
	// profile. Recovery is completing vendor onboarding.
	StateProfileMissing State = "profile_missing"

	// StateReady: profile loaded. Section resources carry their own
	// statuses; an unverified profile leaves all four idle.
	StateReady State = "ready"
)

const loginRedirect = "/login?reason=unauthorized_vendor"

// User is the authenticated account as the auth provider reports it.
type User struct {
	ID     int64
	Email  string
	RoleID int64
}

// AuthState is the auth provider's current snapshot.
type AuthState struct {
	User          *User
	Loading       bool
	Authenticated bool
}

// AuthProvider supplies the session. The controller never reaches into
// token storage itself.
type AuthProvider interface {
	State() AuthState
	Logout()
}

// Tabs the dashboard knows. Anything else redirects back to overview.
var knownTabs = map[string]struct{}{
	"overview": {},
	"services": {},
	"bookings": {},
	"reviews":  {},
	"profile":  {},
}

// ResolveTab validates the tab query parameter. An empty value defaults to
// overview in place; an unknown value additionally asks for a redirect so
// the address bar is corrected.
func ResolveTab(raw string) (tab, redirect string) {
	if raw == "" {
		return "overview", ""
	}
	if _, ok := knownTabs[raw]; ok {
		return raw, ""
	}
	return "overview", "/dashboard?tab=overview"
}

// View is one fully evaluated render of the dashboard.
type View struct {
	State    State
	Redirect string

	Profile    *domain.VendorProfile
	ProfileErr error

	Stats    api.Resource[domain.VendorStats]
	Services api.Resource[[]domain.VendorService]
	Bookings api.Resource[[]api.BookingItem]
	Reviews  api.Resource[[]api.ReviewItem]

	Tab string
}

// Verified reports whether the loaded profile passed verification. False
// for every non-Ready state.
func (v View) Verified() bool {
	return v.State == StateReady && v.Profile != nil && v.Profile.IsVerified()
}

// Controller drives the vendor dashboard against the platform API.
type Controller struct {
	auth   AuthProvider
	client *api.Client
	limit  int
}

func NewController(auth AuthProvider, client *api.Client, sectionLimit int) *Controller {
	if sectionLimit <= 0 {
		sectionLimit = 5
	}
	return &Controller{auth: auth, client: client, limit: sectionLimit}
}

// Load evaluates auth, loads the profile, and when the profile is verified
// loads the four dashboard sections. The section loads are independent: a
// failure in one leaves the others untouched.
func (c *Controller) Load(ctx context.Context, rawTab string) View {
	tab, redirect := ResolveTab(rawTab)
	view := View{Tab: tab, Redirect: redirect}

	as := c.auth.State()
	if as.Loading {
		view.State = StateAuthPending
		return view
	}
	if !as.Authenticated || as.User == nil || as.User.RoleID != domain.RoleVendor {
		view.State = StateRedirect
		view.Redirect = loginRedirect
		return view
	}

	uid := as.User.ID
	profile := api.Fetch[api.ProfileEnvelope](ctx, c.client, api.ProfileURL(uid))
	if profile.IsError() {
		view.State = StateAccessError
		view.ProfileErr = profile.Err
		return view
	}
	if profile.Data.Data == nil {
		view.State = StateProfileMissing
		return view
	}

	view.State = StateReady
	view.Profile = profile.Data.Data

	verified := view.Profile.IsVerified()
	view.Stats = c.LoadStats(ctx, uid, verified)
	view.Services = c.LoadServices(ctx, uid, verified)
	view.Bookings = c.LoadBookings(ctx, uid, verified)
	view.Reviews = c.LoadReviews(ctx, uid, verified)
	return view
}

// Per-section loaders double as the retry actions. Each returns idle when
// the profile is unverified, so an unverified dashboard never touches the
// section endpoints.

func (c *Controller) LoadStats(ctx context.Context, userID int64, verified bool) api.Resource[domain.VendorStats] {
	return api.Fetch[domain.VendorStats](ctx, c.client, api.StatsURL(verified, userID))
}

func (c *Controller) LoadServices(ctx context.Context, userID int64, verified bool) api.Resource[[]domain.VendorService] {
	return api.Fetch[[]domain.VendorService](ctx, c.client, api.ServicesURL(verified, userID, c.limit))
}

func (c *Controller) LoadBookings(ctx context.Context, userID int64, verified bool) api.Resource[[]api.BookingItem] {
	return api.Fetch[[]api.BookingItem](ctx, c.client, api.BookingsURL(verified, userID, c.limit))
}

func (c *Controller) LoadReviews(ctx context.Context, userID int64, verified bool) api.Resource[[]api.ReviewItem] {
	return api.Fetch[[]api.ReviewItem](ctx, c.client, api.ReviewsURL(verified, userID, c.limit))
}

// Logout clears the session through the auth provider.
func (c *Controller) Logout() { c.auth.Logout() }

// StatsCard is the overview tab's four headline figures, safe to render in
// any state.
type StatsCard struct {
	TotalServices  int64
	ActiveBookings int64
	TotalEarnings  float64

	// RatingLabel is "N/A" until at least one review exists.
	RatingLabel   string
	RatingPercent float64
}

// BuildStatsCard turns a stats resource into display values. Anything other
// than a successful load renders as zeros with an "N/A" rating, so the
// overview never blocks on the stats endpoint.
func BuildStatsCard(res api.Resource[domain.VendorStats]) StatsCard {
	card := StatsCard{RatingLabel: "N/A"}
	if !res.IsSuccess() {
		return card
	}
	card.TotalServices = res.Data.TotalServices
	card.ActiveBookings = res.Data.ActiveBookings
	card.TotalEarnings = res.Data.TotalEarnings
	if res.Data.ReviewScore != nil {
		score := *res.Data.ReviewScore
		card.RatingLabel = fmt.Sprintf("%.1f", score)
		card.RatingPercent = score / 5 * 100
	}
	return card
}
