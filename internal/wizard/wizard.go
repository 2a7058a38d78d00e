// Package wizard implements the two-step subscription creation flow:
// customer search/select, then vehicle, plan and schedule selection. All of
// its state is local UI state, reset in full whenever the wizard is reopened;
// submission is a single atomic backend call, so there is nothing to roll
// back on failure.
package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/api/metrics"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
)

// DefaultDebounce is how long the customer search waits after the last
// keystroke before dispatching a query.
const DefaultDebounce = 500 * time.Millisecond

const (
	StepCustomer = 1
	StepDetails  = 2
)

// State is a snapshot of the wizard for rendering.
type State struct {
	Open    bool
	Step    int
	Loading bool
	Err     string

	Query     string
	Customers []domain.Customer
	Plans     []domain.Plan

	Customer      *domain.Customer
	Vehicles      []domain.Vehicle
	VehicleID     string
	PlanID        string
	StartDate     string
	ScheduledDays []string
}

// Wizard drives the flow. A single wizard instance exists per application,
// matching the single active session.
type Wizard struct {
	customers     ports.CustomerService
	subscriptions ports.SubscriptionService
	log           zerolog.Logger
	debounce      time.Duration

	mu    sync.Mutex
	state State
	timer *time.Timer
	// gen increments per search intent. A response is applied only if it
	// belongs to the latest intent, so a slow early query can never
	// overwrite the results of a later one.
	gen uint64
}

// New creates a wizard. A non-positive debounce falls back to DefaultDebounce.
func New(customers ports.CustomerService, subscriptions ports.SubscriptionService, debounce time.Duration, log zerolog.Logger) *Wizard {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Wizard{
		customers:     customers,
		subscriptions: subscriptions,
		log:           log,
		debounce:      debounce,
	}
}

// Open resets the wizard to step one and loads the plan list. A plan fetch
// failure is logged but does not block the flow; plans are only needed at
// step two.
func (w *Wizard) Open(ctx context.Context) {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.gen++
	w.state = State{
		Open:      true,
		Step:      StepCustomer,
		StartDate: time.Now().UTC().Format("2006-01-02"),
	}
	w.mu.Unlock()

	plans, err := w.subscriptions.Plans(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("wizard: failed to load plans")
		return
	}

	w.mu.Lock()
	if w.state.Open {
		w.state.Plans = plans
	}
	w.mu.Unlock()
}

// Close discards all wizard state.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.gen++
	w.state = State{}
}

// Search records a new query and (re)starts the debounce window. Typing
// "John" character by character within the window dispatches exactly one
// backend query, for the final text.
func (w *Wizard) Search(query string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.state.Open || w.state.Step != StepCustomer {
		return
	}

	w.state.Query = query
	w.gen++
	gen := w.gen

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.runSearch(gen, query)
	})
}

func (w *Wizard) runSearch(gen uint64, query string) {
	w.mu.Lock()
	stale := gen != w.gen
	if !stale {
		w.state.Loading = true
	}
	w.mu.Unlock()
	if stale {
		return
	}

	metrics.WizardSearchesTotal.Inc()
	result, err := w.customers.List(context.Background(), query)

	w.mu.Lock()
	defer w.mu.Unlock()
	// Latest request wins: drop the response if another search started while
	// this one was in flight.
	if gen != w.gen {
		return
	}
	w.state.Loading = false
	if err != nil {
		w.log.Error().Err(err).Str("query", query).Msg("wizard: customer search failed")
		return
	}
	w.state.Customers = result
}

// SelectCustomer fetches the full customer (vehicles included) and advances
// to step two. A fetch failure keeps the wizard on step one with an inline
// error.
func (w *Wizard) SelectCustomer(ctx context.Context, customerID string) error {
	w.mu.Lock()
	if !w.state.Open {
		w.mu.Unlock()
		return nil
	}
	w.gen++ // cancel any pending search result
	w.state.Loading = true
	w.mu.Unlock()

	customer, err := w.customers.Get(ctx, customerID)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Loading = false
	if err != nil {
		w.state.Err = "Failed to load customer details"
		return err
	}
	w.state.Customer = customer
	w.state.Vehicles = customer.Vehicles
	w.state.Step = StepDetails
	w.state.Err = ""
	return nil
}

// Choose records the vehicle and plan selection for step two.
func (w *Wizard) Choose(vehicleID, planID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.VehicleID = vehicleID
	w.state.PlanID = planID
}

// SetStartDate records the subscription start date (YYYY-MM-DD).
func (w *Wizard) SetStartDate(date string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.StartDate = date
}

// ToggleDay flips a scheduled weekday on or off.
func (w *Wizard) ToggleDay(day string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, d := range w.state.ScheduledDays {
		if d == day {
			w.state.ScheduledDays = append(w.state.ScheduledDays[:i], w.state.ScheduledDays[i+1:]...)
			return
		}
	}
	w.state.ScheduledDays = append(w.state.ScheduledDays, day)
}

// Submit performs the single addSubscription call and closes on success.
// On failure the wizard stays open on the current step with an inline error.
func (w *Wizard) Submit(ctx context.Context) (*domain.Subscription, error) {
	w.mu.Lock()
	if w.state.VehicleID == "" || w.state.PlanID == "" {
		w.state.Err = "Please select a vehicle and a plan."
		w.mu.Unlock()
		return nil, nil
	}
	in := ports.AddSubscriptionInput{
		PlanID:        w.state.PlanID,
		StartDate:     w.state.StartDate,
		ScheduledDays: w.state.ScheduledDays,
	}
	vehicleID := w.state.VehicleID
	w.state.Loading = true
	w.mu.Unlock()

	sub, err := w.subscriptions.Add(ctx, vehicleID, in)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Loading = false
	if err != nil {
		metrics.WizardSubmissionsTotal.WithLabelValues("error").Inc()
		w.state.Err = err.Error()
		return nil, err
	}

	metrics.WizardSubmissionsTotal.WithLabelValues("ok").Inc()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.gen++
	w.state = State{}
	return sub, nil
}

// Snapshot returns a copy of the wizard state for rendering.
func (w *Wizard) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := w.state
	snap.Customers = append([]domain.Customer(nil), w.state.Customers...)
	snap.Plans = append([]domain.Plan(nil), w.state.Plans...)
	snap.Vehicles = append([]domain.Vehicle(nil), w.state.Vehicles...)
	snap.ScheduledDays = append([]string(nil), w.state.ScheduledDays...)
	return snap
}
