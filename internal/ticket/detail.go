package ticket

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrBusy              = errors.New("ticket request already in flight")
	ErrInvalidTransition = errors.New("invalid ticket state transition")
	ErrRefetch           = errors.New("ticket updated but reload failed")
)

// API is the subset of the ticket backend the detail view needs.
type API interface {
	Get(ctx context.Context, uuid string) (Ticket, error)
	Update(ctx context.Context, uuid string, form UpdateForm) error
}

type State string

const (
	StateIdle       State = "idle"
	StateLoading    State = "loading"
	StateLoaded     State = "loaded"
	StateError      State = "error"
	StateSubmitting State = "submitting"
)

var transitions = map[State][]State{
	StateIdle:       {StateLoading},
	StateLoading:    {StateLoaded, StateError},
	StateLoaded:     {StateLoading, StateSubmitting},
	StateError:      {StateLoading},
	StateSubmitting: {StateLoaded},
}

func (s State) CanTransition(to State) bool {
	for _, allowed := range transitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s State) inFlight() bool {
	return s == StateLoading || s == StateSubmitting
}

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Detail drives a single ticket through load and submit. Network calls run
// without the lock held; the in-flight states reject concurrent triggers.
type Detail struct {
	api  API
	uuid string

	mu            sync.Mutex
	state         State
	ticket        *Ticket
	notifications []Notification
}

func NewDetail(api API, uuid string) *Detail {
	return &Detail{api: api, uuid: uuid, state: StateIdle}
}

func (d *Detail) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Detail) Ticket() *Ticket {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ticket == nil {
		return nil
	}
	t := *d.ticket
	return &t
}

func (d *Detail) Notifications() []Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Notification(nil), d.notifications...)
}

func (d *Detail) Load(ctx context.Context) (Ticket, error) {
	if err := d.begin(StateLoading); err != nil {
		return Ticket{}, err
	}

	t, err := d.api.Get(ctx, d.uuid)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.state = StateError
		d.ticket = nil
		d.notify(LevelError, "failed to load ticket")
		return Ticket{}, err
	}
	d.state = StateLoaded
	d.ticket = &t
	return t, nil
}

// Submit sends the form and reloads the canonical ticket on success. A form
// that fails validation never reaches the API.
func (d *Detail) Submit(ctx context.Context, form UpdateForm) (Ticket, error) {
	form = form.Normalize()
	d.mu.Lock()
	if d.state.inFlight() {
		d.mu.Unlock()
		return Ticket{}, ErrBusy
	}
	if d.state != StateLoaded {
		from := d.state
		d.mu.Unlock()
		return Ticket{}, fmt.Errorf("%w: submit from %s", ErrInvalidTransition, from)
	}
	if err := form.Validate(); err != nil {
		if errors.Is(err, ErrStatusRequired) {
			d.notify(LevelWarning, "please select a status")
		} else {
			d.notify(LevelWarning, err.Error())
		}
		d.mu.Unlock()
		return Ticket{}, err
	}
	d.state = StateSubmitting
	current := *d.ticket
	d.mu.Unlock()

	if err := d.api.Update(ctx, d.uuid, form); err != nil {
		d.finish(&current, LevelError, "failed to update ticket")
		return current, err
	}

	refreshed, err := d.api.Get(ctx, d.uuid)
	if err != nil {
		d.finish(&current, LevelError, "ticket updated but could not be reloaded")
		return current, fmt.Errorf("%w: %v", ErrRefetch, err)
	}
	d.finish(&refreshed, LevelSuccess, "ticket updated successfully")
	return refreshed, nil
}

func (d *Detail) begin(to State) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state.inFlight() {
		return ErrBusy
	}
	if !d.state.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, d.state, to)
	}
	d.state = to
	return nil
}

func (d *Detail) finish(t *Ticket, level Level, message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = StateLoaded
	d.ticket = t
	d.notify(level, message)
}

func (d *Detail) notify(level Level, message string) {
	d.notifications = append(d.notifications, Notification{Level: level, Message: message})
}
