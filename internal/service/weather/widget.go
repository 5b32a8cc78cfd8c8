package weather

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	applog "github.com/janisto/lazydrobe/internal/platform/logging"
)

// DisplayDays is how many forecast days the widget shows.
const DisplayDays = 5

// Display is what the widget currently shows.
type Display struct {
	// Location is the most recently requested location.
	Location string
	// Days is the forecast of the last applied request, at most DisplayDays long.
	Days []Day
	// Pending reports whether the latest request is still in flight.
	Pending bool
	// Seq is the tag of the latest request.
	Seq uint64
}

// Widget fetches forecasts in the background. Every request is tagged with an
// increasing sequence number and only the latest tag may change the display;
// starting a request cancels the one it supersedes.
type Widget struct {
	svc    Service
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu         sync.Mutex
	closed     bool
	seq        uint64
	settled    uint64
	location   string
	days       []Day
	cancelPrev context.CancelFunc
}

// NewWidget returns a widget with an empty display.
func NewWidget(svc Service) *Widget {
	ctx, cancel := context.WithCancel(context.Background())
	return &Widget{svc: svc, ctx: ctx, cancel: cancel}
}

// SetLocation starts fetching the forecast for location and returns a channel
// closed once that request has settled. A blank location issues no request and
// the returned channel is already closed, as it is after Close.
func (w *Widget) SetLocation(ctx context.Context, location string) <-chan struct{} {
	done := make(chan struct{})
	location = strings.TrimSpace(location)

	w.mu.Lock()
	if location == "" || w.closed {
		w.mu.Unlock()
		close(done)
		return done
	}
	if w.cancelPrev != nil {
		w.cancelPrev()
	}
	w.seq++
	tag := w.seq
	w.location = location
	// Fetches outlive the triggering request but keep its log correlation.
	fetchCtx, cancel := context.WithCancel(applog.WithLogger(w.ctx, applog.LoggerFromContext(ctx)))
	w.cancelPrev = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		defer close(done)
		defer cancel()
		w.fetch(fetchCtx, tag, location)
	}()
	return done
}

func (w *Widget) fetch(ctx context.Context, tag uint64, location string) {
	days, err := w.svc.Forecast(ctx, location)

	w.mu.Lock()
	defer w.mu.Unlock()
	if tag != w.seq {
		applog.LogDebug(ctx, "discarding superseded forecast",
			zap.String("location", location),
			zap.Uint64("seq", tag),
			zap.Uint64("latest", w.seq),
		)
		return
	}
	w.settled = tag
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			applog.LogError(ctx, "forecast fetch failed", err, zap.String("location", location))
		}
		return
	}
	w.days = slices.Clone(Visible(days))
}

// Display returns a copy of the current display.
func (w *Widget) Display() Display {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Display{
		Location: w.location,
		Days:     slices.Clone(w.days),
		Pending:  w.settled != w.seq,
		Seq:      w.seq,
	}
}

// Close cancels outstanding fetches and waits for them to return.
func (w *Widget) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()

	w.cancel()
	w.wg.Wait()
}
