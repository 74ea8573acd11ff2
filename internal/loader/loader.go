package loader

import (
	"context"
	"log"
	"slices"
	"sync"
	"time"
)

// State is the lifecycle of a loader's current request. A failed request
// returns the loader to StateIdle with empty content.
type State string

const (
	StateIdle     State = "idle"
	StateFetching State = "fetching"
	StateLoaded   State = "loaded"
)

// Result is the observable state of a loader after a change.
type Result struct {
	Seq     uint64
	Address string
	State   State
	Content string
}

// Options configures a Loader.
type Options struct {
	Fetcher Fetcher
	// Logger receives one entry per failed retrieval. Defaults to log.Default().
	Logger *log.Logger
	// OnFailure, if set, is called after a failure has been logged.
	OnFailure func(address string, err error)
	// Timeout bounds a single retrieval. Zero means none.
	Timeout time.Duration
	Verbose bool
}

// Loader retrieves the text at one address at a time and exposes the most
// recently requested address's result. Each request carries a sequence
// number; completions from superseded requests are discarded.
type Loader struct {
	opts   Options
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	seq     uint64
	address string
	state   State
	content string
	subs    []func(Result)
	pending int
	idle    *sync.Cond
}

// New creates an idle Loader.
func New(opts Options) *Loader {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	l := &Loader{opts: opts, ctx: ctx, cancel: cancel, state: StateIdle}
	l.idle = sync.NewCond(&l.mu)
	return l
}

// Subscribe registers fn to be called after every applied change.
func (l *Loader) Subscribe(fn func(Result)) {
	l.mu.Lock()
	l.subs = append(l.subs, fn)
	l.mu.Unlock()
}

// Load requests the text at address. Requesting the address that is already
// current does nothing. An empty address clears the content without a
// request.
func (l *Loader) Load(address string) {
	l.mu.Lock()
	if address == l.address && l.seq > 0 {
		l.mu.Unlock()
		return
	}
	l.seq++
	seq := l.seq
	l.address = address
	l.content = ""
	if address == "" {
		l.state = StateIdle
	} else {
		l.state = StateFetching
		l.pending++
	}
	res, subs := l.resultLocked(), l.subscribersLocked()
	l.mu.Unlock()

	notify(subs, res)

	if address == "" {
		return
	}
	go l.fetch(seq, address)
}

func (l *Loader) fetch(seq uint64, address string) {
	defer l.finish()

	ctx := l.ctx
	if l.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.opts.Timeout)
		defer cancel()
	}

	text, err := l.opts.Fetcher.Fetch(ctx, address)
	if err != nil && l.ctx.Err() != nil {
		// Closed while fetching; nobody is left to show the result.
		return
	}
	if err != nil {
		l.opts.Logger.Printf("loader: error fetching markdown file %s: %v", address, err)
		if l.opts.OnFailure != nil {
			l.opts.OnFailure(address, err)
		}
	}

	l.mu.Lock()
	if seq != l.seq {
		l.mu.Unlock()
		if l.opts.Verbose {
			l.opts.Logger.Printf("loader: discarding stale result for %s", address)
		}
		return
	}
	if err != nil {
		l.state = StateIdle
		l.content = ""
	} else {
		l.state = StateLoaded
		l.content = text
	}
	res, subs := l.resultLocked(), l.subscribersLocked()
	l.mu.Unlock()

	notify(subs, res)
}

// Result returns the loader's current state.
func (l *Loader) Result() Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.resultLocked()
}

// Content returns the current text, or "" when nothing is loaded.
func (l *Loader) Content() string { return l.Result().Content }

// finish marks one retrieval done, after its result has been published.
func (l *Loader) finish() {
	l.mu.Lock()
	l.pending--
	if l.pending == 0 {
		l.idle.Broadcast()
	}
	l.mu.Unlock()
}

// Wait blocks until no retrieval is in flight.
func (l *Loader) Wait() {
	l.mu.Lock()
	for l.pending > 0 {
		l.idle.Wait()
	}
	l.mu.Unlock()
}

// Close aborts in-flight retrievals and waits for them to return.
func (l *Loader) Close() {
	l.cancel()
	l.Wait()
}

func (l *Loader) resultLocked() Result {
	return Result{Seq: l.seq, Address: l.address, State: l.state, Content: l.content}
}

func (l *Loader) subscribersLocked() []func(Result) {
	return slices.Clone(l.subs)
}

func notify(subs []func(Result), res Result) {
	for _, fn := range subs {
		fn(res)
	}
}
