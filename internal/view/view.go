package view

import (
	"html/template"
	"log"
	"sync"
	"time"

	"github.com/ziadkadry99/cheatcompare/internal/loader"
	"github.com/ziadkadry99/cheatcompare/internal/render"
	"github.com/ziadkadry99/cheatcompare/internal/selection"
	"github.com/ziadkadry99/cheatcompare/internal/source"
)

// DefaultTitle is the page heading when none is configured.
const DefaultTitle = "CheatSheets Compare"

// Options configures a comparison View.
type Options struct {
	Title     string
	Documents []string
	BasePath  string
	Fetcher   loader.Fetcher
	Renderer  *render.Renderer
	Logger    *log.Logger
	// OnFailure is called once per failed retrieval, after it is logged.
	OnFailure    func(slot selection.Slot, address string, err error)
	FetchTimeout time.Duration
	Verbose      bool
}

// Pane is the rendered state of one slot.
type Pane struct {
	Slot        selection.Slot `json:"slot"`
	Document    string         `json:"document"`
	File        string         `json:"file"`
	State       loader.State   `json:"state"`
	Placeholder bool           `json:"placeholder"`
	HTML        template.HTML  `json:"html"`

	seq uint64
}

// State is a full snapshot of the view.
type State struct {
	Title     string              `json:"title"`
	Documents []string            `json:"documents"`
	Selection selection.Selection `json:"selection"`
	Panes     []Pane              `json:"panes"`
}

// View composes two selector + pane pairs. Each slot's selection drives its
// own loader; loader results re-render that slot's pane only.
type View struct {
	opts      Options
	selection *selection.State
	loaders   map[selection.Slot]*loader.Loader

	mu      sync.RWMutex
	panes   map[selection.Slot]Pane
	subs    map[int]func(Pane)
	nextSub int
}

// New builds a View and starts loading the default selection.
func New(opts Options) *View {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Renderer == nil {
		opts.Renderer = render.New("")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	opts.Documents = append([]string(nil), opts.Documents...)

	v := &View{
		opts:      opts,
		selection: selection.New(selection.Defaults(opts.Documents)),
		loaders:   make(map[selection.Slot]*loader.Loader, len(selection.Slots)),
		panes:     make(map[selection.Slot]Pane, len(selection.Slots)),
		subs:      make(map[int]func(Pane)),
	}

	for _, slot := range selection.Slots {
		lopts := loader.Options{
			Fetcher: opts.Fetcher,
			Logger:  opts.Logger,
			Timeout: opts.FetchTimeout,
			Verbose: opts.Verbose,
		}
		if opts.OnFailure != nil {
			lopts.OnFailure = func(address string, err error) {
				opts.OnFailure(slot, address, err)
			}
		}
		l := loader.New(lopts)
		l.Subscribe(func(res loader.Result) { v.refresh(slot, res) })
		v.loaders[slot] = l
		v.panes[slot] = v.buildPane(slot, v.selection.Get(slot), loader.Result{State: loader.StateIdle})
	}

	v.selection.Subscribe(func(slot selection.Slot, name string) {
		v.loaders[slot].Load(v.address(name))
	})

	for _, slot := range selection.Slots {
		v.loaders[slot].Load(v.address(v.selection.Get(slot)))
	}
	return v
}

// Select changes the document shown in slot.
func (v *View) Select(slot selection.Slot, name string) error {
	return v.selection.Set(slot, name)
}

// Selection returns the current selection.
func (v *View) Selection() selection.Selection { return v.selection.Snapshot() }

// Pane returns the current pane for slot.
func (v *View) Pane(slot selection.Slot) Pane {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.panes[slot]
}

// Snapshot returns the full view state.
func (v *View) Snapshot() State {
	v.mu.RLock()
	panes := make([]Pane, 0, len(selection.Slots))
	for _, slot := range selection.Slots {
		panes = append(panes, v.panes[slot])
	}
	v.mu.RUnlock()

	return State{
		Title:     v.opts.Title,
		Documents: append([]string(nil), v.opts.Documents...),
		Selection: v.selection.Snapshot(),
		Panes:     panes,
	}
}

// Subscribe registers fn for pane updates and returns a func that removes it.
func (v *View) Subscribe(fn func(Pane)) (cancel func()) {
	v.mu.Lock()
	id := v.nextSub
	v.nextSub++
	v.subs[id] = fn
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		delete(v.subs, id)
		v.mu.Unlock()
	}
}

// Wait blocks until both loaders are idle.
func (v *View) Wait() {
	for _, slot := range selection.Slots {
		v.loaders[slot].Wait()
	}
}

// Close aborts in-flight retrievals.
func (v *View) Close() {
	for _, slot := range selection.Slots {
		v.loaders[slot].Close()
	}
}

func (v *View) address(name string) string {
	return source.Resolve(v.opts.BasePath, name)
}

func (v *View) refresh(slot selection.Slot, res loader.Result) {
	pane := v.buildPane(slot, v.selection.Get(slot), res)

	v.mu.Lock()
	if cur, ok := v.panes[slot]; ok && cur.seq > res.Seq {
		v.mu.Unlock()
		return
	}
	v.panes[slot] = pane
	subs := make([]func(Pane), 0, len(v.subs))
	for _, fn := range v.subs {
		subs = append(subs, fn)
	}
	v.mu.Unlock()

	for _, fn := range subs {
		fn(pane)
	}
}

func (v *View) buildPane(slot selection.Slot, name string, res loader.Result) Pane {
	content := derive(v.address(name), res)
	html, placeholder, err := v.opts.Renderer.Pane(content)
	if err != nil {
		v.opts.Logger.Printf("view: rendering %s: %v", source.FileName(name), err)
	}
	state := res.State
	if res.Address != v.address(name) {
		state = loader.StateIdle
	}
	return Pane{
		Slot:        slot,
		Document:    name,
		File:        source.FileName(name),
		State:       state,
		Placeholder: placeholder,
		HTML:        html,
		seq:         res.Seq,
	}
}

// derive computes a slot's Loaded Content from the address its selection
// resolves to and the loader's latest result. A result for any other
// address yields no content.
func derive(address string, res loader.Result) string {
	if address == "" || res.Address != address {
		return ""
	}
	return res.Content
}
