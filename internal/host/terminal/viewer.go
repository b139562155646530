package terminal

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/strokemap/internal/input/classify"
	"github.com/dshills/strokemap/internal/input/mouse"
)

// maxMessages is how many notifications stay on screen.
const maxMessages = 8

// Target receives the viewer's pointer events.
type Target interface {
	HandleMouse(ctx context.Context, e mouse.Event) error
	Abort(ctx context.Context) error
	Path() classify.Trajectory
}

// Viewer draws gesture feedback on a tcell screen.
type Viewer struct {
	screen tcell.Screen
	title  string

	// mu guards messages, which tests read after Run returns.
	mu       sync.Mutex
	messages []string

	quit  bool
	mouse translator

	pathStyle   tcell.Style
	statusStyle tcell.Style
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithTitle sets the header line.
func WithTitle(title string) Option {
	return func(v *Viewer) {
		v.title = title
	}
}

// New wraps an initialized screen.
func New(screen tcell.Screen, opts ...Option) *Viewer {
	v := &Viewer{
		screen:      screen,
		title:       "strokemap: drag to draw a gesture, q to quit",
		pathStyle:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
		statusStyle: tcell.StyleDefault.Reverse(true),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewScreen creates and initializes a terminal screen with mouse reporting.
func NewScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	s.EnableFocus()
	return s, nil
}

// Name identifies the viewer.
func (v *Viewer) Name() string { return "terminal" }

// Notify adds a message line.
func (v *Viewer) Notify(msg string) {
	v.mu.Lock()
	v.messages = append(v.messages, msg)
	if len(v.messages) > maxMessages {
		v.messages = v.messages[len(v.messages)-maxMessages:]
	}
	v.mu.Unlock()
}

// Clear removes all messages.
func (v *Viewer) Clear() {
	v.mu.Lock()
	v.messages = nil
	v.mu.Unlock()
}

// Quit ends Run after the current event.
func (v *Viewer) Quit() {
	v.quit = true
}

// Messages returns the visible messages, oldest first.
func (v *Viewer) Messages() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]string, len(v.messages))
	copy(out, v.messages)
	return out
}

// Post runs f on the event loop. It is safe to call from any goroutine.
func (v *Viewer) Post(f func()) {
	_ = v.screen.PostEvent(tcell.NewEventInterrupt(f)) // best-effort; queue may be full
}

// Run processes screen events until Quit, ctx is done, or the screen is
// finalized.
func (v *Viewer) Run(ctx context.Context, target Target) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			v.Post(nil)
		case <-stop:
		}
	}()

	v.draw(target)
	for !v.quit {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			_ = target.Abort(context.Background())
			return err
		}
		v.handle(ctx, target, ev)
		v.draw(target)
	}
	return nil
}

func (v *Viewer) handle(ctx context.Context, target Target, ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		me, ok := v.mouse.translate(e)
		if !ok {
			return
		}
		if err := target.HandleMouse(ctx, me); err != nil {
			v.Notify("error: " + err.Error())
		}

	case *tcell.EventKey:
		switch {
		case e.Key() == tcell.KeyEscape:
			v.abort(target)
		case e.Key() == tcell.KeyCtrlC, e.Rune() == 'q':
			v.abort(target)
			v.Quit()
		case e.Rune() == 'c':
			v.Clear()
		}

	case *tcell.EventFocus:
		if !e.Focused {
			v.abort(target)
		}

	case *tcell.EventResize:
		v.screen.Sync()

	case *tcell.EventInterrupt:
		if f, ok := e.Data().(func()); ok && f != nil {
			f()
		}
	}
}

// abort abandons the drag in both the target and the translator.
func (v *Viewer) abort(target Target) {
	v.mouse.reset()
	if err := target.Abort(context.Background()); err != nil {
		v.Notify("error: " + err.Error())
	}
}

func (v *Viewer) draw(target Target) {
	s := v.screen
	s.Clear()
	w, h := s.Size()

	drawText(s, 0, 0, w, v.title, tcell.StyleDefault.Bold(true))
	for i, msg := range v.Messages() {
		drawText(s, 0, 2+i, w, msg, tcell.StyleDefault)
	}

	path := target.Path()
	drawPath(s, path, v.pathStyle)

	status := "idle"
	if len(path) > 0 {
		status = fmt.Sprintf("drawing: %d points", len(path))
	}
	drawText(s, 0, h-1, w, fmt.Sprintf("%-*s", w, status), v.statusStyle)
	s.Show()
}

func drawText(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= maxWidth {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawPath marks every cell the path passes through.
func drawPath(s tcell.Screen, path classify.Trajectory, style tcell.Style) {
	for i := range path {
		if i == 0 {
			plot(s, path[0], style)
			continue
		}
		a, b := path[i-1], path[i]
		steps := int(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)))
		for k := 1; k <= steps; k++ {
			t := float64(k) / float64(steps)
			plot(s, classify.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}, style)
		}
		plot(s, b, style)
	}
}

func plot(s tcell.Screen, p classify.Point, style tcell.Style) {
	s.SetContent(int(math.Round(p.X)), int(math.Round(p.Y)), '•', nil, style)
}
