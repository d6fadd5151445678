// Package term shows canvas pixels in an interactive terminal screen until
// the user presses Esc, q or Ctrl-C.
//
// The image is drawn with half block cells and sampled down to fit the
// screen. Resizing the terminal redraws it.
package term

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/lite"
	"github.com/gogpu/lite/internal/halfblock"
)

// Option configures Show.
type Option func(*options)

type options struct {
	screen tcell.Screen
}

// WithScreen draws on s instead of opening the terminal. s must already be
// initialized; Show does not finalize it. Show stops reading events from s
// before it returns, so s can be handed to another Show.
func WithScreen(s tcell.Screen) Option {
	return func(o *options) {
		o.screen = s
	}
}

// Show displays a row-major RGB image of width x height pixels and blocks
// until a quit key is pressed or ctx is done. It returns ctx.Err() in the
// latter case.
func Show(ctx context.Context, width, height int, pix []byte, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	screen := o.screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := s.Init(); err != nil {
			return err
		}
		defer s.Fini()
		screen = s
	}
	log := lite.Logger()

	if err := paint(screen, width, height, pix); err != nil {
		return err
	}
	log.Info("term: showing canvas", "width", width, "height", height)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case <-quit:
				return
			default:
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	// Wake the poller and wait for it, so no goroutine reads the screen
	// once Show has returned.
	defer func() {
		close(quit)
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-done
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				if err := paint(screen, width, height, pix); err != nil {
					return err
				}
				screen.Sync()
				log.Debug("term: resized")
			}
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// paint clears the screen and draws the image in its top-left corner.
func paint(s tcell.Screen, width, height int, pix []byte) error {
	cols, rows := s.Size()
	grid, err := halfblock.Grid(width, height, pix, cols, rows)
	if err != nil {
		return err
	}
	s.Clear()
	for y, line := range grid {
		for x, cell := range line {
			style := tcell.StyleDefault.Foreground(rgb(cell.Top))
			if !cell.Short {
				style = style.Background(rgb(cell.Bottom))
			}
			s.SetContent(x, y, halfblock.Glyph, nil, style)
		}
	}
	s.Show()
	return nil
}

func rgb(c [3]uint8) tcell.Color {
	return tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2]))
}
