// Package bridge keeps the panel's view state consistent with the host
// process. It issues the startup requests, applies inbound notifications
// and owns the offline demo path.
package bridge

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/lumen/internal/domain/monitor"
	"github.com/alexisbeaulieu97/lumen/internal/logger"
	apperrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

// LocalizationRetryDelay is how long the bridge waits before asking for
// localized strings a second time.
const LocalizationRetryDelay = 200 * time.Millisecond

// Sender delivers outbound messages to the host.
type Sender interface {
	Send(ctx context.Context, out Outbound) error
}

// Lifecycle is the host-side page lifecycle.
type Lifecycle interface {
	PanelAnimationDone()
}

// LifecycleFunc adapts a function to Lifecycle.
type LifecycleFunc func()

func (f LifecycleFunc) PanelAnimationDone() {
	if f != nil {
		f()
	}
}

// Options configures a Bridge.
type Options struct {
	Context   context.Context
	Sender    Sender
	Lifecycle Lifecycle
	Logger    *logger.Logger
	Bootstrap *Bootstrap
}

// Bridge mediates between ViewState and the host.
type Bridge struct {
	ctx       context.Context
	sender    Sender
	lifecycle Lifecycle
	log       *logger.Logger

	state *ViewState
	doc   Document
}

// New builds a bridge and applies the bootstrap state, if any.
func New(opts Options) *Bridge {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	b := &Bridge{
		ctx:       ctx,
		sender:    opts.Sender,
		lifecycle: opts.Lifecycle,
		log:       log.With("bridge"),
		state:     NewViewState(),
	}

	if opts.Bootstrap != nil {
		for _, msg := range opts.Bootstrap.Messages() {
			if _, err := b.Handle(msg); err != nil {
				b.log.Warn("ignoring bootstrap value", "kind", msg.Kind().String(), "error", err.Error())
			}
		}
	}
	return b
}

// State returns the view state. Callers only have access to its readers.
func (b *Bridge) State() *ViewState { return b.state }

// Document returns the current presentation surface.
func (b *Bridge) Document() Document { return b.doc }

// Init issues the startup requests: wallpaper, refresh capability and
// localization once each, then localization once more after a fixed delay.
// The retry is sent even when the first request was answered.
func (b *Bridge) Init() tea.Cmd {
	return tea.Batch(
		b.send(Request(KindGetMicaWallpaper)),
		b.send(Request(KindGetRefreshing)),
		b.send(Request(KindRequestLocalization)),
		tea.Tick(LocalizationRetryDelay, func(time.Time) tea.Msg {
			return localizationRetryMsg{}
		}),
	)
}

// Update handles the bridge's own messages. Anything else is ignored.
func (b *Bridge) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case localizationRetryMsg:
		return b.send(Request(KindRequestLocalization))

	case InboundMsg:
		cmd, err := b.Handle(msg.Message)
		if err != nil {
			b.log.Error(err, "rejected host message", "kind", msg.Message.Kind().String())
		}
		return cmd

	case InboundErrorMsg:
		var protoErr *apperrors.ProtocolError
		if errors.As(msg.Err, &protoErr) {
			b.log.Warn("dropped host message", "kind", protoErr.Kind, "reason", protoErr.Message)
			return nil
		}
		b.log.Error(msg.Err, "host channel error")
	}
	return nil
}

// Handle applies one inbound message. It runs to completion before the next
// message is processed.
func (b *Bridge) Handle(in Inbound) (tea.Cmd, error) {
	switch in := in.(type) {
	case WindowPosition:
		b.state.setPosition(Position{X: in.X, Y: in.Y})
		b.refreshBackdrop()
		return nil, nil

	case MonitorsUpdated:
		valid, errs := monitor.Partition(in.Monitors)
		for _, err := range errs {
			b.log.Warn("dropping invalid monitor", "error", err.Error())
		}
		b.state.setMonitors(valid)
		return b.publish(), nil

	case EnableDemoMode:
		return b.activateDemo(), nil

	case SettingsUpdated:
		b.state.mergeSettings(in.Settings)
		b.refreshBackdrop()
		return nil, nil

	case AccentColor:
		b.state.setAccent(in.Accent)
		b.doc.AccentColor = in.Accent
		return nil, nil

	case Refreshing:
		b.state.setRefreshing(in.Refreshing)
		return nil, nil

	case MicaWallpaper:
		b.state.setWallpaper(Wallpaper{Path: in.Path, Width: in.Width, Height: in.Height})
		b.log.Debug("wallpaper recorded", "path", in.Path, "width", in.Width, "height", in.Height)
		return nil, nil

	case Localization:
		b.state.setStrings(in.Strings)
		return nil, nil

	case nil:
		return nil, apperrors.NewProtocolError("", "empty message", nil)

	default:
		return nil, apperrors.NewProtocolError(in.Kind().String(), "unhandled message kind", nil)
	}
}

// refreshBackdrop recomputes the backdrop offset from the current state. It
// writes only the document; the terminal view never draws it.
func (b *Bridge) refreshBackdrop() {
	b.doc.Backdrop = BackdropOffset(b.state.Position(), b.state.IsWin11())
	b.log.Debug("backdrop moved", "transform", b.doc.Backdrop.Transform())
}

func (b *Bridge) publish() tea.Cmd {
	version := b.state.Version()
	return func() tea.Msg {
		return MonitorsUpdatedMsg{Version: version}
	}
}

// MarkVisible flips the panel to visible. The panel calls it when real
// monitor data arrives; the demo path sets it on its own.
func (b *Bridge) MarkVisible() {
	b.doc.Visible = true
}

// RequestDismiss asks the host to hide the panel.
func (b *Bridge) RequestDismiss() tea.Cmd {
	return b.send(Request(KindBlurPanel))
}

// PanelReady tells the host the first frame has been drawn.
func (b *Bridge) PanelReady() tea.Cmd {
	return b.send(Request(KindPanelReady))
}

// RequestBrightness asks the host to set a display's brightness. The level
// is clamped to the display's range. The local copy is left alone; the host
// answers with a fresh monitor list.
func (b *Bridge) RequestBrightness(id string, level int) tea.Cmd {
	d, ok := b.state.Monitor(id)
	if !ok {
		b.log.Warn("brightness request for unknown monitor", "monitor", id)
		return nil
	}
	if d.Type != "" && !d.Type.Adjustable() {
		return nil
	}
	return b.send(SetBrightness(id, d.Clamp(level)))
}

// AnimationDone forwards the end of the reveal animation to the host page.
func (b *Bridge) AnimationDone() {
	if b.lifecycle != nil {
		b.lifecycle.PanelAnimationDone()
	}
}

// send returns a command that delivers out without waiting for a reply.
// Failures are logged and reported, never retried.
func (b *Bridge) send(out Outbound) tea.Cmd {
	sender, ctx, log := b.sender, b.ctx, b.log
	return func() tea.Msg {
		if sender == nil {
			return nil
		}
		if err := sender.Send(ctx, out); err != nil {
			log.Error(err, "send to host failed", "kind", out.Kind.String())
			return SendFailedMsg{Kind: out.Kind, Err: err}
		}
		return nil
	}
}
