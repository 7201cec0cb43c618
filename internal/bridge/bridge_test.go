package bridge

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/lumen/internal/domain/monitor"
	"github.com/alexisbeaulieu97/lumen/internal/logger"
	apperrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []Outbound
	err  error
}

func (r *recordingSender) Send(_ context.Context, out Outbound) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, out)
	return nil
}

func (r *recordingSender) kinds() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Kind, 0, len(r.sent))
	for _, o := range r.sent {
		out = append(out, o.Kind)
	}
	return out
}

func (r *recordingSender) count(kind Kind) int {
	n := 0
	for _, k := range r.kinds() {
		if k == kind {
			n++
		}
	}
	return n
}

// expand runs a batch command and returns its members.
func expand(t *testing.T, cmd tea.Cmd) []tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		return batch
	}
	return []tea.Cmd{func() tea.Msg { return msg }}
}

func TestInitStartupSequence(t *testing.T) {
	rec := &recordingSender{}
	b := New(Options{Sender: rec})

	start := time.Now()
	cmds := expand(t, b.Init())
	require.Len(t, cmds, 4)

	for _, cmd := range cmds[:3] {
		assert.Nil(t, cmd())
	}
	assert.Equal(t, []Kind{KindGetMicaWallpaper, KindGetRefreshing, KindRequestLocalization}, rec.kinds())

	retry := cmds[3]()
	assert.GreaterOrEqual(t, time.Since(start), LocalizationRetryDelay)
	require.IsType(t, localizationRetryMsg{}, retry)

	follow := b.Update(retry)
	require.NotNil(t, follow)
	assert.Nil(t, follow())

	assert.Equal(t, 1, rec.count(KindGetMicaWallpaper))
	assert.Equal(t, 1, rec.count(KindGetRefreshing))
	assert.Equal(t, 2, rec.count(KindRequestLocalization))
	assert.Len(t, rec.kinds(), 4)
}

func TestBackdropOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pos     Position
		isWin11 bool
		want    string
	}{
		{name: "plain", pos: Position{X: 100, Y: 50}, want: "translate(-100px, -50px)"},
		{name: "win11", pos: Position{X: 100, Y: 50}, isWin11: true, want: "translate(-112px, -62px)"},
		{name: "origin", pos: Position{}, want: "translate(0px, 0px)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BackdropOffset(tt.pos, tt.isWin11).Transform())
			assert.Equal(t, BackdropOffset(tt.pos, tt.isWin11), BackdropOffset(tt.pos, tt.isWin11))
		})
	}
}

func TestWindowPositionRecomputesBackdrop(t *testing.T) {
	t.Parallel()

	b := New(Options{})
	before := b.State().Version()

	_, err := b.Handle(WindowPosition{X: 100, Y: 50})
	require.NoError(t, err)
	assert.Equal(t, Offset{X: -100, Y: -50}, b.Document().Backdrop)
	assert.Equal(t, Position{X: 100, Y: 50}, b.State().Position())
	assert.Equal(t, before+1, b.State().Version())

	_, err = b.Handle(SettingsUpdated{Settings: map[string]any{SettingIsWin11: true}})
	require.NoError(t, err)
	assert.True(t, b.State().IsWin11())
	assert.Equal(t, Offset{X: -112, Y: -62}, b.Document().Backdrop)
	assert.Equal(t, Position{X: 100, Y: 50}, b.State().Position())
}

func TestDemoModeDefaults(t *testing.T) {
	t.Parallel()

	b := New(Options{})
	assert.False(t, b.Document().Visible)

	cmd, err := b.Handle(EnableDemoMode{})
	require.NoError(t, err)
	require.NotNil(t, cmd)

	msg, ok := cmd().(MonitorsUpdatedMsg)
	require.True(t, ok)
	assert.Equal(t, b.State().Version(), msg.Version)

	list := b.State().Monitors()
	require.Len(t, list, 2)
	assert.Equal(t, "XB270HU", list[0].Name)
	assert.Equal(t, 63, list[0].Brightness)
	assert.Equal(t, "DELL U2415", list[1].Name)
	assert.Equal(t, 46, list[1].Brightness)
	for _, d := range list {
		assert.Equal(t, 0, d.Min)
		assert.Equal(t, 100, d.Max)
	}

	assert.True(t, b.Document().Visible)
	assert.Equal(t, "#744DA9", b.Document().AccentColor)
}

func TestDemoModeKeepsHostAccent(t *testing.T) {
	t.Parallel()

	b := New(Options{Bootstrap: &Bootstrap{Accent: "#0078D4"}})
	_, err := b.Handle(EnableDemoMode{})
	require.NoError(t, err)
	assert.Equal(t, "#0078D4", b.Document().AccentColor)
}

func TestDemoAndHostPublishSameMessage(t *testing.T) {
	t.Parallel()

	b := New(Options{})
	demoCmd, err := b.Handle(EnableDemoMode{})
	require.NoError(t, err)
	hostCmd, err := b.Handle(MonitorsUpdated{Monitors: monitor.DemoMonitors()})
	require.NoError(t, err)

	assert.IsType(t, demoCmd(), hostCmd())
}

func TestMonitorsUpdatedDropsOnlyInvalidEntries(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	b := New(Options{Logger: log})
	_, err = b.Handle(MonitorsUpdated{Monitors: monitor.DemoMonitors()})
	require.NoError(t, err)
	version := b.State().Version()

	update := monitor.DemoMonitors()
	update[0].Brightness = 70
	update[1].Brightness = 400
	update = append(update, update[0])
	cmd, err := b.Handle(MonitorsUpdated{Monitors: update})
	require.NoError(t, err)
	assert.NotNil(t, cmd)

	list := b.State().Monitors()
	require.Len(t, list, 1)
	assert.Equal(t, `\\.\DISPLAY1`, list[0].ID)
	assert.Equal(t, 70, list[0].Brightness)
	assert.Greater(t, b.State().Version(), version)

	assert.Equal(t, 2, strings.Count(buf.String(), "dropping invalid monitor"))
}

func TestStateReadersReturnCopies(t *testing.T) {
	t.Parallel()

	b := New(Options{})
	_, err := b.Handle(MonitorsUpdated{Monitors: monitor.DemoMonitors()})
	require.NoError(t, err)

	list := b.State().Monitors()
	list[0].Brightness = 1
	assert.Equal(t, 63, b.State().Monitors()[0].Brightness)

	settings := b.State().Settings()
	require.NotNil(t, settings)
	settings["x"] = 1
	_, ok := b.State().Setting("x")
	assert.False(t, ok)
}

func TestHostAnswersUpdateState(t *testing.T) {
	t.Parallel()

	b := New(Options{})
	steps := []Inbound{
		Refreshing{Refreshing: true},
		MicaWallpaper{Path: "C:/wall.jpg", Width: 1920, Height: 1080},
		Localization{Strings: map[string]string{"panel.title": "Luminosité"}},
		AccentColor{Accent: "#FF8800"},
	}
	for _, in := range steps {
		_, err := b.Handle(in)
		require.NoError(t, err)
	}

	st := b.State()
	assert.True(t, st.Refreshing())
	assert.Equal(t, Wallpaper{Path: "C:/wall.jpg", Width: 1920, Height: 1080}, st.Wallpaper())
	assert.Equal(t, "Luminosité", st.Localize("panel.title", "Brightness"))
	assert.Equal(t, "Brightness", st.Localize("missing", "Brightness"))
	assert.Equal(t, "#FF8800", st.Accent())
	assert.Equal(t, "#FF8800", b.Document().AccentColor)
	assert.Equal(t, uint64(len(steps)), st.Version())
}

func TestRequestDismissSendsBlurOnce(t *testing.T) {
	t.Parallel()

	rec := &recordingSender{}
	b := New(Options{Sender: rec})
	cmd := b.RequestDismiss()
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	assert.Equal(t, []Kind{KindBlurPanel}, rec.kinds())
}

func TestRequestBrightnessClamps(t *testing.T) {
	t.Parallel()

	rec := &recordingSender{}
	b := New(Options{Sender: rec})
	_, err := b.Handle(MonitorsUpdated{Monitors: monitor.DemoMonitors()})
	require.NoError(t, err)

	id := b.State().Monitors()[0].ID
	cmd := b.RequestBrightness(id, 140)
	require.NotNil(t, cmd)
	cmd()

	require.Len(t, rec.sent, 1)
	assert.Equal(t, BrightnessRequest{ID: id, Level: 100}, rec.sent[0].Payload)
	assert.Equal(t, 63, b.State().Monitors()[0].Brightness)

	assert.Nil(t, b.RequestBrightness("missing", 10))
}

func TestSendFailureIsReported(t *testing.T) {
	t.Parallel()

	boom := errors.New("broken pipe")
	b := New(Options{Sender: &recordingSender{err: boom}})
	msg := b.RequestDismiss()()

	failed, ok := msg.(SendFailedMsg)
	require.True(t, ok)
	assert.Equal(t, KindBlurPanel, failed.Kind)
	assert.ErrorIs(t, failed.Err, boom)
}

func TestAnimationDoneCallsLifecycle(t *testing.T) {
	t.Parallel()

	calls := 0
	b := New(Options{Lifecycle: LifecycleFunc(func() { calls++ })})
	b.AnimationDone()
	assert.Equal(t, 1, calls)

	New(Options{}).AnimationDone()
}

func TestBootstrapSeedsState(t *testing.T) {
	t.Parallel()

	win11 := true
	b := New(Options{Bootstrap: &Bootstrap{
		Accent:   "#123456",
		IsWin11:  &win11,
		Monitors: monitor.DemoMonitors(),
		Position: []int{100, 50},
		Settings: map[string]any{"useAcrylic": false},
	}})

	st := b.State()
	assert.Len(t, st.Monitors(), 2)
	assert.True(t, st.IsWin11())
	assert.Equal(t, "#123456", st.Accent())
	assert.Equal(t, Offset{X: -112, Y: -62}, b.Document().Backdrop)
	v, ok := st.Setting("useAcrylic")
	require.True(t, ok)
	assert.Equal(t, false, v)
	assert.False(t, b.Document().Visible)
}

func TestUpdateLogsRejectedMessages(t *testing.T) {
	t.Parallel()

	b := New(Options{})
	assert.Nil(t, b.Update(InboundErrorMsg{Err: apperrors.NewProtocolError("bogus", "unknown message kind", nil)}))
	assert.NotNil(t, b.Update(InboundMsg{Message: MonitorsUpdated{Monitors: []monitor.Descriptor{{}}}}), "an all-invalid list publishes an empty one")
	assert.Empty(t, b.State().Monitors())
	assert.Nil(t, b.Update("unrelated"))
}

func TestBackdropAndWallpaperAreLogged(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	b := New(Options{Logger: log})
	_, err = b.Handle(WindowPosition{X: 100, Y: 50})
	require.NoError(t, err)
	_, err = b.Handle(MicaWallpaper{Path: "wall.png", Width: 2560, Height: 1440})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "backdrop moved")
	assert.Contains(t, out, "translate(-100px, -50px)")
	assert.Contains(t, out, "wallpaper recorded")
	assert.Contains(t, out, "wall.png")
	assert.Equal(t, Wallpaper{Path: "wall.png", Width: 2560, Height: 1440}, b.State().Wallpaper())
}
