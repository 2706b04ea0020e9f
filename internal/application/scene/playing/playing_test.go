package playing

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/boxclicker/internal/application/game"
	"github.com/younwookim/boxclicker/internal/application/replay"
	"github.com/younwookim/boxclicker/internal/application/scene"
	"github.com/younwookim/boxclicker/internal/application/state"
	"github.com/younwookim/boxclicker/internal/application/system"
	"github.com/younwookim/boxclicker/internal/domain/entity"
	"github.com/younwookim/boxclicker/internal/infrastructure/config"
)

// createTestConfig creates a minimal 800x600 config for testing
func createTestConfig() *config.GameConfig {
	cfg := config.Default()
	cfg.Boxes.Count = 1
	cfg.UI.StripHeight = 0
	cfg.Hit.ProgressStep = 10
	cfg.Hit.ShakeDuration = 0.3
	return cfg
}

// placeBox pins the first box to a known spot and velocity
func placeBox(p *Playing, x, y, dx, dy float64) *entity.Box {
	b := p.State().Boxes[0]
	b.X, b.Y, b.DX, b.DY = x, y, dx, dy
	return b
}

type nullSurface struct{ fills int }

func (s *nullSurface) Clear(color.Color)                                {}
func (s *nullSurface) FillRect(x, y, w, h float64, c color.Color)       { s.fills++ }
func (s *nullSurface) DrawText(str string, x, y float64, c color.Color) {}
func (s *nullSurface) MeasureText(str string) (float64, float64)        { return 0, 0 }

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestPlaying_New(t *testing.T) {
	p := New(createTestConfig(), &system.ScriptedSource{}, Options{Seed: 7, BoxCount: 4})

	assert.Len(t, p.State().Boxes, 4, "BoxCount overrides config")
	assert.Equal(t, int64(7), p.Seed())
	assert.True(t, p.State().IsRunning())
	assert.Nil(t, p.Recorder())
}

func TestPlaying_AdvanceMovesBoxes(t *testing.T) {
	p := New(createTestConfig(), &system.ScriptedSource{}, Options{Seed: 1})
	b := placeBox(p, 375, 275, 80, 80)

	_, err := p.Update(1.0)
	require.NoError(t, err)

	assert.InDelta(t, 455.0, b.X, 1e-9)
	assert.InDelta(t, 355.0, b.Y, 1e-9)
}

func TestPlaying_ClickBeforeMove(t *testing.T) {
	src := &system.ScriptedSource{Frames: [][]system.Event{
		{system.PointerPress(400, 300)},
	}}
	p := New(createTestConfig(), src, Options{Seed: 1})
	b := placeBox(p, 375, 275, 80, 80)

	_, err := p.Update(0.1)
	require.NoError(t, err)

	// Hit-tested at the old position, then moved
	assert.Equal(t, 1, p.State().Score.Value())
	assert.Equal(t, 10, b.Progress)
	assert.InDelta(t, 383.0, b.X, 1e-9)
	assert.InDelta(t, 0.2, b.ShakeTimer, 1e-9, "shake started and counted down")
}

func TestPlaying_BoxRemovedAtFullProgress(t *testing.T) {
	src := &system.ScriptedSource{Frames: [][]system.Event{
		{system.PointerPress(400, 300)},
	}}
	cleared := 0
	p := New(createTestConfig(), src, Options{
		Seed:    1,
		OnClear: func(b *entity.Box) { cleared++ },
	})
	b := placeBox(p, 375, 275, 0, 0)
	b.Progress = 99

	_, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)

	assert.Empty(t, p.State().Boxes, "removed before the next render")
	assert.Equal(t, 1, p.State().Cleared)
	assert.Equal(t, 1, cleared)

	dst := &nullSurface{}
	p.Draw(dst)
	assert.Equal(t, 0, dst.fills, "cleared box is not drawn")
}

func TestPlaying_QuitTerminates(t *testing.T) {
	src := &system.ScriptedSource{Frames: [][]system.Event{
		nil,
		{system.Quit()},
	}}
	var final *state.GameState
	calls := 0
	p := New(createTestConfig(), src, Options{
		Seed:        1,
		OnTerminate: func(gs *state.GameState) { final = gs; calls++ },
	})

	_, err := p.Update(0.1)
	require.NoError(t, err)

	_, err = p.Update(0.1)
	assert.ErrorIs(t, err, scene.ErrTerminated)
	assert.Equal(t, state.PhaseTerminated, p.State().Phase)
	assert.Same(t, p.State(), final)

	_, err = p.Update(0.1)
	assert.ErrorIs(t, err, scene.ErrTerminated, "stays terminated")
	assert.Equal(t, 1, calls, "terminate hook runs once")
}

func TestPlaying_QuitSkipsAdvance(t *testing.T) {
	src := &system.ScriptedSource{Frames: [][]system.Event{{system.Quit()}}}
	p := New(createTestConfig(), src, Options{Seed: 1})
	b := placeBox(p, 375, 275, 80, 80)

	_, err := p.Update(1.0)
	assert.ErrorIs(t, err, scene.ErrTerminated)
	assert.Equal(t, 375.0, b.X)
}

func TestPlaying_Draw(t *testing.T) {
	p := New(createTestConfig(), &system.ScriptedSource{}, Options{Seed: 1, BoxCount: 3})
	dst := &nullSurface{}

	p.Draw(dst)
	assert.Equal(t, 3, dst.fills)
}

func TestPlaying_RecordAndReplay(t *testing.T) {
	cfg := createTestConfig()
	path := filepath.Join(t.TempDir(), "session.json")

	// Click wherever the first box is on a few frames
	var p *Playing
	frames := 0
	src := sourceFunc(func() []system.Event {
		frames++
		if frames > 90 {
			return []system.Event{system.Quit()}
		}
		if frames%10 == 0 {
			b := p.State().Boxes[0]
			return []system.Event{system.PointerPress(int(b.X)+1, int(b.Y)+1)}
		}
		return nil
	})
	p = New(cfg, src, Options{Seed: 99, BoxCount: 2, RecordPath: path})

	n, err := game.RunHeadless(p, game.FixedClock{DT: 1.0 / 60.0}, 0)
	require.NoError(t, err)
	assert.Equal(t, 91, n)
	require.Greater(t, p.State().Score.Value(), 0)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), data.Seed)
	assert.Equal(t, 2, data.Boxes)
	assert.Len(t, data.Frames, 91)

	rp := replay.NewReplayer(*data)
	again := New(cfg, rp, Options{Seed: rp.Seed(), BoxCount: rp.Boxes()})
	_, err = game.RunHeadless(again, rp, 0)
	require.NoError(t, err)

	assert.Equal(t, p.State().Score, again.State().Score)
	assert.Equal(t, p.State().Cleared, again.State().Cleared)
	require.Len(t, again.State().Boxes, len(p.State().Boxes))
	for i := range p.State().Boxes {
		assert.Equal(t, *p.State().Boxes[i], *again.State().Boxes[i])
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(5, 3)
	assert.True(t, r.IsRecording())

	ev := system.PointerPress(4, 5)
	ev.Mods = system.ModAlt
	r.RecordFrame(0.016, []system.Event{ev, system.Quit()})
	r.Stop()
	r.RecordFrame(0.016, nil)

	assert.Equal(t, 1, r.FrameCount())
	data := r.GetData()
	assert.Equal(t, int64(5), data.Seed)
	assert.Equal(t, 3, data.Boxes)
	assert.Equal(t, []replay.Press{{X: 4, Y: 5, M: uint8(system.ModAlt)}}, data.Frames[0].P)
	assert.True(t, data.Frames[0].Q)
	assert.Equal(t, 0.016, data.Frames[0].DT)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder(1, 1)
	err := r.Save(filepath.Join(t.TempDir(), "x.json"))
	assert.ErrorIs(t, err, replay.ErrNoFrames)
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}

// sourceFunc adapts a function to system.EventSource
type sourceFunc func() []system.Event

func (f sourceFunc) Poll() []system.Event { return f() }
