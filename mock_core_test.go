package egl

import "time"

// mockCore is a Core test double that records every call it receives.
// Tests pre-load return values and assert on the recorded calls.
type mockCore struct {
	// Surface creation.
	nextSurface    NativeSurface
	createErr      error
	offscreenCalls [][2]int
	windowCalls    []NativeWindow

	// Attribute queries.
	queryCalls []queryCall
	querySize  map[SurfaceAttrib]int
	queryErr   error

	// Release.
	releaseCalls []NativeSurface
	releaseErr   error

	// Binding.
	current          NativeSurface
	makeCurrentCalls []NativeSurface
	dualCalls        [][2]NativeSurface
	nothingCalls     int
	bindErr          error

	// Frame submission and timing.
	swapCalls    []NativeSurface
	presentCalls []presentCall

	// Readback.
	readCalls  int
	readFill   func(dst []byte, width, height int)
	readErr    error
	lastReadWH [2]int
}

type queryCall struct {
	surf NativeSurface
	attr SurfaceAttrib
}

type presentCall struct {
	surf NativeSurface
	t    time.Duration
}

var _ Core = (*mockCore)(nil)

func newMockCore() *mockCore {
	return &mockCore{
		nextSurface: 0x1000,
		querySize:   make(map[SurfaceAttrib]int),
	}
}

func (m *mockCore) CreateOffscreenSurface(width, height int) (NativeSurface, error) {
	if m.createErr != nil {
		return NoSurface, m.createErr
	}
	m.offscreenCalls = append(m.offscreenCalls, [2]int{width, height})
	return m.nextSurface, nil
}

func (m *mockCore) CreateWindowSurface(win NativeWindow) (NativeSurface, error) {
	if m.createErr != nil {
		return NoSurface, m.createErr
	}
	m.windowCalls = append(m.windowCalls, win)
	return m.nextSurface, nil
}

func (m *mockCore) QuerySurface(s NativeSurface, attr SurfaceAttrib) (int, error) {
	m.queryCalls = append(m.queryCalls, queryCall{surf: s, attr: attr})
	if m.queryErr != nil {
		return 0, m.queryErr
	}
	return m.querySize[attr], nil
}

func (m *mockCore) ReleaseSurface(s NativeSurface) error {
	m.releaseCalls = append(m.releaseCalls, s)
	return m.releaseErr
}

func (m *mockCore) MakeCurrent(s NativeSurface) error {
	if m.bindErr != nil {
		return m.bindErr
	}
	m.makeCurrentCalls = append(m.makeCurrentCalls, s)
	m.current = s
	return nil
}

func (m *mockCore) MakeCurrentReadFrom(draw, read NativeSurface) error {
	if m.bindErr != nil {
		return m.bindErr
	}
	m.dualCalls = append(m.dualCalls, [2]NativeSurface{draw, read})
	m.current = draw
	return nil
}

func (m *mockCore) MakeNothingCurrent() error {
	m.nothingCalls++
	m.current = NoSurface
	return nil
}

func (m *mockCore) IsCurrent(s NativeSurface) bool {
	return s.IsValid() && s == m.current
}

func (m *mockCore) SwapBuffers(s NativeSurface) error {
	m.swapCalls = append(m.swapCalls, s)
	return nil
}

func (m *mockCore) SetPresentationTime(s NativeSurface, t time.Duration) error {
	m.presentCalls = append(m.presentCalls, presentCall{surf: s, t: t})
	return nil
}

func (m *mockCore) ReadPixels(dst []byte, width, height int) error {
	m.readCalls++
	m.lastReadWH = [2]int{width, height}
	if m.readErr != nil {
		return m.readErr
	}
	if m.readFill != nil {
		m.readFill(dst, width, height)
	}
	return nil
}

// mockProducer is a TextureProducer test double.
type mockProducer struct {
	win NativeWindow
}

func (p *mockProducer) NativeWindow() NativeWindow { return p.win }
