package keyboard_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peppapig450/logitech-led-control/keyboard"
)

// fakeTransport records every written report and can fail on demand.
type fakeTransport struct {
	writes   [][]byte
	writeErr error
	closed   int
}

func (f *fakeTransport) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	buf := make([]byte, len(p))
	copy(buf, p)
	f.writes = append(f.writes, buf)
	return len(p), nil
}

func (f *fakeTransport) Close() error {
	f.closed++
	return nil
}

type recordingRaw struct {
	packets [][]byte
}

func (r *recordingRaw) Log(in bool, data []byte) {
	buf := make([]byte, len(data))
	copy(buf, data)
	r.packets = append(r.packets, buf)
}

func newTestSession(t *testing.T, modelName string, tr *fakeTransport, raw keyboard.RawLogger) *keyboard.Session {
	t.Helper()
	info := keyboard.DeviceInfo{
		VendorID:  keyboard.LogitechVendorID,
		ProductID: model(t, modelName).ProductIDs[0],
		Model:     model(t, modelName),
	}
	return keyboard.NewSession(info, tr, raw)
}

func TestSessionCommit(t *testing.T) {
	tr := &fakeTransport{}
	s := newTestSession(t, "G810", tr, nil)

	require.NoError(t, s.Commit())
	require.Len(t, tr.writes, 1)

	expected := make([]byte, keyboard.ShortReportSize)
	copy(expected, []byte{0x11, 0xff, 0x0c, 0x5a})
	assert.Equal(t, expected, tr.writes[0])
}

func TestSessionCommitNoOpWithoutRegister(t *testing.T) {
	tr := &fakeTransport{}
	s := newTestSession(t, "G213", tr, nil)

	require.NoError(t, s.Commit())
	assert.Empty(t, tr.writes)
}

func TestSessionSetKeyWritesReport(t *testing.T) {
	tr := &fakeTransport{}
	raw := &recordingRaw{}
	s := newTestSession(t, "G910", tr, raw)

	require.NoError(t, s.SetKey(keyboard.KeyA, keyboard.Color{R: 0xff}))
	require.Len(t, tr.writes, 1)
	assert.Len(t, tr.writes[0], keyboard.LongReportSize)
	assert.Equal(t, tr.writes, raw.packets, "raw tracer sees the same bytes")
}

func TestSessionWriteErrorWrapped(t *testing.T) {
	cause := errors.New("pipe broke")
	tr := &fakeTransport{writeErr: cause}
	s := newTestSession(t, "G810", tr, nil)

	err := s.SetAll(keyboard.ColorWhite)
	require.Error(t, err)
	assert.True(t, errors.Is(err, keyboard.ErrIO))
	assert.True(t, errors.Is(err, cause), "original cause stays reachable")
}

func TestSessionCloseIdempotent(t *testing.T) {
	tr := &fakeTransport{}
	s := newTestSession(t, "G810", tr, nil)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 1, tr.closed)
}

func TestSessionSendAfterClose(t *testing.T) {
	tr := &fakeTransport{}
	s := newTestSession(t, "G810", tr, nil)
	require.NoError(t, s.Close())

	err := s.Commit()
	require.Error(t, err)
	assert.True(t, errors.Is(err, keyboard.ErrIO))
	assert.Empty(t, tr.writes)
}

func TestSessionInvalidRegionWritesNothing(t *testing.T) {
	tr := &fakeTransport{}
	s := newTestSession(t, "G213", tr, nil)

	err := s.SetRegion(9, keyboard.ColorWhite)
	require.Error(t, err)
	assert.True(t, errors.Is(err, keyboard.ErrInvalidGroupOrRegion))
	assert.Empty(t, tr.writes)
}

func TestSessionUnsupportedOpsNoOp(t *testing.T) {
	tr := &fakeTransport{}
	s := newTestSession(t, "G810", tr, nil)

	require.NoError(t, s.SetMRKey(1))
	require.NoError(t, s.SetGKeysMode(1))
	require.NoError(t, s.SetOnBoardMode(keyboard.OnBoardModeBoard))
	assert.Empty(t, tr.writes, "boards without the register take no packets")
}

func TestSessionEffectSequenceOrder(t *testing.T) {
	tr := &fakeTransport{}
	s := newTestSession(t, "G815", tr, nil)

	require.NoError(t, s.SetEffect(keyboard.NativeEffect{
		Effect: keyboard.EffectCycle,
		Part:   keyboard.EffectPartKeys,
		Period: 8 * time.Second,
	}))
	require.Len(t, tr.writes, 2)
	assert.Equal(t, []byte{0x11, 0xff, 0x0f, 0x5c}, tr.writes[0][:4], "set-up report first")
	assert.Equal(t, []byte{0x11, 0xff, 0x0f, 0x1c}, tr.writes[1][:4])
}
