package realtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	messages [][]byte
	fail     bool
}

func (f *fakeClient) WriteMessage(messageType int, data []byte) error {
	if f.fail {
		return errors.New("koneksi putus")
	}
	f.messages = append(f.messages, data)
	return nil
}

func TestBroadcastDataUpdated(t *testing.T) {
	hub := NewHub()
	a, b := &fakeClient{}, &fakeClient{}
	hub.Register(a)
	hub.Register(b)

	hub.BroadcastDataUpdated()

	require.Len(t, a.messages, 1)
	require.Len(t, b.messages, 1)
	assert.JSONEq(t, `{"event":"data_updated"}`, string(a.messages[0]))
}

func TestBroadcastDropsFailedClient(t *testing.T) {
	hub := NewHub()
	ok, broken := &fakeClient{}, &fakeClient{fail: true}
	hub.Register(ok)
	hub.Register(broken)

	hub.BroadcastDataUpdated()

	assert.Equal(t, 1, hub.ClientCount())
	assert.Len(t, ok.messages, 1)

	// siaran berikutnya tetap jalan tanpa klien yang putus
	hub.BroadcastDataUpdated()
	assert.Len(t, ok.messages, 2)
}

func TestRelaySkipsOrigin(t *testing.T) {
	hub := NewHub()
	origin, other := &fakeClient{}, &fakeClient{}
	hub.Register(origin)
	hub.Register(other)

	hub.RelayDataUpdated(origin)

	assert.Empty(t, origin.messages)
	assert.Len(t, other.messages, 1)
}

func TestUnregister(t *testing.T) {
	hub := NewHub()
	c := &fakeClient{}
	hub.Register(c)
	hub.Unregister(c)

	hub.BroadcastDataUpdated()
	assert.Empty(t, c.messages)
	assert.Zero(t, hub.ClientCount())
}
