// SPDX-License-Identifier: Unlicense OR MIT

package glfw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-gfx/glfw/internal/native"
)

func TestMonitorEnumeration(t *testing.T) {
	el, _ := newTestLoop(t)

	mons := el.Monitors()
	require.Len(t, mons, 1)
	assert.Equal(t, "Null Display 0", mons[0].Name())

	primary := el.PrimaryMonitor()
	require.NotNil(t, primary)
	assert.Equal(t, mons[0].Name(), primary.Name())
}

func TestMonitorProperties(t *testing.T) {
	el, _ := newTestLoop(t)
	m := el.PrimaryMonitor()
	require.NotNil(t, m)

	mode, err := m.VideoMode()
	require.NoError(t, err)
	assert.Equal(t, 1920, mode.Width)
	assert.Equal(t, 1080, mode.Height)
	assert.Equal(t, 60, mode.RefreshRate)

	modes, err := m.VideoModes()
	require.NoError(t, err)
	assert.NotEmpty(t, modes)

	wMM, hMM, err := m.PhysicalSize()
	require.NoError(t, err)
	assert.Greater(t, wMM, 0)
	assert.Greater(t, hMM, 0)

	sx, sy, err := m.ContentScale()
	require.NoError(t, err)
	assert.Equal(t, float32(1), sx)
	assert.Equal(t, float32(1), sy)

	area, err := m.Workarea()
	require.NoError(t, err)
	assert.Equal(t, 1920, area.Dx())

	require.NoError(t, m.SetGamma(2.2))
}

func TestMonitorHotplug(t *testing.T) {
	el, backend := newTestLoop(t)
	require.Len(t, el.Monitors(), 1)

	h := backend.ConnectMonitor("Side Display", native.VidMode{Width: 2560, Height: 1440, RefreshRate: 144})

	evs := el.PollEvents()
	require.Len(t, evs, 1)
	me, ok := evs[0].Event.(MonitorEvent)
	require.True(t, ok)
	assert.True(t, me.Connected)
	assert.Equal(t, MonitorID(h), me.Monitor)

	mons := el.Monitors()
	require.Len(t, mons, 2)

	backend.DisconnectMonitor(h)
	evs = el.PollEvents()
	require.Len(t, evs, 1)
	me, ok = evs[0].Event.(MonitorEvent)
	require.True(t, ok)
	assert.False(t, me.Connected)

	assert.Len(t, el.Monitors(), 1)
}

func TestStaleMonitorQueries(t *testing.T) {
	el, backend := newTestLoop(t)
	h := backend.ConnectMonitor("Flaky", native.VidMode{Width: 640, Height: 480, RefreshRate: 60})
	el.PollEvents()

	var flaky *Monitor
	for _, m := range el.Monitors() {
		if m.Name() == "Flaky" {
			flaky = m
		}
	}
	require.NotNil(t, flaky)
	require.True(t, el.MonitorConnected(flaky))

	backend.DisconnectMonitor(h)
	el.PollEvents()

	assert.False(t, el.MonitorConnected(flaky))
	// The cached name survives; every live query fails cleanly.
	assert.Equal(t, "Flaky", flaky.Name())

	_, err := flaky.VideoMode()
	assert.ErrorIs(t, err, ErrMonitorDisconnected)
	_, err = flaky.Pos()
	assert.ErrorIs(t, err, ErrMonitorDisconnected)
	_, _, err = flaky.PhysicalSize()
	assert.ErrorIs(t, err, ErrMonitorDisconnected)
	assert.ErrorIs(t, flaky.SetGamma(1.8), ErrMonitorDisconnected)
}

func TestMonitorRegistryTracksDisconnectDuringPump(t *testing.T) {
	el, backend := newTestLoop(t)
	h := backend.ConnectMonitor("Transient", native.VidMode{Width: 800, Height: 600, RefreshRate: 60})
	el.PollEvents()

	// Disconnect and reconnect before a single pump; both events are
	// observed in order and the registry ends consistent.
	backend.DisconnectMonitor(h)
	h2 := backend.ConnectMonitor("Transient", native.VidMode{Width: 800, Height: 600, RefreshRate: 60})

	evs := el.PollEvents()
	require.Len(t, evs, 2)
	first := evs[0].Event.(MonitorEvent)
	second := evs[1].Event.(MonitorEvent)
	assert.False(t, first.Connected)
	assert.True(t, second.Connected)
	assert.True(t, el.monitors.contains(h2))
	assert.False(t, el.monitors.contains(h))
}
