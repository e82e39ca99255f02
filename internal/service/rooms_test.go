package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurseguard/backend/internal/engine"
	"github.com/nurseguard/backend/pkg/model"
)

func TestRooms_OneTilePerPatientSortedByRoom(t *testing.T) {
	svc, _, _, _ := newTestMonitor(10)

	rooms := svc.Rooms()
	require.Len(t, rooms, len(engine.Patients()))

	for i := 1; i < len(rooms); i++ {
		assert.Less(t, rooms[i-1].Room, rooms[i].Room)
	}
	for _, room := range rooms {
		assert.NotEmpty(t, room.PatientName)
		assert.NotEmpty(t, room.RiskLabel)
	}
}

func TestRooms_UnacknowledgedAlertDrivesStatus(t *testing.T) {
	svc, _, _, _ := newTestMonitor(11)

	live := svc.LiveAlerts()
	require.NotEmpty(t, live)

	byRoom := make(map[int]RoomStatus)
	for _, room := range svc.Rooms() {
		byRoom[room.Room] = room
	}

	for _, alert := range live {
		room, ok := byRoom[alert.RoomNumber]
		require.True(t, ok)
		require.NotNil(t, room.ActiveAlert)
		if room.ActiveAlert.SeverityLevel == model.SeverityHigh {
			assert.Equal(t, RoomStatusCritical, room.Status)
		} else {
			assert.Equal(t, RoomStatusWatch, room.Status)
		}
	}
}

func TestRooms_AcknowledgingClearsStatus(t *testing.T) {
	svc, _, _, clock := newTestMonitor(12)

	svc.Start()
	clock.Advance(2 * time.Second)

	for _, alert := range svc.LiveAlerts() {
		_, err := svc.Acknowledge(alert.ID)
		require.NoError(t, err)
	}

	for _, room := range svc.Rooms() {
		assert.Equal(t, RoomStatusNormal, room.Status)
		assert.Nil(t, room.ActiveAlert)
	}
}
