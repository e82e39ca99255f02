package service

import (
	"sort"

	"github.com/nurseguard/backend/internal/engine"
	"github.com/nurseguard/backend/pkg/model"
)

// Room statuses, ordered by urgency.
const (
	RoomStatusNormal   = "normal"
	RoomStatusWatch    = "watch"
	RoomStatusCritical = "critical"
)

// RoomStatus is one tile on the rooms page: the occupant plus the state
// derived from unacknowledged live alerts.
type RoomStatus struct {
	Room        int          `json:"room"`
	Ward        string       `json:"ward"`
	PatientID   string       `json:"patientId"`
	PatientName string       `json:"patientName"`
	Status      string       `json:"status"`
	ActiveAlert *model.Alert `json:"activeAlert,omitempty"`
	RiskScore   int          `json:"riskScore"`
	RiskLabel   string       `json:"riskLabel"`
}

// Rooms derives per-room state from the patient roster, the live alerts and
// the risk scores. A room with an unacknowledged high alert is critical; any
// other unacknowledged alert puts it on watch.
func (s *MonitoringService) Rooms() []RoomStatus {
	s.mu.RLock()
	live := make([]model.Alert, len(s.live))
	copy(live, s.live)
	risks := make(map[string]model.RiskScore, len(s.risks))
	for id, score := range s.risks {
		risks[id] = score
	}
	s.mu.RUnlock()

	// Newest unacknowledged alert per room wins.
	activeByRoom := make(map[int]model.Alert)
	for _, alert := range live {
		if alert.Acknowledged {
			continue
		}
		if _, seen := activeByRoom[alert.RoomNumber]; !seen {
			activeByRoom[alert.RoomNumber] = alert
		}
	}

	patients := engine.Patients()
	rooms := make([]RoomStatus, 0, len(patients))
	for _, patient := range patients {
		status := RoomStatus{
			Room:        patient.Room,
			Ward:        patient.Ward,
			PatientID:   patient.ID,
			PatientName: patient.Name,
			Status:      RoomStatusNormal,
		}
		if risk, ok := risks[patient.ID]; ok {
			status.RiskScore = risk.Score
			status.RiskLabel = risk.Label
		}
		if alert, ok := activeByRoom[patient.Room]; ok {
			a := alert
			status.ActiveAlert = &a
			if alert.SeverityLevel == model.SeverityHigh {
				status.Status = RoomStatusCritical
			} else {
				status.Status = RoomStatusWatch
			}
		}
		rooms = append(rooms, status)
	}

	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Room < rooms[j].Room })
	return rooms
}
