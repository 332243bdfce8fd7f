package tui

import "github.com/MKhiriev/franny-sync/internal/client"

// viewMsg carries a state change published by the control loop.
type viewMsg struct {
	view client.View
}
