package service_manager

import (
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"math"
	"math/rand/v2"
)

const (
	upWeight       = 0.7
	degradedWeight = 0.2

	maxUpStep       = 0.5
	maxDegradedStep = 1.0
	maxDownStep     = 5.0

	degradedFloor = 85.0
	downFloor     = 70.0
)

// Heuristic estimates service status when no monitor integration can be reached.
type Heuristic struct {
	float func() float64
}

// NewHeuristic uses float as its source of values in [0, 1). A nil float uses math/rand/v2.
func NewHeuristic(float func() float64) *Heuristic {
	if float == nil {
		float = rand.Float64
	}
	return &Heuristic{float: float}
}

// Next draws an outcome (70% up, 20% degraded, 10% down) and the uptime that goes with it.
func (h *Heuristic) Next(uptime float64) (string, float64) {
	var status string
	switch r := h.float(); {
	case r < upWeight:
		status = model.ServiceStatusUp
	case r < upWeight+degradedWeight:
		status = model.ServiceStatusDegraded
	default:
		status = model.ServiceStatusDown
	}
	return status, h.Adjust(status, uptime)
}

// Adjust nudges uptime toward status and rounds it to one decimal.
// up never lowers the value. degraded and down never leave it under their floor.
func (h *Heuristic) Adjust(status string, uptime float64) float64 {
	uptime = model.ClampUptime(uptime)
	switch status {
	case model.ServiceStatusUp:
		return math.Min(100, math.Max(uptime, ceil1(uptime+h.float()*maxUpStep)))
	case model.ServiceStatusDegraded:
		return floor1(decrease(uptime, h.float()*maxDegradedStep, degradedFloor))
	case model.ServiceStatusDown:
		return floor1(decrease(uptime, h.float()*maxDownStep, downFloor))
	default:
		return uptime
	}
}

// decrease lowers v by d but not below floor. A value already under floor is lifted to it.
func decrease(v, d, floor float64) float64 {
	return math.Max(floor, v-d)
}

func ceil1(v float64) float64 {
	return math.Ceil(v*10-1e-9) / 10
}

func floor1(v float64) float64 {
	return math.Floor(v*10+1e-9) / 10
}
