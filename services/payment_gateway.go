package services

import (
	"context"
	"math/rand/v2"
	"time"

	"hostel-backend/models"
)

// PaymentResult is what a gateway reports for one attempt. A decline is a
// normal result value, never an error.
type PaymentResult struct {
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`
}

// PaymentGateway abstracts the payment provider so a real integration can
// replace the simulation without touching the submitter.
type PaymentGateway interface {
	Attempt(ctx context.Context, reservation *models.Reservation) PaymentResult
}

// SimulatedGateway approves a weighted share of attempts at random. It stands
// in for a real provider in development and demos.
type SimulatedGateway struct {
	SuccessRate float64

	roll func() float64
}

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{SuccessRate: 0.9, roll: rand.Float64}
}

func (g *SimulatedGateway) Attempt(_ context.Context, _ *models.Reservation) PaymentResult {
	return PaymentResult{
		Success:   g.roll() < g.SuccessRate,
		Timestamp: time.Now().UTC(),
	}
}
