package services

import (
	"context"
	"testing"
)

func TestSimulatedGatewayWeighting(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		roll float64
		want bool
	}{
		{name: "roll under rate approves", rate: 0.9, roll: 0.5, want: true},
		{name: "roll over rate declines", rate: 0.9, roll: 0.95, want: false},
		{name: "rate zero always declines", rate: 0, roll: 0.0001, want: false},
		{name: "rate one always approves", rate: 1, roll: 0.9999, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &SimulatedGateway{SuccessRate: tc.rate, roll: func() float64 { return tc.roll }}
			result := g.Attempt(context.Background(), nil)
			if result.Success != tc.want {
				t.Fatalf("success = %v, want %v", result.Success, tc.want)
			}
			if result.Timestamp.IsZero() {
				t.Error("result must carry a timestamp")
			}
		})
	}
}
