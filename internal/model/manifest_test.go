package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/railway-seat-tracker/internal/model"
)

func TestSimStatusPersisted(t *testing.T) {
	tests := []struct {
		sim      model.SimStatus
		status   model.SeatStatus
		verified bool
		ok       bool
	}{
		{model.SimOccupied, model.StatusConfirmed, true, true},
		{model.SimUnverified, model.StatusConfirmed, false, true},
		{model.SimReleased, model.StatusEmpty, false, true},
		{model.SimRAC, "", false, false}, // wait-list entries hold no seat record
		{model.SimStatus("bogus"), "", false, false},
	}
	for _, tt := range tests {
		status, verified, ok := tt.sim.Persisted()
		assert.Equal(t, tt.status, status, "status for %s", tt.sim)
		assert.Equal(t, tt.verified, verified, "verified for %s", tt.sim)
		assert.Equal(t, tt.ok, ok, "ok for %s", tt.sim)
	}
}
