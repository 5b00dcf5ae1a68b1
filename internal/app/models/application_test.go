package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to ApplicationStatus
		allowed  bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusDisbursed, false},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusDisbursed, true},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusPending, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusDisbursed, false},
		{StatusDisbursed, StatusApproved, false},
		{StatusDisbursed, StatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusDisbursed))
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
}

func TestSchemeIsOpen(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	open := &Scheme{LastDate: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)}
	assert.True(t, open.IsOpen(now))

	// The deadline day itself still accepts applications.
	today := &Scheme{LastDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)}
	assert.True(t, today.IsOpen(now))

	closed := &Scheme{LastDate: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)}
	assert.False(t, closed.IsOpen(now))
}
