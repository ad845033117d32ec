package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusDraft, StatusGenerated},
		{StatusDraft, StatusApproved},
		{StatusDraft, StatusProcessed},
		{StatusGenerated, StatusApproved},
		{StatusGenerated, StatusProcessed},
		{StatusApproved, StatusPaid},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct{ from, to Status }{
		{StatusGenerated, StatusDraft},
		{StatusApproved, StatusDraft},
		{StatusApproved, StatusProcessed},
		{StatusPaid, StatusApproved},
		{StatusPaid, StatusDraft},
		{StatusProcessed, StatusPaid},
		{StatusDraft, StatusPaid},
	}
	for _, tc := range denied {
		assert.False(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be denied", tc.from, tc.to)
	}
}

func TestStatusLockState(t *testing.T) {
	assert.True(t, StatusDraft.Open())
	assert.True(t, StatusGenerated.Open())
	assert.False(t, StatusApproved.Open())

	assert.True(t, StatusApproved.Locked())
	assert.True(t, StatusPaid.Locked())
	assert.True(t, StatusProcessed.Locked())
	assert.False(t, StatusDraft.Locked())
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusGenerated, StatusApproved, StatusPaid, StatusProcessed} {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}
