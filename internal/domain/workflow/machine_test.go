package workflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_Check(t *testing.T) {
	approved := StatusApproved

	cases := []struct {
		name      string
		machine   Machine
		from, to  Status
		expected  *Status
		wantNoop  bool
		wantError error
	}{
		{name: "pending to approved", from: StatusPending, to: StatusApproved},
		{name: "pending to rejected", from: StatusPending, to: StatusRejected},
		{name: "rejected again is noop", from: StatusRejected, to: StatusRejected, wantNoop: true},
		{name: "approved again is noop", from: StatusApproved, to: StatusApproved, wantNoop: true},
		{name: "un-approve is illegal", from: StatusApproved, to: StatusRejected, wantError: ErrConflict},
		{name: "rejected to approved is illegal", from: StatusRejected, to: StatusApproved, wantError: ErrConflict},
		{name: "back to pending is invalid", from: StatusApproved, to: StatusPending, wantError: ErrValidation},
		{name: "overwrite flag allows un-approve", machine: Machine{AllowOverwrite: true}, from: StatusApproved, to: StatusRejected},
		{name: "stale expected token", from: StatusPending, to: StatusRejected, expected: &approved, wantError: ErrConflict},
		{name: "stale token wins over overwrite", machine: Machine{AllowOverwrite: true}, from: StatusRejected, to: StatusApproved, expected: &approved, wantError: ErrConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			noop, err := tc.machine.Check(tc.from, tc.to, tc.expected)
			if tc.wantError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantError), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantNoop, noop)
		})
	}
}

func TestParseAction_CaseInsensitive(t *testing.T) {
	a, err := ParseAction(" approve ")
	require.NoError(t, err)
	assert.Equal(t, ActionApprove, a)
	assert.Equal(t, StatusApproved, a.Target())

	a, err = ParseAction("Reject")
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, a.Target())

	_, err = ParseAction("cancel")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseExpected(t *testing.T) {
	s, err := ParseExpected("")
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = ParseExpected("pending")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, StatusPending, *s)

	_, err = ParseExpected("DONE")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStorage_PassesThroughDomainErrors(t *testing.T) {
	nf := NotFound("pet 9")
	assert.Same(t, nf, Storage("op", nf))

	cause := errors.New("disk I/O error")
	err := Storage("insert submission", cause)
	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "insert submission", se.Op)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk I/O error")

	assert.Nil(t, Storage("noop", nil))
}
