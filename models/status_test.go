package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusFoldsCase(t *testing.T) {
	status, ok := ParseRequestStatus(" pending ")
	require.True(t, ok)
	assert.Equal(t, RequestPending, status)

	op, ok := ParseOperationStatus("In_Progress")
	require.True(t, ok)
	assert.Equal(t, OperationInProgress, op)

	_, ok = ParseRequestStatus("ARCHIVED")
	assert.False(t, ok)
	_, ok = ParseOperationStatus("")
	assert.False(t, ok)
}

func TestAssignRescueRequestKeyPresence(t *testing.T) {
	var absent AssignRescueRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.Nil(t, absent.TeamIDs)
	assert.Nil(t, absent.VolunteerIDs)

	var empty AssignRescueRequest
	require.NoError(t, json.Unmarshal([]byte(`{"teamIds":"","volunteerIds":[]}`), &empty))
	require.NotNil(t, empty.TeamIDs)
	require.NotNil(t, empty.VolunteerIDs)
	assert.Empty(t, *empty.TeamIDs)
	assert.Empty(t, *empty.VolunteerIDs)

	var listed AssignRescueRequest
	require.NoError(t, json.Unmarshal([]byte(`{"teamIds":"3, 7"}`), &listed))
	require.NotNil(t, listed.TeamIDs)
	assert.Equal(t, IDList{"3", "7"}, *listed.TeamIDs)
}
