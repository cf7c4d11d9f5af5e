package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandingFrom(t *testing.T) {
	cases := []struct {
		role   Role
		status AgentStatus
		want   AccountStanding
	}{
		{RoleClient, AgentNotRequested, StandingClient},
		{RoleClient, AgentPending, StandingPendingAgent},
		{RoleClient, AgentRejected, StandingRejectedAgent},
		{RoleAgent, AgentApproved, StandingApprovedAgent},
		{RoleAgent, AgentSuspended, StandingSuspendedAgent},
		{RoleAdmin, AgentNotRequested, StandingAdmin},
		{RoleSuperAdmin, AgentNotRequested, StandingSuperAdmin},
	}
	for _, c := range cases {
		got, err := StandingFrom(c.role, c.status)
		require.NoError(t, err)
		require.Equal(t, c.want, got)
	}
}

func TestStandingFromImpossibleCombos(t *testing.T) {
	impossible := []struct {
		role   Role
		status AgentStatus
	}{
		{RoleAgent, AgentNotRequested},
		{RoleAgent, AgentPending},
		{RoleAgent, AgentRejected},
		{RoleClient, AgentApproved},
		{RoleClient, AgentSuspended},
		{Role("GHOST"), AgentNotRequested},
	}
	for _, c := range impossible {
		_, err := StandingFrom(c.role, c.status)
		require.Error(t, err, "role=%s status=%s", c.role, c.status)
	}
}

func TestStandingProjectionRoundTrip(t *testing.T) {
	standings := []AccountStanding{
		StandingClient, StandingPendingAgent, StandingApprovedAgent,
		StandingRejectedAgent, StandingSuspendedAgent, StandingAdmin, StandingSuperAdmin,
	}
	for _, s := range standings {
		role, status := s.Project()
		back, err := StandingFrom(role, status)
		require.NoError(t, err)
		require.Equal(t, s, back)
	}
}

func TestStandingPredicates(t *testing.T) {
	require.True(t, StandingApprovedAgent.CanPublish())
	require.True(t, StandingAdmin.CanPublish())
	require.True(t, StandingSuperAdmin.CanPublish())
	require.False(t, StandingClient.CanPublish())
	require.False(t, StandingPendingAgent.CanPublish())
	require.False(t, StandingSuspendedAgent.CanPublish())

	require.True(t, StandingSuspendedAgent.Suspended())
	require.False(t, StandingApprovedAgent.Suspended())

	require.True(t, StandingAdmin.IsAdmin())
	require.True(t, StandingSuperAdmin.IsAdmin())
	require.False(t, StandingApprovedAgent.IsAdmin())
}

func TestCategoryRequiresRooms(t *testing.T) {
	require.True(t, CategoryHouse.RequiresRooms())
	require.True(t, CategoryApartment.RequiresRooms())
	require.True(t, CategoryFarm.RequiresRooms())
	require.True(t, CategoryOffice.RequiresRooms())

	require.False(t, CategoryLand.RequiresRooms())
	require.False(t, CategoryCamping.RequiresRooms())
	require.False(t, CategoryCommercial.RequiresRooms())
}
