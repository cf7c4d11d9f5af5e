package models

import "fmt"

// AccountStanding is the combined role + approval state of an account.
//
// The storage layer keeps two columns (role, agent_status) for compatibility
// with the public API shape, but internally every authorization decision is
// made against this single variant so that impossible combinations (an AGENT
// that was never approved, a CLIENT marked suspended) are unrepresentable.
type AccountStanding int

const (
	StandingClient AccountStanding = iota
	StandingPendingAgent
	StandingApprovedAgent
	StandingRejectedAgent
	StandingSuspendedAgent
	StandingAdmin
	StandingSuperAdmin
)

func (s AccountStanding) String() string {
	switch s {
	case StandingClient:
		return "client"
	case StandingPendingAgent:
		return "pending_agent"
	case StandingApprovedAgent:
		return "approved_agent"
	case StandingRejectedAgent:
		return "rejected_agent"
	case StandingSuspendedAgent:
		return "suspended_agent"
	case StandingAdmin:
		return "admin"
	case StandingSuperAdmin:
		return "super_admin"
	}
	return fmt.Sprintf("AccountStanding(%d)", int(s))
}

// StandingFrom maps the two stored columns onto the variant. Combinations the
// state machine can never produce are rejected.
func StandingFrom(role Role, status AgentStatus) (AccountStanding, error) {
	switch role {
	case RoleAdmin:
		return StandingAdmin, nil
	case RoleSuperAdmin:
		return StandingSuperAdmin, nil
	case RoleAgent:
		switch status {
		case AgentApproved:
			return StandingApprovedAgent, nil
		case AgentSuspended:
			return StandingSuspendedAgent, nil
		}
		return 0, fmt.Errorf("agent role with agent_status %q", status)
	case RoleClient:
		switch status {
		case AgentNotRequested:
			return StandingClient, nil
		case AgentPending:
			return StandingPendingAgent, nil
		case AgentRejected:
			return StandingRejectedAgent, nil
		}
		return 0, fmt.Errorf("client role with agent_status %q", status)
	}
	return 0, fmt.Errorf("unknown role %q", role)
}

// Project returns the two columns the storage layer persists for a standing.
func (s AccountStanding) Project() (Role, AgentStatus) {
	switch s {
	case StandingPendingAgent:
		return RoleClient, AgentPending
	case StandingApprovedAgent:
		return RoleAgent, AgentApproved
	case StandingRejectedAgent:
		return RoleClient, AgentRejected
	case StandingSuspendedAgent:
		return RoleAgent, AgentSuspended
	case StandingAdmin:
		return RoleAdmin, AgentNotRequested
	case StandingSuperAdmin:
		return RoleSuperAdmin, AgentNotRequested
	}
	return RoleClient, AgentNotRequested
}

// IsAdmin reports whether the standing carries administrative privileges.
func (s AccountStanding) IsAdmin() bool {
	return s == StandingAdmin || s == StandingSuperAdmin
}

// CanPublish reports whether the standing may create listings.
func (s AccountStanding) CanPublish() bool {
	return s == StandingApprovedAgent || s.IsAdmin()
}

// Suspended reports whether the account must be blocked at the identity layer.
func (s AccountStanding) Suspended() bool {
	return s == StandingSuspendedAgent
}
