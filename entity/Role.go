package entity

type Role string

const (
	RoleFarmer        Role = "farmer"
	RoleBuyer         Role = "buyer"
	RoleAdmin         Role = "admin"
	RoleAgentQuality  Role = "agent_quality"
	RoleAgentDelivery Role = "agent_delivery"
)

func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleBuyer, RoleAdmin, RoleAgentQuality, RoleAgentDelivery:
		return true
	}
	return false
}

// IsAgent reports whether the role belongs to a field agent.
func (r Role) IsAgent() bool {
	return r == RoleAgentQuality || r == RoleAgentDelivery
}

// AgentKind maps an agent role to the kind stored on its profile.
func (r Role) AgentKind() AgentKind {
	switch r {
	case RoleAgentQuality:
		return AgentQuality
	case RoleAgentDelivery:
		return AgentDelivery
	}
	return ""
}
