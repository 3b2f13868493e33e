package domain

import "time"

// Action is one of the four operations a module grant may allow.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Module names are the backend-assigned identifiers grants are keyed on.
// Lookups against them are case-sensitive.
const (
	ModuleExpenses   = "expenses"
	ModulePayslips   = "payslips"
	ModuleAgreements = "agreements"
	ModuleBanners    = "banners"
	ModuleCoupons    = "coupons"
	ModuleCurrencies = "currencies"
	ModuleEvents     = "events"
	ModuleNews       = "news"
	ModulePodcasts   = "podcasts"
	ModuleMembers    = "members"
)

// Grant lists the actions a member may perform against one module.
type Grant struct {
	Module  string   `json:"module" bson:"module"`
	Actions []Action `json:"actions" bson:"actions"`
}

// Session is the server-side state created at login and destroyed at logout.
// It is read-mostly: nothing mutates it between those two points.
type Session struct {
	ID          string    `json:"id"`
	MemberID    string    `json:"member_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Grants      []Grant   `json:"grants"`
	LoggedInAt  time.Time `json:"logged_in_at"`
}

// Allows reports whether the session may perform action against module.
// A missing session, unknown module, or unknown action denies. The admin
// role bypasses the grant lookup entirely.
func (s *Session) Allows(module string, action Action) bool {
	if s == nil {
		return false
	}
	if s.Role == RoleAdmin {
		return true
	}
	for _, g := range s.Grants {
		if g.Module != module {
			continue
		}
		for _, a := range g.Actions {
			if a == action {
				return true
			}
		}
		return false
	}
	return false
}
