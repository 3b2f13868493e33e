package domain

import "testing"

func TestSessionAllows_AdminBypass(t *testing.T) {
	sess := &Session{Role: RoleAdmin}

	if !sess.Allows(ModuleExpenses, ActionDelete) {
		t.Fatalf("admin should be allowed everything")
	}
	if !sess.Allows("unknown-module", ActionCreate) {
		t.Fatalf("admin should pass even for unknown modules")
	}
}

func TestSessionAllows_GrantedAction(t *testing.T) {
	sess := &Session{
		Role: RoleStaff,
		Grants: []Grant{
			{Module: ModuleExpenses, Actions: []Action{ActionRead, ActionCreate}},
		},
	}

	if !sess.Allows(ModuleExpenses, ActionRead) {
		t.Fatalf("granted action should be allowed")
	}
	if sess.Allows(ModuleExpenses, ActionDelete) {
		t.Fatalf("ungranted action should be denied")
	}
	if sess.Allows(ModulePayslips, ActionRead) {
		t.Fatalf("ungranted module should be denied")
	}
}

func TestSessionAllows_NilSession(t *testing.T) {
	var sess *Session
	if sess.Allows(ModuleExpenses, ActionRead) {
		t.Fatalf("nil session should be denied")
	}
}
