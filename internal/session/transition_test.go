package session_test

import (
	"errors"
	"reflect"
	"testing"

	"internconnect/internal/session"
)

func mustTransition(t *testing.T, s session.State, a session.Action) session.State {
	t.Helper()
	next, err := session.Transition(s, a)
	if err != nil {
		t.Fatalf("Transition(%+v, %#v) returned unexpected error: %v", s, a, err)
	}
	return next
}

// ── Parse helpers ──────────────────────────────────────────────────────────

func TestParseTab(t *testing.T) {
	for _, s := range []string{"login", "dashboard", "profile", "projects", "opportunities", "recruiter"} {
		got, err := session.ParseTab(s)
		if err != nil || string(got) != s {
			t.Errorf("ParseTab(%q) = %q, %v", s, got, err)
		}
	}
	if _, err := session.ParseTab("settings"); !errors.Is(err, session.ErrUnknownTab) {
		t.Errorf("ParseTab(\"settings\") expected ErrUnknownTab, got %v", err)
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"student", "recruiter"} {
		if _, err := session.ParseRole(s); err != nil {
			t.Errorf("ParseRole(%q) returned unexpected error: %v", s, err)
		}
	}
	for _, s := range []string{"", "admin", "Student"} {
		if _, err := session.ParseRole(s); !errors.Is(err, session.ErrUnknownRole) {
			t.Errorf("ParseRole(%q) expected ErrUnknownRole, got %v", s, err)
		}
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := session.ParsePolicy("open"); err != nil || p != session.PolicyOpen {
		t.Errorf("ParsePolicy(open) = %q, %v", p, err)
	}
	if _, err := session.ParsePolicy("strict"); !errors.Is(err, session.ErrUnknownPolicy) {
		t.Errorf("expected ErrUnknownPolicy, got %v", err)
	}
}

// ── Login / Logout ─────────────────────────────────────────────────────────

func TestNew_StartsAtLogin(t *testing.T) {
	s := session.New(session.PolicyGuarded)
	if s.Tab != session.TabLogin || s.LoggedIn() || s.Query != "" {
		t.Errorf("unexpected initial state %+v", s)
	}
}

func TestLogin_LandsOnHomeTab(t *testing.T) {
	cases := []struct {
		role session.Role
		want session.Tab
	}{
		{session.RoleStudent, session.TabDashboard},
		{session.RoleRecruiter, session.TabRecruiter},
	}
	for _, policy := range []session.Policy{session.PolicyGuarded, session.PolicyOpen} {
		for _, tc := range cases {
			s := mustTransition(t, session.New(policy), session.Login{Role: tc.role})
			if s.Tab != tc.want || s.Role != tc.role {
				t.Errorf("[%s] Login(%s) -> %+v, want tab %s", policy, tc.role, s, tc.want)
			}
		}
	}
}

func TestLogin_UnknownRoleLeavesStateUnchanged(t *testing.T) {
	start := session.New(session.PolicyGuarded)
	next, err := session.Transition(start, session.Login{Role: "admin"})
	if !errors.Is(err, session.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
	if next != start {
		t.Errorf("state changed on error: %+v", next)
	}
}

func TestLogout_ClearsRoleAndQuery(t *testing.T) {
	s := mustTransition(t, session.New(session.PolicyOpen), session.Login{Role: session.RoleStudent})
	s = mustTransition(t, s, session.SetQuery{Query: "ai"})
	s = mustTransition(t, s, session.Logout{})

	if want := session.New(session.PolicyOpen); s != want {
		t.Errorf("after logout got %+v, want %+v", s, want)
	}
}

func TestSelectLogin_ActsAsLogout(t *testing.T) {
	s := mustTransition(t, session.New(session.PolicyGuarded), session.Login{Role: session.RoleRecruiter})
	s = mustTransition(t, s, session.SelectTab{Tab: session.TabLogin})
	if s.Tab != session.TabLogin || s.LoggedIn() {
		t.Errorf("SelectTab(login) -> %+v, want logged out", s)
	}
}

// ── SelectTab — guarded policy ─────────────────────────────────────────────

func TestGuarded_RequiresLogin(t *testing.T) {
	start := session.New(session.PolicyGuarded)
	for _, tab := range []session.Tab{
		session.TabDashboard, session.TabProfile, session.TabProjects,
		session.TabOpportunities, session.TabRecruiter,
	} {
		next, err := session.Transition(start, session.SelectTab{Tab: tab})
		if !errors.Is(err, session.ErrLoginRequired) {
			t.Errorf("SelectTab(%s) before login: expected ErrLoginRequired, got %v", tab, err)
		}
		if next != start {
			t.Errorf("SelectTab(%s) changed state on error: %+v", tab, next)
		}
	}
}

func TestGuarded_RoleAccess(t *testing.T) {
	cases := []struct {
		role    session.Role
		tab     session.Tab
		allowed bool
	}{
		{session.RoleStudent, session.TabDashboard, true},
		{session.RoleStudent, session.TabProfile, true},
		{session.RoleStudent, session.TabProjects, true},
		{session.RoleStudent, session.TabOpportunities, true},
		{session.RoleStudent, session.TabRecruiter, false},
		{session.RoleRecruiter, session.TabRecruiter, true},
		{session.RoleRecruiter, session.TabProjects, true},
		{session.RoleRecruiter, session.TabDashboard, false},
		{session.RoleRecruiter, session.TabProfile, false},
		{session.RoleRecruiter, session.TabOpportunities, false},
	}
	for _, tc := range cases {
		s := mustTransition(t, session.New(session.PolicyGuarded), session.Login{Role: tc.role})
		next, err := session.Transition(s, session.SelectTab{Tab: tc.tab})
		if tc.allowed {
			if err != nil || next.Tab != tc.tab {
				t.Errorf("%s -> %s: expected allowed, got %+v, %v", tc.role, tc.tab, next, err)
			}
			continue
		}
		if !errors.Is(err, session.ErrForbiddenTab) {
			t.Errorf("%s -> %s: expected ErrForbiddenTab, got %v", tc.role, tc.tab, err)
		}
		if next != s {
			t.Errorf("%s -> %s: state changed on error", tc.role, tc.tab)
		}
	}
}

// ── SelectTab — open policy ────────────────────────────────────────────────

func TestOpen_EveryTabReachableWithoutLogin(t *testing.T) {
	start := session.New(session.PolicyOpen)
	for _, tab := range []session.Tab{
		session.TabDashboard, session.TabProfile, session.TabProjects,
		session.TabOpportunities, session.TabRecruiter,
	} {
		s := mustTransition(t, start, session.SelectTab{Tab: tab})
		if s.Tab != tab {
			t.Errorf("SelectTab(%s) -> %s", tab, s.Tab)
		}
	}
}

func TestOpen_RecruiterCanSeeStudentTabs(t *testing.T) {
	s := mustTransition(t, session.New(session.PolicyOpen), session.Login{Role: session.RoleRecruiter})
	s = mustTransition(t, s, session.SelectTab{Tab: session.TabDashboard})
	if s.Tab != session.TabDashboard {
		t.Errorf("got %s, want dashboard", s.Tab)
	}
}

func TestSelectTab_Unknown(t *testing.T) {
	s := session.New(session.PolicyOpen)
	if _, err := session.Transition(s, session.SelectTab{Tab: "settings"}); !errors.Is(err, session.ErrUnknownTab) {
		t.Errorf("expected ErrUnknownTab, got %v", err)
	}
}

// ── SetQuery / purity ──────────────────────────────────────────────────────

func TestSetQuery_KeepsTab(t *testing.T) {
	s := mustTransition(t, session.New(session.PolicyGuarded), session.Login{Role: session.RoleStudent})
	s = mustTransition(t, s, session.SelectTab{Tab: session.TabProjects})
	s = mustTransition(t, s, session.SetQuery{Query: "Blockchain"})
	if s.Tab != session.TabProjects || s.Query != "Blockchain" {
		t.Errorf("unexpected state %+v", s)
	}
}

func TestTransition_DoesNotMutateInput(t *testing.T) {
	start := mustTransition(t, session.New(session.PolicyGuarded), session.Login{Role: session.RoleStudent})
	copyOfStart := start
	mustTransition(t, start, session.SelectTab{Tab: session.TabProjects})
	mustTransition(t, start, session.SetQuery{Query: "x"})
	if start != copyOfStart {
		t.Errorf("input state mutated: %+v", start)
	}
}

func TestTransition_NilAction(t *testing.T) {
	s := session.New(session.PolicyGuarded)
	if _, err := session.Transition(s, nil); !errors.Is(err, session.ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

// ── Tabs / Cycle ───────────────────────────────────────────────────────────

func TestTabs(t *testing.T) {
	cases := []struct {
		name  string
		state session.State
		want  []session.Tab
	}{
		{
			"guarded logged out",
			session.New(session.PolicyGuarded),
			[]session.Tab{},
		},
		{
			"guarded student",
			session.State{Tab: session.TabDashboard, Role: session.RoleStudent, Policy: session.PolicyGuarded},
			[]session.Tab{session.TabDashboard, session.TabProfile, session.TabProjects, session.TabOpportunities},
		},
		{
			"guarded recruiter",
			session.State{Tab: session.TabRecruiter, Role: session.RoleRecruiter, Policy: session.PolicyGuarded},
			[]session.Tab{session.TabRecruiter, session.TabProjects},
		},
		{
			"open recruiter",
			session.State{Tab: session.TabRecruiter, Role: session.RoleRecruiter, Policy: session.PolicyOpen},
			[]session.Tab{session.TabDashboard, session.TabProfile, session.TabRecruiter, session.TabProjects, session.TabOpportunities},
		},
	}
	for _, tc := range cases {
		if got := session.Tabs(tc.state); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: Tabs = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCycle(t *testing.T) {
	s := session.State{Tab: session.TabDashboard, Role: session.RoleStudent, Policy: session.PolicyGuarded}
	if got := session.Cycle(s, 1); got != session.TabProfile {
		t.Errorf("Cycle(+1) = %s, want profile", got)
	}
	if got := session.Cycle(s, -1); got != session.TabOpportunities {
		t.Errorf("Cycle(-1) = %s, want opportunities (wrap)", got)
	}

	s.Tab = session.TabOpportunities
	if got := session.Cycle(s, 1); got != session.TabDashboard {
		t.Errorf("Cycle(+1) from last = %s, want dashboard (wrap)", got)
	}

	loggedOut := session.New(session.PolicyGuarded)
	if got := session.Cycle(loggedOut, 1); got != session.TabLogin {
		t.Errorf("Cycle with no tabs = %s, want login", got)
	}
}

func TestAllTabs_ReturnsCopy(t *testing.T) {
	tabs := session.AllTabs()
	tabs[0] = session.TabLogin
	if session.AllTabs()[0] != session.TabDashboard {
		t.Error("AllTabs exposes internal slice")
	}
}
