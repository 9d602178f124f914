// Package session defines the view-state machine behind the tabbed UI.
//
// Tab graph:
//
//	login ──Login(student)───► dashboard
//	  │                           │ SelectTab (policy permitting)
//	  └────Login(recruiter)──► recruiter ◄──► profile, projects, opportunities
//
// Every tab goes back to login on Logout. There is no terminal state.
//
// State is a plain value; Transition never mutates its input. The UI owns
// the single live copy and replaces it with whatever Transition returns.
package session

import (
	"errors"
	"fmt"
)

// Tab names a view of the application
type Tab string

const (
	TabLogin         Tab = "login"
	TabDashboard     Tab = "dashboard"
	TabProfile       Tab = "profile"
	TabProjects      Tab = "projects"
	TabOpportunities Tab = "opportunities"
	TabRecruiter     Tab = "recruiter"
)

// allTabs is the display order of the tab bar
var allTabs = []Tab{TabDashboard, TabProfile, TabRecruiter, TabProjects, TabOpportunities}

// Role is the kind of user logged in
type Role string

const (
	RoleNone      Role = ""
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
)

// Policy decides which tabs a role may enter
type Policy string

const (
	// PolicyOpen lets any tab be selected regardless of login
	PolicyOpen Policy = "open"

	// PolicyGuarded requires a login and restricts role-specific tabs
	PolicyGuarded Policy = "guarded"
)

// Transition errors
var (
	ErrUnknownTab    = errors.New("unknown tab")
	ErrUnknownRole   = errors.New("unknown role")
	ErrUnknownPolicy = errors.New("unknown policy")
	ErrLoginRequired = errors.New("login required")
	ErrForbiddenTab  = errors.New("tab not available for this role")
	ErrUnknownAction = errors.New("unknown action")
)

// tabRoles lists the roles allowed into each tab under PolicyGuarded.
// Tabs missing from the map are open to every logged-in role.
var tabRoles = map[Tab][]Role{
	TabDashboard:     {RoleStudent},
	TabProfile:       {RoleStudent},
	TabOpportunities: {RoleStudent},
	TabRecruiter:     {RoleRecruiter},
}

// State is the complete view state of a session
type State struct {
	Tab    Tab
	Role   Role
	Query  string
	Policy Policy
}

// New returns the initial state: the login tab with nobody logged in
func New(policy Policy) State {
	return State{Tab: TabLogin, Policy: policy}
}

// LoggedIn reports whether a role has been chosen
func (s State) LoggedIn() bool {
	return s.Role != RoleNone
}

// ParseTab converts a raw string to a Tab
func ParseTab(s string) (Tab, error) {
	t := Tab(s)
	switch t {
	case TabLogin, TabDashboard, TabProfile, TabProjects, TabOpportunities, TabRecruiter:
		return t, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownTab, s)
}

// ParseRole converts a raw string to a Role. The empty string is rejected.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleStudent, RoleRecruiter:
		return r, nil
	}
	return RoleNone, fmt.Errorf("%w %q", ErrUnknownRole, s)
}

// ParsePolicy converts a raw string to a Policy
func ParsePolicy(s string) (Policy, error) {
	p := Policy(s)
	switch p {
	case PolicyOpen, PolicyGuarded:
		return p, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownPolicy, s)
}

// HomeTab returns the tab a role lands on after logging in
func HomeTab(r Role) Tab {
	switch r {
	case RoleStudent:
		return TabDashboard
	case RoleRecruiter:
		return TabRecruiter
	}
	return TabLogin
}

// CanEnter reports whether state s may move to tab t, and why not
func CanEnter(s State, t Tab) error {
	if t == TabLogin || s.Policy == PolicyOpen {
		return nil
	}
	if !s.LoggedIn() {
		return ErrLoginRequired
	}
	roles, restricted := tabRoles[t]
	if !restricted {
		return nil
	}
	for _, r := range roles {
		if r == s.Role {
			return nil
		}
	}
	return fmt.Errorf("%w: %s as %s", ErrForbiddenTab, t, s.Role)
}

// AllTabs returns every tab except login, in tab bar order
func AllTabs() []Tab {
	return append([]Tab(nil), allTabs...)
}

// Tabs returns the tabs s may enter, in tab bar order. The login tab is
// never listed; it is reached through Logout.
func Tabs(s State) []Tab {
	out := make([]Tab, 0, len(allTabs))
	for _, t := range allTabs {
		if CanEnter(s, t) == nil {
			out = append(out, t)
		}
	}
	return out
}
