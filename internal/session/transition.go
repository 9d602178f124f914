package session

import "fmt"

// Action is an input to Transition
type Action interface {
	action()
}

// Login chooses a role and jumps to its home tab
type Login struct{ Role Role }

// SelectTab moves to the named tab
type SelectTab struct{ Tab Tab }

// Logout clears the role and query and returns to the login tab
type Logout struct{}

// SetQuery replaces the project feed search text
type SetQuery struct{ Query string }

func (Login) action()     {}
func (SelectTab) action() {}
func (Logout) action()    {}
func (SetQuery) action()  {}

// Transition applies a to s and returns the next state. On error the
// returned state is s unchanged.
func Transition(s State, a Action) (State, error) {
	switch a := a.(type) {
	case Login:
		if _, err := ParseRole(string(a.Role)); err != nil {
			return s, err
		}
		next := s
		next.Role = a.Role
		next.Tab = HomeTab(a.Role)
		return next, nil

	case SelectTab:
		if _, err := ParseTab(string(a.Tab)); err != nil {
			return s, err
		}
		if a.Tab == TabLogin {
			return Transition(s, Logout{})
		}
		if err := CanEnter(s, a.Tab); err != nil {
			return s, err
		}
		next := s
		next.Tab = a.Tab
		return next, nil

	case Logout:
		return New(s.Policy), nil

	case SetQuery:
		next := s
		next.Query = a.Query
		return next, nil
	}

	return s, fmt.Errorf("%w: %T", ErrUnknownAction, a)
}

// Cycle returns the tab offset steps away from the current one in the
// list of enterable tabs, wrapping around. It returns the current tab when
// nothing else is enterable.
func Cycle(s State, offset int) Tab {
	tabs := Tabs(s)
	if len(tabs) == 0 {
		return s.Tab
	}
	idx := -1
	for i, t := range tabs {
		if t == s.Tab {
			idx = i
			break
		}
	}
	if idx == -1 {
		if offset < 0 {
			return tabs[len(tabs)-1]
		}
		return tabs[0]
	}
	n := len(tabs)
	return tabs[((idx+offset)%n+n)%n]
}
