package domain

// Session is a snapshot of the session store's state.
// IsAuthenticated is always derived from User; never set it by hand.
type Session struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
	IsLoading       bool  `json:"isLoading"`
}

// NewSession builds a snapshot with IsAuthenticated derived from u.
// The user is copied so callers cannot mutate store-owned data.
func NewSession(u *User, loading bool) Session {
	s := Session{IsLoading: loading}
	if u != nil {
		cp := *u
		s.User = &cp
		s.IsAuthenticated = true
	}
	return s
}

// Anonymous is the initial session.
func Anonymous() Session {
	return Session{}
}
