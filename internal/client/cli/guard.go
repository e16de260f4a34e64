package cli

// RouteState is the three-valued gate every screen decision goes through.
// While the session restore is still running the state is RouteLoading and
// no access decision may be made yet.
type RouteState int

const (
	RouteLoading RouteState = iota
	RouteAuthenticated
	RouteUnauthenticated
)

func (s RouteState) String() string {
	switch s {
	case RouteLoading:
		return "loading"
	case RouteAuthenticated:
		return "authenticated"
	case RouteUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// sessionState is the slice of the session store the guard needs.
type sessionState interface {
	Loading() bool
	Authenticated() bool
}

// resolveRoute maps the session store to a RouteState.
func resolveRoute(s sessionState) RouteState {
	if s.Loading() {
		return RouteLoading
	}
	if s.Authenticated() {
		return RouteAuthenticated
	}
	return RouteUnauthenticated
}

// guardDecision is the outcome of gating one command.
type guardDecision int

const (
	// guardAllow lets the command run.
	guardAllow guardDecision = iota
	// guardWait defers the decision: the restore has not finished.
	guardWait
	// guardToLogin blocks a protected command and points the user at login.
	guardToLogin
	// guardToMain blocks a public-only command for a signed-in user.
	guardToMain
)

// guardProtected gates commands that need a signed-in user. Never bounces
// while the state is still loading.
func guardProtected(s sessionState) guardDecision {
	switch resolveRoute(s) {
	case RouteLoading:
		return guardWait
	case RouteAuthenticated:
		return guardAllow
	default:
		return guardToLogin
	}
}

// guardPublicOnly gates login/register, which make no sense for a
// signed-in user.
func guardPublicOnly(s sessionState) guardDecision {
	switch resolveRoute(s) {
	case RouteLoading:
		return guardWait
	case RouteAuthenticated:
		return guardToMain
	default:
		return guardAllow
	}
}
