// Package guard decides which logical screen the current session may
// enter. The decision table is re-evaluated from the credential store on
// every call, never cached, since login and logout can change the session
// between navigations.
package guard

import (
	"go.uber.org/zap"

	"github.com/nutritrack/cli/domain"
	"github.com/nutritrack/cli/repository"
)

// State classifies the current session.
type State string

const (
	Anonymous          State = "anonymous"
	AuthenticatedUser  State = "user"
	AuthenticatedAdmin State = "admin"
)

// Screen is the closed set of logical screens the client navigates.
type Screen string

const (
	ScreenLogin          Screen = "login"
	ScreenSignup         Screen = "signup"
	ScreenForgotPassword Screen = "forgot-password"
	ScreenResetPassword  Screen = "reset-password"
	ScreenHome           Screen = "home"
	ScreenAdminPanel     Screen = "admin"
	ScreenRoot           Screen = "root"
)

// Decision is the outcome of resolving a screen: either entry is allowed
// or the caller must redirect.
type Decision struct {
	Allow      bool
	RedirectTo Screen
}

func allow() Decision             { return Decision{Allow: true} }
func redirect(to Screen) Decision { return Decision{RedirectTo: to} }

type Guard struct {
	creds  repository.CredentialStore
	logger *zap.Logger
}

func New(creds repository.CredentialStore, logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{creds: creds, logger: logger}
}

// State derives the session classification from the store. A missing
// credential means anonymous regardless of any stale profile; an unknown
// role degrades to a regular user.
func (g *Guard) State() State {
	session := g.creds.Current()
	if !session.IsAuthenticated() {
		return Anonymous
	}
	if session.Profile.Role == domain.RoleAdmin {
		return AuthenticatedAdmin
	}
	return AuthenticatedUser
}

// Session returns the current session alongside its classification.
func (g *Guard) Session() (domain.Session, State) {
	return g.creds.Current(), g.State()
}

// Resolve applies the screen transition table for the current session.
func (g *Guard) Resolve(screen Screen) Decision {
	state := g.State()

	var decision Decision
	switch screen {
	case ScreenLogin, ScreenSignup:
		if state == Anonymous {
			decision = allow()
		} else {
			decision = redirect(ScreenHome)
		}
	case ScreenForgotPassword, ScreenResetPassword:
		decision = allow()
	case ScreenHome:
		if state == Anonymous {
			decision = redirect(ScreenLogin)
		} else {
			decision = allow()
		}
	case ScreenAdminPanel:
		if state == AuthenticatedAdmin {
			decision = allow()
		} else {
			decision = redirect(ScreenLogin)
		}
	case ScreenRoot:
		if state == Anonymous {
			decision = redirect(ScreenLogin)
		} else {
			decision = redirect(ScreenHome)
		}
	default:
		decision = redirect(ScreenLogin)
	}

	g.logger.Debug("screen resolved",
		zap.String("screen", string(screen)),
		zap.String("state", string(state)),
		zap.Bool("allow", decision.Allow),
		zap.String("redirect", string(decision.RedirectTo)))
	return decision
}

// Logout transitions any authenticated state to anonymous by clearing the
// store. Best-effort and local only; no network call is involved.
func (g *Guard) Logout() {
	if err := g.creds.Clear(); err != nil {
		g.logger.Warn("failed to clear persisted session", zap.Error(err))
	}
}
