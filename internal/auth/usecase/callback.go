package usecase

import (
	"log"
	"net/url"
	"strings"

	authdomain "journeyhome-backend/internal/auth/domain"
	authdto "journeyhome-backend/internal/auth/dto"
)

// CallbackState is the state machine over an incoming auth redirect.
type CallbackState string

const (
	StateNoCredentials      CallbackState = "no_credentials"
	StateTokenFragment      CallbackState = "token_fragment_present"
	StateAuthorizationCode  CallbackState = "authorization_code_present"
	StateSessionEstablished CallbackState = "session_established"
	StateFailed             CallbackState = "failed"
)

// CallbackParams carries everything the redirect URL can contain:
// either an access/refresh token pair or a single-use code, plus the
// optional type and next-destination parameters.
type CallbackParams struct {
	Code         string
	AccessToken  string
	RefreshToken string
	Type         string
	Next         string
}

// CallbackResult tells the delivery layer where to send the browser
// and, on success, which session to hand over.
type CallbackResult struct {
	State    CallbackState
	Redirect string
	Session  *authdto.TokenResponse
}

const (
	pathSetPassword = "/auth/set-password"
	pathDashboard   = "/dashboard"
	pathLogin       = "/login"
)

// classify maps the raw params onto the initial machine state.
func classify(p CallbackParams) CallbackState {
	if p.AccessToken != "" && p.RefreshToken != "" {
		return StateTokenFragment
	}
	if p.Code != "" {
		return StateAuthorizationCode
	}
	return StateNoCredentials
}

func failedResult(message string) CallbackResult {
	return CallbackResult{
		State:    StateFailed,
		Redirect: pathLogin + "?error=" + url.QueryEscape(message),
	}
}

// ResolveCallback exchanges the redirect credentials for a session and
// decides the destination. Failures redirect to the login page and
// leave no session state behind.
func (u *authUsecase) ResolveCallback(params CallbackParams) CallbackResult {
	switch classify(params) {
	case StateNoCredentials:
		return failedResult("No authentication data found")

	case StateTokenFragment:
		profile, err := u.adoptTokenPair(params.AccessToken, params.RefreshToken)
		if err != nil {
			log.Printf("[AuthCallback] token pair rejected: %v", err)
			return failedResult("Could not authenticate")
		}
		return u.establishedResult(profile, params.Type, params.Next, &authdto.TokenResponse{
			AccessToken:  params.AccessToken,
			RefreshToken: params.RefreshToken,
			User:         profile,
		})

	case StateAuthorizationCode:
		signInCode, err := u.profileRepo.ConsumeSignInCode(params.Code)
		if err != nil {
			log.Printf("[AuthCallback] code lookup failed: %v", err)
			return failedResult("Could not authenticate")
		}
		if signInCode == nil {
			return failedResult("Could not authenticate")
		}

		profile, err := u.profileRepo.FindByID(signInCode.UserID)
		if err != nil || profile == nil {
			log.Printf("[AuthCallback] profile missing for code user %s: %v", signInCode.UserID, err)
			return failedResult("Could not authenticate")
		}

		session, err := u.generateTokens(profile)
		if err != nil {
			log.Printf("[AuthCallback] session issue failed: %v", err)
			return failedResult("Could not authenticate")
		}

		// The type stored with the code is authoritative; the query
		// parameter is only a fallback.
		codeType := string(signInCode.Type)
		if codeType == "" {
			codeType = params.Type
		}
		return u.establishedResult(profile, codeType, params.Next, session)
	}

	return failedResult("Could not authenticate")
}

// adoptTokenPair verifies that an implicit-flow token pair is usable:
// the access token must parse against our secret and the refresh token
// must still exist server-side.
func (u *authUsecase) adoptTokenPair(accessToken, refreshToken string) (*authdomain.Profile, error) {
	profile, err := u.ValidateToken(accessToken)
	if err != nil {
		return nil, err
	}

	stored, err := u.profileRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.UserID != profile.ID || stored.ExpiresAt.Before(u.now()) {
		return nil, ErrInvalidCredentials
	}
	return profile, nil
}

// safeNext keeps the post-login redirect on this origin. The session
// lands in the redirect's URL fragment, so only single-slash-rooted
// relative paths are accepted; absolute and scheme-relative URLs fall
// back to the dashboard.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") &&
		!strings.HasPrefix(next, "//") && !strings.HasPrefix(next, "/\\") {
		return next
	}
	return pathDashboard
}

// establishedResult classifies a successfully established session:
// invite, signup and recovery links, as well as accounts created
// within the recency window, are routed to the password-setup page.
func (u *authUsecase) establishedResult(profile *authdomain.Profile, linkType, next string, session *authdto.TokenResponse) CallbackResult {
	destination := safeNext(next)

	switch linkType {
	case string(authdomain.SignInCodeInvite), string(authdomain.SignInCodeSignup), string(authdomain.SignInCodeRecovery):
		destination = pathSetPassword
	default:
		if u.now().Sub(profile.CreatedAt) < u.config.NewAccountWindow {
			destination = pathSetPassword
		}
	}

	return CallbackResult{
		State:    StateSessionEstablished,
		Redirect: destination,
		Session:  session,
	}
}
