package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	authdomain "journeyhome-backend/internal/auth/domain"
	authdto "journeyhome-backend/internal/auth/dto"
	"journeyhome-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase scripts ResolveCallback and records the params seen.
type stubAuthUsecase struct {
	callbackParams []usecase.CallbackParams
	callbackResult usecase.CallbackResult
}

func (s *stubAuthUsecase) Login(*authdto.LoginRequest) (*authdto.TokenResponse, error) {
	return nil, nil
}
func (s *stubAuthUsecase) RefreshToken(string) (*authdto.TokenResponse, error) { return nil, nil }
func (s *stubAuthUsecase) Logout(string) error                                 { return nil }
func (s *stubAuthUsecase) ValidateToken(string) (*authdomain.Profile, error)   { return nil, nil }
func (s *stubAuthUsecase) SetPassword(string, string) error                    { return nil }
func (s *stubAuthUsecase) UpdateProfile(string, *authdto.UpdateProfileRequest) (*authdomain.Profile, error) {
	return nil, nil
}
func (s *stubAuthUsecase) RegisterFCMToken(string, string, string) error { return nil }
func (s *stubAuthUsecase) UnregisterFCMToken(string) error               { return nil }
func (s *stubAuthUsecase) IssueSignInCode(string, authdomain.SignInCodeType) (string, error) {
	return "", nil
}
func (s *stubAuthUsecase) RequestRecovery(context.Context, string) error { return nil }
func (s *stubAuthUsecase) SetRecoveryMailer(usecase.RecoveryMailer)      {}

func (s *stubAuthUsecase) ResolveCallback(params usecase.CallbackParams) usecase.CallbackResult {
	s.callbackParams = append(s.callbackParams, params)
	return s.callbackResult
}

func callbackRouter(stub *stubAuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(stub)
	r := gin.New()
	r.GET("/auth/callback", handler.Callback)
	return r
}

func TestCallbackRedirectsFailureToLogin(t *testing.T) {
	stub := &stubAuthUsecase{
		callbackResult: usecase.CallbackResult{
			State:    usecase.StateFailed,
			Redirect: "/login?error=No+authentication+data+found",
		},
	}
	r := callbackRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/callback", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?error=No+authentication+data+found", w.Header().Get("Location"))
}

func TestCallbackPassesQueryParamsThrough(t *testing.T) {
	stub := &stubAuthUsecase{
		callbackResult: usecase.CallbackResult{State: usecase.StateFailed, Redirect: "/login"},
	}
	r := callbackRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/auth/callback?code=abc&type=invite&next=%2Fjournal", nil))

	require.Len(t, stub.callbackParams, 1)
	params := stub.callbackParams[0]
	assert.Equal(t, "abc", params.Code)
	assert.Equal(t, "invite", params.Type)
	assert.Equal(t, "/journal", params.Next)
}

func TestCallbackPutsSessionInFragment(t *testing.T) {
	stub := &stubAuthUsecase{
		callbackResult: usecase.CallbackResult{
			State:    usecase.StateSessionEstablished,
			Redirect: "/auth/set-password",
			Session: &authdto.TokenResponse{
				AccessToken:  "acc",
				RefreshToken: "ref",
			},
		},
	}
	r := callbackRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	assert.Contains(t, location, "/auth/set-password#")
	assert.Contains(t, location, "access_token=acc")
	assert.Contains(t, location, "refresh_token=ref")
}
