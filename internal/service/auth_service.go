// FILE: internal/service/auth_service.go
// Google sign-in for the admin area and the session tokens it issues
package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"compare-audius-be/internal/config"
	"compare-audius-be/internal/dto"
	"compare-audius-be/internal/pkg/apperror"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/internal/repository/memory"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	SessionTTL          = 24 * time.Hour
	googleUserInfoURL   = "https://www.googleapis.com/oauth2/v3/userinfo"
	defaultPostLoginURL = "/admin"
)

var (
	// ErrAccessDenied is returned for Google identities outside the allow-list
	ErrAccessDenied = apperror.New(apperror.KindUnauthorized, "AccessDenied")
	// ErrInvalidState is returned when the callback state is unknown or reused
	ErrInvalidState = apperror.New(apperror.KindUnauthorized, "Invalid OAuth state")
)

type IAuthService interface {
	// LoginURL starts a Google sign-in that returns to returnTo afterwards
	LoginURL(returnTo string) string
	HandleCallback(ctx context.Context, state, code string) (*LoginResult, error)
	IssueSession(user *dto.SessionUser) (string, time.Time, error)
	VerifySession(token string) (*dto.SessionUser, error)
	Session(token string) (*dto.SessionResponse, error)
	IsAllowed(email string) bool
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *dto.SessionUser
	ReturnTo  string
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type authService struct {
	cfg         config.AuthConfig
	oauth       *oauth2.Config
	states      *memory.OAuthStateRepository
	httpClient  *resty.Client
	userInfoURL string
	logger      logger.ILogger
}

func NewAuthService(cfg config.AuthConfig, states *memory.OAuthStateRepository, logger logger.ILogger) IAuthService {
	conf := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
	return newAuthService(cfg, conf, googleUserInfoURL, states, logger)
}

func newAuthService(cfg config.AuthConfig, conf *oauth2.Config, userInfoURL string, states *memory.OAuthStateRepository, logger logger.ILogger) *authService {
	client := resty.New().
		SetTimeout(10*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeader("Accept", "application/json")

	return &authService{
		cfg:         cfg,
		oauth:       conf,
		states:      states,
		httpClient:  client,
		userInfoURL: userInfoURL,
		logger:      logger,
	}
}

func (s *authService) LoginURL(returnTo string) string {
	b := make([]byte, 24)
	_, _ = rand.Read(b)
	state := base64.RawURLEncoding.EncodeToString(b)

	s.states.Save(&memory.OAuthState{
		State:     state,
		ReturnTo:  safeReturnTo(returnTo),
		CreatedAt: time.Now(),
	})

	return s.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// safeReturnTo only keeps local admin paths
func safeReturnTo(returnTo string) string {
	if strings.HasPrefix(returnTo, "/admin") && !strings.HasPrefix(returnTo, "//") {
		return returnTo
	}
	return defaultPostLoginURL
}

func (s *authService) HandleCallback(ctx context.Context, state, code string) (*LoginResult, error) {
	pending, ok := s.states.Consume(state)
	if !ok {
		s.logger.Warn("AUTH", "Callback with unknown state", nil)
		return nil, ErrInvalidState
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		s.logger.Error("AUTH", "Code exchange failed", map[string]interface{}{"error": err.Error()})
		return nil, apperror.Wrap(apperror.KindUnauthorized, err, "Code exchange failed")
	}

	info, err := s.fetchUserInfo(ctx, token.AccessToken)
	if err != nil {
		return nil, err
	}

	if !info.EmailVerified || !s.IsAllowed(info.Email) {
		s.logger.Warn("AUTH", "Sign-in denied", map[string]interface{}{"email": info.Email})
		return nil, ErrAccessDenied
	}

	user := &dto.SessionUser{Id: info.Sub, Email: strings.ToLower(info.Email), Name: info.Name}
	signed, expiresAt, err := s.IssueSession(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("AUTH", "Signed in", map[string]interface{}{"email": user.Email})
	return &LoginResult{Token: signed, ExpiresAt: expiresAt, User: user, ReturnTo: pending.ReturnTo}, nil
}

func (s *authService) fetchUserInfo(ctx context.Context, accessToken string) (*dto.GoogleUserInfo, error) {
	var info dto.GoogleUserInfo
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&info).
		Get(s.userInfoURL)
	if err != nil {
		s.logger.Error("AUTH", "Userinfo request failed", map[string]interface{}{"error": err.Error()})
		return nil, apperror.Wrap(apperror.KindUnauthorized, err, "Failed to read Google profile")
	}
	if resp.IsError() {
		s.logger.Error("AUTH", "Userinfo request rejected", map[string]interface{}{"status": resp.StatusCode()})
		return nil, apperror.New(apperror.KindUnauthorized, "Failed to read Google profile")
	}
	return &info, nil
}

// IsAllowed accepts emails on an allowed domain or listed explicitly
func (s *authService) IsAllowed(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return false
	}
	for _, allowed := range s.cfg.AllowedEmails {
		if email == allowed {
			return true
		}
	}
	domain := email[at+1:]
	for _, allowed := range s.cfg.AllowedDomains {
		if domain == allowed {
			return true
		}
	}
	return false
}

func (s *authService) IssueSession(user *dto.SessionUser) (string, time.Time, error) {
	if err := s.cfg.Validate(); err != nil {
		return "", time.Time{}, apperror.Wrap(apperror.KindInternal, err, "Failed to sign session")
	}
	now := time.Now()
	expiresAt := now.Add(SessionTTL)
	claims := sessionClaims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, apperror.Wrap(apperror.KindInternal, err, "Failed to sign session")
	}
	return signed, expiresAt, nil
}

// VerifySession checks the signature and expiry, then the allow-list again
// so removing an email takes effect before the token expires
func (s *authService) VerifySession(token string) (*dto.SessionUser, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}
	return &dto.SessionUser{Id: claims.Subject, Email: claims.Email, Name: claims.Name}, nil
}

func (s *authService) Session(token string) (*dto.SessionResponse, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}
	res := &dto.SessionResponse{
		User: dto.SessionUser{Id: claims.Subject, Email: claims.Email, Name: claims.Name},
	}
	if claims.ExpiresAt != nil {
		res.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return res, nil
}

func (s *authService) parse(token string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if err := s.cfg.Validate(); err != nil {
			return nil, err
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return nil, apperror.Wrap(apperror.KindUnauthorized, err, "Unauthorized")
	}
	if !s.IsAllowed(claims.Email) {
		return nil, ErrAccessDenied
	}
	return claims, nil
}
