package service

import (
	"context"
	"devita_backend/internal/config"
	"devita_backend/internal/model"
	"devita_backend/internal/util"
	"devita_backend/pkg/logger"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"gorm.io/gorm"
)

const kakaoProfileURL = "https://kapi.kakao.com/v2/user/me"

var kakaoEndpoint = oauth2.Endpoint{
	AuthURL:  "https://kauth.kakao.com/oauth/authorize",
	TokenURL: "https://kauth.kakao.com/oauth/token",
}

// AuthService runs the Kakao OAuth flow and the access/refresh token pair.
// Users are provisioned lazily on first login, together with their reward
// ledger and default categories. Refresh tokens are stored in redis keyed
// by user and rotated on every refresh.
type AuthService struct {
	Users UserStore
	Redis *redis.Client
	OAuth *oauth2.Config
	JWT   config.JWTConfig
}

func NewAuthService(users UserStore, rdb *redis.Client, oauthCfg config.OAuthConfig, jwtCfg config.JWTConfig) *AuthService {
	return &AuthService{
		Users: users,
		Redis: rdb,
		OAuth: &oauth2.Config{
			ClientID:     oauthCfg.KakaoClientID,
			ClientSecret: oauthCfg.KakaoClientSecret,
			RedirectURL:  oauthCfg.KakaoRedirectURL,
			Endpoint:     kakaoEndpoint,
			Scopes:       []string{"profile_nickname", "profile_image", "account_email"},
		},
		JWT: jwtCfg,
	}
}

// TokenPair is what a successful login or refresh hands back.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"-"`
}

type kakaoProfile struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Email   string `json:"email"`
		Profile struct {
			Nickname        string `json:"nickname"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

func refreshKey(userID uint) string {
	return fmt.Sprintf("%s%d", util.RefreshTokenPrefix, userID)
}

// AuthorizeURL mints a one-shot state token and returns the Kakao consent
// page URL carrying it.
func (s *AuthService) AuthorizeURL(ctx context.Context) (string, error) {
	state := uuid.NewString()
	key := util.OAuthStatePrefix + state
	if err := s.Redis.Set(ctx, key, 1, util.OAuthStateTTL).Err(); err != nil {
		return "", fmt.Errorf("%w: storing oauth state: %v", util.ErrCacheUnavailable, err)
	}
	return s.OAuth.AuthCodeURL(state), nil
}

// HandleCallback finishes the OAuth dance: verifies state, exchanges the
// code, loads the Kakao profile, provisions the user if new, and issues a
// token pair.
func (s *AuthService) HandleCallback(ctx context.Context, state, code string) (*model.User, TokenPair, error) {
	key := util.OAuthStatePrefix + state
	deleted, err := s.Redis.Del(ctx, key).Result()
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("%w: checking oauth state: %v", util.ErrCacheUnavailable, err)
	}
	if deleted == 0 {
		return nil, TokenPair{}, util.ErrInvalidToken
	}

	token, err := s.OAuth.Exchange(ctx, code)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("kakao code exchange: %w", err)
	}

	profile, err := s.fetchProfile(ctx, token)
	if err != nil {
		return nil, TokenPair{}, err
	}

	user, err := s.findOrCreateUser(profile)
	if err != nil {
		return nil, TokenPair{}, err
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return user, pair, nil
}

func (s *AuthService) fetchProfile(ctx context.Context, token *oauth2.Token) (*kakaoProfile, error) {
	client := s.OAuth.Client(ctx, token)
	resp, err := client.Get(kakaoProfileURL)
	if err != nil {
		return nil, fmt.Errorf("kakao profile request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("kakao profile request: status %d: %s", resp.StatusCode, body)
	}

	var profile kakaoProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("kakao profile decode: %w", err)
	}
	if profile.KakaoAccount.Email == "" {
		return nil, fmt.Errorf("kakao profile has no email")
	}
	return &profile, nil
}

func (s *AuthService) findOrCreateUser(profile *kakaoProfile) (*model.User, error) {
	user, err := s.Users.FindByEmail(profile.KakaoAccount.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &model.User{
		Nickname:        profile.KakaoAccount.Profile.Nickname,
		Email:           profile.KakaoAccount.Email,
		Provider:        model.ProviderKakao,
		ProfileImageURL: profile.KakaoAccount.Profile.ProfileImageURL,
	}
	if err := s.Users.CreateWithDefaults(user); err != nil {
		return nil, err
	}
	logger.Log.Info("user provisioned",
		zap.Uint("userID", user.ID),
		zap.String("provider", string(model.ProviderKakao)),
	)
	return user, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *model.User) (TokenPair, error) {
	access, err := util.GenerateJWT(user.ID, user.Email, s.JWT.AccessSecret, s.JWT.AccessExpire)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := util.GenerateJWT(user.ID, user.Email, s.JWT.RefreshSecret, s.JWT.RefreshExpire)
	if err != nil {
		return TokenPair{}, err
	}

	if err := s.Redis.Set(ctx, refreshKey(user.ID), refresh, s.JWT.RefreshExpire).Err(); err != nil {
		return TokenPair{}, fmt.Errorf("%w: storing refresh token: %v", util.ErrCacheUnavailable, err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh validates the presented refresh token against the stored copy
// and issues a fresh pair, rotating the stored token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*model.User, TokenPair, error) {
	claims, err := util.ParseJWT(refreshToken, s.JWT.RefreshSecret)
	if err != nil {
		return nil, TokenPair{}, err
	}

	stored, err := s.Redis.Get(ctx, refreshKey(claims.UserID)).Result()
	if err == redis.Nil {
		return nil, TokenPair{}, util.ErrInvalidToken
	}
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("%w: reading refresh token: %v", util.ErrCacheUnavailable, err)
	}
	if stored != refreshToken {
		return nil, TokenPair{}, util.ErrInvalidToken
	}

	user, err := s.Users.FindByID(claims.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, TokenPair{}, util.ErrUserNotFound
	}
	if err != nil {
		return nil, TokenPair{}, err
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return user, pair, nil
}

// Logout drops the stored refresh token, ending the session.
func (s *AuthService) Logout(ctx context.Context, userID uint) error {
	if err := s.Redis.Del(ctx, refreshKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: deleting refresh token: %v", util.ErrCacheUnavailable, err)
	}
	return nil
}
