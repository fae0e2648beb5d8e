package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"go-club-recruit/internal/api"
)

// RoleAdmin gates the review workflow and its tooling.
const RoleAdmin = "admin"

var (
	ErrNotLoggedIn = errors.New("未登录，请先登录")
	ErrNotAdmin    = errors.New("需要管理员权限")
)

// Session owns the persisted token and the identity endpoints. Any request
// the backend rejects as unauthenticated tears the session down through
// the client's OnAuthExpired hook.
type Session struct {
	client *api.Client
	store  *TokenStore
}

// New wires the token store into the API client. The hook clears the token
// once, centrally, instead of every call site handling 401s.
func New(client *api.Client, store *TokenStore) *Session {
	s := &Session{client: client, store: store}
	client.TokenSource = store.Load
	client.OnAuthExpired = func() {
		if err := store.Clear(); err != nil {
			log.Printf("⚠️ Failed to clear expired token: %v", err)
		}
		log.Printf("🔒 Session expired, please login again")
	}
	return s
}

func (s *Session) LoggedIn() bool {
	return s.store.Load() != ""
}

// Login authenticates with a password or email code and persists the token.
func (s *Session) Login(ctx context.Context, email, verify, authType string) error {
	if authType == "" {
		authType = api.AuthTypePassword
	}
	token, err := s.client.Login(ctx, api.LoginRequest{Email: email, Verify: verify, AuthType: authType})
	if err != nil {
		return err
	}
	if err := s.store.Save(token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	return nil
}

// Logout invalidates the token server-side and clears it locally. Local
// teardown happens even when the backend call fails.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.client.Logout(ctx); err != nil {
		log.Printf("⚠️ Backend logout failed, clearing local session anyway: %v", err)
	}
	return s.store.Clear()
}

// CurrentUser fetches the authenticated profile.
func (s *Session) CurrentUser(ctx context.Context) (*api.User, error) {
	if !s.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	return s.client.Me(ctx)
}

// RequireAdmin checks the profile's role before admin tooling runs. The
// backend enforces authorization on every endpoint regardless.
func (s *Session) RequireAdmin(ctx context.Context) (*api.User, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user.Role != RoleAdmin {
		return nil, ErrNotAdmin
	}
	return user, nil
}

// studentMailSuffix is the only address family the send-code endpoint
// accepts for first-time verification.
const studentMailSuffix = "@stu.ecnu.edu.cn"

// ValidateStudentEmail gates the send-email-code path client-side.
func ValidateStudentEmail(email string) error {
	if !strings.HasSuffix(email, studentMailSuffix) {
		return fmt.Errorf("必须使用华东师范大学学生邮箱 (%s)", studentMailSuffix)
	}
	return nil
}

// SendEmailCode validates the address then asks the backend to mail a code.
func (s *Session) SendEmailCode(ctx context.Context, email string) error {
	if err := ValidateStudentEmail(email); err != nil {
		return err
	}
	return s.client.SendEmailCode(ctx, email)
}
