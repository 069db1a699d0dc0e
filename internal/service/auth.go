package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pribylovaa/ab-planner/internal/identity"
	"github.com/pribylovaa/ab-planner/internal/metrics"
	"github.com/pribylovaa/ab-planner/internal/models"
	"github.com/pribylovaa/ab-planner/internal/pkg/log"
	"github.com/pribylovaa/ab-planner/internal/pkg/redact"
	"github.com/pribylovaa/ab-planner/internal/storage"
	"github.com/pribylovaa/ab-planner/internal/tokens"
)

// maxIssueAttempts — сколько раз пробуем сгенерировать уникальный jti.
const maxIssueAttempts = 5

// LoginURL возвращает адрес страницы входа Microsoft.
func (s *Service) LoginURL(codeChallenge, state string) (string, error) {
	const op = "service.auth.LoginURL"

	codeChallenge = strings.TrimSpace(codeChallenge)
	if codeChallenge == "" {
		return "", fmt.Errorf("%s: %w: code_challenge is required", op, ErrValidation)
	}

	return s.idp.AuthorizeURL(codeChallenge, strings.TrimSpace(state)), nil
}

// LoginMicrosoft обменивает код Microsoft на идентичность, находит или создаёт
// локального пользователя и открывает новую сессию. Существующие сессии не трогаются.
func (s *Service) LoginMicrosoft(ctx context.Context, code, verifier, redirectURI string) (*models.TokenPair, error) {
	const op = "service.auth.LoginMicrosoft"

	code = strings.TrimSpace(code)
	verifier = strings.TrimSpace(verifier)
	if code == "" || verifier == "" {
		return nil, fmt.Errorf("%s: %w: code and code_verifier are required", op, ErrValidation)
	}
	if redirectURI != s.redirectURI {
		return nil, fmt.Errorf("%s: %w: redirect_uri mismatch", op, ErrValidation)
	}

	id, err := s.idp.Exchange(ctx, code, verifier, redirectURI)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrProviderRejected):
			metrics.AuthLoginsTotal.WithLabelValues("rejected").Inc()
			return nil, fmt.Errorf("%s: %w: %v", op, ErrProviderRejected, err)
		case errors.Is(err, identity.ErrUpstream):
			metrics.AuthLoginsTotal.WithLabelValues("upstream").Inc()
			return nil, fmt.Errorf("%s: %w: %v", op, ErrUpstream, err)
		default:
			metrics.AuthLoginsTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	email := strings.ToLower(strings.TrimSpace(id.Email))
	if email == "" {
		metrics.AuthLoginsTotal.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%s: %w: identity has no email", op, ErrValidation)
	}
	name := strings.TrimSpace(id.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	var pair *models.TokenPair
	err = s.storage.WithTx(ctx, func(tx storage.Tx) error {
		user, err := s.ensureUser(ctx, tx, email, name)
		if err != nil {
			return err
		}

		pair, err = s.issueTokens(ctx, tx, user)
		return err
	})
	if err != nil {
		metrics.AuthLoginsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.AuthLoginsTotal.WithLabelValues("ok").Inc()
	log.From(ctx).Info("user_logged_in",
		slog.String("op", op),
		slog.Int64("user_id", pair.User.ID),
		slog.String("email", redact.Email(email)),
	)

	return pair, nil
}

// ensureUser — get-or-create пользователя по email с ролью по умолчанию.
func (s *Service) ensureUser(ctx context.Context, tx storage.Tx, email, name string) (*models.User, error) {
	user, err := tx.UserByEmail(ctx, email)
	if err == nil {
		if user.Name != name {
			if err := tx.UpdateUserName(ctx, user.ID, name); err != nil {
				return nil, err
			}
			user.Name = name
		}
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	role, err := tx.RoleByCode(ctx, s.cfg.DefaultRoleCode)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrDefaultRoleMissing, s.cfg.DefaultRoleCode)
		}
		return nil, err
	}

	user = &models.User{
		Email:     email,
		Name:      name,
		RoleID:    role.ID,
		Role:      *role,
		CreatedAt: s.now(),
	}

	// Параллельный первый вход того же пользователя: создание внутри точки
	// сохранения, при конфликте перечитываем.
	err = tx.WithTx(ctx, func(tx storage.Tx) error {
		return tx.CreateUser(ctx, user)
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		return tx.UserByEmail(ctx, email)
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// issueTokens открывает новую сессию и подписывает пару токенов.
// Коллизия jti (или хэша) повторяется с новым jti в отдельной точке сохранения.
func (s *Service) issueTokens(ctx context.Context, tx storage.Tx, user *models.User) (*models.TokenPair, error) {
	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		jti, err := tokens.NewJTI()
		if err != nil {
			return nil, err
		}

		refresh, err := s.codec.IssueRefresh(user.ID, jti, s.cfg.RefreshTokenTTL)
		if err != nil {
			return nil, err
		}

		now := s.now()
		session := &models.Session{
			UserID:    user.ID,
			TokenHash: tokens.HashToken(refresh),
			JTI:       jti,
			CreatedAt: now,
			ExpiresAt: now.Add(s.cfg.RefreshTokenTTL),
		}

		err = tx.WithTx(ctx, func(tx storage.Tx) error {
			return tx.CreateSession(ctx, session)
		})
		if errors.Is(err, storage.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, err
		}

		access, err := s.codec.IssueAccess(user.ID, user.Role.Code, jti, s.cfg.AccessTokenTTL)
		if err != nil {
			return nil, err
		}

		return &models.TokenPair{
			AccessToken:  access,
			RefreshToken: refresh,
			TokenType:    "bearer",
			ExpiresIn:    int64(s.cfg.AccessTokenTTL / time.Second),
			User:         user.Profile(),
		}, nil
	}

	return nil, ErrSessionCollision
}

// Refresh погашает refresh-токен и выдаёт новую пару.
//
// Сессия блокируется на время транзакции, поэтому два конкурентных погашения
// одного токена упорядочиваются: второе видит отозванную сессию и считается
// повторным использованием. Повторное использование отзывает все сессии пользователя.
// Отзыв старой сессии фиксируется, даже если выпуск новой пары не удался.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "service.auth.Refresh"

	claims, err := s.codec.VerifyRefresh(refreshToken)
	if err != nil {
		metrics.AuthRefreshTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredential)
	}

	var (
		pair    *models.TokenPair
		outcome error
		result  = "ok"
	)

	err = s.storage.WithTx(ctx, func(tx storage.Tx) error {
		session, err := tx.LockSessionByTokenHash(ctx, tokens.HashToken(refreshToken))
		if errors.Is(err, storage.ErrNotFound) {
			outcome, result = ErrInvalidCredential, "invalid"
			return nil
		}
		if err != nil {
			return err
		}

		if session.UserID != claims.UserID || !tokens.EqualHash(session.JTI, claims.JTI()) {
			outcome, result = ErrInvalidCredential, "invalid"
			return nil
		}

		now := s.now()

		if session.Revoked() {
			outcome, result = ErrInvalidCredential, "reuse_detected"
			return s.revokeOnReuse(ctx, tx, session, now)
		}

		if session.Expired(now) {
			if _, err := tx.RevokeSession(ctx, session.ID, ReasonExpired, now); err != nil {
				return err
			}
			outcome, result = ErrRefreshExpired, "expired"
			return nil
		}

		revoked, err := tx.RevokeSession(ctx, session.ID, ReasonRotated, now)
		if err != nil {
			return err
		}
		if !revoked {
			outcome, result = ErrInvalidCredential, "reuse_detected"
			return s.revokeOnReuse(ctx, tx, session, now)
		}

		issueErr := tx.WithTx(ctx, func(tx storage.Tx) error {
			user, err := tx.UserByID(ctx, session.UserID)
			if err != nil {
				return err
			}

			pair, err = s.issueTokens(ctx, tx, user)
			return err
		})
		if issueErr != nil {
			pair = nil
			if errors.Is(issueErr, storage.ErrNotFound) {
				outcome, result = ErrInvalidCredential, "invalid"
			} else {
				outcome, result = issueErr, "error"
			}
		}

		return nil
	})
	if err != nil {
		metrics.AuthRefreshTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.AuthRefreshTotal.WithLabelValues(result).Inc()
	if outcome != nil {
		return nil, fmt.Errorf("%s: %w", op, outcome)
	}

	return pair, nil
}

func (s *Service) revokeOnReuse(ctx context.Context, tx storage.Tx, session *models.Session, now time.Time) error {
	n, err := tx.RevokeAllSessions(ctx, session.UserID, ReasonReuseDetected, now)
	if err != nil {
		return err
	}

	log.From(ctx).Warn("refresh_reuse_detected",
		slog.String("op", "service.auth.Refresh"),
		slog.Int64("user_id", session.UserID),
		slog.Int64("session_id", session.ID),
		slog.Int64("revoked", n),
	)

	return nil
}

// Logout закрывает сессию переданного refresh-токена; без токена закрывает
// все сессии пользователя. Неизвестный токен тоже приводит к выходу отовсюду.
func (s *Service) Logout(ctx context.Context, actor Actor, refreshToken *string) error {
	const op = "service.auth.Logout"

	now := s.now()

	if refreshToken == nil {
		if _, err := s.storage.RevokeAllSessions(ctx, actor.User.ID, ReasonLogoutAll, now); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	claims, err := s.codec.VerifyRefresh(*refreshToken)
	if err != nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidCredential)
	}
	if claims.UserID != actor.User.ID {
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	session, err := s.storage.SessionByTokenHash(ctx, tokens.HashToken(*refreshToken))
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err != nil || session.UserID != actor.User.ID {
		if _, err := s.storage.RevokeAllSessions(ctx, actor.User.ID, ReasonLogoutUnknown, now); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	if _, err := s.storage.RevokeSession(ctx, session.ID, ReasonLogout, now); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Authenticate проверяет access-токен и возвращает актора запроса.
// Токен действителен, только пока жива сессия, на которую он ссылается.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (*Actor, error) {
	const op = "service.auth.Authenticate"

	claims, err := s.codec.VerifyAccess(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredential)
	}

	session, err := s.storage.SessionByJTI(ctx, claims.SessionJTI)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredential)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !session.Active(s.now()) || session.UserID != claims.UserID {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredential)
	}

	user, err := s.storage.UserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredential)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch user.Role.Code {
	case models.RoleStudent, models.RoleLecturer, models.RoleAdmin:
	default:
		return nil, fmt.Errorf("%s: %w: role %q", op, ErrForbidden, user.Role.Code)
	}

	return &Actor{User: *user, SessionJTI: claims.SessionJTI}, nil
}
