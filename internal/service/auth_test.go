package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/ab-planner/internal/identity"
	"github.com/pribylovaa/ab-planner/internal/models"
	"github.com/pribylovaa/ab-planner/internal/storage"
	"github.com/pribylovaa/ab-planner/internal/tokens"
)

// issuedRefresh выпускает refresh-токен и сессию, которой он соответствует.
func issuedRefresh(t *testing.T, svc *Service, userID int64) (string, *models.Session) {
	t.Helper()

	jti, err := tokens.NewJTI()
	require.NoError(t, err)
	raw, err := svc.codec.IssueRefresh(userID, jti, svc.cfg.RefreshTokenTTL)
	require.NoError(t, err)

	return raw, &models.Session{
		ID:        42,
		UserID:    userID,
		TokenHash: tokens.HashToken(raw),
		JTI:       jti,
		CreatedAt: testNow.Add(-time.Hour),
		ExpiresAt: testNow.Add(svc.cfg.RefreshTokenTTL),
	}
}

func TestLoginURL(t *testing.T) {
	t.Parallel()

	svc, _, idp := newSvc(t)

	_, err := svc.LoginURL("  ", "st")
	require.ErrorIs(t, err, ErrValidation)

	idp.EXPECT().AuthorizeURL("challenge", "st").Return("https://login.example/authorize?x=1")
	u, err := svc.LoginURL(" challenge ", "st")
	require.NoError(t, err)
	require.Equal(t, "https://login.example/authorize?x=1", u)
}

func TestLoginMicrosoft_Validation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newSvc(t)
	ctx := context.Background()

	_, err := svc.LoginMicrosoft(ctx, "", "v", testRedirect)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.LoginMicrosoft(ctx, "c", "v", "https://evil.example/cb")
	require.ErrorIs(t, err, ErrValidation)
}

func TestLoginMicrosoft_NewUser(t *testing.T) {
	t.Parallel()

	svc, st, idp := newSvc(t)
	ctx := context.Background()

	idp.EXPECT().Exchange(gomock.Any(), "code", "verifier", testRedirect).
		Return(&identity.Identity{Email: " Ann.Smith@Uni.EDU "}, nil)
	st.EXPECT().UserByEmail(gomock.Any(), "ann.smith@uni.edu").Return(nil, storage.ErrNotFound)
	st.EXPECT().RoleByCode(gomock.Any(), models.RoleStudent).
		Return(&models.Role{ID: 3, Code: models.RoleStudent, Label: "Student"}, nil)
	st.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			require.Equal(t, "ann.smith", u.Name)
			require.Equal(t, int64(3), u.RoleID)
			u.ID = 7
			return nil
		})

	var session *models.Session
	st.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Session) error {
			session = s
			return nil
		})

	pair, err := svc.LoginMicrosoft(ctx, "code", "verifier", testRedirect)
	require.NoError(t, err)
	require.Equal(t, "bearer", pair.TokenType)
	require.Equal(t, int64(1800), pair.ExpiresIn)
	require.Equal(t, models.UserProfile{ID: 7, Email: "ann.smith@uni.edu", Name: "ann.smith", Role: models.RoleStudent}, pair.User)

	require.NotNil(t, session)
	require.Equal(t, int64(7), session.UserID)
	require.Equal(t, tokens.HashToken(pair.RefreshToken), session.TokenHash)
	require.Equal(t, testNow.Add(720*time.Hour), session.ExpiresAt)

	access, err := svc.codec.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, session.JTI, access.SessionJTI)
	require.Equal(t, models.RoleStudent, access.Role)

	refresh, err := svc.codec.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, session.JTI, refresh.JTI())
}

func TestLoginMicrosoft_ExistingUserRenamed(t *testing.T) {
	t.Parallel()

	svc, st, idp := newSvc(t)

	idp.EXPECT().Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&identity.Identity{Email: "user@uni.edu", Name: "New Name"}, nil)
	st.EXPECT().UserByEmail(gomock.Any(), "user@uni.edu").Return(testUser(9, models.RoleLecturer), nil)
	st.EXPECT().UpdateUserName(gomock.Any(), int64(9), "New Name").Return(nil)
	st.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)

	pair, err := svc.LoginMicrosoft(context.Background(), "c", "v", testRedirect)
	require.NoError(t, err)
	require.Equal(t, "New Name", pair.User.Name)
	require.Equal(t, models.RoleLecturer, pair.User.Role)
}

func TestLoginMicrosoft_ConcurrentFirstLogin(t *testing.T) {
	t.Parallel()

	svc, st, idp := newSvc(t)

	idp.EXPECT().Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&identity.Identity{Email: "user@uni.edu", Name: "User"}, nil)
	gomock.InOrder(
		st.EXPECT().UserByEmail(gomock.Any(), "user@uni.edu").Return(nil, storage.ErrNotFound),
		st.EXPECT().RoleByCode(gomock.Any(), models.RoleStudent).Return(&models.Role{ID: 1, Code: models.RoleStudent}, nil),
		st.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists),
		st.EXPECT().UserByEmail(gomock.Any(), "user@uni.edu").Return(testUser(11, models.RoleStudent), nil),
	)
	st.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)

	pair, err := svc.LoginMicrosoft(context.Background(), "c", "v", testRedirect)
	require.NoError(t, err)
	require.Equal(t, int64(11), pair.User.ID)
}

func TestLoginMicrosoft_ProviderErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want error
	}{
		{"rejected", identity.ErrProviderRejected, ErrProviderRejected},
		{"upstream", identity.ErrUpstream, ErrUpstream},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, _, idp := newSvc(t)
			idp.EXPECT().Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			_, err := svc.LoginMicrosoft(context.Background(), "c", "v", testRedirect)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoginMicrosoft_NoEmail(t *testing.T) {
	t.Parallel()

	svc, _, idp := newSvc(t)
	idp.EXPECT().Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&identity.Identity{Name: "Nobody"}, nil)

	_, err := svc.LoginMicrosoft(context.Background(), "c", "v", testRedirect)
	require.ErrorIs(t, err, ErrValidation)
}

func TestLoginMicrosoft_DefaultRoleMissing(t *testing.T) {
	t.Parallel()

	svc, st, idp := newSvc(t)
	idp.EXPECT().Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&identity.Identity{Email: "a@uni.edu"}, nil)
	st.EXPECT().UserByEmail(gomock.Any(), "a@uni.edu").Return(nil, storage.ErrNotFound)
	st.EXPECT().RoleByCode(gomock.Any(), models.RoleStudent).Return(nil, storage.ErrNotFound)

	_, err := svc.LoginMicrosoft(context.Background(), "c", "v", testRedirect)
	require.ErrorIs(t, err, ErrDefaultRoleMissing)
}

func TestIssueTokens_RetriesCollision(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)

	var jtis []string
	st.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Session) error {
			jtis = append(jtis, s.JTI)
			if len(jtis) == 1 {
				return storage.ErrAlreadyExists
			}
			return nil
		}).Times(2)

	pair, err := svc.issueTokens(context.Background(), st, testUser(1, models.RoleStudent))
	require.NoError(t, err)
	require.Len(t, jtis, 2)
	require.NotEqual(t, jtis[0], jtis[1])

	claims, err := svc.codec.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, jtis[1], claims.JTI())
}

func TestIssueTokens_GivesUp(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	st.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists).Times(maxIssueAttempts)

	_, err := svc.issueTokens(context.Background(), st, testUser(1, models.RoleStudent))
	require.ErrorIs(t, err, ErrSessionCollision)
}

func TestRefresh_Undecodable(t *testing.T) {
	t.Parallel()

	svc, _, _ := newSvc(t)

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidCredential)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	t.Parallel()

	svc, _, _ := newSvc(t)
	access, err := svc.codec.IssueAccess(1, models.RoleStudent, "jti", time.Minute)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), access)
	require.ErrorIs(t, err, ErrInvalidCredential)
}

func TestRefresh_Rotates(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	raw, session := issuedRefresh(t, svc, 5)

	gomock.InOrder(
		st.EXPECT().LockSessionByTokenHash(gomock.Any(), session.TokenHash).Return(session, nil),
		st.EXPECT().RevokeSession(gomock.Any(), int64(42), ReasonRotated, testNow).Return(true, nil),
		st.EXPECT().UserByID(gomock.Any(), int64(5)).Return(testUser(5, models.RoleStudent), nil),
		st.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil),
	)

	pair, err := svc.Refresh(context.Background(), raw)
	require.NoError(t, err)
	require.NotEqual(t, raw, pair.RefreshToken)
	require.Equal(t, int64(5), pair.User.ID)
}

func TestRefresh_UnknownSession(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	raw, session := issuedRefresh(t, svc, 5)

	st.EXPECT().LockSessionByTokenHash(gomock.Any(), session.TokenHash).Return(nil, storage.ErrNotFound)

	_, err := svc.Refresh(context.Background(), raw)
	require.ErrorIs(t, err, ErrInvalidCredential)
}

func TestRefresh_Mismatch(t *testing.T) {
	t.Parallel()

	cases := map[string]func(s *models.Session){
		"user": func(s *models.Session) { s.UserID = 99 },
		"jti":  func(s *models.Session) { s.JTI = "other" },
	}

	for name, mutate := range cases {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			svc, st, _ := newSvc(t)
			raw, session := issuedRefresh(t, svc, 5)
			mutate(session)

			st.EXPECT().LockSessionByTokenHash(gomock.Any(), gomock.Any()).Return(session, nil)

			_, err := svc.Refresh(context.Background(), raw)
			require.ErrorIs(t, err, ErrInvalidCredential)
		})
	}
}

func TestRefresh_ReuseRevokesAll(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	raw, session := issuedRefresh(t, svc, 5)
	revokedAt := testNow.Add(-time.Minute)
	reason := ReasonRotated
	session.RevokedAt, session.RevokedReason = &revokedAt, &reason

	st.EXPECT().LockSessionByTokenHash(gomock.Any(), gomock.Any()).Return(session, nil)
	st.EXPECT().RevokeAllSessions(gomock.Any(), int64(5), ReasonReuseDetected, testNow).Return(int64(1), nil)

	_, err := svc.Refresh(context.Background(), raw)
	require.ErrorIs(t, err, ErrInvalidCredential)
}

func TestRefresh_Expired(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	raw, session := issuedRefresh(t, svc, 5)
	session.ExpiresAt = testNow

	st.EXPECT().LockSessionByTokenHash(gomock.Any(), gomock.Any()).Return(session, nil)
	st.EXPECT().RevokeSession(gomock.Any(), int64(42), ReasonExpired, testNow).Return(true, nil)

	_, err := svc.Refresh(context.Background(), raw)
	require.ErrorIs(t, err, ErrRefreshExpired)
}

func TestRefresh_LostRaceIsReuse(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	raw, session := issuedRefresh(t, svc, 5)

	st.EXPECT().LockSessionByTokenHash(gomock.Any(), gomock.Any()).Return(session, nil)
	st.EXPECT().RevokeSession(gomock.Any(), int64(42), ReasonRotated, testNow).Return(false, nil)
	st.EXPECT().RevokeAllSessions(gomock.Any(), int64(5), ReasonReuseDetected, testNow).Return(int64(2), nil)

	_, err := svc.Refresh(context.Background(), raw)
	require.ErrorIs(t, err, ErrInvalidCredential)
}

func TestRefresh_IssueFailureKeepsRevocation(t *testing.T) {
	t.Parallel()

	ctrlErr := errors.New("db down")
	svc, st, _ := newSvc(t)
	raw, session := issuedRefresh(t, svc, 5)

	st.EXPECT().LockSessionByTokenHash(gomock.Any(), gomock.Any()).Return(session, nil)
	st.EXPECT().RevokeSession(gomock.Any(), int64(42), ReasonRotated, testNow).Return(true, nil)
	st.EXPECT().UserByID(gomock.Any(), int64(5)).Return(nil, ctrlErr)

	_, err := svc.Refresh(context.Background(), raw)
	require.ErrorIs(t, err, ctrlErr)
	require.NotErrorIs(t, err, ErrInvalidCredential)
}

func TestRefresh_DeletedUser(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	raw, session := issuedRefresh(t, svc, 5)

	st.EXPECT().LockSessionByTokenHash(gomock.Any(), gomock.Any()).Return(session, nil)
	st.EXPECT().RevokeSession(gomock.Any(), int64(42), ReasonRotated, testNow).Return(true, nil)
	st.EXPECT().UserByID(gomock.Any(), int64(5)).Return(nil, storage.ErrNotFound)

	_, err := svc.Refresh(context.Background(), raw)
	require.ErrorIs(t, err, ErrInvalidCredential)
}

func TestLogout_AllSessions(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	st.EXPECT().RevokeAllSessions(gomock.Any(), int64(5), ReasonLogoutAll, testNow).Return(int64(3), nil)

	require.NoError(t, svc.Logout(context.Background(), actorOf(5, models.RoleStudent), nil))
}

func TestLogout_SingleSession(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	raw, session := issuedRefresh(t, svc, 5)

	st.EXPECT().SessionByTokenHash(gomock.Any(), session.TokenHash).Return(session, nil)
	st.EXPECT().RevokeSession(gomock.Any(), int64(42), ReasonLogout, testNow).Return(true, nil)

	require.NoError(t, svc.Logout(context.Background(), actorOf(5, models.RoleStudent), &raw))
}

func TestLogout_UnknownTokenRevokesAll(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	raw, session := issuedRefresh(t, svc, 5)

	st.EXPECT().SessionByTokenHash(gomock.Any(), session.TokenHash).Return(nil, storage.ErrNotFound)
	st.EXPECT().RevokeAllSessions(gomock.Any(), int64(5), ReasonLogoutUnknown, testNow).Return(int64(1), nil)

	require.NoError(t, svc.Logout(context.Background(), actorOf(5, models.RoleStudent), &raw))
}

func TestLogout_ForeignToken(t *testing.T) {
	t.Parallel()

	svc, _, _ := newSvc(t)
	raw, _ := issuedRefresh(t, svc, 6)

	err := svc.Logout(context.Background(), actorOf(5, models.RoleStudent), &raw)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestLogout_Undecodable(t *testing.T) {
	t.Parallel()

	svc, _, _ := newSvc(t)
	raw := "garbage"

	err := svc.Logout(context.Background(), actorOf(5, models.RoleStudent), &raw)
	require.ErrorIs(t, err, ErrInvalidCredential)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	svc, st, _ := newSvc(t)
	access, err := svc.codec.IssueAccess(5, models.RoleStudent, "jti-5", time.Minute)
	require.NoError(t, err)

	session := &models.Session{ID: 1, UserID: 5, JTI: "jti-5", ExpiresAt: testNow.Add(time.Hour)}
	st.EXPECT().SessionByJTI(gomock.Any(), "jti-5").Return(session, nil)
	st.EXPECT().UserByID(gomock.Any(), int64(5)).Return(testUser(5, models.RoleAdmin), nil)

	actor, err := svc.Authenticate(context.Background(), access)
	require.NoError(t, err)
	require.Equal(t, int64(5), actor.User.ID)
	require.Equal(t, "jti-5", actor.SessionJTI)
	require.True(t, actor.IsAdmin())
}

func TestAuthenticate_Rejections(t *testing.T) {
	t.Parallel()

	revokedAt := testNow.Add(-time.Minute)

	cases := []struct {
		name    string
		session *models.Session
		sessErr error
		user    *models.User
		want    error
	}{
		{name: "no session", sessErr: storage.ErrNotFound, want: ErrInvalidCredential},
		{name: "revoked", session: &models.Session{UserID: 5, ExpiresAt: testNow.Add(time.Hour), RevokedAt: &revokedAt}, want: ErrInvalidCredential},
		{name: "expired", session: &models.Session{UserID: 5, ExpiresAt: testNow}, want: ErrInvalidCredential},
		{name: "foreign session", session: &models.Session{UserID: 6, ExpiresAt: testNow.Add(time.Hour)}, want: ErrInvalidCredential},
		{name: "unknown role", session: &models.Session{UserID: 5, ExpiresAt: testNow.Add(time.Hour)}, user: testUser(5, "guest"), want: ErrForbidden},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, st, _ := newSvc(t)
			access, err := svc.codec.IssueAccess(5, models.RoleStudent, "jti", time.Minute)
			require.NoError(t, err)

			st.EXPECT().SessionByJTI(gomock.Any(), "jti").Return(tc.session, tc.sessErr)
			if tc.user != nil {
				st.EXPECT().UserByID(gomock.Any(), int64(5)).Return(tc.user, nil)
			}

			_, err = svc.Authenticate(context.Background(), access)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAuthenticate_RefreshTokenRejected(t *testing.T) {
	t.Parallel()

	svc, _, _ := newSvc(t)
	raw, _ := issuedRefresh(t, svc, 5)

	_, err := svc.Authenticate(context.Background(), raw)
	require.ErrorIs(t, err, ErrInvalidCredential)
}
