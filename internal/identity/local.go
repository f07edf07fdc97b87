package identity

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/db"
	"github.com/alexanderramin/hive/internal/domain"
	"github.com/alexanderramin/hive/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var errBadCredentials = contract.Unauthorized("invalid email or password")

type LocalConfig struct {
	Secret     []byte
	TTL        time.Duration
	BcryptCost int
	Now        func() time.Time
	Logger     zerolog.Logger
}

// Local keeps credentials and sessions in the application database. Passwords
// are bcrypt hashes and tokens are HS256 JWTs whose jti names an auth_sessions
// row, so a token dies as soon as its row is revoked.
type Local struct {
	conn   db.DBTX
	uow    db.UnitOfWork
	tokens tokenSigner
	ttl    time.Duration
	cost   int
	now    func() time.Time
	log    zerolog.Logger
}

var _ Provider = (*Local)(nil)

func NewLocal(conn db.DBTX, uow db.UnitOfWork, cfg LocalConfig) (*Local, error) {
	if len(cfg.Secret) < 16 {
		return nil, fmt.Errorf("session secret must be at least 16 bytes")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * 24 * time.Hour
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Local{
		conn:   conn,
		uow:    uow,
		tokens: tokenSigner{key: cfg.Secret, now: cfg.Now},
		ttl:    cfg.TTL,
		cost:   cfg.BcryptCost,
		now:    cfg.Now,
		log:    cfg.Logger.With().Str("component", "identity").Logger(),
	}, nil
}

func (l *Local) SignUp(ctx context.Context, in SignUpInput) (*Session, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if err := checkPassword(in.Password); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), l.cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := l.now()
	user := &domain.User{
		ID:            uuid.New().String(),
		Email:         email,
		Name:          strings.TrimSpace(in.Name),
		IntensityMode: domain.IntensityWorkerBee,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var session *Session
	err = l.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteUserRepo(tx).Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return contract.Conflict("an account for %s already exists", email)
			}
			return err
		}
		if err := repository.NewSQLiteCredentialRepo(tx).Set(ctx, user.ID, string(hash)); err != nil {
			return err
		}
		session, err = l.issue(ctx, tx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	l.log.Info().Str("user_id", user.ID).Msg("account created")
	return session, nil
}

func (l *Local) SignIn(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := repository.NewSQLiteUserRepo(l.conn).GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := l.verify(ctx, user.ID, password); err != nil {
		return nil, err
	}

	var session *Session
	err = l.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteAuthSessionRepo(tx).DeleteExpired(ctx, l.now()); err != nil {
			return err
		}
		session, err = l.issue(ctx, tx, user)
		return err
	})
	return session, err
}

func (l *Local) SessionFromToken(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, contract.Unauthorized("not signed in")
	}
	claims, err := l.tokens.parse(token, false)
	if err != nil {
		l.log.Debug().Err(err).Msg("rejected session token")
		return nil, contract.Unauthorized("session is invalid or expired")
	}

	stored, err := repository.NewSQLiteAuthSessionRepo(l.conn).GetByID(ctx, claims.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, contract.Unauthorized("session is invalid or expired")
	}
	if err != nil {
		return nil, err
	}
	if !stored.Active(l.now()) || stored.UserID != claims.Subject {
		return nil, contract.Unauthorized("session is invalid or expired")
	}

	user, err := repository.NewSQLiteUserRepo(l.conn).GetByID(ctx, stored.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, contract.Unauthorized("account no longer exists")
	}
	if err != nil {
		return nil, err
	}
	return &Session{ID: stored.ID, Token: token, User: user, ExpiresAt: stored.ExpiresAt}, nil
}

// SignOut revokes the session behind token. Unknown or malformed tokens are
// ignored.
func (l *Local) SignOut(ctx context.Context, token string) error {
	claims, err := l.tokens.parse(token, true)
	if err != nil {
		return nil
	}
	return repository.NewSQLiteAuthSessionRepo(l.conn).Revoke(ctx, claims.ID, l.now())
}

func (l *Local) ChangePassword(ctx context.Context, userID, current, next string) (*Session, error) {
	if err := checkPassword(next); err != nil {
		return nil, err
	}
	user, err := repository.NewSQLiteUserRepo(l.conn).GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, contract.Unauthorized("account no longer exists")
	}
	if err != nil {
		return nil, err
	}
	if err := l.verify(ctx, userID, current); err != nil {
		return nil, contract.Unauthorized("current password is incorrect")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), l.cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	var session *Session
	err = l.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteCredentialRepo(tx).Set(ctx, userID, string(hash)); err != nil {
			return err
		}
		if err := repository.NewSQLiteAuthSessionRepo(tx).RevokeAllForUser(ctx, userID, l.now()); err != nil {
			return err
		}
		session, err = l.issue(ctx, tx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	l.log.Info().Str("user_id", userID).Msg("password changed")
	return session, nil
}

func (l *Local) DeleteAccount(ctx context.Context, userID, password string) error {
	if err := l.verify(ctx, userID, password); err != nil {
		return contract.Unauthorized("password is incorrect")
	}
	if err := repository.NewSQLiteUserRepo(l.conn).Delete(ctx, userID); err != nil {
		return err
	}
	l.log.Info().Str("user_id", userID).Msg("account deleted")
	return nil
}

func (l *Local) issue(ctx context.Context, tx db.DBTX, user *domain.User) (*Session, error) {
	now := l.now()
	row := &domain.AuthSession{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: now.Add(l.ttl),
		CreatedAt: now,
	}
	token, err := l.tokens.sign(user.ID, row.ID, now, row.ExpiresAt)
	if err != nil {
		return nil, err
	}
	if err := repository.NewSQLiteAuthSessionRepo(tx).Create(ctx, row); err != nil {
		return nil, err
	}
	return &Session{ID: row.ID, Token: token, User: user, ExpiresAt: row.ExpiresAt}, nil
}

func (l *Local) verify(ctx context.Context, userID, password string) error {
	hash, err := repository.NewSQLiteCredentialRepo(l.conn).Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return errBadCredentials
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return errBadCredentials
	}
	return nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", contract.Invalid("%q is not a valid email address", raw)
	}
	return email, nil
}

func checkPassword(p string) error {
	if len(p) < MinPasswordLength {
		return contract.Invalid("password must be at least %d characters", MinPasswordLength)
	}
	if len(p) > MaxPasswordLength {
		return contract.Invalid("password must be at most %d bytes", MaxPasswordLength)
	}
	return nil
}
