package app

import (
	"fmt"
	"strings"
	"time"

	"pacifisai/internal/util"
	"pacifisai/pkg/auth"
	"pacifisai/pkg/domain"
	"pacifisai/pkg/kv"
	"pacifisai/pkg/store"
)

// Config holds runtime configuration for the core application.
type Config struct {
	DataPath      string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	SessionTTL    time.Duration
	Store         store.Store
	Sessions      store.SessionStore
}

// App is the core application service wiring the account registry and
// session persistence together.
type App struct {
	store    store.Store
	sessions store.SessionStore
}

// New constructs the application with registry storage and session management.
// Backend selection: an injected store wins, then Postgres when databaseURL is
// set, then the flat key-value file at dataPath. Sessions follow the same
// pattern: injected, then signed tokens when jwtSecret is set, then Redis,
// then the key-value file.
func New(cfg Config) (*App, error) {
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = 24 * time.Hour
	}

	dataStore := cfg.Store
	var fileBackend kv.KV
	if dataStore == nil {
		switch {
		case strings.TrimSpace(cfg.DatabaseURL) != "":
			gormStore, err := store.NewGormStore(cfg.DatabaseURL)
			if err != nil {
				return nil, fmt.Errorf("init postgres store: %w", err)
			}
			dataStore = gormStore
		case strings.TrimSpace(cfg.DataPath) != "":
			fileKV, err := kv.NewFileKV(cfg.DataPath)
			if err != nil {
				return nil, fmt.Errorf("init file store: %w", err)
			}
			fileBackend = fileKV
			dataStore = store.NewKVStore(fileKV)
		default:
			return nil, fmt.Errorf("databaseURL or dataPath required")
		}
	}

	sessionStore := cfg.Sessions
	if sessionStore == nil {
		switch {
		case strings.TrimSpace(cfg.JWTSecret) != "":
			var revoker store.TokenRevoker
			if strings.TrimSpace(cfg.RedisAddr) != "" {
				revoker = store.NewRedisTokenRevoker(cfg.RedisAddr, cfg.RedisPassword)
			} else {
				revoker = store.NewMemoryTokenRevoker()
			}
			jwtStore, err := store.NewJWTSessionStore(cfg.JWTSecret, cfg.SessionTTL, revoker)
			if err != nil {
				return nil, fmt.Errorf("init jwt session store: %w", err)
			}
			sessionStore = jwtStore
		case strings.TrimSpace(cfg.RedisAddr) != "":
			sessionStore = store.NewRedisSessionStore(cfg.RedisAddr, cfg.RedisPassword, cfg.SessionTTL)
		case fileBackend != nil:
			sessionStore = store.NewKVSessionStore(fileBackend)
		default:
			return nil, fmt.Errorf("session backend required: set jwtSecret, redisAddr, or dataPath")
		}
	}

	return &App{
		store:    dataStore,
		sessions: sessionStore,
	}, nil
}

// Register creates a new account and establishes its session.
// Email comparison is exact and case-sensitive.
func (a *App) Register(email, password string) (domain.Identity, string, error) {
	if email == "" || password == "" {
		return domain.Identity{}, "", ErrEmailAndPasswordRequired
	}
	if err := auth.ValidatePassword(password); err != nil {
		return domain.Identity{}, "", err
	}
	exists, err := a.store.HasAccountEmail(email)
	if err != nil {
		return domain.Identity{}, "", storageUnavailable("check email", err)
	}
	if exists {
		return domain.Identity{}, "", ErrDuplicateAccount
	}
	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return domain.Identity{}, "", fmt.Errorf("hash password: %w", err)
	}
	account := domain.Account{
		ID:           util.NewID(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := a.store.SaveAccount(account); err != nil {
		return domain.Identity{}, "", storageUnavailable("save account", err)
	}
	token, err := a.sessions.NewSession(account.Identity())
	if err != nil {
		return domain.Identity{}, "", storageUnavailable("persist session", err)
	}
	return account.Identity(), token, nil
}

// Login validates credentials and establishes a session. Unknown email and
// wrong password collapse to the same error.
func (a *App) Login(email, password string) (domain.Identity, string, error) {
	account, ok, err := a.store.GetAccountByEmail(email)
	if err != nil {
		return domain.Identity{}, "", storageUnavailable("fetch account", err)
	}
	if !ok {
		return domain.Identity{}, "", ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, account.PasswordHash) {
		return domain.Identity{}, "", ErrInvalidCredentials
	}
	token, err := a.sessions.NewSession(account.Identity())
	if err != nil {
		return domain.Identity{}, "", storageUnavailable("persist session", err)
	}
	return account.Identity(), token, nil
}

// Logout invalidates the session token. Logging out an already logged-out
// session is a no-op, not an error.
func (a *App) Logout(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	if err := a.sessions.DeleteSession(token); err != nil {
		return storageUnavailable("delete session", err)
	}
	return nil
}

// Restore resolves a persisted session token back to its identity. A missing,
// expired, or malformed session reads as logged-out, never as an error.
func (a *App) Restore(token string) (domain.Identity, bool, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Identity{}, false, nil
	}
	identity, ok, err := a.sessions.GetIdentityByToken(token)
	if err != nil {
		return domain.Identity{}, false, storageUnavailable("read session", err)
	}
	return identity, ok, nil
}

// AccountCount reports the registry size.
func (a *App) AccountCount() (int, error) {
	count, err := a.store.AccountCount()
	if err != nil {
		return 0, storageUnavailable("count accounts", err)
	}
	return count, nil
}

func storageUnavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrStorageUnavailable, err)
}
