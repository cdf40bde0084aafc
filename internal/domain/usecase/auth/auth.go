// Package auth implements registration and login. It is the identity
// collaborator the rest of the core trusts: every authenticated request
// carries a bearer token issued here, and the middleware resolves it to a
// verified account ID.
package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"boomstream/internal/domain/entity"
	errs "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
	"boomstream/internal/domain/port/persistence"
)

// Service handles account registration and token issuance
type Service struct {
	accounts       persistence.AccountRepository
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
	jwtSecret      []byte
	tokenTTL       time.Duration
	initialBalance string
}

// NewService creates an auth service. initialBalance is the wallet balance
// every new account starts with.
func NewService(
	accounts persistence.AccountRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	jwtSecret string,
	tokenTTL time.Duration,
	initialBalance string,
) *Service {
	return &Service{
		accounts:       accounts,
		timeProvider:   timeProvider,
		logger:         logger,
		jwtSecret:      []byte(jwtSecret),
		tokenTTL:       tokenTTL,
		initialBalance: initialBalance,
	}
}

// Register creates a new account with the default wallet balance and
// returns it together with a signed token
func (s *Service) Register(ctx context.Context, name, email, password string) (*entity.Account, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", errs.ErrInvalidRequest
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	account, err := entity.NewAccount(name, email, string(hash), s.initialBalance, s.timeProvider)
	if err != nil {
		return nil, "", err
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(account.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("Account registered", map[string]any{
		"account_id": account.ID,
		"email":      account.Email,
	})
	return account, token, nil
}

// Login verifies the credentials and returns the account with a signed
// token. A missing account and a wrong password are indistinguishable to
// the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.Account, string, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return nil, "", errs.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", errs.ErrInvalidCredentials
	}

	token, err := s.issueToken(account.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("Account logged in", map[string]any{
		"account_id": account.ID,
	})
	return account, token, nil
}

// VerifyToken parses a bearer token and returns the account ID it names
func (s *Service) VerifyToken(tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrUnauthorized
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.timeProvider.Now))
	if err != nil || !token.Valid {
		return 0, errs.ErrUnauthorized
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, errs.ErrUnauthorized
	}

	accountID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || accountID == 0 {
		return 0, errs.ErrUnauthorized
	}
	return accountID, nil
}

func (s *Service) issueToken(accountID uint64) (string, error) {
	now := s.timeProvider.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(accountID, 10),
		Issuer:    "boomstream-api",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
