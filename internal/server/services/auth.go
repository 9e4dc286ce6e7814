// Package services contains server-side business logic. This file implements
// AuthService, the three-phase Chaum-Pedersen authentication flow:
// Register → CreateChallenge → VerifyResponse.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/zkauth/internal/common"
	"github.com/dmitrijs2005/zkauth/internal/logging"
	"github.com/dmitrijs2005/zkauth/internal/server/auth"
	"github.com/dmitrijs2005/zkauth/internal/server/challenges"
	"github.com/dmitrijs2005/zkauth/internal/server/config"
	"github.com/dmitrijs2005/zkauth/internal/server/registrations"
	"github.com/dmitrijs2005/zkauth/internal/zkp"
)

// Challenge is what CreateChallenge hands back to the prover.
type Challenge struct {
	ID    string
	Value []byte
}

// AuthService coordinates the registration and challenge stores with the
// proof engine. It keeps no state of its own; all shared state lives in the
// two repositories, which are never locked together.
type AuthService struct {
	engine                       *zkp.Engine
	random                       zkp.Source
	registrations                registrations.Repository
	challenges                   challenges.Repository
	logger                       logging.Logger
	jwtSecret                    []byte
	sessionTokenValidityDuration time.Duration
	allowReregistration          bool
	now                          func() time.Time
}

// NewAuthService wires the service from its collaborators and server config.
func NewAuthService(
	engine *zkp.Engine,
	random zkp.Source,
	regs registrations.Repository,
	chs challenges.Repository,
	logger logging.Logger,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		engine:                       engine,
		random:                       random,
		registrations:                regs,
		challenges:                   chs,
		logger:                       logger.With("module", "auth_service"),
		jwtSecret:                    []byte(cfg.SecretKey),
		sessionTokenValidityDuration: cfg.SessionTokenValidityDuration,
		allowReregistration:          cfg.AllowReregistration,
		now:                          time.Now,
	}
}

// Register stores the commitment (y1, y2) of identity's secret. An existing
// registration is replaced when re-registration is allowed, otherwise the
// call fails with common.ErrIdentityExists. Challenges issued against the
// old commitment stay pending but can no longer verify.
func (s *AuthService) Register(ctx context.Context, identity string, y1, y2 []byte) error {
	if identity == "" {
		return fmt.Errorf("%w: empty identity", common.ErrMalformedInput)
	}

	group := s.engine.Group()
	n1, err := group.DecodeElement(y1)
	if err != nil {
		return fmt.Errorf("y1: %w", err)
	}
	n2, err := group.DecodeElement(y2)
	if err != nil {
		return fmt.Errorf("y2: %w", err)
	}

	reg := &registrations.Registration{Identity: identity, Y1: n1, Y2: n2, RegisteredAt: s.now()}

	if !s.allowReregistration {
		if err := s.registrations.Create(ctx, reg); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return common.ErrIdentityExists
			}
			return fmt.Errorf("%w: storing registration: %v", common.ErrInternalInconsistency, err)
		}
		return nil
	}

	replaced, err := s.registrations.Put(ctx, reg)
	if err != nil {
		return fmt.Errorf("%w: storing registration: %v", common.ErrInternalInconsistency, err)
	}
	if replaced {
		s.logger.Warn(ctx, "registration replaced", "identity", identity)
	}
	return nil
}

// CreateChallenge records the prover's ephemeral commitment (r1, r2) for a
// registered identity and returns a fresh challenge with its one-time id.
// Either the session is fully stored or nothing is.
func (s *AuthService) CreateChallenge(ctx context.Context, identity string, r1, r2 []byte) (*Challenge, error) {
	if identity == "" {
		return nil, fmt.Errorf("%w: empty identity", common.ErrMalformedInput)
	}

	group := s.engine.Group()
	n1, err := group.DecodeElement(r1)
	if err != nil {
		return nil, fmt.Errorf("r1: %w", err)
	}
	n2, err := group.DecodeElement(r2)
	if err != nil {
		return nil, fmt.Errorf("r2: %w", err)
	}

	if _, err := s.registrations.Get(ctx, identity); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnknownIdentity
		}
		return nil, fmt.Errorf("%w: loading registration: %v", common.ErrInternalInconsistency, err)
	}

	c, err := group.RandomExponent(s.random)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInternalInconsistency, err)
	}
	id, err := s.random.ID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInternalInconsistency, err)
	}

	session := &challenges.Session{
		ID:        id,
		Identity:  identity,
		R1:        n1,
		R2:        n2,
		Challenge: c,
		CreatedAt: s.now(),
	}
	if err := s.challenges.Put(ctx, session); err != nil {
		if errors.Is(err, common.ErrDuplicateChallengeID) {
			s.logger.Error(ctx, "challenge id collision", "challenge_id", id)
		}
		return nil, fmt.Errorf("%w: storing challenge: %v", common.ErrInternalInconsistency, err)
	}

	return &Challenge{ID: id, Value: zkp.Encode(c)}, nil
}

// VerifyResponse consumes the challenge and checks the prover's response.
// The challenge is gone afterwards whatever the outcome, so a replayed id
// is indistinguishable from one that never existed. A malformed response is
// rejected before the challenge is touched.
func (s *AuthService) VerifyResponse(ctx context.Context, challengeID string, response []byte) (string, error) {
	if challengeID == "" {
		return "", fmt.Errorf("%w: empty challenge id", common.ErrMalformedInput)
	}

	group := s.engine.Group()
	resp, err := group.DecodeScalar(response)
	if err != nil {
		return "", fmt.Errorf("response: %w", err)
	}

	session, err := s.challenges.TakeAndRemove(ctx, challengeID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrUnknownChallenge
		}
		return "", fmt.Errorf("%w: taking challenge: %v", common.ErrInternalInconsistency, err)
	}

	// The registration store is only touched after the challenge store has
	// been released.
	reg, err := s.registrations.Get(ctx, session.Identity)
	if err != nil {
		return "", fmt.Errorf("%w: no registration for challenged identity %q: %v",
			common.ErrInternalInconsistency, session.Identity, err)
	}

	if !s.engine.Verify(session.R1, session.R2, reg.Y1, reg.Y2, session.Challenge, resp) {
		s.logger.Info(ctx, "proof rejected", "identity", session.Identity, "challenge_id", challengeID)
		return "", common.ErrProofRejected
	}

	tokenID, err := s.random.ID()
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInternalInconsistency, err)
	}
	token, err := auth.GenerateToken(session.Identity, tokenID, s.jwtSecret, s.sessionTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: signing session token: %v", common.ErrInternalInconsistency, err)
	}

	s.logger.Info(ctx, "proof verified", "identity", session.Identity, "challenge_id", challengeID)
	return token, nil
}

// Identify validates a session token issued by VerifyResponse and returns
// the identity it was issued to.
func (s *AuthService) Identify(ctx context.Context, token string) (string, error) {
	identity, err := auth.GetIdentityFromToken(token, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("session token: %w", err)
	}
	return identity, nil
}

// PurgeExpiredChallenges drops challenges older than ttl and returns how
// many were removed. A non-positive ttl keeps everything.
func (s *AuthService) PurgeExpiredChallenges(ctx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, nil
	}
	return s.challenges.PurgeOlderThan(ctx, s.now().Add(-ttl))
}
