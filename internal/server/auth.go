package server

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/santescan/santescan/gen/proto/santescan/v1"
	"github.com/santescan/santescan/internal/common"
	"github.com/santescan/santescan/internal/identity"
)

type AuthService struct {
	v1.UnimplementedAuthServiceServer
	reconciler *identity.Reconciler
	signKey    []byte
	accessTTL  time.Duration
	logger     *zap.Logger
}

func NewAuthService(reconciler *identity.Reconciler, signKey []byte, accessTTL time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		reconciler: reconciler,
		signKey:    signKey,
		accessTTL:  accessTTL,
		logger:     logger,
	}
}

// Register implements v1.AuthServiceServer.
func (s *AuthService) Register(ctx context.Context, req *v1.RegisterRequest) (*v1.RegisterResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}
	if req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "password is required")
	}
	if req.GetAge() < 0 {
		return nil, status.Error(codes.InvalidArgument, "age must not be negative")
	}

	acct, migrated, err := s.reconciler.Register(ctx, identity.RegisterRequest{
		Email:        email,
		Password:     req.GetPassword(),
		Age:          int(req.GetAge()),
		Gender:       req.GetGender(),
		SessionToken: req.GetSessionToken(),
	})
	if err != nil {
		s.logger.Warn("registration failed", zap.Error(err))
		return nil, common.Classify(err)
	}

	token, _, err := identity.IssueAccessToken(s.signKey, acct.ID, s.accessTTL)
	if err != nil {
		s.logger.Error("token issuance failed", zap.String("account_id", acct.ID.String()), zap.Error(err))
		return nil, status.Error(codes.Internal, "registration succeeded but token issuance failed")
	}

	s.logger.Info("account registered",
		zap.String("account_id", acct.ID.String()),
		zap.Int("migrated", migrated),
	)
	return &v1.RegisterResponse{
		AccountId:     acct.ID.String(),
		MigratedCount: int32(migrated),
		AccessToken:   token,
	}, nil
}
