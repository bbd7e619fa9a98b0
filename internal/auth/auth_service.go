package auth

import (
	"context"
	"errors"
	"os"
	"time"

	autherrors "go-viagens/internal/auth/errors"
	"go-viagens/internal/employee"
	employeeerrors "go-viagens/internal/employee/errors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenPairResponse, error)
	Register(ctx context.Context, req RegisterRequest) (TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPairResponse, error)
	Me(ctx context.Context, employeeID int64) (MeResponse, error)
}

type service struct {
	employeeRepo    employee.Repository
	employeeService employee.Service
	secret          []byte
	logger          *zap.Logger
}

func NewService(employeeRepo employee.Repository, employeeService employee.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		employeeRepo:    employeeRepo,
		employeeService: employeeService,
		secret:          []byte(os.Getenv("JWT_SECRET")),
		logger:          l,
	}
}

func (s *service) signToken(e *employee.Employee, ttl time.Duration, kind string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"idEmpregado":   e.ID,
		"idCargo":       e.RoleID,
		"nomeEmpregado": e.Name,
		"email":         e.Email,
		"typ":           kind,
		"iat":           now.Unix(),
		"exp":           now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *service) issuePair(e *employee.Employee) (TokenPairResponse, error) {
	access, err := s.signToken(e, accessTokenTTL, "access")
	if err != nil {
		return TokenPairResponse{}, err
	}
	refresh, err := s.signToken(e, refreshTokenTTL, "refresh")
	if err != nil {
		return TokenPairResponse{}, err
	}
	return TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (TokenPairResponse, error) {
	e, err := s.employeeRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPairResponse{}, autherrors.ErrInvalidCredentials
		}
		return TokenPairResponse{}, err
	}

	if !e.Active {
		return TokenPairResponse{}, autherrors.ErrInactiveEmployee
	}

	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login rejected", zap.String("email", req.Email))
		return TokenPairResponse{}, autherrors.ErrInvalidCredentials
	}

	s.logger.Info("login success", zap.Int64("employee_id", e.ID))
	return s.issuePair(e)
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (TokenPairResponse, error) {
	created, err := s.employeeService.Create(ctx, employee.CreateEmployeeRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, employeeerrors.ErrEmailAlreadyRegistered) {
			return TokenPairResponse{}, autherrors.ErrEmailAlreadyRegistered
		}
		return TokenPairResponse{}, err
	}

	e, err := s.employeeRepo.FindByID(ctx, created.ID)
	if err != nil {
		return TokenPairResponse{}, err
	}

	s.logger.Info("register success", zap.Int64("employee_id", e.ID))
	return s.issuePair(e)
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenPairResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		if err != nil && errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPairResponse{}, autherrors.ErrTokenExpired
		}
		return TokenPairResponse{}, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenPairResponse{}, autherrors.ErrInvalidToken
	}
	if kind, _ := claims["typ"].(string); kind != "refresh" {
		return TokenPairResponse{}, autherrors.ErrInvalidToken
	}

	idFloat, ok := claims["idEmpregado"].(float64)
	if !ok || idFloat <= 0 {
		return TokenPairResponse{}, autherrors.ErrInvalidToken
	}

	// Fresh fetch so role or deactivation changes take effect on rotation.
	e, err := s.employeeRepo.FindByID(ctx, int64(idFloat))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPairResponse{}, autherrors.ErrInvalidToken
		}
		return TokenPairResponse{}, err
	}
	if !e.Active {
		return TokenPairResponse{}, autherrors.ErrInactiveEmployee
	}

	return s.issuePair(e)
}

func (s *service) Me(ctx context.Context, employeeID int64) (MeResponse, error) {
	e, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return MeResponse{}, err
	}

	return MeResponse{
		ID:     e.ID,
		Name:   e.Name,
		Email:  e.Email,
		RoleID: e.RoleID,
		Active: e.Active,
	}, nil
}
