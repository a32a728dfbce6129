package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/DevKaiky/appfit-API/internal/models"
	"github.com/DevKaiky/appfit-API/internal/repository"
	"github.com/DevKaiky/appfit-API/internal/token"
	"github.com/DevKaiky/appfit-API/internal/validation"
)

// ErrCredenciaisInvalidas is returned for an unknown e-mail and for a wrong
// password alike, so the error text cannot be used to enumerate accounts.
var ErrCredenciaisInvalidas = errors.New("E-mail ou senha inválidos")

type LoginResult struct {
	Usuario *models.UsuarioResource `json:"usuario"`
	Token   string                  `json:"token"`
}

type AuthService interface {
	Login(ctx context.Context, email, senha string) (*LoginResult, error)
}

type authService struct {
	usuarioRepo repository.UsuarioRepository
	tokens      *token.Service
}

func NewAuthService(usuarioRepo repository.UsuarioRepository, tokens *token.Service) AuthService {
	return &authService{
		usuarioRepo: usuarioRepo,
		tokens:      tokens,
	}
}

func (s *authService) Login(ctx context.Context, email, senha string) (*LoginResult, error) {
	if err := validation.ValidateLogin(email, senha); err != nil {
		return nil, err
	}

	usuario, err := s.usuarioRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if usuario == nil {
		return nil, ErrCredenciaisInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Senha), []byte(senha)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	signed, err := s.tokens.Issue(usuario.ID, usuario.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResult{
		Usuario: usuario.ToResource(),
		Token:   signed,
	}, nil
}
