package service

import (
	"context"

	"github.com/aliskhannn/periodic-quiz-bot/internal/domain/entities"
)

type ElementRepository interface {
	GetByNumber(_ context.Context, number int) (*entities.Element, error)
	GetBySymbol(_ context.Context, symbol string) (*entities.Element, error)
	GetAll(_ context.Context) ([]*entities.Element, error)
}

type ElementService struct {
	repository ElementRepository
}

func NewElementService(repository ElementRepository) *ElementService {
	return &ElementService{repository: repository}
}

func (s *ElementService) GetByNumber(ctx context.Context, number int) (*entities.Element, error) {
	return s.repository.GetByNumber(ctx, number)
}

func (s *ElementService) GetBySymbol(ctx context.Context, symbol string) (*entities.Element, error) {
	return s.repository.GetBySymbol(ctx, symbol)
}

func (s *ElementService) GetAll(ctx context.Context) ([]*entities.Element, error) {
	return s.repository.GetAll(ctx)
}
