package user

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the normalized request fields and persists the new
// user. Whether the email is already taken is decided by the repository.
func (s *Service) Create(ctx context.Context, fields map[string]any) (User, error) {
	input, err := ParseNewUser(fields)
	if err != nil {
		return User{}, err
	}

	return s.repo.Create(ctx, input)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}
