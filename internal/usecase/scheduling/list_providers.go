package scheduling

import (
	"context"

	"github.com/hourbook/hourbook/internal/domain/schedule"
	"github.com/hourbook/hourbook/internal/models"
)

type ListProviders struct {
	repo schedule.Repository
}

func NewListProviders(repo schedule.Repository) *ListProviders {
	return &ListProviders{repo: repo}
}

// Execute returns every provider except the requesting user, so a provider
// browsing the app never sees itself in the list.
func (uc *ListProviders) Execute(
	ctx context.Context,
	excludeUserID string,
) ([]models.User, error) {
	return uc.repo.ListProviders(ctx, excludeUserID)
}
