package player

import "context"

// Repository describes read access to the joined player universe.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	GetByIDs(ctx context.Context, playerIDs []string) ([]Player, error)
	SeasonIDs(ctx context.Context) ([]string, error)
}
