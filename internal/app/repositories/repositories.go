package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     *UserRepository
	CoachRepository    *CoachRepository
	OfferingRepository *OfferingRepository
	TokenRepository    *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		CoachRepository:    NewCoachRepository(db),
		OfferingRepository: NewOfferingRepository(db),
		TokenRepository:    NewTokenRepository(db),
	}
}
