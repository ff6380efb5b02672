package repository

import (
	"cinebook/internal/database"
)

type Repositories struct {
	Users    *UserRepository
	Movies   *MovieRepository
	Bookings *BookingRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db),
		Movies:   NewMovieRepository(db),
		Bookings: NewBookingRepository(db),
	}
}
