package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories is the container for all repository instances.
type Repositories struct {
	Course *CourseRepository
	Tag    *TagRepository
}

// NewRepositories creates all repositories sharing one connection pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Course: NewCourseRepository(db),
		Tag:    NewTagRepository(db),
	}
}
