package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Veri erişim katmanı burada olacak
// Örnek:
// type UniversityRepository struct {
//     // DB bağlantısı
// }
//
// func NewUniversityRepository() *UniversityRepository {
//     return &UniversityRepository{}
// }
//
// func (r *UniversityRepository) FindAll() ([]models.University, error) {
//     // Veritabanından veri çekme işlemleri
// }

// Repositories holds all the repository instances
type Repositories struct {
	UniversityRepository *UniversityRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UniversityRepository: NewUniversityRepository(db),
	}
}
