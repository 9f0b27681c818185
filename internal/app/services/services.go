package services

// İş mantığı servisleri burada olacak
// Örnek:
// type UniversityService struct {
//     // dependencies
// }
//
// func NewUniversityService() *UniversityService {
//     return &UniversityService{}
// }
//
// func (s *UniversityService) GetUniversities() ([]models.University, error) {
//     // İş mantığı
// }

// Services defined in this package:
// - UniversityService: Handles university CRUD, listing and search
// - RecommendationService: Handles preference-based recommendation ranking
// - StatsService: Handles dataset statistics and aggregates
