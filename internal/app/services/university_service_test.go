package services_test

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/deniz/uniscope/internal/app/models/dto"
	"github.com/deniz/uniscope/internal/app/services"
	"github.com/deniz/uniscope/internal/pkg/apperrors"
)

// A nil repository is fine for these tests: every case below must be
// rejected before the service touches storage.
func newRejectionService() services.UniversityService {
	return services.NewUniversityService(nil)
}

func TestCreateUniversityRejectsInvalidPayloads(t *testing.T) {
	testCases := []struct {
		name string
		req  *dto.CreateUniversityRequest
	}{
		{name: "blank name", req: &dto.CreateUniversityRequest{Name: "   "}},
		{name: "zero rank", req: &dto.CreateUniversityRequest{Name: "Aalto University", QSRank: lo.ToPtr(0)}},
		{name: "metric above ten", req: &dto.CreateUniversityRequest{Name: "Aalto University", AcademicRigor: lo.ToPtr(10.5)}},
		{name: "negative metric", req: &dto.CreateUniversityRequest{Name: "Aalto University", CampusSafety: lo.ToPtr(-0.1)}},
		{name: "unknown facility flag", req: &dto.CreateUniversityRequest{Name: "Aalto University", Accommodation: lo.ToPtr("Maybe")}},
		{name: "partial language classes", req: &dto.CreateUniversityRequest{Name: "Aalto University", LanguageClasses: lo.ToPtr("Partial")}},
		{name: "negative response count", req: &dto.CreateUniversityRequest{Name: "Aalto University", ResponseCount: lo.ToPtr(-3)}},
	}

	svc := newRejectionService()
	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			_, err := svc.CreateUniversity(context.Background(), tc.req)
			rq.ErrorIs(err, apperrors.ErrValidationFailed)
		})
	}
}

func TestUpdateUniversityRejectsBadInput(t *testing.T) {
	rq := require.New(t)
	svc := newRejectionService()

	_, err := svc.UpdateUniversity(context.Background(), 0, &dto.UpdateUniversityRequest{Name: "Aalto University"})
	rq.ErrorIs(err, apperrors.ErrValidationFailed)

	_, err = svc.UpdateUniversity(context.Background(), 7, &dto.UpdateUniversityRequest{Name: "Aalto University", Openness: lo.ToPtr(12.0)})
	rq.ErrorIs(err, apperrors.ErrValidationFailed)
}

func TestGetUniversityByIDRejectsNonPositiveID(t *testing.T) {
	rq := require.New(t)
	svc := newRejectionService()

	_, err := svc.GetUniversityByID(context.Background(), 0)
	rq.ErrorIs(err, apperrors.ErrValidationFailed)

	_, err = svc.GetUniversityByID(context.Background(), -4)
	rq.ErrorIs(err, apperrors.ErrValidationFailed)
}

func TestDeleteUniversityRejectsNonPositiveID(t *testing.T) {
	rq := require.New(t)

	err := newRejectionService().DeleteUniversity(context.Background(), -1)
	rq.ErrorIs(err, apperrors.ErrValidationFailed)
}
