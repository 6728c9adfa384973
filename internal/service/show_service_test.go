package service_test

import (
	"context"
	"testing"
	"time"

	"theatre-booking/internal/model"
	repomocks "theatre-booking/internal/repository/mocks"
	"theatre-booking/internal/service"
	apperrors "theatre-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShowService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		shows := repomocks.NewMockShowRepository(t)
		svc := service.NewShowService(shows)

		shows.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s *model.Show) bool {
			return s.UserID == userID && s.Duration == 120
		})).Return(&model.Show{ID: uuid.New(), Duration: 120}, nil).Once()

		show, err := svc.Create(ctx, userID, model.CreateShowRequest{
			Name:        "Hamlet",
			Duration:    120,
			ReleaseDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Rating:      8,
		})

		require.NoError(t, err)
		assert.Equal(t, 120, show.Duration)
	})

	t.Run("Failed - out of range", func(t *testing.T) {
		svc := service.NewShowService(repomocks.NewMockShowRepository(t))

		_, err := svc.Create(ctx, userID, model.CreateShowRequest{Name: "Too long", Duration: 601, Rating: 5})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		_, err = svc.Create(ctx, userID, model.CreateShowRequest{Name: "Unrated", Duration: 90, Rating: 11})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestShowService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Failed - empty patch", func(t *testing.T) {
		svc := service.NewShowService(repomocks.NewMockShowRepository(t))

		_, err := svc.Update(ctx, userID, uuid.New(), model.UpdateShowParams{})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - not owner", func(t *testing.T) {
		shows := repomocks.NewMockShowRepository(t)
		svc := service.NewShowService(shows)
		id := uuid.New()
		name := "Macbeth"

		shows.EXPECT().FindOwnedShow(mock.Anything, userID, id).Return(nil, apperrors.ErrShowNotFound).Once()

		_, err := svc.Update(ctx, userID, id, model.UpdateShowParams{Name: &name})
		assert.ErrorIs(t, err, apperrors.ErrShowNotFound)
	})
}
