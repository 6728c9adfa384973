package service_test

import (
	"context"
	"testing"

	"theatre-booking/internal/model"
	repomocks "theatre-booking/internal/repository/mocks"
	"theatre-booking/internal/service"
	apperrors "theatre-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuditoriumService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	theatre := &model.Theatre{ID: uuid.New(), UserID: userID}

	t.Run("Success - capacity defaults to seat count", func(t *testing.T) {
		auditoriums := repomocks.NewMockAuditoriumRepository(t)
		theatres := repomocks.NewMockTheatreRepository(t)
		svc := service.NewAuditoriumService(auditoriums, theatres)

		theatres.EXPECT().FindUserTheatre(mock.Anything, userID, theatre.ID).Return(theatre, nil).Once()
		auditoriums.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *model.Auditorium) bool {
			return a.Capacity == 4 && a.TheatreID == theatre.ID
		})).Return(&model.Auditorium{ID: uuid.New(), Capacity: 4}, nil).Once()

		created, err := svc.Create(ctx, userID, theatre.ID, model.CreateAuditoriumRequest{Name: "Main", SeatMap: seatMap(4)})

		require.NoError(t, err)
		assert.Equal(t, 4, created.Capacity)
	})

	t.Run("Failed - duplicate seat numbers across rows", func(t *testing.T) {
		auditoriums := repomocks.NewMockAuditoriumRepository(t)
		theatres := repomocks.NewMockTheatreRepository(t)
		svc := service.NewAuditoriumService(auditoriums, theatres)

		theatres.EXPECT().FindUserTheatre(mock.Anything, userID, theatre.ID).Return(theatre, nil).Once()

		bad := model.SeatMap{Rows: []model.SeatRow{
			{Row: "A", Seats: []model.Seat{{Column: 1, SeatNumber: "1"}}},
			{Row: "B", Seats: []model.Seat{{Column: 1, SeatNumber: "1"}}},
		}}
		_, err := svc.Create(ctx, userID, theatre.ID, model.CreateAuditoriumRequest{Name: "Main", SeatMap: bad})

		assert.ErrorIs(t, err, apperrors.ErrInvalidSeatMap)
		assert.Contains(t, err.Error(), "Seat numbers must be unique across all rows.")
	})

	t.Run("Failed - theatre of another user", func(t *testing.T) {
		auditoriums := repomocks.NewMockAuditoriumRepository(t)
		theatres := repomocks.NewMockTheatreRepository(t)
		svc := service.NewAuditoriumService(auditoriums, theatres)

		theatres.EXPECT().FindUserTheatre(mock.Anything, userID, theatre.ID).Return(nil, apperrors.ErrTheatreNotFound).Once()

		_, err := svc.Create(ctx, userID, theatre.ID, model.CreateAuditoriumRequest{Name: "Main", SeatMap: seatMap(1)})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestAuditoriumService_FindOne(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed - auditorium of a different theatre", func(t *testing.T) {
		auditoriums := repomocks.NewMockAuditoriumRepository(t)
		svc := service.NewAuditoriumService(auditoriums, repomocks.NewMockTheatreRepository(t))
		id := uuid.New()

		auditoriums.EXPECT().FindByID(mock.Anything, id).Return(&model.Auditorium{ID: id, TheatreID: uuid.New()}, nil).Once()

		_, err := svc.FindOne(ctx, uuid.New(), id)
		assert.ErrorIs(t, err, apperrors.ErrAuditoriumNotFound)
	})
}

func TestAuditoriumService_Remove(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	theatreID := uuid.New()
	auditorium := &model.Auditorium{ID: uuid.New(), TheatreID: theatreID}

	t.Run("Failed - AuditoriumInUse", func(t *testing.T) {
		auditoriums := repomocks.NewMockAuditoriumRepository(t)
		svc := service.NewAuditoriumService(auditoriums, repomocks.NewMockTheatreRepository(t))

		auditoriums.EXPECT().FindUserAuditorium(mock.Anything, userID, auditorium.ID).Return(auditorium, nil).Once()
		auditoriums.EXPECT().Delete(mock.Anything, auditorium.ID).Return(apperrors.ErrAuditoriumInUse).Once()

		assert.ErrorIs(t, svc.Remove(ctx, userID, theatreID, auditorium.ID), apperrors.ErrAuditoriumInUse)
	})
}
