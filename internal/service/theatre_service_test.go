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

func TestTheatreService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	req := model.CreateTheatreRequest{Name: "Globe", Location: "London"}

	t.Run("Success", func(t *testing.T) {
		theatres := repomocks.NewMockTheatreRepository(t)
		users := repomocks.NewMockUserRepository(t)
		svc := service.NewTheatreService(theatres, users)

		users.EXPECT().FindByID(mock.Anything, userID).Return(&model.User{ID: userID}, nil).Once()
		theatres.EXPECT().Create(mock.Anything, mock.MatchedBy(func(th *model.Theatre) bool {
			return th.UserID == userID && th.Name == "Globe"
		})).Return(&model.Theatre{ID: uuid.New(), Name: "Globe"}, nil).Once()

		theatre, err := svc.Create(ctx, userID, req)

		require.NoError(t, err)
		assert.Equal(t, "Globe", theatre.Name)
	})

	t.Run("Failed - unknown user", func(t *testing.T) {
		users := repomocks.NewMockUserRepository(t)
		svc := service.NewTheatreService(repomocks.NewMockTheatreRepository(t), users)

		users.EXPECT().FindByID(mock.Anything, userID).Return(nil, apperrors.ErrUserNotFound).Once()

		_, err := svc.Create(ctx, userID, req)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestUserService_Profile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		users := repomocks.NewMockUserRepository(t)
		svc := service.NewUserService(users)

		users.EXPECT().FindByID(mock.Anything, userID).Return(&model.User{ID: userID, Email: "ada@example.com"}, nil).Once()

		profile, err := svc.Profile(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", profile.Email)
	})

	t.Run("Failed - deleted user", func(t *testing.T) {
		users := repomocks.NewMockUserRepository(t)
		svc := service.NewUserService(users)

		users.EXPECT().FindByID(mock.Anything, userID).Return(nil, apperrors.ErrUserNotFound).Once()

		_, err := svc.Profile(ctx, userID)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
