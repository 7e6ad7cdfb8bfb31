package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/app/service"
	"github.com/stayforge/hotel-booking-service/internal/hotelbooking/domain"
	domainmock "github.com/stayforge/hotel-booking-service/internal/hotelbooking/domain/mock"
	"github.com/stayforge/hotel-booking-service/pkg/optional"
)

func TestProfile_Update_PassesOnlyPresentFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := domainmock.NewUserRepository(ctrl)
	mock.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, changes domain.ProfileChanges) (domain.User, error) {
			assert.True(t, changes.FirstName.Present)
			assert.Equal(t, "Jane", changes.FirstName.Value)
			assert.False(t, changes.LastName.Present)

			return domain.User{ID: 1, FirstName: "Jane", LastName: "Doe"}, nil
		})

	svc := service.NewProfile(mock)
	user, err := svc.Update(context.Background(), 1, domain.ProfileChanges{FirstName: optional.Of("Jane")})
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.FirstName)
	assert.Equal(t, "Doe", user.LastName)
}

func TestProfile_Update_ReadsCurrentStateWhenNoChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := domainmock.NewUserRepository(ctrl)
	mock.EXPECT().FindByID(gomock.Any(), int64(1)).
		Return(domain.User{ID: 1, FirstName: "John"}, nil)

	svc := service.NewProfile(mock)
	user, err := svc.Update(context.Background(), 1, domain.ProfileChanges{})
	require.NoError(t, err)
	assert.Equal(t, "John", user.FirstName)
}

func TestProfile_Get_Returns(t *testing.T) {
	tests := []struct {
		name     string
		userRepo func(ctrl *gomock.Controller) domain.UserRepository
		expect   func(t *testing.T, user domain.User, err error)
	}{
		{
			name: "success",
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := domainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(domain.User{ID: 1, Email: "john@example.com"}, nil)
				return mock
			},
			expect: func(t *testing.T, user domain.User, err error) {
				require.NoError(t, err)
				assert.Equal(t, "john@example.com", user.Email)
			},
		},
		{
			name: "error_when_user_not_found",
			userRepo: func(ctrl *gomock.Controller) domain.UserRepository {
				mock := domainmock.NewUserRepository(ctrl)
				mock.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(domain.User{}, domain.ErrUserNotFound)
				return mock
			},
			expect: func(t *testing.T, _ domain.User, err error) {
				assert.ErrorIs(t, err, domain.ErrUserNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := service.NewProfile(tt.userRepo(ctrl))

			user, err := svc.Get(context.Background(), 1)
			tt.expect(t, user, err)
		})
	}
}
