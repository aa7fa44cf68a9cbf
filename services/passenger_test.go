package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jinu2024/TrainBookingSystem/database"
	"github.com/jinu2024/TrainBookingSystem/models"
	"github.com/jinu2024/TrainBookingSystem/services/mocks"
)

func savedPassengers() []models.Passenger {
	return []models.Passenger{
		{ID: "p-1", UserID: 7, Name: "Bob", DOB: "2015-02-03", Gender: "male", Position: 1},
		{ID: "p-2", UserID: 7, Name: "Carol", DOB: "2017-06-07", Gender: "female", Position: 2},
	}
}

func TestPassengerIDAt(t *testing.T) {
	store := new(mocks.Store)
	store.On("ListPassengers", mock.Anything, 7).Return(savedPassengers(), nil)
	svc := NewPassengerService(store, quietLogger())

	id, err := svc.PassengerIDAt(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, "p-2", id)

	_, err = svc.PassengerIDAt(context.Background(), 7, 2)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.PassengerIDAt(context.Background(), 7, -1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddPassenger(t *testing.T) {
	store := new(mocks.Store)
	store.On("GetUser", mock.Anything, 7).Return(alice(), nil)
	store.On("AddPassenger", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*models.Passenger).Position = 3 }).
		Return(nil)
	svc := NewPassengerService(store, quietLogger())

	p, err := svc.AddPassenger(context.Background(), 7, models.PassengerRequest{
		Name: "Dan", DOB: "2019-01-01", Gender: "Male",
	})

	require.NoError(t, err)
	_, parseErr := uuid.Parse(p.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, 7, p.UserID)
	assert.Equal(t, "male", p.Gender)
	assert.Equal(t, 3, p.Position)
}

func TestAddPassenger_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.PassengerRequest
	}{
		{"missing name", models.PassengerRequest{DOB: "2019-01-01", Gender: "male"}},
		{"bad dob", models.PassengerRequest{Name: "Dan", DOB: "01/01/2019", Gender: "male"}},
		{"bad gender", models.PassengerRequest{Name: "Dan", DOB: "2019-01-01", Gender: "x"}},
		{"bad mobile", models.PassengerRequest{Name: "Dan", DOB: "2019-01-01", Gender: "male", Mobile: "12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.Store)
			store.On("GetUser", mock.Anything, 7).Return(alice(), nil)
			svc := NewPassengerService(store, quietLogger())

			_, err := svc.AddPassenger(context.Background(), 7, tt.req)

			assert.ErrorIs(t, err, ErrValidation)
			store.AssertNotCalled(t, "AddPassenger", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdatePassenger_KeepsIdentity(t *testing.T) {
	store := new(mocks.Store)
	current := savedPassengers()[1]
	store.On("GetPassenger", mock.Anything, 7, "p-2").Return(&current, nil)
	store.On("UpdatePassenger", mock.Anything, mock.MatchedBy(func(p *models.Passenger) bool {
		return p.ID == "p-2" && p.Position == 2 && p.Name == "Caroline"
	})).Return(nil)
	svc := NewPassengerService(store, quietLogger())

	p, err := svc.UpdatePassenger(context.Background(), 7, "p-2", models.PassengerRequest{
		Name: "Caroline", DOB: "2017-06-07", Gender: "female",
	})

	require.NoError(t, err)
	assert.Equal(t, "Caroline", p.Name)
	store.AssertExpectations(t)
}

func TestRemovePassenger_Unknown(t *testing.T) {
	store := new(mocks.Store)
	store.On("DeletePassenger", mock.Anything, 7, "nope").Return(database.ErrNotFound)
	svc := NewPassengerService(store, quietLogger())

	assert.ErrorIs(t, svc.RemovePassenger(context.Background(), 7, "nope"), ErrNotFound)
}
