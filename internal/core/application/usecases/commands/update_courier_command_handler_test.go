package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUpdateCourierHandler(factory commands.UoWFactory) commands.UpdateCourierCommandHandler {
	return commands.NewUpdateCourierCommandHandler(factory, services.NewReconciliationPolicy())
}

func TestUpdateCourierCommandHandler_Handle_EvictsDisqualifiedOrders(t *testing.T) {
	// Arrange
	ctx := t.Context()

	// A car courier carries a heavy order; switching to foot must evict it
	// while the light, non-overlapping order stays assigned
	stored := newTestCourier(t, 1, courier.TransportCar, []int64{1}, []string{"09:00-12:00"})
	lightOrder := newTestOrder(t, 10, 5, 1, []string{"13:00-14:00"})
	heavyOrder := newTestOrder(t, 11, 40, 1, []string{"14:00-15:00"})

	newTransport := courier.TransportFoot
	cmd, err := commands.NewUpdateCourierCommand(stored.ID(), courier.Patch{TransportType: &newTransport})
	require.NoError(t, err)

	mockCourierRepo := new(MockCourierRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CourierRepository").Return(mockCourierRepo).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockCourierRepo.On("GetForUpdate", ctx, stored.ID()).Return(stored, nil).Once(),
		mockOrderRepo.On("GetAssignedToCourier", ctx, stored.ID()).
			Return([]*order.Order{lightOrder, heavyOrder}, nil).Once(),
		mockOrderRepo.On("Unassign", ctx, []order.ID{heavyOrder.ID()}).Return(nil).Once(),
		mockCourierRepo.On("Update", ctx, stored).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := newUpdateCourierHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, courier.TransportFoot, updated.TransportType())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockCourierRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}

func TestUpdateCourierCommandHandler_Handle_NoEvictions(t *testing.T) {
	// Arrange
	ctx := t.Context()

	stored := newTestCourier(t, 1, courier.TransportCar, []int64{1}, []string{"09:00-12:00"})
	lightOrder := newTestOrder(t, 10, 5, 1, []string{"13:00-14:00"})

	newEarnings := int64(900)
	cmd, err := commands.NewUpdateCourierCommand(stored.ID(), courier.Patch{Earnings: &newEarnings})
	require.NoError(t, err)

	mockCourierRepo := new(MockCourierRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CourierRepository").Return(mockCourierRepo).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockCourierRepo.On("GetForUpdate", ctx, stored.ID()).Return(stored, nil).Once(),
		mockOrderRepo.On("GetAssignedToCourier", ctx, stored.ID()).
			Return([]*order.Order{lightOrder}, nil).Once(),
		mockOrderRepo.On("Unassign", ctx, []order.ID(nil)).Return(nil).Once(),
		mockCourierRepo.On("Update", ctx, stored).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := newUpdateCourierHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, updated.Earnings())
	assert.Equal(t, int64(900), *updated.Earnings())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockCourierRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}

func TestUpdateCourierCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.UpdateCourierCommand // zero value command

	mockFactory := new(MockUoWFactory)
	handler := newUpdateCourierHandler(mockFactory)

	// Act
	_, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateCourierCommandIsNotConstructed)
	mockFactory.AssertExpectations(t) // No calls should be made to factory
}

func TestUpdateCourierCommandHandler_Handle_CourierNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()

	cmd, err := commands.NewUpdateCourierCommand(courier.ID(404), courier.Patch{})
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("courier", int64(404))
	mockCourierRepo := new(MockCourierRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CourierRepository").Return(mockCourierRepo).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockCourierRepo.On("GetForUpdate", ctx, courier.ID(404)).Return(nil, notFound).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := newUpdateCourierHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Nil(t, updated)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockCourierRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}

func TestUpdateCourierCommandHandler_Handle_InvalidPatchValueRollsBack(t *testing.T) {
	// Arrange
	ctx := t.Context()

	stored := newTestCourier(t, 1, courier.TransportCar, []int64{1}, []string{"09:00-12:00"})

	cmd, err := commands.NewUpdateCourierCommand(stored.ID(), courier.Patch{Regions: []int64{5, 5}})
	require.NoError(t, err)

	mockCourierRepo := new(MockCourierRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CourierRepository").Return(mockCourierRepo).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockCourierRepo.On("GetForUpdate", ctx, stored.ID()).Return(stored, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := newUpdateCourierHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, courier.ErrRegionsAreNotUnique)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockCourierRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}

func TestUpdateCourierCommandHandler_Handle_CommitError(t *testing.T) {
	// Arrange
	ctx := t.Context()

	stored := newTestCourier(t, 1, courier.TransportCar, []int64{1}, []string{"09:00-12:00"})

	cmd, err := commands.NewUpdateCourierCommand(stored.ID(), courier.Patch{})
	require.NoError(t, err)

	expectedError := errors.New("commit failed")
	mockCourierRepo := new(MockCourierRepository)
	mockOrderRepo := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CourierRepository").Return(mockCourierRepo).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockCourierRepo.On("GetForUpdate", ctx, stored.ID()).Return(stored, nil).Once(),
		mockOrderRepo.On("GetAssignedToCourier", ctx, stored.ID()).Return([]*order.Order{}, nil).Once(),
		mockOrderRepo.On("Unassign", ctx, []order.ID(nil)).Return(nil).Once(),
		mockCourierRepo.On("Update", ctx, stored).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := newUpdateCourierHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, expectedError, err)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockCourierRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}
