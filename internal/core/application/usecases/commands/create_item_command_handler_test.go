package commands_test

import (
	"errors"
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/item"
	"tracking/internal/core/domain/model/registry"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateItemCommand(t *testing.T) commands.CreateItemCommand {
	t.Helper()
	cmd, err := commands.NewCreateItemCommand(1, "MY", receiver.String(), "Penang", payee.String(), 10000)
	require.NoError(t, err)
	return cmd
}

func TestCreateItemCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newCreateItemCommand(t)
	reg := mustCourierRegistry(4)

	mockRegistryRepo := new(MockRegistryRepository)
	mockItemRepo := new(MockItemRepository)
	mockUoW := new(MockCourierUoW)
	mockFactory := new(MockCourierUoWFactory)

	var added *item.Item
	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RegistryRepository").Return(mockRegistryRepo).Once(),
		mockUoW.On("ItemRepository").Return(mockItemRepo).Once(),
		mockRegistryRepo.On("Acquire", ctx, courierRegistry, registry.Courier).Return(reg, nil).Once(),
		mockItemRepo.On("Add", ctx, mock.AnythingOfType("*item.Item")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*item.Item) }).
			Return(nil).Once(),
		mockRegistryRepo.On("Update", ctx, reg).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateItemCommandHandler(mockFactory, courierRegistry)

	// Act
	id, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.EqualValues(t, 5, id)
	assert.EqualValues(t, 5, reg.LastID())
	require.NotNil(t, added)
	assert.Equal(t, item.Processing, added.Status())
	assert.Equal(t, 0, added.CheckpointCount())
	assert.Len(t, added.DomainEvents(), 1)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRegistryRepo.AssertExpectations(t)
	mockItemRepo.AssertExpectations(t)
}

func TestCreateItemCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.CreateItemCommand

	mockFactory := new(MockCourierUoWFactory)
	handler := commands.NewCreateItemCommandHandler(mockFactory, courierRegistry)

	// Act
	_, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrCreateItemCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

func TestCreateItemCommandHandler_Handle_BeginTransactionError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newCreateItemCommand(t)

	expectedError := errors.New("begin transaction failed")
	mockUoW := new(MockCourierUoW)
	mockFactory := new(MockCourierUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(expectedError).Once(),
	)

	handler := commands.NewCreateItemCommandHandler(mockFactory, courierRegistry)

	// Act
	_, err := handler.Handle(ctx, cmd)

	// Assert
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestCreateItemCommandHandler_Handle_RegistryKindConflict(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newCreateItemCommand(t)

	expectedError := errs.NewValueIsInvalidError("registry kind")
	mockRegistryRepo := new(MockRegistryRepository)
	mockItemRepo := new(MockItemRepository)
	mockUoW := new(MockCourierUoW)
	mockFactory := new(MockCourierUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RegistryRepository").Return(mockRegistryRepo).Once(),
		mockUoW.On("ItemRepository").Return(mockItemRepo).Once(),
		mockRegistryRepo.On("Acquire", ctx, courierRegistry, registry.Courier).Return(nil, expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateItemCommandHandler(mockFactory, courierRegistry)

	// Act
	_, err := handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockItemRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	mockUoW.AssertExpectations(t)
}

func TestCreateItemCommandHandler_Handle_RepositoryAddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newCreateItemCommand(t)
	reg := mustCourierRegistry(0)

	expectedError := errors.New("repository add failed")
	mockRegistryRepo := new(MockRegistryRepository)
	mockItemRepo := new(MockItemRepository)
	mockUoW := new(MockCourierUoW)
	mockFactory := new(MockCourierUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RegistryRepository").Return(mockRegistryRepo).Once(),
		mockUoW.On("ItemRepository").Return(mockItemRepo).Once(),
		mockRegistryRepo.On("Acquire", ctx, courierRegistry, registry.Courier).Return(reg, nil).Once(),
		mockItemRepo.On("Add", ctx, mock.AnythingOfType("*item.Item")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateItemCommandHandler(mockFactory, courierRegistry)

	// Act
	_, err := handler.Handle(ctx, cmd)

	// Assert
	assert.Equal(t, expectedError, err)
	mockRegistryRepo.AssertNotCalled(t, "Update", ctx, reg)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockUoW.AssertExpectations(t)
	mockItemRepo.AssertExpectations(t)
}
