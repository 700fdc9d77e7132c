package commands_test

import (
	"errors"
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/item"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddItemCheckpointCommandHandler_Handle(t *testing.T) {
	testCases := []struct {
		name        string
		status      item.Status
		updateErr   error
		expectedErr error
		stored      bool
	}{
		{name: "processing item", status: item.Processing, stored: true},
		{name: "ongoing item", status: item.Ongoing, stored: true},
		{name: "completed item", status: item.Completed, expectedErr: errs.ErrStateIsInvalid},
		{name: "missing item", status: item.Missing, expectedErr: errs.ErrStateIsInvalid},
		{
			name:        "update fails",
			status:      item.Processing,
			updateErr:   errors.New("update failed"),
			expectedErr: errors.New("update failed"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			ctx := t.Context()
			it := mustItem(4, tc.status)
			f := newCourierFixture()
			f.expectLoad(ctx, it)
			f.itemRepo.On("Update", ctx, it).Return(tc.updateErr).Maybe()
			f.uow.On("Commit", ctx).Return(nil).Maybe()

			cmd, err := commands.NewAddItemCheckpointCommand(4, "Sorted", "", receiver.String(), "Kuala Lumpur")
			require.NoError(t, err)

			handler := commands.NewAddItemCheckpointCommandHandler(f.factory, courierRegistry)

			// Act
			err = handler.Handle(ctx, cmd)

			// Assert
			if tc.expectedErr != nil {
				require.Error(t, err)
				if errors.Is(tc.expectedErr, errs.ErrStateIsInvalid) {
					require.ErrorIs(t, err, tc.expectedErr)
				} else {
					assert.EqualError(t, err, tc.expectedErr.Error())
				}
				f.uow.AssertNotCalled(t, "Commit", ctx)
			} else {
				require.NoError(t, err)
				f.uow.AssertCalled(t, "Commit", ctx)
			}

			assert.Equal(t, tc.status, it.Status())
			if tc.stored {
				require.Equal(t, 1, it.CheckpointCount())
				assert.Equal(t, "Sorted", it.Checkpoints()[0].StatusLabel())
			}
			if errors.Is(tc.expectedErr, errs.ErrStateIsInvalid) {
				assert.Equal(t, 0, it.CheckpointCount())
				f.itemRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestAddItemCheckpointCommandHandler_Handle_InvalidCommand(t *testing.T) {
	mockFactory := new(MockCourierUoWFactory)
	handler := commands.NewAddItemCheckpointCommandHandler(mockFactory, courierRegistry)

	err := handler.Handle(t.Context(), commands.AddItemCheckpointCommand{})

	require.ErrorIs(t, err, commands.ErrAddItemCheckpointCommandIsNotConstructed)
	mockFactory.AssertNotCalled(t, "Create")
}
