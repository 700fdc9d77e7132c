package kernel_test

import (
	"testing"

	"tracking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	require.NoError(t, first.Validate())
	assert.False(t, first.IsEqual(second))
	assert.Equal(t, uuid.Version(4), first.Bytes().Version())
}

func TestUUIDFromBytes(t *testing.T) {
	source := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	tests := []struct {
		name    string
		raw     []byte
		want    string
		wantErr error
	}{
		{name: "stored event id", raw: source[:], want: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "nil uuid", raw: uuid.Nil[:], wantErr: kernel.ErrUUIDIsNotConstructed},
		{name: "short slice", raw: []byte{0x55, 0x0e}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.UUIDFromBytes(tt.raw)

			if tt.want == "" {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.String())
		})
	}
}

func TestUUID_RoundTripThroughBytes(t *testing.T) {
	id := kernel.NewUUID()
	raw := id.Bytes()

	restored, err := kernel.UUIDFromBytes(raw[:])

	require.NoError(t, err)
	assert.True(t, id.IsEqual(restored))
}

func TestUUID_ZeroValueIsInvalid(t *testing.T) {
	var id kernel.UUID

	assert.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
}
