package reservation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/club-backend/internal/pkg/validation"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name                                    string
		isTraining, isLesson, isChallenge, gift bool
		want                                    Kind
	}{
		{"no flags", false, false, false, false, KindNormal},
		{"training", true, false, false, false, KindTraining},
		{"lesson", false, true, false, false, KindLesson},
		{"challenge", false, false, true, false, KindChallenge},
		{"gift", false, false, false, true, KindGift},
		{"training beats challenge", true, false, true, false, KindTraining},
		{"training beats gift", true, false, false, true, KindTraining},
		{"lesson beats challenge and gift", false, true, true, true, KindLesson},
		{"challenge beats gift", false, false, true, true, KindChallenge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.isTraining, tt.isLesson, tt.isChallenge, tt.gift))
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Run("iso passes through", func(t *testing.T) {
		got, err := ParseDate("date", "2026-03-15")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-15", got)
	})

	t.Run("dotted form is canonicalized", func(t *testing.T) {
		got, err := ParseDate("date", "15.03.2026")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-15", got)
	})

	t.Run("garbage is a validation error naming the field", func(t *testing.T) {
		_, err := ParseDate("date", "next tuesday")
		require.Error(t, err)

		var vErr *validation.Error
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "date", vErr.Field)
	})

	t.Run("empty string is rejected", func(t *testing.T) {
		_, err := ParseDate("date", "")
		assert.Error(t, err)
	})
}
