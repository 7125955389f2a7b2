package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"backoffice/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type lockError struct{ table string }

func (e *lockError) Error() string { return "lock timeout on " + e.table }

func TestKindNamesAreCodes(t *testing.T) {
	codes := map[serrors.Kind]string{
		serrors.ErrNotFound:     "NOT_FOUND",
		serrors.ErrBadRequest:   "BAD_REQUEST",
		serrors.ErrConflict:     "CONFLICT",
		serrors.ErrInvalidState: "INVALID_STATE",
		serrors.ErrInternal:     "INTERNAL",
		serrors.ErrTimeout:      "TIMEOUT",
		serrors.ErrUnavailable:  "UNAVAILABLE",
		serrors.ErrRateLimited:  "RATE_LIMITED",
	}
	require.Len(t, codes, 8, "kinds must be distinct")
	for k, code := range codes {
		require.Equal(t, code, k.Error())
	}
	require.NotEqual(t, serrors.NewKind("NOT_FOUND"), serrors.NewKind("CONFLICT"))
}

func TestError_Rendering(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name string
		err  *serrors.Error
		want string
	}{
		{"message only", serrors.With(serrors.ErrNotFound, "region %q not found", "th"), `region "th" not found`},
		{"message and cause", serrors.Wrap(serrors.ErrUnavailable, cause, "loading region"), "loading region: connection reset"},
		{"cause only", serrors.Wrap(serrors.ErrInternal, cause, ""), "connection reset"},
		{"kind only", serrors.KindOnly(serrors.ErrConflict), "CONFLICT"},
		{"nil", nil, "<nil>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_MatchesKindAndCause(t *testing.T) {
	cause := &lockError{table: "regions"}
	err := fmt.Errorf("could not update region: %w",
		serrors.Wrap(serrors.ErrTimeout, cause, "waiting for region lock"))

	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, serrors.ErrConflict)

	var k serrors.Kind
	require.ErrorAs(t, err, &k)
	require.Equal(t, serrors.ErrTimeout, k)

	var le *lockError
	require.ErrorAs(t, err, &le)
	require.Equal(t, "regions", le.table)
}

func TestError_Accessors(t *testing.T) {
	cause := errors.New("23505")
	err := serrors.Wrap(serrors.ErrConflict, cause, "email taken")

	require.Equal(t, serrors.ErrConflict, err.Kind())
	require.Equal(t, "email taken", err.Message())
	require.Equal(t, cause, err.Cause())
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))

	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(serrors.ErrNotFound))

	wrapped := fmt.Errorf("could not remove locale: %w",
		serrors.With(serrors.ErrInvalidState, "default locale cannot be removed"))
	require.Equal(t, serrors.ErrInvalidState, serrors.KindOf(wrapped))

	// the outermost semantic error decides the kind
	nested := serrors.Wrap(serrors.ErrTimeout, serrors.KindOnly(serrors.ErrInternal), "store timed out")
	require.Equal(t, serrors.ErrTimeout, serrors.KindOf(nested))
}
