package util

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"recover failed", ErrRecoverFailed, ExitRecoverFailed},
		{"shard corrupted", ErrShardCorrupted, ExitShardInvalid},
		{"unsupported version", ErrUnsupportedVersion, ExitUnsupportedVersion},
		{"wrapped", fmt.Errorf("reading shard: %w", ErrShardCorrupted), ExitShardInvalid},
		{"unknown", errors.New("something else"), ExitGenericError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ExitCodeForError(c.err); got != c.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", c.err, got, c.want)
			}
		})
	}
}
