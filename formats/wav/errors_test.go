// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want string
	}{
		{ErrNotWavFile, "not a WAV file"},
		{ErrUnsupportedWavLayout, "unsupported WAV layout"},
		{ErrOnlyPCM16bitSupported, "only PCM 16-bit supported"},
	}
	for _, c := range cases {
		if c.err.Error() != c.want {
			t.Errorf("error = %q, want %q", c.err.Error(), c.want)
		}
		if !errors.Is(c.err, c.err) {
			t.Errorf("errors.Is() failed for %q", c.want)
		}
	}
}
