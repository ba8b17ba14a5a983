// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWritePCM16_ClampsOutOfRange(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clamp.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WritePCM16(f, 8000, []float64{2.0, -2.0, 0.0}); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}
	f.Close()

	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	src, err := Decoder{}.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	buf := make([]float64, 4)
	n, _ := src.ReadSamples(buf)
	if n != 3 {
		t.Fatalf("ReadSamples() n = %d, want 3", n)
	}
	if buf[0] < 0.99 || buf[1] > -0.99 {
		t.Errorf("clamped samples = %v, want close to +1/-1", buf[:2])
	}
	if buf[2] != 0 {
		t.Errorf("buf[2] = %v, want 0", buf[2])
	}
}
