// SPDX-License-Identifier: EPL-2.0

package param

import (
	"sync"
	"testing"
)

func TestParameter_SetAndTakeUpdate(t *testing.T) {
	t.Parallel()

	p := NewParameter("cutoff", 100)
	if p.Value() != 100 {
		t.Errorf("initial Value() = %v, want 100", p.Value())
	}
	if _, ok := p.TakeUpdate(); ok {
		t.Error("TakeUpdate() reported a change before any Set")
	}

	p.Set(440)
	v, ok := p.TakeUpdate()
	if !ok || v != 440 {
		t.Errorf("TakeUpdate() = (%v, %v), want (440, true)", v, ok)
	}

	// The flag is consumed.
	if _, ok := p.TakeUpdate(); ok {
		t.Error("TakeUpdate() reported the same change twice")
	}
}

func TestParameter_QuickWritesCoalesce(t *testing.T) {
	t.Parallel()

	p := NewParameter("drive", 0)
	p.Set(1)
	p.Set(2)
	p.Set(3)

	v, ok := p.TakeUpdate()
	if !ok || v != 3 {
		t.Errorf("TakeUpdate() = (%v, %v), want the latest value (3, true)", v, ok)
	}
	if _, ok := p.TakeUpdate(); ok {
		t.Error("coalesced writes produced more than one observed change")
	}
}

func TestParameter_ConcurrentWriters(t *testing.T) {
	t.Parallel()

	p := NewParameter("x", 0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				p.Set(0.5)
			}
		}()
	}
	wg.Wait()

	v, ok := p.TakeUpdate()
	if !ok || v != 0.5 {
		t.Errorf("TakeUpdate() after concurrent writes = (%v, %v)", v, ok)
	}
}

func TestRemoteControl_NamesAndIDs(t *testing.T) {
	t.Parallel()

	rc := NewRemoteControl("Cutoff", "Resonance")
	if rc.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", rc.Count())
	}
	if rc.Name(0) != "Cutoff" || rc.Name(1) != "Resonance" {
		t.Errorf("names = %q, %q", rc.Name(0), rc.Name(1))
	}
}
