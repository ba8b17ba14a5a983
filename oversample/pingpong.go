// SPDX-License-Identifier: EPL-2.0

package oversample

// pingPongBuffer holds the intermediate oversampled signal. Its two
// halves alternate as "current input" and "current output" between
// cascade stages; a single switch flips their roles, so reads and
// writes stay disjoint by construction.
type pingPongBuffer struct {
	left, right []float64
	inputIsLeft bool
}

func newPingPongBuffer(size int) pingPongBuffer {
	return pingPongBuffer{
		left:        make([]float64, size),
		right:       make([]float64, size),
		inputIsLeft: true,
	}
}

func (p *pingPongBuffer) fill(v float64) {
	for i := range p.left {
		p.left[i] = v
		p.right[i] = v
	}
}

// ioBuffers returns the current input and output views of length n.
func (p *pingPongBuffer) ioBuffers(n int) (in, out []float64) {
	if p.inputIsLeft {
		return p.left[:n], p.right[:n]
	}
	return p.right[:n], p.left[:n]
}

// outputRef returns the current output view of length n.
func (p *pingPongBuffer) outputRef(n int) []float64 {
	if p.inputIsLeft {
		return p.right[:n]
	}
	return p.left[:n]
}

func (p *pingPongBuffer) copyInto(out []float64) {
	copy(out, p.outputRef(len(out)))
}

func (p *pingPongBuffer) switchBuffers() {
	p.inputIsLeft = !p.inputIsLeft
}

func (p *pingPongBuffer) len() int { return len(p.left) }
