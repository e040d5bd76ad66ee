package motion

// Latch is a one-shot boolean: it goes from false to true once and stays there.
type Latch struct {
	set       bool
	listeners []func()
}

// Set flips the latch. It returns true only for the call that performed the
// transition; listeners run during that call and are then dropped.
func (l *Latch) Set() bool {
	if l.set {
		return false
	}
	l.set = true
	listeners := l.listeners
	l.listeners = nil
	for _, fn := range listeners {
		fn()
	}
	return true
}

// IsSet reports whether the latch has fired.
func (l *Latch) IsSet() bool {
	return l.set
}

// OnSet registers fn to run when the latch fires. If it already has, fn runs
// immediately.
func (l *Latch) OnSet(fn func()) {
	if fn == nil {
		return
	}
	if l.set {
		fn()
		return
	}
	l.listeners = append(l.listeners, fn)
}
