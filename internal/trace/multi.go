package trace

import "errors"

// fanout feeds every event to a stream and a ring at once (ModeBoth).
type fanout struct {
	sinks []Tracer
	level Level
}

func (f *fanout) Emit(ev *Event) {
	for _, sink := range f.sinks {
		// sinks stamp Seq on their own copy
		own := *ev
		sink.Emit(&own)
	}
}

func (f *fanout) Flush() error {
	var errs []error
	for _, sink := range f.sinks {
		errs = append(errs, sink.Flush())
	}
	return errors.Join(errs...)
}

func (f *fanout) Close() error {
	var errs []error
	for _, sink := range f.sinks {
		errs = append(errs, sink.Close())
	}
	return errors.Join(errs...)
}

func (f *fanout) Level() Level  { return f.level }
func (f *fanout) Enabled() bool { return f.level > LevelOff }
