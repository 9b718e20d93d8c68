package additive

import (
	"fmt"
	"math"
	"reflect"
)

// An Initer receives the audio parameters before it produces any samples.
type Initer interface {
	InitAudio(Params)
}

type Params struct {
	SampleRate float64
}

func (p *Params) InitAudio(q Params) { *p = q }

// Samples converts a duration in seconds to a (fractional) sample count.
func (p Params) Samples(seconds float64) float64 { return seconds * p.SampleRate }

func (p Params) validate() error {
	if !(p.SampleRate > 0) || math.IsInf(p.SampleRate, 0) {
		return &ConfigError{Field: "sampleRate", Value: p.SampleRate, Reason: "must be positive"}
	}
	return nil
}

// Init calls InitAudio on x, or, if x does not implement Initer, on each
// struct field and slice element reachable from x.  Init panics when it finds
// a value whose pointer implements Initer but which is not addressable, since
// that is always a programming error.
func Init(x any, p Params) {
	if err := initVal(reflect.ValueOf(x), p); err != nil {
		panic("additive.Init: " + err.Error())
	}
}

var initerType = reflect.TypeFor[Initer]()

func initVal(v reflect.Value, p Params) error {
	if !v.IsValid() || v.Kind() == reflect.Pointer && v.IsNil() || !v.CanInterface() {
		return nil
	}

	v = reflect.Indirect(v)
	if v.CanAddr() && v.Type().Name() != "" && v.Kind() != reflect.Interface {
		v = v.Addr()
	}
	if x, ok := v.Interface().(Initer); ok {
		x.InitAudio(p)
		return nil
	}
	if t := v.Type(); reflect.PointerTo(t).Implements(initerType) {
		return fmt.Errorf("%s does not implement Initer but *%s does", t, t)
	}

	v = reflect.Indirect(v)
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if err := initVal(v.Field(i), p); err != nil {
				return fmt.Errorf("%w\n\tfield %s of %s", err, v.Type().Field(i).Name, v.Type())
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := initVal(v.Index(i), p); err != nil {
				return fmt.Errorf("%w\n\telement %d of %s", err, i, v.Type())
			}
		}
	}
	return nil
}
