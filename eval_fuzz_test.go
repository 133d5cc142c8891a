//go:build go1.18
// +build go1.18

package stepcalc_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/zephyrtronium/stepcalc"
)

func FuzzEval(f *testing.F) {
	f.Add("2*(sin(2)*-22)")
	f.Add("2* (2-22)")
	f.Add("8-3-2")
	f.Add("(1)(2)")
	f.Add("--cosin(x)")
	f.Fuzz(func(t *testing.T, s string) {
		var t1, t2 stepcalc.Trace
		r1, err1 := stepcalc.EvalString(s, &t1)
		r2, err2 := stepcalc.EvalString(s, &t2)
		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("%q: inconsistent errors %v and %v", s, err1, err2)
		}
		if err1 != nil {
			if _, ok := err1.(stepcalc.InputError); !ok {
				t.Errorf("%q: error %#v is not an InputError", s, err1)
			}
			return
		}
		if r1 != r2 && !(math.IsNaN(float64(r1)) && math.IsNaN(float64(r2))) {
			t.Errorf("%q: different results %g and %g", s, r1, r2)
		}
		if !reflect.DeepEqual(t1.Steps(), t2.Steps()) {
			t.Errorf("%q: different steps %q and %q", s, t1.Steps(), t2.Steps())
		}
	})
}
