package backend

import (
	"math"
	"testing"
)

var (
	testData  = []float64{3, -6, 9, 0.5, -0.25}
	testOther = []float64{1, 2, 3, 4, 5}
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBackendName(t *testing.T) {
	if Name() != "gonum" {
		t.Fatalf("unexpected backend name '%s'", Name())
	}
}

func TestBackendSpace(t *testing.T) {
	if Space() == 0 {
		t.Fatal("expected a non zero total space")
	}
}

func TestBackendsAgree(t *testing.T) {
	impls := []implementation{naive{}, gonum{}}

	for _, im := range impls {
		a := im.Wrap(len(testData), testData)
		b := im.Wrap(len(testOther), testOther)

		if got := im.Dot(a, b); !almost(got, 3-12+27+2-1.25) {
			t.Fatalf("%s: unexpected dot %f", im.Name(), got)
		}
		if got := im.Sum(a); !almost(got, 6.25) {
			t.Fatalf("%s: unexpected sum %f", im.Name(), got)
		}
		if got := im.AbsSum(a); !almost(got, 18.75) {
			t.Fatalf("%s: unexpected abs sum %f", im.Name(), got)
		}
		if got := im.Min(a); !almost(got, -6) {
			t.Fatalf("%s: unexpected min %f", im.Name(), got)
		}
		if got := im.Max(a); !almost(got, 9) {
			t.Fatalf("%s: unexpected max %f", im.Name(), got)
		}
		if got := im.AbsMax(a); !almost(got, 9) {
			t.Fatalf("%s: unexpected abs max %f", im.Name(), got)
		}
	}
}

func TestBackendL2(t *testing.T) {
	v := Wrap(3, []float64{0, 3, 4})
	if got := math.Sqrt(Dot(v, v)); !almost(got, 5) {
		t.Fatalf("unexpected l2 norm %f", got)
	}
}
