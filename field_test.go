package rscm

import "testing"

func TestInitFieldIdempotent(t *testing.T) {
	if err := InitField(); err != nil {
		t.Fatalf("InitField: %v", err)
	}
	if err := InitField(); err != nil {
		t.Fatalf("second InitField: %v", err)
	}
}

func TestScalarAddInvolution(t *testing.T) {
	if err := InitField(); err != nil {
		t.Fatal(err)
	}
	f := &Field{}
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			got := f.Add(f.Add(byte(x), byte(y)), byte(y))
			if got != byte(x) {
				t.Fatalf("add(add(%d,%d),%d) = %d, want %d", x, y, y, got, x)
			}
		}
	}
}

func TestDivUndoesMul(t *testing.T) {
	if err := InitField(); err != nil {
		t.Fatal(err)
	}
	f := &Field{}
	for x := 0; x < 256; x++ {
		for y := 1; y < 256; y++ {
			got := f.Div(f.Mul(byte(x), byte(y)), byte(y))
			if got != byte(x) {
				t.Fatalf("div(mul(%d,%d),%d) = %d, want %d", x, y, y, got, x)
			}
		}
	}
}

func TestMulInverseIsOne(t *testing.T) {
	if err := InitField(); err != nil {
		t.Fatal(err)
	}
	f := &Field{}
	for y := 1; y < 256; y++ {
		if got := f.Mul(f.Inv(byte(y)), byte(y)); got != 1 {
			t.Fatalf("mul(inv(%d),%d) = %d, want 1", y, y, got)
		}
	}
}

func TestSqrMatchesMul(t *testing.T) {
	if err := InitField(); err != nil {
		t.Fatal(err)
	}
	f := &Field{}
	for x := 0; x < 256; x++ {
		if got, want := f.Sqr(byte(x)), f.Mul(byte(x), byte(x)); got != want {
			t.Fatalf("sqr(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestInvZeroIsZero(t *testing.T) {
	if err := InitField(); err != nil {
		t.Fatal(err)
	}
	if got := (&Field{}).Inv(0); got != 0 {
		t.Fatalf("Inv(0) = %d, want 0", got)
	}
}

func TestDivByZeroDoesNotFault(t *testing.T) {
	if err := InitField(); err != nil {
		t.Fatal(err)
	}
	f := &Field{}
	for x := 0; x < 256; x++ {
		_ = f.Div(byte(x), 0)
	}
}
