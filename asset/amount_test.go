package asset

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/asteroidprotocol/astroport-core/errors"
)

func TestParseAmount(t *testing.T) {
	cases := map[string]struct {
		raw     string
		wantErr *errors.Error
		want    string
	}{
		"zero":           {raw: "0", want: "0"},
		"plain value":    {raw: "1234567", want: "1234567"},
		"beyond uint64":  {raw: "340282366920938463463374607431768211455", want: "340282366920938463463374607431768211455"},
		"over 128 bits":  {raw: "340282366920938463463374607431768211456", wantErr: errors.ErrOverflow},
		"negative":       {raw: "-5", wantErr: errors.ErrAmount},
		"not a number":   {raw: "12x", wantErr: errors.ErrInput},
		"empty":          {raw: "", wantErr: errors.ErrInput},
		"decimal point":  {raw: "1.5", wantErr: errors.ErrInput},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			a, err := ParseAmount(tc.raw)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("unexpected error: %+v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}
			if a.String() != tc.want {
				t.Fatalf("want %s, got %s", tc.want, a.String())
			}
		})
	}
}

func TestAmountArithmetic(t *testing.T) {
	a := NewAmount(1000)
	b := NewAmount(337)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("add: %+v", err)
	}
	if !sum.Equals(NewAmount(1337)) {
		t.Fatalf("want 1337, got %s", sum)
	}

	diff, err := a.Sub(b)
	if err != nil {
		t.Fatalf("sub: %+v", err)
	}
	if !diff.Equals(NewAmount(663)) {
		t.Fatalf("want 663, got %s", diff)
	}

	if _, err := b.Sub(a); !errors.ErrAmount.Is(err) {
		t.Fatalf("underflow must fail, got %+v", err)
	}
}

func TestAmountMulRatio(t *testing.T) {
	cases := map[string]struct {
		value    uint64
		num, den uint64
		want     uint64
	}{
		"exact split":      {value: 1000, num: 20, den: 100, want: 200},
		"floor division":   {value: 100, num: 33, den: 100, want: 33},
		"everything":       {value: 77, num: 100, den: 100, want: 77},
		"nothing":          {value: 77, num: 0, den: 100, want: 0},
		"single remainder": {value: 7, num: 50, den: 100, want: 3},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := NewAmount(tc.value).MulRatio(tc.num, tc.den)
			if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}
			if !got.Equals(NewAmount(tc.want)) {
				t.Fatalf("want %d, got %s", tc.want, got)
			}
		})
	}

	if _, err := NewAmount(1).MulRatio(1, 0); !errors.ErrInput.Is(err) {
		t.Fatalf("zero denominator must fail, got %+v", err)
	}
}

func TestAmountZeroValue(t *testing.T) {
	var a Amount
	if !a.IsZero() {
		t.Fatal("zero value must be zero")
	}
	if a.String() != "0" {
		t.Fatalf("want 0, got %s", a.String())
	}
	sum, err := a.Add(NewAmount(5))
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if !sum.Equals(NewAmount(5)) {
		t.Fatalf("want 5, got %s", sum)
	}
}

func TestAmountJSON(t *testing.T) {
	raw, err := json.Marshal(NewAmount(42))
	if err != nil {
		t.Fatalf("marshal: %+v", err)
	}
	if string(raw) != `"42"` {
		t.Fatalf("unexpected serialization: %s", raw)
	}

	var a Amount
	if err := json.Unmarshal([]byte(`"97"`), &a); err != nil {
		t.Fatalf("unmarshal: %+v", err)
	}
	if !a.Equals(NewAmount(97)) {
		t.Fatalf("want 97, got %s", a)
	}

	// Bare numbers are rejected, amounts travel as strings.
	if err := json.Unmarshal([]byte(`97`), &a); err == nil ||
		!strings.Contains(err.Error(), "string") {
		t.Fatalf("number form must be rejected, got %v", err)
	}
}
