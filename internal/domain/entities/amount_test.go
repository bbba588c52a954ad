package entities

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "500", want: "500"},
		{in: " -42 ", want: "-42"},
		{in: "0", want: "0"},
		{in: "170141183460469231731687303715884105727", want: "170141183460469231731687303715884105727"},
		{in: "-170141183460469231731687303715884105728", want: "-170141183460469231731687303715884105728"},
		{in: "170141183460469231731687303715884105728", wantErr: true},
		{in: "-170141183460469231731687303715884105729", wantErr: true},
		{in: "1.5", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAmount(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("expected ErrInvalidAmount, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got.String())
			}
		})
	}
}

func TestAmount_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Amount Amount `json:"amount"`
	}{Amount: NewAmount(500)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"amount":"500"}` {
		t.Fatalf("unexpected json: %s", b)
	}

	var fromString, fromNumber Amount
	if err := json.Unmarshal([]byte(`"-7"`), &fromString); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := json.Unmarshal([]byte(`-7`), &fromNumber); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fromString.Equal(fromNumber) || fromString.String() != "-7" {
		t.Fatalf("expected -7, got %s and %s", fromString, fromNumber)
	}

	var bad Amount
	if err := json.Unmarshal([]byte(`null`), &bad); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for null, got %v", err)
	}
}

func TestAmount_ZeroValue(t *testing.T) {
	var a Amount
	if a.String() != "0" || !a.Equal(NewAmount(0)) {
		t.Fatalf("zero amount should behave as 0, got %s", a)
	}
	a.BigInt().SetInt64(99)
	if a.String() != "0" {
		t.Fatalf("BigInt must return a copy")
	}
}

func TestPaymentStatus_IsTerminal(t *testing.T) {
	if PaymentStatusPending.IsTerminal() {
		t.Fatalf("PENDING is not terminal")
	}
	if !PaymentStatusComplete.IsTerminal() || !PaymentStatusCanceled.IsTerminal() {
		t.Fatalf("COMPLETE and CANCELED are terminal")
	}
}
