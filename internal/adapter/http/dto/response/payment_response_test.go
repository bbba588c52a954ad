package response

import (
	"encoding/json"
	"testing"

	"upi_escrow/internal/domain/entities"
)

func TestFromPayment(t *testing.T) {
	amount, err := entities.ParseAmount("-170141183460469231731687303715884105728")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := entities.Payment{ID: 1, User: "alice", Merchant: "bob", Amount: amount, Status: entities.PaymentStatusPending}

	res := FromPayment(p)
	if res.ID != 1 || res.User != "alice" || res.Merchant != "bob" || res.Status != "PENDING" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Amount != "-170141183460469231731687303715884105728" {
		t.Fatalf("unexpected amount: %s", res.Amount)
	}
}

func TestSucceededWith(t *testing.T) {
	p := entities.Payment{ID: 9, User: "alice", Merchant: "bob", Amount: entities.NewAmount(500), Status: entities.PaymentStatusComplete}

	b, err := json.Marshal(SucceededWith(p))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"success":true,"payment":{"id":9,"user":"alice","merchant":"bob","amount":"500","status":"COMPLETE"}}`
	if string(b) != want {
		t.Fatalf("unexpected body: %s", b)
	}
}
