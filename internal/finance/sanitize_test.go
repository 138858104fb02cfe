package finance

import (
	"encoding/json"
	"testing"

	"kassaBack/internal/models"
)

func sampleInvestment(t *testing.T) models.Investment {
	inv := newInvestment(t, 1_000_000, 10, "2024-01-01")
	inv.CarryForwardInterest = 15_000
	inv.Participants = []models.Participant{
		{MemberID: "m1", Amount: 400_000},
		{MemberID: "ghost", Amount: 600_000},
	}
	inv.Payments = []models.PaymentRecord{{Date: date(t, "2024-02-10"), Amount: 50_000}}
	return inv
}

func TestSanitizeForAdmin(t *testing.T) {
	inv := sampleInvestment(t)
	admin := models.Member{ID: "a1", Name: "Aliya", Role: models.RoleAdmin}
	names := map[string]string{"m1": "Marat"}

	view := SanitizeInvestmentForMember(inv, admin, names)

	if view.ProjectName != "Warehouse" {
		t.Errorf("admin should see project name, got %q", view.ProjectName)
	}
	if view.CarryForwardInterest == nil || *view.CarryForwardInterest != 15_000 {
		t.Errorf("admin should see carry-forward interest, got %v", view.CarryForwardInterest)
	}
	if view.LastPaymentDate == nil {
		t.Error("admin should see last payment date")
	}
	if len(view.Participants) != 2 {
		t.Fatalf("admin should see all participants, got %d", len(view.Participants))
	}
	if view.Participants[0].Name != "Marat" {
		t.Errorf("participant name not resolved: %q", view.Participants[0].Name)
	}
	// Unknown ids fall back to the raw identifier.
	if view.Participants[1].Name != "ghost" {
		t.Errorf("expected raw id fallback, got %q", view.Participants[1].Name)
	}
	if view.YourParticipation != nil || view.TotalProjectAmount != nil {
		t.Error("member-only fields must be absent from admin views")
	}
}

func TestSanitizeForMember(t *testing.T) {
	inv := sampleInvestment(t)
	names := map[string]string{"m1": "Marat"}

	t.Run("participant", func(t *testing.T) {
		viewer := models.Member{ID: "m1", Name: "Marat", Role: models.RoleMember}
		view := SanitizeInvestmentForMember(inv, viewer, names)

		if view.YourParticipation == nil || *view.YourParticipation != 400_000 {
			t.Errorf("your participation: got %v, want 400000", view.YourParticipation)
		}
		if view.TotalProjectAmount == nil || *view.TotalProjectAmount != 1_000_000 {
			t.Errorf("total project amount: got %v, want 1000000", view.TotalProjectAmount)
		}
		if len(view.Payments) != 1 {
			t.Errorf("payment history should stay visible, got %d entries", len(view.Payments))
		}
	})

	t.Run("non-participant gets zero stake", func(t *testing.T) {
		viewer := models.Member{ID: "outsider", Role: models.RoleMember}
		view := SanitizeInvestmentForMember(inv, viewer, names)
		if view.YourParticipation == nil || *view.YourParticipation != 0 {
			t.Errorf("your participation: got %v, want 0", view.YourParticipation)
		}
	})

	t.Run("restricted keys never serialized", func(t *testing.T) {
		viewer := models.Member{ID: "m1", Role: models.RoleMember}
		view := SanitizeInvestmentForMember(inv, viewer, names)

		raw, err := json.Marshal(view)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		for _, key := range []string{"project_name", "last_payment_date", "carry_forward_interest", "participants"} {
			if _, ok := decoded[key]; ok {
				t.Errorf("member view must not contain %q", key)
			}
		}
		if _, ok := decoded["your_participation"]; !ok {
			t.Error("member view must contain your_participation")
		}
	})
}
