package validator

import "testing"

func TestSlugValidation(t *testing.T) {
	valid := []string{"old-school", "fineline", "neo-traditional-2"}
	invalid := []string{"Old-School", "old_school", "-old", "old-", "old school", ""}

	for _, s := range valid {
		if err := ValidateVar(s, "slug"); err != nil {
			t.Errorf("%q should be a valid slug", s)
		}
	}
	for _, s := range invalid {
		if err := ValidateVar(s, "slug"); err == nil {
			t.Errorf("%q should be rejected", s)
		}
	}
}

func TestUFValidation(t *testing.T) {
	if err := ValidateVar("SP", "uf"); err != nil {
		t.Error("SP should be a valid state code")
	}
	for _, s := range []string{"sp", "S", "SPO", ""} {
		if err := ValidateVar(s, "uf"); err == nil {
			t.Errorf("%q should be rejected", s)
		}
	}
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	type req struct {
		DisplayName string `json:"displayName" validate:"required"`
	}

	errs := Validate(&req{})
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if _, ok := errs["displayName"]; !ok {
		t.Fatalf("errors keyed by %v, want json tag displayName", errs)
	}
}
