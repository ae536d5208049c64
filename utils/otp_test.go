package utils

import "testing"

func TestGenerateCodeSecret(t *testing.T) {
	a, err := GenerateCodeSecret()
	if err != nil {
		t.Fatalf("GenerateCodeSecret: %v", err)
	}
	b, err := GenerateCodeSecret()
	if err != nil {
		t.Fatalf("GenerateCodeSecret: %v", err)
	}
	if a == "" || a == b {
		t.Errorf("secrets %q and %q should be distinct and non-empty", a, b)
	}
}

func TestVerificationCodeRoundTrip(t *testing.T) {
	secret, err := GenerateCodeSecret()
	if err != nil {
		t.Fatalf("GenerateCodeSecret: %v", err)
	}

	code, err := GenerateVerificationCode(secret, 0)
	if err != nil {
		t.Fatalf("GenerateVerificationCode: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("code %q is not 6 digits", code)
	}

	ok, err := ValidateVerificationCode(code, secret, 0)
	if err != nil || !ok {
		t.Errorf("ValidateVerificationCode = (%v, %v), want valid", ok, err)
	}

	// The same code is rejected at a later counter.
	ok, _ = ValidateVerificationCode(code, secret, 1)
	if ok {
		t.Error("code accepted at an advanced counter")
	}
}

func TestCodesChangeWithTheCounter(t *testing.T) {
	secret, _ := GenerateCodeSecret()

	first, _ := GenerateVerificationCode(secret, 0)
	second, _ := GenerateVerificationCode(secret, 1)
	if first == second {
		t.Errorf("counters 0 and 1 produced the same code %q", first)
	}
}

func TestWasPreviousCode(t *testing.T) {
	secret, _ := GenerateCodeSecret()

	old, _ := GenerateVerificationCode(secret, 0)
	if !WasPreviousCode(old, secret, 2) {
		t.Error("counter-0 code not recognized as superseded at counter 2")
	}
	if WasPreviousCode("000000", secret, 2) {
		t.Error("a code that never existed reported as superseded")
	}

	current, _ := GenerateVerificationCode(secret, 2)
	if WasPreviousCode(current, secret, 2) {
		t.Error("the current code is not a previous one")
	}
}
