package jwt

import "testing"

func TestRoundTrip(t *testing.T) {
	tok, err := Make(42)
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	uid, err := Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if uid != 42 {
		t.Fatalf("parsed user %d, want 42", uid)
	}
}

func TestConfiguredSecretInvalidatesOldTokens(t *testing.T) {
	t.Cleanup(func() { Configure("") })

	old, err := Make(7)
	if err != nil {
		t.Fatalf("make: %v", err)
	}

	Configure("rotated-secret")
	if _, err := Parse(old); err == nil {
		t.Fatal("token signed with the previous secret still parsed")
	}

	tok, err := Make(7)
	if err != nil {
		t.Fatalf("make after rotate: %v", err)
	}
	uid, err := Parse(tok)
	if err != nil || uid != 7 {
		t.Fatalf("parse after rotate: uid=%d err=%v", uid, err)
	}
}
