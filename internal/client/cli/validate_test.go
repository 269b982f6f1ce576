package cli

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr string
	}{
		{"a@b.com", ""},
		{"first.last@sub.example.org", ""},
		{"", "Email is required"},
		{"not-an-email", "Email is invalid"},
		{"a@b", "Email is invalid"},
	}
	for _, tt := range tests {
		err := validateEmail(tt.email)
		if tt.wantErr == "" {
			if err != nil {
				t.Fatalf("%q: unexpected error %v", tt.email, err)
			}
			continue
		}
		if err == nil || err.Error() != tt.wantErr {
			t.Fatalf("%q: got %v, want %q", tt.email, err, tt.wantErr)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := validatePassword([]byte("secret1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validatePassword(nil); err == nil || err.Error() != "Password is required" {
		t.Fatalf("got %v", err)
	}
	if err := validatePassword([]byte("abc")); err == nil || err.Error() != "Password must be at least 6 characters" {
		t.Fatalf("got %v", err)
	}
}

func TestValidateName(t *testing.T) {
	if err := validateName("Al"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateName(""); err == nil || err.Error() != "Name is required" {
		t.Fatalf("got %v", err)
	}
	if err := validateName("A"); err == nil || err.Error() != "Name must be at least 2 characters" {
		t.Fatalf("got %v", err)
	}
}

func TestValidateConfirmation(t *testing.T) {
	if err := validateConfirmation([]byte("secret1"), []byte("secret1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateConfirmation([]byte("secret1"), nil); err == nil || err.Error() != "Please confirm your password" {
		t.Fatalf("got %v", err)
	}
	if err := validateConfirmation([]byte("secret1"), []byte("secret2")); err == nil || err.Error() != "Passwords do not match" {
		t.Fatalf("got %v", err)
	}
}
