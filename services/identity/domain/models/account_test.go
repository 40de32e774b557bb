package models

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"admin", RoleAdmin, false},
		{"staff", RoleStaff, false},
		{"Admin", "", true},
		{"superuser", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRole(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewAccount(t *testing.T) {
	t.Run("valid account gets fresh ids", func(t *testing.T) {
		a, err := NewAccount("alice", "$2a$10$hash", RoleAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ID == a.OrgID {
			t.Fatal("account id and org id must be independent")
		}
		if a.CreatedAt.IsZero() {
			t.Fatal("expected CreatedAt to be set")
		}
	})

	t.Run("empty username returns error", func(t *testing.T) {
		if _, err := NewAccount("", "$2a$10$hash", RoleStaff); err == nil {
			t.Fatal("expected error for empty username")
		}
	})

	t.Run("empty hash returns error", func(t *testing.T) {
		if _, err := NewAccount("alice", "", RoleStaff); err == nil {
			t.Fatal("expected error for empty password hash")
		}
	})
}
