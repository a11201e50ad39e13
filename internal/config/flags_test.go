package config

import "testing"

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{"localhost with port", "localhost:3001", "localhost", 3001, false},
		{"ip with port", "127.0.0.1:8080", "127.0.0.1", 8080, false},
		{"empty host", ":3001", "", 3001, false},
		{"missing port", "localhost", "", 0, true},
		{"non-numeric port", "localhost:abc", "", 0, true},
		{"zero port", "localhost:0", "", 0, true},
		{"bad host", "not-an-ip:80", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if addr.Host != tt.wantHost || addr.Port != tt.wantPort {
				t.Errorf("expected %s:%d, got %s:%d", tt.wantHost, tt.wantPort, addr.Host, addr.Port)
			}
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	empty := &NetAddress{}
	if got := empty.String(); got != "" {
		t.Errorf("expected empty string for zero address, got %q", got)
	}

	addr := &NetAddress{Host: "localhost", Port: 3001}
	if got := addr.String(); got != "localhost:3001" {
		t.Errorf("expected localhost:3001, got %q", got)
	}
}
