package middleware

import "testing"

func TestClientKey(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want string
	}{
		{"ip with port", "203.0.113.7:54321", "203.0.113.7"},
		{"bare ip from RealIP", "203.0.113.7", "203.0.113.7"},
		{"ipv6 with port", "[2001:db8::1]:443", "2001:db8::1"},
		{"bare ipv6", "2001:db8::1", "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clientKey(tt.addr); got != tt.want {
				t.Errorf("clientKey(%q) = %q, want %q", tt.addr, got, tt.want)
			}
		})
	}
}
