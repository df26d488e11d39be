package main

import "testing"

func TestConnectHint(t *testing.T) {
	tests := []struct {
		addr     string
		expected string
	}{
		{":23234", "ssh localhost -p 23234"},
		{":2222", "ssh localhost -p 2222"},
		{"0.0.0.0:2022", "ssh localhost -p 2022"},
		{"[::]:2022", "ssh localhost -p 2022"},
		{"example.com:22", "ssh example.com -p 22"},
		{"127.0.0.1:9000", "ssh 127.0.0.1 -p 9000"},
		{"no-port", "ssh no-port"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			if got := connectHint(tt.addr); got != tt.expected {
				t.Errorf("connectHint(%q) = %q, expected %q", tt.addr, got, tt.expected)
			}
		})
	}
}
