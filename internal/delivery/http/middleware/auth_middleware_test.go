package middleware

import "testing"

func TestBearerTokenFromHeader(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc.def.ghi", "abc.def.ghi", true},
		{"  Bearer   spaced-token  ", "spaced-token", true},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"abc.def.ghi", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := bearerTokenFromHeader(tc.header)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("bearerTokenFromHeader(%q) = (%q, %v), want (%q, %v)", tc.header, got, ok, tc.want, tc.ok)
		}
	}
}
