package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	v, c, d := Info()
	if v == "" || c == "" || d == "" {
		t.Fatalf("build info must not be empty: %q %q %q", v, c, d)
	}
	if Version() != v {
		t.Errorf("Version() = %q, want %q", Version(), v)
	}
}

func TestString(t *testing.T) {
	s := String()
	for _, part := range []string{"version=", "commit=", "date="} {
		if !strings.Contains(s, part) {
			t.Errorf("String() = %q, missing %q", s, part)
		}
	}
}

func TestUserAgent(t *testing.T) {
	ua := UserAgent("storefront-loadtest")
	if !strings.HasPrefix(ua, "storefront-loadtest/"+Version()) {
		t.Errorf("unexpected user agent %q", ua)
	}
}
