package digest

import "testing"

func TestOfIsDeterministic(t *testing.T) {
	a := Of([]byte("hello"))
	b := Of([]byte("hello"))
	if a != b {
		t.Fatalf("Of is not deterministic: %s != %s", a, b)
	}
	if len(a) != Length {
		t.Fatalf("digest length = %d, want %d", len(a), Length)
	}
}

func TestOfDiffersOnContent(t *testing.T) {
	a := Of([]byte("hello"))
	b := Of([]byte("world"))
	if a == b {
		t.Fatalf("distinct content produced the same digest")
	}
}

func TestValid(t *testing.T) {
	d := Of([]byte("x"))
	if !Valid(d) {
		t.Fatalf("Valid(%q) = false, want true", d)
	}
	if Valid(d[:10]) {
		t.Fatalf("Valid(short prefix) = true, want false")
	}
	if Valid(d[:len(d)-1] + "z") {
		t.Fatalf("Valid(non-hex) = true, want false")
	}
}

func TestIsHexPrefix(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"abc123", true},
		{"ABC123", true},
		{"xyz", false},
	}
	for _, c := range cases {
		if got := IsHexPrefix(c.in); got != c.want {
			t.Errorf("IsHexPrefix(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
