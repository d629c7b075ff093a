package textutil

import "testing"

func TestLen(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{"\U0001F600", 2}, // surrogate pair
		{"a\U0001F600b", 4},
	}
	for _, tc := range cases {
		if got := Len(tc.text); got != tc.want {
			t.Errorf("Len(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, text := range []string{"", "abc", "héllo", "a\U0001F600b", "汉字"} {
		units := Encode(text)
		if len(units) != Len(text) {
			t.Errorf("len(Encode(%q)) = %d, want %d", text, len(units), Len(text))
		}
		if got := Decode(units); got != text {
			t.Errorf("Decode(Encode(%q)) = %q", text, got)
		}
	}
}

func TestIndex(t *testing.T) {
	haystack := Encode("ab ab ab")
	needle := Encode("ab")
	cases := []struct {
		from, want int
	}{
		{0, 0},
		{1, 3},
		{4, 6},
		{7, -1},
		{-1, -1},
		{100, -1},
	}
	for _, tc := range cases {
		if got := Index(haystack, needle, tc.from); got != tc.want {
			t.Errorf("Index(from=%d) = %d, want %d", tc.from, got, tc.want)
		}
	}
	if got := Index(haystack, nil, 0); got != -1 {
		t.Errorf("Index with empty needle = %d, want -1", got)
	}
}

func TestHasPrefix(t *testing.T) {
	units := Encode("#tag")
	if !HasPrefix(units, Encode("#")) {
		t.Error("HasPrefix(#tag, #) = false, want true")
	}
	if HasPrefix(units, Encode("tag")) {
		t.Error("HasPrefix(#tag, tag) = true, want false")
	}
	if HasPrefix(units, nil) {
		t.Error("HasPrefix with empty prefix = true, want false")
	}
}

func TestIsEmpty(t *testing.T) {
	for _, s := range []string{"", " ", " \t\n "} {
		if !IsEmpty(s) {
			t.Errorf("IsEmpty(%q) = false, want true", s)
		}
	}
	if IsEmpty(" x ") {
		t.Error(`IsEmpty(" x ") = true, want false`)
	}
}
