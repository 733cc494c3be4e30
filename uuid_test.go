package gatt

import (
	"bytes"
	"testing"
)

func TestUUID16(t *testing.T) {
	if want, got := (UUID{[]byte{0x00, 0x18}}), UUID16(0x1800); !got.Equal(want) {
		t.Errorf("UUID16: got %x, want %x", got, want)
	}
}

func TestUUID32(t *testing.T) {
	if want, got := (UUID{[]byte{0x0D, 0x18, 0x00, 0x00}}), UUID32(0x0000180D); !got.Equal(want) {
		t.Errorf("UUID32: got %x, want %x", got, want)
	}
}

func TestReverse(t *testing.T) {
	cases := []struct {
		fwd  []byte
		back []byte
	}{
		{fwd: []byte{0, 1}, back: []byte{1, 0}},
		{fwd: []byte{0, 1, 2}, back: []byte{2, 1, 0}},
		{fwd: []byte{0, 1, 2, 3}, back: []byte{3, 2, 1, 0}},
		{
			fwd:  []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
			back: []byte{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		},
	}

	for _, tt := range cases {
		got := reverse(tt.fwd)
		if !bytes.Equal(got, tt.back) {
			t.Errorf("reverse(%x): got %x want %x", tt.fwd, got, tt.back)
		}

		u := UUID{tt.fwd}
		got = reverse(u.b)
		if !bytes.Equal(got, tt.back) {
			t.Errorf("UUID.reverse(%x): got %x want %x", tt.fwd, got, tt.back)
		}
	}
}

func TestParseUUID(t *testing.T) {
	cases := []struct {
		s    string
		want UUID
		bad  bool
	}{
		{s: "180d", want: UUID16(0x180D)},
		{s: "180D", want: UUID16(0x180D)},
		{s: "0000180d", want: UUID32(0x0000180D)},
		{s: "34da3ad1-7110-41a1-b1ef-4430f509cde7", want: UUID{reverse([]byte{
			0x34, 0xDA, 0x3A, 0xD1, 0x71, 0x10, 0x41, 0xA1,
			0xB1, 0xEF, 0x44, 0x30, 0xF5, 0x09, 0xCD, 0xE7,
		})}},
		{s: "xyzw", bad: true},
		{s: "180", bad: true},
		{s: "not-a-uuid-at-all", bad: true},
	}

	for _, tt := range cases {
		got, err := ParseUUID(tt.s)
		if tt.bad {
			if err == nil {
				t.Errorf("ParseUUID(%q): expected error, got %s", tt.s, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseUUID(%q): %v", tt.s, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseUUID(%q): got %s want %s", tt.s, got, tt.want)
		}
	}
}

func TestExpandAndShortForm(t *testing.T) {
	u := UUID16(0x2A37)
	e := u.Expand()
	if e.Len() != 16 {
		t.Fatalf("Expand: got len %d want 16", e.Len())
	}
	if e.String() != "00002A3700001000800000805F9B34FB" {
		t.Errorf("Expand: got %s", e)
	}
	if s, ok := e.ShortForm(); !ok || s != 0x2A37 {
		t.Errorf("ShortForm(expanded): got %04X, %v", s, ok)
	}

	// A short and its expansion are equal; distinct numbers are not.
	if !u.Equal(e) {
		t.Errorf("short UUID should equal its expansion")
	}
	if u.Equal(UUID16(0x2A38)) {
		t.Errorf("0x2A37 should not equal 0x2A38")
	}

	// A full UUID off the Bluetooth base has no short form.
	v := MustParseUUID("34da3ad1-7110-41a1-b1ef-4430f509cde7")
	if _, ok := v.ShortForm(); ok {
		t.Errorf("vendor UUID should have no 16-bit form")
	}

	// A 32-bit number within 16-bit range reduces to the same UUID.
	if !UUID32(0x0000180D).Equal(UUID16(0x180D)) {
		t.Errorf("UUID32(0x180D) should equal UUID16(0x180D)")
	}
}

func TestWireBytes(t *testing.T) {
	cases := []struct {
		u    UUID
		want []byte
	}{
		{u: UUID16(0x180D), want: []byte{0x0D, 0x18}},
		{u: UUID32(0x0000180D), want: []byte{0x0D, 0x18}},
		{u: UUID16(0x180D).Expand(), want: []byte{0x0D, 0x18}},
		{u: MustParseUUID("34da3ad1-7110-41a1-b1ef-4430f509cde7"), want: reverse([]byte{
			0x34, 0xDA, 0x3A, 0xD1, 0x71, 0x10, 0x41, 0xA1,
			0xB1, 0xEF, 0x44, 0x30, 0xF5, 0x09, 0xCD, 0xE7,
		})},
	}

	for _, tt := range cases {
		if got := tt.u.wireBytes(); !bytes.Equal(got, tt.want) {
			t.Errorf("wireBytes(%s): got %x want %x", tt.u, got, tt.want)
		}
	}
}

func BenchmarkReverseBytes16(b *testing.B) {
	u := UUID{make([]byte, 2)}
	for i := 0; i < b.N; i++ {
		reverse(u.b)
	}
}

func BenchmarkReverseBytes128(b *testing.B) {
	u := UUID{make([]byte, 16)}
	for i := 0; i < b.N; i++ {
		reverse(u.b)
	}
}
