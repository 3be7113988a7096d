package transport

import "testing"

func TestFrameValidate(t *testing.T) {
	cases := []struct {
		name string
		f    Frame
		want error
	}{
		{"standard ok", Frame{ID: 0x201, Len: 8}, nil},
		{"standard max id", Frame{ID: maxStdID}, nil},
		{"standard id too big", Frame{ID: maxStdID + 1}, ErrInvalidID},
		{"extended ok", Frame{ID: 0x1abcdef0, Extended: true}, nil},
		{"extended id too big", Frame{ID: maxExtID + 1, Extended: true}, ErrInvalidID},
		{"len too big", Frame{ID: 0x201, Len: 9}, ErrInvalidLen},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.f.Validate(); got != tc.want {
				t.Fatalf("Validate() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFrameBinaryRoundTrip(t *testing.T) {
	want := Frame{ID: 0x213, Len: 4, Data: [8]byte{0x55, 0x0e, 0x04, 0x61}}
	raw, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}
	if len(raw) != 16 {
		t.Fatalf("MarshalBinary() length = %d, want 16", len(raw))
	}

	var got Frame
	if err := got.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}

func TestFrameUnmarshalMasksExtendedFlag(t *testing.T) {
	f := Frame{ID: 0x18db33f1, Extended: true, Len: 1, Data: [8]byte{0x7f}}
	raw, err := f.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}

	var got Frame
	if err := got.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}
	if !got.Extended || got.ID != 0x18db33f1 {
		t.Fatalf("UnmarshalBinary() = %+v, want extended id 0x18db33f1", got)
	}
}

func TestFrameString(t *testing.T) {
	f := Frame{ID: 0x202, Len: 3, Data: [8]byte{0x01, 0x02, 0x03}}
	want := "202 [3] 01 02 03"
	if got := f.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
