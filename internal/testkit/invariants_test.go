package testkit

import (
	"strings"
	"testing"

	"telinput/internal/phone"
)

func TestCallingCodeNumber(t *testing.T) {
	cases := []struct {
		code    phone.CallingCode
		want    uint16
		wantErr string
	}{
		{code: "1", want: 1},
		{code: "44", want: 44},
		{code: "998", want: 998},
		{code: "", wantErr: "malformed"},
		{code: "07", wantErr: "malformed"},
		{code: "1234", wantErr: "malformed"},
		{code: "4a", wantErr: "malformed"},
	}
	for _, tc := range cases {
		got, err := CallingCodeNumber(tc.code)
		if tc.wantErr != "" {
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("%q: err = %v, want %q", tc.code, err, tc.wantErr)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("%q: got %d, %v", tc.code, got, err)
		}
	}
}

func TestCheckMask(t *testing.T) {
	ru := phone.Example{Digits: "9123456789", NationalFormat: "8 (912) 345-67-89"}
	if err := CheckMask(phone.DeriveMask(ru), ru); err != nil {
		t.Fatal(err)
	}
	if err := CheckMask("(###) ###", ru); err == nil {
		t.Fatal("short mask accepted")
	}
	if err := CheckMask("8 (###) ###-##-##", phone.Example{Digits: "91234567", NationalFormat: "8 (912) 345-67-8"}); err == nil {
		t.Fatal("mask with a literal digit accepted")
	}
}

func TestCheckRegistryNil(t *testing.T) {
	if err := CheckRegistry(nil); err == nil {
		t.Fatal("nil registry accepted")
	}
}
