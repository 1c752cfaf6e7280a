package wlan

import "testing"

func TestParseInterfaceID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "braced", input: "{6B29FC40-CA47-1067-B31D-00DD010662DA}", want: "{6B29FC40-CA47-1067-B31D-00DD010662DA}"},
		{name: "bare lowercase", input: "6b29fc40-ca47-1067-b31d-00dd010662da", want: "{6B29FC40-CA47-1067-B31D-00DD010662DA}"},
		{name: "too short", input: "6b29fc40-ca47-1067-b31d", wantErr: true},
		{name: "bad hex", input: "{ZB29FC40-CA47-1067-B31D-00DD010662DA}", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseInterfaceID(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q, got %v", tt.input, id)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := id.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestInterfaceID_Fields(t *testing.T) {
	id, err := ParseInterfaceID("{00000001-0002-0003-0405-060708090A0B}")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if id.Data1 != 1 || id.Data2 != 2 || id.Data3 != 3 {
		t.Errorf("Unexpected leading fields: %+v", id)
	}
	want := [8]byte{4, 5, 6, 7, 8, 9, 10, 11}
	if id.Data4 != want {
		t.Errorf("Data4 = %v, want %v", id.Data4, want)
	}
}

func TestDisconnectPolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    DisconnectPolicy
		wantErr bool
	}{
		{input: "", want: TolerateDisconnectFailure},
		{input: "tolerate", want: TolerateDisconnectFailure},
		{input: " Abort ", want: AbortOnDisconnectFailure},
		{input: "retry", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseDisconnectPolicy(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDisconnectPolicy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDisconnectPolicy(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if AbortOnDisconnectFailure.String() != "abort" || TolerateDisconnectFailure.String() != "tolerate" {
		t.Errorf("Unexpected policy names")
	}
}

func TestUnsupportedAPI(t *testing.T) {
	var api API = unsupportedAPI{}
	if _, status := api.OpenHandle(); status != StatusNotSupported {
		t.Errorf("OpenHandle status = %d, want %d", status, StatusNotSupported)
	}
	if NewReconnector(api, TolerateDisconnectFailure).Reconnect() {
		t.Errorf("Reconnect over unsupported API must fail")
	}
	if _, err := ListInterfaces(api); err == nil {
		t.Errorf("ListInterfaces over unsupported API must fail")
	}
}
