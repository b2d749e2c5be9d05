package aircon

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantKeys []string
		want     map[string]string
	}{
		{
			name:     "simple control info",
			body:     "pow=1,mode=3,stemp=26",
			wantKeys: []string{"pow", "mode", "stemp"},
			want:     map[string]string{"pow": "1", "mode": "3", "stemp": "26"},
		},
		{
			name:     "empty body",
			body:     "",
			wantKeys: nil,
			want:     map[string]string{},
		},
		{
			name:     "value containing equals sign",
			body:     "a=b=c",
			wantKeys: []string{"a"},
			want:     map[string]string{"a": "b=c"},
		},
		{
			name:     "token without equals sign",
			body:     "ret=OK,flag,pow=0",
			wantKeys: []string{"ret", "flag", "pow"},
			want:     map[string]string{"ret": "OK", "flag": "", "pow": "0"},
		},
		{
			name:     "empty value",
			body:     "stemp=,shum=0",
			wantKeys: []string{"stemp", "shum"},
			want:     map[string]string{"stemp": "", "shum": "0"},
		},
		{
			name:     "trailing comma",
			body:     "ret=OK,",
			wantKeys: []string{"ret"},
			want:     map[string]string{"ret": "OK"},
		},
		{
			name:     "duplicate key keeps first position and last value",
			body:     "mode=3,pow=1,mode=4",
			wantKeys: []string{"mode", "pow"},
			want:     map[string]string{"mode": "4", "pow": "1"},
		},
		{
			name:     "real sensor info",
			body:     "ret=OK,htemp=24.5,hhum=45,otemp=18.0,err=0,cmpfreq=0",
			wantKeys: []string{"ret", "htemp", "hhum", "otemp", "err", "cmpfreq"},
			want: map[string]string{
				"ret": "OK", "htemp": "24.5", "hhum": "45",
				"otemp": "18.0", "err": "0", "cmpfreq": "0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseResponse(tt.body)

			if !reflect.DeepEqual(got.Keys(), tt.wantKeys) {
				t.Errorf("Keys() = %v, want %v", got.Keys(), tt.wantKeys)
			}

			if !reflect.DeepEqual(got.Map(), tt.want) {
				t.Errorf("ParseResponse(%q) = %v, want %v", tt.body, got.Map(), tt.want)
			}
		})
	}
}

func TestBuildQuery(t *testing.T) {
	full := ParseResponse("ret=OK,pow=1,mode=3,adv=,stemp=26.0,shum=0,dt1=25.0,dt3=26.0,f_rate=A,f_dir_ud=0,f_dir_lr=0")

	got := BuildQuery(full, MissingEmpty)
	want := "pow=1&f_dir_ud=0&mode=3&shum=0&f_dir_lr=0&f_rate=A&stemp=26.0"
	if got != want {
		t.Errorf("BuildQuery() = %q, want %q", got, want)
	}
}

func TestBuildQuery_MissingKeys(t *testing.T) {
	partial := ParseResponse("pow=1,mode=3")

	tests := []struct {
		name    string
		missing string
		want    string
	}{
		{
			name:    "empty marker",
			missing: MissingEmpty,
			want:    "pow=1&f_dir_ud=&mode=3&shum=&f_dir_lr=&f_rate=&stemp=",
		},
		{
			name:    "legacy undefined marker",
			missing: MissingUndefined,
			want:    "pow=1&f_dir_ud=undefined&mode=3&shum=undefined&f_dir_lr=undefined&f_rate=undefined&stemp=undefined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildQuery(partial, tt.missing); got != tt.want {
				t.Errorf("BuildQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildQuery_AlwaysEmitsSchemaInOrder(t *testing.T) {
	for _, body := range []string{"", "stemp=20", "f_rate=B,pow=0,extra=1"} {
		query := BuildQuery(ParseResponse(body), MissingEmpty)
		pairs := strings.Split(query, "&")

		if len(pairs) != len(WriteSchema) {
			t.Fatalf("BuildQuery(%q) has %d pairs, want %d", body, len(pairs), len(WriteSchema))
		}

		for i, pair := range pairs {
			key, _, _ := strings.Cut(pair, "=")
			if key != WriteSchema[i] {
				t.Errorf("BuildQuery(%q) pair %d key = %q, want %q", body, i, key, WriteSchema[i])
			}
		}
	}
}

// The device echoes the write schema back in its own response format.
// Rewriting the query as a response body must reproduce the original values.
func TestBuildQuery_RoundTrip(t *testing.T) {
	params := NewParams()
	params.Set(KeyPower, "1")
	params.Set(KeyFanDirUD, "0")
	params.Set(KeyMode, "4")
	params.Set(KeyTargetHumidity, "AUTO")
	params.Set(KeyFanDirLR, "0")
	params.Set(KeyFanRate, "A")
	params.Set(KeyTargetTemp, "22.5")

	echo := strings.ReplaceAll(BuildQuery(params, MissingEmpty), "&", ",")
	got := ParseResponse(echo)

	for _, key := range WriteSchema {
		if got.Get(key) != params.Get(key) {
			t.Errorf("round trip %s = %q, want %q", key, got.Get(key), params.Get(key))
		}
	}
}

func TestSetControlPath(t *testing.T) {
	got := SetControlPath("pow=1")
	if got != "/aircon/set_control_info?pow=1" {
		t.Errorf("SetControlPath() = %q", got)
	}
}

func TestControlSettings_Missing(t *testing.T) {
	cs := ControlSettingsFrom(ParseResponse("pow=1,mode=3,stemp=26"))

	want := []string{KeyFanDirUD, KeyTargetHumidity, KeyFanDirLR, KeyFanRate}
	if got := cs.Missing(); !reflect.DeepEqual(got, want) {
		t.Errorf("Missing() = %v, want %v", got, want)
	}
}
