package hass

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		unit string
		want UnitMetadata
	}{
		{
			name: "verbose temperature",
			unit: "degrees C",
			want: UnitMetadata{UnitOfMeasurement: "°C", DeviceClass: "temperature", StateClass: "measurement"},
		},
		{
			name: "bare C symbol",
			unit: "C",
			want: UnitMetadata{UnitOfMeasurement: "°C", DeviceClass: "temperature", StateClass: "measurement"},
		},
		{
			name: "volts",
			unit: "Volts",
			want: UnitMetadata{UnitOfMeasurement: "V", DeviceClass: "voltage", StateClass: "measurement"},
		},
		{
			name: "bare V symbol",
			unit: "V",
			want: UnitMetadata{UnitOfMeasurement: "V", DeviceClass: "voltage", StateClass: "measurement"},
		},
		{
			name: "amps",
			unit: "Amps",
			want: UnitMetadata{UnitOfMeasurement: "A", DeviceClass: "current", StateClass: "measurement"},
		},
		{
			name: "bare A symbol",
			unit: "A",
			want: UnitMetadata{UnitOfMeasurement: "A", DeviceClass: "current", StateClass: "measurement"},
		},
		{
			name: "watts",
			unit: "Watts",
			want: UnitMetadata{UnitOfMeasurement: "W", DeviceClass: "power", StateClass: "measurement"},
		},
		{
			name: "rpm has no device class",
			unit: "RPM",
			want: UnitMetadata{UnitOfMeasurement: "RPM", StateClass: "measurement"},
		},
		{
			name: "percent word",
			unit: "percent",
			want: UnitMetadata{UnitOfMeasurement: "%", StateClass: "measurement"},
		},
		{
			name: "percent symbol",
			unit: "%",
			want: UnitMetadata{UnitOfMeasurement: "%", StateClass: "measurement"},
		},
		{
			name: "unknown unit passes through with original casing",
			unit: "CFM",
			want: UnitMetadata{UnitOfMeasurement: "CFM", StateClass: "measurement"},
		},
		{
			name: "empty unit yields state class only",
			unit: "",
			want: UnitMetadata{StateClass: "measurement"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.unit)
			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.unit, got, tt.want)
			}
		})
	}
}

func TestClassify_SingleLettersMatchExactly(t *testing.T) {
	// A unit merely containing a single-letter symbol must not classify as
	// that symbol; only the exact symbol or the verbose fragment may match.
	tests := []struct {
		unit          string
		wantUnit      string
		wantDevClass  string
		rejectedClass string
	}{
		// "pascals" contains "a" but is not amps
		{"pascals", "pascals", "", "current"},
		// "lumens" contains neither fragment nor symbol for volts
		{"lumens", "lumens", "", "voltage"},
	}

	for _, tt := range tests {
		got := Classify(tt.unit)
		if got.DeviceClass == tt.rejectedClass {
			t.Errorf("Classify(%q) device_class = %q, single-letter symbol matched as substring",
				tt.unit, got.DeviceClass)
		}
		if got.UnitOfMeasurement != tt.wantUnit {
			t.Errorf("Classify(%q) unit = %q, want passthrough %q", tt.unit, got.UnitOfMeasurement, tt.wantUnit)
		}
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	variants := []string{"DEGREES C", "Degrees C", "degrees c"}
	for _, unit := range variants {
		got := Classify(unit)
		if got.DeviceClass != "temperature" {
			t.Errorf("Classify(%q) device_class = %q, want temperature", unit, got.DeviceClass)
		}
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// "degrees c" is checked before "c"-as-substring rules lower down; a
	// verbose temperature must never classify as anything else.
	got := Classify("degrees C")
	if got.DeviceClass != "temperature" {
		t.Errorf("Classify(\"degrees C\") device_class = %q, want temperature", got.DeviceClass)
	}
}
