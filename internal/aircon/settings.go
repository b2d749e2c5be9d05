package aircon

import "strings"

// Field is a write-schema value that may be absent
type Field struct {
	Value   string
	Present bool
}

// Value returns a present Field
func Value(v string) Field {
	return Field{Value: v, Present: true}
}

// Render returns the wire value, or missing when the field is absent
func (f Field) Render(missing string) string {
	if !f.Present {
		return missing
	}
	return f.Value
}

// ControlSettings is the typed form of a control write.
// Every field maps to one key of WriteSchema.
type ControlSettings struct {
	Power          Field // pow
	FanDirUD       Field // f_dir_ud
	Mode           Field // mode
	TargetHumidity Field // shum
	FanDirLR       Field // f_dir_lr
	FanRate        Field // f_rate
	TargetTemp     Field // stemp
}

// ControlSettingsFrom extracts the write-schema keys from params
func ControlSettingsFrom(params *Params) ControlSettings {
	field := func(key string) Field {
		v, ok := params.Lookup(key)
		return Field{Value: v, Present: ok}
	}

	return ControlSettings{
		Power:          field(KeyPower),
		FanDirUD:       field(KeyFanDirUD),
		Mode:           field(KeyMode),
		TargetHumidity: field(KeyTargetHumidity),
		FanDirLR:       field(KeyFanDirLR),
		FanRate:        field(KeyFanRate),
		TargetTemp:     field(KeyTargetTemp),
	}
}

// fields returns the settings in WriteSchema order
func (cs ControlSettings) fields() []Field {
	return []Field{
		cs.Power,
		cs.FanDirUD,
		cs.Mode,
		cs.TargetHumidity,
		cs.FanDirLR,
		cs.FanRate,
		cs.TargetTemp,
	}
}

// Missing returns the write-schema keys that are absent
func (cs ControlSettings) Missing() []string {
	var missing []string
	for i, f := range cs.fields() {
		if !f.Present {
			missing = append(missing, WriteSchema[i])
		}
	}
	return missing
}

// Query renders all seven keys as '&'-joined key=value pairs in wire order.
// Values are sent verbatim; the adapter does not decode percent escapes.
func (cs ControlSettings) Query(missing string) string {
	fields := cs.fields()
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = WriteSchema[i] + "=" + f.Render(missing)
	}
	return strings.Join(parts, "&")
}
