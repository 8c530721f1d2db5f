package models

import "strings"

// Key prefixes that strongly indicate a profile type when no explicit type
// field or directory context is available.
var typeKeyHints = map[ProfileType][]string{
	TypeFilament: {"filament_settings_id", "filament_type", "filament_vendor", "nozzle_temperature"},
	TypeMachine:  {"printer_settings_id", "printer_model", "printer_variant", "machine_start_gcode", "nozzle_diameter"},
	TypeProcess:  {"print_settings_id", "layer_height", "wall_loops", "sparse_infill_density"},
}

// InferType guesses a profile's type from its key set. Returns "" when the
// keys match no type or more than one equally well.
func InferType(fields map[string]any) ProfileType {
	best := ProfileType("")
	bestScore := 0
	tied := false

	for _, pt := range ProfileTypes {
		score := 0
		for _, hint := range typeKeyHints[pt] {
			if _, ok := fields[hint]; ok {
				score++
			}
		}
		// Prefix counting breaks ties between the hint tables.
		prefix := string(pt) + "_"
		if pt == TypeMachine {
			prefix = "machine_"
		}
		for key := range fields {
			if strings.HasPrefix(key, prefix) {
				score++
			}
		}
		switch {
		case score > bestScore:
			best, bestScore, tied = pt, score, false
		case score == bestScore && score > 0:
			tied = true
		}
	}

	if tied || bestScore == 0 {
		return ""
	}
	return best
}
