package validator

// ObsoleteKeys lists keys the host application has deprecated or removed.
// They are ignored at best and misleading at worst.
var ObsoleteKeys = map[string]bool{
	"acceleration":                       true,
	"scale":                              true,
	"rotate":                             true,
	"duplicate":                          true,
	"duplicate_grid":                     true,
	"bed_size":                           true,
	"print_center":                       true,
	"g0":                                 true,
	"wipe_tower_per_color_wipe":          true,
	"support_sharp_tails":                true,
	"support_remove_small_overhangs":     true,
	"support_with_sheath":                true,
	"tree_support_collision_resolution":  true,
	"tree_support_with_infill":           true,
	"max_volumetric_speed":               true,
	"max_print_speed":                    true,
	"support_closing_radius":             true,
	"remove_freq_sweep":                  true,
	"remove_bed_leveling":                true,
	"remove_extrusion_calibration":       true,
	"support_transition_line_width":      true,
	"support_transition_speed":           true,
	"bed_temperature":                    true,
	"bed_temperature_initial_layer":      true,
	"can_switch_nozzle_type":             true,
	"can_add_auxiliary_fan":              true,
	"extra_flush_volume":                 true,
	"spaghetti_detector":                 true,
	"adaptive_layer_height":              true,
	"z_hop_type":                         true,
	"z_lift_type":                        true,
	"bed_temperature_difference":         true,
	"long_retraction_when_cut":           true,
	"retraction_distance_when_cut":       true,
	"extruder_type":                      true,
	"internal_bridge_support_thickness":  true,
	"extruder_clearance_max_radius":      true,
	"top_area_threshold":                 true,
	"reduce_wall_solid_infill":           true,
	"filament_load_time":                 true,
	"filament_unload_time":               true,
	"smooth_coefficient":                 true,
	"overhang_totally_speed":             true,
	"silent_mode":                        true,
	"overhang_speed_classic":             true,
}

// ConflictKeys lists key pairs the host application treats as mutually
// exclusive, typically a legacy single-value key and its replacement.
var ConflictKeys = [][2]string{
	{"extruder_clearance_radius", "extruder_clearance_max_radius"},
}

// maxFilamentIDLength is the host application's limit; longer IDs are
// truncated on import and collide.
const maxFilamentIDLength = 8
