package samples

import "github.com/orcaflat/orcaflat/pkg/models"

// Profiles returns the bundled sample profiles: a small but complete
// vendor tree with inheritance chains for every profile type.
func Profiles() []SampleProfile {
	return []SampleProfile{
		{
			Filename: "fdm_filament_common.json",
			Type:     models.TypeFilament,
			Content: `{
    "type": "filament",
    "name": "fdm_filament_common",
    "filament_diameter": [
        "1.75"
    ],
    "filament_density": [
        "1.24"
    ],
    "filament_flow_ratio": [
        "1"
    ],
    "nozzle_temperature_range_low": [
        "190"
    ],
    "nozzle_temperature_range_high": [
        "240"
    ]
}
`,
		},
		{
			Filename: "Sample Generic PLA @base.json",
			Type:     models.TypeFilament,
			Content: `{
    "type": "filament",
    "name": "Sample Generic PLA @base",
    "inherits": "fdm_filament_common",
    "filament_type": [
        "PLA"
    ],
    "nozzle_temperature": [
        "220"
    ],
    "hot_plate_temp": [
        "60"
    ]
}
`,
		},
		{
			Filename: "Sample Generic PLA.json",
			Type:     models.TypeFilament,
			Content: `{
    "type": "filament",
    "name": "Sample Generic PLA",
    "inherits": "Sample Generic PLA @base",
    "instantiation": "true",
    "filament_id": "SFL99",
    "compatible_printers": [
        "Sample X1 0.4 nozzle"
    ]
}
`,
		},
		{
			Filename: "Sample X1.json",
			Type:     models.TypeMachine,
			Content: `{
    "type": "machine_model",
    "name": "Sample X1",
    "nozzle_diameter": "0.4",
    "machine_tech": "FFF",
    "default_materials": "Sample Generic PLA"
}
`,
		},
		{
			Filename: "fdm_machine_common.json",
			Type:     models.TypeMachine,
			Content: `{
    "type": "machine",
    "name": "fdm_machine_common",
    "gcode_flavor": "marlin",
    "machine_max_speed_x": [
        "500"
    ],
    "machine_max_speed_y": [
        "500"
    ],
    "retraction_length": [
        "0.8"
    ]
}
`,
		},
		{
			Filename: "Sample X1 0.4 nozzle.json",
			Type:     models.TypeMachine,
			Content: `{
    "type": "machine",
    "name": "Sample X1 0.4 nozzle",
    "inherits": "fdm_machine_common",
    "instantiation": "true",
    "printer_model": "Sample X1",
    "nozzle_diameter": [
        "0.4"
    ],
    "printable_area": [
        "0x0",
        "256x0",
        "256x256",
        "0x256"
    ],
    "printable_height": "256",
    "default_filament_profile": [
        "Sample Generic PLA"
    ],
    "default_print_profile": "0.20mm Standard @Sample X1"
}
`,
		},
		{
			Filename: "fdm_process_common.json",
			Type:     models.TypeProcess,
			Content: `{
    "type": "process",
    "name": "fdm_process_common",
    "wall_loops": "2",
    "sparse_infill_density": "15%",
    "top_shell_layers": "4",
    "bottom_shell_layers": "3"
}
`,
		},
		{
			Filename: "0.20mm Standard @Sample X1.json",
			Type:     models.TypeProcess,
			Content: `{
    "type": "process",
    "name": "0.20mm Standard @Sample X1",
    "inherits": "fdm_process_common",
    "instantiation": "true",
    "layer_height": "0.2",
    "initial_layer_print_height": "0.2",
    "compatible_printers": [
        "Sample X1 0.4 nozzle"
    ]
}
`,
		},
	}
}
