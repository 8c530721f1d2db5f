package models

// VendorIndex is the top-level <vendor>.json file that maps display names to
// profile files under the vendor directory.
type VendorIndex struct {
	Name             string       `json:"name"`
	Version          string       `json:"version,omitempty"`
	MachineModelList []IndexEntry `json:"machine_model_list,omitempty"`
	MachineList      []IndexEntry `json:"machine_list,omitempty"`
	FilamentList     []IndexEntry `json:"filament_list,omitempty"`
	ProcessList      []IndexEntry `json:"process_list,omitempty"`
}

// IndexEntry is one profile reference in a vendor index.
type IndexEntry struct {
	Name    string `json:"name"`
	SubPath string `json:"sub_path"`
}

// IndexSection is one named entry list from a vendor index.
type IndexSection struct {
	Name    string
	Entries []IndexEntry
}

// Sections returns the index entry lists paired with their section names,
// in the order they appear in vendor files.
func (v *VendorIndex) Sections() []IndexSection {
	return []IndexSection{
		{"machine_model_list", v.MachineModelList},
		{"machine_list", v.MachineList},
		{"filament_list", v.FilamentList},
		{"process_list", v.ProcessList},
	}
}
