package validator

func init() {
	// Execution order is fixed so reports are reproducible.
	Register(CompatiblePrinters{})
	Register(FilamentReference{})
	Register(NameConsistency{})
	Register(FilamentID{})
	Register(ConflictingKeys{})
	Register(ObsoleteKeyCheck{})
}
