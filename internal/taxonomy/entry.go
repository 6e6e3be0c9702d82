package taxonomy

// ProductTypeEntry describes one canonical product type. Canonical names are
// case-insensitive unique keys; entries are immutable after registry
// construction.
type ProductTypeEntry struct {
	Canonical   string
	Category    string
	Subcategory string
	// Variations are alternate spellings that normalize to this type
	Variations []string
	// Synonyms are distinct names treated as equivalent for matching
	Synonyms []string
	// Keywords are detection hints scored during free-text matching
	Keywords []string
	// TypicalForms lists the dispensing forms this type ships in
	TypicalForms []string
	// Generic marks catch-all types ("Soap", "Moisturizer") whose mention
	// carries little ingredient-clarity information
	Generic bool
	// Accessory marks non-consumable tools (brushes, bags)
	Accessory bool
}

// FormEntry describes one canonical dispensing form.
type FormEntry struct {
	Canonical  string
	Variations []string
	// Keywords are detection hints for free-text extraction
	Keywords []string
	// CompatibleForms lists forms interchangeable with this one
	CompatibleForms []string
	// Family groups physically interchangeable forms (spray/mist/spritz etc.)
	Family string
}

// BrandEntry describes a known brand and its market positioning.
type BrandEntry struct {
	Name        string
	Variations  []string
	Positioning string // "clinical", "natural", "luxury", "drugstore"
	Categories  []string
}

// IngredientEntry describes a marketed ingredient keyword.
type IngredientEntry struct {
	Name       string
	Variations []string
}
