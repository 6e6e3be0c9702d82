package taxonomy

// Static taxonomy tables. Registration order matters for findBestMatch tie
// breaking (first max encountered wins), so more specific types are listed
// before generic ones within each category.

// Product categories
const (
	CategoryHairCare    = "Hair Care"
	CategorySkincare    = "Skincare"
	CategoryBodyCare    = "Body Care"
	CategoryMakeup      = "Makeup"
	CategoryMensCare    = "Men's Care"
	CategoryWomensCare  = "Women's Care"
	CategoryFragrance   = "Fragrance"
	CategorySupplements = "Vitamins & Supplements"
)

// broadCategoryTerms maps broad free-text terms a recognizer may emit as a
// "product type" to the category they actually name. Used by the corrector
// to narrow the search space before falling back to full-text matching.
var broadCategoryTerms = map[string]string{
	"makeup":        CategoryMakeup,
	"cosmetics":     CategoryMakeup,
	"skincare":      CategorySkincare,
	"skin care":     CategorySkincare,
	"haircare":      CategoryHairCare,
	"hair care":     CategoryHairCare,
	"hair":          CategoryHairCare,
	"body care":     CategoryBodyCare,
	"bath":          CategoryBodyCare,
	"bath and body": CategoryBodyCare,
	"grooming":      CategoryMensCare,
	"feminine care": CategoryWomensCare,
	"intimate care": CategoryWomensCare,
	"fragrance":     CategoryFragrance,
	"vitamins":      CategorySupplements,
	"supplements":   CategorySupplements,
}

var productTypes = []ProductTypeEntry{
	// Hair Care
	{
		Canonical:    "Leave-In Conditioner",
		Category:     CategoryHairCare,
		Subcategory:  "Conditioners",
		Variations:   []string{"leave in conditioner", "leave-in", "leave in"},
		Keywords:     []string{"leave", "conditioner", "detangler", "detangling"},
		TypicalForms: []string{"cream", "spray", "liquid"},
	},
	{
		Canonical:    "Deep Conditioner",
		Category:     CategoryHairCare,
		Subcategory:  "Conditioners",
		Variations:   []string{"hair mask", "deep conditioning treatment", "hair masque"},
		Keywords:     []string{"deep", "conditioner", "treatment", "masque"},
		TypicalForms: []string{"cream", "butter"},
	},
	{
		Canonical:    "Conditioner",
		Category:     CategoryHairCare,
		Subcategory:  "Conditioners",
		Variations:   []string{"hair conditioner", "rinse out conditioner"},
		Keywords:     []string{"conditioner", "conditioning", "rinse"},
		TypicalForms: []string{"liquid", "cream"},
	},
	{
		Canonical:    "Shampoo",
		Category:     CategoryHairCare,
		Subcategory:  "Cleansers",
		Variations:   []string{"hair shampoo", "clarifying shampoo", "shampoo bar"},
		Synonyms:     []string{"hair cleanser"},
		Keywords:     []string{"shampoo", "clarifying", "lather"},
		TypicalForms: []string{"liquid", "foam", "bar"},
	},
	{
		Canonical:    "Co-Wash",
		Category:     CategoryHairCare,
		Subcategory:  "Cleansers",
		Variations:   []string{"cowash", "co wash", "cleansing conditioner"},
		Keywords:     []string{"cowash", "cleansing", "conditioner"},
		TypicalForms: []string{"cream", "liquid"},
	},
	{
		Canonical:    "Edge Control",
		Category:     CategoryHairCare,
		Subcategory:  "Styling",
		Variations:   []string{"edge tamer", "edge gel"},
		Keywords:     []string{"edge", "control", "tamer", "sleek"},
		TypicalForms: []string{"gel", "stick"},
	},
	{
		Canonical:    "Hair Gel",
		Category:     CategoryHairCare,
		Subcategory:  "Styling",
		Variations:   []string{"styling gel", "curl gel", "curling gel"},
		Keywords:     []string{"gel", "curl", "styling", "custard", "hold"},
		TypicalForms: []string{"gel"},
	},
	{
		Canonical:    "Hair Cream",
		Category:     CategoryHairCare,
		Subcategory:  "Styling",
		Variations:   []string{"curl cream", "styling cream", "curling cream"},
		Keywords:     []string{"cream", "curl", "styling", "twist"},
		TypicalForms: []string{"cream"},
	},
	{
		Canonical:    "Hair Butter",
		Category:     CategoryHairCare,
		Subcategory:  "Styling",
		Variations:   []string{"curl butter"},
		Keywords:     []string{"butter", "hair", "curl"},
		TypicalForms: []string{"butter", "cream"},
	},
	{
		Canonical:    "Hair Oil",
		Category:     CategoryHairCare,
		Subcategory:  "Treatments",
		Variations:   []string{"scalp oil", "growth oil", "hair growth oil"},
		Keywords:     []string{"hair", "oil", "scalp", "growth"},
		TypicalForms: []string{"oil", "serum"},
	},
	{
		Canonical:    "Hair Spray",
		Category:     CategoryHairCare,
		Subcategory:  "Styling",
		Variations:   []string{"hairspray", "holding spray", "finishing spray"},
		Keywords:     []string{"spray", "hold", "finishing"},
		TypicalForms: []string{"spray"},
	},
	{
		Canonical:    "Hair Brush",
		Category:     CategoryHairCare,
		Subcategory:  "Tools",
		Variations:   []string{"detangling brush", "wave brush"},
		Keywords:     []string{"brush", "detangling", "bristle"},
		Accessory:    true,
		TypicalForms: nil,
	},

	// Skincare
	{
		Canonical:    "Facial Cleanser",
		Category:     CategorySkincare,
		Subcategory:  "Cleansers",
		Variations:   []string{"face cleanser", "face wash", "facial wash"},
		Synonyms:     []string{"face soap"},
		Keywords:     []string{"cleanser", "facial", "face", "cleansing"},
		TypicalForms: []string{"foam", "gel", "liquid", "cream", "bar"},
	},
	{
		Canonical:    "Face Moisturizer",
		Category:     CategorySkincare,
		Subcategory:  "Moisturizers",
		Variations:   []string{"facial moisturizer", "face cream", "facial moisturizing lotion"},
		Keywords:     []string{"moisturizer", "face", "facial", "hydrating"},
		TypicalForms: []string{"cream", "lotion", "gel"},
	},
	{
		Canonical:    "Face Serum",
		Category:     CategorySkincare,
		Subcategory:  "Treatments",
		Variations:   []string{"facial serum", "skin serum"},
		Keywords:     []string{"serum", "face", "facial"},
		TypicalForms: []string{"serum", "oil"},
	},
	{
		Canonical:    "Face Mask",
		Category:     CategorySkincare,
		Subcategory:  "Treatments",
		Variations:   []string{"facial mask", "sheet mask", "clay mask"},
		Keywords:     []string{"mask", "masque", "face", "clay"},
		TypicalForms: []string{"cream", "gel"},
	},
	{
		Canonical:    "Face Scrub",
		Category:     CategorySkincare,
		Subcategory:  "Exfoliators",
		Variations:   []string{"facial scrub", "face exfoliator"},
		Keywords:     []string{"scrub", "exfoliating", "face", "facial"},
		TypicalForms: []string{"cream", "gel"},
	},
	{
		Canonical:    "Toner",
		Category:     CategorySkincare,
		Subcategory:  "Treatments",
		Variations:   []string{"facial toner", "face toner", "toning mist"},
		Keywords:     []string{"toner", "toning", "astringent"},
		TypicalForms: []string{"liquid", "spray", "mist"},
	},
	{
		Canonical:    "Sunscreen",
		Category:     CategorySkincare,
		Subcategory:  "Sun Care",
		Variations:   []string{"sun screen", "sunblock", "sun cream"},
		Keywords:     []string{"spf", "sunscreen", "broad", "spectrum"},
		TypicalForms: []string{"lotion", "cream", "spray", "stick"},
	},
	{
		Canonical:    "Eye Cream",
		Category:     CategorySkincare,
		Subcategory:  "Moisturizers",
		Variations:   []string{"under eye cream", "eye gel"},
		Keywords:     []string{"eye", "cream", "dark", "circles"},
		TypicalForms: []string{"cream", "gel", "serum"},
	},
	{
		Canonical:    "Lip Balm",
		Category:     CategorySkincare,
		Subcategory:  "Lip Care",
		Variations:   []string{"lip moisturizer", "chapstick", "lip butter"},
		Keywords:     []string{"lip", "balm", "chapped"},
		TypicalForms: []string{"balm", "stick"},
	},
	{
		Canonical:    "Moisturizer",
		Category:     CategorySkincare,
		Subcategory:  "Moisturizers",
		Keywords:     []string{"moisturizer", "moisturizing", "hydrating"},
		TypicalForms: []string{"cream", "lotion", "gel"},
		Generic:      true,
	},
	{
		Canonical:    "Cleanser",
		Category:     CategorySkincare,
		Subcategory:  "Cleansers",
		Keywords:     []string{"cleanser", "cleansing"},
		TypicalForms: []string{"foam", "gel", "liquid", "bar"},
		Generic:      true,
	},

	// Body Care
	{
		Canonical:    "Hand Sanitizer",
		Category:     CategoryBodyCare,
		Subcategory:  "Hand Care",
		Variations:   []string{"hand sanitiser", "sanitizing gel", "sanitizer gel"},
		Keywords:     []string{"sanitizer", "hand", "antibacterial"},
		TypicalForms: []string{"gel", "spray", "liquid"},
	},
	{
		Canonical:    "Hand Soap",
		Category:     CategoryBodyCare,
		Subcategory:  "Hand Care",
		Variations:   []string{"hand wash", "foaming hand soap"},
		Keywords:     []string{"hand", "soap", "wash"},
		TypicalForms: []string{"liquid", "foam", "bar"},
	},
	{
		Canonical:    "Hand Cream",
		Category:     CategoryBodyCare,
		Subcategory:  "Hand Care",
		Variations:   []string{"hand lotion"},
		Keywords:     []string{"hand", "cream", "lotion"},
		TypicalForms: []string{"cream", "lotion"},
	},
	{
		Canonical:    "Body Wash",
		Category:     CategoryBodyCare,
		Subcategory:  "Cleansers",
		Variations:   []string{"shower gel", "body cleanser", "shower wash"},
		Keywords:     []string{"body", "wash", "shower"},
		TypicalForms: []string{"liquid", "gel", "foam"},
	},
	{
		Canonical:    "Bar Soap",
		Category:     CategoryBodyCare,
		Subcategory:  "Cleansers",
		Variations:   []string{"soap bar", "bath bar", "black soap"},
		Keywords:     []string{"soap", "bar", "cleansing"},
		TypicalForms: []string{"bar"},
	},
	{
		Canonical:    "Body Lotion",
		Category:     CategoryBodyCare,
		Subcategory:  "Moisturizers",
		Variations:   []string{"body moisturizer", "moisturizing lotion"},
		Keywords:     []string{"lotion", "body", "moisturizing"},
		TypicalForms: []string{"lotion", "cream"},
	},
	{
		Canonical:    "Body Butter",
		Category:     CategoryBodyCare,
		Subcategory:  "Moisturizers",
		Variations:   []string{"whipped body butter"},
		Keywords:     []string{"butter", "body", "whipped"},
		TypicalForms: []string{"butter", "cream"},
	},
	{
		Canonical:    "Body Scrub",
		Category:     CategoryBodyCare,
		Subcategory:  "Exfoliators",
		Variations:   []string{"sugar scrub", "salt scrub"},
		Keywords:     []string{"scrub", "body", "exfoliating", "sugar"},
		TypicalForms: []string{"cream", "gel"},
	},
	{
		Canonical:    "Body Oil",
		Category:     CategoryBodyCare,
		Subcategory:  "Moisturizers",
		Keywords:     []string{"body", "oil", "glow"},
		TypicalForms: []string{"oil"},
	},
	{
		Canonical:    "Deodorant",
		Category:     CategoryBodyCare,
		Subcategory:  "Personal Care",
		Variations:   []string{"antiperspirant", "anti-perspirant"},
		Keywords:     []string{"deodorant", "odor", "underarm"},
		TypicalForms: []string{"stick", "spray", "cream"},
	},
	{
		Canonical:    "Foot Cream",
		Category:     CategoryBodyCare,
		Subcategory:  "Foot Care",
		Variations:   []string{"foot lotion", "heel balm"},
		Keywords:     []string{"foot", "feet", "heel", "cream"},
		TypicalForms: []string{"cream", "balm"},
	},

	// Makeup
	{
		Canonical:    "Foundation",
		Category:     CategoryMakeup,
		Subcategory:  "Face",
		Variations:   []string{"liquid foundation", "powder foundation"},
		Keywords:     []string{"foundation", "coverage", "matte"},
		TypicalForms: []string{"liquid", "powder", "stick", "cream"},
	},
	{
		Canonical:    "Concealer",
		Category:     CategoryMakeup,
		Subcategory:  "Face",
		Keywords:     []string{"concealer", "coverage", "spot"},
		TypicalForms: []string{"liquid", "stick", "cream"},
	},
	{
		Canonical:    "Face Powder",
		Category:     CategoryMakeup,
		Subcategory:  "Face",
		Variations:   []string{"setting powder", "pressed powder", "loose powder"},
		Keywords:     []string{"powder", "setting", "pressed"},
		TypicalForms: []string{"powder"},
	},
	{
		Canonical:    "Blush",
		Category:     CategoryMakeup,
		Subcategory:  "Face",
		Keywords:     []string{"blush", "cheek"},
		TypicalForms: []string{"powder", "cream", "liquid"},
	},
	{
		Canonical:    "Mascara",
		Category:     CategoryMakeup,
		Subcategory:  "Eyes",
		Keywords:     []string{"mascara", "lash", "lashes", "volumizing"},
		TypicalForms: []string{"liquid"},
	},
	{
		Canonical:    "Eyeliner",
		Category:     CategoryMakeup,
		Subcategory:  "Eyes",
		Variations:   []string{"eye liner", "liquid liner"},
		Keywords:     []string{"eyeliner", "liner", "winged"},
		TypicalForms: []string{"liquid", "gel", "stick"},
	},
	{
		Canonical:    "Eyeshadow",
		Category:     CategoryMakeup,
		Subcategory:  "Eyes",
		Variations:   []string{"eye shadow", "eyeshadow palette"},
		Keywords:     []string{"eyeshadow", "shadow", "palette"},
		TypicalForms: []string{"powder", "cream"},
	},
	{
		Canonical:    "Lipstick",
		Category:     CategoryMakeup,
		Subcategory:  "Lips",
		Variations:   []string{"liquid lipstick", "matte lipstick"},
		Keywords:     []string{"lipstick", "lip", "matte"},
		TypicalForms: []string{"stick", "liquid"},
	},
	{
		Canonical:    "Lip Gloss",
		Category:     CategoryMakeup,
		Subcategory:  "Lips",
		Variations:   []string{"lipgloss", "lip shine"},
		Keywords:     []string{"gloss", "lip", "shine"},
		TypicalForms: []string{"liquid", "gel"},
	},
	{
		Canonical:    "Setting Spray",
		Category:     CategoryMakeup,
		Subcategory:  "Face",
		Variations:   []string{"makeup setting spray", "fixing spray"},
		Keywords:     []string{"setting", "spray", "makeup"},
		TypicalForms: []string{"spray", "mist"},
	},
	{
		Canonical:    "Makeup Remover",
		Category:     CategoryMakeup,
		Subcategory:  "Face",
		Variations:   []string{"micellar water", "makeup removing wipes"},
		Keywords:     []string{"remover", "makeup", "micellar"},
		TypicalForms: []string{"liquid", "wipe", "oil"},
	},
	{
		Canonical:    "Makeup Brush",
		Category:     CategoryMakeup,
		Subcategory:  "Tools",
		Variations:   []string{"makeup brush set", "blending brush"},
		Keywords:     []string{"brush", "blending", "makeup"},
		Accessory:    true,
	},

	// Men's Care
	{
		Canonical:    "Beard Oil",
		Category:     CategoryMensCare,
		Subcategory:  "Beard Care",
		Keywords:     []string{"beard", "oil"},
		TypicalForms: []string{"oil", "serum"},
	},
	{
		Canonical:    "Beard Balm",
		Category:     CategoryMensCare,
		Subcategory:  "Beard Care",
		Variations:   []string{"beard butter"},
		Keywords:     []string{"beard", "balm", "butter"},
		TypicalForms: []string{"balm", "butter"},
	},
	{
		Canonical:    "Shaving Cream",
		Category:     CategoryMensCare,
		Subcategory:  "Shaving",
		Variations:   []string{"shave cream", "shaving foam", "shave butter"},
		Keywords:     []string{"shaving", "shave", "razor"},
		TypicalForms: []string{"cream", "foam", "gel"},
	},
	{
		Canonical:    "Aftershave",
		Category:     CategoryMensCare,
		Subcategory:  "Shaving",
		Variations:   []string{"after shave", "aftershave balm"},
		Keywords:     []string{"aftershave", "soothing", "shave"},
		TypicalForms: []string{"liquid", "balm", "lotion"},
	},
	{
		Canonical:    "Pomade",
		Category:     CategoryMensCare,
		Subcategory:  "Styling",
		Variations:   []string{"wave pomade", "hair wax"},
		Keywords:     []string{"pomade", "wave", "wax"},
		TypicalForms: []string{"wax", "cream"},
	},

	// Women's Care
	{
		Canonical:    "Feminine Wash",
		Category:     CategoryWomensCare,
		Subcategory:  "Intimate Care",
		Variations:   []string{"intimate wash", "yoni wash", "foaming feminine wash"},
		Keywords:     []string{"feminine", "intimate", "wash", "yoni"},
		TypicalForms: []string{"liquid", "foam", "bar"},
	},
	{
		Canonical:    "Feminine Spray",
		Category:     CategoryWomensCare,
		Subcategory:  "Intimate Care",
		Variations:   []string{"feminine deodorant spray"},
		Keywords:     []string{"feminine", "intimate", "spray"},
		TypicalForms: []string{"spray", "mist"},
	},
	{
		Canonical:    "Yoni Oil",
		Category:     CategoryWomensCare,
		Subcategory:  "Intimate Care",
		Variations:   []string{"feminine oil", "intimate oil"},
		Keywords:     []string{"yoni", "feminine", "oil"},
		TypicalForms: []string{"oil"},
	},

	// Fragrance
	{
		Canonical:    "Perfume",
		Category:     CategoryFragrance,
		Subcategory:  "Fragrance",
		Variations:   []string{"eau de parfum", "eau de toilette", "parfum"},
		Synonyms:     []string{"cologne", "fragrance"},
		Keywords:     []string{"perfume", "fragrance", "scent"},
		TypicalForms: []string{"spray", "oil", "liquid"},
	},
	{
		Canonical:    "Body Mist",
		Category:     CategoryFragrance,
		Subcategory:  "Fragrance",
		Variations:   []string{"body spray", "fragrance mist"},
		Keywords:     []string{"mist", "body", "spray"},
		TypicalForms: []string{"mist", "spray"},
	},
	{
		Canonical:    "Scented Candle",
		Category:     CategoryFragrance,
		Subcategory:  "Home Fragrance",
		Variations:   []string{"soy candle", "aromatherapy candle"},
		Keywords:     []string{"candle", "scented", "soy"},
		TypicalForms: nil,
	},

	// Vitamins & Supplements
	{
		Canonical:    "Hair Vitamins",
		Category:     CategorySupplements,
		Subcategory:  "Beauty Supplements",
		Variations:   []string{"hair growth vitamins", "hair gummies"},
		Keywords:     []string{"vitamins", "hair", "biotin", "gummies"},
		TypicalForms: nil,
	},
	{
		Canonical:    "Multivitamin",
		Category:     CategorySupplements,
		Subcategory:  "General",
		Variations:   []string{"multi-vitamin", "daily vitamins"},
		Keywords:     []string{"multivitamin", "vitamins", "daily"},
		Generic:      true,
		TypicalForms: nil,
	},
}

var forms = []FormEntry{
	{
		Canonical:       "spray",
		Variations:      []string{"pump spray", "aerosol"},
		Keywords:        []string{"spray", "spritz", "aerosol"},
		CompatibleForms: []string{"mist"},
		Family:          "spray",
	},
	{
		Canonical:       "mist",
		Keywords:        []string{"mist", "misting"},
		CompatibleForms: []string{"spray"},
		Family:          "spray",
	},
	{
		Canonical:       "cream",
		Variations:      []string{"creme", "crème"},
		Keywords:        []string{"cream", "creme", "creamy"},
		CompatibleForms: []string{"lotion", "butter"},
		Family:          "cream",
	},
	{
		Canonical:       "lotion",
		Keywords:        []string{"lotion"},
		CompatibleForms: []string{"cream", "butter"},
		Family:          "cream",
	},
	{
		Canonical:       "butter",
		Variations:      []string{"whipped butter"},
		Keywords:        []string{"butter", "whipped"},
		CompatibleForms: []string{"cream", "lotion"},
		Family:          "cream",
	},
	{
		Canonical:       "gel",
		Variations:      []string{"jelly", "gelly"},
		Keywords:        []string{"gel", "jelly", "custard"},
		CompatibleForms: nil,
		Family:          "gel",
	},
	{
		Canonical:       "oil",
		Keywords:        []string{"oil"},
		CompatibleForms: []string{"serum"},
		Family:          "oil",
	},
	{
		Canonical:       "serum",
		Keywords:        []string{"serum"},
		CompatibleForms: []string{"oil"},
		Family:          "oil",
	},
	{
		Canonical:       "foam",
		Variations:      []string{"mousse"},
		Keywords:        []string{"foam", "foaming", "mousse", "lather"},
		CompatibleForms: nil,
		Family:          "foam",
	},
	{
		Canonical:       "liquid",
		Variations:      []string{"wash", "fluid"},
		Keywords:        []string{"liquid", "wash", "fluid"},
		CompatibleForms: nil,
		Family:          "liquid",
	},
	{
		Canonical:       "bar",
		Variations:      []string{"soap bar", "solid"},
		Keywords:        []string{"bar", "solid"},
		CompatibleForms: []string{"stick"},
		Family:          "bar",
	},
	{
		Canonical:       "stick",
		Keywords:        []string{"stick", "roll-on"},
		CompatibleForms: []string{"bar"},
		Family:          "bar",
	},
	{
		Canonical:       "balm",
		Keywords:        []string{"balm", "salve"},
		CompatibleForms: []string{"stick"},
		Family:          "bar",
	},
	{
		Canonical:       "wax",
		Variations:      []string{"pomade"},
		Keywords:        []string{"wax", "pomade"},
		CompatibleForms: []string{"balm"},
		Family:          "bar",
	},
	{
		Canonical:       "wipe",
		Variations:      []string{"towelette"},
		Keywords:        []string{"wipe", "wipes", "towelette"},
		CompatibleForms: nil,
		Family:          "wipe",
	},
	{
		Canonical:       "powder",
		Variations:      []string{"compact"},
		Keywords:        []string{"powder", "compact", "loose"},
		CompatibleForms: nil,
		Family:          "powder",
	},
	{
		Canonical: "other",
		Family:    "",
	},
}

var brands = []BrandEntry{
	// Clinical / dermatologist brands
	{Name: "CeraVe", Positioning: "clinical", Categories: []string{"skincare", "face care"}},
	{Name: "Cetaphil", Positioning: "clinical", Categories: []string{"skincare", "face care"}},
	{Name: "La Roche-Posay", Variations: []string{"la roche posay"}, Positioning: "clinical", Categories: []string{"skincare"}},
	{Name: "Neutrogena", Positioning: "clinical", Categories: []string{"skincare", "makeup"}},
	{Name: "Eucerin", Positioning: "clinical", Categories: []string{"skincare", "body care"}},
	{Name: "The Ordinary", Positioning: "clinical", Categories: []string{"skincare"}},
	{Name: "Paula's Choice", Variations: []string{"paulas choice"}, Positioning: "clinical", Categories: []string{"skincare"}},

	// Natural / textured-hair brands
	{Name: "SheaMoisture", Variations: []string{"shea moisture"}, Positioning: "natural", Categories: []string{"hair care", "body care"}},
	{Name: "Cantu", Positioning: "natural", Categories: []string{"hair care"}},
	{Name: "Mielle", Variations: []string{"mielle organics"}, Positioning: "natural", Categories: []string{"hair care"}},
	{Name: "Carol's Daughter", Variations: []string{"carols daughter"}, Positioning: "natural", Categories: []string{"hair care", "body care"}},
	{Name: "Camille Rose", Positioning: "natural", Categories: []string{"hair care"}},
	{Name: "The Honey Pot", Variations: []string{"honey pot"}, Positioning: "natural", Categories: []string{"women's care"}},
	{Name: "Alikay Naturals", Positioning: "natural", Categories: []string{"hair care"}},
	{Name: "Burt's Bees", Variations: []string{"burts bees"}, Positioning: "natural", Categories: []string{"skincare", "body care"}},

	// Drugstore brands
	{Name: "Dove", Positioning: "drugstore", Categories: []string{"body care"}},
	{Name: "Olay", Positioning: "drugstore", Categories: []string{"skincare", "body care"}},
	{Name: "Aveeno", Positioning: "drugstore", Categories: []string{"skincare", "body care"}},
	{Name: "Nivea", Positioning: "drugstore", Categories: []string{"body care", "skincare"}},
	{Name: "Vaseline", Positioning: "drugstore", Categories: []string{"body care"}},
	{Name: "Suave", Positioning: "drugstore", Categories: []string{"hair care", "body care"}},
	{Name: "Maybelline", Positioning: "drugstore", Categories: []string{"makeup"}},
	{Name: "L'Oreal", Variations: []string{"loreal", "l'oréal"}, Positioning: "drugstore", Categories: []string{"makeup", "hair care", "skincare"}},
	{Name: "e.l.f.", Variations: []string{"elf cosmetics", "e.l.f. cosmetics"}, Positioning: "drugstore", Categories: []string{"makeup"}},

	// Luxury brands
	{Name: "Fenty Beauty", Variations: []string{"fenty"}, Positioning: "luxury", Categories: []string{"makeup", "skincare"}},
	{Name: "Pat McGrath", Variations: []string{"pat mcgrath labs"}, Positioning: "luxury", Categories: []string{"makeup"}},
	{Name: "Estee Lauder", Variations: []string{"estée lauder"}, Positioning: "luxury", Categories: []string{"skincare", "makeup"}},
	{Name: "Lancome", Variations: []string{"lancôme"}, Positioning: "luxury", Categories: []string{"skincare", "makeup"}},
}

var ingredients = []IngredientEntry{
	{Name: "shea butter", Variations: []string{"shea"}},
	{Name: "cocoa butter"},
	{Name: "mango butter"},
	{Name: "coconut oil", Variations: []string{"coconut"}},
	{Name: "argan oil", Variations: []string{"argan"}},
	{Name: "castor oil", Variations: []string{"jamaican black castor oil", "jbco"}},
	{Name: "jojoba oil", Variations: []string{"jojoba"}},
	{Name: "olive oil"},
	{Name: "avocado oil", Variations: []string{"avocado"}},
	{Name: "rosehip oil", Variations: []string{"rosehip"}},
	{Name: "black seed oil", Variations: []string{"black seed"}},
	{Name: "tea tree", Variations: []string{"tea tree oil"}},
	{Name: "aloe vera", Variations: []string{"aloe"}},
	{Name: "hyaluronic acid"},
	{Name: "salicylic acid"},
	{Name: "glycolic acid"},
	{Name: "niacinamide"},
	{Name: "retinol"},
	{Name: "vitamin c"},
	{Name: "vitamin e"},
	{Name: "ceramide", Variations: []string{"ceramides"}},
	{Name: "collagen"},
	{Name: "biotin"},
	{Name: "charcoal", Variations: []string{"activated charcoal"}},
	{Name: "honey", Variations: []string{"manuka honey"}},
	{Name: "oatmeal", Variations: []string{"colloidal oatmeal"}},
	{Name: "witch hazel"},
	{Name: "peppermint"},
	{Name: "lavender"},
	{Name: "eucalyptus"},
	{Name: "turmeric"},
	{Name: "green tea"},
	{Name: "rice water"},
	{Name: "hibiscus"},
	{Name: "flaxseed"},
	{Name: "baobab"},
}
