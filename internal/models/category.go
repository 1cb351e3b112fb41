package models

// Category is one entry of the fixed category set.
type Category struct {
	Key   string
	Label string
	Color string
}

// Palette colors of the category cards.
const (
	ColorAccent    = "#a3c2e2"
	ColorSecondary = "#f2a6a0"
	ColorAccent2   = "#e7d28b"
	ColorAccent3   = "#c9b6a9"
)

// Categories is the full, ordered category set. Thread categories must be
// one of these keys.
var Categories = []Category{
	{Key: "general", Label: "General", Color: ColorAccent3},
	{Key: "movies", Label: "Movies", Color: ColorAccent},
	{Key: "music", Label: "Music", Color: ColorSecondary},
	{Key: "photos", Label: "Photography", Color: ColorAccent2},
	{Key: "gaming", Label: "Gaming", Color: ColorAccent},
	{Key: "learn", Label: "Learning", Color: ColorAccent3},
	{Key: "tech", Label: "Tech", Color: ColorAccent2},
	{Key: "world", Label: "World", Color: ColorSecondary},
	{Key: "help", Label: "Help", Color: ColorAccent},
	{Key: "work", Label: "Careers", Color: ColorAccent3},
}

// DefaultCategory is preselected for new threads.
var DefaultCategory = Categories[0].Key

// CategoryByKey looks up a category by key.
func CategoryByKey(key string) (Category, bool) {
	for _, c := range Categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// IsValidCategory reports whether key belongs to Categories.
func IsValidCategory(key string) bool {
	_, ok := CategoryByKey(key)
	return ok
}
