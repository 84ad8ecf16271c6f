package pet

// ItemType groups store items by what they do
type ItemType string

const (
	ItemFood       ItemType = "food"
	ItemToy        ItemType = "toy"
	ItemDecoration ItemType = "decoration"
	ItemSpecial    ItemType = "special"
)

// StoreItem is one entry in the shop catalog. Bonuses are optional.
type StoreItem struct {
	ID             string
	Name           string
	Description    string
	Emoji          string
	Cost           int
	Type           ItemType
	HungerValue    *float64
	HappinessValue *float64
}

func bonus(v float64) *float64 { return &v }

// StoreItems is the fixed shop catalog
var StoreItems = []StoreItem{
	{
		ID:             "cake",
		Name:           "Delicious Cake",
		Description:    "A sweet treat that fills the tummy!",
		Emoji:          "🍰",
		Cost:           1,
		Type:           ItemFood,
		HungerValue:    bonus(20),
		HappinessValue: bonus(5),
	},
	{
		ID:             "ball",
		Name:           "Bouncy Ball",
		Description:    "A fun toy to play with!",
		Emoji:          "⚽",
		Cost:           2,
		Type:           ItemToy,
		HappinessValue: bonus(10),
	},
	{
		ID:          "flower",
		Name:        "Candy Flower",
		Description: "A beautiful decoration for the planet.",
		Emoji:       "🌸",
		Cost:        3,
		Type:        ItemDecoration,
	},
	{
		ID:          "mystery",
		Name:        "Mystery Box",
		Description: "What could be inside?",
		Emoji:       "🎁",
		Cost:        5,
		Type:        ItemSpecial,
	},
}

// GetStoreItem returns the catalog entry for an id
func GetStoreItem(id string) (StoreItem, bool) {
	for _, item := range StoreItems {
		if item.ID == id {
			return item, true
		}
	}
	return StoreItem{}, false
}
