package model

type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

// Menu is the steakhouse catalogue served by the storefront.
var Menu = []MenuItem{
	{
		ID:          1,
		Name:        "The Majestic Filet Mignon",
		Description: "8oz center-cut, extraordinarily tender, aged to perfection. Served with garlic mashed potatoes.",
		Price:       52.99,
		ImageURL:    "https://picsum.photos/seed/filet/400/300",
	},
	{
		ID:          2,
		Name:        "Ribeye Royale",
		Description: "16oz bone-in ribeye, exceptionally marbled for peak flavor and succulence. Served with grilled asparagus.",
		Price:       58.50,
		ImageURL:    "https://picsum.photos/seed/ribeye/400/300",
	},
	{
		ID:          3,
		Name:        "New York Strip Supreme",
		Description: "14oz USDA Prime, a perfect balance of flavor and tenderness with a distinct bite. Served with creamed spinach.",
		Price:       49.75,
		ImageURL:    "https://picsum.photos/seed/nystrip/400/300",
	},
	{
		ID:          4,
		Name:        "The Porterhouse King",
		Description: "24oz of pure excellence, combining the tenderness of a filet with the rich flavor of a strip. Served with truffle fries.",
		Price:       75.00,
		ImageURL:    "https://picsum.photos/seed/porterhouse/400/300",
	},
	{
		ID:          5,
		Name:        "Wagyu Perfection",
		Description: "6oz A5 Japanese Wagyu, an unforgettable, melt-in-your-mouth experience. Served with wasabi-yuzu sauce.",
		Price:       120.00,
		ImageURL:    "https://picsum.photos/seed/wagyu/400/300",
	},
	{
		ID:          6,
		Name:        "Classic Sirloin",
		Description: "10oz top sirloin, lean yet flavorful, grilled to your liking. Served with a baked potato.",
		Price:       35.50,
		ImageURL:    "https://picsum.photos/seed/sirloin/400/300",
	},
}
