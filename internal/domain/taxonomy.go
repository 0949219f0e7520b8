package domain

// CategoryInfo describes one top-level catalogue category: which
// subcategories and brands it spans, the price band products are sampled
// from, and the attribute vocabulary products of that category may carry.
type CategoryInfo struct {
	Subcategories []string
	PriceMin      float64
	PriceMax      float64
	Brands        []string
	Attributes    []string
}

// CategoryOrder fixes the iteration order over the taxonomy. Generation must
// be deterministic for a given seed, so the taxonomy is never ranged as a map.
var CategoryOrder = []string{
	"Electronics",
	"Clothing",
	"Home & Kitchen",
	"Sports & Outdoors",
	"Books & Media",
}

var Categories = map[string]CategoryInfo{
	"Electronics": {
		Subcategories: []string{"Laptops", "Smartphones", "Tablets", "Accessories", "Audio", "Cameras"},
		PriceMin:      50,
		PriceMax:      2000,
		Brands:        []string{"Dell", "Apple", "Samsung", "Sony", "HP", "Lenovo", "Asus"},
		Attributes:    []string{"RAM", "Storage", "Screen Size", "Battery Life", "Weight"},
	},
	"Clothing": {
		Subcategories: []string{"Men's Wear", "Women's Wear", "Kids", "Shoes", "Accessories"},
		PriceMin:      20,
		PriceMax:      300,
		Brands:        []string{"Nike", "Adidas", "Zara", "H&M", "Levi's", "Gap", "Puma"},
		Attributes:    []string{"Size", "Color", "Material", "Fit", "Style"},
	},
	"Home & Kitchen": {
		Subcategories: []string{"Furniture", "Appliances", "Decor", "Kitchenware", "Bedding"},
		PriceMin:      30,
		PriceMax:      1500,
		Brands:        []string{"IKEA", "KitchenAid", "Dyson", "Philips", "Cuisinart", "OXO"},
		Attributes:    []string{"Dimensions", "Material", "Color", "Warranty", "Energy Rating"},
	},
	"Sports & Outdoors": {
		Subcategories: []string{"Fitness", "Camping", "Cycling", "Water Sports", "Team Sports"},
		PriceMin:      25,
		PriceMax:      800,
		Brands:        []string{"Nike", "Adidas", "Under Armour", "The North Face", "Columbia", "REI"},
		Attributes:    []string{"Size", "Weight", "Material", "Durability", "Weather Resistance"},
	},
	"Books & Media": {
		Subcategories: []string{"Fiction", "Non-Fiction", "Textbooks", "Magazines", "E-books"},
		PriceMin:      10,
		PriceMax:      150,
		Brands:        []string{"Penguin", "HarperCollins", "Simon & Schuster", "Wiley", "O'Reilly"},
		Attributes:    []string{"Pages", "Format", "Language", "Edition", "Publisher"},
	},
}
