package catalog

import "github.com/nexxdevv/sunset-traders-api/models"

// seedProducts is the static catalog. Order matters: browse and filter
// results preserve this order.
var seedProducts = []models.Product{
	{
		ID:          "1",
		Name:        "Giorgio Armani AR8186",
		Price:       40,
		Description: "Stylish Italian sunglasses with polarized lenses. Light weight and comfortable fit for men and women.",
		ImageURL:    "/sunnies.png",
		Category:    "sunglasses",
		DateAdded:   "2025-06-01",
	},
	{
		ID:          "3",
		Name:        "AirPods",
		Price:       20,
		Description: "Wireless earbuds with noise cancellation. Perfect for music lovers.",
		ImageURL:    "/airpods.png",
		Category:    "electronics",
		DateAdded:   "2025-06-03",
	},
	{
		ID:          "4",
		Name:        "Hunting Knife",
		Price:       10,
		Description: "High-quality black blade hunting knife. Slightly used but in great condition.",
		ImageURL:    "/knife.png",
		Category:    "knives",
		DateAdded:   "2025-06-04",
	},
	{
		ID:          "6",
		Name:        "Vintage Leather Handbag",
		Price:       80,
		Description: "Beautiful vintage leather handbag in excellent condition with classic design.",
		ImageURL:    "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=400&h=600&fit=crop&crop=center",
		Category:    "bags",
		DateAdded:   "2025-06-06",
	},
	{
		ID:          "7",
		Name:        "Ray-Ban Aviators",
		Price:       45,
		Description: "Classic Ray-Ban aviator sunglasses. Minor scratches on lens.",
		ImageURL:    "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=400&h=600&fit=crop&crop=center",
		Category:    "sunglasses",
		DateAdded:   "2025-06-07",
	},
	{
		ID:          "8",
		Name:        "Gold Chain Necklace",
		Price:       75,
		Description: "18k gold plated chain necklace. Perfect for layering.",
		ImageURL:    "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=400&h=600&fit=crop&crop=center",
		Category:    "jewelry",
		DateAdded:   "2025-06-08",
	},
	{
		ID:          "10",
		Name:        "Adidas Originals",
		Price:       70,
		Description: "Retro Adidas sneakers in mint condition. Classic three stripes design.",
		ImageURL:    "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=400&h=600&fit=crop&crop=center",
		Category:    "sneakers",
		DateAdded:   "2025-06-09",
	},
	{
		ID:          "11",
		Name:        "Vintage Band T-Shirt",
		Price:       35,
		Description: "Authentic vintage band t-shirt with original graphics. Soft cotton blend.",
		ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=600&fit=crop&crop=center",
		Category:    "shirts",
		DateAdded:   "2025-06-10",
	},
	{
		ID:          "12",
		Name:        "High-Waisted Jeans",
		Price:       45,
		Description: "Vintage high-waisted jeans in perfect condition. Classic fit.",
		ImageURL:    "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=400&h=600&fit=crop&crop=center",
		Category:    "pants",
		DateAdded:   "2025-06-11",
	},
	{
		ID:          "13",
		Name:        "Leather Boots",
		Price:       95,
		Description: "Genuine leather boots with minimal wear. Perfect for any occasion.",
		ImageURL:    "https://images.unsplash.com/photo-1608256246200-53e635b5b65f?w=400&h=600&fit=crop&crop=center",
		Category:    "boots",
		DateAdded:   "2025-05-12",
	},
	{
		ID:          "14",
		Name:        "Silk Scarf",
		Price:       30,
		Description: "Luxurious silk scarf with beautiful pattern. Perfect accessory piece.",
		ImageURL:    "https://images.unsplash.com/photo-1601924994987-69e26d50dc26?w=400&h=600&fit=crop&crop=center",
		Category:    "accessories",
		DateAdded:   "2025-05-12",
	},
	{
		ID:          "15",
		Name:        "Vintage Bomber Jacket",
		Price:       110,
		Description: "Classic bomber jacket in olive green. Military-inspired design.",
		ImageURL:    "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=400&h=600&fit=crop&crop=center",
		Category:    "jackets",
		DateAdded:   "2025-05-13",
	},
	{
		ID:          "16",
		Name:        "Converse Chuck Taylor",
		Price:       40,
		Description: "Classic Converse All Star sneakers in black. Timeless design.",
		ImageURL:    "https://images.unsplash.com/photo-1607522370275-f14206abe5d3?w=400&h=600&fit=crop&crop=center",
		Category:    "sneakers",
		DateAdded:   "2025-05-13",
	},
}
