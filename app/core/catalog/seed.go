package catalog

// Seed returns the built-in demo catalog. The dal seeder and the test
// suites share it so both exercise the same shapes.
func Seed() []Product {
	return []Product{
		{
			Id:             "1",
			Name:           "EcoFlow Stainless Steel Water Bottle",
			Description:    "Double-walled vacuum insulated bottle made from recycled stainless steel. Keeps drinks cold for 24h, hot for 12h.",
			Price:          100,
			Image:          "/images/products/water-bottle.jpg",
			Category:       "drinkware",
			Tags:           []string{"reusable", "travel-friendly", "BPA-free", "insulated"},
			EcoScore:       9,
			InStock:        true,
			Brand:          "EcoFlow",
			Materials:      []string{"recycled stainless steel", "silicone"},
			Certifications: []string{"Cradle to Cradle", "BPA-Free"},
		},
		{
			Id:             "2",
			Name:           "Bamboo Fiber Lunch Box Set",
			Description:    "Complete lunch set made from sustainable bamboo fiber. Includes container, utensils, and carrying bag.",
			Price:          150,
			Image:          "/images/products/lunch-box.jpg",
			Category:       "food-storage",
			Tags:           []string{"biodegradable", "zero-waste", "portable", "microwave-safe"},
			EcoScore:       8,
			InStock:        true,
			Brand:          "GreenEats",
			Materials:      []string{"bamboo fiber", "corn starch"},
			Certifications: []string{"FDA Approved", "Biodegradable"},
		},
		{
			Id:             "3",
			Name:           "Organic Cotton Canvas Tote Bag",
			Description:    "Durable tote bag made from 100% organic cotton. Perfect for groceries, books, or daily essentials.",
			Price:          50,
			Image:          "/images/products/tote-bag.jpg",
			Category:       "bags",
			Tags:           []string{"organic", "reusable", "plastic-free", "durable"},
			EcoScore:       7,
			InStock:        true,
			Brand:          "EarthCarry",
			Materials:      []string{"100% organic cotton"},
			Certifications: []string{"GOTS Certified", "Fair Trade"},
		},
		{
			Id:             "4",
			Name:           "Solar Power Bank 20,000mAh",
			Description:    "High-capacity portable charger with solar panels. Emergency power source for outdoor adventures.",
			Price:          1000,
			Image:          "/images/products/power-bank.jpg",
			Category:       "electronics",
			Tags:           []string{"solar-powered", "portable", "wireless-charging", "weatherproof"},
			EcoScore:       8,
			InStock:        true,
			Brand:          "SolarTech",
			Materials:      []string{"recycled aluminum", "monocrystalline solar cells"},
			Certifications: []string{"Energy Star", "RoHS Compliant"},
		},
		{
			Id:             "5",
			Name:           "Beeswax Food Wraps Set",
			Description:    "Natural alternative to plastic wrap. Set of 3 wraps in different sizes made with organic beeswax.",
			Price:          100,
			Image:          "/images/products/beeswax-wraps.jpg",
			Category:       "food-storage",
			Tags:           []string{"plastic-free", "reusable", "compostable", "natural"},
			EcoScore:       9,
			InStock:        true,
			Brand:          "BeePure",
			Materials:      []string{"organic cotton", "beeswax", "jojoba oil"},
			Certifications: []string{"Organic Certified", "Compostable"},
		},
		{
			Id:             "6",
			Name:           "Recycled Ocean Plastic Smartphone Case",
			Description:    "Protective phone case made from 100% recycled ocean plastic. Available for multiple phone models.",
			Price:          200,
			Image:          "/images/products/phone-case.jpg",
			Category:       "electronics",
			Tags:           []string{"recycled", "ocean-cleanup", "protective", "wireless-compatible"},
			EcoScore:       8,
			InStock:        true,
			Brand:          "OceanGuard",
			Materials:      []string{"100% recycled ocean plastic"},
			Certifications: []string{"Ocean Positive", "Carbon Neutral"},
		},
		{
			Id:             "7",
			Name:           "Hemp Backpack 30L",
			Description:    "Durable hiking backpack made from 100% organic hemp. Water-resistant and perfect for outdoor adventures.",
			Price:          120,
			Image:          "/images/products/backpack.jpg",
			Category:       "bags",
			Tags:           []string{"organic", "durable", "water-resistant", "hiking"},
			EcoScore:       8,
			InStock:        true,
			Brand:          "EarthCarry",
			Materials:      []string{"100% organic hemp", "recycled zippers"},
			Certifications: []string{"GOTS Certified", "Vegan"},
		},
		{
			Id:             "8",
			Name:           "Organic Bamboo Toothbrush Set",
			Description:    "Set of 4 biodegradable toothbrushes with soft bristles. Plastic-free dental care solution.",
			Price:          50,
			Image:          "/images/products/toothbrush.jpg",
			Category:       "personal-care",
			Tags:           []string{"biodegradable", "plastic-free", "organic", "dental-care"},
			EcoScore:       9,
			InStock:        true,
			Brand:          "BambooBrush",
			Materials:      []string{"organic bamboo", "natural bristles"},
			Certifications: []string{"Organic", "Vegan", "Compostable"},
		},
		{
			Id:             "9",
			Name:           "Solar Garden String Lights",
			Description:    "20ft waterproof LED string lights powered by solar energy. Perfect for outdoor entertaining.",
			Price:          300,
			Image:          "/images/products/string-lights.jpg",
			Category:       "home",
			Tags:           []string{"solar-powered", "waterproof", "decorative", "energy-efficient"},
			EcoScore:       8,
			InStock:        true,
			Brand:          "SolarGlow",
			Materials:      []string{"recycled copper wire", "solar panel"},
			Certifications: []string{"IP65 Waterproof", "Energy Star"},
		},
		{
			Id:             "10",
			Name:           "Reusable Silicone Food Storage Bags",
			Description:    "Set of 6 leak-proof silicone bags in various sizes. Dishwasher safe and freezer friendly.",
			Price:          100,
			Image:          "/images/products/silicone-bags.jpg",
			Category:       "food-storage",
			Tags:           []string{"reusable", "leak-proof", "dishwasher-safe", "plastic-free"},
			EcoScore:       8,
			InStock:        true,
			Brand:          "SiliSafe",
			Materials:      []string{"food-grade silicone"},
			Certifications: []string{"FDA Approved", "BPA-Free"},
		},
		{
			Id:             "11",
			Name:           "Eco-Friendly Yoga Mat",
			Description:    "Non-slip yoga mat made from natural cork and rubber. Biodegradable and antimicrobial.",
			Price:          150,
			Image:          "/images/products/yoga-mat.jpg",
			Category:       "personal-care",
			Tags:           []string{"natural", "non-slip", "antimicrobial", "biodegradable"},
			EcoScore:       8,
			InStock:        true,
			Brand:          "YogaNature",
			Materials:      []string{"natural cork", "natural rubber"},
			Certifications: []string{"Eco-Friendly", "Non-Toxic"},
		},
		{
			Id:             "12",
			Name:           "Organic Cotton Bed Sheets Set",
			Description:    "Luxuriously soft 100% organic cotton sheet set. Breathable, hypoallergenic, and ethically made.",
			Price:          100,
			Image:          "/images/products/bed-sheets.jpg",
			Category:       "home",
			Tags:           []string{"organic", "hypoallergenic", "breathable", "ethical"},
			EcoScore:       8,
			InStock:        true,
			Brand:          "SleepGreen",
			Materials:      []string{"100% organic cotton"},
			Certifications: []string{"GOTS Certified", "OEKO-TEX", "Fair Trade"},
		},
	}
}
