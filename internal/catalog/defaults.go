package catalog

var defaultLocations = []Location{
	{ID: "lucky-strike-denver", Name: "Lucky Strike Denver", Address: "500 16th Street Mall #340", City: "Denver, CO 80202", Phone: "303-629-9090"},
	{ID: "denver-coors-field", Name: "Denver Coors Field", Address: "1601 19th Street Unit 101", City: "Denver, CO 80202", Phone: "303-872-7557"},
	{ID: "tom-watch-bar", Name: "Tom's Watch Bar", Address: "123 Main Street", City: "Denver, CO 80202", Phone: "303-555-1234"},
}

var defaultEventTypes = []EventType{
	{ID: "corporate", Label: "Corporate Event"},
	{ID: "birthday", Label: "Birthday Party"},
	{ID: "wedding", Label: "Wedding Reception"},
	{ID: "private", Label: "Private Party"},
	{ID: "other", Label: "Other"},
}

var defaultCategories = []MenuCategory{
	{
		ID:          "starters",
		Name:        "STARTERS & SNACKS",
		Label:       "Starters & Snacks",
		Description: "20 pieces/servings per order",
		Items: []MenuItem{
			{ID: "chicken-potstickers", Title: "CHICKEN POTSTICKERS", Description: "Asian-glazed chicken and vegetable potstickers on a bed of shredded cabbage with green onions", Image: "/images/menu/chicken-potstickers.jpg"},
			{ID: "mozzarella-sticks", Title: "MOZZARELLA STICKS", Description: "Crispy mozzarella sticks served with marinara sauce", Image: "/images/menu/mozzarella-sticks.jpg"},
			{ID: "nachos", Title: "NACHOS", Description: "Loaded nachos with cheese, jalapeños, and sour cream", Image: "/images/menu/nachos.jpg"},
		},
	},
	{
		ID:          "wings",
		Name:        "WINGS",
		Label:       "Wings",
		Description: "20 pieces/servings per order. Served with carrots, celery and your choice of ranch or blue cheese dressing",
		Items: []MenuItem{
			{ID: "wings-nashville-hot", Title: "NASHVILLE HOT", Description: "Hot and tangy Nashville kick", Image: "/images/menu/wings-nashville.jpg"},
			{ID: "wings-buffalo", Title: "BUFFALO", Description: "Our original buffalo sauce", Image: "/images/menu/wings-buffalo.jpg"},
			{ID: "wings-korean-bbq", Title: "KOREAN BBQ", Description: "Korean-style sauce", Image: "/images/menu/wings-korean.jpg"},
			{ID: "wings-honey-bbq", Title: "HONEY BBQ", Description: "Tom's sweet & smoky honey BBQ", Image: "/images/menu/wings-honey-bbq.jpg"},
			{ID: "wings-jamaican-jerk", Title: "JAMAICAN JERK", Description: "Authentic island-style sauce", Image: "/images/menu/wings-jamaican.jpg"},
		},
	},
	{
		ID:          "greens",
		Name:        "GREENS",
		Label:       "Greens",
		Description: "Fresh salads and greens",
		Items: []MenuItem{
			{ID: "caesar-salad", Title: "CAESAR SALAD", Description: "Classic Caesar salad with romaine lettuce and parmesan", Image: "/images/menu/caesar-salad.jpg"},
			{ID: "house-salad", Title: "HOUSE SALAD", Description: "Mixed greens with tomatoes, cucumbers, and house dressing", Image: "/images/menu/house-salad.jpg"},
		},
	},
	{
		ID:          "entrees",
		Name:        "ENTRÉES",
		Label:       "Entrées",
		Description: "Main course options",
		Items: []MenuItem{
			{ID: "burger-classic", Title: "CLASSIC BURGER", Description: "Juicy beef burger with lettuce, tomato, and special sauce", Image: "/images/menu/burger-classic.jpg"},
			{ID: "chicken-sandwich", Title: "CHICKEN SANDWICH", Description: "Crispy chicken sandwich with pickles and mayo", Image: "/images/menu/chicken-sandwich.jpg"},
		},
	},
	{
		ID:          "sliders",
		Name:        "SLIDERS",
		Label:       "Sliders",
		Description: "Mini burgers and sliders",
		Items: []MenuItem{
			{ID: "slider-beef", Title: "BEEF SLIDER", Description: "Mini beef burger slider", Image: "/images/menu/slider-beef.jpg"},
			{ID: "slider-chicken", Title: "CHICKEN SLIDER", Description: "Mini chicken slider", Image: "/images/menu/slider-chicken.jpg"},
		},
	},
	{
		ID:          "desserts",
		Name:        "DESSERTS",
		Label:       "Desserts",
		Description: "Sweet treats to end your meal",
		Items: []MenuItem{
			{ID: "chocolate-cake", Title: "CHOCOLATE CAKE", Description: "Rich chocolate layer cake", Image: "/images/menu/chocolate-cake.jpg"},
			{ID: "cheesecake", Title: "CHEESECAKE", Description: "New York style cheesecake", Image: "/images/menu/cheesecake.jpg"},
		},
	},
}

var defaultBeverages = []BeveragePackage{
	{
		ID:                  "beer-wine",
		Name:                "BEER + WINE OPEN BAR",
		Description:         "Includes draft beers, house wine and non-alcoholic beverages.",
		Image:               "/images/beverages/beer-wine.jpg",
		TwoHourPrice:        Dollars(35),
		ThreeHourPrice:      Dollars(41),
		AdditionalHourPrice: Dollars(11),
	},
	{
		ID:                  "standard",
		Name:                "STANDARD OPEN BAR",
		Description:         "Includes draft beers, seltzers, house wines, standard well liquors and non-alcoholic beverages.",
		Details:             "Standard well brands include: House branded Vodka, Gin, Bourbon, Rum, Tequila, Whiskey.",
		Image:               "/images/beverages/standard.jpg",
		TwoHourPrice:        Dollars(44),
		ThreeHourPrice:      Dollars(51),
		AdditionalHourPrice: Dollars(12),
	},
	{
		ID:                  "premium",
		Name:                "PREMIUM OPEN BAR",
		Description:         "Includes draft beers, seltzers, house cocktails, premium wines, call liquors and non-alcoholic beverages.",
		Details:             "Premium liquor brand examples include: Vodka: Tito's, Grey Goose; Gin: Hendrick's; Rum: Captain Morgan; Tequila: Patron Silver; Whiskey: Woodford; Scotch: Maker's Mark, Jameson.",
		Image:               "/images/beverages/premium.jpg",
		TwoHourPrice:        Dollars(55),
		ThreeHourPrice:      Dollars(65),
		AdditionalHourPrice: Dollars(13),
	},
	{
		ID:                  "non-alcoholic",
		Name:                "NON ALCOHOLIC BEVERAGES ONLY",
		Description:         "Soft Drinks, Lemonade, Juice, Iced/Hot Tea, Iced/Hot Coffee.",
		Image:               "/images/beverages/non-alcoholic.jpg",
		TwoHourPrice:        Dollars(6),
		ThreeHourPrice:      Dollars(9),
		AdditionalHourPrice: Dollars(3),
	},
}

// Default returns the built-in Denver catalog.
func Default() *Catalog {
	c, err := New(defaultLocations, defaultEventTypes, defaultCategories, defaultBeverages)
	if err != nil {
		panic("catalog: invalid built-in catalog: " + err.Error())
	}
	return c
}
