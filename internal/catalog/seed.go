package catalog

import (
	"time"

	"github.com/hammamikhairi/chefiq/internal/domain"
)

func ing(items ...string) []string { return items }
func stp(items ...string) []string { return items }

func modes(mini, cooker []string) map[domain.ApplianceKey][]string {
	m := make(map[domain.ApplianceKey][]string, 2)
	if len(mini) > 0 {
		m[domain.ApplianceMiniOven] = mini
	}
	if len(cooker) > 0 {
		m[domain.ApplianceCooker] = cooker
	}
	return m
}

// seed populates the catalog with the built-in library. Featured
// recipes (ids "1".."4") double as members of their preset category.
func (c *Catalog) seed() {
	now := time.Now().UnixMilli()

	mk := func(id, title, desc, cover string, ings, steps []string, support map[domain.ApplianceKey][]string) *domain.Recipe {
		r := &domain.Recipe{
			ID:               id,
			Title:            title,
			Description:      desc,
			CoverURI:         cover,
			Ingredients:      ings,
			Steps:            steps,
			ApplianceSupport: support,
			LastUpdated:      now,
		}
		if meta, ok := metaByID[id]; ok {
			m := meta
			r.Meta = &m
		}
		return r
	}

	brisket := mk("1", "Traditional Smoked Brisket",
		"Low-and-slow style brisket with a classic bark.",
		"https://images.unsplash.com/photo-1558036117-15d82a90b9b1?q=80&w=1200&auto=format&fit=crop",
		ing("Brisket", "Salt", "Pepper", "Smoke/wood"),
		stp(
			"Season brisket generously.",
			"Roast/low oven 250–275°F until probe tender (4–8 hr).",
			"Rest 30–60 min; slice against grain.",
		),
		modes([]string{"Roast", "Reheat"}, nil))

	shrimp := mk("2", "Air Fryer Coconut Shrimp",
		"Crispy coconut-crusted shrimp (no deep fry).",
		"https://www.foodandwine.com/thmb/JtxOJ8Omqgbfdd1Iv6Ff0ofh2n4=/1500x0/filters:no_upscale():max_bytes(150000):strip_icc()/air-fryer-coconut-shrimp-FT-RECIPE1121-23a5029b0ed349ada2b4529b955f57ca.jpg",
		ing("Shrimp", "Eggs", "Panko", "Shredded coconut", "Salt"),
		stp(
			"Bread shrimp (flour → egg → panko+coconut).",
			"Air Fry 390°F 6–8 min until golden.",
			"Serve with sweet chili sauce.",
		),
		modes([]string{"Air Fry"}, nil))

	pulledPork := mk("3", "Classic Pulled Pork",
		"Tender, shreddable pork shoulder with BBQ finish.",
		"https://images.unsplash.com/photo-1544025164-76bc3997d9ea?q=80&w=1200&auto=format&fit=crop",
		ing("Pork shoulder", "Dry rub", "Stock"),
		stp(
			"Rub pork; pressure cook 60–75 min; natural release.",
			"Shred; toss with juices; finish under Broil 2–4 min (optional).",
		),
		modes([]string{"Broil", "Reheat"}, []string{"Pressure Cook", "Keep Warm"}))

	veganPizza := mk("4", "Vegan Mediterranean Pizza",
		"Crispy crust topped with tomatoes, olives, artichokes, red onion and a lemon-herb finish.",
		"https://nutriciously.com/wp-content/uploads/Vegan-Mediterranean-Pizza-16-768x1154.jpg",
		ing("Pizza dough", "Tomato sauce", "Artichokes", "Olives", "Red onion", "Cherry tomatoes", "Olive oil", "Oregano"),
		stp(
			"Preheat Mini Oven Bake 475–500°F (stone if available).",
			"Stretch dough; top with sauce and vegetables.",
			"Bake 8–12 min until crust is golden; finish with olive oil + oregano.",
		),
		modes([]string{"Bake", "Roast", "Reheat"}, nil))

	c.featured = []*domain.Recipe{brisket, shrimp, pulledPork, veganPizza}

	c.add("poultry", mk("poultry-1", "Herbed Roast Chicken",
		"Crispy-skinned whole chicken with lemon & herbs.",
		"https://images.unsplash.com/photo-1604908176997-4316c77b0a2a?q=80&w=1200&auto=format&fit=crop",
		ing("Whole chicken", "Olive oil", "Salt", "Pepper", "Thyme", "Lemon"),
		stp("Preheat 400°F.", "Rub and roast 55–70 min.", "Rest 10 min; carve."),
		modes([]string{"Roast", "Bake"}, nil)))
	c.add("poultry", mk("poultry-2", "Air-Fried Chicken Wings",
		"Crispy, juicy wings—no deep fryer.",
		"https://images.unsplash.com/photo-1604908554049-698b4dd3b9a7?q=80&w=1200&auto=format&fit=crop",
		ing("Wings", "Baking powder", "Seasoning"),
		stp("Air Fry 390°F 22–28 min; flip halfway."),
		modes([]string{"Air Fry", "Bake"}, nil)))
	c.add("poultry", mk("poultry-3", "Instant Chicken Stock",
		"Pressure-cooked rich chicken stock.",
		"https://images.unsplash.com/photo-1522383225653-ed111181a951?q=80&w=1200&auto=format&fit=crop",
		ing("Chicken bones", "Veg", "Water"),
		stp("Pressure cook 35–45 min; strain."),
		modes(nil, []string{"Pressure Cook", "Keep Warm"})))

	c.add("meat", mk("meat-1", "Juicy Meatloaf",
		"Classic meatloaf with ketchup glaze.",
		"https://images.unsplash.com/photo-1601050690597-9d9a4b2dc6e8?q=80&w=1200&auto=format&fit=crop",
		ing("Beef", "Breadcrumbs", "Egg", "Onion"),
		stp("Mix and bake 375°F 1 hr; glaze last 10 min."),
		modes([]string{"Bake", "Roast"}, nil)))
	c.add("meat", mk("meat-2", "Lamb Chops (Air Fry)",
		"Garlic-herb marinated chops.",
		"https://images.unsplash.com/photo-1562967914-608f82629710?q=80&w=1200&auto=format&fit=crop",
		ing("Lamb chops", "Garlic", "Rosemary"),
		stp("Air Fry 400°F 8–12 min."),
		modes([]string{"Air Fry", "Broil"}, nil)))
	c.add("meat", mk("meat-3", "Pressure Cooker Pot Roast",
		"Fork-tender chuck roast with veggies.",
		"https://images.unsplash.com/photo-1544025162-d76694265947?q=80&w=1200&auto=format&fit=crop",
		ing("Beef roast", "Onion", "Carrot", "Stock"),
		stp("Pressure Cook 50–65 min; natural release."),
		modes(nil, []string{"Pressure Cook", "Keep Warm"})))

	c.add("seafood", shrimp)
	c.add("seafood", mk("seafood-2", "Roasted Salmon Fillet",
		"Flaky salmon with lemon & dill.",
		"https://images.unsplash.com/photo-1519705122083-016e1f1f7f44?q=80&w=1200&auto=format&fit=crop",
		ing("Salmon", "Olive oil", "Lemon", "Dill"),
		stp("Roast 400°F 10–14 min."),
		modes([]string{"Roast", "Bake"}, nil)))
	c.add("seafood", mk("seafood-3", "Garlic Butter Scallops",
		"Seared scallops, fast & luxurious.",
		"https://images.unsplash.com/photo-1604908553645-1a9d3bd112fb?q=80&w=1200&auto=format&fit=crop",
		ing("Scallops", "Butter", "Garlic"),
		stp("Sear/Sauté 1–2 min per side; butter finish."),
		modes(nil, []string{"Sear/Sauté"})))

	c.add("vegetarian", veganPizza)
	c.add("vegetarian", mk("vegetarian-2", "Roasted Veggie Sheet Pan",
		"Seasonal vegetables caramelized.",
		"https://images.unsplash.com/photo-1604908553487-470cf3fa1909?q=80&w=1200&auto=format&fit=crop",
		ing("Mixed vegetables", "Olive oil", "Salt"),
		stp("Roast 425°F 20–25 min."),
		modes([]string{"Roast", "Bake"}, nil)))
	c.add("vegetarian", mk("vegetarian-3", "Stuffed Bell Peppers",
		"Rice, beans & veggies baked in peppers.",
		"https://images.unsplash.com/photo-1617093727343-374e0d35d7a1?q=80&w=1200&auto=format&fit=crop",
		ing("Bell peppers", "Rice", "Beans", "Tomato"),
		stp("Bake 375°F 25–35 min."),
		modes([]string{"Bake", "Roast"}, nil)))

	c.add("pork", pulledPork)
	c.add("pork", mk("pork-2", "Crispy Pork Belly Bites",
		"Air-fried, shatteringly crisp pork belly cubes.",
		"https://images.unsplash.com/photo-1544025164-76bc3997d9ea?q=80&w=1200&auto=format&fit=crop",
		ing("Pork belly", "Salt", "Five-spice (opt)"),
		stp("Score & salt; Air Fry 380°F 25–35 min; Broil 1–3 min."),
		modes([]string{"Air Fry", "Broil", "Reheat"}, nil)))
	c.add("pork", mk("pork-3", "Pressure Cooker Carnitas",
		"Juicy pork, crisped after pressure cooking.",
		"https://images.unsplash.com/photo-1601924579537-370d0b4a5a3e?q=80&w=1200&auto=format&fit=crop",
		ing("Pork shoulder", "Orange", "Spices", "Onion"),
		stp("Pressure Cook 40–55 min; shred; crisp under Broil 2–4 min."),
		modes([]string{"Broil", "Reheat"}, []string{"Pressure Cook"})))

	c.add("beef", brisket)
	c.add("beef", mk("beef-2", "Steakhouse Ribeye (Broil)",
		"Quick broiled ribeye with garlic butter.",
		"https://images.unsplash.com/photo-1558036117-15d82a90b9b1?q=80&w=1200&auto=format&fit=crop",
		ing("Ribeye", "Salt", "Pepper", "Butter", "Garlic"),
		stp("Broil high 4–6 min/side; rest; butter finish."),
		modes([]string{"Broil", "Air Fry", "Reheat"}, nil)))
	c.add("beef", mk("beef-3", "Beef & Broccoli Stir-Fry",
		"Classic takeout at home in minutes.",
		"https://images.unsplash.com/photo-1625944529998-6b4b34b60df6?q=80&w=1200&auto=format&fit=crop",
		ing("Beef slices", "Broccoli", "Soy sauce", "Garlic"),
		stp("Sear/Sauté beef; add broccoli & sauce; toss 3–5 min."),
		modes(nil, []string{"Sear/Sauté"})))

	c.add("grains", mk("grains-1", "Perfect Quinoa",
		"Fluffy, separate grains.",
		"https://images.unsplash.com/photo-1625944529998-6b4b34b60df6?q=80&w=1200&auto=format&fit=crop",
		ing("Quinoa", "Water", "Salt"),
		stp("Pressure Cook 1 min; natural release 10."),
		modes(nil, []string{"Pressure Cook", "Keep Warm"})))
	c.add("grains", mk("grains-2", "Baked Brown Rice",
		"Oven-baked, always tender.",
		"https://images.unsplash.com/photo-1514511542233-4c2b1b8c78f4?q=80&w=1200&auto=format&fit=crop",
		ing("Brown rice", "Water", "Salt", "Butter (opt)"),
		stp("Bake 375°F 60–70 min covered; rest 10."),
		modes([]string{"Bake", "Reheat"}, nil)))
	c.add("grains", mk("grains-3", "Jasmine Rice (PC)",
		"Fail-proof, fragrant jasmine.",
		"https://images.unsplash.com/photo-1514511542233-4c2b1b8c78f4?q=80&w=1200&auto=format&fit=crop",
		ing("Jasmine rice", "Water", "Salt"),
		stp("Pressure Cook 3 min; natural release 10."),
		modes(nil, []string{"Pressure Cook", "Keep Warm"})))

	c.add("eggs", mk("eggs-1", "Egg Bites",
		"Copycat sous-vide style, no fuss.",
		"https://images.unsplash.com/photo-1541599540903-216a46ca1dc0?q=80&w=1200&auto=format&fit=crop",
		ing("Eggs", "Cheese", "Cream", "Veg/meat bits"),
		stp("Blend; pour in cups; Air Fry 300°F 12–16 min."),
		modes([]string{"Air Fry", "Bake"}, nil)))
	c.add("eggs", mk("eggs-2", "Soft-Boiled Eggs",
		"Jammy yolks every time.",
		"https://images.unsplash.com/photo-1528838064739-37f1f0861b36?q=80&w=1200&auto=format&fit=crop",
		ing("Eggs", "Water", "Ice"),
		stp("Steam 6–7 min; ice bath 2–3."),
		modes(nil, []string{"Steam"})))
	c.add("eggs", mk("eggs-3", "Skillet Frittata",
		"Veggie-packed, sliceable brunch.",
		"https://images.unsplash.com/photo-1586053226626-1c7b9f6a4f96?q=80&w=1200&auto=format&fit=crop",
		ing("Eggs", "Milk", "Veg", "Cheese"),
		stp("Sear/Sauté fillings; add eggs; Bake 350°F 12–18 min."),
		modes([]string{"Bake"}, []string{"Sear/Sauté"})))

	c.add("stews", mk("stews-1", "Classic Beef Stew",
		"Rich gravy, tender beef & veg.",
		"https://images.unsplash.com/photo-1544025162-d76694265947?q=80&w=1200&auto=format&fit=crop",
		ing("Chuck", "Potatoes", "Carrots", "Stock"),
		stp("Sear; Pressure Cook 25–35 min; natural release."),
		modes(nil, []string{"Sear/Sauté", "Pressure Cook", "Keep Warm"})))
	c.add("stews", mk("stews-2", "Chicken Chili Verde",
		"Bright tomatillo & green chili stew.",
		"https://images.unsplash.com/photo-1544025162-d76694265947?q=80&w=1200&auto=format&fit=crop",
		ing("Chicken", "Tomatillos", "Chiles", "Onion"),
		stp("Sauté; Pressure Cook 12–15 min; shred."),
		modes(nil, []string{"Sear/Sauté", "Pressure Cook"})))
	c.add("stews", mk("stews-3", "Vegan Lentil Stew",
		"Hearty, smoky, plant-based.",
		"https://images.unsplash.com/photo-1523986371872-9d3ba2e2a389?q=80&w=1200&auto=format&fit=crop",
		ing("Lentils", "Tomatoes", "Veg stock", "Smoked paprika"),
		stp("Sauté aromatics; Pressure Cook 8–12 min."),
		modes([]string{"Reheat"}, []string{"Sear/Sauté", "Pressure Cook"})))

	c.add("pasta", mk("pasta-1", "Baked Ziti",
		"Cheesy, bubbly comfort.",
		"https://images.unsplash.com/photo-1603133872878-684f208fb86a?q=80&w=1200&auto=format&fit=crop",
		ing("Ziti", "Marinara", "Ricotta", "Mozzarella"),
		stp("Assemble; Bake 375°F 20–30 min; broil to brown."),
		modes([]string{"Bake", "Broil", "Reheat"}, nil)))
	c.add("pasta", mk("pasta-2", "PC Mac & Cheese",
		"Ultra-creamy, 1-pot.",
		"https://images.unsplash.com/photo-1546549039-4d9fe3d1c87c?q=80&w=1200&auto=format&fit=crop",
		ing("Pasta", "Water", "Evap milk", "Cheese"),
		stp("Pressure Cook 4–5 min; stir in dairy & cheese."),
		modes(nil, []string{"Pressure Cook", "Keep Warm"})))
	c.add("pasta", mk("pasta-3", "Sheet-Pan Lasagna",
		"Fast, crispy-edged lasagna.",
		"https://images.unsplash.com/photo-1603133872878-684f208fb86a?q=80&w=1200&auto=format&fit=crop",
		ing("No-boil sheets", "Sauce", "Cheese"),
		stp("Layer thin; Bake 400°F 20–25 min; broil edges."),
		modes([]string{"Bake", "Broil"}, nil)))

	c.add("soups", mk("soups-1", "Tomato Basil Soup",
		"Silky, bright tomato soup.",
		"https://images.unsplash.com/photo-1546549039-4d9fe3d1c87c?q=80&w=1200&auto=format&fit=crop",
		ing("Tomatoes", "Onion", "Garlic", "Basil", "Stock"),
		stp("Sauté; Pressure Cook 5–8 min; blend."),
		modes(nil, []string{"Sear/Sauté", "Pressure Cook", "Keep Warm"})))
	c.add("soups", mk("soups-2", "Chicken Noodle Soup",
		"Comfort in a bowl.",
		"https://images.unsplash.com/photo-1523986371872-9d3ba2e2a389?q=80&w=1200&auto=format&fit=crop",
		ing("Chicken", "Noodles", "Veg", "Stock"),
		stp("Pressure Cook 8–12 min; add noodles; simmer."),
		modes(nil, []string{"Pressure Cook", "Keep Warm"})))
	c.add("soups", mk("soups-3", "Butternut Squash Soup",
		"Sweet, creamy, fall favorite.",
		"https://images.unsplash.com/photo-1523986371872-9d3ba2e2a389?q=80&w=1200&auto=format&fit=crop",
		ing("Butternut", "Onion", "Stock", "Cream (opt)"),
		stp("Pressure Cook 8–10 min; blend smooth."),
		modes(nil, []string{"Pressure Cook", "Keep Warm"})))

	c.add("fruit", mk("fruit-1", "Air-Fried Cinnamon Apples",
		"Warm, tender, lightly crisped.",
		"https://images.unsplash.com/photo-1505575967455-40e256f73376?q=80&w=1200&auto=format&fit=crop",
		ing("Apples", "Cinnamon", "Brown sugar", "Butter"),
		stp("Toss; Air Fry 370°F 10–14 min; shake once."),
		modes([]string{"Air Fry", "Bake"}, nil)))
	c.add("fruit", mk("fruit-2", "Roasted Grapes & Yogurt",
		"Juicy, jammy grapes over cool yogurt.",
		"https://images.unsplash.com/photo-1490474418585-ba9bad8fd0ea?q=80&w=1200&auto=format&fit=crop",
		ing("Grapes", "Olive oil", "Honey", "Yogurt"),
		stp("Roast 400°F 8–12 min; spoon over yogurt."),
		modes([]string{"Roast"}, nil)))
	c.add("fruit", mk("fruit-3", "Spiced Poached Pears",
		"Fragrant and tender.",
		"https://images.unsplash.com/photo-1514511542233-4c2b1b8c78f4?q=80&w=1200&auto=format&fit=crop",
		ing("Pears", "Water", "Sugar", "Cinnamon", "Vanilla"),
		stp("Slow Cook 1.5–2 hr until tender."),
		modes(nil, []string{"Slow Cook", "Keep Warm"})))

	// Featured ids that were shared into a preset above keep that slug;
	// register the rest directly.
	for _, r := range c.featured {
		if _, ok := c.byID[r.ID]; !ok {
			c.byID[r.ID] = r
		}
	}
}
