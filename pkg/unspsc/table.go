package unspsc

// table is the authoritative registry in publication order. Segments 82-90
// hold request-only navigation entries; they may never be offered.
var table = []Entry{
	// 10 Animal & Vegetable Products
	{"10100101", "Dog food (dry kibble)"},
	{"10100102", "Dog food (wet/canned)"},
	{"10100103", "Cat food (dry kibble)"},
	{"10100104", "Cat food (wet/canned)"},
	{"10100105", "Bird seed & feed"},
	{"10100106", "Small animal feed (guinea pig, hamster, rabbit)"},
	{"10100107", "Fish food & aquarium supplies"},
	{"10100201", "Cat litter"},
	{"10100202", "Pet shampoo"},
	{"10100203", "Flea & tick treatments"},
	{"10100204", "Pet toys"},
	{"10100205", "Leashes & collars"},
	{"10100206", "Pet bedding"},
	{"10100207", "Food & water bowls"},
	{"10100208", "Pet carriers & crates"},

	// 25 Transportation & Storage
	{"25100101", "Bicycles (adult)"},
	{"25100102", "Bicycles (children's)"},
	{"25100103", "Bike helmets"},
	{"25100104", "Bike locks"},
	{"25100105", "Bike lights"},
	{"25100106", "Bike baskets & cargo carriers"},
	{"25100107", "Bike repair kits"},
	{"25101501", "Motor oil"},
	{"25101502", "Windshield washer fluid"},
	{"25101503", "Car batteries"},
	{"25101504", "Tires"},
	{"25101505", "Jumper cables"},
	{"25101506", "Basic tool kits"},
	{"25200101", "Bus passes/tickets"},
	{"25200102", "Subway/metro passes"},
	{"25200103", "Train tickets"},
	{"25200104", "Rideshare credits/vouchers"},

	// 31 Tools & Hardware
	{"31100101", "Hammers"},
	{"31100102", "Screwdrivers (sets)"},
	{"31100103", "Pliers & wrenches"},
	{"31100104", "Measuring tape"},
	{"31100105", "Utility knives"},
	{"31100106", "Tool boxes"},
	{"31100201", "Drills (power)"},
	{"31100202", "Saws (circular, reciprocating)"},
	{"31100203", "Sanders"},
	{"31100204", "Tool batteries & chargers"},
	{"31200101", "Screws (assorted)"},
	{"31200102", "Nails"},
	{"31200103", "Duct tape"},
	{"31200104", "Super glue & adhesives"},
	{"31200105", "Zip ties & cable ties"},

	// 39 Electrical Equipment
	{"39100101", "LED bulbs"},
	{"39100102", "CFL bulbs"},
	{"39100103", "Incandescent bulbs"},
	{"39100104", "Flashlights"},
	{"39100105", "Batteries (AA, AAA, 9V, etc.)"},
	{"39100201", "Extension cords"},
	{"39100202", "Power strips"},
	{"39100203", "Surge protectors"},

	// 43 Information Technology & Telecom
	{"43100101", "Desktop computers"},
	{"43100102", "Laptop computers"},
	{"43100103", "Tablets"},
	{"43100104", "Computer monitors"},
	{"43100105", "Keyboards & mice"},
	{"43100106", "Printers"},
	{"43102001", "Mobile phones (smartphones)"},
	{"43102002", "Mobile phones (basic/feature phones)"},
	{"43102003", "Phone chargers & cables"},
	{"43102004", "Phone cases"},
	{"43102005", "Prepaid phone cards/minutes"},
	{"43103001", "WiFi routers"},
	{"43103002", "Modems"},
	{"43103003", "Internet service vouchers"},
	{"43103004", "Mobile hotspot devices"},

	// 45 Musical Instruments
	{"45100101", "Guitars (acoustic, electric)"},
	{"45100102", "Keyboards & pianos"},
	{"45100103", "Drums & percussion"},
	{"45100104", "Wind instruments (flute, clarinet, etc.)"},
	{"45100105", "String instruments (violin, cello, etc.)"},
	{"45100106", "Brass instruments (trumpet, trombone, etc.)"},

	// 46 Environmental & Weather
	{"46100101", "Portable fans"},
	{"46100102", "Space heaters"},
	{"46100103", "Window AC units"},
	{"46100104", "Air purifiers"},
	{"46100105", "Dehumidifiers"},
	{"46100106", "Humidifiers"},

	// 47 Arts, Crafts & Hobbies
	{"47100101", "Paints (acrylic, oil, watercolor)"},
	{"47100102", "Paint brushes"},
	{"47100103", "Canvas & stretched frames"},
	{"47100104", "Sketchbooks & drawing paper"},
	{"47100105", "Colored pencils & charcoal"},
	{"47100106", "Easels"},
	{"47100201", "Fabric & textiles"},
	{"47100202", "Sewing thread & needles"},
	{"47100203", "Yarn & knitting needles"},
	{"47100204", "Glue guns & craft adhesives"},
	{"47100205", "Beads & jewelry-making supplies"},
	{"47100206", "Scrapbooking materials"},

	// 48 Sports, Toys & Recreation
	{"48100101", "Basketballs"},
	{"48100102", "Soccer balls"},
	{"48100103", "Footballs (American)"},
	{"48100104", "Baseball/softball equipment"},
	{"48100105", "Tennis rackets & balls"},
	{"48100106", "Exercise weights"},
	{"48100107", "Yoga mats"},
	{"48100108", "Jump ropes"},
	{"48200101", "Action figures & dolls"},
	{"48200102", "Building blocks (LEGO, etc.)"},
	{"48200103", "Board games"},
	{"48200104", "Puzzles"},
	{"48200105", "Stuffed animals"},
	{"48200106", "Arts & crafts kits"},
	{"48200107", "Outdoor play equipment (balls, frisbees)"},
	{"48200108", "Video games & consoles"},

	// 49 Baby & Infant Products
	{"49100101", "Diapers"},
	{"49100102", "Wipes"},
	{"49100103", "Formula & bottles"},
	{"49100104", "Pacifiers & teethers"},
	{"49100105", "Diaper cream & ointment"},
	{"49100106", "Baby shampoo & lotion"},
	{"49100201", "Infant clothing (onesies, pants, etc.)"},
	{"49100202", "Baby blankets"},
	{"49100203", "Crib sheets & bedding"},
	{"49100204", "Strollers & carriers"},
	{"49100205", "Car seats"},
	{"49100206", "Baby bassinets & cribs"},

	// 50 Food, Beverage & Tobacco Products
	{"50200101", "Poultry (chicken, turkey, duck)"},
	{"50200102", "Beef"},
	{"50200103", "Pork"},
	{"50200104", "Fish (fresh/frozen whole fish, fillets)"},
	{"50200105", "Shellfish (shrimp, crab, lobster, clams)"},
	{"50200106", "Lamb or mutton"},
	{"50200107", "Game meat (venison, rabbit, etc.)"},
	{"50201506", "Fresh vegetables"},
	{"50201507", "Fresh fruits"},
	{"50201508", "Herbs & greens"},
	{"50201509", "Root vegetables"},
	{"50201510", "Leafy greens & lettuce"},
	{"50201710", "Prepared meals/takeout (general)"},
	{"50201711", "Sandwiches & wraps"},
	{"50201712", "Pizza"},
	{"50201713", "Asian cuisine"},
	{"50201714", "Mexican cuisine"},
	{"50203501", "Water & bottled water"},
	{"50203502", "Juice"},
	{"50203503", "Tea"},
	{"50203504", "Coffee"},
	{"50203505", "Sports drinks"},
	{"50203506", "Non-alcoholic beverages"},
	{"50301001", "Canned vegetables"},
	{"50301002", "Canned fruits"},
	{"50301003", "Canned beans & legumes"},
	{"50301004", "Canned soups"},
	{"50301005", "Pasta & grains"},
	{"50301006", "Cooking oils"},
	{"50301501", "Rice & grains"},
	{"50301502", "Flour & baking supplies"},
	{"50301503", "Sugar & sweeteners"},
	{"50301504", "Salt & spices"},
	{"50301505", "Nuts & seeds"},
	{"50301506", "Dried pasta"},

	// 55 Books, Media & Publishing
	{"55100101", "Fiction books (novels, stories)"},
	{"55100102", "Non-fiction books (biography, history, etc.)"},
	{"55100103", "Children's books"},
	{"55100104", "Textbooks & educational"},
	{"55100105", "Magazines & periodicals"},
	{"55100106", "Comics & graphic novels"},

	// 60 Education & Training
	{"60100101", "Notebooks & composition books"},
	{"60100102", "Loose-leaf paper"},
	{"60100103", "Pens"},
	{"60100104", "Pencils"},
	{"60100105", "Markers & highlighters"},
	{"60100106", "Crayons & colored pencils"},
	{"60100107", "Erasers & correction fluid"},
	{"60100201", "Binders & folders"},
	{"60100202", "Backpacks & book bags"},
	{"60100203", "Lunchboxes"},
	{"60100204", "Pencil cases & pouches"},
	{"60100301", "Textbooks"},
	{"60100302", "Workbooks"},
	{"60100303", "Calculators"},
	{"60100304", "Art supplies (paints, brushes, canvases)"},
	{"60100305", "Musical instruments (basic)"},

	// 72 Medical Supplies & Personal Care
	{"72100101", "Bandages & medical tape"},
	{"72100102", "Antiseptic wipes & ointment"},
	{"72100103", "Pain relievers (ibuprofen, acetaminophen)"},
	{"72100104", "Cold & flu medicines"},
	{"72100105", "Antacids"},
	{"72100106", "First aid kits"},
	{"72101501", "Canes & walkers"},
	{"72101502", "Crutches"},
	{"72101503", "Wheelchairs (manual)"},
	{"72101504", "Wheelchair ramps & accessibility items"},
	{"72101505", "Grab bars & handrails"},
	{"72101506", "Shower chairs & bath accessories"},
	{"72101620", "Wheelchairs (powered)"},
	{"72200101", "Toothpaste & toothbrushes"},
	{"72200102", "Soap & body wash"},
	{"72200103", "Shampoo & conditioner"},
	{"72200104", "Deodorant"},
	{"72200105", "Feminine hygiene products"},
	{"72200106", "Toilet paper"},
	{"72200107", "Tissues & kleenex"},
	{"72200501", "Adult diapers"},
	{"72200502", "Incontinence pads"},
	{"72200503", "Adult wipes"},
	{"72200504", "Medical gloves (non-latex)"},

	// 93 Social Services & Community Support
	{"93150101", "Peer emotional support & listening"},
	{"93150102", "Support group facilitation"},
	{"93150103", "Peer counseling & advocacy"},
	{"93150104", "Mentorship programs"},
	{"93150105", "Crisis hotline support"},
	{"93150201", "Help with moving"},
	{"93150202", "Childcare (informal peer)"},
	{"93150203", "Elder care (informal peer)"},
	{"93150204", "Accompaniment (medical, legal, bureaucratic)"},
	{"93150205", "Rides & transportation assistance"},
	{"93150301", "Skill sharing (general)"},
	{"93150302", "Language tutoring (peer)"},
	{"93150303", "Job search assistance"},
	{"93150304", "Resume & interview help"},
	{"93150305", "Computer & tech skills teaching"},
	{"93150306", "Financial literacy workshops"},
	{"93150401", "Street medicine & outreach"},
	{"93150402", "Naloxone distribution"},
	{"93150403", "Safer use supplies & education"},
	{"93150404", "Housing support for unhoused"},
	{"93150405", "Food access & nutrition support"},

	// 82 Legal Services
	{"82101501", "Legal advice & representation"},
	{"82101502", "Tenant rights & eviction defense"},
	{"82101503", "Immigration legal services"},
	{"82101504", "Benefits appeals & hearings"},

	// 83 Licensed Trade Services
	{"83101501", "Licensed electrical work"},
	{"83101502", "Licensed plumbing work"},
	{"83101503", "Licensed HVAC repair"},

	// 84 Financial & Insurance Services
	{"84101501", "Tax preparation & filing"},
	{"84101502", "Debt counseling & credit repair"},
	{"84101503", "Insurance claims & enrollment"},

	// 85 Healthcare Services
	{"85101501", "Medical diagnosis & treatment"},
	{"85101502", "Prescription medication services"},
	{"85101503", "Dental care"},
	{"85101504", "Nursing & home health care"},

	// 90 Clinical Counseling & Therapy
	{"90101501", "Licensed therapy & psychotherapy"},
	{"90101502", "Psychiatric care"},
	{"90101503", "Clinical substance use treatment"},
}
