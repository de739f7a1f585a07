package fake

// dataset holds the value tables for one locale. Every table consulted by a
// Provider capability must be non-empty; New checks this up front so
// generation itself can never fail halfway through a persona.
type dataset struct {
	maleNames      []string
	femaleNames    []string
	lastNames      []string
	cities         []string
	states         []place
	countries      []place
	streetNames    []string
	streetSuffixes []string
	companyForms   []string
	jobTitles      []string
	adjectives     []string
	nouns          []string
	domains        []string
	bloodGroups    []string
	colors         []string
	cardIssuers    []cardIssuer
}

// place pairs a display name with its short code (state abbr, ISO country code).
type place struct {
	name string
	code string
}

// cardIssuer describes how to build a valid number for one card network.
type cardIssuer struct {
	name     string
	prefixes []string
	length   int
	cvvLen   int
}

// datasets maps locale identifiers to their value tables.
var datasets = map[string]*dataset{
	"en_US": enUS,
}

var enUS = &dataset{
	maleNames: []string{
		"James", "Robert", "John", "Michael", "David", "William", "Richard",
		"Joseph", "Thomas", "Charles", "Christopher", "Daniel", "Matthew",
		"Anthony", "Mark", "Donald", "Steven", "Paul", "Andrew", "Joshua",
		"Kenneth", "Kevin", "Brian", "George", "Timothy", "Ronald", "Edward",
		"Jason", "Jeffrey", "Ryan", "Jacob", "Gary", "Nicholas", "Eric",
		"Jonathan", "Stephen", "Larry", "Justin", "Scott", "Brandon",
		"Benjamin", "Samuel", "Raymond", "Gregory", "Frank", "Alexander",
		"Patrick", "Jack", "Dennis", "Jerry",
	},
	femaleNames: []string{
		"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara",
		"Susan", "Jessica", "Sarah", "Karen", "Lisa", "Nancy", "Betty",
		"Margaret", "Sandra", "Ashley", "Kimberly", "Emily", "Donna",
		"Michelle", "Carol", "Amanda", "Dorothy", "Melissa", "Deborah",
		"Stephanie", "Rebecca", "Sharon", "Laura", "Cynthia", "Kathleen",
		"Amy", "Angela", "Shirley", "Anna", "Brenda", "Pamela", "Emma",
		"Nicole", "Helen", "Samantha", "Katherine", "Christine", "Debra",
		"Rachel", "Carolyn", "Janet", "Catherine", "Maria", "Heather",
	},
	lastNames: []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
		"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson",
		"Martin", "Lee", "Perez", "Thompson", "White", "Harris", "Sanchez",
		"Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen",
		"King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
		"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell",
		"Mitchell", "Carter", "Roberts", "Gomez", "Phillips", "Evans",
		"Turner", "Diaz", "Parker", "Cruz", "Edwards", "Collins", "Reyes",
		"Stewart", "Morris", "Morales", "Murphy", "Cook", "Rogers",
		"Gutierrez", "Ortiz", "Morgan", "Cooper", "Peterson", "Bailey",
		"Reed", "Kelly", "Howard", "Ramos", "Kim", "Cox", "Ward",
		"Richardson", "Watson", "Brooks", "Chavez", "Wood", "Bennett",
		"Gray", "Mendoza", "Ruiz", "Hughes", "Price", "Alvarez", "Castillo",
		"Sanders", "Patel", "Myers", "Long", "Ross", "Foster", "Jimenez",
	},
	cities: []string{
		"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
		"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
		"Austin", "Jacksonville", "Fort Worth", "Columbus", "Indianapolis",
		"Charlotte", "San Francisco", "Seattle", "Denver", "Nashville",
		"Oklahoma City", "El Paso", "Boston", "Portland", "Las Vegas",
		"Memphis", "Louisville", "Baltimore", "Milwaukee", "Albuquerque",
		"Tucson", "Fresno", "Sacramento", "Mesa", "Kansas City", "Atlanta",
		"Omaha", "Raleigh", "Miami", "Minneapolis", "Tampa", "New Orleans",
		"Cleveland", "Pittsburgh", "Cincinnati", "St. Louis", "Orlando",
		"Richmond", "Salt Lake City", "Honolulu",
	},
	states: []place{
		{"Alabama", "AL"}, {"Alaska", "AK"}, {"Arizona", "AZ"},
		{"Arkansas", "AR"}, {"California", "CA"}, {"Colorado", "CO"},
		{"Connecticut", "CT"}, {"Delaware", "DE"}, {"Florida", "FL"},
		{"Georgia", "GA"}, {"Hawaii", "HI"}, {"Idaho", "ID"},
		{"Illinois", "IL"}, {"Indiana", "IN"}, {"Iowa", "IA"},
		{"Kansas", "KS"}, {"Kentucky", "KY"}, {"Louisiana", "LA"},
		{"Maine", "ME"}, {"Maryland", "MD"}, {"Massachusetts", "MA"},
		{"Michigan", "MI"}, {"Minnesota", "MN"}, {"Mississippi", "MS"},
		{"Missouri", "MO"}, {"Montana", "MT"}, {"Nebraska", "NE"},
		{"Nevada", "NV"}, {"New Hampshire", "NH"}, {"New Jersey", "NJ"},
		{"New Mexico", "NM"}, {"New York", "NY"}, {"North Carolina", "NC"},
		{"North Dakota", "ND"}, {"Ohio", "OH"}, {"Oklahoma", "OK"},
		{"Oregon", "OR"}, {"Pennsylvania", "PA"}, {"Rhode Island", "RI"},
		{"South Carolina", "SC"}, {"South Dakota", "SD"},
		{"Tennessee", "TN"}, {"Texas", "TX"}, {"Utah", "UT"},
		{"Vermont", "VT"}, {"Virginia", "VA"}, {"Washington", "WA"},
		{"West Virginia", "WV"}, {"Wisconsin", "WI"}, {"Wyoming", "WY"},
	},
	countries: []place{
		{"United States", "US"}, {"Canada", "CA"}, {"United Kingdom", "GB"},
		{"Germany", "DE"}, {"France", "FR"}, {"Spain", "ES"},
		{"Italy", "IT"}, {"Netherlands", "NL"}, {"Sweden", "SE"},
		{"Norway", "NO"}, {"Denmark", "DK"}, {"Finland", "FI"},
		{"Ireland", "IE"}, {"Portugal", "PT"}, {"Austria", "AT"},
		{"Switzerland", "CH"}, {"Belgium", "BE"}, {"Poland", "PL"},
		{"Australia", "AU"}, {"New Zealand", "NZ"}, {"Japan", "JP"},
		{"South Korea", "KR"}, {"Brazil", "BR"}, {"Mexico", "MX"},
		{"Argentina", "AR"}, {"Chile", "CL"}, {"India", "IN"},
		{"Singapore", "SG"}, {"South Africa", "ZA"}, {"Iceland", "IS"},
	},
	streetNames: []string{
		"Main", "Oak", "Maple", "Cedar", "Elm", "Pine", "Walnut", "Lake",
		"Hill", "Park", "Washington", "Lincoln", "Jefferson", "Madison",
		"Franklin", "Highland", "Sunset", "Ridge", "Meadow", "Forest",
		"River", "Spring", "Valley", "Garden", "Willow", "Cherry",
		"Chestnut", "Spruce", "Birch", "Sycamore",
	},
	streetSuffixes: []string{
		"St", "Ave", "Blvd", "Dr", "Ln", "Rd", "Ct", "Pl", "Way", "Ter",
	},
	companyForms: []string{
		"Group", "Inc", "LLC", "Ltd", "PLC", "and Sons", "Industries",
		"Holdings", "Partners", "Labs", "Systems", "Solutions",
	},
	jobTitles: []string{
		"Accountant", "Actuary", "Architect", "Archivist", "Art Therapist",
		"Biomedical Engineer", "Brewing Technologist", "Building Surveyor",
		"Cartographer", "Chemical Engineer", "Civil Engineer",
		"Clinical Psychologist", "Commercial Horticulturist",
		"Community Arts Worker", "Conservation Officer", "Copywriter",
		"Curator", "Data Scientist", "Dietitian", "Economist", "Editor",
		"Electrical Engineer", "Environmental Consultant", "Ergonomist",
		"Estate Agent", "Exhibition Designer", "Field Seismologist",
		"Financial Adviser", "Forensic Scientist", "Furniture Designer",
		"Geophysicist", "Health Visitor", "Hydrographic Surveyor",
		"Illustrator", "Immunologist", "Industrial Buyer",
		"Insurance Broker", "Interpreter", "Landscape Architect",
		"Lecturer", "Legal Executive", "Lighting Technician",
		"Market Researcher", "Marine Biologist", "Materials Engineer",
		"Merchandiser", "Meteorologist", "Microbiologist", "Mining Engineer",
		"Museum Education Officer", "Music Therapist", "Nurse Practitioner",
		"Occupational Hygienist", "Operations Geologist", "Optometrist",
		"Patent Attorney", "Personnel Officer", "Pharmacologist",
		"Physiotherapist", "Planning Technician", "Press Photographer",
		"Product Designer", "Production Assistant", "Psychotherapist",
		"Quantity Surveyor", "Radiographer", "Restaurant Manager",
		"Sales Executive", "Scientific Laboratory Technician",
		"Ship Broker", "Software Engineer", "Soil Scientist",
		"Sports Therapist", "Statistician", "Structural Engineer",
		"Systems Analyst", "Tax Inspector", "Theatre Director",
		"Town Planner", "Toxicologist", "Translator", "Video Editor",
		"Warehouse Manager", "Water Engineer", "Web Designer", "Zoologist",
	},
	adjectives: []string{
		"swift", "quiet", "bright", "calm", "bold", "keen", "merry",
		"wild", "brave", "clever", "eager", "gentle", "happy", "lucky",
		"mellow", "noble", "proud", "rapid", "silver", "sunny", "vivid",
		"witty", "amber", "cosmic", "crimson", "golden", "hidden", "misty",
		"polar", "rustic",
	},
	nouns: []string{
		"wolf", "hawk", "otter", "fox", "bear", "lynx", "raven", "heron",
		"badger", "falcon", "finch", "marten", "osprey", "owl", "pike",
		"salmon", "seal", "stag", "swan", "tiger", "trout", "viper",
		"walrus", "weasel", "wren", "cobra", "condor", "crane", "dingo",
		"eagle",
	},
	domains: []string{
		"example.com", "example.org", "example.net", "mailinator.com",
		"fakemail.dev", "testbox.io", "mockmail.net", "samplemail.org",
	},
	bloodGroups: []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"},
	colors: []string{
		"Red", "Blue", "Green", "Yellow", "Purple", "Orange", "Teal",
		"Maroon", "Navy", "Olive", "Silver", "Turquoise", "Violet",
		"Indigo", "Coral", "Crimson", "Salmon", "Khaki", "Lavender",
		"Magenta", "Slate Gray", "Sea Green", "Steel Blue", "Chocolate",
	},
	cardIssuers: []cardIssuer{
		{name: "Visa", prefixes: []string{"4"}, length: 16, cvvLen: 3},
		{name: "Mastercard", prefixes: []string{"51", "52", "53", "54", "55"}, length: 16, cvvLen: 3},
		{name: "American Express", prefixes: []string{"34", "37"}, length: 15, cvvLen: 4},
		{name: "Discover", prefixes: []string{"6011", "65"}, length: 16, cvvLen: 3},
	},
}

// missing returns the name of the first empty capability table, or "".
func (d *dataset) missing() string {
	checks := []struct {
		capability string
		empty      bool
	}{
		{"male names", len(d.maleNames) == 0},
		{"female names", len(d.femaleNames) == 0},
		{"last names", len(d.lastNames) == 0},
		{"cities", len(d.cities) == 0},
		{"states", len(d.states) == 0},
		{"countries", len(d.countries) == 0},
		{"street names", len(d.streetNames) == 0},
		{"street suffixes", len(d.streetSuffixes) == 0},
		{"company forms", len(d.companyForms) == 0},
		{"job titles", len(d.jobTitles) == 0},
		{"adjectives", len(d.adjectives) == 0},
		{"nouns", len(d.nouns) == 0},
		{"email domains", len(d.domains) == 0},
		{"blood groups", len(d.bloodGroups) == 0},
		{"colors", len(d.colors) == 0},
		{"card issuers", len(d.cardIssuers) == 0},
	}

	for _, c := range checks {
		if c.empty {
			return c.capability
		}
	}
	return ""
}
