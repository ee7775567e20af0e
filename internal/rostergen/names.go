package rostergen

// Name pools for synthesized athletes.
var (
	firstNamesMale = []string{
		"Ethan", "Liam", "Noah", "Mason", "Jacob", "Aiden", "James", "Elijah", "Benjamin", "Lucas",
		"Alexander", "Daniel", "Matthew", "Henry", "Sebastian", "Jack", "Owen", "Samuel", "David", "Joseph",
	}
	firstNamesFemale = []string{
		"Mia", "Ava", "Sophia", "Isabella", "Charlotte", "Amelia", "Evelyn", "Abigail", "Emily", "Elizabeth",
		"Sofia", "Avery", "Ella", "Scarlett", "Grace", "Chloe", "Victoria", "Riley", "Nora", "Lily",
	}
	lastNames = []string{
		"Martinez", "Johnson", "Garcia", "Hernandez", "Lopez", "Rodriguez", "Perez", "Sanchez", "Ramirez", "Torres",
		"Flores", "Rivera", "Gonzalez", "Morales", "Diaz", "Castillo", "Gomez", "Santos", "Reyes", "Nguyen", "Patel", "Kim",
	}
	schools = []string{
		"Westlake HS", "Lake Travis HS", "Anderson HS", "Bowie HS", "McCallum HS", "Austin HS", "Reagan HS", "Cedar Park HS",
	}
	emailDomains = []string{"email.com", "school.edu", "mail.com", "inbox.com"}
)

// Team name pools keyed by competitive level: elite teams get
// high-performance branding, beginner teams get development branding.
var (
	teamPrefixes = map[int][]string{
		1: {"Elite", "Premier", "Select", "Apex", "United"},
		2: {"Competitive", "Advanced", "Club", "Academy", "Select"},
		3: {"Academy", "Club", "Team", "United", "FC"},
		4: {"Rec", "Community", "Local", "League", "Squad"},
		5: {"Beginner", "Development", "Youth", "Intro", "Starter"},
	}
	teamSuffixes = map[int][]string{
		1: {"Thunder", "Storm", "Lightning", "Blaze", "Force"},
		2: {"Lightning", "Blaze", "Phoenix", "Strikers", "Hawks"},
		3: {"Phoenix", "United", "FC", "Stars", "Wanderers"},
		4: {"Stars", "Strikers", "Rovers", "Kickers", "United"},
		5: {"Dragons", "Squad", "Team", "Club", "United"},
	}
)
