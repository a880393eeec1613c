package matcher

// creativeTriggers marks fields whose answer is free-form prose rather than
// a stored fact. Checked before keyword matching and wins on overlap, since
// a prompt like "tell us about your current role" contains plenty of
// ordinary keywords but still wants a written answer.
var creativeTriggers = []string{
	"cover letter", "why do you want", "interest you", "tell us about",
	"describe your experience", "statement", "additional information",
	"why should we hire", "about yourself", "briefly explain",
}

// keywordEntry maps one question key to its trigger substrings.
type keywordEntry struct {
	key      string
	keywords []string
}

// keywordTable drives field matching. It is a slice, not a map: the
// longest-keyword tie-break and the suggestion lookup both depend on
// deterministic iteration order, with earlier entries keeping priority
// over later ones at equal keyword length.
var keywordTable = []keywordEntry{
	// Personal information
	{"full_name", []string{"full name", "complete name", "name", "your name"}},
	{"first_name", []string{"first name", "first", "firstname", "fname", "given", "forename"}},
	{"middle_name", []string{"middle name", "middle", "middlename", "mname"}},
	{"last_name", []string{"last name", "last", "lastname", "lname", "surname", "family"}},
	{"preferred_name", []string{"preferred", "nickname", "goes by"}},
	{"email", []string{"email", "e-mail", "mail"}},
	{"phone", []string{"phone", "mobile", "cell", "telephone", "tel", "contact number"}},
	{"street_address", []string{"street", "address line", "address 1"}},
	{"city", []string{"city", "town"}},
	{"state_province", []string{"state", "province", "region"}},
	{"postal_code", []string{"zip", "postal", "postcode", "zipcode"}},
	{"country", []string{"country", "nation"}},

	// Professional links
	{"linkedin_url", []string{"linkedin", "linkedin.com", "linkedin profile"}},
	{"portfolio_url", []string{"portfolio", "website", "personal site"}},
	{"github_url", []string{"github", "github.com", "github profile"}},
	{"behance_url", []string{"behance", "behance.net"}},
	{"dribbble_url", []string{"dribbble", "dribbble.com"}},
	{"twitter_handle", []string{"twitter", "x.com", "handle"}},

	// Education
	{"highest_degree", []string{"degree", "education level", "highest education"}},
	{"school_name", []string{"school", "university", "college", "institution"}},
	{"major_field_of_study", []string{"major", "field of study", "concentration", "degree in"}},
	{"graduation_date", []string{"graduation", "graduated", "graduation date"}},
	{"gpa", []string{"gpa", "grade point"}},

	// Work history
	{"current_company", []string{"current company", "employer", "current employer", "company name"}},
	{"current_job_title", []string{"current title", "job title", "position", "role"}},
	{"current_job_start_date", []string{"start date", "from", "employment start"}},
	{"current_job_end_date", []string{"end date", "to", "employment end"}},
	{"current_job_duties", []string{"responsibilities", "duties", "job description"}},

	// Logistics
	{"availability_date", []string{"available", "start date", "earliest start", "when can you start", "date available"}},
	{"work_type_preference", []string{"work type", "employment type", "full-time", "part-time", "office", "home", "hybrid", "remote", "office days"}},
	{"salary_expectation", []string{"salary", "desired salary", "expected salary", "compensation", "remuneration"}},
	{"willing_to_relocate", []string{"relocate", "relocation", "willing to move"}},
	{"willing_to_travel", []string{"travel", "willing to travel"}},
	{"notice_period", []string{"notice", "notice period", "availability"}},

	// Legal
	{"legally_authorized_to_work", []string{"authorized", "right to work", "work authorization", "legally work", "authorized to work"}},
	{"require_visa_sponsorship", []string{"visa", "sponsorship", "work permit", "visa sponsorship", "require sponsorship", "need sponsorship"}},
	{"age_over_18", []string{"18", "age", "over 18", "at least 18"}},

	// Screening
	{"how_did_you_hear", []string{"how did you hear", "source", "referral source"}},
	{"employee_referral_name", []string{"referred by", "referral", "employee name"}},
	{"previously_applied", []string{"previously applied", "applied before", "worked here"}},
	{"relatives_at_company", []string{"relatives", "family members"}},

	// Self-identification
	{"gender", []string{"gender", "sex"}},
	{"race_ethnicity", []string{"race", "ethnicity", "ethnic"}},
	{"veteran_status", []string{"veteran", "military"}},
	{"disability_status", []string{"disability", "disabled"}},

	// Accessibility
	{"require_accommodations", []string{"accommodation", "disability", "accessible"}},
	{"accommodation_details", []string{"accommodation details", "specific needs"}},
}

// TableKeys returns every question key the keyword table can produce,
// in table order. Used by the startup consistency check against the
// question catalog.
func TableKeys() []string {
	keys := make([]string, 0, len(keywordTable))
	for _, e := range keywordTable {
		keys = append(keys, e.key)
	}
	return keys
}
