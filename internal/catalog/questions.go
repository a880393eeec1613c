package catalog

// Question categories, in onboarding order.
const (
	CategoryPersonal          = "personal"
	CategoryProfessionalLinks = "professional_links"
	CategoryEducation         = "education"
	CategoryWorkHistory       = "work_history"
	CategoryLogistics         = "logistics"
	CategoryLegal             = "legal"
	CategoryScreening         = "screening"
	CategorySelfID            = "self_id"
	CategoryAccessibility     = "accessibility"
	CategoryPitch             = "pitch"
)

var questions = []Question{
	// ── Personal information ──────────────────────────
	{
		Key:      "first_name",
		Category: CategoryPersonal,
		Prompt:   "What is your first name?",
		Type:     "text",
		Required: true,
	},
	{
		Key:      "middle_name",
		Category: CategoryPersonal,
		Prompt:   "What is your middle name? (Optional)",
		Type:     "text",
	},
	{
		Key:      "last_name",
		Category: CategoryPersonal,
		Prompt:   "What is your last name?",
		Type:     "text",
		Required: true,
	},
	{
		Key:      "full_name",
		Category: CategoryPersonal,
		Prompt:   "What is your full legal name? (Optional, usually built from first and last name)",
		Type:     "text",
	},
	{
		Key:      "preferred_name",
		Category: CategoryPersonal,
		Prompt:   "What do you like to be called? (Preferred name)",
		Type:     "text",
	},
	{
		Key:      "email",
		Category: CategoryPersonal,
		Prompt:   "What is your email address?",
		Type:     "email",
		Required: true,
	},
	{
		Key:      "phone",
		Category: CategoryPersonal,
		Prompt:   "What is your phone number?",
		Type:     "tel",
		Required: true,
	},
	{
		Key:      "street_address",
		Category: CategoryPersonal,
		Prompt:   "What is your street address?",
		Type:     "text",
	},
	{
		Key:      "city",
		Category: CategoryPersonal,
		Prompt:   "What city do you live in?",
		Type:     "text",
		Required: true,
	},
	{
		Key:      "state_province",
		Category: CategoryPersonal,
		Prompt:   "What is your state/province?",
		Type:     "text",
	},
	{
		Key:      "postal_code",
		Category: CategoryPersonal,
		Prompt:   "What is your postal/zip code?",
		Type:     "text",
	},
	{
		Key:      "country",
		Category: CategoryPersonal,
		Prompt:   "What country do you live in?",
		Type:     "text",
		Required: true,
	},

	// ── Professional links ────────────────────────────
	{
		Key:      "linkedin_url",
		Category: CategoryProfessionalLinks,
		Prompt:   "What is your LinkedIn profile URL?",
		Type:     "url",
	},
	{
		Key:      "portfolio_url",
		Category: CategoryProfessionalLinks,
		Prompt:   "What is your personal website or portfolio URL?",
		Type:     "url",
	},
	{
		Key:      "github_url",
		Category: CategoryProfessionalLinks,
		Prompt:   "What is your GitHub profile URL?",
		Type:     "url",
	},
	{
		Key:      "behance_url",
		Category: CategoryProfessionalLinks,
		Prompt:   "What is your Behance profile URL?",
		Type:     "url",
	},
	{
		Key:      "dribbble_url",
		Category: CategoryProfessionalLinks,
		Prompt:   "What is your Dribbble profile URL?",
		Type:     "url",
	},
	{
		Key:      "twitter_handle",
		Category: CategoryProfessionalLinks,
		Prompt:   "What is your Twitter/X handle?",
		Type:     "text",
	},

	// ── Education ─────────────────────────────────────
	{
		Key:      "highest_degree",
		Category: CategoryEducation,
		Prompt:   "What is your highest level of education?",
		Type:     "select",
		Options: []string{
			"High School Diploma", "Associate's Degree", "Bachelor's Degree",
			"Master's Degree", "PhD", "Professional Degree",
		},
		Required: true,
	},
	{
		Key:      "school_name",
		Category: CategoryEducation,
		Prompt:   "What is the name of your most recent school/university?",
		Type:     "text",
	},
	{
		Key:      "major_field_of_study",
		Category: CategoryEducation,
		Prompt:   "What was your major/field of study?",
		Type:     "text",
	},
	{
		Key:      "graduation_date",
		Category: CategoryEducation,
		Prompt:   "When did you graduate (or when do you expect to graduate)?",
		Type:     "date",
	},
	{
		Key:      "gpa",
		Category: CategoryEducation,
		Prompt:   "What was your GPA? (Optional, often for entry-level)",
		Type:     "text",
	},

	// ── Work history (most recent role) ───────────────
	{
		Key:      "current_company",
		Category: CategoryWorkHistory,
		Prompt:   "What is your current/most recent company name?",
		Type:     "text",
	},
	{
		Key:      "current_job_title",
		Category: CategoryWorkHistory,
		Prompt:   "What is your current/most recent job title?",
		Type:     "text",
	},
	{
		Key:      "current_job_start_date",
		Category: CategoryWorkHistory,
		Prompt:   "When did you start this role? (Month/Year)",
		Type:     "text",
	},
	{
		Key:      "current_job_end_date",
		Category: CategoryWorkHistory,
		Prompt:   "When did this role end? (Leave blank if current, or enter Month/Year)",
		Type:     "text",
	},
	{
		Key:      "current_job_duties",
		Category: CategoryWorkHistory,
		Prompt:   "Briefly describe your responsibilities in this role",
		Type:     "textarea",
	},

	// ── Logistics & availability ──────────────────────
	{
		Key:      "availability_date",
		Category: CategoryLogistics,
		Prompt:   "What is the earliest date you can start working?",
		Type:     "date",
	},
	{
		Key:      "work_type_preference",
		Category: CategoryLogistics,
		Prompt:   "What type of work are you seeking?",
		Type:     "select",
		Options:  []string{"Full-time", "Part-time", "Contract", "Internship", "Any"},
	},
	{
		Key:      "salary_expectation",
		Category: CategoryLogistics,
		Prompt:   "What is your desired annual salary? (e.g., 75000)",
		Type:     "text",
	},
	{
		Key:      "willing_to_relocate",
		Category: CategoryLogistics,
		Prompt:   "Are you willing to relocate for this position?",
		Type:     "select",
		Options:  []string{"Yes", "No", "Maybe"},
	},
	{
		Key:      "willing_to_travel",
		Category: CategoryLogistics,
		Prompt:   "Are you willing to travel for work?",
		Type:     "select",
		Options:  []string{"Yes, up to 25%", "Yes, up to 50%", "Yes, up to 75%", "No"},
	},
	{
		Key:      "notice_period",
		Category: CategoryLogistics,
		Prompt:   "What is your notice period at your current job? (e.g., 2 weeks, 30 days)",
		Type:     "text",
	},

	// ── Work authorization & legal ────────────────────
	{
		Key:      "legally_authorized_to_work",
		Category: CategoryLegal,
		Prompt:   "Are you legally authorized to work in the country where this job is located?",
		Type:     "select",
		Options:  []string{"Yes", "No"},
		Required: true,
	},
	{
		Key:      "require_visa_sponsorship",
		Category: CategoryLegal,
		Prompt:   "Will you now or in the future require visa sponsorship?",
		Type:     "select",
		Options:  []string{"Yes", "No"},
	},
	{
		Key:      "age_over_18",
		Category: CategoryLegal,
		Prompt:   "Are you 18 years of age or older?",
		Type:     "select",
		Options:  []string{"Yes", "No"},
		Required: true,
	},

	// ── Screening & disclosures ───────────────────────
	{
		Key:      "how_did_you_hear",
		Category: CategoryScreening,
		Prompt:   "How did you hear about this position?",
		Type:     "select",
		Options:  []string{"LinkedIn", "Indeed", "Company Website", "Referral", "Recruiter", "Other"},
	},
	{
		Key:      "employee_referral_name",
		Category: CategoryScreening,
		Prompt:   "If you were referred by an employee, what is their name?",
		Type:     "text",
	},
	{
		Key:      "previously_applied",
		Category: CategoryScreening,
		Prompt:   "Have you previously applied to or worked for this company?",
		Type:     "select",
		Options:  []string{"Yes", "No"},
	},
	{
		Key:      "relatives_at_company",
		Category: CategoryScreening,
		Prompt:   "Do you have any relatives currently working for this company?",
		Type:     "select",
		Options:  []string{"Yes", "No"},
	},

	// ── Voluntary self-identification (U.S.) ──────────
	{
		Key:      "gender",
		Category: CategorySelfID,
		Prompt:   "What is your gender? (Optional - for government reporting)",
		Type:     "select",
		Options:  []string{"Male", "Female", "Non-binary", "Decline to self-identify"},
	},
	{
		Key:      "race_ethnicity",
		Category: CategorySelfID,
		Prompt:   "What is your race/ethnicity? (Optional - for government reporting)",
		Type:     "select",
		Options: []string{
			"Hispanic or Latino",
			"White",
			"Black or African American",
			"Asian",
			"Native Hawaiian or Pacific Islander",
			"American Indian or Alaska Native",
			"Two or more races",
			"Decline to self-identify",
		},
	},
	{
		Key:      "veteran_status",
		Category: CategorySelfID,
		Prompt:   "Are you a protected veteran? (Optional - for government reporting)",
		Type:     "select",
		Options:  []string{"Yes", "No", "Decline to self-identify"},
	},
	{
		Key:      "disability_status",
		Category: CategorySelfID,
		Prompt:   "Do you have a disability? (Optional - for government reporting)",
		Type:     "select",
		Options:  []string{"Yes", "No", "Decline to self-identify"},
	},

	// ── Accessibility & accommodations ────────────────
	{
		Key:      "require_accommodations",
		Category: CategoryAccessibility,
		Prompt:   "Do you require any accommodations during the interview process?",
		Type:     "select",
		Options:  []string{"Yes", "No"},
	},
	{
		Key:      "accommodation_details",
		Category: CategoryAccessibility,
		Prompt:   "If yes, please describe what accommodations you need",
		Type:     "textarea",
	},

	// ── Experience & pitch (feeds generation) ─────────
	{
		Key:      "career_summary_bullets",
		Category: CategoryPitch,
		Prompt:   "Bullet points of your key achievements/career summary",
		Type:     "textarea",
	},
	{
		Key:      "why_this_role_generic",
		Category: CategoryPitch,
		Prompt:   "What generally motivates you to apply for new roles?",
		Type:     "textarea",
	},
	{
		Key:      "notable_projects",
		Category: CategoryPitch,
		Prompt:   "Briefly mention 2-3 notable projects you've built",
		Type:     "textarea",
	},
}
