package career

// BuiltInDefinitions returns the reference career catalog. Declaration
// order matters: it is the deterministic tie-break order when domains
// score equally.
func BuiltInDefinitions() []Domain {
	return []Domain{
		{
			Label: "Tech / Data Science",
			Keywords: []string{
				"python", "java", "data", "analysis", "machine learning",
				"ai", "software", "developer", "engineer", "code",
				"computer", "statistics", "math", "backend", "frontend",
				"cloud",
			},
			Description: "Careers in this field involve designing, developing, and applying technology and data to solve complex problems. Roles include Software Engineer, Data Scientist, AI Specialist, and Cloud Architect.",
			Courses: []Course{
				{Title: "Google Data Analytics Professional Certificate", URL: "https://www.coursera.org/professional-certificates/google-data-analytics"},
				{Title: "Meta Back-End Developer Professional Certificate", URL: "https://www.coursera.org/professional-certificates/meta-back-end-developer"},
			},
		},
		{
			Label: "Arts / Design",
			Keywords: []string{
				"creative", "art", "design", "music", "drawing", "painting",
				"visual", "style", "photoshop", "illustrator", "ui", "ux",
				"figma",
			},
			Description: "This domain is for creative individuals who enjoy expressing themselves visually or through performance. Careers include Graphic Designer, UX/UI Designer, Artist, and Animator.",
			Courses: []Course{
				{Title: "Google UX Design Professional Certificate", URL: "https://www.coursera.org/professional-certificates/google-ux-design"},
				{Title: "CalArts Graphic Design Specialization", URL: "https://www.coursera.org/specializations/graphic-design"},
			},
		},
		{
			Label: "Commerce / Management",
			Keywords: []string{
				"business", "management", "finance", "economics",
				"marketing", "leadership", "sales", "trade", "commerce",
				"accounts",
			},
			Description: "This field focuses on business operations, finance, and leadership. Potential careers are Business Analyst, Marketing Manager, Financial Advisor, and Entrepreneur.",
			Courses: []Course{
				{Title: "Introduction to Marketing by Wharton", URL: "https://www.coursera.org/learn/wharton-marketing"},
				{Title: "Financial Markets by Yale", URL: "https://www.coursera.org/learn/financial-markets-global"},
			},
		},
		{
			Label: "Medicine / Biology",
			Keywords: []string{
				"biology", "chemistry", "doctor", "nurse", "health",
				"medical", "research", "genetics", "anatomy", "patient",
				"care",
			},
			Description: "For those passionate about health, science, and helping others. Careers range from Doctor and Nurse to Medical Researcher and Pharmacist.",
			Courses: []Course{
				{Title: "Anatomy Specialization by University of Michigan", URL: "https://www.coursera.org/specializations/anatomy"},
				{Title: "Introduction to the Biology of Cancer", URL: "https://www.coursera.org/learn/cancer"},
			},
		},
		{
			Label: "Law / Social Sciences",
			Keywords: []string{
				"law", "justice", "social", "history", "psychology",
				"debate", "argue", "rights", "policy", "government",
				"sociology",
			},
			Description: "This domain is for those interested in society, human behavior, and justice. Careers include Lawyer, Psychologist, Social Worker, and Policy Analyst.",
			Courses: []Course{
				{Title: "Introduction to Psychology by Yale", URL: "https://www.coursera.org/learn/introduction-psychology"},
				{Title: "A Law Student's Toolkit by Yale", URL: "https://www.coursera.org/learn/law-student"},
			},
		},
	}
}
