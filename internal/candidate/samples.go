package candidate

// Samples returns the built-in candidate pool and job catalogue. Used when no
// data file is configured. The returned source is safe for concurrent readers.
func Samples() Source {
	return &staticSource{
		candidates: &Candidates{Items: sampleCandidates},
		jobs:       &Jobs{Items: sampleJobs},
	}
}

var sampleCandidates = []*Candidate{
	{
		ID:              "1",
		Name:            "Alice Johnson",
		Email:           "alice.johnson@email.com",
		Skills:          []string{"Python", "Machine Learning", "Data Science", "SQL", "TensorFlow", "Pandas", "NumPy"},
		ExperienceYears: 5,
		Education:       "MS Computer Science",
		PreviousRoles:   []string{"Data Scientist", "ML Engineer"},
		Certifications:  []string{"AWS Certified Machine Learning", "Google Cloud Professional Data Engineer"},
		Summary:         "Experienced data scientist with 5 years of experience in machine learning and data analysis. Skilled in Python, TensorFlow, and cloud platforms.",
	},
	{
		ID:              "2",
		Name:            "Bob Smith",
		Email:           "bob.smith@email.com",
		Skills:          []string{"JavaScript", "React", "Node.js", "MongoDB", "HTML", "CSS", "Git"},
		ExperienceYears: 3,
		Education:       "BS Computer Science",
		PreviousRoles:   []string{"Frontend Developer", "Full Stack Developer"},
		Certifications:  []string{"React Developer Certification"},
		Summary:         "Frontend developer with 3 years of experience in React and modern web technologies. Strong background in user interface design and responsive development.",
	},
	{
		ID:              "3",
		Name:            "Carol Davis",
		Email:           "carol.davis@email.com",
		Skills:          []string{"Java", "Spring Boot", "Microservices", "Docker", "Kubernetes", "AWS", "PostgreSQL"},
		ExperienceYears: 7,
		Education:       "BS Software Engineering",
		PreviousRoles:   []string{"Backend Developer", "System Architect", "DevOps Engineer"},
		Certifications:  []string{"AWS Solutions Architect", "Kubernetes Administrator"},
		Summary:         "Senior backend developer with 7 years of experience in enterprise applications. Expert in Java, Spring Boot, and cloud infrastructure.",
	},
	{
		ID:              "4",
		Name:            "David Wilson",
		Email:           "david.wilson@email.com",
		Skills:          []string{"Python", "Django", "FastAPI", "REST APIs", "PostgreSQL", "Redis", "Docker"},
		ExperienceYears: 4,
		Education:       "MS Software Engineering",
		PreviousRoles:   []string{"Python Developer", "API Developer"},
		Certifications:  []string{"Django Developer Certification"},
		Summary:         "Python backend developer with 4 years of experience in web development and API design. Skilled in Django and FastAPI frameworks.",
	},
	{
		ID:              "5",
		Name:            "Emma Brown",
		Email:           "emma.brown@email.com",
		Skills:          []string{"Data Analysis", "R", "Python", "Statistics", "Machine Learning", "Tableau", "Power BI"},
		ExperienceYears: 6,
		Education:       "PhD Statistics",
		PreviousRoles:   []string{"Data Analyst", "Business Intelligence Analyst"},
		Certifications:  []string{"Tableau Desktop Specialist", "Microsoft Power BI Certification"},
		Summary:         "Data analyst with 6 years of experience in statistical analysis and business intelligence. Strong background in R, Python, and data visualization.",
	},
	{
		ID:              "6",
		Name:            "Frank Miller",
		Email:           "frank.miller@email.com",
		Skills:          []string{"C++", "System Programming", "Linux", "Performance Optimization", "Embedded Systems"},
		ExperienceYears: 8,
		Education:       "MS Computer Engineering",
		PreviousRoles:   []string{"Systems Engineer", "Embedded Software Developer"},
		Certifications:  []string{"Linux Professional Institute Certification"},
		Summary:         "Systems engineer with 8 years of experience in low-level programming and embedded systems. Expert in C++ and Linux system development.",
	},
	{
		ID:              "7",
		Name:            "Grace Lee",
		Email:           "grace.lee@email.com",
		Skills:          []string{"UI/UX Design", "Figma", "Adobe Creative Suite", "Prototyping", "User Research", "JavaScript", "React"},
		ExperienceYears: 4,
		Education:       "BFA Graphic Design",
		PreviousRoles:   []string{"UI Designer", "UX Designer", "Product Designer"},
		Certifications:  []string{"Google UX Design Certificate"},
		Summary:         "UI/UX designer with 4 years of experience in user-centered design and prototyping. Strong skills in design tools and frontend development.",
	},
	{
		ID:              "8",
		Name:            "Henry Chen",
		Email:           "henry.chen@email.com",
		Skills:          []string{"DevOps", "CI/CD", "Jenkins", "GitLab", "Terraform", "Ansible", "Monitoring"},
		ExperienceYears: 5,
		Education:       "BS Information Technology",
		PreviousRoles:   []string{"DevOps Engineer", "Site Reliability Engineer"},
		Certifications:  []string{"Jenkins Certified Engineer", "HashiCorp Terraform Associate"},
		Summary:         "DevOps engineer with 5 years of experience in automation and infrastructure management. Expert in CI/CD pipelines and infrastructure as code.",
	},
}

var sampleJobs = []*JobDescription{
	{
		ID:                    "1",
		Title:                 "Senior Data Scientist",
		Company:               "TechCorp",
		Description:           "We are looking for a Senior Data Scientist to join our AI team. The ideal candidate will have experience in machine learning, deep learning, and statistical analysis.",
		RequiredSkills:        []string{"Python", "Machine Learning", "Statistics", "TensorFlow", "Data Analysis"},
		PreferredSkills:       []string{"Deep Learning", "NLP", "Computer Vision", "AWS", "MLOps"},
		MinExperience:         4,
		EducationRequirements: "MS in Computer Science, Statistics, or related field",
		Responsibilities: []string{
			"Develop machine learning models for business applications",
			"Analyze large datasets to extract insights",
			"Collaborate with engineering teams to deploy models",
			"Present findings to stakeholders",
		},
	},
	{
		ID:                    "2",
		Title:                 "Frontend Developer",
		Company:               "WebTech Solutions",
		Description:           "Join our frontend team to build modern, responsive web applications. We need someone with strong React skills and eye for design.",
		RequiredSkills:        []string{"JavaScript", "React", "HTML", "CSS", "Git"},
		PreferredSkills:       []string{"TypeScript", "Next.js", "Tailwind CSS", "Testing"},
		MinExperience:         2,
		EducationRequirements: "BS in Computer Science or equivalent experience",
		Responsibilities: []string{
			"Develop user interfaces using React",
			"Ensure responsive design across devices",
			"Collaborate with designers and backend developers",
			"Write clean, maintainable code",
		},
	},
	{
		ID:                    "3",
		Title:                 "Backend Software Engineer",
		Company:               "Enterprise Systems Inc",
		Description:           "We're seeking a Backend Software Engineer to work on scalable enterprise applications. Experience with Java and microservices architecture is essential.",
		RequiredSkills:        []string{"Java", "Spring Boot", "REST APIs", "Database Design", "Git"},
		PreferredSkills:       []string{"Microservices", "Docker", "Kubernetes", "Cloud Platforms"},
		MinExperience:         5,
		EducationRequirements: "BS in Software Engineering or Computer Science",
		Responsibilities: []string{
			"Design and develop backend services",
			"Implement microservices architecture",
			"Optimize application performance",
			"Mentor junior developers",
		},
	},
	{
		ID:                    "4",
		Title:                 "Python Developer",
		Company:               "StartupTech",
		Description:           "Looking for a Python developer to work on web applications and APIs. Experience with Django or FastAPI is highly preferred.",
		RequiredSkills:        []string{"Python", "Web Development", "REST APIs", "Database"},
		PreferredSkills:       []string{"Django", "FastAPI", "PostgreSQL", "Redis", "Docker"},
		MinExperience:         3,
		EducationRequirements: "BS in Computer Science or related field",
		Responsibilities: []string{
			"Develop web applications using Python frameworks",
			"Design and implement REST APIs",
			"Work with databases and caching systems",
			"Collaborate with frontend developers",
		},
	},
	{
		ID:                    "5",
		Title:                 "DevOps Engineer",
		Company:               "CloudFirst",
		Description:           "Join our DevOps team to manage CI/CD pipelines and infrastructure automation. Experience with containerization and orchestration is required.",
		RequiredSkills:        []string{"DevOps", "CI/CD", "Docker", "Kubernetes", "Linux"},
		PreferredSkills:       []string{"Terraform", "Ansible", "Jenkins", "Monitoring", "Cloud Platforms"},
		MinExperience:         4,
		EducationRequirements: "BS in Computer Science, IT, or related field",
		Responsibilities: []string{
			"Design and maintain CI/CD pipelines",
			"Manage containerized applications",
			"Implement infrastructure as code",
			"Monitor system performance and reliability",
		},
	},
}
