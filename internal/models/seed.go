package models

// SeedCatalog returns a fresh copy of the built-in sample data
func SeedCatalog() *Catalog {
	c := &Catalog{
		Projects: []Project{
			{
				ID:          1,
				Title:       "AI-Powered Sustainability Tracker",
				Student:     "Ava Johnson",
				Description: "A research project using AI to monitor carbon emissions from campus buildings.",
				Tags:        []string{"AI", "Sustainability", "Research"},
			},
			{
				ID:          2,
				Title:       "Blockchain Voting System",
				Student:     "Liam Patel",
				Description: "Built a secure digital voting app using Ethereum smart contracts.",
				Tags:        []string{"Blockchain", "Civic Tech", "Engineering"},
			},
		},
		Students: []Student{
			{
				Name:   "Ava Johnson",
				Major:  "Computer Science",
				Skills: []string{"AI", "Python", "Data Science"},
				Bio:    "Passionate about building sustainable tech solutions.",
			},
			{
				Name:   "Liam Patel",
				Major:  "Information Systems",
				Skills: []string{"Blockchain", "Smart Contracts"},
				Bio:    "Focused on decentralized applications for civic engagement.",
			},
		},
		Recruiters: []Recruiter{
			{Name: "RecruiterX", Company: "TechNova", InterestAreas: []string{"AI", "Sustainability"}},
		},
		Opportunities: []Opportunity{
			{
				ID:             1,
				Title:          "Summer AI Internship",
				Company:        "TechNova",
				Description:    "Ten-week internship building machine learning models for energy analytics.",
				RequiredSkills: []string{"AI", "Python"},
				Type:           OpportunityInternship,
			},
			{
				ID:             2,
				Title:          "Civic Blockchain Hackathon",
				Company:        "ChainWorks",
				Description:    "Weekend hackathon on transparent public-sector tooling.",
				RequiredSkills: []string{"Blockchain"},
				Type:           OpportunityCompetition,
			},
		},
	}

	c.LinkProjects()
	return c
}
