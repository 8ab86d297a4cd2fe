package directory

// SeedRoster returns the built-in sample roster used when no dataset
// file is configured. A fresh slice is returned on every call so a
// caller can never mutate the canonical data.
func SeedRoster() Roster {
	return Roster{
		{
			ID:            1,
			FullName:      "Ayush Sharma",
			PreferredName: "Ayush",
			Email:         "ayush.sharma@university.edu",
			Phone:         "+91-9876543210",
			Role:          "Student",
			Department:    "Computer Science",
			Location:      "Delhi Campus",
			Tags:          []string{"ml", "python", "ai"},
		},
		{
			ID:            2,
			FullName:      "Aayush Jain",
			PreferredName: "Aayush",
			Email:         "aayush.jain@university.edu",
			Phone:         "+91-9876543211",
			Role:          "Student",
			Department:    "Data Science",
			Location:      "Delhi Campus",
			Tags:          []string{"statistics", "r", "analytics"},
		},
		{
			ID:            3,
			FullName:      "Dr. Priya Patel",
			PreferredName: "Priya",
			Email:         "priya.patel@university.edu",
			Phone:         "+91-9876543212",
			Role:          "Professor",
			Department:    "Computer Science",
			Location:      "Mumbai Office",
			Tags:          []string{"algorithms", "theory", "research"},
		},
		{
			ID:            4,
			FullName:      "Rahul Kumar",
			PreferredName: "Rahul",
			Email:         "rahul.kumar@university.edu",
			Phone:         "+91-9876543213",
			Role:          "Data Analyst",
			Department:    "Data Science",
			Location:      "Delhi Campus",
			Tags:          []string{"sql", "tableau", "business-intelligence"},
		},
		{
			ID:            5,
			FullName:      "Sarah Johnson",
			PreferredName: "Sarah",
			Email:         "sarah.johnson@university.edu",
			Phone:         "+91-9876543214",
			Role:          "Research Assistant",
			Department:    "Computer Science",
			Location:      "Mumbai Office",
			Tags:          []string{"nlp", "deep-learning", "pytorch"},
		},
		{
			ID:            6,
			FullName:      "Vikram Singh",
			PreferredName: "Vikram",
			Email:         "vikram.singh@university.edu",
			Phone:         "+91-9876543215",
			Role:          "Professor",
			Department:    "Data Science",
			Location:      "Delhi Campus",
			Tags:          []string{"machine-learning", "statistics", "python"},
		},
		{
			ID:            7,
			FullName:      "Anita Desai",
			PreferredName: "Anita",
			Email:         "anita.desai@university.edu",
			Phone:         "+91-9876543216",
			Role:          "Student",
			Department:    "Computer Science",
			Location:      "Mumbai Office",
			Tags:          []string{"web-development", "javascript", "react"},
		},
		{
			ID:            8,
			FullName:      "Michael Chen",
			PreferredName: "Mike",
			Email:         "michael.chen@university.edu",
			Phone:         "+91-9876543217",
			Role:          "Data Analyst",
			Department:    "Data Science",
			Location:      "Mumbai Office",
			Tags:          []string{"visualization", "python", "pandas"},
		},
	}
}
