// Package skills extracts resume skills by matching a fixed library of
// technical and professional skills against resume text. The result feeds
// scoring as plain strings; nothing here knows about listings.
package skills

import (
	"internhunt/internal/scoring"
)

// Library is the skill catalog matched against resumes, grouped for
// readability only; extraction flattens it.
var Library = map[string][]string{
	"languages": {
		"Python", "Java", "JavaScript", "TypeScript", "C++", "C#",
		"Go", "Rust", "Ruby", "PHP", "Swift", "Kotlin", "Scala",
		"R", "MATLAB", "Bash",
	},
	"ml_ai": {
		"Machine Learning", "Deep Learning", "Natural Language Processing",
		"Computer Vision", "TensorFlow", "PyTorch", "Keras", "Scikit-learn",
		"Neural Networks", "Reinforcement Learning", "Data Science",
		"Pandas", "NumPy", "OpenCV",
	},
	"web": {
		"React", "Angular", "Vue.js", "Node.js", "Express.js",
		"Django", "Flask", "FastAPI", "HTML", "CSS",
		"Bootstrap", "Tailwind CSS", "REST API", "GraphQL", "Next.js",
	},
	"databases": {
		"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis",
		"SQLite", "Cassandra", "DynamoDB", "Elasticsearch",
	},
	"cloud_devops": {
		"AWS", "Azure", "Google Cloud Platform", "Docker", "Kubernetes",
		"CI/CD", "Jenkins", "GitHub Actions", "Terraform",
		"Ansible", "Linux", "Nginx",
	},
	"tools": {
		"Git", "GitHub", "GitLab", "JIRA", "Postman", "Jupyter Notebook",
	},
	"mobile": {
		"Android", "iOS", "React Native", "Flutter",
	},
}

// Extract returns every library skill present in the resume text as a
// whole token, in a stable category-then-library order. An empty resume
// yields no skills; scoring treats that as "no resume supplied".
func Extract(resumeText string) []string {
	if resumeText == "" {
		return nil
	}

	var found []string
	for _, category := range categoryOrder {
		for _, skill := range Library[category] {
			if scoring.ContainsWord(resumeText, skill) {
				found = append(found, skill)
			}
		}
	}
	return found
}

var categoryOrder = []string{
	"languages", "ml_ai", "web", "databases", "cloud_devops", "tools", "mobile",
}
