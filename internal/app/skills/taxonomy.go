// Package skills defines the fixed skill taxonomy and the classifier that
// maps free-text skill strings onto it.
//
// The taxonomy is compiled in: exactly seven categories, each carrying the
// metadata used when its discussion group is lazily created (icon, color,
// description) and the list of skill strings that belong to it. Unmatched
// skills fall back to the Quality & Collaboration category.
package skills

// Category names. These are a closed enumeration; every group document's
// Name field holds one of them.
const (
	FullStack    = "Full-Stack Development"
	DataAI       = "Data & AI"
	CloudInfra   = "Cloud & Infrastructure"
	Mobile       = "Mobile Development"
	CreativeGame = "Creative & Gaming"
	Security     = "Security & Networks"
	QualityColab = "Quality & Collaboration"
)

// DefaultCategory receives every skill no other category lists, and is the
// forced destination for skill-less users on the administrative bulk path.
const DefaultCategory = QualityColab

// Category is one of the seven fixed skill domains.
type Category struct {
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// taxonomy is declared in priority order: when the same skill string were
// ever listed twice, the earlier category wins (the lists below are
// partitioned, so this is latent only).
var taxonomy = []Category{
	{
		Name:        FullStack,
		Icon:        "💻",
		Color:       "#4F46E5",
		Description: "Web front-ends, back-ends, and the frameworks that glue them together.",
		Skills: []string{
			"HTML", "CSS", "JavaScript", "TypeScript", "React", "Angular",
			"Vue.js", "Svelte", "Next.js", "Node.js", "Express", "Django",
			"Ruby on Rails", "PHP", "Laravel", "Java", "C#", "Go",
			"GraphQL", "REST APIs", "PostgreSQL", "MongoDB",
		},
	},
	{
		Name:        DataAI,
		Icon:        "🤖",
		Color:       "#059669",
		Description: "Data analysis, machine learning, and everything that turns data into decisions.",
		Skills: []string{
			"Python", "R", "SQL", "Pandas", "NumPy", "Machine Learning",
			"Deep Learning", "TensorFlow", "PyTorch", "Data Analysis",
			"Data Visualization", "Power BI", "Tableau", "Statistics",
			"Natural Language Processing", "Computer Vision", "Apache Spark",
		},
	},
	{
		Name:        CloudInfra,
		Icon:        "☁️",
		Color:       "#0284C7",
		Description: "Cloud platforms, containers, and the automation that keeps systems running.",
		Skills: []string{
			"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes",
			"Terraform", "Ansible", "Linux", "Bash", "CI/CD", "Jenkins",
			"GitHub Actions", "DevOps", "Serverless", "Nginx", "Redis",
		},
	},
	{
		Name:        Mobile,
		Icon:        "📱",
		Color:       "#D97706",
		Description: "Native and cross-platform apps for phones and tablets.",
		Skills: []string{
			"Swift", "SwiftUI", "Kotlin", "Android", "iOS", "Flutter",
			"React Native", "Dart", "Xamarin", "Ionic", "Jetpack Compose",
		},
	},
	{
		Name:        CreativeGame,
		Icon:        "🎮",
		Color:       "#DB2777",
		Description: "Game engines, design tools, and digital media production.",
		Skills: []string{
			"Unity", "Unreal Engine", "Game Design", "Blender",
			"3D Modeling", "Animation", "Photoshop", "Illustrator",
			"Figma", "UI/UX Design", "Video Editing", "Music Production",
		},
	},
	{
		Name:        Security,
		Icon:        "🔐",
		Color:       "#DC2626",
		Description: "Keeping systems and networks safe, and understanding how they break.",
		Skills: []string{
			"Cybersecurity", "Ethical Hacking", "Penetration Testing",
			"Network Security", "Networking", "Cryptography", "Firewalls",
			"Wireshark", "Security Auditing", "Incident Response",
		},
	},
	{
		Name:        QualityColab,
		Icon:        "🤝",
		Color:       "#7C3AED",
		Description: "Testing, process, and the people skills that make teams work.",
		Skills: []string{
			"Testing", "Unit Testing", "Selenium", "QA", "Agile", "Scrum",
			"Project Management", "Git", "Code Review", "Documentation",
			"Communication", "Mentoring", "Public Speaking", "Team Leadership",
		},
	},
}

var byName = func() map[string]*Category {
	m := make(map[string]*Category, len(taxonomy))
	for i := range taxonomy {
		m[taxonomy[i].Name] = &taxonomy[i]
	}
	return m
}()

// All returns every category in declaration order.
func All() []Category {
	out := make([]Category, len(taxonomy))
	copy(out, taxonomy)
	return out
}

// Get returns the category with the given name, or nil if the name is not
// one of the seven.
func Get(name string) *Category {
	if c, ok := byName[name]; ok {
		cp := *c
		return &cp
	}
	return nil
}

// Default returns the fallback category.
func Default() Category {
	return *byName[DefaultCategory]
}

// Names returns the seven category names in declaration order.
func Names() []string {
	out := make([]string, len(taxonomy))
	for i, c := range taxonomy {
		out[i] = c.Name
	}
	return out
}
