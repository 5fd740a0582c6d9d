package content

// Owner is the fixed set of contact identifiers shared by every locale.
var Owner = Contact{
	Email:    "longxinyang@foxmail.com",
	GitHub:   "https://github.com/longxinyang",
	LinkedIn: "#",
	Blog:     "https://blog.example.com",
}

// Skills are the hero highlights. They are not translated.
var Skills = []string{
	"Genomics",
	"Linux/Bash",
	"R & Python",
	"Data Viz",
	"Biobanks",
	"Epidemiology",
}
