package profile

import "strings"

// Option is one entry of a single-choice list.
type Option struct {
	Value string
	Label string
}

// LocationOptions are the choices for Draft.Location.
var LocationOptions = []Option{
	{"remote", "Remote"},
	{"new-york", "New York, USA"},
	{"san-francisco", "San Francisco, USA"},
	{"london", "London, UK"},
	{"berlin", "Berlin, Germany"},
	{"singapore", "Singapore"},
	{"other", "Other"},
}

// SalaryRangeOptions are the choices for Draft.SalaryRange.
var SalaryRangeOptions = []Option{
	{"$30,000 - $50,000", "$30,000 - $50,000"},
	{"$50,000 - $80,000", "$50,000 - $80,000"},
	{"$80,000 - $120,000", "$80,000 - $120,000"},
	{"$120,000 - $150,000", "$120,000 - $150,000"},
	{"$150,000+", "$150,000+"},
}

// RemoteOptions are the choices for Draft.RemotePreference.
var RemoteOptions = []Option{
	{"remote-only", "Remote Only"},
	{"hybrid", "Hybrid (Some Remote, Some Office)"},
	{"office", "In-Office"},
	{"flexible", "Flexible (No Preference)"},
}

// SkillOptions is the typeahead catalog for Draft.Skills.
var SkillOptions = []string{
	"JavaScript",
	"TypeScript",
	"React",
	"Next.js",
	"Node.js",
	"Python",
	"Java",
	"C#",
	"SQL",
	"NoSQL",
	"AWS",
	"Azure",
	"Docker",
	"Kubernetes",
	"UI/UX Design",
	"Product Management",
	"Agile",
	"Scrum",
	"DevOps",
	"Machine Learning",
	"Data Science",
	"Blockchain",
	"Marketing",
	"Sales",
}

// IndustryOptions is the catalog for Draft.Industries.
var IndustryOptions = []string{
	"Technology",
	"Finance",
	"Healthcare",
	"Education",
	"E-commerce",
	"Media",
	"Entertainment",
	"Manufacturing",
	"Retail",
	"Transportation",
	"Energy",
	"Consulting",
	"Real Estate",
	"Hospitality",
	"Non-profit",
}

// JobTypeOptions is the catalog for Draft.JobTypes.
var JobTypeOptions = []string{"Full-time", "Part-time", "Contract", "Freelance", "Internship"}

// FilterCatalog returns the entries of catalog containing query,
// case-insensitively, in catalog order. An empty query matches everything.
func FilterCatalog(catalog []string, query string) []string {
	q := strings.ToLower(query)
	out := make([]string, 0, len(catalog))
	for _, item := range catalog {
		if strings.Contains(strings.ToLower(item), q) {
			out = append(out, item)
		}
	}
	return out
}

// Label returns the label of the option whose value is v, or v itself when
// no option matches.
func Label(options []Option, v string) string {
	for _, o := range options {
		if o.Value == v {
			return o.Label
		}
	}
	return v
}

// Values returns the option values in order.
func Values(options []Option) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.Value
	}
	return out
}
