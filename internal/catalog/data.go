package catalog

import "github.com/aisharahman/gradpath/internal/domain"

// baseCourses is the fixed CS degree catalog, including the GEN101-107
// general-education placeholders and FREE001-003 free-elective placeholders
// that audit reconciliation later substitutes with real courses.
var baseCourses = map[string]*domain.Course{
	"CS111": {
		ID: "CS111", Code: "CS 111", Name: "Program Design I",
		Credits: 3, Category: domain.CategoryCore,
	},
	"CS141": {
		ID: "CS141", Code: "CS 141", Name: "Program Design II",
		Credits: 3, Category: domain.CategoryCore,
		Prerequisites:           []string{"CS111"},
		ConcurrentPrerequisites: []string{"MATH180"},
	},
	"CS151": {
		ID: "CS151", Code: "CS 151", Name: "Mathematical Foundations of Computing",
		Credits: 3, Category: domain.CategoryCore,
		Prerequisites:           []string{"CS111"},
		ConcurrentPrerequisites: []string{"MATH180"},
	},
	"CS211": {
		ID: "CS211", Code: "CS 211", Name: "Programming Practicum",
		Credits: 3, Category: domain.CategoryCore,
		Prerequisites: []string{"CS141"},
	},
	"CS251": {
		ID: "CS251", Code: "CS 251", Name: "Data Structures",
		Credits: 4, Category: domain.CategoryCore,
		Prerequisites:           []string{"CS141", "CS151"},
		ConcurrentPrerequisites: []string{"CS211"},
	},
	"CS261": {
		ID: "CS261", Code: "CS 261", Name: "Machine Organization",
		Credits: 4, Category: domain.CategoryCore,
		Prerequisites:           []string{"CS141"},
		ConcurrentPrerequisites: []string{"CS211"},
	},
	"CS277": {
		ID: "CS277", Code: "CS 277", Name: "Technical and Professional Communication in Computer Science",
		Credits: 3, Category: domain.CategoryCore,
		Prerequisites: []string{"CS141"},
	},
	"CS301": {
		ID: "CS301", Code: "CS 301", Name: "Languages and Automata",
		Credits: 3, Category: domain.CategoryCore,
		Prerequisites:           []string{"CS151"},
		ConcurrentPrerequisites: []string{"CS251"},
	},
	"CS341": {
		ID: "CS341", Code: "CS 341", Name: "Programming Language Design and Implementation",
		Credits: 3, Category: domain.CategoryCore,
		Prerequisites: []string{"CS211", "CS251"},
	},
	"CS342": {
		ID: "CS342", Code: "CS 342", Name: "Software Design",
		Credits: 3, Category: domain.CategoryCore,
		Prerequisites: []string{"CS251", "CS211"},
	},
	"CS361": {
		ID: "CS361", Code: "CS 361", Name: "Systems Programming",
		Credits: 4, Category: domain.CategoryCore,
		Prerequisites: []string{"CS251", "CS211", "CS261"},
	},
	"CS362": {
		ID: "CS362", Code: "CS 362", Name: "Computer Design",
		Credits: 4, Category: domain.CategoryCore,
		Prerequisites: []string{"CS211", "CS261"},
	},
	"CS377": {
		ID: "CS377", Code: "CS 377", Name: "Ethical Issues in Computing",
		Credits: 3, Category: domain.CategoryCore,
		ConcurrentPrerequisites: []string{"CS251"},
	},
	"CS401": {
		ID: "CS401", Code: "CS 401", Name: "Computer Algorithms I",
		Credits: 3, Category: domain.CategoryCore,
		Prerequisites: []string{"CS251"},
	},
	"CS407": {
		ID: "CS407", Code: "CS 407", Name: "Economics and Computation",
		Credits: 3, Category: domain.CategoryElective,
		Prerequisites: []string{"CS251"},
	},
	"CS411": {
		ID: "CS411", Code: "CS 411", Name: "Artificial Intelligence I",
		Credits: 3, Category: domain.CategoryElective,
		Prerequisites: []string{"CS251"},
	},
	"CS418": {
		ID: "CS418", Code: "CS 418", Name: "Introduction to Data Science",
		Credits: 3, Category: domain.CategoryElective,
		Prerequisites:           []string{"CS251"},
		ConcurrentPrerequisites: []string{"STAT381", "IE342"},
	},
	"CS422": {
		ID: "CS422", Code: "CS 422", Name: "User Interface Design and Programming",
		Credits: 3, Category: domain.CategoryElective,
		Prerequisites: []string{"CS342"},
	},
	"CS440": {
		ID: "CS440", Code: "CS 440", Name: "Software Engineering I",
		Credits: 3, Category: domain.CategoryElective,
		Prerequisites: []string{"CS342"},
	},
	"CS351": {
		ID: "CS351", Code: "CS 351", Name: "Advanced Data Structure Practicum",
		Credits: 3, Category: domain.CategoryElective,
		Prerequisites: []string{"CS251", "CS211"},
	},
	"MATH180": {
		ID: "MATH180", Code: "MATH 180", Name: "Calculus I",
		Credits: 4, Category: domain.CategoryMath,
	},
	"MATH181": {
		ID: "MATH181", Code: "MATH 181", Name: "Calculus II",
		Credits: 4, Category: domain.CategoryMath,
		Prerequisites: []string{"MATH180"},
	},
	"MATH210": {
		ID: "MATH210", Code: "MATH 210", Name: "Calculus III",
		Credits: 3, Category: domain.CategoryMath,
		Prerequisites: []string{"MATH181"},
	},
	"ENGL160": {
		ID: "ENGL160", Code: "ENGL 160", Name: "Academic Writing I: Writing in Academic and Public Contexts",
		Credits: 3, Category: domain.CategoryGeneral,
	},
	"ENGL161": {
		ID: "ENGL161", Code: "ENGL 161", Name: "Academic Writing II: Writing for Inquiry and Research",
		Credits: 3, Category: domain.CategoryGeneral,
		Prerequisites: []string{"ENGL160"},
	},
	"GEN101": {
		ID: "GEN101", Code: "GEN 101", Name: "Exploring World Cultures",
		Credits: 3, Category: domain.CategoryGeneral,
	},
	"GEN102": {
		ID: "GEN102", Code: "GEN 102", Name: "Understanding the Creative Arts",
		Credits: 3, Category: domain.CategoryGeneral,
	},
	"GEN103": {
		ID: "GEN103", Code: "GEN 103", Name: "Understanding the Past",
		Credits: 3, Category: domain.CategoryGeneral,
	},
	"GEN104": {
		ID: "GEN104", Code: "GEN 104", Name: "Understanding the Individual and Society",
		Credits: 3, Category: domain.CategoryGeneral,
	},
	"GEN105": {
		ID: "GEN105", Code: "GEN 105", Name: "Understanding U.S. Society",
		Credits: 3, Category: domain.CategoryGeneral,
	},
	"GEN106": {
		ID: "GEN106", Code: "GEN 106", Name: "Humanities/Social Sciences/Art Electives",
		Credits: 3, Category: domain.CategoryGeneral,
	},
	"GEN107": {
		ID: "GEN107", Code: "GEN 107", Name: "Humanities/Social Sciences/Art Electives",
		Credits: 3, Category: domain.CategoryGeneral,
	},
	"IE342": {
		ID: "IE342", Code: "IE 342", Name: "Probability and Statistics for Engineers",
		Credits: 3, Category: domain.CategoryMath,
		Prerequisites: []string{"MATH181"},
	},
	"STAT381": {
		ID: "STAT381", Code: "STAT 381", Name: "Applied Statistical Methods I",
		Credits: 3, Category: domain.CategoryMath,
		Prerequisites: []string{"MATH181"},
	},
	"MATH215": {
		ID: "MATH215", Code: "MATH 215", Name: "Introduction to Advanced Mathematics",
		Credits: 3, Category: domain.CategoryMath,
		Prerequisites: []string{"MATH181"},
	},
	"MATH220": {
		ID: "MATH220", Code: "MATH 220", Name: "Introduction to Differential Equations",
		Credits: 3, Category: domain.CategoryMath,
		Prerequisites: []string{"MATH210"},
	},
	"MATH218": {
		ID: "MATH218", Code: "MATH 218", Name: "Applied Linear Algebra",
		Credits: 3, Category: domain.CategoryMath,
		Prerequisites: []string{"MATH181"},
	},
	"MATH320": {
		ID: "MATH320", Code: "MATH 320", Name: "Linear Algebra I",
		Credits: 3, Category: domain.CategoryMath,
		Prerequisites: []string{"MATH215"},
	},
	"MATH430": {
		ID: "MATH430", Code: "MATH 430", Name: "Formal Logic I",
		Credits: 3, Category: domain.CategoryMath,
		Prerequisites: []string{"MATH215"},
	},
	"MATH435": {
		ID: "MATH435", Code: "MATH 435", Name: "Foundations of Number Theory",
		Credits: 3, Category: domain.CategoryMath,
		Prerequisites: []string{"MATH215"},
	},
	"MATH436": {
		ID: "MATH436", Code: "MATH 436", Name: "Number Theory for Applications",
		Credits: 3, Category: domain.CategoryMath,
		Prerequisites: []string{"MATH435"},
	},
	"MCS421": {
		ID: "MCS421", Code: "MCS 421", Name: "Combinatorics",
		Credits: 3, Category: domain.CategoryMath,
		Prerequisites:           []string{"MATH215", "MATH218"},
		ConcurrentPrerequisites: []string{"MATH320"},
	},
	"MCS423": {
		ID: "MCS423", Code: "MCS 423", Name: "Graph Theory",
		Credits: 3, Category: domain.CategoryMath,
		Prerequisites:           []string{"MATH215", "MATH218"},
		ConcurrentPrerequisites: []string{"MATH320"},
	},
	"MCS471": {
		ID: "MCS471", Code: "MCS 471", Name: "Numerical Analysis",
		Credits: 3, Category: domain.CategoryMath,
		Prerequisites: []string{"CS111"},
	},
	"STAT401": {
		ID: "STAT401", Code: "STAT 401", Name: "Introduction to Probability",
		Credits: 3, Category: domain.CategoryMath,
		Prerequisites: []string{"MATH210"},
	},
	"STAT473": {
		ID: "STAT473", Code: "STAT 473", Name: "Game Theory",
		Credits: 3, Category: domain.CategoryMath,
		Prerequisites: []string{"STAT381"},
	},
	"BIOS110": {
		ID: "BIOS110", Code: "BIOS 110", Name: "Biology of Cells and Organisms",
		Credits: 4, Category: domain.CategoryScience,
	},
	"BIOS120": {
		ID: "BIOS120", Code: "BIOS 120", Name: "Biology of Populations and Communities",
		Credits: 4, Category: domain.CategoryScience,
	},
	"CHEM122": {
		ID: "CHEM122", Code: "CHEM 122", Name: "Matter and Energy",
		Credits: 3, Category: domain.CategoryScience,
	},
	"CHEM123": {
		ID: "CHEM123", Code: "CHEM 123", Name: "Foundations of Chemical Inquiry I",
		Credits: 2, Category: domain.CategoryScience,
		ConcurrentPrerequisites: []string{"CHEM122"},
	},
	"CHEM116": {
		ID: "CHEM116", Code: "CHEM 116", Name: "Honors and Majors General and Analytical Chemistry I",
		Credits: 5, Category: domain.CategoryScience,
	},
	"CHEM124": {
		ID: "CHEM124", Code: "CHEM 124", Name: "Chemical Dynamics",
		Credits: 3, Category: domain.CategoryScience,
		Prerequisites: []string{"CHEM122", "CHEM123"},
	},
	"CHEM125": {
		ID: "CHEM125", Code: "CHEM 125", Name: "Foundations of Chemical Inquiry II",
		Credits: 2, Category: domain.CategoryScience,
		Prerequisites:           []string{"CHEM122", "CHEM123"},
		ConcurrentPrerequisites: []string{"CHEM124"},
	},
	"CHEM118": {
		ID: "CHEM118", Code: "CHEM 118", Name: "Honors and Majors General and Analytical Chemistry II",
		Credits: 5, Category: domain.CategoryScience,
		Prerequisites: []string{"CHEM116"},
	},
	"PHYS141": {
		ID: "PHYS141", Code: "PHYS 141", Name: "General Physics I (Mechanics)",
		Credits: 4, Category: domain.CategoryScience,
		ConcurrentPrerequisites: []string{"MATH180"},
	},
	"PHYS142": {
		ID: "PHYS142", Code: "PHYS 142", Name: "General Physics II (Electricity and Magnetism)",
		Credits: 4, Category: domain.CategoryScience,
		Prerequisites:           []string{"PHYS141"},
		ConcurrentPrerequisites: []string{"MATH181"},
	},
	"EAES101": {
		ID: "EAES101", Code: "EAES 101", Name: "Global Environmental Change",
		Credits: 4, Category: domain.CategoryScience,
	},
	"EAES111": {
		ID: "EAES111", Code: "EAES 111", Name: "Earth, Energy, and the Environment",
		Credits: 4, Category: domain.CategoryScience,
	},
	"FREE001": {
		ID: "FREE001", Code: "FREE 001", Name: "Free Elective I",
		Credits: 3, Category: domain.CategoryElective,
	},
	"FREE002": {
		ID: "FREE002", Code: "FREE 002", Name: "Free Elective II",
		Credits: 3, Category: domain.CategoryElective,
	},
	"FREE003": {
		ID: "FREE003", Code: "FREE 003", Name: "Free Elective III",
		Credits: 3, Category: domain.CategoryElective,
	},
}
