package scoring

import "testing"

func TestContainsWord(t *testing.T) {
	testCases := []struct {
		text  string
		term  string
		match bool
	}{
		{"We use Python daily", "python", true},
		{"PYTHON developer wanted", "python", true},
		{"pythonic code", "python", false},
		{"HR intern role", "hr", true},
		{"three openings", "hr", false},
		{"chrome extension work", "hr", false},
		{"golang services", "go", false},
		{"Go services", "go", true},
		{"knows C++ well", "c++", true},
		{"final round: c++", "c++", true},
		{"C# and .NET", "c#", true},
		{"CI/CD pipelines", "ci/cd", true},
		{"", "python", false},
		{"anything", "", false},
	}

	for _, tc := range testCases {
		if got := ContainsWord(tc.text, tc.term); got != tc.match {
			t.Errorf("ContainsWord(%q, %q) = %v; expected %v", tc.text, tc.term, got, tc.match)
		}
	}
}

func TestMatchesRemote(t *testing.T) {
	testCases := []struct {
		text  string
		match bool
	}{
		{"Work From Home", true},
		{"remote internship", true},
		{"WFH allowed", true},
		{"Pan India hiring", true},
		{"Bengaluru office", false},
		{"remotely possible", false},
	}

	for _, tc := range testCases {
		if got := matchesRemote(tc.text); got != tc.match {
			t.Errorf("matchesRemote(%q) = %v; expected %v", tc.text, got, tc.match)
		}
	}
}
