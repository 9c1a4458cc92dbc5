package skills

import "testing"

const sampleResume = `
Jane Candidate
Skills: Python, SQL, Docker and some C++.
Built REST services with Django; comfortable with Git and PostgreSQL.
`

func TestExtract(t *testing.T) {
	found := Extract(sampleResume)

	want := map[string]bool{
		"Python": true, "SQL": true, "Docker": true, "C++": true,
		"Django": true, "Git": true, "PostgreSQL": true,
	}
	got := map[string]bool{}
	for _, s := range found {
		got[s] = true
	}

	for skill := range want {
		if !got[skill] {
			t.Errorf("expected %q to be extracted, got %v", skill, found)
		}
	}
	if got["Java"] || got["Kubernetes"] {
		t.Errorf("extracted skills not present in the resume: %v", found)
	}
}

func TestExtractWholeWordsOnly(t *testing.T) {
	// "Golang" must not count as "Go", "Reactive" not as "React"
	found := Extract("Experienced with Golang and Reactive streams.")
	for _, s := range found {
		if s == "Go" || s == "React" {
			t.Errorf("substring matched as a skill: %q", s)
		}
	}
}

func TestExtractEmptyResume(t *testing.T) {
	if found := Extract(""); found != nil {
		t.Errorf("expected nil for an empty resume, got %v", found)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	a := Extract(sampleResume)
	b := Extract(sampleResume)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("order differs at %d: %q vs %q", i, a[i], b[i])
		}
	}
}
