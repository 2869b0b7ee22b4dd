package extract

import "testing"

func TestInfinitive(t *testing.T) {
	cases := []struct {
		word string
		want string
	}{
		{"went", "go"},
		{"was", "be"},
		{"gave", "give"},
		{"deployed", "deploy"},
		{"treated", "treat"},
		{"rebooted", "reboot"},
		{"planned", "plan"},
		{"created", "create"},
		{"studies", "study"},
		{"notifies", "notify"},
		{"processes", "process"},
		{"running", "run"},
		{"gives", "give"},
		{"Received", "receive"},
		{"treat", "treat"},
	}

	for _, tc := range cases {
		if got := Infinitive(tc.word); got != tc.want {
			t.Errorf("Infinitive(%q) = %q, want %q", tc.word, got, tc.want)
		}
	}
}

func TestLooksLikeVerb(t *testing.T) {
	verbs := []string{"authorize", "notify", "deployed", "treats"}
	for _, w := range verbs {
		if !LooksLikeVerb(w) {
			t.Errorf("LooksLikeVerb(%q) = false, want true", w)
		}
	}

	nonVerbs := []string{"climate", "senate", "delegate", "state", "table", "exercise"}
	for _, w := range nonVerbs {
		if LooksLikeVerb(w) {
			t.Errorf("LooksLikeVerb(%q) = true, want false", w)
		}
	}
}
