package shell

import (
	"strings"
	"testing"
)

func TestExecute_KnownCommand(t *testing.T) {
	s := New()
	res := s.Execute("about")
	if res.Action != ActionNone {
		t.Fatalf("action=%s want none", res.Action)
	}
	if !strings.Contains(res.Output, "Gabriel") {
		t.Fatalf("about output missing name:\n%s", res.Output)
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	s := New()
	res := s.Execute("sudo make me a sandwich")
	if res.Action != ActionNone {
		t.Fatalf("action=%s want none", res.Action)
	}
	if !strings.Contains(res.Output, "command not found: sudo") {
		t.Fatalf("unexpected output: %q", res.Output)
	}
	if !strings.Contains(res.Output, "help") {
		t.Fatalf("output should hint at help: %q", res.Output)
	}
}

func TestExecute_BlankLineIsNoop(t *testing.T) {
	s := New()
	res := s.Execute("   ")
	if res.Output != "" || res.Action != ActionNone {
		t.Fatalf("blank line produced %+v", res)
	}
	if len(s.History()) != 0 {
		t.Fatalf("blank line recorded in history: %v", s.History())
	}
}

func TestExecute_CaseInsensitiveAndTrimmed(t *testing.T) {
	s := New()
	res := s.Execute("  HELP  ")
	if !strings.Contains(res.Output, "available commands") {
		t.Fatalf("HELP not dispatched: %q", res.Output)
	}
}

func TestAliases_MatchPrimary(t *testing.T) {
	s := New()
	cases := map[string]string{
		"socials": "links",
		"play":    "snake",
		"quit":    "exit",
		"welcome": "banner",
	}
	for alias, primary := range cases {
		a := s.Execute(alias)
		p := s.Execute(primary)
		if a != p {
			t.Errorf("alias %q -> %+v, primary %q -> %+v; want identical", alias, a, primary, p)
		}
	}
}

func TestActions(t *testing.T) {
	s := New()
	if res := s.Execute("clear"); res.Action != ActionClear {
		t.Errorf("clear action=%s want clear", res.Action)
	}
	if res := s.Execute("snake"); res.Action != ActionSnake {
		t.Errorf("snake action=%s want snake", res.Action)
	}
	if res := s.Execute("exit"); res.Action != ActionExit {
		t.Errorf("exit action=%s want exit", res.Action)
	}
}

func TestHelp_ListsEveryCommand(t *testing.T) {
	s := New()
	out := s.Execute("help").Output
	for _, c := range s.Commands() {
		if !strings.Contains(out, c.Name) {
			t.Errorf("help output missing %q", c.Name)
		}
	}
}

func TestHistory_RecordsAndCaps(t *testing.T) {
	s := New()
	s.Execute("about")
	s.Execute("skills")
	s.Execute("nonsense")

	h := s.History()
	want := []string{"about", "skills", "nonsense"}
	if len(h) != len(want) {
		t.Fatalf("history len=%d want %d", len(h), len(want))
	}
	for i := range want {
		if h[i] != want[i] {
			t.Fatalf("history[%d]=%q want %q", i, h[i], want[i])
		}
	}

	out := s.Execute("history").Output
	if !strings.Contains(out, "nonsense") {
		t.Fatalf("history command output missing entries:\n%s", out)
	}

	for i := 0; i < historyCap+50; i++ {
		s.Execute("help")
	}
	if len(s.History()) != historyCap {
		t.Fatalf("history len=%d want capped at %d", len(s.History()), historyCap)
	}
}
