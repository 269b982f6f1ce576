package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Register(context.Context) error {
	s.calls = append(s.calls, "register")
	return nil
}

func (s *stubExec) Login(context.Context) error {
	s.calls = append(s.calls, "login")
	s.loggedIn = true
	return nil
}

func (s *stubExec) Whoami(context.Context) error {
	s.calls = append(s.calls, "whoami")
	return nil
}

func (s *stubExec) Logout(context.Context) error {
	s.calls = append(s.calls, "logout")
	s.loggedIn = false
	return nil
}

func runScript(t *testing.T, e *stubExec, script string) []string {
	t.Helper()

	orig := printlnFn
	var out []string
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return 0, nil
	}
	defer func() { printlnFn = orig }()

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), e, func() string { return "" }, scanner)
	return out
}

func TestREPL_DispatchesCommands(t *testing.T) {
	e := &stubExec{}
	runScript(t, e, "login\nwhoami\nlogout\nexit\n")

	want := []string{"login", "whoami", "logout"}
	if len(e.calls) != len(want) {
		t.Fatalf("calls: got %v, want %v", e.calls, want)
	}
	for i := range want {
		if e.calls[i] != want[i] {
			t.Fatalf("calls: got %v, want %v", e.calls, want)
		}
	}
}

func TestREPL_UnknownCommand(t *testing.T) {
	e := &stubExec{}
	out := runScript(t, e, "frobnicate\nexit\n")

	found := false
	for _, line := range out {
		if strings.Contains(line, "Unknown command") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected unknown-command report, got %v", out)
	}
	if len(e.calls) != 0 {
		t.Fatalf("no handler should run, got %v", e.calls)
	}
}

func TestREPL_HelpDependsOnAuthState(t *testing.T) {
	out := runScript(t, &stubExec{}, "help\nexit\n")
	if !containsSub(out, "register, login") {
		t.Fatalf("signed-out help not shown: %v", out)
	}

	out = runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	if !containsSub(out, "whoami, logout") {
		t.Fatalf("signed-in help not shown: %v", out)
	}
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	e := &stubExec{}
	runScript(t, e, "login\n") // no exit, scanner hits EOF
	if len(e.calls) != 1 {
		t.Fatalf("calls: %v", e.calls)
	}
}

func containsSub(lines []string, sub string) bool {
	for _, l := range lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}
