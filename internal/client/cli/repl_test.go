package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Token(ctx context.Context) error {
	f.calls = append(f.calls, "token")
	return nil
}

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = v.(string)
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"register",
		"",
		"login",
		"token",
		"logout",
		"exit",
		"register",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	assert.Equal(t, []string{"register", "login", "token", "logout"}, exec.calls)
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	lines := capturePrintln(t)

	input := strings.NewReader("help\nlogin\nhelp\nquit\n")
	runREPL(context.Background(), &fakeExec{}, func() string { return "s" }, bufio.NewScanner(input))

	assert.Contains(t, *lines, "Available commands: register, login, exit")
	assert.Contains(t, *lines, "Available commands: register, login, token, logout, exit")
	assert.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

func TestRunREPL_UnknownCommandAndEOF(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("foobar")))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Unknown command: foobar")
}
