// ABOUTME: Tests for tour lookup, validation against the demo anchors, and the --check flag
// ABOUTME: Isolates HOME so only tours written by the test are found

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const onboardingYAML = `name: onboarding
steps:
  - anchor: save
    text: Save often.
  - anchor: search
    variant: punch_hole
    text: Find anything.
`

func writeTour(t *testing.T, root, file, body string) string {
	t.Helper()

	dir := filepath.Join(root, ".coachmark", "tours")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, file)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveTour(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	path := writeTour(t, root, "onboarding.yaml", onboardingYAML)

	got, err := resolveTour(root, "onboarding")
	if err != nil {
		t.Fatalf("resolveTour: %v", err)
	}
	if got != path {
		t.Errorf("resolveTour = %q, want %q", got, path)
	}

	_, err = resolveTour(root, "onbording")
	if err == nil || !strings.Contains(err.Error(), "did you mean onboarding") {
		t.Errorf("resolveTour(typo) = %v, want a suggestion", err)
	}
}

func TestAvailableTours(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	writeTour(t, root, "a.yaml", onboardingYAML)
	writeTour(t, root, "b.toml", "")
	writeTour(t, root, "notes.txt", "")

	got := availableTours(root)
	if strings.Join(got, ",") != "a,b" {
		t.Errorf("availableTours = %v, want [a b]", got)
	}
}

func TestLoadTour_Validates(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	good := writeTour(t, root, "good.yaml", onboardingYAML)
	bad := writeTour(t, root, "bad.yaml", "steps:\n  - anchor: sav\n    text: typo\n")

	if _, err := loadTour(good); err != nil {
		t.Errorf("loadTour(good) = %v", err)
	}
	_, err := loadTour(bad)
	if err == nil || !strings.Contains(err.Error(), `did you mean "save"`) {
		t.Errorf("loadTour(bad) = %v, want an anchor suggestion", err)
	}
}

func TestTourCmd_Check(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	writeTour(t, root, "onboarding.yaml", onboardingYAML)

	var out bytes.Buffer
	cmd := newRootCmd(&app{})
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"tour", "onboarding", "--check", "--root", root})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := out.String(); got != "tour onboarding: 2 steps ok\n" {
		t.Errorf("output = %q", got)
	}
}

func TestDemoAnchorIDs(t *testing.T) {
	t.Parallel()

	want := "help,open,publish,save,search"
	if got := strings.Join(demoAnchorIDs(), ","); got != want {
		t.Errorf("demoAnchorIDs = %s, want %s", got, want)
	}
}
