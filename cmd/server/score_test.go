package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/vetlink/vetlink-api/internal/matching"
)

func TestScoreCommand(t *testing.T) {
	dir := t.TempDir()
	jobFile := filepath.Join(dir, "job.json")
	candidateFile := filepath.Join(dir, "candidate.json")

	if err := os.WriteFile(jobFile, []byte(`{"id":"j1","preferredMos":["11B"]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(candidateFile, []byte(`{"mosCode":"11b"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"score", "--job", jobFile, "--candidate", candidateFile})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := Execute(); err != nil {
		t.Fatalf("score: %v", err)
	}

	var res matching.Result
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("decode output %q: %v", out.String(), err)
	}
	if res.Score != matching.MOSExactPoints {
		t.Errorf("score = %d, want %d", res.Score, matching.MOSExactPoints)
	}
}

func TestScoreCommandBadJSON(t *testing.T) {
	dir := t.TempDir()
	jobFile := filepath.Join(dir, "job.json")
	if err := os.WriteFile(jobFile, []byte(`{`), 0o600); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"score", "--job", jobFile, "--candidate", jobFile})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := Execute(); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
