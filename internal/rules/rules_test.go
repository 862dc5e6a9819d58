package rules

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultCategoryOrder(t *testing.T) {
	table := Default()

	want := []string{"payroll", "banking", "fraud", "technical", "billing", "compliance"}
	if got := table.CategoryNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected category order: %v", got)
	}
}

func TestDefaultPriorityOrder(t *testing.T) {
	table := Default()

	if len(table.Priorities) != 3 {
		t.Fatalf("expected 3 priority rules, got %d", len(table.Priorities))
	}
	for i, level := range []string{"high", "medium", "low"} {
		if table.Priorities[i].Level != level {
			t.Fatalf("priority[%d] = %s, want %s", i, table.Priorities[i].Level, level)
		}
	}
}

func TestKeywordsFor(t *testing.T) {
	table := Default()

	keywords := table.KeywordsFor("payroll")
	if len(keywords) != 7 {
		t.Fatalf("expected 7 payroll keywords, got %d", len(keywords))
	}
	if table.KeywordsFor("nonexistent") != nil {
		t.Fatalf("expected nil keywords for unknown category")
	}
}

func TestQueueForFallback(t *testing.T) {
	table := Default()

	if got := table.QueueFor("fraud"); got != "Fraud Investigation" {
		t.Fatalf("unexpected queue: %s", got)
	}
	if got := table.QueueFor("nonexistent"); got != FallbackQueue {
		t.Fatalf("expected fallback queue, got %s", got)
	}
}

func TestActionsForReturnsCopy(t *testing.T) {
	table := Default()

	actions := table.ActionsFor("fraud")
	if len(actions) != 4 {
		t.Fatalf("expected 4 fraud actions, got %d", len(actions))
	}

	actions[0] = "mutated"
	if again := table.ActionsFor("fraud"); again[0] == "mutated" {
		t.Fatalf("ActionsFor must return a copy")
	}
}

func TestActionsForDefaultPlaylist(t *testing.T) {
	table := Default()

	actions := table.ActionsFor("general")
	if !reflect.DeepEqual(actions, table.DefaultActions) {
		t.Fatalf("expected default playlist, got %v", actions)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `categories:
  - name: hardware
    keywords: ["laptop", "monitor"]
queues:
  hardware: Hardware Desk
priorities:
  - level: high
    keywords: ["down"]
  - level: medium
    keywords: ["slow"]
  - level: low
    keywords: ["question"]
actions:
  hardware: ["Check device inventory"]
defaultActions: ["Review case details"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write rules: %v", err)
	}

	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load rules: %v", err)
	}
	if got := table.CategoryNames(); !reflect.DeepEqual(got, []string{"hardware"}) {
		t.Fatalf("unexpected categories: %v", got)
	}
	if got := table.QueueFor("hardware"); got != "Hardware Desk" {
		t.Fatalf("unexpected queue: %s", got)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		content string
	}{
		{"empty categories", "queues: {}\n"},
		{"missing keywords", "categories:\n  - name: hardware\npriorities:\n  - level: high\n    keywords: [\"down\"]\n"},
		{"missing level", "categories:\n  - name: hardware\n    keywords: [\"laptop\"]\npriorities:\n  - keywords: [\"down\"]\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatalf("write rules: %v", err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("non-existent.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
