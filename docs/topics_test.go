package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every .md file is listed there.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		found := false
		for _, listed := range topicsInReadme {
			if listed == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in docs/readme.md", topic)
		}
	}
}

func TestGetTopicStar(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"# Configuration", "# Data providers", "# The tracker workbook"} {
		if !strings.Contains(all, title) {
			t.Errorf("GetTopic(*) misses %q", title)
		}
	}
	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(nope): want error, got nil")
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"workbook", "The tracker workbook"},
		{"providers", "Data providers"},
		{"readme", "divsheet"},
	}
	for _, tt := range tests {
		got, err := Title(tt.topic)
		if err != nil {
			t.Errorf("Title(%q) unexpected error: %v", tt.topic, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.topic, got, tt.want)
		}
	}
}

// TestYAMLBlocks checks that every yaml code block of the documentation is valid.
func TestYAMLBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		root := goldmark.DefaultParser().Parse(text.NewReader(content))
		ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			fcb, ok := n.(*ast.FencedCodeBlock)
			if !ok || !entering || string(fcb.Language(content)) != "yaml" {
				return ast.WalkContinue, nil
			}
			var block strings.Builder
			for i := 0; i < fcb.Lines().Len(); i++ {
				line := fcb.Lines().At(i)
				block.Write(line.Value(content))
			}
			var v map[string]any
			if err := yaml.Unmarshal([]byte(block.String()), &v); err != nil {
				t.Errorf("%s: invalid yaml block: %v\n%s", file, err, block.String())
			}
			return ast.WalkContinue, nil
		})
	}
}
