package docs

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	bashSetup    = "bash setup"
	bashRun      = "bash run"
	consoleCheck = "console check"
)

// TestTopics checks that every topic listed in readme.md loads, and that every
// topic file is listed there.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	item := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := item.FindStringSubmatch(scanner.Text()); m != nil {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, f := range files {
		topic := strings.TrimSuffix(filepath.Base(f), ".md")
		if topic != "readme" && !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in docs/readme.md", topic)
		}
	}
}

func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			runBlocks(t, file)
		})
	}
}

// block is an executable fenced code block of a topic.
type block struct {
	kind    string // bashSetup, bashRun or consoleCheck
	content string
	pos     string // file:line for error messages
}

// buildEac2txf builds the eac2txf executable in tmp and returns its path.
func buildEac2txf(t *testing.T, tmp string) string {
	t.Helper()
	output := filepath.Join(tmp, "eac2txf")
	if out, err := exec.Command("go", "build", "-o", output, "../eac2txf/").CombinedOutput(); err != nil {
		t.Fatalf("failed to build eac2txf command: %v\n%s", err, out)
	}
	return output
}

// parseBlocks returns the executable blocks of the markdown file, in order.
func parseBlocks(t *testing.T, file string) []block {
	t.Helper()
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	var blocks []block
	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(fcb.Info.Segment.Value(content))
		if kind != bashSetup && kind != bashRun && kind != consoleCheck {
			return ast.WalkContinue, nil
		}
		var body strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			body.Write(line.Value(content))
		}
		// goldmark has no line numbers.
		line := bytes.Count(content[:fcb.Info.Segment.Start], []byte{'\n'}) + 1
		blocks = append(blocks, block{kind: kind, content: body.String(), pos: fmt.Sprintf("%s:%d", file, line)})
		return ast.WalkContinue, nil
	})
	return blocks
}

// runBlocks runs the blocks of file in a scratch folder, with eac2txf on the PATH.
//
// A "bash setup" block starts a new folder, a "bash run" block records its
// output, and a "console check" block compares it with the last recorded output.
func runBlocks(t *testing.T, file string) {
	t.Helper()
	blocks := parseBlocks(t, file)
	if len(blocks) == 0 {
		return
	}

	binDir := filepath.Dir(buildEac2txf(t, t.TempDir()))
	env := append(os.Environ(), fmt.Sprintf("PATH=%s%c%s", binDir, os.PathListSeparator, os.Getenv("PATH")))
	dir := t.TempDir()
	var output string

	for _, b := range blocks {
		if b.kind == consoleCheck {
			want := strings.TrimSpace(b.content)
			got := strings.TrimSpace(output)
			if want != got {
				t.Errorf("%s: output mismatch:\ngot:\n\n%s\n\nwant:\n\n%s\n\ngot :%q\nwant:%q\n", b.pos, got, want, got, want)
			}
			continue
		}
		if b.kind == bashSetup {
			dir = t.TempDir()
		}
		cmd := exec.Command("bash", "-c", "set -e; "+b.content)
		cmd.Dir = dir
		cmd.Env = env
		out, err := cmd.CombinedOutput()
		if b.kind == bashRun {
			output = string(out)
		}
		if err != nil {
			t.Fatalf("%s: %s failed: %v with output:\n%s\n", b.pos, b.kind, err, out)
		}
	}
}

func TestAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"config", "convert", "formats", "statement"}
	if strings.Join(topics, ",") != strings.Join(want, ",") {
		t.Errorf("GetAllTopics() = %v, want %v", topics, want)
	}

	all, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"# Configuration", "# Converting a Statement", "# Output Formats", "# Statement Layout"} {
		if !strings.Contains(all, title) {
			t.Errorf("GetTopics(\"*\") is missing %q", title)
		}
	}

	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(\"nope\") should fail")
	}
}
