package docs

import (
	"strings"
	"testing"
)

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	want := []string{"aggregation", "config", "diagnostics", "fifo", "formats"}
	if len(topics) != len(want) {
		t.Fatalf("GetAllTopics() = %v, want %v", topics, want)
	}
	for i := range want {
		if topics[i] != want[i] {
			t.Errorf("topics[%d] = %q, want %q", i, topics[i], want[i])
		}
	}
}

func TestGetTopic(t *testing.T) {
	content, err := GetTopic("fifo")
	if err != nil {
		t.Fatalf("GetTopic(fifo) error = %v", err)
	}
	if !strings.Contains(content, "FIFO") {
		t.Errorf("GetTopic(fifo) does not mention FIFO:\n%s", content)
	}
}

func TestGetTopic_Star(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) error = %v", err)
	}
	for _, want := range []string{"FIFO", "Aggregation", "Diagnostics"} {
		if !strings.Contains(all, want) {
			t.Errorf("GetTopic(*) missing %q", want)
		}
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("nonsense"); err == nil {
		t.Errorf("GetTopic(nonsense) = nil error, want not found")
	}
}
