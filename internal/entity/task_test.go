package entity

import (
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func statusPtr(s TaskStatus) *TaskStatus { return &s }

func TestCreateTaskRequestValid(t *testing.T) {
	req := &CreateTaskRequest{
		Title:       "Tarefa 1",
		Description: "Descrição 1",
		Status:      statusPtr(StatusOpen),
	}

	if messages := req.Validate(); len(messages) != 0 {
		t.Errorf("Expected no messages, got %v", messages)
	}
}

func TestCreateTaskRequestOmittedStatus(t *testing.T) {
	req := &CreateTaskRequest{Title: "t", Description: "d"}

	if messages := req.Validate(); len(messages) != 0 {
		t.Errorf("Expected no messages for omitted status, got %v", messages)
	}
}

func TestCreateTaskRequestEmptyTitle(t *testing.T) {
	req := &CreateTaskRequest{Title: "", Description: "x"}

	messages := req.Validate()
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %v", messages)
	}
	if !strings.Contains(messages[0], "title") {
		t.Errorf("Expected message mentioning title, got %q", messages[0])
	}
}

func TestCreateTaskRequestWhitespaceTitle(t *testing.T) {
	req := &CreateTaskRequest{Title: "   ", Description: "x"}

	messages := req.Validate()
	if len(messages) != 1 || !strings.Contains(messages[0], "title") {
		t.Errorf("Expected title message for whitespace title, got %v", messages)
	}
}

func TestCreateTaskRequestInvalidStatus(t *testing.T) {
	req := &CreateTaskRequest{Title: "t", Description: "d", Status: statusPtr("invalid")}

	messages := req.Validate()
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %v", messages)
	}
	if !strings.Contains(messages[0], "status") {
		t.Errorf("Expected message mentioning status, got %q", messages[0])
	}
}

func TestCreateTaskRequestExplicitEmptyStatus(t *testing.T) {
	// "status": "" is present, so it must satisfy the enum rule rather
	// than fall through to the default
	req := &CreateTaskRequest{Title: "t", Description: "d", Status: statusPtr("")}

	messages := req.Validate()
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %v", messages)
	}
	if !strings.Contains(messages[0], "status") {
		t.Errorf("Expected message mentioning status, got %q", messages[0])
	}
}

func TestCreateTaskRequestReportsAllViolations(t *testing.T) {
	req := &CreateTaskRequest{Status: statusPtr("pending")}

	messages := req.Validate()
	if len(messages) != 3 {
		t.Fatalf("Expected 3 messages, got %v", messages)
	}

	joined := strings.Join(messages, "\n")
	for _, field := range []string{"title", "description", "status"} {
		if !strings.Contains(joined, field) {
			t.Errorf("Expected a message mentioning %s, got %v", field, messages)
		}
	}
}

func TestUpdateTaskRequestEmptyPayload(t *testing.T) {
	req := &UpdateTaskRequest{}

	if messages := req.Validate(); len(messages) != 0 {
		t.Errorf("Expected empty payload to be valid, got %v", messages)
	}
}

func TestUpdateTaskRequestPresentFieldsChecked(t *testing.T) {
	req := &UpdateTaskRequest{
		Title:  strPtr(""),
		Status: statusPtr("done"),
	}

	messages := req.Validate()
	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %v", messages)
	}
	if !strings.Contains(messages[0], "title") {
		t.Errorf("Expected first message to mention title, got %q", messages[0])
	}
	if !strings.Contains(messages[1], "status") {
		t.Errorf("Expected second message to mention status, got %q", messages[1])
	}
}

func TestUpdateTaskRequestValidPartial(t *testing.T) {
	req := &UpdateTaskRequest{Status: statusPtr(StatusDone)}

	if messages := req.Validate(); len(messages) != 0 {
		t.Errorf("Expected no messages, got %v", messages)
	}
}

func TestTaskStatusValid(t *testing.T) {
	for _, s := range []TaskStatus{StatusOpen, StatusInProgress, StatusDone} {
		if !s.Valid() {
			t.Errorf("Expected %q to be valid", s)
		}
	}
	for _, s := range []TaskStatus{"", "open", "ABERTO", "pending"} {
		if s.Valid() {
			t.Errorf("Expected %q to be invalid", s)
		}
	}
}
