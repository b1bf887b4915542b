package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestParseTaskStatus(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"todo", "doing", "completed", "pending", "rejected"} {
		status, err := ParseTaskStatus(valid)
		if err != nil {
			t.Errorf("ParseTaskStatus(%q): expected no error, got %v", valid, err)
		}
		if string(status) != valid {
			t.Errorf("ParseTaskStatus(%q): expected %q, got %q", valid, valid, status)
		}
	}

	for _, invalid := range []string{"", "done", "TODO", "in_progress"} {
		if _, err := ParseTaskStatus(invalid); err != ErrInvalidTaskStatus {
			t.Errorf("ParseTaskStatus(%q): expected error %v, got %v", invalid, ErrInvalidTaskStatus, err)
		}
	}
}

func TestParseTaskPriority(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"low", "medium", "high"} {
		priority, err := ParseTaskPriority(valid)
		if err != nil {
			t.Errorf("ParseTaskPriority(%q): expected no error, got %v", valid, err)
		}
		if string(priority) != valid {
			t.Errorf("ParseTaskPriority(%q): expected %q, got %q", valid, valid, priority)
		}
	}

	if _, err := ParseTaskPriority("urgent"); err != ErrInvalidTaskPriority {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskPriority, err)
	}
}

func TestNewTask(t *testing.T) {
	t.Parallel()

	projectID := uuid.New()
	task, err := NewTask(projectID, "Ship the release", "cut and tag")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ProjectID != projectID {
		t.Errorf("Expected project ID %s, got %s", projectID, task.ProjectID)
	}

	if task.Status != TaskStatusTodo {
		t.Errorf("Expected default status todo, got %s", task.Status)
	}

	if task.Priority != TaskPriorityMedium {
		t.Errorf("Expected default priority medium, got %s", task.Priority)
	}

	if task.AssignedBy != nil || task.AssignedTo != nil {
		t.Error("Expected new task to have no assignments")
	}

	// Missing project
	_, err = NewTask(uuid.Nil, "x", "")
	if err != ErrEmptyTaskProject {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskProject, err)
	}

	// Missing name
	_, err = NewTask(projectID, "", "")
	if err != ErrEmptyTaskName {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskName, err)
	}
}

func TestTaskValidateEnums(t *testing.T) {
	t.Parallel()

	task, err := NewTask(uuid.New(), "x", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	task.Status = TaskStatus("archived")
	if err := task.Validate(); err != ErrInvalidTaskStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskStatus, err)
	}

	task.Status = TaskStatusDoing
	task.Priority = TaskPriority("urgent")
	if err := task.Validate(); err != ErrInvalidTaskPriority {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskPriority, err)
	}
}

func TestProjectHasMemberAfterAppend(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	member := uuid.New()

	project, err := NewProject(owner, "Q3 board", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if project.HasMember(member) {
		t.Error("Expected fresh project to have no members")
	}

	project.MemberIDs = append(project.MemberIDs, member)
	if !project.HasMember(member) {
		t.Error("Expected member to be found")
	}

	// The owner is not implicitly a member.
	if project.HasMember(owner) {
		t.Error("Expected owner not to be an implicit member")
	}
}
